package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	petdomain "github.com/BruksfildServices01/petshop-manager/internal/domain/pet"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
	"github.com/BruksfildServices01/petshop-manager/internal/timezone"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

// --------- Requests ---------

type TutorVinculoRequest struct {
	ID         string `json:"id" binding:"required"`
	IsPrimario bool   `json:"isPrimario"`
}

type PetRequest struct {
	Nome           string   `json:"nome" binding:"required"`
	Foto           string   `json:"foto"`
	DataNascimento string   `json:"dataNascimento"` // YYYY-MM-DD
	Raca           *string  `json:"raca"`
	Peso           *float64 `json:"peso"`
	Sexo           string   `json:"sexo"`
	Alergias       string   `json:"alergias"`
	Observacoes    string   `json:"observacoes"`
	UsaTaxiDog     bool     `json:"usaTaxiDog"`

	Tutores []TutorVinculoRequest `json:"tutores" binding:"required"`
}

// --------- Views ---------

type tutorVinculoView struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Email      string `json:"email"`
	IsPrimario bool   `json:"isPrimario"`
}

type petView struct {
	models.Pet
	Tutores []tutorVinculoView `json:"tutores"`
}

func newPetView(pet models.Pet) petView {
	tutores := make([]tutorVinculoView, 0, len(pet.Tutores))
	for _, pt := range pet.Tutores {
		tutores = append(tutores, tutorVinculoView{
			ID:         pt.Tutor.ID,
			Nome:       pt.Tutor.Nome,
			Email:      pt.Tutor.Email,
			IsPrimario: pt.IsPrimario,
		})
	}

	pet.Tutores = nil
	return petView{Pet: pet, Tutores: tutores}
}

// --------- Helpers ---------

func (h *PetHandler) validarTutores(req []TutorVinculoRequest) error {
	vinculos := make([]petdomain.Vinculo, 0, len(req))
	for _, t := range req {
		vinculos = append(vinculos, petdomain.Vinculo{
			TutorID:    t.ID,
			IsPrimario: t.IsPrimario,
		})
	}

	if err := petdomain.ValidarVinculos(vinculos); err != nil {
		return err
	}

	ids := make([]string, 0, len(req))
	for _, t := range req {
		ids = append(ids, t.ID)
	}

	var count int64
	if err := h.db.Model(&models.Tutor{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return httperr.ErrBusiness("tutor_nao_encontrado")
	}

	return nil
}

func parseDataNascimento(s string) *time.Time {
	if s == "" {
		return nil
	}
	if d, err := timezone.ParseDate(s); err == nil {
		return &d
	}
	return nil
}

func writeTutorError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "tutor_obrigatorio":
		httperr.BadRequest(c, "tutor_obrigatorio", "Pelo menos um tutor é obrigatório.")
	case "tutor_primario_obrigatorio":
		httperr.BadRequest(c, "tutor_primario_obrigatorio", "Deve haver um tutor primário.")
	case "tutor_primario_duplicado":
		httperr.BadRequest(c, "tutor_primario_duplicado", "Apenas um tutor pode ser primário.")
	case "tutor_nao_encontrado":
		httperr.BadRequest(c, "tutor_nao_encontrado", "Um ou mais tutores não existem.")
	default:
		httperr.Internal(c, "failed_to_validate_tutores", "Erro ao validar tutores.")
	}
}

// ======================================================
// LIST
// ======================================================

func (h *PetHandler) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	q := h.db.Model(&models.Pet{})

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("nome ILIKE ? OR raca ILIKE ?", like, like)
	}

	var pets []models.Pet
	if err := q.
		Preload("Tutores.Tutor").
		Order("nome ASC").
		Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Erro ao listar pets.")
		return
	}

	out := make([]petView, 0, len(pets))
	for _, p := range pets {
		out = append(out, newPetView(p))
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// GET
// ======================================================

func (h *PetHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.
		Preload("Tutores.Tutor").
		First(&pet, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_nao_encontrado", "Pet não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_pet", "Erro ao buscar pet.")
		return
	}

	c.JSON(http.StatusOK, newPetView(pet))
}

// ======================================================
// CREATE
// ======================================================

func (h *PetHandler) Create(c *gin.Context) {
	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e tutores são obrigatórios.")
		return
	}

	if !petdomain.Sexo(req.Sexo).Valid() {
		httperr.BadRequest(c, "sexo_invalido", "Sexo inválido.")
		return
	}

	if err := h.validarTutores(req.Tutores); err != nil {
		writeTutorError(c, err)
		return
	}

	pet := models.Pet{
		Nome:           req.Nome,
		Foto:           req.Foto,
		DataNascimento: parseDataNascimento(req.DataNascimento),
		Raca:           req.Raca,
		Peso:           req.Peso,
		Sexo:           req.Sexo,
		Alergias:       req.Alergias,
		Observacoes:    req.Observacoes,
		UsaTaxiDog:     req.UsaTaxiDog,
	}

	for _, t := range req.Tutores {
		pet.Tutores = append(pet.Tutores, models.PetTutor{
			TutorID:    t.ID,
			IsPrimario: t.IsPrimario,
		})
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Erro ao criar pet.")
		return
	}

	c.JSON(http.StatusCreated, pet)
}

// ======================================================
// UPDATE
// ======================================================

func (h *PetHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_nao_encontrado", "Pet não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_pet", "Erro ao buscar pet.")
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e tutores são obrigatórios.")
		return
	}

	if !petdomain.Sexo(req.Sexo).Valid() {
		httperr.BadRequest(c, "sexo_invalido", "Sexo inválido.")
		return
	}

	if err := h.validarTutores(req.Tutores); err != nil {
		writeTutorError(c, err)
		return
	}

	pet.Nome = req.Nome
	pet.Foto = req.Foto
	pet.DataNascimento = parseDataNascimento(req.DataNascimento)
	pet.Raca = req.Raca
	pet.Peso = req.Peso
	pet.Sexo = req.Sexo
	pet.Alergias = req.Alergias
	pet.Observacoes = req.Observacoes
	pet.UsaTaxiDog = req.UsaTaxiDog

	// Vínculos de tutor são sempre reescritos por inteiro, nunca diffados.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tutores").Save(&pet).Error; err != nil {
			return err
		}

		if err := tx.Where("pet_id = ?", pet.ID).
			Delete(&models.PetTutor{}).Error; err != nil {
			return err
		}

		for _, t := range req.Tutores {
			pt := models.PetTutor{
				PetID:      pet.ID,
				TutorID:    t.ID,
				IsPrimario: t.IsPrimario,
			}
			if err := tx.Create(&pt).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Erro ao atualizar pet.")
		return
	}

	c.JSON(http.StatusOK, pet)
}

// ======================================================
// DELETE
// ======================================================

func (h *PetHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_nao_encontrado", "Pet não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_pet", "Erro ao buscar pet.")
		return
	}

	if err := h.db.Delete(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Erro ao excluir pet.")
		return
	}

	c.Status(http.StatusNoContent)
}

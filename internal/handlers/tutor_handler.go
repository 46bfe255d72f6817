package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

type TutorHandler struct {
	db *gorm.DB
}

func NewTutorHandler(db *gorm.DB) *TutorHandler {
	return &TutorHandler{db: db}
}

// --------- Requests ---------

type TutorRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email"`
	Telefone string `json:"telefone" binding:"required"`

	CEP         string `json:"cep"`
	Rua         string `json:"rua"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

// ======================================================
// LIST
// ======================================================

func (h *TutorHandler) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	q := h.db.Model(&models.Tutor{})

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"nome ILIKE ? OR email ILIKE ? OR telefone LIKE ?",
			like, like, like,
		)
	}

	var tutores []models.Tutor
	if err := q.Order("nome ASC").Find(&tutores).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tutores", "Erro ao listar tutores.")
		return
	}

	c.JSON(http.StatusOK, tutores)
}

// ======================================================
// SELECTED (?ids=a,b,c)
// ======================================================

func (h *TutorHandler) Selected(c *gin.Context) {
	idsParam := strings.TrimSpace(c.Query("ids"))
	if idsParam == "" {
		httperr.BadRequest(c, "ids_obrigatorios", "IDs não fornecidos.")
		return
	}

	ids := strings.Split(idsParam, ",")

	var tutores []models.Tutor
	if err := h.db.
		Select("id", "nome", "email", "telefone").
		Where("id IN ?", ids).
		Find(&tutores).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tutores", "Erro ao buscar tutores.")
		return
	}

	c.JSON(http.StatusOK, tutores)
}

// ======================================================
// GET
// ======================================================

func (h *TutorHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var tutor models.Tutor
	if err := h.db.First(&tutor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "tutor_nao_encontrado", "Tutor não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_tutor", "Erro ao buscar tutor.")
		return
	}

	c.JSON(http.StatusOK, tutor)
}

// ======================================================
// CREATE
// ======================================================

func (h *TutorHandler) Create(c *gin.Context) {
	var req TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e telefone são obrigatórios.")
		return
	}

	tutor := models.Tutor{
		Nome:        req.Nome,
		Email:       req.Email,
		Telefone:    req.Telefone,
		CEP:         req.CEP,
		Rua:         req.Rua,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
	}

	if err := h.db.Create(&tutor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_tutor", "Erro ao criar tutor.")
		return
	}

	c.JSON(http.StatusCreated, tutor)
}

// ======================================================
// UPDATE
// ======================================================

func (h *TutorHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var tutor models.Tutor
	if err := h.db.First(&tutor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "tutor_nao_encontrado", "Tutor não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_tutor", "Erro ao buscar tutor.")
		return
	}

	var req TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e telefone são obrigatórios.")
		return
	}

	tutor.Nome = req.Nome
	tutor.Email = req.Email
	tutor.Telefone = req.Telefone
	tutor.CEP = req.CEP
	tutor.Rua = req.Rua
	tutor.Numero = req.Numero
	tutor.Complemento = req.Complemento
	tutor.Bairro = req.Bairro
	tutor.Cidade = req.Cidade
	tutor.Estado = req.Estado

	if err := h.db.Save(&tutor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_tutor", "Erro ao atualizar tutor.")
		return
	}

	c.JSON(http.StatusOK, tutor)
}

// ======================================================
// DELETE
// ======================================================

func (h *TutorHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var tutor models.Tutor
	if err := h.db.First(&tutor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "tutor_nao_encontrado", "Tutor não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_tutor", "Erro ao buscar tutor.")
		return
	}

	// Guarda de integridade no handler: tutor com pet vinculado não sai.
	var vinculos int64
	if err := h.db.Model(&models.PetTutor{}).
		Where("tutor_id = ?", id).
		Count(&vinculos).Error; err != nil {
		httperr.Internal(c, "failed_to_check_pets", "Erro ao verificar vínculos.")
		return
	}

	if vinculos > 0 {
		httperr.Conflict(c, "tutor_possui_pets",
			"Este tutor está associado a um ou mais pets e não pode ser excluído.")
		return
	}

	if err := h.db.Delete(&tutor).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_tutor", "Erro ao excluir tutor.")
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

type ServicoHandler struct {
	db *gorm.DB
}

func NewServicoHandler(db *gorm.DB) *ServicoHandler {
	return &ServicoHandler{db: db}
}

type PrecoRequest struct {
	Raca  *string `json:"raca"`
	Peso  *int    `json:"peso"`
	Preco float64 `json:"preco"`
}

type ServicoRequest struct {
	Nome        string         `json:"nome" binding:"required"`
	Observacoes string         `json:"observacoes"`
	Precos      []PrecoRequest `json:"precos" binding:"required,min=1"`
}

// ======================================================
// LIST
// ======================================================

func (h *ServicoHandler) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	q := h.db.Model(&models.Servico{})

	if search != "" {
		q = q.Where("nome ILIKE ?", "%"+search+"%")
	}

	var servicos []models.Servico
	if err := q.
		Preload("Precos", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Order("nome ASC").
		Find(&servicos).Error; err != nil {
		httperr.Internal(c, "failed_to_list_servicos", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, servicos)
}

// ======================================================
// GET
// ======================================================

func (h *ServicoHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var servico models.Servico
	if err := h.db.
		Preload("Precos", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&servico, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "servico_nao_encontrado", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_servico", "Erro ao buscar serviço.")
		return
	}

	c.JSON(http.StatusOK, servico)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServicoHandler) Create(c *gin.Context) {
	var req ServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e pelo menos um preço são obrigatórios.")
		return
	}

	servico := models.Servico{
		Nome:        req.Nome,
		Observacoes: req.Observacoes,
	}
	for _, p := range req.Precos {
		servico.Precos = append(servico.Precos, models.Preco{
			Raca:  p.Raca,
			Peso:  p.Peso,
			Preco: p.Preco,
		})
	}

	if err := h.db.Create(&servico).Error; err != nil {
		httperr.Internal(c, "failed_to_create_servico", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, servico)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServicoHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var servico models.Servico
	if err := h.db.First(&servico, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "servico_nao_encontrado", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_servico", "Erro ao buscar serviço.")
		return
	}

	var req ServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome e pelo menos um preço são obrigatórios.")
		return
	}

	servico.Nome = req.Nome
	servico.Observacoes = req.Observacoes

	// A tabela de preços é substituída por inteiro a cada atualização.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Precos").Save(&servico).Error; err != nil {
			return err
		}

		if err := tx.Where("servico_id = ?", servico.ID).
			Delete(&models.Preco{}).Error; err != nil {
			return err
		}

		for _, p := range req.Precos {
			preco := models.Preco{
				ServicoID: servico.ID,
				Raca:      p.Raca,
				Peso:      p.Peso,
				Preco:     p.Preco,
			}
			if err := tx.Create(&preco).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_servico", "Erro ao atualizar serviço.")
		return
	}

	if err := h.db.
		Preload("Precos", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&servico, "id = ?", servico.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_get_servico", "Erro ao buscar serviço.")
		return
	}

	c.JSON(http.StatusOK, servico)
}

// ======================================================
// DELETE
// ======================================================

func (h *ServicoHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var servico models.Servico
	if err := h.db.First(&servico, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "servico_nao_encontrado", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_servico", "Erro ao buscar serviço.")
		return
	}

	var emUso int64
	if err := h.db.Model(&models.AgendamentoServico{}).
		Where("servico_id = ?", servico.ID).
		Count(&emUso).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_servico", "Erro ao excluir serviço.")
		return
	}
	if emUso > 0 {
		httperr.Conflict(c, "servico_em_uso", "Serviço está vinculado a agendamentos.")
		return
	}

	if err := h.db.Delete(&servico).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_servico", "Erro ao excluir serviço.")
		return
	}

	c.Status(http.StatusNoContent)
}

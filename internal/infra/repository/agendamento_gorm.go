package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
)

type AgendamentoGormRepository struct {
	db *gorm.DB
}

func NewAgendamentoGormRepository(db *gorm.DB) *AgendamentoGormRepository {
	return &AgendamentoGormRepository{db: db}
}

// --------------------------------------------------
// Pet
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetPet(
	ctx context.Context,
	petID string,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, "id = ?", petID).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Servico
// --------------------------------------------------

func (r *AgendamentoGormRepository) ListServicosByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Servico, error) {

	var servicos []models.Servico
	if err := r.db.WithContext(ctx).
		Preload("Precos", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("id IN ?", ids).
		Find(&servicos).Error; err != nil {
		return nil, err
	}
	return servicos, nil
}

// --------------------------------------------------
// Agendamento
// --------------------------------------------------

func (r *AgendamentoGormRepository) CreateAgendamento(
	ctx context.Context,
	ag *models.Agendamento,
) error {
	// Create com associações insere agendamento e serviços na mesma
	// transação.
	return r.db.WithContext(ctx).Create(ag).Error
}

func (r *AgendamentoGormRepository) GetAgendamento(
	ctx context.Context,
	id string,
) (*models.Agendamento, error) {

	var ag models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Pet.Tutores.Tutor").
		Preload("Servicos.Servico").
		Preload("Checklist").
		First(&ag, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ag, nil
}

func (r *AgendamentoGormRepository) UpdateAgendamento(
	ctx context.Context,
	ag *models.Agendamento,
	servicos []models.AgendamentoServico,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Servicos", "Checklist", "Pet").Save(ag).Error; err != nil {
			return err
		}

		if servicos == nil {
			return nil
		}

		// Substituição completa: apaga tudo e recria. Nunca é feito diff.
		if err := tx.
			Where("agendamento_id = ?", ag.ID).
			Delete(&models.AgendamentoServico{}).Error; err != nil {
			return err
		}

		for i := range servicos {
			servicos[i].AgendamentoID = ag.ID
			if err := tx.Create(&servicos[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *AgendamentoGormRepository) DeleteAgendamento(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).Delete(&models.Agendamento{}, "id = ?", id).Error
}

func (r *AgendamentoGormRepository) ListAgendamentos(
	ctx context.Context,
	f domain.Filters,
) ([]models.Agendamento, error) {

	q := r.db.WithContext(ctx).Model(&models.Agendamento{})

	if f.PetID != "" {
		q = q.Where("pet_id = ?", f.PetID)
	}

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	if f.DataInicio != nil {
		q = q.Where("data >= ?", *f.DataInicio)
	}

	if f.DataFim != nil {
		q = q.Where("data <= ?", *f.DataFim)
	}

	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(
			`pet_id IN (
				SELECT p.id FROM pets p WHERE p.nome ILIKE ?
				UNION
				SELECT pt.pet_id FROM pet_tutors pt
				JOIN tutors t ON t.id = pt.tutor_id
				WHERE t.nome ILIKE ?
			)`,
			like, like,
		)
	}

	var ags []models.Agendamento
	if err := q.
		Preload("Pet.Tutores.Tutor").
		Preload("Servicos.Servico").
		Preload("Checklist").
		Order("data ASC, hora_inicio ASC").
		Find(&ags).Error; err != nil {
		return nil, err
	}

	return ags, nil
}

func (r *AgendamentoGormRepository) ListAgendamentosDoDia(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Agendamento, error) {

	var ags []models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Pet.Tutores.Tutor").
		Preload("Servicos.Servico").
		Preload("Checklist").
		Where("data >= ? AND data <= ?", start, end).
		Order("hora_inicio ASC").
		Find(&ags).Error; err != nil {
		return nil, err
	}

	return ags, nil
}

// --------------------------------------------------
// Checklist
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetChecklist(
	ctx context.Context,
	agendamentoID string,
) (*models.Checklist, error) {

	var cl models.Checklist
	if err := r.db.WithContext(ctx).
		First(&cl, "agendamento_id = ?", agendamentoID).Error; err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *AgendamentoGormRepository) CreateChecklistEConcluir(
	ctx context.Context,
	cl *models.Checklist,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cl).Error; err != nil {
			return err
		}

		return tx.Model(&models.Agendamento{}).
			Where("id = ?", cl.AgendamentoID).
			Update("status", string(domain.StatusConcluido)).Error
	})
}

func (r *AgendamentoGormRepository) UpdateChecklist(
	ctx context.Context,
	cl *models.Checklist,
) error {
	return r.db.WithContext(ctx).Save(cl).Error
}

// --------------------------------------------------
// Notificação
// --------------------------------------------------

func (r *AgendamentoGormRepository) MarcarNotificado(
	ctx context.Context,
	agendamentoID string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Agendamento{}).
		Where("id = ?", agendamentoID).
		Update("enviar_notificacao", true).Error
}

// Compile-time check
var _ domain.Repository = (*AgendamentoGormRepository)(nil)

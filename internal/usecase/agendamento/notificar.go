package agendamento

import (
	"context"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	domain "github.com/BruksfildServices01/petshop-manager/internal/domain/agendamento"
	"github.com/BruksfildServices01/petshop-manager/internal/httperr"
	"github.com/BruksfildServices01/petshop-manager/internal/models"
	"github.com/BruksfildServices01/petshop-manager/internal/whatsapp"
)

type NotificacaoResult struct {
	Success     bool   `json:"success"`
	WhatsappURL string `json:"whatsappUrl"`
	PetNome     string `json:"petNome"`
	TutorNome   string `json:"tutorNome"`
	Telefone    string `json:"telefone"`
}

type NotificarTutor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewNotificarTutor(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *NotificarTutor {
	return &NotificarTutor{
		repo:  repo,
		audit: audit,
	}
}

// Execute monta o link do WhatsApp para o tutor principal do pet e marca
// o agendamento como notificado. O link devolvido é aberto pelo cliente;
// o servidor não envia mensagem nenhuma.
func (uc *NotificarTutor) Execute(
	ctx context.Context,
	userID string,
	agendamentoID string,
) (*NotificacaoResult, error) {

	ag, err := uc.repo.GetAgendamento(ctx, agendamentoID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	tutor := tutorPrincipal(&ag.Pet)
	if tutor == nil || tutor.Telefone == "" {
		return nil, httperr.ErrBusiness("tutor_sem_telefone")
	}

	link, err := whatsapp.BuildLink(tutor.Telefone, tutor.Nome, ag.Pet.Nome)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.MarcarNotificado(ctx, ag.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "tutor_notificado",
		Entity:   "agendamento",
		EntityID: &ag.ID,
	})

	return &NotificacaoResult{
		Success:     true,
		WhatsappURL: link,
		PetNome:     ag.Pet.Nome,
		TutorNome:   tutor.Nome,
		Telefone:    tutor.Telefone,
	}, nil
}

// tutorPrincipal devolve o primeiro tutor marcado como primário, ou nil.
func tutorPrincipal(pet *models.Pet) *models.Tutor {
	for i := range pet.Tutores {
		if pet.Tutores[i].IsPrimario {
			return &pet.Tutores[i].Tutor
		}
	}
	return nil
}

package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petshop-manager/internal/audit"
	"github.com/BruksfildServices01/petshop-manager/internal/config"
	"github.com/BruksfildServices01/petshop-manager/internal/handlers"
	infraRepo "github.com/BruksfildServices01/petshop-manager/internal/infra/repository"
	"github.com/BruksfildServices01/petshop-manager/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	agendamentoRepo := infraRepo.NewAgendamentoGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	tutorHandler := handlers.NewTutorHandler(db)
	petHandler := handlers.NewPetHandler(db)
	servicoHandler := handlers.NewServicoHandler(db)

	agendamentoHandler := handlers.NewAgendamentoHandler(agendamentoRepo, auditDispatcher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// TUTORES
			// ------------------------------
			secured.GET("/tutores", tutorHandler.List)
			secured.GET("/tutores/selected", tutorHandler.Selected)
			secured.GET("/tutores/:id", tutorHandler.Get)
			secured.POST("/tutores", tutorHandler.Create)
			secured.PATCH("/tutores/:id", tutorHandler.Update)
			secured.DELETE("/tutores/:id", tutorHandler.Delete)

			// ------------------------------
			// PETS
			// ------------------------------
			secured.GET("/pets", petHandler.List)
			secured.GET("/pets/:id", petHandler.Get)
			secured.POST("/pets", petHandler.Create)
			secured.PATCH("/pets/:id", petHandler.Update)
			secured.DELETE("/pets/:id", petHandler.Delete)

			// ------------------------------
			// SERVIÇOS
			// ------------------------------
			secured.GET("/servicos", servicoHandler.List)
			secured.GET("/servicos/:id", servicoHandler.Get)
			secured.POST("/servicos", servicoHandler.Create)
			secured.PATCH("/servicos/:id", servicoHandler.Update)
			secured.DELETE("/servicos/:id", servicoHandler.Delete)

			// ------------------------------
			// AGENDAMENTOS
			// ------------------------------
			secured.GET("/agendamentos", agendamentoHandler.List)
			secured.GET("/agendamentos/dia", agendamentoHandler.ListDoDia)
			secured.GET("/agendamentos/:id", agendamentoHandler.Get)
			secured.POST("/agendamentos", agendamentoHandler.Create)
			secured.PATCH("/agendamentos/:id", agendamentoHandler.Update)
			secured.DELETE("/agendamentos/:id", agendamentoHandler.Delete)

			secured.PATCH("/agendamentos/:id/iniciar", agendamentoHandler.Iniciar)
			secured.PATCH("/agendamentos/:id/cancelar", agendamentoHandler.Cancelar)
			secured.PATCH("/agendamentos/:id/pagamento", agendamentoHandler.RegistrarPagamento)

			secured.GET("/agendamentos/:id/checklist", agendamentoHandler.GetChecklist)
			secured.POST("/agendamentos/:id/checklist", agendamentoHandler.SubmitChecklist)

			secured.POST("/agendamentos/:id/notificar", agendamentoHandler.NotificarTutor)
			secured.POST("/agendamentos/calcular-preco", agendamentoHandler.CalcularPreco)

			// ------------------------------
			// AUDITORIA
			// ------------------------------
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

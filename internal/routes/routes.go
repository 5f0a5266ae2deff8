package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aactechsol/massage-manager/internal/audit"
	"github.com/aactechsol/massage-manager/internal/config"
	"github.com/aactechsol/massage-manager/internal/domain/earnings"
	"github.com/aactechsol/massage-manager/internal/handlers"
	infraRepo "github.com/aactechsol/massage-manager/internal/infra/repository"
	"github.com/aactechsol/massage-manager/internal/mailer"
	"github.com/aactechsol/massage-manager/internal/middleware"
	ucAccount "github.com/aactechsol/massage-manager/internal/usecase/account"
	ucWorklog "github.com/aactechsol/massage-manager/internal/usecase/worklog"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	worklogRepo := infraRepo.NewWorklogGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)

	engine := earnings.NewEngine(cfg.TaxRate)
	mail := mailer.New(cfg.ResendAPIKey, cfg.MailFrom, cfg.AdminEmail, !cfg.IsProduction())

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createSessionUC := ucWorklog.NewCreateSession(worklogRepo, auditDispatcher)
	listSessionsUC := ucWorklog.NewListSessions(worklogRepo, engine)
	statisticsUC := ucWorklog.NewStatistics(worklogRepo, engine)

	registerUC := ucAccount.NewRegister(accountRepo, mail)
	updateUserUC := ucAccount.NewUpdateUser(accountRepo, mail, auditDispatcher)
	requestResetUC := ucAccount.NewRequestReset(accountRepo, mail, auditDispatcher)
	resetPasswordUC := ucAccount.NewResetPassword(accountRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, registerUC, requestResetUC, resetPasswordUC)
	profileHandler := handlers.NewProfileHandler(db)
	spaHandler := handlers.NewSpaHandler(worklogRepo)
	sessionHandler := handlers.NewSessionHandler(createSessionUC, listSessionsUC, statisticsUC)
	statsHandler := handlers.NewStatsHandler(statisticsUC)
	adminHandler := handlers.NewAdminHandler(accountRepo, worklogRepo, updateUserUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/login", authHandler.LoginPage)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// WORKER
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg), middleware.RequireWorker())
		{
			me.GET("", profileHandler.GetMe)
			me.PUT("", profileHandler.UpdateMe)

			me.GET("/dashboard", sessionHandler.Dashboard)
			me.GET("/spas", spaHandler.ListMine)

			me.POST("/sessions", sessionHandler.Create)
			me.GET("/sessions", sessionHandler.List)

			me.GET("/statistics", statsHandler.Statistics)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PUT("/users/:id", adminHandler.UpdateUser)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aactechsol/massage-manager/internal/config"
	dbpkg "github.com/aactechsol/massage-manager/internal/db"
	"github.com/aactechsol/massage-manager/internal/logger"
	"github.com/aactechsol/massage-manager/internal/middleware"
	"github.com/aactechsol/massage-manager/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Init(cfg.Env); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}

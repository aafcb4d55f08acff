package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dimitrilongo/wacdo/config"
	"github.com/dimitrilongo/wacdo/internal/api/handler"
	"github.com/dimitrilongo/wacdo/internal/api/router"
	"github.com/dimitrilongo/wacdo/internal/repository"
	"github.com/dimitrilongo/wacdo/internal/service"
	"github.com/dimitrilongo/wacdo/pkg/database"
	"github.com/dimitrilongo/wacdo/pkg/jwt"
	applogger "github.com/dimitrilongo/wacdo/pkg/logger"
	"github.com/dimitrilongo/wacdo/pkg/redis"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialisation des logs: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("démarrage de l'application",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Base de données
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connexion à la base de données", zap.Error(err))
	}
	logger.Info("connexion à la base de données établie")

	// 3.1 Migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("accès au sql.DB sous-jacent", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("exécution des migrations", zap.Error(err))
	}

	// 4. Redis, optionnel : sans lui la révocation des tokens et la
	// limitation de débit sont désactivées, le serveur démarre quand même.
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis indisponible, révocation des tokens désactivée", zap.Error(err))
		rdb = nil
	}

	// 5. JWT
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Injection des dépendances : Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 6.1 Compte administrateur initial
	if err := svc.User.EnsureAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Fatal("création du compte administrateur initial", zap.Error(err))
	}

	// 7. Routeur
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Serveur HTTP avec arrêt propre
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serveur HTTP", zap.Error(err))
		}
	}()

	// 9. Attente du signal d'arrêt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal reçu, arrêt en cours", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("arrêt du serveur", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("serveur arrêté")
}

package service

import (
	"go.uber.org/zap"

	"github.com/dimitrilongo/wacdo/config"
	"github.com/dimitrilongo/wacdo/internal/repository"
	"github.com/dimitrilongo/wacdo/pkg/jwt"
	"github.com/dimitrilongo/wacdo/pkg/redis"
)

// Service point d'entrée de tous les services métier.
type Service struct {
	Auth        AuthService
	User        UserService
	Restaurant  RestaurantService
	Poste       PosteService
	Affectation AffectationService
	Export      ExportService
}

// NewService construit l'agrégat des services.
// rdb peut être nil : la révocation des tokens est alors désactivée.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var blacklist tokenBlacklist
	if rdb != nil {
		blacklist = rdb
	}

	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, blacklist, logger),
		User:        NewUserService(repo, logger),
		Restaurant:  NewRestaurantService(repo, logger),
		Poste:       NewPosteService(repo, logger),
		Affectation: NewAffectationService(repo, logger),
		Export:      NewExportService(repo, logger),
	}
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/model"
	"github.com/dimitrilongo/wacdo/internal/repository"
	"github.com/dimitrilongo/wacdo/internal/validation"
)

// ErrRestaurantNotFound restaurant inconnu.
var ErrRestaurantNotFound = errors.New("restaurant introuvable")

// RestaurantService gestion des restaurants.
type RestaurantService interface {
	List(ctx context.Context) ([]dto.RestaurantResponse, error)
	// GetByID renvoie la fiche détaillée, affectations comprises (avec
	// collaborateur et poste, triées par date de début décroissante).
	GetByID(ctx context.Context, id uint) (*dto.RestaurantDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error)
	Delete(ctx context.Context, id uint) error
}

type restaurantService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewRestaurantService crée le service des restaurants.
func NewRestaurantService(repo *repository.Repository, logger *zap.Logger) RestaurantService {
	return &restaurantService{repo: repo, logger: logger, now: time.Now}
}

func (s *restaurantService) List(ctx context.Context) ([]dto.RestaurantResponse, error) {
	restaurants, err := s.repo.Restaurant.List(ctx)
	if err != nil {
		s.logger.Error("liste des restaurants", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		result = append(result, dto.FromRestaurant(&restaurants[i]))
	}
	return result, nil
}

func (s *restaurantService) GetByID(ctx context.Context, id uint) (*dto.RestaurantDetailResponse, error) {
	restaurant, err := s.repo.Restaurant.GetByID(ctx, id, repository.IncludeAffectations)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("recherche du restaurant", zap.Error(err))
		return nil, err
	}

	asOf := s.now()
	affectations := make([]dto.AffectationResponse, 0, len(restaurant.Affectations))
	for i := range restaurant.Affectations {
		affectations = append(affectations, dto.FromAffectation(&restaurant.Affectations[i], asOf))
	}

	return &dto.RestaurantDetailResponse{
		RestaurantResponse: dto.FromRestaurant(restaurant),
		Affectations:       affectations,
	}, nil
}

func (s *restaurantService) Create(ctx context.Context, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}

	restaurant := &model.Restaurant{
		Nom:        req.Nom,
		Adresse:    req.Adresse,
		CodePostal: req.CodePostal,
		Ville:      req.Ville,
	}
	if err := s.repo.Restaurant.Create(ctx, restaurant); err != nil {
		s.logger.Error("création du restaurant", zap.Error(err))
		return nil, err
	}

	resp := dto.FromRestaurant(restaurant)
	return &resp, nil
}

func (s *restaurantService) Update(ctx context.Context, id uint, req *dto.UpdateRestaurantRequest) (*dto.RestaurantResponse, error) {
	restaurant, err := s.repo.Restaurant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		s.logger.Error("recherche du restaurant", zap.Error(err))
		return nil, err
	}

	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}

	if req.Nom != nil {
		restaurant.Nom = *req.Nom
	}
	if req.Adresse != nil {
		restaurant.Adresse = *req.Adresse
	}
	if req.CodePostal != nil {
		restaurant.CodePostal = *req.CodePostal
	}
	if req.Ville != nil {
		restaurant.Ville = *req.Ville
	}

	if err := s.repo.Restaurant.Update(ctx, restaurant); err != nil {
		s.logger.Error("mise à jour du restaurant", zap.Error(err))
		return nil, err
	}

	resp := dto.FromRestaurant(restaurant)
	return &resp, nil
}

func (s *restaurantService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Restaurant.Delete(ctx, id)
	if err != nil {
		s.logger.Error("suppression du restaurant", zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

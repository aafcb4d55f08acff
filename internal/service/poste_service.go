package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/model"
	"github.com/dimitrilongo/wacdo/internal/repository"
	"github.com/dimitrilongo/wacdo/internal/validation"
)

// ErrPosteNotFound poste inconnu.
var ErrPosteNotFound = errors.New("poste introuvable")

// PosteService gestion des postes.
type PosteService interface {
	List(ctx context.Context) ([]dto.PosteResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PosteResponse, error)
	Create(ctx context.Context, req *dto.CreatePosteRequest) (*dto.PosteResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePosteRequest) (*dto.PosteResponse, error)
	Delete(ctx context.Context, id uint) error
}

type posteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPosteService crée le service des postes.
func NewPosteService(repo *repository.Repository, logger *zap.Logger) PosteService {
	return &posteService{repo: repo, logger: logger}
}

func (s *posteService) List(ctx context.Context) ([]dto.PosteResponse, error) {
	postes, err := s.repo.Poste.List(ctx)
	if err != nil {
		s.logger.Error("liste des postes", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PosteResponse, 0, len(postes))
	for i := range postes {
		result = append(result, dto.FromPoste(&postes[i]))
	}
	return result, nil
}

func (s *posteService) GetByID(ctx context.Context, id uint) (*dto.PosteResponse, error) {
	poste, err := s.repo.Poste.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPosteNotFound
		}
		s.logger.Error("recherche du poste", zap.Error(err))
		return nil, err
	}

	resp := dto.FromPoste(poste)
	return &resp, nil
}

func (s *posteService) Create(ctx context.Context, req *dto.CreatePosteRequest) (*dto.PosteResponse, error) {
	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}

	poste := &model.Poste{Nom: req.Nom}
	if err := s.repo.Poste.Create(ctx, poste); err != nil {
		s.logger.Error("création du poste", zap.Error(err))
		return nil, err
	}

	resp := dto.FromPoste(poste)
	return &resp, nil
}

func (s *posteService) Update(ctx context.Context, id uint, req *dto.UpdatePosteRequest) (*dto.PosteResponse, error) {
	poste, err := s.repo.Poste.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPosteNotFound
		}
		s.logger.Error("recherche du poste", zap.Error(err))
		return nil, err
	}

	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}

	if req.Nom != nil {
		poste.Nom = *req.Nom
	}

	if err := s.repo.Poste.Update(ctx, poste); err != nil {
		s.logger.Error("mise à jour du poste", zap.Error(err))
		return nil, err
	}

	resp := dto.FromPoste(poste)
	return &resp, nil
}

func (s *posteService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Poste.Delete(ctx, id)
	if err != nil {
		s.logger.Error("suppression du poste", zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrPosteNotFound
	}
	return nil
}

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

// ErrAffectationNotFound affectation inconnue.
var ErrAffectationNotFound = errors.New("affectation introuvable")

// AffectationService cycle de vie des affectations.
//
// La seule règle structurelle est date_fin >= date_debut quand date_fin est
// présente, toujours vérifiée sur le résultat fusionné lors d'une mise à
// jour partielle. Le chevauchement d'affectations d'un même collaborateur
// n'est volontairement pas empêché (comportement d'origine conservé).
type AffectationService interface {
	// List renvoie les affectations avec leurs entités liées, filtrées au
	// besoin par statut dérivé, calculé avec la même classification que
	// partout ailleurs.
	List(ctx context.Context, req *dto.ListAffectationsRequest) ([]dto.AffectationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AffectationResponse, error)
	Create(ctx context.Context, req *dto.CreateAffectationRequest) (*dto.AffectationResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAffectationRequest) (*dto.AffectationResponse, error)
	Delete(ctx context.Context, id uint) error
	// CurrentForUser renvoie l'affectation courante du collaborateur : la
	// plus récente par date de début, ex æquo départagés par l'id le plus
	// élevé, sans filtrage par statut. Une affectation terminée dont la
	// date de début est postérieure masque donc une affectation en cours
	// plus ancienne — règle d'affichage d'origine, conservée telle quelle.
	CurrentForUser(ctx context.Context, userID uint) (*dto.AffectationResponse, error)
}

type affectationService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewAffectationService crée le service des affectations.
func NewAffectationService(repo *repository.Repository, logger *zap.Logger) AffectationService {
	return &affectationService{repo: repo, logger: logger, now: time.Now}
}

func (s *affectationService) List(ctx context.Context, req *dto.ListAffectationsRequest) ([]dto.AffectationResponse, error) {
	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}

	affectations, err := s.repo.Affectation.List(ctx, repository.IncludeRelations)
	if err != nil {
		s.logger.Error("liste des affectations", zap.Error(err))
		return nil, err
	}

	asOf := s.now()
	result := make([]dto.AffectationResponse, 0, len(affectations))
	for i := range affectations {
		a := &affectations[i]
		if req.Statut != "" && a.Statut(asOf) != model.Statut(req.Statut) {
			continue
		}
		result = append(result, dto.FromAffectation(a, asOf))
	}
	return result, nil
}

func (s *affectationService) GetByID(ctx context.Context, id uint) (*dto.AffectationResponse, error) {
	affectation, err := s.repo.Affectation.GetByID(ctx, id, repository.IncludeRelations)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffectationNotFound
		}
		s.logger.Error("recherche de l'affectation", zap.Error(err))
		return nil, err
	}

	resp := dto.FromAffectation(affectation, s.now())
	return &resp, nil
}

func (s *affectationService) Create(ctx context.Context, req *dto.CreateAffectationRequest) (*dto.AffectationResponse, error) {
	errs := validation.Struct(req)
	if errs == nil {
		errs = validation.Errors{}
	}

	// 1. Les trois références doivent exister. Toutes les violations sont
	// collectées avant de répondre, aucune écriture n'a lieu en cas d'échec.
	s.checkReference(ctx, errs, "user_id", req.UserID, s.repo.User.Exists)
	s.checkReference(ctx, errs, "restaurant_id", req.RestaurantID, s.repo.Restaurant.Exists)
	s.checkReference(ctx, errs, "poste_id", req.PosteID, s.repo.Poste.Exists)

	// 2. Dates : date_fin, si présente, doit être >= date_debut.
	var debut time.Time
	var fin *time.Time
	if _, ok := errs["date_debut"]; !ok {
		debut, _ = dto.ParseDate(req.DateDebut)
	}
	if req.DateFin != nil {
		if _, ok := errs["date_fin"]; !ok {
			f, _ := dto.ParseDate(*req.DateFin)
			fin = &f
			if !debut.IsZero() && f.Before(debut) {
				errs.Add("date_fin", "Le champ date_fin doit être une date postérieure ou égale à date_debut.")
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	affectation := &model.Affectation{
		UserID:       req.UserID,
		RestaurantID: req.RestaurantID,
		PosteID:      req.PosteID,
		DateDebut:    debut,
		DateFin:      fin,
	}
	if err := s.repo.Affectation.Create(ctx, affectation); err != nil {
		s.logger.Error("création de l'affectation", zap.Error(err))
		return nil, err
	}

	// Recharge avec les entités liées pour la réponse.
	return s.GetByID(ctx, affectation.ID)
}

func (s *affectationService) Update(ctx context.Context, id uint, req *dto.UpdateAffectationRequest) (*dto.AffectationResponse, error) {
	affectation, err := s.repo.Affectation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffectationNotFound
		}
		s.logger.Error("recherche de l'affectation", zap.Error(err))
		return nil, err
	}

	errs := validation.Struct(req)
	if errs == nil {
		errs = validation.Errors{}
	}

	if req.UserID != nil {
		s.checkReference(ctx, errs, "user_id", *req.UserID, s.repo.User.Exists)
	}
	if req.RestaurantID != nil {
		s.checkReference(ctx, errs, "restaurant_id", *req.RestaurantID, s.repo.Restaurant.Exists)
	}
	if req.PosteID != nil {
		s.checkReference(ctx, errs, "poste_id", *req.PosteID, s.repo.Poste.Exists)
	}

	// Les règles de dates s'appliquent au résultat fusionné : une date_fin
	// seule est validée contre la date_debut existante. date_fin nulle
	// rouvre l'affectation.
	debut := affectation.DateDebut
	if req.DateDebut != nil {
		if _, ok := errs["date_debut"]; !ok {
			debut, _ = dto.ParseDate(*req.DateDebut)
		}
	}
	fin := affectation.DateFin
	switch {
	case req.ClearDateFin:
		fin = nil
	case req.DateFin != nil:
		if _, ok := errs["date_fin"]; !ok {
			f, _ := dto.ParseDate(*req.DateFin)
			fin = &f
		}
	}
	if fin != nil && fin.Before(debut) {
		errs.Add("date_fin", "Le champ date_fin doit être une date postérieure ou égale à date_debut.")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if req.UserID != nil {
		affectation.UserID = *req.UserID
	}
	if req.RestaurantID != nil {
		affectation.RestaurantID = *req.RestaurantID
	}
	if req.PosteID != nil {
		affectation.PosteID = *req.PosteID
	}
	affectation.DateDebut = debut
	affectation.DateFin = fin

	if err := s.repo.Affectation.Update(ctx, affectation); err != nil {
		s.logger.Error("mise à jour de l'affectation", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, affectation.ID)
}

func (s *affectationService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Affectation.Delete(ctx, id)
	if err != nil {
		s.logger.Error("suppression de l'affectation", zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrAffectationNotFound
	}
	return nil
}

func (s *affectationService) CurrentForUser(ctx context.Context, userID uint) (*dto.AffectationResponse, error) {
	exists, err := s.repo.User.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("vérification du collaborateur", zap.Error(err))
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	affectation, err := s.repo.Affectation.CurrentForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffectationNotFound
		}
		s.logger.Error("recherche de l'affectation courante", zap.Error(err))
		return nil, err
	}

	resp := dto.FromAffectation(affectation, s.now())
	return &resp, nil
}

// checkReference ajoute une violation si la référence n'existe pas.
// Une erreur technique est loguée sans bloquer la collecte des violations.
func (s *affectationService) checkReference(
	ctx context.Context,
	errs validation.Errors,
	field string,
	id uint,
	exists func(context.Context, uint) (bool, error),
) {
	if id == 0 {
		return // déjà signalé par la règle required
	}
	ok, err := exists(ctx, id)
	if err != nil {
		s.logger.Error("vérification de référence", zap.String("champ", field), zap.Error(err))
		errs.Add(field, "Le champ "+field+" sélectionné est invalide.")
		return
	}
	if !ok {
		errs.Add(field, "Le champ "+field+" sélectionné est invalide.")
	}
}

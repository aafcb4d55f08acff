package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dimitrilongo/wacdo/internal/model"
)

// AffectationRepository accès aux affectations.
type AffectationRepository interface {
	Create(ctx context.Context, affectation *model.Affectation) error
	GetByID(ctx context.Context, id uint, includes ...Include) (*model.Affectation, error)
	List(ctx context.Context, includes ...Include) ([]model.Affectation, error)
	Update(ctx context.Context, affectation *model.Affectation) error
	Delete(ctx context.Context, id uint) (int64, error)
	// CurrentForUser renvoie l'affectation la plus récente par date de début
	// (ex æquo départagés par l'id le plus élevé), quel que soit son statut.
	CurrentForUser(ctx context.Context, userID uint) (*model.Affectation, error)
	// LatestOpenForUsers renvoie, pour l'attache aux listes de users, toutes
	// les affectations ouvertes ou à venir à la date donnée, avec restaurant
	// et poste, triées par date de début décroissante.
	LatestOpenForUsers(ctx context.Context, asOf time.Time) ([]model.Affectation, error)
}

type affectationRepo struct {
	db *gorm.DB
}

// NewAffectationRepo crée le repository des affectations.
func NewAffectationRepo(db *gorm.DB) AffectationRepository {
	return &affectationRepo{db: db}
}

func (r *affectationRepo) withIncludes(ctx context.Context, includes []Include) *gorm.DB {
	db := r.db.WithContext(ctx)
	for _, inc := range includes {
		if inc == IncludeRelations {
			db = db.Preload("User").Preload("Restaurant").Preload("Poste")
		}
	}
	return db
}

func (r *affectationRepo) Create(ctx context.Context, affectation *model.Affectation) error {
	return r.db.WithContext(ctx).Create(affectation).Error
}

func (r *affectationRepo) GetByID(ctx context.Context, id uint, includes ...Include) (*model.Affectation, error) {
	var affectation model.Affectation
	if err := r.withIncludes(ctx, includes).First(&affectation, id).Error; err != nil {
		return nil, err
	}
	return &affectation, nil
}

func (r *affectationRepo) List(ctx context.Context, includes ...Include) ([]model.Affectation, error) {
	var affectations []model.Affectation
	err := r.withIncludes(ctx, includes).
		Order("date_debut DESC, id DESC").
		Find(&affectations).Error
	if err != nil {
		return nil, err
	}
	return affectations, nil
}

func (r *affectationRepo) Update(ctx context.Context, affectation *model.Affectation) error {
	return r.db.WithContext(ctx).Save(affectation).Error
}

func (r *affectationRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Affectation{}, id)
	return result.RowsAffected, result.Error
}

func (r *affectationRepo) CurrentForUser(ctx context.Context, userID uint) (*model.Affectation, error) {
	var affectation model.Affectation
	err := r.db.WithContext(ctx).
		Preload("Restaurant").Preload("Poste").
		Where("user_id = ?", userID).
		Order("date_debut DESC, id DESC").
		First(&affectation).Error
	if err != nil {
		return nil, err
	}
	return &affectation, nil
}

func (r *affectationRepo) LatestOpenForUsers(ctx context.Context, asOf time.Time) ([]model.Affectation, error) {
	// Comparaison au jour près, comme la classification par statut : une
	// affectation qui se termine aujourd'hui reste courante toute la journée.
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	var affectations []model.Affectation
	err := r.db.WithContext(ctx).
		Preload("Restaurant").Preload("Poste").
		Where("date_fin IS NULL OR date_fin >= ?", day).
		Order("date_debut DESC, id DESC").
		Find(&affectations).Error
	if err != nil {
		return nil, err
	}
	return affectations, nil
}

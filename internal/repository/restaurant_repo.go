package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dimitrilongo/wacdo/internal/model"
)

// RestaurantRepository accès aux restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	GetByID(ctx context.Context, id uint, includes ...Include) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	Update(ctx context.Context, restaurant *model.Restaurant) error
	// Delete renvoie le nombre de lignes supprimées ; zéro signifie que
	// l'enregistrement n'existait pas (suppression idempotente).
	Delete(ctx context.Context, id uint) (int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type restaurantRepo struct {
	db *gorm.DB
}

// NewRestaurantRepo crée le repository des restaurants.
func NewRestaurantRepo(db *gorm.DB) RestaurantRepository {
	return &restaurantRepo{db: db}
}

func (r *restaurantRepo) Create(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepo) GetByID(ctx context.Context, id uint, includes ...Include) (*model.Restaurant, error) {
	db := r.db.WithContext(ctx)
	for _, inc := range includes {
		if inc == IncludeAffectations {
			db = db.
				Preload("Affectations", func(db *gorm.DB) *gorm.DB {
					return db.Order("date_debut DESC")
				}).
				Preload("Affectations.User").
				Preload("Affectations.Poste")
		}
	}

	var restaurant model.Restaurant
	if err := db.First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepo) List(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.WithContext(ctx).Order("nom").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepo) Update(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

func (r *restaurantRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Restaurant{}, id)
	return result.RowsAffected, result.Error
}

func (r *restaurantRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Restaurant{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dimitrilongo/wacdo/internal/model"
)

// PosteRepository accès aux postes.
type PosteRepository interface {
	Create(ctx context.Context, poste *model.Poste) error
	GetByID(ctx context.Context, id uint) (*model.Poste, error)
	List(ctx context.Context) ([]model.Poste, error)
	Update(ctx context.Context, poste *model.Poste) error
	Delete(ctx context.Context, id uint) (int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type posteRepo struct {
	db *gorm.DB
}

// NewPosteRepo crée le repository des postes.
func NewPosteRepo(db *gorm.DB) PosteRepository {
	return &posteRepo{db: db}
}

func (r *posteRepo) Create(ctx context.Context, poste *model.Poste) error {
	return r.db.WithContext(ctx).Create(poste).Error
}

func (r *posteRepo) GetByID(ctx context.Context, id uint) (*model.Poste, error) {
	var poste model.Poste
	if err := r.db.WithContext(ctx).First(&poste, id).Error; err != nil {
		return nil, err
	}
	return &poste, nil
}

func (r *posteRepo) List(ctx context.Context) ([]model.Poste, error) {
	var postes []model.Poste
	if err := r.db.WithContext(ctx).Order("nom").Find(&postes).Error; err != nil {
		return nil, err
	}
	return postes, nil
}

func (r *posteRepo) Update(ctx context.Context, poste *model.Poste) error {
	return r.db.WithContext(ctx).Save(poste).Error
}

func (r *posteRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Poste{}, id)
	return result.RowsAffected, result.Error
}

func (r *posteRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Poste{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dimitrilongo/wacdo/internal/model"
)

// UserRepository accès aux collaborateurs.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) (int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// EmailTaken vérifie l'unicité de l'e-mail ; excludeID exclut
	// l'enregistrement en cours de modification (zéro = aucun).
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	HasAdmin(ctx context.Context) (bool, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo crée le repository des collaborateurs.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("nom, prenom").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	return result.RowsAffected, result.Error
}

func (r *userRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepo) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	db := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *userRepo) HasAdmin(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("is_admin = ?", true).Count(&count).Error
	return count > 0, err
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/model"
	"github.com/dimitrilongo/wacdo/internal/repository"
	"github.com/dimitrilongo/wacdo/internal/validation"
)

// ErrUserNotFound collaborateur inconnu.
var ErrUserNotFound = errors.New("utilisateur introuvable")

// UserService gestion des collaborateurs.
type UserService interface {
	// List renvoie tous les collaborateurs, chacun avec au plus son
	// affectation en cours (la plus récente parmi les ouvertes ou à venir).
	List(ctx context.Context) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uint) error
	// EnsureAdmin crée le compte administrateur initial si aucun admin
	// n'existe. Idempotent, appelé au démarrage.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewUserService crée le service des collaborateurs.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger, now: time.Now}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("liste des utilisateurs", zap.Error(err))
		return nil, err
	}

	// Affectations ouvertes ou à venir, triées par date de début
	// décroissante : la première rencontrée par user est la courante.
	asOf := s.now()
	open, err := s.repo.Affectation.LatestOpenForUsers(ctx, asOf)
	if err != nil {
		s.logger.Error("affectations courantes", zap.Error(err))
		return nil, err
	}
	currentByUser := make(map[uint]*model.Affectation, len(users))
	for i := range open {
		a := &open[i]
		if _, ok := currentByUser[a.UserID]; !ok {
			currentByUser[a.UserID] = a
		}
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp := dto.FromUser(&users[i])
		if a, ok := currentByUser[users[i].ID]; ok {
			resp.Affectations = []dto.AffectationResponse{dto.FromAffectation(a, asOf)}
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("recherche de l'utilisateur", zap.Error(err))
		return nil, err
	}

	resp := dto.FromUser(user)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	errs := validation.Struct(req)
	if errs == nil {
		errs = validation.Errors{}
	}

	taken, err := s.repo.User.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		s.logger.Error("vérification de l'unicité de l'e-mail", zap.Error(err))
		return nil, err
	}
	if taken {
		errs.Add("email", "L'adresse e-mail est déjà utilisée.")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hachage du mot de passe", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Nom:        req.Nom,
		Prenom:     req.Prenom,
		Email:      req.Email,
		MotDePasse: string(hash),
	}
	if req.DateEmbauche != nil {
		embauche, err := dto.ParseDate(*req.DateEmbauche)
		if err != nil {
			return nil, validation.Errors{"date_embauche": "Le champ date_embauche doit être une date valide."}
		}
		user.DateEmbauche = &embauche
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("création de l'utilisateur", zap.Error(err))
		return nil, err
	}

	resp := dto.FromUser(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("recherche de l'utilisateur", zap.Error(err))
		return nil, err
	}

	errs := validation.Struct(req)
	if errs == nil {
		errs = validation.Errors{}
	}

	// L'unicité de l'e-mail exclut l'enregistrement en cours : remettre
	// sa propre adresse n'est pas un conflit.
	if req.Email != nil {
		taken, err := s.repo.User.EmailTaken(ctx, *req.Email, id)
		if err != nil {
			s.logger.Error("vérification de l'unicité de l'e-mail", zap.Error(err))
			return nil, err
		}
		if taken {
			errs.Add("email", "L'adresse e-mail est déjà utilisée.")
		}
	}

	// La confirmation n'est exigée que si le mot de passe change.
	if req.Password != nil {
		if req.PasswordConfirmation == nil || *req.PasswordConfirmation != *req.Password {
			errs.Add("password", "La confirmation du champ password ne correspond pas.")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if req.Nom != nil {
		user.Nom = *req.Nom
	}
	if req.Prenom != nil {
		user.Prenom = *req.Prenom
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.DateEmbauche != nil {
		embauche, err := dto.ParseDate(*req.DateEmbauche)
		if err != nil {
			return nil, validation.Errors{"date_embauche": "Le champ date_embauche doit être une date valide."}
		}
		user.DateEmbauche = &embauche
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("hachage du mot de passe", zap.Error(err))
			return nil, err
		}
		user.MotDePasse = string(hash)
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("mise à jour de l'utilisateur", zap.Error(err))
		return nil, err
	}

	resp := dto.FromUser(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.User.Delete(ctx, id)
	if err != nil {
		s.logger.Error("suppression de l'utilisateur", zap.Error(err))
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) EnsureAdmin(ctx context.Context, email, password string) error {
	has, err := s.repo.User.HasAdmin(ctx)
	if err != nil {
		return err
	}
	if has || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	embauche := s.now()
	admin := &model.User{
		Nom:          "Admin",
		Prenom:       "Super",
		Email:        email,
		MotDePasse:   string(hash),
		DateEmbauche: &embauche,
		IsAdmin:      true,
	}
	if err := s.repo.User.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("compte administrateur initial créé", zap.String("email", email))
	return nil
}

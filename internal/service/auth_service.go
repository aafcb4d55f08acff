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
	"github.com/dimitrilongo/wacdo/pkg/jwt"
)

var (
	// ErrInvalidCredentials e-mail inconnu ou mot de passe erroné.
	ErrInvalidCredentials = errors.New("identifiants incorrects")
	// ErrAdminRequired identifiants valides mais compte non administrateur :
	// le front d'administration est réservé aux admins.
	ErrAdminRequired = errors.New("privilèges administrateur requis")
)

// tokenBlacklist révocation des tokens à la déconnexion.
// Nil quand Redis est indisponible : la déconnexion devient un no-op côté
// serveur et le token expire naturellement.
type tokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService authentification et session.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Me(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authService struct {
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist tokenBlacklist
	logger    *zap.Logger
}

// NewAuthService crée le service d'authentification.
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, blacklist tokenBlacklist, logger *zap.Logger) AuthService {
	return &authService{
		repo:      repo,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	// 1. Validation de tous les champs d'un coup.
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

	// 2. Hachage du mot de passe puis création.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hachage du mot de passe", zap.Error(err))
		return nil, err
	}

	embauche, err := dto.ParseDate(req.DateEmbauche)
	if err != nil {
		return nil, validation.Errors{"date_embauche": "Le champ date_embauche doit être une date valide."}
	}

	user := &model.User{
		Nom:          req.Nom,
		Prenom:       req.Prenom,
		Email:        req.Email,
		MotDePasse:   string(hash),
		DateEmbauche: &embauche,
		IsAdmin:      req.IsAdmin,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("création de l'utilisateur", zap.Error(err))
		return nil, err
	}

	// 3. Émission du token.
	token, err := s.jwtMgr.Generate(user.ID, user.IsAdmin)
	if err != nil {
		s.logger.Error("génération du token", zap.Error(err))
		return nil, err
	}

	resp := dto.FromUser(user)
	return &dto.AuthResponse{
		Success: true,
		Message: "Utilisateur créé avec succès",
		User:    &resp,
		Token:   token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if errs := validation.Struct(req); errs != nil {
		return nil, errs
	}

	// 1. Recherche par e-mail ; un e-mail inconnu et un mauvais mot de passe
	// renvoient la même erreur.
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("recherche de l'utilisateur", zap.Error(err))
		return nil, err
	}

	// 2. Vérification du mot de passe.
	if err := bcrypt.CompareHashAndPassword([]byte(user.MotDePasse), []byte(req.MotDePasse)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. L'outil est réservé aux administrateurs : un collaborateur
	// correctement authentifié mais non admin est refusé.
	if !user.IsAdmin {
		return nil, ErrAdminRequired
	}

	token, err := s.jwtMgr.Generate(user.ID, user.IsAdmin)
	if err != nil {
		s.logger.Error("génération du token", zap.Error(err))
		return nil, err
	}

	resp := dto.FromUser(user)
	return &dto.AuthResponse{
		Success: true,
		Message: "Connexion réussie",
		User:    &resp,
		Token:   token,
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.blacklist == nil {
		s.logger.Warn("déconnexion sans Redis : le token expirera naturellement")
		return nil
	}
	return s.blacklist.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) Me(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("recherche de l'utilisateur courant", zap.Error(err))
		return nil, err
	}

	resp := dto.FromUser(user)
	return &resp, nil
}

package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/service"
	"github.com/dimitrilongo/wacdo/pkg/response"
)

// AuthHandler endpoints d'authentification.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler crée l'AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login connexion au back-office.
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case respondValidation(c, err):
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Unauthorized(c, "Identifiants incorrects")
		case errors.Is(err, service.ErrAdminRequired):
			response.Forbidden(c, "Accès refusé : privilèges administrateur requis")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Register création de compte.
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if !respondValidation(c, err) {
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Logout révoque le token courant.
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("token_jti")
	exp, _ := c.Get("token_exp")
	expiresAt, _ := exp.(time.Time)

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, response.Envelope{Success: true, Message: "Déconnexion réussie"})
}

// Me renvoie le compte connecté.
// GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := mustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(c, "Compte introuvable")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dto.AuthResponse{Success: true, User: result})
}

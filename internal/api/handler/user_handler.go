package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/service"
	"github.com/dimitrilongo/wacdo/pkg/response"
)

// UserHandler endpoints des collaborateurs.
type UserHandler struct {
	userSvc        service.UserService
	affectationSvc service.AffectationService
}

// NewUserHandler crée le UserHandler.
func NewUserHandler(userSvc service.UserService, affectationSvc service.AffectationService) *UserHandler {
	return &UserHandler{userSvc: userSvc, affectationSvc: affectationSvc}
}

// List liste les collaborateurs avec leur affectation courante.
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	result, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get fiche d'un collaborateur.
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Utilisateur introuvable")
	if !ok {
		return
	}

	result, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create crée un collaborateur.
// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, result)
}

// Update met à jour un collaborateur.
// PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Utilisateur introuvable")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.userSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete supprime un collaborateur et, en cascade, ses affectations.
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Utilisateur introuvable")
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

// CurrentAffectation affectation courante d'un collaborateur.
// GET /api/users/:id/affectation
func (h *UserHandler) CurrentAffectation(c *gin.Context) {
	id, ok := parseID(c, "Utilisateur introuvable")
	if !ok {
		return
	}

	result, err := h.affectationSvc.CurrentForUser(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "Utilisateur introuvable")
		case errors.Is(err, service.ErrAffectationNotFound):
			response.NotFound(c, "Aucune affectation pour ce collaborateur")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case respondValidation(c, err):
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "Utilisateur introuvable")
	default:
		response.InternalError(c)
	}
}

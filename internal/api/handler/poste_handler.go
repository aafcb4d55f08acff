package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/service"
	"github.com/dimitrilongo/wacdo/pkg/response"
)

// PosteHandler endpoints des postes.
type PosteHandler struct {
	posteSvc service.PosteService
}

// NewPosteHandler crée le PosteHandler.
func NewPosteHandler(posteSvc service.PosteService) *PosteHandler {
	return &PosteHandler{posteSvc: posteSvc}
}

// List liste les postes.
// GET /api/postes
func (h *PosteHandler) List(c *gin.Context) {
	result, err := h.posteSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get fiche d'un poste.
// GET /api/postes/:id
func (h *PosteHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Poste introuvable")
	if !ok {
		return
	}

	result, err := h.posteSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create crée un poste.
// POST /api/postes
func (h *PosteHandler) Create(c *gin.Context) {
	var req dto.CreatePosteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.posteSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, result)
}

// Update met à jour un poste.
// PUT /api/postes/:id
func (h *PosteHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Poste introuvable")
	if !ok {
		return
	}

	var req dto.UpdatePosteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.posteSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete supprime un poste et, en cascade, ses affectations.
// DELETE /api/postes/:id
func (h *PosteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Poste introuvable")
	if !ok {
		return
	}

	if err := h.posteSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *PosteHandler) handleError(c *gin.Context, err error) {
	switch {
	case respondValidation(c, err):
	case errors.Is(err, service.ErrPosteNotFound):
		response.NotFound(c, "Poste introuvable")
	default:
		response.InternalError(c)
	}
}

package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/service"
	"github.com/dimitrilongo/wacdo/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AffectationHandler endpoints des affectations.
type AffectationHandler struct {
	affectationSvc service.AffectationService
	exportSvc      service.ExportService
}

// NewAffectationHandler crée l'AffectationHandler.
func NewAffectationHandler(affectationSvc service.AffectationService, exportSvc service.ExportService) *AffectationHandler {
	return &AffectationHandler{affectationSvc: affectationSvc, exportSvc: exportSvc}
}

// List liste les affectations, filtrables par statut dérivé.
// GET /api/affectations?statut=en_cours|terminee|a_venir
func (h *AffectationHandler) List(c *gin.Context) {
	var req dto.ListAffectationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Paramètres de requête invalides")
		return
	}

	result, err := h.affectationSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Get fiche d'une affectation avec ses entités liées.
// GET /api/affectations/:id
func (h *AffectationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Affectation introuvable")
	if !ok {
		return
	}

	result, err := h.affectationSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create crée une affectation.
// POST /api/affectations
func (h *AffectationHandler) Create(c *gin.Context) {
	var req dto.CreateAffectationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.affectationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, result)
}

// Update met à jour une affectation.
// PUT /api/affectations/:id
func (h *AffectationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Affectation introuvable")
	if !ok {
		return
	}

	var req dto.UpdateAffectationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.affectationSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete supprime une affectation.
// DELETE /api/affectations/:id
func (h *AffectationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Affectation introuvable")
	if !ok {
		return
	}

	if err := h.affectationSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

// Export télécharge le planning complet au format Excel.
// GET /api/affectations/export
func (h *AffectationHandler) Export(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportAffectations(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoAffectations) {
			response.NotFound(c, "Aucune affectation à exporter")
			return
		}
		response.InternalError(c)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *AffectationHandler) handleError(c *gin.Context, err error) {
	switch {
	case respondValidation(c, err):
	case errors.Is(err, service.ErrAffectationNotFound):
		response.NotFound(c, "Affectation introuvable")
	default:
		response.InternalError(c)
	}
}

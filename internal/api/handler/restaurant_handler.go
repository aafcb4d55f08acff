package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dimitrilongo/wacdo/internal/dto"
	"github.com/dimitrilongo/wacdo/internal/service"
	"github.com/dimitrilongo/wacdo/pkg/response"
)

// RestaurantHandler endpoints des restaurants.
type RestaurantHandler struct {
	restaurantSvc service.RestaurantService
}

// NewRestaurantHandler crée le RestaurantHandler.
func NewRestaurantHandler(restaurantSvc service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantSvc: restaurantSvc}
}

// List liste les restaurants.
// GET /api/restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	result, err := h.restaurantSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get fiche détaillée d'un restaurant, affectations comprises.
// GET /api/restaurants/:id
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "Restaurant introuvable")
	if !ok {
		return
	}

	result, err := h.restaurantSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create crée un restaurant.
// POST /api/restaurants
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.restaurantSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, result)
}

// Update met à jour un restaurant.
// PUT /api/restaurants/:id
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Restaurant introuvable")
	if !ok {
		return
	}

	var req dto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Corps de requête invalide")
		return
	}

	result, err := h.restaurantSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete supprime un restaurant et, en cascade, ses affectations.
// DELETE /api/restaurants/:id
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Restaurant introuvable")
	if !ok {
		return
	}

	if err := h.restaurantSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *RestaurantHandler) handleError(c *gin.Context, err error) {
	switch {
	case respondValidation(c, err):
	case errors.Is(err, service.ErrRestaurantNotFound):
		response.NotFound(c, "Restaurant introuvable")
	default:
		response.InternalError(c)
	}
}

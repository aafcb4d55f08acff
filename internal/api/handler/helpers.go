package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dimitrilongo/wacdo/internal/validation"
	"github.com/dimitrilongo/wacdo/pkg/response"
)

// parseID extrait l'identifiant numérique du chemin. Un id non numérique
// est traité comme un enregistrement inexistant : 404, pas 400.
func parseID(c *gin.Context, notFoundMessage string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.NotFound(c, notFoundMessage)
		return 0, false
	}
	return uint(id), true
}

// mustGetUserID extrait le user_id injecté par le middleware JWT.
// ok=false signifie que la réponse 401 a déjà été écrite.
func mustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "Authentification requise")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, "Authentification requise")
		return 0, false
	}
	return id, true
}

// respondValidation écrit le 422 si l'erreur porte des violations de
// champs ; sinon renvoie false et laisse l'appelant classer l'erreur.
func respondValidation(c *gin.Context, err error) bool {
	var errs validation.Errors
	if errors.As(err, &errs) {
		response.ValidationFailed(c, errs)
		return true
	}
	return false
}

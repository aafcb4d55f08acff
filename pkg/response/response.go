package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope structure des réponses d'erreur et des réponses d'authentification.
// Les endpoints de ressources renvoient leurs enregistrements en JSON brut ;
// seules les erreurs et le module auth utilisent l'enveloppe.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ── Réponses de succès ──

// OK 200 avec le payload brut.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 avec le payload brut.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 sans corps.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── Réponses d'erreur ──

// ValidationFailed 422 avec le détail champ par champ.
func ValidationFailed(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Message: "Erreurs de validation",
		Errors:  errs,
	})
}

// BadRequest 400, corps illisible ou paramètre inexploitable.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// Unauthorized 401.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Envelope{Success: false, Message: message})
}

// Forbidden 403.
func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, Envelope{Success: false, Message: message})
}

// NotFound 404.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{Success: false, Message: message})
}

// InternalError 500 sans détail technique côté client.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "Erreur interne du serveur",
	})
}

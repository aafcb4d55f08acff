package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen borne la longueur d'un Request-ID fourni par le client.
const requestIDMaxLen = 64

// RequestID lit X-Request-ID ou en génère un, l'injecte dans le contexte
// et le renvoie dans la réponse. Le logger le reprend dans chaque ligne.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimitrilongo/wacdo/pkg/response"
)

// BodyLimit plafonne la taille du corps des requêtes.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				c.JSON(http.StatusRequestEntityTooLarge, response.Envelope{
					Success: false,
					Message: "Corps de requête trop volumineux",
				})
				return
			}
		}
	}
}

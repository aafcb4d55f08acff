package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dimitrilongo/wacdo/pkg/redis"
	"github.com/dimitrilongo/wacdo/pkg/response"
)

// RateLimit limite le nombre de requêtes par IP et par route, compté dans
// Redis. Monté sur /login contre la force brute. rdb nil ou en erreur :
// passage sans limitation, même dégradation que la liste noire.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, response.Envelope{
				Success: false,
				Message: "Trop de tentatives, réessayez plus tard",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

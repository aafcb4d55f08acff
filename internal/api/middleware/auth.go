package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dimitrilongo/wacdo/pkg/jwt"
	"github.com/dimitrilongo/wacdo/pkg/redis"
	"github.com/dimitrilongo/wacdo/pkg/response"
)

// JWTAuth extrait et vérifie le token de Authorization: Bearer <token>.
// Les claims sont injectées dans le contexte ; le jti et l'expiration
// servent à la déconnexion. rdb peut être nil : la liste noire est alors
// ignorée et seule la signature fait foi.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authentification requise")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "En-tête d'authentification invalide")
			c.Abort()
			return
		}

		claims, err := jwtMgr.Parse(parts[1])
		if err != nil {
			response.Unauthorized(c, "Token invalide ou expiré")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			// Redis en erreur : on laisse passer, la signature reste vérifiée.
			if err == nil && revoked {
				response.Unauthorized(c, "Token révoqué")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("token_jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_exp", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// AdminOnly refuse les comptes non administrateurs.
// Doit être monté après JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists {
			response.Unauthorized(c, "Authentification requise")
			c.Abort()
			return
		}
		if admin, ok := isAdmin.(bool); !ok || !admin {
			response.Forbidden(c, "Accès refusé : privilèges administrateur requis")
			c.Abort()
			return
		}

		c.Next()
	}
}

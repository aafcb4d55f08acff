package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dimitrilongo/wacdo/config"
)

var (
	ErrTokenExpired = errors.New("token expiré")
	ErrTokenInvalid = errors.New("token invalide")
)

// Claims contenu des tokens émis par l'application.
type Claims struct {
	UserID  uint `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
	jwtv5.RegisteredClaims
}

// Manager émet et vérifie les tokens porteurs.
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewManager crée le gestionnaire de tokens.
func NewManager(cfg *config.AuthConfig) *Manager {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: ttl,
	}
}

// Generate émet un token signé HS256 pour l'utilisateur donné.
// Le jti permet la révocation à la déconnexion (liste noire Redis).
func (m *Manager) Generate(userID uint, isAdmin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.tokenTTL)),
			Issuer:    "wacdo-manager",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse vérifie la signature et l'expiration puis renvoie les claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

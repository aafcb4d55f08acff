package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dimitrilongo/wacdo/config"
)

// Client enveloppe la connexion Redis.
// Utilisé pour la liste noire des tokens révoqués à la déconnexion.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient ouvre la connexion Redis et vérifie la disponibilité par un Ping.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion Redis: %w", err)
	}

	logger.Info("connexion Redis établie", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Liste noire des tokens ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken révoque un jti jusqu'à l'expiration naturelle du token.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token déjà expiré, rien à révoquer
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted indique si un jti a été révoqué.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── Limitation de débit ──

// CheckRateLimit compteur à fenêtre fixe : autorise au plus limit requêtes
// par clé et par fenêtre. La clé expire avec la fenêtre.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close ferme la connexion Redis.
func (c *Client) Close() error {
	return c.rdb.Close()
}

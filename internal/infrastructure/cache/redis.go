// Package cache implementa el cache de agregados del dashboard sobre Redis.
// El cache es opcional: si Redis no responde al arranque, el sistema opera
// sin cache y cada consulta se recalcula.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/pkg/config"
	"github.com/beanshub/roastery-api/pkg/logger"
)

// NewRedisClient abre el cliente y verifica la conexión con un ping.
// Devuelve nil si Redis no está disponible.
func NewRedisClient(cfg config.RedisConfig, log *logger.Logger) *redis.Client {
	if cfg.Addr == "" {
		log.Warn().Msg("REDIS_ADDR vacía: cache deshabilitado")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis no disponible: cache deshabilitado")
		_ = client.Close()
		return nil
	}
	log.Info().Str("addr", cfg.Addr).Msg("redis conectado")
	return client
}

var _ ports.SummaryCache = (*RedisCache)(nil)

// RedisCache implementa ports.SummaryCache con valores JSON y TTL.
// Tolera client nil: todas las operaciones son un miss.
type RedisCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisCache construye el cache sobre un cliente ya verificado (o nil).
func NewRedisCache(client *redis.Client, log *logger.Logger) *RedisCache {
	return &RedisCache{client: client, log: log}
}

// Get deserializa el valor cacheado en dest. Devuelve false en miss o error.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("redis: fallo en GET")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("redis: valor cacheado corrupto")
		return false
	}
	return true
}

// Set serializa y guarda el valor con TTL. Los fallos solo se registran.
func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("redis: fallo al serializar valor")
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("redis: fallo en SET")
	}
}

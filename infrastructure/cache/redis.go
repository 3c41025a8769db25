package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/synnex-gateway/internal/config"
)

var ErrCacheDisabled = errors.New("redis cache disabled: no address configured")

// NewRedisClient abre a conexão e valida com PING. Sem endereços configurados
// devolve ErrCacheDisabled para o chamador optar pelo cache nulo.
func NewRedisClient(ctx context.Context, cfg config.Redis) (redis.UniversalClient, error) {
	if len(cfg.Addrs) == 0 {
		return nil, ErrCacheDisabled
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const priceKeyPrefix = "synnex:price-availability"

// PriceCache guarda respostas de preço e disponibilidade bem-sucedidas por lista de SKUs
//
//go:generate mockgen -source=price_cache.go -destination=mocks/mock_price_cache.go -package=mocks
type PriceCache interface {
	Get(ctx context.Context, skus []string) (*synnexdomain.PriceAvailability, bool, error)
	Set(ctx context.Context, skus []string, value synnexdomain.PriceAvailability) error
}

type redisPriceCache struct {
	client  redis.UniversalClient
	country synnexdomain.CountryCode
	ttl     time.Duration
}

func NewRedisPriceCache(client redis.UniversalClient, country synnexdomain.CountryCode, ttl time.Duration) PriceCache {
	return &redisPriceCache{
		client:  client,
		country: country,
		ttl:     ttl,
	}
}

func (c *redisPriceCache) Get(ctx context.Context, skus []string) (*synnexdomain.PriceAvailability, bool, error) {
	raw, err := c.client.Get(ctx, PriceKey(c.country, skus)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("erro ao ler cache de preço: %w", err)
	}

	var value synnexdomain.PriceAvailability
	if err := json.UnmarshalFromString(raw, &value); err != nil {
		return nil, false, fmt.Errorf("erro ao decodificar cache de preço: %w", err)
	}

	return &value, true, nil
}

func (c *redisPriceCache) Set(ctx context.Context, skus []string, value synnexdomain.PriceAvailability) error {
	raw, err := json.MarshalToString(value)
	if err != nil {
		return fmt.Errorf("erro ao codificar cache de preço: %w", err)
	}

	if err := c.client.Set(ctx, PriceKey(c.country, skus), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar cache de preço: %w", err)
	}

	return nil
}

// PriceKey preserva a ordem e as repetições dos SKUs: o lineNumber de cada
// entrada é a posição do SKU na requisição
func PriceKey(country synnexdomain.CountryCode, skus []string) string {
	return fmt.Sprintf("%s:%s:%s", priceKeyPrefix, country, strings.Join(skus, "|"))
}

type noopPriceCache struct{}

// NewNoopPriceCache é usado quando o Redis não está configurado
func NewNoopPriceCache() PriceCache {
	return noopPriceCache{}
}

func (noopPriceCache) Get(context.Context, []string) (*synnexdomain.PriceAvailability, bool, error) {
	return nil, false, nil
}

func (noopPriceCache) Set(context.Context, []string, synnexdomain.PriceAvailability) error {
	return nil
}

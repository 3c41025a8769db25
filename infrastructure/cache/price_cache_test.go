package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/internal/config"
)

func samplePriceAvailability() synnexdomain.PriceAvailability {
	return synnexdomain.PriceAvailability{
		CustomerNo: "123456",
		PriceAvailabilityList: []synnexdomain.PriceAvailabilityItem{
			{
				SynnexSKU:     "5584628",
				Status:        "Active",
				Price:         1234.56,
				TotalQuantity: 10,
				LineNumber:    1,
			},
		},
	}
}

func TestPriceKey(t *testing.T) {
	assert.Equal(t, "synnex:price-availability:US:222|111|222", PriceKey(synnexdomain.CountryUS, []string{"222", "111", "222"}))
	assert.NotEqual(t, PriceKey(synnexdomain.CountryCA, []string{"b", "a"}), PriceKey(synnexdomain.CountryCA, []string{"a", "b"}))
	assert.NotEqual(t, PriceKey(synnexdomain.CountryUS, []string{"a", "b"}), PriceKey(synnexdomain.CountryUS, []string{"a", "a", "b"}))
	assert.NotEqual(t, PriceKey(synnexdomain.CountryUS, []string{"a"}), PriceKey(synnexdomain.CountryCA, []string{"a"}))
}

func TestRedisPriceCache_Get(t *testing.T) {
	skus := []string{"5584628"}
	key := PriceKey(synnexdomain.CountryUS, skus)

	t.Run("Cache hit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewRedisPriceCache(db, synnexdomain.CountryUS, time.Minute)

		raw, err := json.MarshalToString(samplePriceAvailability())
		require.NoError(t, err)
		mock.ExpectGet(key).SetVal(raw)

		value, found, err := c.Get(context.Background(), skus)

		require.NoError(t, err)
		assert.True(t, found)
		require.NotNil(t, value)
		assert.Equal(t, samplePriceAvailability(), *value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cache miss", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewRedisPriceCache(db, synnexdomain.CountryUS, time.Minute)

		mock.ExpectGet(key).RedisNil()

		value, found, err := c.Get(context.Background(), skus)

		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Erro no redis", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewRedisPriceCache(db, synnexdomain.CountryUS, time.Minute)

		mock.ExpectGet(key).SetErr(errors.New("connection refused"))

		_, found, err := c.Get(context.Background(), skus)

		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "erro ao ler cache de preço")
	})

	t.Run("Valor corrompido", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := NewRedisPriceCache(db, synnexdomain.CountryUS, time.Minute)

		mock.ExpectGet(key).SetVal("{not-json")

		_, found, err := c.Get(context.Background(), skus)

		require.Error(t, err)
		assert.False(t, found)
	})
}

func TestRedisPriceCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisPriceCache(db, synnexdomain.CountryUS, 5*time.Minute)

	skus := []string{"5584628"}
	raw, err := json.MarshalToString(samplePriceAvailability())
	require.NoError(t, err)

	mock.ExpectSet(PriceKey(synnexdomain.CountryUS, skus), raw, 5*time.Minute).SetVal("OK")

	assert.NoError(t, c.Set(context.Background(), skus, samplePriceAvailability()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoopPriceCache(t *testing.T) {
	c := NewNoopPriceCache()

	value, found, err := c.Get(context.Background(), []string{"1"})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
	assert.NoError(t, c.Set(context.Background(), []string{"1"}, samplePriceAvailability()))
}

func TestNewRedisClient_SemEndereco(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.Redis{})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrCacheDisabled)
}

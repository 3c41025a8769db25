package synnexclient

import (
	"context"

	"github.com/pkg/errors"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexxml"
)

const opGetPriceAvailability = "Failed to get price and availability"

func (c *SynnexClient) GetPriceAvailability(ctx context.Context, req synnexdomain.PriceAvailabilityRequest) (synnexdomain.Response[synnexdomain.PriceAvailability], error) {
	payload, err := c.builder.BuildPriceAvailabilityRequest(req)
	if err != nil {
		return synnexdomain.Response[synnexdomain.PriceAvailability]{}, errors.Wrap(err, opGetPriceAvailability)
	}

	return call[synnexdomain.PriceAvailability](ctx, c, opGetPriceAvailability, c.baseURL+pathPriceAvailability, payload, synnexxml.NormalizePriceAvailability)
}

package synnexclient

import (
	"context"

	"github.com/pkg/errors"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexxml"
)

const (
	opGetFreightQuote   = "Failed to get freight quote"
	opGetFreightWithZip = "Failed to get freight quote with zip code"
)

func (c *SynnexClient) GetFreightQuote(ctx context.Context, req synnexdomain.FreightQuoteRequest) (synnexdomain.Response[synnexdomain.FreightQuote], error) {
	payload, err := c.builder.BuildFreightQuoteRequest(req)
	if err != nil {
		return synnexdomain.Response[synnexdomain.FreightQuote]{}, errors.Wrap(err, opGetFreightQuote)
	}

	return call[synnexdomain.FreightQuote](ctx, c, opGetFreightQuote, c.baseURL+pathFreightQuote, payload, synnexxml.NormalizeFreightQuote)
}

func (c *SynnexClient) GetFreightWithZip(ctx context.Context, req synnexdomain.FreightWithZipRequest) (synnexdomain.Response[synnexdomain.FreightQuote], error) {
	payload, err := c.builder.BuildFreightWithZipRequest(req)
	if err != nil {
		return synnexdomain.Response[synnexdomain.FreightQuote]{}, errors.Wrap(err, opGetFreightWithZip)
	}

	return call[synnexdomain.FreightQuote](ctx, c, opGetFreightWithZip, c.baseURL+pathFreightQuote, payload, synnexxml.NormalizeFreightQuote)
}

package synnexclient

import (
	"context"

	"github.com/pkg/errors"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexxml"
)

const opGetInvoice = "Failed to get invoice"

// GetInvoice consulta o serviço de faturas, que responde direto na URL da família invoice.
func (c *SynnexClient) GetInvoice(ctx context.Context, query synnexdomain.InvoiceQuery) (synnexdomain.Response[synnexdomain.InvoiceResult], error) {
	payload, err := c.builder.BuildInvoiceRequest(query)
	if err != nil {
		return synnexdomain.Response[synnexdomain.InvoiceResult]{}, errors.Wrap(err, opGetInvoice)
	}

	return call[synnexdomain.InvoiceResult](ctx, c, opGetInvoice, c.invoiceURL, payload, synnexxml.NormalizeInvoice)
}

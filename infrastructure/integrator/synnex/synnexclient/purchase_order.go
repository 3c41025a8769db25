package synnexclient

import (
	"context"

	"github.com/pkg/errors"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexxml"
)

const (
	opSubmitPO       = "Failed to submit PO"
	opGetOrderStatus = "Failed to get PO status"
)

// SubmitPO envia um pedido de compra. Não há nova tentativa: reenviar pode duplicar o pedido.
func (c *SynnexClient) SubmitPO(ctx context.Context, req synnexdomain.OrderRequest) (synnexdomain.Response[synnexdomain.OrderResponse], error) {
	payload, err := c.builder.BuildOrderRequest(req)
	if err != nil {
		return synnexdomain.Response[synnexdomain.OrderResponse]{}, errors.Wrap(err, opSubmitPO)
	}

	return call[synnexdomain.OrderResponse](ctx, c, opSubmitPO, c.baseURL+pathPurchaseOrder, payload, synnexxml.NormalizeOrderResponse)
}

func (c *SynnexClient) GetOrderStatus(ctx context.Context, req synnexdomain.StatusRequest) (synnexdomain.Response[synnexdomain.OrderStatus], error) {
	payload, err := c.builder.BuildStatusRequest(req)
	if err != nil {
		return synnexdomain.Response[synnexdomain.OrderStatus]{}, errors.Wrap(err, opGetOrderStatus)
	}

	return call[synnexdomain.OrderStatus](ctx, c, opGetOrderStatus, c.baseURL+pathPurchaseOrder, payload, synnexxml.NormalizeOrderStatus)
}

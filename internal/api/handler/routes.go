package handler

import (
	"net/http"

	"github.com/vfg2006/synnex-gateway/internal/api/handler/router"
	"github.com/vfg2006/synnex-gateway/internal/domain"
	"github.com/vfg2006/synnex-gateway/internal/usecases/authenticating"
	"github.com/vfg2006/synnex-gateway/internal/usecases/invoicing"
	"github.com/vfg2006/synnex-gateway/internal/usecases/ordering"
	"github.com/vfg2006/synnex-gateway/internal/usecases/quoting"
	"github.com/vfg2006/synnex-gateway/pkg/middleware"
)

func scope(s string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.RequireScope(s)}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/token",
			Method:  http.MethodPost,
			Handler: IssueToken(service),
		},
	}
}

func PurchaseOrders(service ordering.Orderer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/purchase-orders",
			Method:      http.MethodPost,
			Handler:     SubmitPurchaseOrder(service),
			Middlewares: scope(domain.ScopeOrdersWrite),
		},
		{
			Path:        "/v1/purchase-orders",
			Method:      http.MethodGet,
			Handler:     ListPurchaseOrders(service),
			Middlewares: scope(domain.ScopeOrdersRead),
		},
		{
			Path:        "/v1/purchase-orders/:poNumber/status",
			Method:      http.MethodGet,
			Handler:     GetPurchaseOrderStatus(service),
			Middlewares: scope(domain.ScopeOrdersRead),
		},
	}
}

func Quotes(service quoting.Quoter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/price-availability",
			Method:      http.MethodPost,
			Handler:     GetPriceAvailability(service),
			Middlewares: scope(domain.ScopeQuotesRead),
		},
		{
			Path:        "/v1/freight-quotes",
			Method:      http.MethodPost,
			Handler:     GetFreightQuote(service),
			Middlewares: scope(domain.ScopeQuotesRead),
		},
		{
			Path:        "/v1/freight-quotes/zip",
			Method:      http.MethodPost,
			Handler:     GetFreightWithZip(service),
			Middlewares: scope(domain.ScopeQuotesRead),
		},
	}
}

func Invoices(service invoicing.Invoicer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices",
			Method:      http.MethodGet,
			Handler:     GetInvoice(service),
			Middlewares: scope(domain.ScopeInvoicesRead),
		},
	}
}

func CronJobs(syncer OrderStatusSyncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/order-status/run",
			Method:      http.MethodPost,
			Handler:     RunOrderStatusSync(syncer),
			Middlewares: scope(domain.ScopeCronRun),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncer),
			Middlewares: scope(domain.ScopeCronRun),
		},
	}
}

package synnexclient

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexxml"
)

// Client expõe as operações XML B2B do distribuidor. Erros de negócio voltam
// dentro de Response; o error de retorno fica para falhas de transporte e de parse.
//
//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks
type Client interface {
	SubmitPO(ctx context.Context, req synnexdomain.OrderRequest) (synnexdomain.Response[synnexdomain.OrderResponse], error)
	GetOrderStatus(ctx context.Context, req synnexdomain.StatusRequest) (synnexdomain.Response[synnexdomain.OrderStatus], error)
	GetPriceAvailability(ctx context.Context, req synnexdomain.PriceAvailabilityRequest) (synnexdomain.Response[synnexdomain.PriceAvailability], error)
	GetFreightQuote(ctx context.Context, req synnexdomain.FreightQuoteRequest) (synnexdomain.Response[synnexdomain.FreightQuote], error)
	GetFreightWithZip(ctx context.Context, req synnexdomain.FreightWithZipRequest) (synnexdomain.Response[synnexdomain.FreightQuote], error)
	GetInvoice(ctx context.Context, query synnexdomain.InvoiceQuery) (synnexdomain.Response[synnexdomain.InvoiceResult], error)
}

type SynnexClient struct {
	config     synnexdomain.ClientConfig
	builder    *synnexxml.Builder
	transport  Transport
	baseURL    string
	invoiceURL string
}

type Option func(*options)

type options struct {
	transport  Transport
	baseURL    string
	invoiceURL string
	builder    []synnexxml.BuilderOption
}

func WithTransport(transport Transport) Option {
	return func(o *options) {
		o.transport = transport
	}
}

// WithBaseURL substitui a origem padrão (usado em testes e proxies).
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

func WithInvoiceURL(url string) Option {
	return func(o *options) {
		o.invoiceURL = url
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.builder = append(o.builder, synnexxml.WithClock(now))
	}
}

func NewClient(cfg synnexdomain.ClientConfig, opts ...Option) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.baseURL == "" {
		url, err := BaseURL(cfg.Environment, cfg.Country, synnexdomain.APIFamilyDefault)
		if err != nil {
			return nil, err
		}
		o.baseURL = url
	}

	if o.invoiceURL == "" {
		url, err := BaseURL(cfg.Environment, cfg.Country, synnexdomain.APIFamilyInvoice)
		if err != nil {
			return nil, err
		}
		o.invoiceURL = url
	}

	if o.transport == nil {
		o.transport = NewHTTPTransport(cfg.Timeout)
	}

	return &SynnexClient{
		config:     cfg,
		builder:    synnexxml.NewBuilder(cfg, o.builder...),
		transport:  o.transport,
		baseURL:    o.baseURL,
		invoiceURL: o.invoiceURL,
	}, nil
}

// call envia o payload, normaliza a resposta com o formato indicado e decodifica em T.
func call[T any](ctx context.Context, c *SynnexClient, operation, url, payload string, shape synnexxml.Shape) (synnexdomain.Response[T], error) {
	logger := logrus.WithFields(logrus.Fields{
		"operation": operation,
		"url":       url,
		"country":   c.config.Country,
	})

	start := time.Now()
	body, err := c.transport.Post(ctx, url, []byte(payload))
	if err != nil {
		logger.WithError(err).Error("Erro na comunicação com o distribuidor")
		return synnexdomain.Response[T]{}, errors.Wrap(err, operation)
	}

	tree, err := synnexxml.Normalize(body, shape)
	if err != nil {
		logger.WithError(err).Error("Resposta XML inválida do distribuidor")
		return synnexdomain.Response[T]{}, errors.Wrap(err, operation)
	}

	response, err := decodeResponse[T](tree)
	if err != nil {
		logger.WithError(err).Error("Erro ao decodificar resposta do distribuidor")
		return synnexdomain.Response[T]{}, errors.Wrap(err, operation)
	}

	logger.WithFields(logrus.Fields{
		"type":    response.Type,
		"elapsed": time.Since(start).String(),
	}).Debug("Resposta do distribuidor normalizada")

	return response, nil
}

package invoicing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexclient"
	"github.com/vfg2006/synnex-gateway/pkg/validator"
)

var ErrSynnexIntegration = errors.New("error calling synnex")

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Invoicer interface {
	GetInvoice(ctx context.Context, query synnexdomain.InvoiceQuery) (synnexdomain.Response[synnexdomain.InvoiceResult], error)
}

type Service struct {
	client    synnexclient.Client
	validator validator.Validator
}

func NewService(client synnexclient.Client, validator validator.Validator) Invoicer {
	return &Service{
		client:    client,
		validator: validator,
	}
}

// GetInvoice busca as faturas por PO ou por número de pedido do distribuidor
func (s *Service) GetInvoice(ctx context.Context, query synnexdomain.InvoiceQuery) (synnexdomain.Response[synnexdomain.InvoiceResult], error) {
	query.PONumber = strings.TrimSpace(query.PONumber)
	query.OrderNumber = strings.TrimSpace(query.OrderNumber)

	if err := s.validator.Validate(query); err != nil {
		return synnexdomain.Response[synnexdomain.InvoiceResult]{}, err
	}

	resp, err := s.client.GetInvoice(ctx, query)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"po_number":    query.PONumber,
			"order_number": query.OrderNumber,
		}).Error("Erro ao consultar fatura")
		return resp, fmt.Errorf("%w: %w", ErrSynnexIntegration, err)
	}

	return resp, nil
}

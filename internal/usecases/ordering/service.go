package ordering

import (
	"context"
	"errors"
	"strings"
	"time"

	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexclient"
	"github.com/vfg2006/synnex-gateway/infrastructure/messaging"
	"github.com/vfg2006/synnex-gateway/infrastructure/repository"
	"github.com/vfg2006/synnex-gateway/internal/config"
	"github.com/vfg2006/synnex-gateway/internal/domain"
	"github.com/vfg2006/synnex-gateway/pkg/apiErrors"
	"github.com/vfg2006/synnex-gateway/pkg/log"
	"github.com/vfg2006/synnex-gateway/pkg/utils"
	"github.com/vfg2006/synnex-gateway/pkg/validator"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Orderer interface {
	SubmitPurchaseOrder(ctx context.Context, req synnexdomain.OrderRequest) (synnexdomain.Response[synnexdomain.OrderResponse], error)
	GetOrderStatus(ctx context.Context, req synnexdomain.StatusRequest) (synnexdomain.Response[synnexdomain.OrderStatus], error)
	ListOpenOrders(ctx context.Context, filter domain.ListPurchaseOrdersFilter) ([]*domain.PurchaseOrderRecord, error)
	RefreshOrderStatus(ctx context.Context, record *domain.PurchaseOrderRecord) (bool, error)
}

type Service struct {
	client    synnexclient.Client
	repo      repository.PurchaseOrderRepository
	publisher messaging.EventPublisher
	validator validator.Validator
	cfg       *config.Config
	now       func() time.Time
}

func NewService(
	client synnexclient.Client,
	repo repository.PurchaseOrderRepository,
	publisher messaging.EventPublisher,
	validator validator.Validator,
	cfg *config.Config,
) Orderer {
	return &Service{
		client:    client,
		repo:      repo,
		publisher: publisher,
		validator: validator,
		cfg:       cfg,
		now:       time.Now,
	}
}

// SubmitPurchaseOrder envia o PO ao distribuidor e registra no diário quando aceito.
// Recusas de negócio voltam na resposta, sem erro.
func (s *Service) SubmitPurchaseOrder(ctx context.Context, req synnexdomain.OrderRequest) (synnexdomain.Response[synnexdomain.OrderResponse], error) {
	var empty synnexdomain.Response[synnexdomain.OrderResponse]

	if err := s.validator.Validate(req); err != nil {
		return empty, err
	}

	logger := log.ForContext(ctx).WithField("po_number", req.PONumber)
	s.warnUnknownWarehouses(logger, req)

	existing, err := s.repo.GetByPONumber(ctx, req.PONumber)
	if err != nil {
		return empty, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.PONumber, err.Error())
	}
	if existing != nil {
		return empty, NewOrderError(ErrDuplicatePurchaseOrder, apiErrors.ErrDuplicatePurchaseOrder, req.PONumber, "PO enviado em "+existing.SubmittedAt.Format(time.RFC3339))
	}

	resp, err := s.client.SubmitPO(ctx, req)
	if err != nil {
		logger.WithError(err).Error("Erro ao enviar pedido ao distribuidor")
		return empty, NewOrderError(ErrSynnexIntegration, apiErrors.ErrExternalService, req.PONumber, err.Error())
	}

	if !resp.IsSuccess() {
		logger.Warnf("Pedido recusado pelo distribuidor: %s", resp.Error.ErrorDetail)
		return resp, nil
	}

	if err := s.record(ctx, req, *resp.Success); err != nil {
		// O PO já foi aceito pelo distribuidor; a falha no diário não muda a resposta
		logger.WithError(err).Error("Erro ao registrar pedido no diário")
	}

	return resp, nil
}

func (s *Service) record(ctx context.Context, req synnexdomain.OrderRequest, resp synnexdomain.OrderResponse) error {
	id, err := utils.GenerateID()
	if err != nil {
		return NewOrderError(ErrGenerateID, apiErrors.ErrInternalServer, req.PONumber, err.Error())
	}

	customerNumber := req.CustomerNumber
	if customerNumber == "" {
		customerNumber = s.cfg.Synnex.AccountNumber
	}

	record := &domain.PurchaseOrderRecord{
		ID:              id,
		PONumber:        req.PONumber,
		CustomerNumber:  customerNumber,
		Country:         s.cfg.Synnex.Country,
		State:           domain.StateFromStatusCode(resp.Code),
		StatusCode:      resp.Code,
		OrderNumbers:    resp.OrderNumbers(),
		TrackingNumbers: []string{},
		ItemCount:       len(req.Items),
		SubmittedAt:     s.now(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicatePurchaseOrder) {
			return NewOrderError(ErrDuplicatePurchaseOrder, apiErrors.ErrDuplicatePurchaseOrder, req.PONumber, err.Error())
		}
		return NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, req.PONumber, err.Error())
	}

	return nil
}

func (s *Service) warnUnknownWarehouses(logger log.Logger, req synnexdomain.OrderRequest) {
	country := synnexdomain.CountryCode(s.cfg.Synnex.Country)

	warehouses := []string{req.Shipment.ShipFromWarehouse}
	for _, item := range req.Items {
		warehouses = append(warehouses, item.ShipFromWarehouse)
	}

	for _, code := range warehouses {
		if code != "" && !synnexdomain.IsKnownWarehouse(country, code) {
			logger.Warnf("Armazém %s não consta na tabela de %s", code, country)
		}
	}
}

// GetOrderStatus consulta o distribuidor e, se o PO estiver no diário, atualiza o registro
func (s *Service) GetOrderStatus(ctx context.Context, req synnexdomain.StatusRequest) (synnexdomain.Response[synnexdomain.OrderStatus], error) {
	var empty synnexdomain.Response[synnexdomain.OrderStatus]

	if err := s.validator.Validate(req); err != nil {
		return empty, err
	}

	logger := log.ForContext(ctx).WithField("po_number", req.PONumber)

	resp, err := s.client.GetOrderStatus(ctx, req)
	if err != nil {
		logger.WithError(err).Error("Erro ao consultar status no distribuidor")
		return empty, NewOrderError(ErrSynnexIntegration, apiErrors.ErrExternalService, req.PONumber, err.Error())
	}

	if !resp.IsSuccess() {
		return resp, nil
	}

	record, err := s.repo.GetByPONumber(ctx, req.PONumber)
	if err != nil {
		logger.WithError(err).Warn("Erro ao consultar pedido no diário")
		return resp, nil
	}

	if record != nil {
		if _, err := s.applyStatus(ctx, record, *resp.Success); err != nil {
			logger.WithError(err).Warn("Erro ao atualizar pedido no diário")
		}
	}

	return resp, nil
}

func (s *Service) ListOpenOrders(ctx context.Context, filter domain.ListPurchaseOrdersFilter) ([]*domain.PurchaseOrderRecord, error) {
	records, err := s.repo.ListOpen(ctx, filter)
	if err != nil {
		return nil, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return records, nil
}

// RefreshOrderStatus reconsulta um PO do diário e informa se o código de status mudou
func (s *Service) RefreshOrderStatus(ctx context.Context, record *domain.PurchaseOrderRecord) (bool, error) {
	logger := log.ForContext(ctx).WithField("po_number", record.PONumber)

	resp, err := s.client.GetOrderStatus(ctx, synnexdomain.StatusRequest{PONumber: record.PONumber})
	if err != nil {
		return false, NewOrderError(ErrSynnexIntegration, apiErrors.ErrExternalService, record.PONumber, err.Error())
	}

	if !resp.IsSuccess() {
		logger.Warnf("Distribuidor não retornou status: %s", resp.Error.ErrorDetail)
		return false, nil
	}

	return s.applyStatus(ctx, record, *resp.Success)
}

// applyStatus publica o evento antes de gravar, para que uma falha na publicação
// deixe o registro como estava e a próxima execução tente de novo
func (s *Service) applyStatus(ctx context.Context, record *domain.PurchaseOrderRecord, status synnexdomain.OrderStatus) (bool, error) {
	code := status.StatusCode()
	changed := !strings.EqualFold(code, record.StatusCode)
	now := s.now()

	orderNumbers := status.OrderNumbers()
	if len(orderNumbers) == 0 {
		orderNumbers = record.OrderNumbers
	}
	trackingNumbers := status.TrackingNumbers()

	if changed {
		event := domain.OrderStatusChanged{
			PONumber:        record.PONumber,
			PreviousStatus:  record.StatusCode,
			CurrentStatus:   code,
			OrderNumbers:    orderNumbers,
			TrackingNumbers: trackingNumbers,
			ChangedAt:       now,
		}
		if err := s.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
			return false, NewOrderError(ErrPublishEvent, apiErrors.ErrCommunication, record.PONumber, err.Error())
		}
	}

	update := domain.PurchaseOrderStatusUpdate{
		PONumber:        record.PONumber,
		State:           domain.StateFromStatusCode(code),
		StatusCode:      code,
		OrderNumbers:    orderNumbers,
		TrackingNumbers: trackingNumbers,
		CheckedAt:       now,
	}

	if err := s.repo.UpdateStatus(ctx, update); err != nil {
		return changed, NewOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, record.PONumber, err.Error())
	}

	record.State = update.State
	record.StatusCode = update.StatusCode
	record.OrderNumbers = update.OrderNumbers
	record.TrackingNumbers = update.TrackingNumbers
	record.LastCheckedAt = &now

	return changed, nil
}

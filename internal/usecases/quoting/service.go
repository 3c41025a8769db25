package quoting

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/synnex-gateway/infrastructure/cache"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexclient"
	"github.com/vfg2006/synnex-gateway/pkg/validator"
)

var ErrSynnexIntegration = errors.New("error calling synnex")

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Quoter interface {
	GetPriceAvailability(ctx context.Context, req synnexdomain.PriceAvailabilityRequest) (synnexdomain.Response[synnexdomain.PriceAvailability], error)
	GetFreightQuote(ctx context.Context, req synnexdomain.FreightQuoteRequest) (synnexdomain.Response[synnexdomain.FreightQuote], error)
	GetFreightWithZip(ctx context.Context, req synnexdomain.FreightWithZipRequest) (synnexdomain.Response[synnexdomain.FreightQuote], error)
}

type Service struct {
	client    synnexclient.Client
	cache     cache.PriceCache
	validator validator.Validator
	country   synnexdomain.CountryCode
}

func NewService(client synnexclient.Client, priceCache cache.PriceCache, validator validator.Validator, country synnexdomain.CountryCode) Quoter {
	return &Service{
		client:    client,
		cache:     priceCache,
		validator: validator,
		country:   country,
	}
}

// GetPriceAvailability consulta o cache antes do distribuidor. Só respostas de sucesso são guardadas.
func (s *Service) GetPriceAvailability(ctx context.Context, req synnexdomain.PriceAvailabilityRequest) (synnexdomain.Response[synnexdomain.PriceAvailability], error) {
	var empty synnexdomain.Response[synnexdomain.PriceAvailability]

	if err := s.validator.Validate(req); err != nil {
		return empty, err
	}

	logger := logrus.WithField("skus", req.SKUs)

	cached, found, err := s.cache.Get(ctx, req.SKUs)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler cache de preço e disponibilidade")
	}
	if found && matchesLines(cached, req.SKUs) {
		logger.Debug("Preço e disponibilidade servidos do cache")
		return synnexdomain.Succeeded(*cached), nil
	}
	if found {
		logger.Warn("Entrada do cache não corresponde às linhas da requisição, consultando o distribuidor")
	}

	resp, err := s.client.GetPriceAvailability(ctx, req)
	if err != nil {
		return empty, fmt.Errorf("%w: %w", ErrSynnexIntegration, err)
	}

	if resp.IsSuccess() {
		if err := s.cache.Set(ctx, req.SKUs, *resp.Success); err != nil {
			logger.WithError(err).Warn("Erro ao gravar cache de preço e disponibilidade")
		}
	}

	return resp, nil
}

// matchesLines exige uma entrada por SKU, com lineNumber igual à posição na requisição
func matchesLines(cached *synnexdomain.PriceAvailability, skus []string) bool {
	if cached == nil || len(cached.PriceAvailabilityList) != len(skus) {
		return false
	}
	for i, item := range cached.PriceAvailabilityList {
		if item.LineNumber != i+1 {
			return false
		}
	}
	return true
}

func (s *Service) GetFreightQuote(ctx context.Context, req synnexdomain.FreightQuoteRequest) (synnexdomain.Response[synnexdomain.FreightQuote], error) {
	if err := s.validator.Validate(req); err != nil {
		return synnexdomain.Response[synnexdomain.FreightQuote]{}, err
	}

	s.warnUnknownWarehouse(req.ShipFromWarehouse)

	resp, err := s.client.GetFreightQuote(ctx, req)
	if err != nil {
		return resp, fmt.Errorf("%w: %w", ErrSynnexIntegration, err)
	}

	return resp, nil
}

func (s *Service) GetFreightWithZip(ctx context.Context, req synnexdomain.FreightWithZipRequest) (synnexdomain.Response[synnexdomain.FreightQuote], error) {
	if err := s.validator.Validate(req); err != nil {
		return synnexdomain.Response[synnexdomain.FreightQuote]{}, err
	}

	s.warnUnknownWarehouse(req.ShipFromWarehouse)

	resp, err := s.client.GetFreightWithZip(ctx, req)
	if err != nil {
		return resp, fmt.Errorf("%w: %w", ErrSynnexIntegration, err)
	}

	return resp, nil
}

// O código segue para o distribuidor mesmo fora da tabela, que pode estar desatualizada
func (s *Service) warnUnknownWarehouse(code string) {
	if !synnexdomain.IsKnownWarehouse(s.country, code) {
		logrus.WithFields(logrus.Fields{
			"warehouse": code,
			"country":   s.country,
		}).Warn("Armazém fora da tabela publicada")
	}
}

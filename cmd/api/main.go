package main

import (
	"context"
	"errors"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/synnex-gateway/infrastructure/cache"
	"github.com/vfg2006/synnex-gateway/infrastructure/database/postgres"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexclient"
	"github.com/vfg2006/synnex-gateway/infrastructure/messaging"
	"github.com/vfg2006/synnex-gateway/infrastructure/migration"
	"github.com/vfg2006/synnex-gateway/infrastructure/repository"
	"github.com/vfg2006/synnex-gateway/internal/api"
	"github.com/vfg2006/synnex-gateway/internal/config"
	"github.com/vfg2006/synnex-gateway/internal/scheduler"
	"github.com/vfg2006/synnex-gateway/internal/usecases/authenticating"
	"github.com/vfg2006/synnex-gateway/internal/usecases/invoicing"
	"github.com/vfg2006/synnex-gateway/internal/usecases/ordering"
	"github.com/vfg2006/synnex-gateway/internal/usecases/quoting"
	"github.com/vfg2006/synnex-gateway/pkg/validator"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)

	if cfg.Database.Migrate {
		if err := migration.Migrate(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	synnexClient, err := synnexclient.NewClient(cfg.SynnexClientConfig())
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cliente do distribuidor")
	}

	priceCache, closeCache := newPriceCache(ctx, cfg)
	publisher := newEventPublisher(cfg)
	requestValidator := validator.NewValidator()

	purchaseOrderRepo := repository.NewPurchaseOrderRepository(pgConn)

	authenticator := authenticating.NewService(cfg)
	orderService := ordering.NewService(synnexClient, purchaseOrderRepo, publisher, requestValidator, cfg)
	quoteService := quoting.NewService(synnexClient, priceCache, requestValidator, cfg.SynnexClientConfig().Country)
	invoiceService := invoicing.NewService(synnexClient, requestValidator)

	orderStatusSyncService := scheduler.NewOrderStatusSyncService(orderService, cfg)
	if err := orderStatusSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de status de pedidos")
	} else {
		logrus.Info("Agendador de sincronização de status de pedidos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		orderService,
		quoteService,
		invoiceService,
		orderStatusSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	server.OnShutdown("PostgreSQL", pgConn.Close)
	server.OnShutdown("cache de preços", closeCache)
	server.OnShutdown("publicador Kafka", func() error {
		publisher.Close()
		return nil
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newPriceCache usa o Redis quando configurado; sem ele as consultas vão sempre ao distribuidor
func newPriceCache(ctx context.Context, cfg *config.Config) (cache.PriceCache, func() error) {
	noop := func() error { return nil }

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if errors.Is(err, cache.ErrCacheDisabled) {
		logrus.Info("Cache de preços desabilitado")
		return cache.NewNoopPriceCache(), noop
	}
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de preços")
		return cache.NewNoopPriceCache(), noop
	}

	logrus.Info("Cache de preços no Redis habilitado")
	return cache.NewRedisPriceCache(client, cfg.SynnexClientConfig().Country, cfg.Redis.PriceCacheTTL), client.Close
}

func newEventPublisher(cfg *config.Config) messaging.EventPublisher {
	publisher, err := messaging.NewKafkaPublisher(cfg.Kafka)
	if errors.Is(err, messaging.ErrMessagingDisabled) {
		logrus.Info("Publicação de eventos desabilitada")
		return messaging.NewNoopPublisher()
	}
	if err != nil {
		logrus.WithError(err).Warn("Kafka indisponível, seguindo sem publicação de eventos")
		return messaging.NewNoopPublisher()
	}

	logrus.WithField("topic", cfg.Kafka.OrderStatusTopic).Info("Publicação de eventos no Kafka habilitada")
	return publisher
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/synnex-gateway/internal/api/handler"
	"github.com/vfg2006/synnex-gateway/internal/api/handler/router"
	"github.com/vfg2006/synnex-gateway/internal/config"
	"github.com/vfg2006/synnex-gateway/internal/usecases/authenticating"
	"github.com/vfg2006/synnex-gateway/internal/usecases/invoicing"
	"github.com/vfg2006/synnex-gateway/internal/usecases/ordering"
	"github.com/vfg2006/synnex-gateway/internal/usecases/quoting"
	"github.com/vfg2006/synnex-gateway/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type cleanup struct {
	name string
	fn   func() error
}

type Server struct {
	httpServer *http.Server
	cleanups   []cleanup
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	orderService ordering.Orderer,
	quoteService quoting.Quoter,
	invoiceService invoicing.Invoicer,
	orderSyncService handler.OrderStatusSyncer,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.PurchaseOrders(orderService)...),
		router.WithRoutes(handler.Quotes(quoteService)...),
		router.WithRoutes(handler.Invoices(invoiceService)...),
		router.WithRoutes(handler.CronJobs(orderSyncService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia HTTP completa, usada nos testes de ponta a ponta
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// OnShutdown registra recursos a liberar depois que o HTTP parar, em ordem inversa
func (s *Server) OnShutdown(name string, fn func() error) {
	s.cleanups = append(s.cleanups, cleanup{name: name, fn: fn})
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	for i := len(s.cleanups) - 1; i >= 0; i-- {
		c := s.cleanups[i]
		if err := c.fn(); err != nil {
			logrus.WithError(err).Warnf("Erro ao liberar %s", c.name)
			continue
		}
		logrus.Debugf("%s liberado", c.name)
	}

	return nil
}

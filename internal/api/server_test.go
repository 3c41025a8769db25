package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/internal/config"
	"github.com/vfg2006/synnex-gateway/internal/domain"
	authmocks "github.com/vfg2006/synnex-gateway/internal/usecases/authenticating/mocks"
	invoicemocks "github.com/vfg2006/synnex-gateway/internal/usecases/invoicing/mocks"
	ordermocks "github.com/vfg2006/synnex-gateway/internal/usecases/ordering/mocks"
	quotemocks "github.com/vfg2006/synnex-gateway/internal/usecases/quoting/mocks"
	"go.uber.org/mock/gomock"
)

type stubSyncer struct{}

func (stubSyncer) TriggerManualSync() bool { return true }
func (stubSyncer) GetStatus() map[string]any { return map[string]any{} }

func newTestServer(t *testing.T) (*Server, *authmocks.MockAuthenticator, *ordermocks.MockOrderer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	orders := ordermocks.NewMockOrderer(ctrl)

	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"*"}}}

	srv, err := New(cfg, auth, orders, quotemocks.NewMockQuoter(ctrl), invoicemocks.NewMockInvoicer(ctrl), stubSyncer{})
	require.NoError(t, err)

	return srv, auth, orders
}

func TestServer_Rotas(t *testing.T) {
	t.Run("Healthcheck é público", func(t *testing.T) {
		srv, _, _ := newTestServer(t)
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("Rota protegida sem token", func(t *testing.T) {
		srv, _, _ := newTestServer(t)
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/purchase-orders/PO-1/status", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Escopo insuficiente", func(t *testing.T) {
		srv, auth, _ := newTestServer(t)
		auth.EXPECT().ValidateToken("tk").Return(&domain.Claims{ClientID: "erp", Scopes: []string{domain.ScopeQuotesRead}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/purchase-orders/PO-1/status", nil)
		req.Header.Set("Authorization", "Bearer tk")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Consulta de status com escopo", func(t *testing.T) {
		srv, auth, orders := newTestServer(t)
		auth.EXPECT().ValidateToken("tk").Return(&domain.Claims{ClientID: "erp", Scopes: []string{domain.ScopeOrdersRead}}, nil)
		orders.EXPECT().GetOrderStatus(gomock.Any(), synnexdomain.StatusRequest{PONumber: "PO-1"}).
			Return(synnexdomain.Succeeded(synnexdomain.OrderStatus{PONumber: "PO-1", Code: "accepted"}), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/purchase-orders/PO-1/status", nil)
		req.Header.Set("Authorization", "Bearer tk")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"type":"success"`)
	})
}

func TestServer_Shutdown(t *testing.T) {
	srv, _, _ := newTestServer(t)

	var order []string
	srv.OnShutdown("banco", func() error {
		order = append(order, "banco")
		return nil
	})
	srv.OnShutdown("kafka", func() error {
		order = append(order, "kafka")
		return errors.New("falha ao fechar")
	})

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.Equal(t, []string{"kafka", "banco"}, order)
}

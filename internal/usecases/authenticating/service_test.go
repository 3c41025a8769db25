package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/synnex-gateway/internal/config"
	"github.com/vfg2006/synnex-gateway/internal/domain"
	"github.com/vfg2006/synnex-gateway/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3gr3do"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:           "chave-de-teste",
			ClientID:         "erp",
			ClientSecretHash: string(hash),
			ClientScopes:     []string{domain.ScopeOrdersWrite, domain.ScopeOrdersRead},
			TokenTTL:         time.Hour,
		},
	}

	return &Service{cfg: cfg, now: func() time.Time { return now }}
}

func TestService_IssueToken(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	service := newTestService(t, now)

	response, err := service.IssueToken(" erp ", "s3gr3do")

	require.NoError(t, err)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(3600), response.ExpiresIn)
	assert.Equal(t, []string{domain.ScopeOrdersWrite, domain.ScopeOrdersRead}, response.Scopes)

	claims, err := service.ValidateToken(response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "erp", claims.ClientID)
	assert.True(t, claims.HasScope(domain.ScopeOrdersWrite))
	assert.False(t, claims.HasScope(domain.ScopeCronRun))
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestService_IssueToken_Erros(t *testing.T) {
	tests := []struct {
		name         string
		clientID     string
		clientSecret string
		configure    func(cfg *config.Config)
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "Credenciais ausentes",
			clientID:     "",
			clientSecret: "s3gr3do",
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Cliente desconhecido",
			clientID:     "outro",
			clientSecret: "s3gr3do",
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "Segredo incorreto",
			clientID:     "erp",
			clientSecret: "errado",
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "Sem cliente configurado",
			clientID:     "erp",
			clientSecret: "s3gr3do",
			configure: func(cfg *config.Config) {
				cfg.Auth.ClientSecretHash = ""
			},
			expectedErr:  ErrAuthDisabled,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t, time.Now())
			if tt.configure != nil {
				tt.configure(service.cfg)
			}

			response, err := service.IssueToken(tt.clientID, tt.clientSecret)

			assert.Nil(t, response)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr))
			assert.True(t, IsCredentialsError(err) || errors.Is(err, ErrMissingRequiredData))

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.expectedCode, authErr.Code)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour).Truncate(time.Second)

	t.Run("Token expirado", func(t *testing.T) {
		issuer := newTestService(t, issuedAt)
		response, err := issuer.IssueToken("erp", "s3gr3do")
		require.NoError(t, err)

		validator := newTestService(t, time.Now())
		_, err = validator.ValidateToken(response.AccessToken)

		assert.True(t, errors.Is(err, ErrExpiredToken))
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Assinatura com outra chave", func(t *testing.T) {
		claims := domain.Claims{
			ClientID: "erp",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("outra-chave"))
		require.NoError(t, err)

		_, err = newTestService(t, time.Now()).ValidateToken(token)

		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := newTestService(t, time.Now()).ValidateToken("nao-e-um-jwt")

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, apiErrors.ErrInvalidToken, authErr.Code)
	})
}

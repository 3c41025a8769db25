package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/synnex-gateway/internal/config"
	"github.com/vfg2006/synnex-gateway/internal/domain"
	"github.com/vfg2006/synnex-gateway/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "synnex-gateway"

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type Authenticator interface {
	IssueToken(clientID, clientSecret string) (*domain.TokenResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

// IssueToken troca as credenciais do cliente por um token de acesso
func (s *Service) IssueToken(clientID, clientSecret string) (*domain.TokenResponse, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" || clientSecret == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "client_id e client_secret são obrigatórios")
	}

	if s.cfg.Auth.ClientID == "" || s.cfg.Auth.ClientSecretHash == "" {
		return nil, NewClientAuthError(ErrAuthDisabled, apiErrors.ErrInvalidCredentials, clientID, "nenhum cliente configurado")
	}

	if clientID != s.cfg.Auth.ClientID {
		return nil, NewClientAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, clientID, "cliente desconhecido")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.ClientSecretHash), []byte(clientSecret)); err != nil {
		return nil, NewClientAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, clientID, "segredo incorreto")
	}

	now := s.now()
	claims := domain.Claims{
		ClientID: clientID,
		Scopes:   s.cfg.Auth.ClientScopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		logrus.WithError(err).Error("Erro ao assinar token")
		return nil, NewClientAuthError(ErrTokenSigning, apiErrors.ErrInternalServer, clientID, err.Error())
	}

	logrus.WithField("client_id", clientID).Info("Token emitido")

	return &domain.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.Auth.TokenTTL.Seconds()),
		Scopes:      claims.Scopes,
	}, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims inválidas")
	}

	return claims, nil
}

package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/synnex-gateway/internal/usecases/authenticating"
	"github.com/vfg2006/synnex-gateway/internal/usecases/invoicing"
	"github.com/vfg2006/synnex-gateway/internal/usecases/ordering"
	"github.com/vfg2006/synnex-gateway/internal/usecases/quoting"
	"github.com/vfg2006/synnex-gateway/pkg/apiErrors"
	"github.com/vfg2006/synnex-gateway/pkg/validator"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON responde 200 também para erros de negócio do distribuidor, que seguem no corpo com type=error
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", err.Error())
		return false
	}
	return true
}

// writeServiceError converte os erros dos casos de uso em respostas padronizadas
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		validationErr *validator.ValidationError
		orderErr      *ordering.OrderError
		authErr       *authenticating.AuthError
	)

	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição inválida", validationErr.Fields)
	case errors.As(err, &orderErr):
		apiErrors.WriteError(w, orderErr.Code, orderErr.Err.Error(), orderErr.Details)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
	case errors.Is(err, quoting.ErrSynnexIntegration), errors.Is(err, invoicing.ErrSynnexIntegration):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o distribuidor", err.Error())
	default:
		logrus.WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}

package middleware

import (
	"net/http"

	"github.com/vfg2006/synnex-gateway/pkg/apiErrors"
	"github.com/vfg2006/synnex-gateway/pkg/log"
)

// RequireScope restringe a rota aos clientes cujo token carrega o escopo
func RequireScope(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
				return
			}

			if !claims.HasScope(scope) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"client_id": claims.ClientID,
					"scope":     scope,
				}).Warn("Acesso negado por escopo")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Escopo necessário: "+scope, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/synnex-gateway/internal/usecases/authenticating"
)

type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// IssueToken troca client_id/client_secret por um token de acesso
func IssueToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - IssueToken")

		var req TokenRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.IssueToken(req.ClientID, req.ClientSecret)
		if err != nil {
			logrus.WithField("client_id", req.ClientID).Warn("Falha na emissão de token")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, token)
	}
}

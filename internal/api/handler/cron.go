package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/synnex-gateway/pkg/apiErrors"
)

// OrderStatusSyncer é implementado pelo agendador de sincronização de status
type OrderStatusSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunOrderStatusSync dispara manualmente a sincronização de status dos POs abertos
func RunOrderStatusSync(syncer OrderStatusSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunOrderStatusSync")

		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		if !syncer.TriggerManualSync() {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message": "Sincronização já está em andamento",
				"started": false,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Sincronização iniciada com sucesso",
			"started": true,
		})
	}
}

func GetCronStatus(syncer OrderStatusSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"order-status": syncer.GetStatus(),
		})
	}
}

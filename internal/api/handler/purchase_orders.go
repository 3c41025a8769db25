package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/internal/domain"
	"github.com/vfg2006/synnex-gateway/internal/usecases/ordering"
	"github.com/vfg2006/synnex-gateway/pkg/apiErrors"
	"github.com/vfg2006/synnex-gateway/pkg/utils"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

func SubmitPurchaseOrder(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SubmitPurchaseOrder")

		var req synnexdomain.OrderRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.SubmitPurchaseOrder(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GetPurchaseOrderStatus(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPurchaseOrderStatus")

		poNumber := httprouter.ParamsFromContext(r.Context()).ByName("poNumber")

		resp, err := service.GetOrderStatus(r.Context(), synnexdomain.StatusRequest{PONumber: poNumber})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// ListPurchaseOrders lista os POs abertos do diário. Aceita since=YYYY-MM-DD e limit.
func ListPurchaseOrders(service ordering.Orderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListPurchaseOrders")

		query := r.URL.Query()

		since, err := utils.ParseDate(query.Get("since"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "since deve estar no formato YYYY-MM-DD", nil)
			return
		}

		limit := uint64(defaultListLimit)
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 || parsed > maxListLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve estar entre 1 e "+strconv.Itoa(maxListLimit), nil)
				return
			}
			limit = parsed
		}

		records, err := service.ListOpenOrders(r.Context(), domain.ListPurchaseOrdersFilter{Since: since, Limit: limit})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"items": records,
			"count": len(records),
		})
	}
}

package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/internal/usecases/invoicing"
)

func GetInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetInvoice")

		query := synnexdomain.InvoiceQuery{
			PONumber:    r.URL.Query().Get("poNumber"),
			OrderNumber: r.URL.Query().Get("orderNumber"),
		}

		resp, err := service.GetInvoice(r.Context(), query)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

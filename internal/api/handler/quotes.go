package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/internal/usecases/quoting"
)

func GetPriceAvailability(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetPriceAvailability")

		var req synnexdomain.PriceAvailabilityRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.GetPriceAvailability(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GetFreightQuote(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetFreightQuote")

		var req synnexdomain.FreightQuoteRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.GetFreightQuote(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func GetFreightWithZip(service quoting.Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetFreightWithZip")

		var req synnexdomain.FreightWithZipRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.GetFreightWithZip(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

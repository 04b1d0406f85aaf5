package controllers

import (
	"net/http"

	"github.com/arunvel/stockkeep-backend/api/responses"
	reportsvc "github.com/arunvel/stockkeep-backend/internal/reports"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
)

// EmailInventoryReport renders the full inventory PDF and emails it to the
// configured admin address.
func EmailInventoryReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		result, err := svc.EmailInventoryReport(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

package controllers

import (
	"net/http"

	"github.com/arunvel/stockkeep-backend/api/responses"
	dashsvc "github.com/arunvel/stockkeep-backend/internal/dashboard"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
)

// DashboardSummary aggregates stock counts, value, and category spread.
func DashboardSummary(svc dashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}

package handler

import (
	"net/http"

	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ig-dashboard-api/pkg/log"
)

func IGDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := domain.ParseDashboardRequest(readBody(r))

		resp, err := service.Build(r.Context(), req)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: request failed")
			apiErrors.WriteError(w, errorCode(err), err.Error())
			return
		}

		w.Header().Set("X-Request-Id", resp.RequestID)
		writeJSON(w, http.StatusOK, resp)
	})
}

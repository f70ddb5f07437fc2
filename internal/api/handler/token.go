package handler

import (
	"net/http"

	"github.com/vfg2006/ig-dashboard-api/internal/usecases/credentialing"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ig-dashboard-api/pkg/log"
)

type instagramTokenRequest struct {
	UserID string `json:"user_id"`
}

func GetInstagramToken(service credentialing.TokenReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body instagramTokenRequest
		decodeBody(r, &body)

		token, err := service.GetToken(r.Context(), body.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("user_id", body.UserID).Warn("token: request failed")
			apiErrors.WriteError(w, errorCode(err), err.Error())
			return
		}

		writeJSON(w, http.StatusOK, token)
	})
}

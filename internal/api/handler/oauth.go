package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/ig-dashboard-api/internal/domain"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ig-dashboard-api/pkg/log"
	"github.com/vfg2006/ig-dashboard-api/pkg/middleware"
)

type facebookOAuthRequest struct {
	Code string `json:"code"`
}

// FacebookOAuth depende de RequireSession na rota; o usuário vem do sub do JWT
func FacebookOAuth(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteErrorWithDuration(w, apiErrors.ErrUnauthorized, "Unauthorized", time.Since(startedAt).Milliseconds())
			return
		}

		var body facebookOAuthRequest
		decodeBody(r, &body)

		result, err := service.ConnectFacebook(r.Context(), domain.FacebookConnectInput{
			UserID: claims.UserID(),
			Code:   body.Code,
		})
		if err != nil {
			elapsed := time.Since(startedAt).Milliseconds()
			logger.WithError(err).WithFields(log.Fields{
				"user_id":     claims.UserID(),
				"duration_ms": elapsed,
			}).Error("oauth: facebook connect failed")
			apiErrors.WriteErrorWithDuration(w, errorCode(err), err.Error(), elapsed)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

type instagramOAuthRequest struct {
	Code     string `json:"code"`
	UserID   string `json:"user_id"`
	Provider string `json:"provider"`
}

func InstagramOAuth(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body instagramOAuthRequest
		decodeBody(r, &body)

		result, err := service.ConnectInstagram(r.Context(), domain.InstagramConnectInput{
			UserID:   body.UserID,
			Code:     body.Code,
			Provider: domain.Provider(body.Provider),
		})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("user_id", body.UserID).Error("oauth: instagram connect failed")
			apiErrors.WriteError(w, errorCode(err), err.Error())
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ig-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
)

const CronJobTypeTokenExpiry = "token-expiry"

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	TokenExpiryWatchService *scheduler.TokenExpiryWatchService
}

// RunCronJob executa a cron job na própria requisição e devolve o resultado
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeTokenExpiry:
			if services.TokenExpiryWatchService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação de tokens não disponível")
				return
			}
			notified := services.TokenExpiryWatchService.Run(r.Context())
			writeJSON(w, http.StatusOK, map[string]any{
				"success":  true,
				"type":     cronType,
				"notified": notified,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: token-expiry")
		}
	})
}

// GetCronStatus retorna o status da cron job informada
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch {
		case cronType == CronJobTypeTokenExpiry && services.TokenExpiryWatchService != nil:
			writeJSON(w, http.StatusOK, services.TokenExpiryWatchService.GetStatus())
		case cronType == CronJobTypeTokenExpiry:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação de tokens não disponível")
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: token-expiry")
		}
	})
}

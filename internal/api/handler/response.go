package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/credentialing"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ig-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ig-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Corpos maiores que isso são truncados e viram JSON inválido
const maxBodyBytes = 1 << 20

// readBody nunca falha: corpo ilegível vira vazio, e os decoders aplicam os defaults
func readBody(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("request: failed to read body")
		return nil
	}
	return body
}

// decodeBody ignora JSON malformado; a validação do caso de uso acusa o campo que faltar
func decodeBody(r *http.Request, v any) {
	body := readBody(r)
	if len(body) == 0 {
		return
	}
	if err := json.Unmarshal(body, v); err != nil {
		log.ForContext(r.Context()).WithError(err).Debug("request: malformed JSON body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Error("response: failed to encode body")
	}
}

// errorCode extrai o código da API dos erros dos casos de uso
func errorCode(err error) string {
	var (
		connErr  *connecting.ConnectError
		tokenErr *credentialing.TokenError
		dashErr  *dashboarding.DashboardError
	)
	switch {
	case errors.As(err, &connErr):
		return connErr.Code
	case errors.As(err, &tokenErr):
		return tokenErr.Code
	case errors.As(err, &dashErr):
		return dashErr.Code
	default:
		return apiErrors.ErrInternalServer
	}
}

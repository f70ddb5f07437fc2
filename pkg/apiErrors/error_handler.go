package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro devolvidos aos clientes
const (
	// Erros de autenticação
	ErrUnauthorized = "AUTH_001" // Sessão ausente ou inválida
	ErrForbidden    = "AUTH_002" // Segredo de desenvolvimento inválido
	ErrExpiredToken = "AUTH_007" // Token do Instagram expirado

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de integração
	ErrNoConnectedAccount = "ACC_001" // Nenhuma conta conectada
	ErrNoPages            = "ACC_002" // Nenhuma página do Facebook
	ErrNoBusinessAccount  = "ACC_003" // Página sem conta business vinculada

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro na Graph API
	ErrMissingConfig     = "SRV_005" // Segredos do servidor ausentes
)

// Os clientes tratam qualquer falha que não seja de sessão como 500.
var httpStatusMap = map[string]int{
	ErrUnauthorized:        http.StatusUnauthorized,
	ErrForbidden:           http.StatusForbidden,
	ErrExpiredToken:        http.StatusInternalServerError,
	ErrInvalidRequest:      http.StatusInternalServerError,
	ErrMissingRequiredData: http.StatusInternalServerError,
	ErrInvalidFormat:       http.StatusInternalServerError,
	ErrNoConnectedAccount:  http.StatusInternalServerError,
	ErrNoPages:             http.StatusInternalServerError,
	ErrNoBusinessAccount:   http.StatusInternalServerError,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusInternalServerError,
	ErrMissingConfig:       http.StatusInternalServerError,
}

// APIError é o envelope de erro comum a todos os endpoints
type APIError struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Code       string `json:"code,omitempty"`
	DurationMS *int64 `json:"duration_ms,omitempty"`
}

// StatusFor devolve o status HTTP de um código de erro
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o envelope de erro para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	write(w, APIError{Code: code, Error: message})
}

// WriteErrorWithDuration inclui duration_ms no envelope
func WriteErrorWithDuration(w http.ResponseWriter, code string, message string, durationMS int64) {
	write(w, APIError{Code: code, Error: message, DurationMS: &durationMS})
}

func write(w http.ResponseWriter, apiErr APIError) {
	if apiErr.Code == "" {
		apiErr.Code = ErrInternalServer
	}
	if apiErr.Error == "" {
		apiErr.Error = "Unknown error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(apiErr.Code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

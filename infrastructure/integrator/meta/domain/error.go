package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// GraphError é devolvido para qualquer resposta de erro da Graph API.
// Error() mantém o formato "Graph API <status>: <erro em JSON>" que vai para messages.
type GraphError struct {
	StatusCode int
	// Raw é o objeto "error" original (ou o corpo inteiro, se não for JSON)
	Raw     string
	Details *ErrorDetails
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("Graph API %d: %s", e.StatusCode, e.Raw)
}

// Reason é a mensagem curta usada nos erros de OAuth: message, senão type, senão o corpo
func (e *GraphError) Reason() string {
	if e.Details != nil {
		if e.Details.Message != "" {
			return e.Details.Message
		}
		if e.Details.Type != "" {
			return e.Details.Type
		}
	}
	return e.Raw
}

// IsTokenExpired verifica se o erro é de token expirado ou revogado
func (e *GraphError) IsTokenExpired() bool {
	if e.Details == nil {
		return false
	}
	// O código 190 representa "token expirado"; subcódigos 460, 463 e 467 também invalidam o token
	return e.Details.Code == 190 ||
		(e.Details.Type == "OAuthException" && (e.Details.ErrorSubcode == 460 || e.Details.ErrorSubcode == 463 || e.Details.ErrorSubcode == 467))
}

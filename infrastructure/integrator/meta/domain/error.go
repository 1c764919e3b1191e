package metadomain

import (
	"fmt"
)

// ErrorResponse representa o envelope de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é qualquer resposta não-2xx da Graph API, com a mensagem original
// preservada. O cliente não faz retry; quem chama decide se a conta é pulada
// (orquestrador) ou se o erro sobe (handlers de catálogo).
type APIError struct {
	Status       int
	Message      string
	Type         string
	Code         int
	ErrorSubcode int
	FBTraceID    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("meta api: status %d", e.Status)
	}
	return fmt.Sprintf("meta api: %s (code %d, status %d)", e.Message, e.Code, e.Status)
}

// IsTokenExpired verifica se o erro é de token expirado. O código 190 e os
// subcódigos 460/463/467 cobrem as variações de OAuthException do Meta.
func (e *APIError) IsTokenExpired() bool {
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

package resp

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse - стандартный формат ошибки API
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteErrorResponse(w http.ResponseWriter, status int, code, message string) {
	WriteJSONResponse(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Message: message,
	})
}

package httperr

import (
	"errors"
	"net/http"

	"frogcasino_backend/internal/model"
	"frogcasino_backend/pkg/resp"
)

// Write - маппинг доменной ошибки на HTTP-статус. Клиент всегда получает
// стабильный код и сообщение, без внутренних деталей
func Write(w http.ResponseWriter, err error) {
	var gameErr *model.GameError
	if !errors.As(err, &gameErr) {
		resp.WriteErrorResponse(w, http.StatusInternalServerError, model.ErrInternal.Code, model.ErrInternal.Message)
		return
	}

	status := http.StatusBadRequest
	switch gameErr.Code {
	case model.ErrGameNotFound.Code, model.ErrPlayerNotFound.Code, model.ErrTxNotFound.Code:
		status = http.StatusNotFound
	case model.ErrInsufficientBalance.Code:
		status = http.StatusPaymentRequired
	case model.ErrInternal.Code:
		status = http.StatusInternalServerError
	}

	resp.WriteErrorResponse(w, status, gameErr.Code, gameErr.Message)
}

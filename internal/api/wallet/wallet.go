package wallet

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	dto "frogcasino_backend/internal/api/dto/wallet"
	"frogcasino_backend/internal/api/httperr"
	"frogcasino_backend/internal/converter"
	"frogcasino_backend/internal/middleware"
	"frogcasino_backend/internal/model"
	"frogcasino_backend/internal/service"
	"frogcasino_backend/pkg/req"
	"frogcasino_backend/pkg/resp"

	"github.com/shopspring/decimal"
)

type HandlerDeps struct {
	Serv service.PaymentService
}

type Handler struct {
	serv service.PaymentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Deposit - POST /wallet/deposit
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "player id not found in context")
		return
	}

	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil {
		httperr.Write(w, model.ErrInvalidAmount)
		return
	}

	balance, err := h.serv.Deposit(r.Context(), userID, amount)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance.String()})
}

// Withdraw - POST /wallet/withdraw
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "player id not found in context")
		return
	}

	payload, err := req.Decode[dto.WithdrawRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil {
		httperr.Write(w, model.ErrInvalidAmount)
		return
	}

	balance, err := h.serv.Withdraw(r.Context(), userID, amount)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance.String()})
}

// Balance - GET /wallet/balance
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "player id not found in context")
		return
	}

	balance, err := h.serv.Balance(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance.String()})
}

// Transactions - GET /wallet/transactions
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "player id not found in context")
		return
	}

	list, err := h.serv.Transactions(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionsResponse(list))
}

// Transaction - GET /wallet/transactions/{txID}
func (h *Handler) Transaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "player id not found in context")
		return
	}

	txID, err := uuid.Parse(chi.URLParam(r, "txID"))
	if err != nil {
		httperr.Write(w, model.ErrTxNotFound)
		return
	}

	tx, err := h.serv.Transaction(r.Context(), userID, txID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionResponse(*tx))
}

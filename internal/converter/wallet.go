package converter

import (
	"time"

	dto "frogcasino_backend/internal/api/dto/wallet"
	"frogcasino_backend/internal/model"
)

func ToTransactionResponse(tx model.Transaction) dto.Transaction {
	return dto.Transaction{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount.String(),
		Status:      string(tx.Status),
		Description: tx.Description,
		GameID:      tx.GameID,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tx.UpdatedAt.Format(time.RFC3339),
	}
}

func ToTransactionsResponse(list []model.Transaction) dto.TransactionsResponse {
	out := dto.TransactionsResponse{
		Transactions: make([]dto.Transaction, 0, len(list)),
	}
	for _, tx := range list {
		out.Transactions = append(out.Transactions, ToTransactionResponse(tx))
	}
	return out
}

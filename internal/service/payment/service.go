package payment

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"frogcasino_backend/internal/repository"
	"frogcasino_backend/internal/service"
)

type serv struct {
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	txManager trm.Manager
	logger    *zap.Logger
}

func NewPaymentService(
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	txManager trm.Manager,
	logger *zap.Logger,
) service.PaymentService {
	return &serv{
		userRepo:  userRepo,
		txRepo:    txRepo,
		txManager: txManager,
		logger:    logger,
	}
}

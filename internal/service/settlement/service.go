package settlement

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"

	"frogcasino_backend/internal/config"
	"frogcasino_backend/internal/repository"
	"frogcasino_backend/internal/service"
	"frogcasino_backend/pkg/rng"
)

type serv struct {
	gamesCfg  config.GamesConfig
	slotCfg   config.SlotConfig
	frogCfg   config.FrogConfig
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	src       rng.Source
	txManager trm.Manager
	logger    *zap.Logger
}

// NewSettlementService - движок расчета. Источник случайности внедряется
// снаружи: в тестах вместо crypto/rand подставляется фиксированный поток
func NewSettlementService(
	gamesCfg config.GamesConfig,
	slotCfg config.SlotConfig,
	frogCfg config.FrogConfig,
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	src rng.Source,
	txManager trm.Manager,
	logger *zap.Logger,
) service.SettlementService {
	return &serv{
		gamesCfg:  gamesCfg,
		slotCfg:   slotCfg,
		frogCfg:   frogCfg,
		userRepo:  userRepo,
		txRepo:    txRepo,
		src:       src,
		txManager: txManager,
		logger:    logger,
	}
}

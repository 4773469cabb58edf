package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	gamesAPI "frogcasino_backend/internal/api/games"
	walletAPI "frogcasino_backend/internal/api/wallet"
	"frogcasino_backend/internal/config"
	"frogcasino_backend/internal/config/env"
	"frogcasino_backend/internal/logger"
	"frogcasino_backend/internal/middleware"
	"frogcasino_backend/internal/repository"
	"frogcasino_backend/internal/repository/transaction_repo"
	"frogcasino_backend/internal/repository/user_repo"
	"frogcasino_backend/internal/service"
	"frogcasino_backend/internal/service/payment"
	"frogcasino_backend/internal/service/settlement"
	"frogcasino_backend/pkg/rng"
)

const gamesConfigPath = "config.yaml"

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// App bits
	appConfig config.AppConfig
	log       *zap.Logger

	// Game configs
	gamesCfg config.GamesConfig
	slotCfg  config.SlotConfig
	frogCfg  config.FrogConfig

	// RNG
	rngSource rng.Source

	// Repositories
	userRepo repository.UserRepository
	txRepo   repository.TransactionRepository

	// Services
	settlementServ service.SettlementService
	paymentServ    service.PaymentService

	// Handlers
	gamesHand  *gamesAPI.Handler
	walletHand *walletAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) AppConfig() config.AppConfig {
	if sp.appConfig == nil {
		cfg, err := env.NewAppConfig()
		if err != nil {
			panic("failed to get app config: " + err.Error())
		}
		sp.appConfig = cfg
	}
	return sp.appConfig
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New("frogcasino_backend", sp.AppConfig().Env())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) FrogCfg() config.FrogConfig {
	if sp.frogCfg == nil {
		cfg, err := env.NewFrogConfigFromYAML(gamesConfigPath)
		if err != nil {
			panic("failed to get frog config: " + err.Error())
		}
		sp.frogCfg = cfg
	}
	return sp.frogCfg
}

func (sp *ServiceProvider) RNGSource() rng.Source {
	if sp.rngSource == nil {
		sp.rngSource = rng.New()
	}
	return sp.rngSource
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) TransactionRepo(ctx context.Context) repository.TransactionRepository {
	if sp.txRepo == nil {
		sp.txRepo = transaction_repo.NewTransactionRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.txRepo
}

func (sp *ServiceProvider) SettlementService(ctx context.Context) service.SettlementService {
	if sp.settlementServ == nil {
		sp.settlementServ = settlement.NewSettlementService(
			sp.GamesCfg(),
			sp.SlotCfg(),
			sp.FrogCfg(),
			sp.UserRepo(ctx),
			sp.TransactionRepo(ctx),
			sp.RNGSource(),
			sp.TXManager(ctx),
			sp.Logger(),
		)
	}
	return sp.settlementServ
}

func (sp *ServiceProvider) PaymentService(ctx context.Context) service.PaymentService {
	if sp.paymentServ == nil {
		sp.paymentServ = payment.NewPaymentService(
			sp.UserRepo(ctx),
			sp.TransactionRepo(ctx),
			sp.TXManager(ctx),
			sp.Logger(),
		)
	}
	return sp.paymentServ
}

func (sp *ServiceProvider) GamesHandler(ctx context.Context) *gamesAPI.Handler {
	if sp.gamesHand == nil {
		sp.gamesHand = gamesAPI.NewHandler(gamesAPI.HandlerDeps{
			Serv:     sp.SettlementService(ctx),
			GamesCfg: sp.GamesCfg(),
			SlotCfg:  sp.SlotCfg(),
			FrogCfg:  sp.FrogCfg(),
		})
	}
	return sp.gamesHand
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Serv: sp.PaymentService(ctx),
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Player-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Game endpoints
		gamesHandler := sp.GamesHandler(ctx)
		r.Route("/games", func(rr chi.Router) {
			rr.Get("/", gamesHandler.Games)
			rr.With(middleware.PlayerID).Post("/{gameID}/bet", gamesHandler.PlaceBet)
			rr.Get("/{gameID}/paytable", gamesHandler.Paytable)
		})

		// Wallet endpoints
		walletHandler := sp.WalletHandler(ctx)
		r.Route("/wallet", func(rr chi.Router) {
			rr.Use(middleware.PlayerID)
			rr.Post("/deposit", walletHandler.Deposit)
			rr.Post("/withdraw", walletHandler.Withdraw)
			rr.Get("/balance", walletHandler.Balance)
			rr.Get("/transactions", walletHandler.Transactions)
			rr.Get("/transactions/{txID}", walletHandler.Transaction)
		})

		sp.router = r
	}

	return sp.router
}

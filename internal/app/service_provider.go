package app

import (
	"context"

	economyAPI "staro_backend/internal/api/economy"
	spinAPI "staro_backend/internal/api/spin"
	"staro_backend/internal/config"
	"staro_backend/internal/config/env"
	"staro_backend/internal/repository"
	"staro_backend/internal/repository/history_repo"
	"staro_backend/internal/repository/nft_repo"
	"staro_backend/internal/repository/user_repo"
	"staro_backend/internal/service"
	"staro_backend/internal/service/economy"
	"staro_backend/internal/service/spin"
	"staro_backend/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

const configYAMLPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Game config
	rewardsCfg config.RewardsConfig
	economyCfg config.EconomyConfig

	// RNG
	rnd rng.Source

	// Repositories
	userRepo    repository.UserRepository
	nftRepo     repository.NFTRepository
	historyRepo repository.SpinHistoryRepository

	// Services and handlers
	spinServ service.SpinService
	spinHand *spinAPI.Handler
	econServ service.EconomyService
	econHand *economyAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
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

func (sp *ServiceProvider) RewardsCfg() config.RewardsConfig {
	if sp.rewardsCfg == nil {
		cfg, err := env.NewRewardsConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get rewards config: " + err.Error())
		}
		sp.rewardsCfg = cfg
	}
	return sp.rewardsCfg
}

func (sp *ServiceProvider) EconomyCfg() config.EconomyConfig {
	if sp.economyCfg == nil {
		cfg, err := env.NewEconomyConfigFromYAML(configYAMLPath)
		if err != nil {
			panic("failed to get economy config: " + err.Error())
		}
		sp.economyCfg = cfg
	}
	return sp.economyCfg
}

func (sp *ServiceProvider) RandomSource() rng.Source {
	if sp.rnd == nil {
		sp.rnd = rng.NewCryptoSource()
	}
	return sp.rnd
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) NFTRepo(ctx context.Context) repository.NFTRepository {
	if sp.nftRepo == nil {
		sp.nftRepo = nft_repo.NewNFTRepository(sp.DBClient(ctx))
	}
	return sp.nftRepo
}

func (sp *ServiceProvider) HistoryRepo(ctx context.Context) repository.SpinHistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewSpinHistoryRepository(sp.DBClient(ctx))
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) SpinService(ctx context.Context) service.SpinService {
	if sp.spinServ == nil {
		sp.spinServ = spin.NewSpinService(
			sp.UserRepo(ctx),
			sp.NFTRepo(ctx),
			sp.HistoryRepo(ctx),
			sp.RewardsCfg(),
			sp.EconomyCfg(),
			sp.RandomSource(),
			sp.TXManager(ctx),
		)
	}
	return sp.spinServ
}

func (sp *ServiceProvider) SpinHandler(ctx context.Context) *spinAPI.Handler {
	if sp.spinHand == nil {
		sp.spinHand = spinAPI.NewHandler(spinAPI.HandlerDeps{
			Serv: sp.SpinService(ctx),
		})
	}
	return sp.spinHand
}

func (sp *ServiceProvider) EconomyService(ctx context.Context) service.EconomyService {
	if sp.econServ == nil {
		sp.econServ = economy.NewEconomyService(
			sp.UserRepo(ctx),
			sp.NFTRepo(ctx),
			sp.EconomyCfg(),
			sp.TXManager(ctx),
		)
	}
	return sp.econServ
}

func (sp *ServiceProvider) EconomyHandler(ctx context.Context) *economyAPI.Handler {
	if sp.econHand == nil {
		sp.econHand = economyAPI.NewHandler(economyAPI.HandlerDeps{
			Serv: sp.EconomyService(ctx),
		})
	}
	return sp.econHand
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
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		spinHandler := sp.SpinHandler(ctx)
		econHandler := sp.EconomyHandler(ctx)
		r.Route("/api", func(rr chi.Router) {
			rr.Get("/user/{id}", econHandler.User)
			rr.Post("/deposit", econHandler.Deposit)
			rr.Post("/daily", econHandler.Daily)
			rr.Post("/buyboost", econHandler.BuyBoost)
			rr.Get("/leaderboards", econHandler.Leaderboards)
			rr.Post("/spin", spinHandler.Spin)
			rr.Get("/history/{id}", spinHandler.History)
		})

		sp.router = r
	}

	return sp.router
}

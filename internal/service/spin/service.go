package spin

import (
	"staro_backend/internal/config"
	"staro_backend/internal/repository"
	"staro_backend/internal/service"
	"staro_backend/pkg/rng"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	userRepo    repository.UserRepository
	nftRepo     repository.NFTRepository
	historyRepo repository.SpinHistoryRepository
	rewardsCfg  config.RewardsConfig
	economyCfg  config.EconomyConfig
	rnd         rng.Source
	txManager   trm.Manager
}

// NewSpinService Создать движок наград
func NewSpinService(
	userRepo repository.UserRepository,
	nftRepo repository.NFTRepository,
	historyRepo repository.SpinHistoryRepository,
	rewardsCfg config.RewardsConfig,
	economyCfg config.EconomyConfig,
	rnd rng.Source,
	txManager trm.Manager,
) service.SpinService {
	return &serv{
		userRepo:    userRepo,
		nftRepo:     nftRepo,
		historyRepo: historyRepo,
		rewardsCfg:  rewardsCfg,
		economyCfg:  economyCfg,
		rnd:         rnd,
		txManager:   txManager,
	}
}

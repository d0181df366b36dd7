package economy

import (
	"staro_backend/internal/config"
	"staro_backend/internal/repository"
	"staro_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	userRepo   repository.UserRepository
	nftRepo    repository.NFTRepository
	economyCfg config.EconomyConfig
	txManager  trm.Manager
}

// NewEconomyService Создать сервис экономики: депозиты, рефералка,
// ежедневный бонус, бусты и лидерборды
func NewEconomyService(
	userRepo repository.UserRepository,
	nftRepo repository.NFTRepository,
	economyCfg config.EconomyConfig,
	txManager trm.Manager,
) service.EconomyService {
	return &serv{
		userRepo:   userRepo,
		nftRepo:    nftRepo,
		economyCfg: economyCfg,
		txManager:  txManager,
	}
}

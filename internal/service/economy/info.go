package economy

import (
	"context"

	"staro_backend/internal/model"
	"staro_backend/internal/service"
)

// UserInfo возвращает снимок аккаунта вместе с лидербордами
func (s *serv) UserInfo(ctx context.Context, userID string) (*model.UserInfo, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}

	boards, err := s.Leaderboards(ctx)
	if err != nil {
		return nil, err
	}

	return &model.UserInfo{
		User:         *user,
		Leaderboards: *boards,
	}, nil
}

// Leaderboards возвращает три проекции: топ по спинам, по токенам
// и по количеству NFT с оценочной стоимостью коллекции
func (s *serv) Leaderboards(ctx context.Context) (*model.Leaderboards, error) {
	spinners, err := s.userRepo.TopSpinners(ctx)
	if err != nil {
		return nil, err
	}

	miners, err := s.userRepo.TopMiners(ctx)
	if err != nil {
		return nil, err
	}

	collectors, err := s.nftRepo.TopCollectors(ctx)
	if err != nil {
		return nil, err
	}

	value := s.economyCfg.NFTValueStars()
	for i := range collectors {
		collectors[i].TotalValueStars = collectors[i].NFTs * value
	}

	return &model.Leaderboards{
		Spins:  spinners,
		Miners: miners,
		NFTs:   collectors,
	}, nil
}

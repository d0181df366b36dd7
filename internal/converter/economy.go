package converter

import (
	"time"

	dto "staro_backend/internal/api/dto/economy"
	"staro_backend/internal/model"
)

func ToDepositResponse(res model.DepositResult) dto.DepositResponse {
	return dto.DepositResponse{
		OK:            res.OK,
		CreditedStars: res.CreditedStars,
	}
}

func ToDailyResponse(res model.DailyResult) dto.DailyResponse {
	return dto.DailyResponse{
		OK:          res.OK,
		Message:     res.Message,
		AddedTokens: res.AddedTokens,
	}
}

func ToBuyBoostResponse(res model.BoostResult) dto.BuyBoostResponse {
	return dto.BuyBoostResponse{
		OK:    res.OK,
		Boost: res.Boost,
	}
}

func ToUserResponse(info model.UserInfo) dto.UserResponse {
	return dto.UserResponse{
		User:         toUser(info.User),
		Leaderboards: ToLeaderboardsResponse(info.Leaderboards),
	}
}

func ToLeaderboardsResponse(boards model.Leaderboards) dto.Leaderboards {
	spins := make([]dto.SpinnerRow, len(boards.Spins))
	for i, row := range boards.Spins {
		spins[i] = dto.SpinnerRow{
			Username:   row.Username,
			SpinsCount: row.SpinsCount,
		}
	}

	miners := make([]dto.MinerRow, len(boards.Miners))
	for i, row := range boards.Miners {
		miners[i] = dto.MinerRow{
			Username:     row.Username,
			TokenBalance: row.TokenBalance,
		}
	}

	nfts := make([]dto.CollectorRow, len(boards.NFTs))
	for i, row := range boards.NFTs {
		nfts[i] = dto.CollectorRow{
			Username:        row.Username,
			NFTs:            row.NFTs,
			TotalValueStars: row.TotalValueStars,
		}
	}

	return dto.Leaderboards{
		Spins:  spins,
		Miners: miners,
		NFTs:   nfts,
	}
}

func toUser(u model.User) dto.User {
	return dto.User{
		ID:               u.ID,
		Username:         u.Username,
		StarsBalance:     u.StarsBalance,
		TokenBalance:     u.TokenBalance,
		SpinsCount:       u.SpinsCount,
		BoostMult:        u.BoostMult,
		LastFreeDate:     formatDate(u.LastFreeDate),
		LastClaimDate:    formatDate(u.LastClaimDate),
		Referrer:         u.Referrer,
		ReferralRewarded: u.ReferralRewarded,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(model.DayLayout)
	return &s
}

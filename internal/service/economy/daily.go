package economy

import (
	"context"

	"staro_backend/internal/model"
)

// ClaimDaily начисляет фиксированный токен-бонус раз в календарные
// сутки. Проверка и расход права - один условный UPDATE в транзакции,
// так что из двух конкурентных запросов бонус получит ровно один
func (s *serv) ClaimDaily(ctx context.Context, userID string) (*model.DailyResult, error) {
	var res *model.DailyResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.EnsureUser(txCtx, userID); err != nil {
			return err
		}

		claimed, err := s.userRepo.MarkDailyClaimed(txCtx, userID, model.Today())
		if err != nil {
			return err
		}
		if !claimed {
			res = &model.DailyResult{Message: "already claimed today"}
			return nil
		}

		tokens := s.economyCfg.DailyClaimTokens()
		if err := s.userRepo.AddTokens(txCtx, userID, tokens); err != nil {
			return err
		}

		res = &model.DailyResult{
			OK:          true,
			AddedTokens: tokens,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

package economy

import (
	"context"
	"math"

	"staro_backend/internal/model"
)

// Deposit конвертирует внешний депозит в звезды по фиксированному
// курсу и проводит реферальные выплаты. Верификация платежа вне
// области - депозит зачисляется как есть.
//
// Реферер получает процент с каждого депозита, а разовый токен-бонус -
// только с первого: флаг referral_rewarded взводится условным UPDATE,
// поэтому при конкурентных первых депозитах бонус уйдет ровно один раз
func (s *serv) Deposit(ctx context.Context, userID string, amountTon float64) (*model.DepositResult, error) {
	stars := int(math.Floor(amountTon * float64(s.economyCfg.StarsPerTon())))

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Аккаунт создается при первом обращении
		if err := s.userRepo.EnsureUser(txCtx, userID); err != nil {
			return err
		}

		if err := s.userRepo.AddStars(txCtx, userID, stars); err != nil {
			return err
		}

		referrer, err := s.userRepo.GetReferrerOf(txCtx, userID)
		if err != nil {
			return err
		}
		if referrer == "" {
			return nil
		}

		commission := int(math.Floor(float64(stars) * s.economyCfg.ReferralCommissionRate()))
		if err := s.userRepo.AddStars(txCtx, referrer, commission); err != nil {
			return err
		}

		first, err := s.userRepo.MarkReferralRewarded(txCtx, userID)
		if err != nil {
			return err
		}
		if first {
			if err := s.userRepo.AddTokens(txCtx, referrer, s.economyCfg.ReferralFlatTokens()); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.DepositResult{
		OK:            true,
		CreditedStars: stars,
	}, nil
}

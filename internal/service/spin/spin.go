package spin

import (
	"context"

	"staro_backend/internal/model"
	"staro_backend/internal/service"
)

// Spin выполняет один спин: бесплатный (раз в календарные сутки)
// или платный (за фиксированную цену в звездах)
func (s *serv) Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error) {
	user, err := s.userRepo.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}

	switch req.Type {
	case model.SpinTypeFree:
		return s.spinFree(ctx, user)
	case model.SpinTypePaid:
		return s.spinPaid(ctx, user)
	default:
		return nil, service.ErrInvalidSpinType
	}
}

// spinFree - бесплатный спин. Право на спин и его расход - один
// условный UPDATE внутри транзакции: два конкурентных запроса
// одного пользователя за день не пройдут оба
func (s *serv) spinFree(ctx context.Context, user *model.User) (*model.SpinResult, error) {
	var res *model.SpinResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		used, err := s.userRepo.MarkFreeSpinUsed(txCtx, user.ID, model.Today())
		if err != nil {
			return err
		}
		if !used {
			res = &model.SpinResult{Message: "free spin already used today"}
			return nil
		}

		r := s.rnd.Rand100()
		band := pickBand(s.rewardsCfg.FreeTable(), r)

		outcome, awarded, err := s.applyFreeBand(txCtx, user.ID, band)
		if err != nil {
			return err
		}

		// Аудит пишется в той же транзакции, после мутаций баланса
		err = s.historyRepo.InsertSpin(txCtx, &model.SpinHistoryEntry{
			UserID:  user.ID,
			Type:    model.SpinTypeFree,
			Outcome: outcome,
			Awarded: awarded,
		})
		if err != nil {
			return err
		}

		res = &model.SpinResult{
			OK:      true,
			Outcome: outcome,
			Awarded: awarded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// spinPaid - платный спин. Списание цены спина - условный UPDATE:
// при недостатке звезд не меняется ничего, при конкурентных спинах
// баланс не может уйти в минус
func (s *serv) spinPaid(ctx context.Context, user *model.User) (*model.SpinResult, error) {
	var res *model.SpinResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		debited, err := s.userRepo.DebitStars(txCtx, user.ID, s.economyCfg.PaidSpinCost())
		if err != nil {
			return err
		}
		if !debited {
			res = &model.SpinResult{Message: "not enough stars"}
			return nil
		}

		r := s.rnd.Rand100()
		band := pickBand(s.rewardsCfg.PaidTable(user.BoostMult), r)

		outcome, awarded, err := s.applyPaidBand(txCtx, user.ID, band)
		if err != nil {
			return err
		}

		if err := s.userRepo.IncrementSpinCount(txCtx, user.ID); err != nil {
			return err
		}

		err = s.historyRepo.InsertSpin(txCtx, &model.SpinHistoryEntry{
			UserID:  user.ID,
			Type:    model.SpinTypePaid,
			Outcome: outcome,
			Awarded: awarded,
		})
		if err != nil {
			return err
		}

		res = &model.SpinResult{
			OK:      true,
			Outcome: outcome,
			Awarded: awarded,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// History возвращает последние записи аудита пользователя
func (s *serv) History(ctx context.Context, userID string) ([]model.SpinHistoryEntry, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrUserNotFound
	}

	return s.historyRepo.ListByUser(ctx, userID, historyLimit)
}

const historyLimit = 50

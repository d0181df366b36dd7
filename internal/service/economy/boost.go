package economy

import (
	"context"

	"staro_backend/internal/model"
	"staro_backend/internal/service"
)

// Именованные коробки буста и их постоянные множители
var boostBoxes = map[string]int{
	"starter":  2,
	"pro":      5,
	"elite":    10,
	"ultimate": 50,
}

// BuyBoost устанавливает постоянный множитель буста.
// Оплата коробки замокана и проверяется на уровне API
func (s *serv) BuyBoost(ctx context.Context, userID string, box string) (*model.BoostResult, error) {
	mult, ok := boostBoxes[box]
	if !ok {
		return nil, service.ErrUnknownBox
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.EnsureUser(txCtx, userID); err != nil {
			return err
		}
		return s.userRepo.SetBoost(txCtx, userID, mult)
	})
	if err != nil {
		return nil, err
	}

	return &model.BoostResult{
		OK:    true,
		Boost: mult,
	}, nil
}

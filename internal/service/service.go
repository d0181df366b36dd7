package service

import (
	"context"
	"errors"

	"staro_backend/internal/model"
)

// Ошибки валидации, по которым API слой выбирает статус ответа.
// Бизнес-отказы (нет фриспина, мало звезд) ошибками не являются
// и возвращаются внутри результата с OK=false
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidSpinType = errors.New("invalid spin type")
	ErrUnknownBox      = errors.New("unknown boost box")
)

type SpinService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error)
	History(ctx context.Context, userID string) ([]model.SpinHistoryEntry, error)
}

type EconomyService interface {
	Deposit(ctx context.Context, userID string, amountTon float64) (*model.DepositResult, error)
	ClaimDaily(ctx context.Context, userID string) (*model.DailyResult, error)
	BuyBoost(ctx context.Context, userID string, box string) (*model.BoostResult, error)
	UserInfo(ctx context.Context, userID string) (*model.UserInfo, error)
	Leaderboards(ctx context.Context) (*model.Leaderboards, error)
}

package repository

import (
	"context"

	"staro_backend/internal/model"
)

type UserRepository interface {
	// EnsureUser создает аккаунт при первом обращении, если его еще нет
	EnsureUser(ctx context.Context, id string) error
	// GetUser возвращает снимок аккаунта или nil, если пользователя нет
	GetUser(ctx context.Context, id string) (*model.User, error)

	AddStars(ctx context.Context, id string, amount int) error
	AddTokens(ctx context.Context, id string, amount int) error
	// DebitStars списывает звезды только при достаточном балансе.
	// Возвращает false, если баланс меньше суммы списания
	DebitStars(ctx context.Context, id string, amount int) (bool, error)

	SetBoost(ctx context.Context, id string, mult int) error
	IncrementSpinCount(ctx context.Context, id string) error

	// MarkFreeSpinUsed атомарно помечает фриспин использованным за день.
	// Возвращает false, если фриспин за этот день уже использован
	MarkFreeSpinUsed(ctx context.Context, id string, day string) (bool, error)
	// MarkDailyClaimed атомарно помечает ежедневный бонус полученным за день.
	// Возвращает false, если бонус за этот день уже получен
	MarkDailyClaimed(ctx context.Context, id string, day string) (bool, error)

	// GetReferrerOf возвращает ID реферера или пустую строку
	GetReferrerOf(ctx context.Context, id string) (string, error)
	// MarkReferralRewarded атомарно взводит одноразовый флаг реферальной
	// выплаты. Возвращает false, если флаг уже был взведен
	MarkReferralRewarded(ctx context.Context, id string) (bool, error)

	TopSpinners(ctx context.Context) ([]model.SpinnerRow, error)
	TopMiners(ctx context.Context) ([]model.MinerRow, error)
}

type NFTRepository interface {
	// CreateNFT создает NFT и возвращает его ID
	CreateNFT(ctx context.Context, nft *model.NFT) (int64, error)
	// TopCollectors возвращает топ владельцев по количеству NFT
	TopCollectors(ctx context.Context) ([]model.CollectorRow, error)
}

type SpinHistoryRepository interface {
	// InsertSpin добавляет запись аудита. Записи только добавляются
	InsertSpin(ctx context.Context, entry *model.SpinHistoryEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.SpinHistoryEntry, error)
}

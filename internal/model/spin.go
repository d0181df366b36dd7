package model

import "time"

// Типы спинов
const (
	SpinTypeFree = "free"
	SpinTypePaid = "paid"
)

type SpinRequest struct {
	UserID string
	Type   string
}

// Awarded - что именно начислено за один спин.
// Payload может быть пустым ("ничего"), но фиксируется всегда.
type Awarded struct {
	Stars  int
	Tokens int
	NFT    *NFT
}

// SpinResult - итог спина. OK=false означает бизнес-отказ
// (фриспин уже использован, не хватает звезд), а не ошибку.
type SpinResult struct {
	OK      bool
	Message string
	Outcome string
	Awarded Awarded
}

// SpinHistoryEntry - запись аудита. Создается один раз за спин,
// никогда не изменяется и не удаляется.
type SpinHistoryEntry struct {
	ID        int64
	UserID    string
	Type      string
	Outcome   string
	Awarded   Awarded
	CreatedAt time.Time
}

package spin

import (
	"context"
	"errors"
	"sync"
	"time"

	"staro_backend/internal/config"
	"staro_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Прозрачный менеджер транзакций для тестов
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Источник случайности с фиксированными значениями
type fixedRNG struct {
	r100 float64
	intN int
}

func (f fixedRNG) Rand100() float64 { return f.r100 }

func (f fixedRNG) IntN(n int) int {
	if f.intN < n {
		return f.intN
	}
	return n - 1
}

type fakeRewardsCfg struct{}

func (fakeRewardsCfg) FreeTable() []config.Band {
	return []config.Band{
		{Label: bandStar, Weight: 50.00},
		{Label: bandToken, Weight: 34.99},
		{Label: bandCommon, Weight: 10.00},
	}
}

func (fakeRewardsCfg) PaidTable(boost int) []config.Band {
	// Таблица тира 1; откат для неизвестных тиров проверяется
	// в тестах загрузчика конфигурации
	return []config.Band{
		{Label: bandCommon, Weight: 85.00},
		{Label: bandMedium, Weight: 10.00},
		{Label: bandHigh, Weight: 2.00},
		{Label: bandStar, Weight: 3.00},
	}
}

type fakeEconomyCfg struct{}

func (fakeEconomyCfg) StarsPerTon() int                { return 125 }
func (fakeEconomyCfg) ReferralCommissionRate() float64 { return 0.20 }
func (fakeEconomyCfg) ReferralFlatTokens() int         { return 20000 }
func (fakeEconomyCfg) DailyClaimTokens() int           { return 1000 }
func (fakeEconomyCfg) PaidSpinCost() int               { return 200 }
func (fakeEconomyCfg) NFTValueStars() int              { return 2500 }

// In-memory реализация UserRepository с той же атомарностью
// условных обновлений, что и у SQL версии
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) EnsureUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		r.users[id] = &model.User{ID: id, Username: id, BoostMult: 1}
	}
	return nil
}

func (r *fakeUserRepo) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) AddStars(_ context.Context, id string, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.StarsBalance += amount
	}
	return nil
}

func (r *fakeUserRepo) AddTokens(_ context.Context, id string, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.TokenBalance += amount
	}
	return nil
}

func (r *fakeUserRepo) DebitStars(_ context.Context, id string, amount int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.StarsBalance < amount {
		return false, nil
	}
	u.StarsBalance -= amount
	return true, nil
}

func (r *fakeUserRepo) SetBoost(_ context.Context, id string, mult int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.BoostMult = mult
	}
	return nil
}

func (r *fakeUserRepo) IncrementSpinCount(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.SpinsCount++
	}
	return nil
}

func (r *fakeUserRepo) MarkFreeSpinUsed(_ context.Context, id string, day string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	return markDay(&u.LastFreeDate, day)
}

func (r *fakeUserRepo) MarkDailyClaimed(_ context.Context, id string, day string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	return markDay(&u.LastClaimDate, day)
}

func markDay(stored **time.Time, day string) (bool, error) {
	parsed, err := time.Parse(model.DayLayout, day)
	if err != nil {
		return false, err
	}
	if *stored != nil && (*stored).Format(model.DayLayout) == day {
		return false, nil
	}
	*stored = &parsed
	return true, nil
}

func (r *fakeUserRepo) GetReferrerOf(_ context.Context, id string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.Referrer == nil {
		return "", nil
	}
	return *u.Referrer, nil
}

func (r *fakeUserRepo) MarkReferralRewarded(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.ReferralRewarded {
		return false, nil
	}
	u.ReferralRewarded = true
	return true, nil
}

func (r *fakeUserRepo) TopSpinners(_ context.Context) ([]model.SpinnerRow, error) {
	return nil, nil
}

func (r *fakeUserRepo) TopMiners(_ context.Context) ([]model.MinerRow, error) {
	return nil, nil
}

// In-memory NFT репозиторий с управляемым отказом минта
type fakeNFTRepo struct {
	mu        sync.Mutex
	nextID    int64
	created   []model.NFT
	failTiers map[string]bool
}

func newFakeNFTRepo() *fakeNFTRepo {
	return &fakeNFTRepo{failTiers: make(map[string]bool)}
}

func (r *fakeNFTRepo) CreateNFT(_ context.Context, nft *model.NFT) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failTiers[nft.Tier] {
		return 0, errors.New("mint pool exhausted")
	}
	r.nextID++
	created := *nft
	created.ID = r.nextID
	r.created = append(r.created, created)
	return r.nextID, nil
}

func (r *fakeNFTRepo) TopCollectors(_ context.Context) ([]model.CollectorRow, error) {
	return nil, nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	entries []model.SpinHistoryEntry
}

func (r *fakeHistoryRepo) InsertSpin(_ context.Context, entry *model.SpinHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := *entry
	e.CreatedAt = time.Now()
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeHistoryRepo) ListByUser(_ context.Context, userID string, limit int) ([]model.SpinHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.SpinHistoryEntry
	for _, e := range r.entries {
		if e.UserID == userID && len(result) < limit {
			result = append(result, e)
		}
	}
	return result, nil
}

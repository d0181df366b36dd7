package user_repo

import (
	"context"
	"errors"

	"staro_backend/internal/model"
	"staro_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table               = "users"
	colID               = "id"
	colUsername         = "username"
	colStarsBalance     = "stars_balance"
	colTokenBalance     = "token_balance"
	colSpinsCount       = "spins_count"
	colBoostMult        = "boost_mult"
	colLastFreeDate     = "last_free_date"
	colLastClaimDate    = "last_claim_date"
	colReferrer         = "referrer"
	colReferralRewarded = "referral_rewarded"

	leaderboardLimit = 10
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// EnsureUser - создает пользователя при первом обращении.
// Если запись уже есть - ничего не делает
func (r *repo) EnsureUser(ctx context.Context, id string) error {
	query := sq.Insert(table).
		Columns(colID, colUsername).
		Values(id, id).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetUser - возвращает снимок аккаунта пользователя.
// Возвращает nil без ошибки, если пользователя нет
func (r *repo) GetUser(ctx context.Context, id string) (*model.User, error) {
	query := sq.Select(
		colID, colUsername, colStarsBalance, colTokenBalance, colSpinsCount,
		colBoostMult, colLastFreeDate, colLastClaimDate, colReferrer, colReferralRewarded,
	).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&user.ID, &user.Username, &user.StarsBalance, &user.TokenBalance, &user.SpinsCount,
		&user.BoostMult, &user.LastFreeDate, &user.LastClaimDate, &user.Referrer, &user.ReferralRewarded,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// AddStars - начисляет звезды пользователю
func (r *repo) AddStars(ctx context.Context, id string, amount int) error {
	return r.credit(ctx, id, colStarsBalance, amount)
}

// AddTokens - начисляет токены пользователю
func (r *repo) AddTokens(ctx context.Context, id string, amount int) error {
	return r.credit(ctx, id, colTokenBalance, amount)
}

func (r *repo) credit(ctx context.Context, id string, col string, amount int) error {
	query := sq.Update(table).
		Set(col, sq.Expr(col+" + ?", amount)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// DebitStars - списывает звезды одним условным UPDATE.
// Условие по балансу гарантирует, что баланс не уйдет в минус
// даже при конкурентных списаниях
func (r *repo) DebitStars(ctx context.Context, id string, amount int) (bool, error) {
	query := sq.Update(table).
		Set(colStarsBalance, sq.Expr(colStarsBalance+" - ?", amount)).
		Where(sq.Eq{colID: id}).
		Where(sq.GtOrEq{colStarsBalance: amount}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() == 1, nil
}

// SetBoost - устанавливает постоянный множитель буста
func (r *repo) SetBoost(ctx context.Context, id string, mult int) error {
	query := sq.Update(table).
		Set(colBoostMult, mult).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// IncrementSpinCount - увеличивает счетчик платных спинов на 1
func (r *repo) IncrementSpinCount(ctx context.Context, id string) error {
	query := sq.Update(table).
		Set(colSpinsCount, sq.Expr(colSpinsCount+" + 1")).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// MarkFreeSpinUsed - помечает фриспин использованным за день.
// Одиночный условный UPDATE: из двух конкурентных запросов
// строку обновит ровно один
func (r *repo) MarkFreeSpinUsed(ctx context.Context, id string, day string) (bool, error) {
	return r.markDay(ctx, id, colLastFreeDate, day)
}

// MarkDailyClaimed - помечает ежедневный бонус полученным за день
func (r *repo) MarkDailyClaimed(ctx context.Context, id string, day string) (bool, error) {
	return r.markDay(ctx, id, colLastClaimDate, day)
}

func (r *repo) markDay(ctx context.Context, id string, col string, day string) (bool, error) {
	query := sq.Update(table).
		Set(col, day).
		Where(sq.Eq{colID: id}).
		Where(sq.Or{
			sq.Eq{col: nil},
			sq.NotEq{col: day},
		}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() == 1, nil
}

// GetReferrerOf - возвращает ID реферера пользователя.
// Пустая строка - реферера нет
func (r *repo) GetReferrerOf(ctx context.Context, id string) (string, error) {
	query := sq.Select(colReferrer).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	var referrer *string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&referrer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	if referrer == nil {
		return "", nil
	}
	return *referrer, nil
}

// MarkReferralRewarded - взводит одноразовый флаг реферальной выплаты.
// Условие по флагу гарантирует не более одной выплаты
// при конкурентных депозитах одного реферала
func (r *repo) MarkReferralRewarded(ctx context.Context, id string) (bool, error) {
	query := sq.Update(table).
		Set(colReferralRewarded, true).
		Where(sq.Eq{colID: id}).
		Where(sq.Eq{colReferralRewarded: false}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() == 1, nil
}

// TopSpinners - топ-10 пользователей по количеству спинов
func (r *repo) TopSpinners(ctx context.Context) ([]model.SpinnerRow, error) {
	query := sq.Select(colUsername, colSpinsCount).
		From(table).
		OrderBy(colSpinsCount + " DESC").
		Limit(leaderboardLimit).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SpinnerRow
	for rows.Next() {
		var row model.SpinnerRow
		if err := rows.Scan(&row.Username, &row.SpinsCount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// TopMiners - топ-10 пользователей по балансу токенов
func (r *repo) TopMiners(ctx context.Context) ([]model.MinerRow, error) {
	query := sq.Select(colUsername, colTokenBalance).
		From(table).
		OrderBy(colTokenBalance + " DESC").
		Limit(leaderboardLimit).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MinerRow
	for rows.Next() {
		var row model.MinerRow
		if err := rows.Scan(&row.Username, &row.TokenBalance); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

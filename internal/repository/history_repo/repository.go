package history_repo

import (
	"context"
	"encoding/json"

	"staro_backend/internal/model"
	"staro_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "spin_history"
	colID        = "id"
	colUserID    = "user_id"
	colType      = "type"
	colOutcome   = "outcome"
	colAwarded   = "awarded"
	colCreatedAt = "created_at"
)

// Формат jsonb колонки awarded
type awardedRecord struct {
	Stars  int        `json:"stars"`
	Tokens int        `json:"tokens"`
	NFT    *nftRecord `json:"nft"`
}

type nftRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Tier string `json:"tier"`
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSpinHistoryRepository(dbc *pgxpool.Pool) repository.SpinHistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// InsertSpin - добавляет запись аудита спина.
// Вызывается в той же транзакции, что и мутации баланса,
// поэтому запись не может появиться раньше самой выплаты
func (r *repo) InsertSpin(ctx context.Context, entry *model.SpinHistoryEntry) error {
	awardedJSON, err := json.Marshal(toAwardedRecord(entry.Awarded))
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(colUserID, colType, colOutcome, colAwarded).
		Values(entry.UserID, entry.Type, entry.Outcome, awardedJSON).
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

// ListByUser - возвращает последние записи аудита пользователя
func (r *repo) ListByUser(ctx context.Context, userID string, limit int) ([]model.SpinHistoryEntry, error) {
	query := sq.Select(colID, colUserID, colType, colOutcome, colAwarded, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
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

	var result []model.SpinHistoryEntry
	for rows.Next() {
		var entry model.SpinHistoryEntry
		var awardedJSON []byte
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Type, &entry.Outcome, &awardedJSON, &entry.CreatedAt); err != nil {
			return nil, err
		}

		var record awardedRecord
		if err := json.Unmarshal(awardedJSON, &record); err != nil {
			return nil, err
		}
		entry.Awarded = fromAwardedRecord(record, entry.UserID)

		result = append(result, entry)
	}

	return result, rows.Err()
}

func toAwardedRecord(a model.Awarded) awardedRecord {
	record := awardedRecord{
		Stars:  a.Stars,
		Tokens: a.Tokens,
	}
	if a.NFT != nil {
		record.NFT = &nftRecord{
			ID:   a.NFT.ID,
			Name: a.NFT.Name,
			Tier: a.NFT.Tier,
		}
	}
	return record
}

func fromAwardedRecord(record awardedRecord, owner string) model.Awarded {
	awarded := model.Awarded{
		Stars:  record.Stars,
		Tokens: record.Tokens,
	}
	if record.NFT != nil {
		awarded.NFT = &model.NFT{
			ID:    record.NFT.ID,
			Name:  record.NFT.Name,
			Tier:  record.NFT.Tier,
			Owner: owner,
		}
	}
	return awarded
}

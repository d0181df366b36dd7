package nft_repo

import (
	"context"

	"staro_backend/internal/model"
	"staro_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table    = "nfts"
	colID    = "id"
	colName  = "name"
	colTier  = "tier"
	colOwner = "owner"

	leaderboardLimit = 10
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewNFTRepository(dbc *pgxpool.Pool) repository.NFTRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateNFT - создает NFT с назначенным владельцем.
// Возвращает ID созданной записи
func (r *repo) CreateNFT(ctx context.Context, nft *model.NFT) (int64, error) {
	query := sq.Insert(table).
		Columns(colName, colTier, colOwner).
		Values(nft.Name, nft.Tier, nft.Owner).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// TopCollectors - топ-10 владельцев по количеству NFT
func (r *repo) TopCollectors(ctx context.Context) ([]model.CollectorRow, error) {
	query := sq.Select("u.username", "COUNT(n."+colID+") AS cnt").
		From(table + " n").
		Join("users u ON u.id = n." + colOwner).
		GroupBy("u.username").
		OrderBy("cnt DESC").
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

	var result []model.CollectorRow
	for rows.Next() {
		var row model.CollectorRow
		if err := rows.Scan(&row.Username, &row.NFTs); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

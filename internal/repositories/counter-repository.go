package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PgCounterStore - kho counter VSO trên Postgres, một dòng cho mỗi key
// "{maDms}-{YY}-{MM}". Increment là một câu lệnh upsert duy nhất nên
// các lời gọi trên cùng key được Postgres serialize bằng row lock;
// khác key thì không ảnh hưởng nhau.
type PgCounterStore struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPgCounterStore(storage *pgxpool.Pool, logger *zap.Logger) *PgCounterStore {
	return &PgCounterStore{storage: storage, logger: logger}
}

func (r *PgCounterStore) Get(ctx context.Context, key string) (int64, bool, error) {
	var value int64
	err := r.storage.QueryRow(ctx,
		`SELECT value FROM vso_counters WHERE counter_key = $1`, key,
	).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lỗi đọc counter %s: %w", key, err)
	}
	return value, true, nil
}

func (r *PgCounterStore) TransactionalIncrement(ctx context.Context, key string) (int64, error) {
	var value int64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO vso_counters (counter_key, value, created_at, updated_at)
		VALUES ($1, 1, NOW(), NOW())
		ON CONFLICT (counter_key)
		DO UPDATE SET value = vso_counters.value + 1, updated_at = NOW()
		RETURNING value
	`, key).Scan(&value)

	if err != nil {
		return 0, fmt.Errorf("lỗi tăng counter %s: %w", key, err)
	}
	return value, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

const slotsTable = "kv_slots"

// SlotRepository keeps named key-value slots in Postgres.
type SlotRepository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{
		db: pool,
	}
}

func (r *SlotRepository) Get(ctx context.Context, key string) (string, error) {
	sqlQuery, args, err := sq.Select("value").
		From(slotsTable).
		Where(sq.Eq{"key": key}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", err
	}

	var value string

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entity.ErrNotFound
		}

		return "", err
	}

	return value, nil
}

func (r *SlotRepository) Set(ctx context.Context, key, value string) error {
	sqlQuery, args, err := sq.Insert(slotsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, key string) error {
	sqlQuery, args, err := sq.Delete(slotsTable).
		Where(sq.Eq{"key": key}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}

	return nil
}

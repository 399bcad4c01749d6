package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateOrder(ctx context.Context) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, created_at)
		VALUES ($1, now())
	`, id)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (r *PostgresRepository) exists(ctx context.Context, orderID string) error {
	var one int
	err := r.db.QueryRow(ctx, `
		SELECT 1 FROM orders WHERE id = $1
	`, orderID).Scan(&one)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrOrderNotFound
	}
	return err
}

func (r *PostgresRepository) AddDrink(ctx context.Context, orderID string, rec DrinkRecord) (int, error) {
	// Position is derived from the current line count, so concurrent
	// adds to one order must serialize on the order row or they
	// collide on UNIQUE (order_id, position).
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var one int
	err = tx.QueryRow(ctx, `
		SELECT 1 FROM orders WHERE id = $1 FOR UPDATE
	`, orderID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrOrderNotFound
	}
	if err != nil {
		return 0, err
	}

	var position int
	err = tx.QueryRow(ctx, `
		INSERT INTO order_drinks (order_id, position, base, size, flavors)
		VALUES (
			$1,
			(SELECT COUNT(*) FROM order_drinks WHERE order_id = $1),
			$2, $3, $4
		)
		RETURNING position
	`, orderID, rec.Base, rec.Size, rec.Flavors).Scan(&position)
	if err != nil {
		return 0, err
	}

	return position, tx.Commit(ctx)
}

func (r *PostgresRepository) UpdateDrinkSize(ctx context.Context, orderID string, index int, size string) error {
	if err := r.exists(ctx, orderID); err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE order_drinks
		SET size = $1
		WHERE order_id = $2 AND position = $3
	`, size, orderID, index)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrDrinkNotFound
	}
	return nil
}

func (r *PostgresRepository) GetDrinks(ctx context.Context, orderID string) ([]DrinkRecord, error) {
	if err := r.exists(ctx, orderID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT base, size, flavors
		FROM order_drinks
		WHERE order_id = $1
		ORDER BY position
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drinks := []DrinkRecord{}
	for rows.Next() {
		var rec DrinkRecord
		if err := rows.Scan(&rec.Base, &rec.Size, &rec.Flavors); err != nil {
			return nil, err
		}
		drinks = append(drinks, rec)
	}

	return drinks, rows.Err()
}

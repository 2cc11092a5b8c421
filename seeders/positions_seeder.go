package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedPositions(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'positions'...")
	query := `INSERT INTO positions (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, name := range positionsData {
		if _, err := tx.Exec(ctx, query, name); err != nil {
			return fmt.Errorf("ошибка при вставке должности '%s': %w", name, err)
		}
	}
	return tx.Commit(ctx)
}

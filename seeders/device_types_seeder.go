package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedDeviceTypes(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'device_types'...")
	query := `INSERT INTO device_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	for _, name := range deviceTypesData {
		if _, err := tx.Exec(ctx, query, name); err != nil {
			return fmt.Errorf("ошибка при вставке типа устройства '%s': %w", name, err)
		}
	}
	return tx.Commit(ctx)
}

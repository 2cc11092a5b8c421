package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDictionaries наполняет справочники, не имеющие зависимостей.
func SeedDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения справочников...")

	if err := seedDeviceTypes(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения типов устройств (DeviceTypes): %v", err)
	}
	if err := seedPositions(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения должностей (Positions): %v", err)
	}
	log.Println("✅ Наполнение справочников завершено!")
}

// SeedDemo создаёт демонстрационный набор данных поверх справочников.
func SeedDemo(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демо-данными...")

	if err := seedDemoData(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения демо-данными: %v", err)
	}
	log.Println("✅ Наполнение демо-данными завершено!")
}

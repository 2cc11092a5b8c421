package main

import (
	"flag"
	"log"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runSchema := flag.Bool("schema", false, "Создать таблицы, если их ещё нет")
	runDictionaries := flag.Bool("dictionaries", false, "Наполнить справочники (типы устройств, должности)")
	runDemo := flag.Bool("demo", false, "Наполнить демо-данными (персоны, сотрудники, устройства, выдачи)")
	runAll := flag.Bool("all", false, "Запустить всё (эквивалентно -schema -dictionaries -demo)")

	flag.Parse()

	if !*runSchema && !*runDictionaries && !*runDemo && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -schema -dictionaries")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runSchema {
		seeders.ApplySchema(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbPool)
		log.Println("======================================================")
	}

	if *runAll || *runDemo {
		// Демо-данные зависят от справочников
		seeders.SeedDemo(dbPool)
		log.Println("======================================================")
	}

	log.Println("🏁 Готово.")
}

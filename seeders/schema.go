package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS device_types (
    id   BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS devices (
    id                    BIGSERIAL PRIMARY KEY,
    name                  TEXT    NOT NULL,
    is_enabled            BOOLEAN NOT NULL DEFAULT TRUE,
    additional_properties TEXT    NOT NULL DEFAULT '{}',
    device_type_id        BIGINT  NOT NULL REFERENCES device_types (id)
);

CREATE TABLE IF NOT EXISTS persons (
    id              BIGSERIAL PRIMARY KEY,
    passport_number TEXT NOT NULL,
    first_name      TEXT NOT NULL,
    middle_name     TEXT,
    last_name       TEXT NOT NULL,
    phone_number    TEXT NOT NULL,
    email           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
    id   BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS employees (
    id          BIGSERIAL PRIMARY KEY,
    person_id   BIGINT  NOT NULL REFERENCES persons (id),
    position_id BIGINT  NOT NULL REFERENCES positions (id),
    salary      NUMERIC(12, 2) NOT NULL,
    hire_date   TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS device_employees (
    id          BIGSERIAL PRIMARY KEY,
    device_id   BIGINT NOT NULL REFERENCES devices (id) ON DELETE CASCADE,
    employee_id BIGINT NOT NULL REFERENCES employees (id),
    issue_date  TIMESTAMPTZ NOT NULL,
    return_date TIMESTAMPTZ
);
`

// ApplySchema создаёт таблицы, если их ещё нет.
func ApplySchema(db *pgxpool.Pool) {
	log.Println("▶️  Создание схемы БД...")
	if _, err := db.Exec(context.Background(), schemaDDL); err != nil {
		log.Fatalf("❌ Ошибка создания схемы: %v", err)
	}
	log.Println("✅ Схема БД готова!")
}

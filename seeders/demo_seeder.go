package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedDemoData наполняет БД демонстрационным набором: персоны, сотрудники,
// устройства и записи о выдаче. Требует заранее засеянных справочников.
func seedDemoData(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение демо-данными (persons, employees, devices, device_employees)...")
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	employeeByEmail := make(map[string]uint64, len(personsData))

	for _, p := range personsData {
		var personID uint64
		err := tx.QueryRow(ctx,
			`INSERT INTO persons (passport_number, first_name, middle_name, last_name, phone_number, email)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			p.Passport, p.FirstName, p.MiddleName, p.LastName, p.Phone, p.Email,
		).Scan(&personID)
		if err != nil {
			return fmt.Errorf("ошибка при вставке персоны '%s': %w", p.Email, err)
		}

		var positionID uint64
		if err := tx.QueryRow(ctx, `SELECT id FROM positions WHERE name = $1`, p.Position).Scan(&positionID); err != nil {
			return fmt.Errorf("должность '%s' не найдена, сначала запустите -dictionaries: %w", p.Position, err)
		}

		var employeeID uint64
		err = tx.QueryRow(ctx,
			`INSERT INTO employees (person_id, position_id, salary, hire_date)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			personID, positionID, p.Salary, p.HireDate,
		).Scan(&employeeID)
		if err != nil {
			return fmt.Errorf("ошибка при вставке сотрудника '%s': %w", p.Email, err)
		}
		employeeByEmail[p.Email] = employeeID
	}

	for _, d := range devicesData {
		var typeID uint64
		if err := tx.QueryRow(ctx, `SELECT id FROM device_types WHERE name = $1`, d.Type).Scan(&typeID); err != nil {
			return fmt.Errorf("тип устройства '%s' не найден, сначала запустите -dictionaries: %w", d.Type, err)
		}

		var deviceID uint64
		err := tx.QueryRow(ctx,
			`INSERT INTO devices (name, is_enabled, additional_properties, device_type_id)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			d.Name, d.IsEnabled, d.Properties, typeID,
		).Scan(&deviceID)
		if err != nil {
			return fmt.Errorf("ошибка при вставке устройства '%s': %w", d.Name, err)
		}

		if d.HolderEmail == "" {
			continue
		}
		employeeID, ok := employeeByEmail[d.HolderEmail]
		if !ok {
			return fmt.Errorf("сотрудник '%s' для устройства '%s' не найден", d.HolderEmail, d.Name)
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO device_employees (device_id, employee_id, issue_date, return_date)
			 VALUES ($1, $2, $3, NULL)`,
			deviceID, employeeID, d.IssuedAt,
		); err != nil {
			return fmt.Errorf("ошибка при вставке записи о выдаче '%s': %w", d.Name, err)
		}
	}

	return tx.Commit(ctx)
}

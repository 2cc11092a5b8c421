package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const employeeTable = "employees"

type EmployeeRepositoryInterface interface {
	// GetAll возвращает сотрудников с присоединёнными персонами
	// (для построения полного имени).
	GetAll(ctx context.Context) ([]*entities.Employee, error)
	// FindByID возвращает сотрудника с персоной и должностью.
	FindByID(ctx context.Context, id uint64) (*entities.Employee, error)
}

type employeeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &employeeRepository{storage: storage, logger: logger}
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]*entities.Employee, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(
		"e.id", "p.first_name", "p.middle_name", "p.last_name",
	).
		From(employeeTable + " e").
		Join("persons p ON p.id = e.person_id").
		OrderBy("e.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для GetAll employees: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения select employees: %w", err)
	}
	defer rows.Close()

	employees := make([]*entities.Employee, 0)
	for rows.Next() {
		var e entities.Employee
		var p entities.Person
		if err := rows.Scan(&e.ID, &p.FirstName, &p.MiddleName, &p.LastName); err != nil {
			return nil, fmt.Errorf("ошибка сканирования employees: %w", err)
		}
		e.Person = &p
		employees = append(employees, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации rows: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id uint64) (*entities.Employee, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(
		"e.id", "e.person_id", "e.position_id", "e.salary", "e.hire_date",
		"p.id", "p.passport_number", "p.first_name", "p.middle_name", "p.last_name", "p.phone_number", "p.email",
		"pos.id", "pos.name",
	).
		From(employeeTable + " e").
		Join("persons p ON p.id = e.person_id").
		Join("positions pos ON pos.id = e.position_id").
		Where(sq.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByID employee: %w", err)
	}

	var e entities.Employee
	var p entities.Person
	var pos entities.Position
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.PersonID, &e.PositionID, &e.Salary, &e.HireDate,
		&p.ID, &p.PassportNumber, &p.FirstName, &p.MiddleName, &p.LastName, &p.PhoneNumber, &p.Email,
		&pos.ID, &pos.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования employee: %w", err)
	}

	e.Person = &p
	e.Position = &pos
	return &e, nil
}

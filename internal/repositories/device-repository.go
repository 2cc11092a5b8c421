package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

const deviceTable = "devices"

type DeviceRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*entities.Device, error)
	// FindByID возвращает устройство вместе с именем его типа
	// (null, если ссылка на тип отсутствует).
	FindByID(ctx context.Context, id uint64) (*entities.Device, null.String, error)
	// FindActiveAssignment возвращает непогашенную запись о выдаче с самой
	// поздней датой (при равных датах — с большим id) вместе с сотрудником
	// и персоной; nil без ошибки, если устройство ни у кого не на руках.
	FindActiveAssignment(ctx context.Context, deviceID uint64) (*entities.DeviceEmployee, error)
	Create(ctx context.Context, device entities.Device) (uint64, error)
	Update(ctx context.Context, id uint64, device entities.Device) error
	Delete(ctx context.Context, id uint64) error
}

type deviceRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDeviceRepository(storage *pgxpool.Pool, logger *zap.Logger) DeviceRepositoryInterface {
	return &deviceRepository{storage: storage, logger: logger}
}

func (r *deviceRepository) GetAll(ctx context.Context) ([]*entities.Device, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select("id", "name").
		From(deviceTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для GetAll devices: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения select devices: %w", err)
	}
	defer rows.Close()

	devices := make([]*entities.Device, 0)
	for rows.Next() {
		var d entities.Device
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("ошибка сканирования devices: %w", err)
		}
		devices = append(devices, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации rows: %w", err)
	}

	return devices, nil
}

func (r *deviceRepository) FindByID(ctx context.Context, id uint64) (*entities.Device, null.String, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(
		"d.id", "d.name", "d.is_enabled", "d.additional_properties", "d.device_type_id",
		"dt.name",
	).
		From(deviceTable + " d").
		LeftJoin("device_types dt ON dt.id = d.device_type_id").
		Where(sq.Eq{"d.id": id}).
		ToSql()
	if err != nil {
		return nil, null.String{}, fmt.Errorf("ошибка сборки SQL для FindByID device: %w", err)
	}

	var d entities.Device
	var typeName null.String
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.Name, &d.IsEnabled, &d.AdditionalProperties, &d.DeviceTypeID,
		&typeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, null.String{}, apperrors.ErrNotFound
		}
		return nil, null.String{}, fmt.Errorf("ошибка сканирования device: %w", err)
	}

	return &d, typeName, nil
}

// activeAssignmentQuery выбирает держателя устройства: непогашенную запись
// о выдаче с самой поздней датой, при равных датах — с большим id.
func activeAssignmentQuery(deviceID uint64) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	return psql.Select(
		"de.id", "de.device_id", "de.employee_id", "de.issue_date",
		"e.id", "p.id", "p.first_name", "p.last_name",
	).
		From("device_employees de").
		Join("employees e ON e.id = de.employee_id").
		Join("persons p ON p.id = e.person_id").
		Where(sq.Eq{"de.device_id": deviceID, "de.return_date": nil}).
		OrderBy("de.issue_date DESC", "de.id DESC").
		Limit(1).
		ToSql()
}

func (r *deviceRepository) FindActiveAssignment(ctx context.Context, deviceID uint64) (*entities.DeviceEmployee, error) {
	query, args, err := activeAssignmentQuery(deviceID)
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindActiveAssignment: %w", err)
	}

	var assignment entities.DeviceEmployee
	var employee entities.Employee
	var person entities.Person
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&assignment.ID, &assignment.DeviceID, &assignment.EmployeeID, &assignment.IssueDate,
		&employee.ID, &person.ID, &person.FirstName, &person.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка сканирования device_employees: %w", err)
	}

	employee.Person = &person
	assignment.Employee = &employee
	return &assignment, nil
}

func (r *deviceRepository) Create(ctx context.Context, device entities.Device) (uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(deviceTable).
		Columns("name", "is_enabled", "additional_properties", "device_type_id").
		Values(device.Name, device.IsEnabled, device.AdditionalProperties, device.DeviceTypeID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания devices: %w", err)
	}
	return newID, nil
}

func (r *deviceRepository) Update(ctx context.Context, id uint64, device entities.Device) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Update(deviceTable).
		Set("name", device.Name).
		Set("is_enabled", device.IsEnabled).
		Set("additional_properties", device.AdditionalProperties).
		Set("device_type_id", device.DeviceTypeID).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления devices: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *deviceRepository) Delete(ctx context.Context, id uint64) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Delete(deviceTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка удаления devices: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

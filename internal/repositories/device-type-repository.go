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

const (
	deviceTypeTable  = "device_types"
	deviceTypeFields = "id, name"
)

type DeviceTypeRepositoryInterface interface {
	FindByName(ctx context.Context, name string) (*entities.DeviceType, error)
}

type deviceTypeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDeviceTypeRepository(storage *pgxpool.Pool, logger *zap.Logger) DeviceTypeRepositoryInterface {
	return &deviceTypeRepository{storage: storage, logger: logger}
}

func (r *deviceTypeRepository) FindByName(ctx context.Context, name string) (*entities.DeviceType, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(deviceTypeFields).
		From(deviceTypeTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByName device_types: %w", err)
	}

	var dt entities.DeviceType
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&dt.ID, &dt.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования device_types: %w", err)
	}
	return &dt, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type DeviceServiceInterface interface {
	GetDevices(ctx context.Context) ([]dto.ShortDeviceDTO, error)
	FindDevice(ctx context.Context, id uint64) (*dto.DeviceDTO, error)
	CreateDevice(ctx context.Context, payload dto.CreateDeviceDTO) (*entities.Device, error)
	UpdateDevice(ctx context.Context, id uint64, payload dto.CreateDeviceDTO) (*entities.Device, error)
	DeleteDevice(ctx context.Context, id uint64) error
}

type DeviceService struct {
	deviceRepository     repositories.DeviceRepositoryInterface
	deviceTypeRepository repositories.DeviceTypeRepositoryInterface
	logger               *zap.Logger
}

func NewDeviceService(
	deviceRepository repositories.DeviceRepositoryInterface,
	deviceTypeRepository repositories.DeviceTypeRepositoryInterface,
	logger *zap.Logger,
) *DeviceService {
	return &DeviceService{
		deviceRepository:     deviceRepository,
		deviceTypeRepository: deviceTypeRepository,
		logger:               logger,
	}
}

func (s *DeviceService) GetDevices(ctx context.Context) ([]dto.ShortDeviceDTO, error) {
	devices, err := s.deviceRepository.GetAll(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении списка устройств", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShortDeviceDTO, 0, len(devices))
	for _, d := range devices {
		result = append(result, dto.ShortDeviceDTO{ID: d.ID, Name: d.Name})
	}
	return result, nil
}

func (s *DeviceService) FindDevice(ctx context.Context, id uint64) (*dto.DeviceDTO, error) {
	device, typeName, err := s.deviceRepository.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Ошибка при поиске устройства", zap.Uint64("id", id), zap.Error(err))
		}
		return nil, err
	}

	assignment, err := s.deviceRepository.FindActiveAssignment(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске держателя устройства", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return dto.NewDeviceDTO(device, typeName, assignment)
}

func (s *DeviceService) CreateDevice(ctx context.Context, payload dto.CreateDeviceDTO) (*entities.Device, error) {
	deviceType, err := s.deviceTypeRepository.FindByName(ctx, payload.Type)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusNotFound, "DeviceType not found.", err, nil)
		}
		return nil, err
	}

	device := entities.Device{
		Name:                 payload.Name,
		IsEnabled:            *payload.IsEnabled,
		AdditionalProperties: payload.AdditionalProperties,
		DeviceTypeID:         deviceType.ID,
	}

	newID, err := s.deviceRepository.Create(ctx, device)
	if err != nil {
		s.logger.Error("Ошибка при создании устройства", zap.Error(err))
		return nil, err
	}

	device.ID = newID
	s.logger.Info("Устройство создано", zap.Uint64("id", newID), zap.String("name", device.Name))
	return &device, nil
}

func (s *DeviceService) UpdateDevice(ctx context.Context, id uint64, payload dto.CreateDeviceDTO) (*entities.Device, error) {
	if _, _, err := s.deviceRepository.FindByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusNotFound, fmt.Sprintf("Device with ID %d not found.", id), err, nil)
		}
		return nil, err
	}

	deviceType, err := s.deviceTypeRepository.FindByName(ctx, payload.Type)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusNotFound, "DeviceType not found.", err, nil)
		}
		return nil, err
	}

	device := entities.Device{
		ID:                   id,
		Name:                 payload.Name,
		IsEnabled:            *payload.IsEnabled,
		AdditionalProperties: payload.AdditionalProperties,
		DeviceTypeID:         deviceType.ID,
	}

	if err := s.deviceRepository.Update(ctx, id, device); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewHttpError(http.StatusNotFound, fmt.Sprintf("Device with ID %d not found.", id), err, nil)
		}
		s.logger.Error("Ошибка при обновлении устройства", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return &device, nil
}

func (s *DeviceService) DeleteDevice(ctx context.Context, id uint64) error {
	if err := s.deviceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewHttpError(http.StatusNotFound, fmt.Sprintf("Device with ID %d not found.", id), err, nil)
		}
		s.logger.Error("Ошибка при удалении устройства", zap.Uint64("id", id), zap.Error(err))
		return err
	}
	return nil
}

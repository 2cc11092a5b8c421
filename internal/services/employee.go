package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context) ([]dto.ShortEmployeeDTO, error)
	FindEmployee(ctx context.Context, id uint64) (*dto.PersonDTO, error)
}

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	logger             *zap.Logger
}

func NewEmployeeService(employeeRepository repositories.EmployeeRepositoryInterface, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

func (s *EmployeeService) GetEmployees(ctx context.Context) ([]dto.ShortEmployeeDTO, error) {
	employees, err := s.employeeRepository.GetAll(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении списка сотрудников", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShortEmployeeDTO, 0, len(employees))
	for _, e := range employees {
		result = append(result, dto.NewShortEmployeeDTO(e))
	}
	return result, nil
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uint64) (*dto.PersonDTO, error) {
	employee, err := s.employeeRepository.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Error("Ошибка при поиске сотрудника", zap.Uint64("id", id), zap.Error(err))
		}
		return nil, err
	}
	return dto.NewPersonDTO(employee), nil
}

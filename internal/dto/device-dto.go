package dto

import (
	"encoding/json"
	"fmt"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	"github.com/aarondl/null/v8"
)

type CreateDeviceDTO struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
	// Указатель, чтобы required пропускал явно переданное false.
	IsEnabled            *bool  `json:"isEnabled" validate:"required"`
	AdditionalProperties string `json:"additionalProperties" validate:"required"`
}

type ShortDeviceDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// EmployeeDTO — краткая ссылка на сотрудника в карточке устройства.
type EmployeeDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
}

type DeviceDTO struct {
	Name                 string       `json:"name"`
	TypeName             string       `json:"typeName"`
	IsEnabled            bool         `json:"isEnabled"`
	AdditionalProperties interface{}  `json:"additionalProperties"`
	CurrentEmployee      *EmployeeDTO `json:"currentEmployee"`
}

// NewDeviceDTO собирает карточку устройства: подставляет "Unknown"
// вместо отсутствующего типа, лениво разбирает сохранённый JSON-текст
// additionalProperties и проецирует текущего держателя, если он есть.
func NewDeviceDTO(device *entities.Device, typeName null.String, assignment *entities.DeviceEmployee) (*DeviceDTO, error) {
	result := &DeviceDTO{
		Name:      device.Name,
		TypeName:  "Unknown",
		IsEnabled: device.IsEnabled,
	}
	if typeName.Valid {
		result.TypeName = typeName.String
	}

	if err := json.Unmarshal([]byte(device.AdditionalProperties), &result.AdditionalProperties); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCorruptedProperties, err)
	}

	if assignment != nil && assignment.Employee != nil && assignment.Employee.Person != nil {
		result.CurrentEmployee = &EmployeeDTO{
			ID:       assignment.Employee.ID,
			FullName: assignment.Employee.Person.ShortName(),
		}
	}

	return result, nil
}

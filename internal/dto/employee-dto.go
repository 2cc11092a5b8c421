package dto

import (
	"time"

	"inventory-system/internal/entities"

	"github.com/aarondl/null/v8"
)

type ShortEmployeeDTO struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
}

type PositionDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// PersonDTO — полный агрегат сотрудника: персональные данные плюс должность.
type PersonDTO struct {
	ID             uint64      `json:"id"`
	PassportNumber string      `json:"passportNumber"`
	FirstName      string      `json:"firstName"`
	MiddleName     null.String `json:"middleName"`
	LastName       string      `json:"lastName"`
	PhoneNumber    string      `json:"phoneNumber"`
	Email          string      `json:"email"`
	Salary         float64     `json:"salary"`
	Position       PositionDTO `json:"position"`
	HireDate       time.Time   `json:"hireDate"`
}

func NewShortEmployeeDTO(employee *entities.Employee) ShortEmployeeDTO {
	result := ShortEmployeeDTO{ID: employee.ID}
	if employee.Person != nil {
		result.FullName = employee.Person.FullName()
	}
	return result
}

func NewPersonDTO(employee *entities.Employee) *PersonDTO {
	result := &PersonDTO{
		ID:       employee.ID,
		Salary:   employee.Salary,
		HireDate: employee.HireDate,
	}
	if employee.Person != nil {
		result.PassportNumber = employee.Person.PassportNumber
		result.FirstName = employee.Person.FirstName
		result.MiddleName = employee.Person.MiddleName
		result.LastName = employee.Person.LastName
		result.PhoneNumber = employee.Person.PhoneNumber
		result.Email = employee.Person.Email
	}
	if employee.Position != nil {
		result.Position = PositionDTO{ID: employee.Position.ID, Name: employee.Position.Name}
	}
	return result
}

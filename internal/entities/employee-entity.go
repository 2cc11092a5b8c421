package entities

import "time"

type Employee struct {
	ID         uint64    `json:"id"`
	PersonID   uint64    `json:"personId"`
	PositionID uint64    `json:"positionId"`
	Salary     float64   `json:"salary"`
	HireDate   time.Time `json:"hireDate"`

	// Присоединённые данные (заполняются запросами с JOIN).
	Person   *Person   `json:"-"`
	Position *Position `json:"-"`
}

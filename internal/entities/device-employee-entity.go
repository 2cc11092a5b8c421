package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// DeviceEmployee — запись о выдаче устройства сотруднику.
// Держатель устройства — непогашенная запись (return_date IS NULL)
// с самой поздней датой выдачи; при равных датах побеждает больший id.
type DeviceEmployee struct {
	ID         uint64    `json:"id"`
	DeviceID   uint64    `json:"deviceId"`
	EmployeeID uint64    `json:"employeeId"`
	IssueDate  time.Time `json:"issueDate"`
	ReturnDate null.Time `json:"returnDate"`

	Employee *Employee `json:"-"`
}

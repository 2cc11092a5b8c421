package entities

import (
	"strings"

	"github.com/aarondl/null/v8"
)

type Person struct {
	ID             uint64      `json:"id"`
	PassportNumber string      `json:"passportNumber"`
	FirstName      string      `json:"firstName"`
	MiddleName     null.String `json:"middleName"`
	LastName       string      `json:"lastName"`
	PhoneNumber    string      `json:"phoneNumber"`
	Email          string      `json:"email"`
}

// FullName — "Имя Отчество Фамилия"; пустое отчество не оставляет двойного пробела.
func (p Person) FullName() string {
	return joinNameParts(p.FirstName, p.MiddleName.String, p.LastName)
}

// ShortName — "Имя Фамилия", используется в карточке устройства.
func (p Person) ShortName() string {
	return joinNameParts(p.FirstName, p.LastName)
}

func joinNameParts(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

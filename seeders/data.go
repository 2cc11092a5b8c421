package seeders

import "time"

var deviceTypesData = []string{
	"Laptop",
	"Monitor",
	"Printer",
	"Phone",
	"Router",
}

var positionsData = []string{
	"Engineer",
	"System Administrator",
	"Accountant",
	"HR Manager",
}

type personSeed struct {
	Passport   string
	FirstName  string
	MiddleName *string
	LastName   string
	Phone      string
	Email      string
	Position   string
	Salary     float64
	HireDate   time.Time
}

func strPtr(s string) *string { return &s }

var personsData = []personSeed{
	{
		Passport:   "A01234567",
		FirstName:  "Ivan",
		MiddleName: strPtr("Petrovich"),
		LastName:   "Sidorov",
		Phone:      "992900000001",
		Email:      "i.sidorov@example.com",
		Position:   "Engineer",
		Salary:     1200,
		HireDate:   time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
	},
	{
		Passport:   "A07654321",
		FirstName:  "Ann",
		MiddleName: nil,
		LastName:   "Lee",
		Phone:      "992900000002",
		Email:      "a.lee@example.com",
		Position:   "System Administrator",
		Salary:     1500,
		HireDate:   time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		Passport:   "A05550123",
		FirstName:  "Olim",
		MiddleName: strPtr("Rustamovich"),
		LastName:   "Karimov",
		Phone:      "992900000003",
		Email:      "o.karimov@example.com",
		Position:   "Accountant",
		Salary:     1100,
		HireDate:   time.Date(2021, 11, 20, 0, 0, 0, 0, time.UTC),
	},
}

type deviceSeed struct {
	Name       string
	Type       string
	IsEnabled  bool
	Properties string
	// Email сотрудника, на которого выдано устройство; пусто — на складе.
	HolderEmail string
	IssuedAt    time.Time
}

var devicesData = []deviceSeed{
	{
		Name:        "ThinkPad T14 Gen 4",
		Type:        "Laptop",
		IsEnabled:   true,
		Properties:  `{"cpu":"Ryzen 7 PRO","ram_gb":32,"serial":"PF3XYZ01"}`,
		HolderEmail: "i.sidorov@example.com",
		IssuedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		Name:       "Dell U2723QE",
		Type:       "Monitor",
		IsEnabled:  true,
		Properties: `{"diagonal_inches":27,"panel":"IPS Black"}`,
	},
	{
		Name:        "HP LaserJet M404dn",
		Type:        "Printer",
		IsEnabled:   false,
		Properties:  `{"duplex":true,"ppm":38}`,
		HolderEmail: "a.lee@example.com",
		IssuedAt:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	},
}

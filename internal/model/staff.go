package model

import "time"

// Date layouts used by staff records.
const (
	DateLayout      = "02-01-2006" // dd-MM-yyyy
	IncrementLayout = "02-01"      // dd-MM
)

// Staff represents one member of the office's personnel.
// NICNumber is always stored in the canonical 12 digit form.
type Staff struct {
	ID string `json:"id"`

	AppointmentNumber string `json:"appointment_number"`
	FullName          string `json:"full_name"`
	Gender            string `json:"gender"`
	DateOfBirth       string `json:"date_of_birth"`
	Age               int    `json:"age"`
	NICNumber         string `json:"nic_number"`
	MaritalStatus     string `json:"marital_status"`
	AddressLine1      string `json:"address_line1"`
	AddressLine2      string `json:"address_line2,omitempty"`
	AddressLine3      string `json:"address_line3,omitempty"`
	ContactNumber     string `json:"contact_number"`
	Email             string `json:"email,omitempty"`

	Designation            string `json:"designation"`
	DateOfFirstAppointment string `json:"date_of_first_appointment"`
	DateOfRetirement       string `json:"date_of_retirement"`
	IncrementDate          string `json:"increment_date"`

	SalaryCode      string  `json:"salary_code"`
	BasicSalary     float64 `json:"basic_salary"`
	IncrementAmount float64 `json:"increment_amount"`

	ImagePath string `json:"image_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StaffInput is the writable part of a staff record as submitted by clients.
// Gender and DateOfBirth may be left empty; they are then derived from the NIC.
type StaffInput struct {
	AppointmentNumber string `json:"appointment_number" validate:"required,min=3,max=20"`
	FullName          string `json:"full_name" validate:"required,min=2,max=100"`
	Gender            string `json:"gender" validate:"omitempty,oneof=Male Female"`
	DateOfBirth       string `json:"date_of_birth" validate:"omitempty,datetime=02-01-2006"`
	NICNumber         string `json:"nic_number" validate:"required"`
	MaritalStatus     string `json:"marital_status" validate:"required,oneof=Single Married Divorced Widowed"`
	AddressLine1      string `json:"address_line1" validate:"required"`
	AddressLine2      string `json:"address_line2"`
	AddressLine3      string `json:"address_line3"`
	ContactNumber     string `json:"contact_number" validate:"required,lkphone"`
	Email             string `json:"email" validate:"omitempty,email"`

	Designation            string `json:"designation" validate:"required,designation"`
	DateOfFirstAppointment string `json:"date_of_first_appointment" validate:"required,datetime=02-01-2006"`
	IncrementDate          string `json:"increment_date" validate:"required,datetime=02-01"`

	SalaryCode      string  `json:"salary_code" validate:"required,oneof=S1 S2 S3 D1 D2 D3 A1 A2"`
	BasicSalary     float64 `json:"basic_salary" validate:"gte=0"`
	IncrementAmount float64 `json:"increment_amount" validate:"gte=0"`
}

// StaffSearch holds optional filters. Empty strings and nil bounds are ignored.
type StaffSearch struct {
	Query         string `json:"query,omitempty"`
	Designation   string `json:"designation,omitempty"`
	Gender        string `json:"gender,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	SalaryCode    string `json:"salary_code,omitempty"`
	NICNumber     string `json:"nic_number,omitempty"`
	AgeMin        *int   `json:"age_min,omitempty"`
	AgeMax        *int   `json:"age_max,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	Offset        int    `json:"offset,omitempty"`
}

// StaffCount is the aggregate report over all staff.
type StaffCount struct {
	Total         int                `json:"total"`
	ByDesignation []DesignationCount `json:"by_designation"`
	ByGender      []GenderCount      `json:"by_gender"`
}

type DesignationCount struct {
	Designation string `json:"designation"`
	Count       int    `json:"count"`
}

type GenderCount struct {
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

// Designations lists the posts held at the office.
var Designations = []string{
	"District Forest Officer",
	"Asst.District Forest Officer",
	"Management Service Officer",
	"Development Officer",
	"Range Forest officer",
	"Beat forest officer",
	"extension officer",
	"field forest assistant",
	"office employee service",
	"garden labour",
}

// IsDesignation reports whether s is one of Designations.
func IsDesignation(s string) bool {
	for _, d := range Designations {
		if d == s {
			return true
		}
	}
	return false
}

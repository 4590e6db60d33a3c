package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"staffregistry/internal/model"
	"staffregistry/internal/nic"
)

// ValidationError lists the JSON names of the fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Fields, ", ")
}

var (
	staffValidate *validator.Validate

	// Sri Lankan phone numbers: optional +94 or 0 prefix, then nine digits.
	lkPhonePattern = regexp.MustCompile(`^(\+94|0)?[0-9]{9}$`)
)

func init() {
	staffValidate = validator.New()
	staffValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = staffValidate.RegisterValidation("lkphone", func(fl validator.FieldLevel) bool {
		return lkPhonePattern.MatchString(fl.Field().String())
	})
	_ = staffValidate.RegisterValidation("designation", func(fl validator.FieldLevel) bool {
		return model.IsDesignation(fl.Field().String())
	})
}

func validateInput(in model.StaffInput) error {
	err := staffValidate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return &ValidationError{Fields: fields}
	}
	return err
}

// prepare turns validated input into a record: the NIC is stored canonical,
// gender and date of birth fall back to what the NIC encodes, and age and
// retirement date are computed.
func (s *staffService) prepare(in model.StaffInput) (*model.Staff, error) {
	in.AppointmentNumber = strings.TrimSpace(in.AppointmentNumber)
	in.FullName = strings.TrimSpace(in.FullName)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	info, err := nic.Derive(in.NICNumber)
	if err != nil {
		return nil, fmt.Errorf("nic_number: %w", err)
	}

	gender := in.Gender
	switch {
	case gender == "":
		gender = string(info.Sex)
	case gender != string(info.Sex):
		return nil, ErrGenderMismatch
	}

	var dob time.Time
	if in.DateOfBirth == "" {
		d, ok := info.BirthDate()
		if !ok {
			return nil, ErrBirthDateUnresolvable
		}
		dob = d
	} else {
		// format already checked by the datetime tag
		dob, _ = time.Parse(model.DateLayout, in.DateOfBirth)
		// only the year is compared; NIC day numbers can be one off from the calendar
		if dob.Year() != info.BirthYear {
			return nil, ErrBirthDateMismatch
		}
	}

	return &model.Staff{
		AppointmentNumber:      in.AppointmentNumber,
		FullName:               in.FullName,
		Gender:                 gender,
		DateOfBirth:            dob.Format(model.DateLayout),
		Age:                    ageAt(dob, s.opts.Now()),
		NICNumber:              info.Canonical,
		MaritalStatus:          in.MaritalStatus,
		AddressLine1:           in.AddressLine1,
		AddressLine2:           in.AddressLine2,
		AddressLine3:           in.AddressLine3,
		ContactNumber:          in.ContactNumber,
		Email:                  in.Email,
		Designation:            in.Designation,
		DateOfFirstAppointment: in.DateOfFirstAppointment,
		DateOfRetirement:       dob.AddDate(s.opts.RetirementAge, 0, 0).Format(model.DateLayout),
		IncrementDate:          in.IncrementDate,
		SalaryCode:             in.SalaryCode,
		BasicSalary:            in.BasicSalary,
		IncrementAmount:        in.IncrementAmount,
	}, nil
}

// ageAt returns completed years between dob and now, never negative.
func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

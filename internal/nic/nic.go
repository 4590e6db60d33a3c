// Package nic converts national identity card numbers between the legacy
// 9/10 character form (YY DDD SSS C [V|X]) and the canonical 12 digit form
// (YYYY DDD SSSS C), and derives birth year, day of year and sex from them.
// It has no state and no I/O; all functions are safe for concurrent use.
package nic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidFormat = errors.New("invalid NIC format")
	ErrInvalidYear   = errors.New("invalid year in NIC")
	ErrInvalidDay    = errors.New("invalid day in NIC")
	ErrInvalidLength = errors.New("invalid NIC length")
)

const (
	canonicalLen = 12
	legacyLen    = 10
	digitsLen    = 9

	// femaleDayOffset is added to the day of year for female holders.
	femaleDayOffset = 500
	// centuryCutoff: two digit years up to and including this value belong to the 2000s.
	centuryCutoff = 50
)

// Sex is derived from the day-of-year token.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// Info holds the attributes derived from a valid NIC.
type Info struct {
	BirthYear int    `json:"birth_year"`
	DayOfYear int    `json:"day_of_year"`
	Sex       Sex    `json:"sex"`
	Canonical string `json:"canonical"`
}

// BirthDate returns the calendar date of DayOfYear in BirthYear (UTC).
// It reports false when the day does not fall inside that year.
func (i Info) BirthDate() (time.Time, bool) {
	if i.DayOfYear < 1 {
		return time.Time{}, false
	}
	d := time.Date(i.BirthYear, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i.DayOfYear-1)
	if d.Year() != i.BirthYear {
		return time.Time{}, false
	}
	return d, true
}

// Normalize returns the canonical 12 digit form of raw.
// Spaces are removed and letters upper-cased before validation; already
// canonical input is returned unchanged.
func Normalize(raw string) (string, error) {
	cleaned := clean(raw)

	switch {
	case len(cleaned) == canonicalLen && allDigits(cleaned):
		return cleaned, nil
	case len(cleaned) == legacyLen:
		digits, marker := cleaned[:digitsLen], cleaned[digitsLen:]
		if !allDigits(digits) {
			return "", ErrInvalidFormat
		}
		if marker != "V" && marker != "X" {
			return "", ErrInvalidFormat
		}
		return expand(digits)
	case len(cleaned) == digitsLen && allDigits(cleaned):
		return expand(cleaned)
	}
	return "", ErrInvalidLength
}

// Derive normalizes raw and extracts birth year, day of year and sex.
func Derive(raw string) (Info, error) {
	canonical, err := Normalize(raw)
	if err != nil {
		return Info{}, err
	}
	if len(canonical) != canonicalLen {
		return Info{}, ErrInvalidLength
	}

	year, err := strconv.ParseUint(canonical[0:4], 10, 32)
	if err != nil {
		return Info{}, ErrInvalidYear
	}
	token, err := strconv.ParseUint(canonical[4:7], 10, 32)
	if err != nil {
		return Info{}, ErrInvalidDay
	}

	info := Info{
		BirthYear: int(year),
		DayOfYear: int(token),
		Sex:       SexMale,
		Canonical: canonical,
	}
	if token > femaleDayOffset {
		info.DayOfYear = int(token) - femaleDayOffset
		info.Sex = SexFemale
	}
	return info, nil
}

// Valid reports whether raw can be normalized and derived.
func Valid(raw string) bool {
	_, err := Derive(raw)
	return err == nil
}

// Format groups a legacy or canonical NIC for display:
// "YY DDD SSS CV" or "YYYY DDD SSSS C". Other values are returned without
// spaces. Letters are upper-cased as in Normalize.
func Format(raw string) string {
	cleaned := clean(raw)
	switch {
	case len(cleaned) == legacyLen && allDigits(cleaned[:digitsLen]):
		return cleaned[0:2] + " " + cleaned[2:5] + " " + cleaned[5:8] + " " + cleaned[8:]
	case len(cleaned) == canonicalLen && allDigits(cleaned):
		return cleaned[0:4] + " " + cleaned[4:7] + " " + cleaned[7:11] + " " + cleaned[11:]
	}
	return cleaned
}

// expand converts YY DDD SSS C into YYYY DDD 0SSS C.
func expand(digits string) (string, error) {
	if len(digits) != digitsLen {
		return "", ErrInvalidLength
	}

	yy, err := strconv.ParseUint(digits[0:2], 10, 32)
	if err != nil {
		return "", ErrInvalidYear
	}
	ddd, err := strconv.ParseUint(digits[2:5], 10, 32)
	if err != nil {
		return "", ErrInvalidDay
	}
	serial, check := digits[5:8], digits[8:9]

	if !validDayToken(ddd) {
		return "", ErrInvalidDay
	}

	year := 1900 + yy
	if yy <= centuryCutoff {
		year = 2000 + yy
	}

	return fmt.Sprintf("%d%03d0%s%s", year, ddd, serial, check), nil
}

func validDayToken(ddd uint64) bool {
	return (ddd >= 1 && ddd <= 366) || (ddd >= 501 && ddd <= 866)
}

func clean(raw string) string {
	return strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

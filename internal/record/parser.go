package record

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Date bounds. Month length and leap years are not checked.
const (
	MinYear = 2001
	MaxYear = 2099
)

// MaxHours is the exclusive upper bound for hours worked on one entry.
var MaxHours = decimal.RequireFromString("24.05")

// namePattern matches letters-only words joined by single spaces, hyphens or apostrophes
var namePattern = regexp.MustCompile(`^\p{L}+(?:[ '\-]\p{L}+)*$`)

// numericPattern matches input made only of digits
var numericPattern = regexp.MustCompile(`^\p{Nd}+$`)

var spacePattern = regexp.MustCompile(`\s+`)

// Date is a calendar date in MM/DD/YYYY form.
type Date struct {
	Month int
	Day   int
	Year  int
}

// String formats the date as zero-padded MM/DD/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Month, d.Day, d.Year)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// NormalizeEmployee trims, lowercases and title-cases an employee name.
// Valid: "john smith" (returns "John Smith"), "  ANNA  " (returns "Anna")
// Invalid: "", "12345", "r2d2"
func NormalizeEmployee(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("employee name cannot be empty")
	}
	if numericPattern.MatchString(trimmed) {
		return "", fmt.Errorf("employee name cannot be numeric: %s", trimmed)
	}

	collapsed := spacePattern.ReplaceAllString(trimmed, " ")
	name := cases.Title(language.English).String(strings.ToLower(collapsed))

	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("employee name must contain only letters, got %s", trimmed)
	}
	return name, nil
}

// ParseDate parses a MM/DD/YYYY date. Each of the three slash-separated
// tokens must be an integer in range.
// Valid inputs: "01/15/2021", "1/5/2021"
// Invalid inputs: "2021-01-15", "13/01/2021", "01/32/2021", "01/01/2000"
func ParseDate(raw string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format: expected MM/DD/YYYY, got %s", raw)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("invalid date format: expected MM/DD/YYYY, got %s", raw)
		}
		nums[i] = n
	}

	d := Date{Month: nums[0], Day: nums[1], Year: nums[2]}
	if d.Month < 1 || d.Month > 12 {
		return Date{}, fmt.Errorf("invalid date: month %d out of range 1-12", d.Month)
	}
	if d.Day < 1 || d.Day > 31 {
		return Date{}, fmt.Errorf("invalid date: day %d out of range 1-31", d.Day)
	}
	if d.Year < MinYear || d.Year > MaxYear {
		return Date{}, fmt.Errorf("invalid date: year %d out of range %d-%d", d.Year, MinYear, MaxYear)
	}
	return d, nil
}

// ParseHours parses a decimal number of hours in the open interval (0, 24.05).
func ParseHours(raw string) (decimal.Decimal, error) {
	hours, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid hours: expected a decimal number, got %s", raw)
	}
	if !hours.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid hours: must be greater than zero")
	}
	if hours.GreaterThanOrEqual(MaxHours) {
		return decimal.Zero, fmt.Errorf("invalid hours: must be less than %s", MaxHours)
	}
	return hours, nil
}

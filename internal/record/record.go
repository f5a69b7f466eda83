// Package record defines the validated employee-project hours record.
package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Messages shown by the shell when an entry is rejected.
const (
	RejectedMessage = "Data rejected. Employee and project names should only contain letters.\n" +
		"Dates should be entered as 01/01/2021 and be valid.\n" +
		"Hours worked should be entered as decimals."
	ProjectNotRecognizedMessage = "The project name was not in the list of projects.\n" +
		"Check for correct spelling\n" +
		"or add project to list of projects first."
)

var (
	// ErrInvalid matches every rejected record construction.
	ErrInvalid = errors.New("invalid entry")
	// ErrProjectNotRecognized matches constructions whose project is not registered.
	ErrProjectNotRecognized = errors.New("project not recognized")
)

// Record is one employee/project/date/hours fact.
// Seq is a display position recomputed on every load and save.
type Record struct {
	Seq      int
	Employee string
	Project  string
	Date     Date
	Hours    decimal.Decimal

	// Raw is set only for rows loaded from the file with cells that do not
	// validate. Those cells are written back as they were read.
	Raw *RawCells
}

// RawCells keeps the file text of a loaded row's invalid date and hours cells.
type RawCells struct {
	Date   string
	Hours  string
	Fields []Field
}

// Has reports whether f failed validation on load.
func (c *RawCells) Has(f Field) bool {
	return c != nil && hasField(c.Fields, f)
}

// ProjectLookup resolves a project name to its registered spelling.
type ProjectLookup interface {
	Canonical(name string) (string, bool)
}

// Field identifies a record field in a ValidationError.
type Field int

const (
	FieldEmployee Field = iota
	FieldProject
	FieldDate
	FieldHours
)

func (f Field) String() string {
	switch f {
	case FieldEmployee:
		return "employee"
	case FieldProject:
		return "project"
	case FieldDate:
		return "date"
	case FieldHours:
		return "hours"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields         []Field
	UnknownProject bool
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.String()
	}
	msg := "invalid entry: " + strings.Join(names, ", ")
	if e.UnknownProject {
		msg += " (project not recognized)"
	}
	return msg
}

// Is makes errors.Is match ErrInvalid always and ErrProjectNotRecognized
// when the project was the problem.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrInvalid:
		return true
	case ErrProjectNotRecognized:
		return e.UnknownProject
	}
	return false
}

// Message returns the generic rejection text.
func (e *ValidationError) Message() string {
	return RejectedMessage
}

// ProjectMessage returns project guidance, or "" when the project was fine.
func (e *ValidationError) ProjectMessage() string {
	if e.UnknownProject {
		return ProjectNotRecognizedMessage
	}
	return ""
}

// Has reports whether f is among the failed fields.
func (e *ValidationError) Has(f Field) bool {
	return hasField(e.Fields, f)
}

func hasField(fields []Field, f Field) bool {
	for _, got := range fields {
		if got == f {
			return true
		}
	}
	return false
}

// New validates raw shell input and builds a Record with Seq left at zero.
// The project is stored with its registered spelling.
// Either every field validates or a *ValidationError is returned.
func New(rawEmployee, rawProject, rawDate, rawHours string, projects ProjectLookup) (Record, error) {
	var verr ValidationError

	employee, err := NormalizeEmployee(rawEmployee)
	if err != nil {
		verr.Fields = append(verr.Fields, FieldEmployee)
	}

	var project string
	if projects != nil {
		project, _ = projects.Canonical(rawProject)
	}
	if project == "" {
		verr.Fields = append(verr.Fields, FieldProject)
		verr.UnknownProject = true
	}

	date, err := ParseDate(rawDate)
	if err != nil {
		verr.Fields = append(verr.Fields, FieldDate)
	}

	hours, err := ParseHours(rawHours)
	if err != nil {
		verr.Fields = append(verr.Fields, FieldHours)
	}

	if len(verr.Fields) > 0 {
		return Record{}, &verr
	}

	return Record{
		Employee: employee,
		Project:  project,
		Date:     date,
		Hours:    hours,
	}, nil
}

// FromFile builds a record from the cells of a stored row without rejecting it.
// Names are kept as written. A date or hours cell that does not validate is
// kept verbatim in Raw; hours that still parse as a number count toward totals.
func FromFile(employee, project, date, hours string) Record {
	r := Record{
		Employee: strings.TrimSpace(employee),
		Project:  strings.TrimSpace(project),
	}
	var raw RawCells

	if _, err := NormalizeEmployee(employee); err != nil {
		raw.Fields = append(raw.Fields, FieldEmployee)
	}
	if r.Project == "" {
		raw.Fields = append(raw.Fields, FieldProject)
	}

	if d, err := ParseDate(date); err == nil {
		r.Date = d
	} else {
		raw.Fields = append(raw.Fields, FieldDate)
		raw.Date = date
	}

	if h, err := ParseHours(hours); err == nil {
		r.Hours = h
	} else {
		raw.Fields = append(raw.Fields, FieldHours)
		raw.Hours = hours
		if v, err := decimal.NewFromString(strings.TrimSpace(hours)); err == nil {
			r.Hours = v
		}
	}

	if len(raw.Fields) > 0 {
		r.Raw = &raw
	}
	return r
}

// Irregular lists the fields that failed validation when the record was loaded.
func (r Record) Irregular() []Field {
	if r.Raw == nil {
		return nil
	}
	return r.Raw.Fields
}

// DateString formats the date the way it is written to file.
func (r Record) DateString() string {
	if r.Raw.Has(FieldDate) {
		return r.Raw.Date
	}
	return r.Date.String()
}

// HoursString formats hours the way they are written to file.
func (r Record) HoursString() string {
	if r.Raw.Has(FieldHours) {
		return r.Raw.Hours
	}
	return r.Hours.String()
}

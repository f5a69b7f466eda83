// Package storage reads and writes the employee hours file.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xolan/hours/internal/osutil"
	"github.com/xolan/hours/internal/project"
	"github.com/xolan/hours/internal/record"
	"github.com/xolan/hours/internal/store"
)

const (
	// AppName is the application name used for config directory
	AppName = "hours"
	// DataFile is the default name of the hours file
	DataFile = "EmployeeProjectHours.csv"
)

// Header is the fixed first row of the hours file.
var Header = []string{"EntryNum", "EmployeeName", "ProjectName", "FullDate", "HoursWorked"}

// ReadStatus describes the outcome of a successful Read.
type ReadStatus int

const (
	// StatusAbsent means the file did not exist; nothing was read or created.
	StatusAbsent ReadStatus = iota
	// StatusLoaded means the file was parsed, possibly with zero rows.
	StatusLoaded
)

func (s ReadStatus) String() string {
	if s == StatusLoaded {
		return "Data read from file."
	}
	return "File does not currently exist or is empty.\nA file will be created once you save your entries."
}

// WriteStatus describes the outcome of a successful Write.
type WriteStatus int

const (
	// StatusNothingToWrite means the store was empty and the file was left alone.
	StatusNothingToWrite WriteStatus = iota
	// StatusWritten means the file was replaced with the store contents.
	StatusWritten
)

func (s WriteStatus) String() string {
	if s == StatusWritten {
		return "Data written to file."
	}
	return "No data to write to file!"
}

// ParseWarning represents a row that was skipped or loaded with invalid cells
type ParseWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the row
	Error      string // What is wrong with the row
}

// ReadResult contains the loaded session state, the skipped rows, and the
// rows that were loaded with cells kept as written.
type ReadResult struct {
	Store     *store.Store
	Registry  *project.Registry
	Status    ReadStatus
	Warnings  []ParseWarning
	Irregular []ParseWarning
}

// Codec converts between the hours file and the in-memory store.
type Codec struct {
	// Backups is how many rotating backups to keep; 0 disables them.
	Backups int
	Logger  *zap.Logger
}

// NewCodec creates a Codec. A nil logger discards log output.
func NewCodec(backups int, logger *zap.Logger) *Codec {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Codec{Backups: backups, Logger: logger}
}

func (c *Codec) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// ResolvePath returns an absolute path for the hours file.
// An empty name selects DataFile in the working directory.
func ResolvePath(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = DataFile
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	wd, err := osutil.Provider.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, name), nil
}

// Read loads the hours file into a fresh store and registry.
// A missing file is not an error: empty state is returned with StatusAbsent.
// Header rows are dropped wherever they appear. Rows with the wrong number of
// columns are skipped and reported as warnings; rows whose cells do not
// validate are loaded as written and reported in Irregular.
// Records are sorted by project and renumbered from 1.
func (c *Codec) Read(path string) (ReadResult, error) {
	result := ReadResult{
		Store:     store.New(),
		Registry:  project.NewRegistry(),
		Status:    StatusAbsent,
		Warnings:  []ParseWarning{},
		Irregular: []ParseWarning{},
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.logger().Debug("hours file absent", zap.String("path", path))
			return result, nil
		}
		return result, err
	}
	defer func() { _ = file.Close() }()

	parsed, err := parseRows(file)
	if err != nil {
		return result, err
	}

	for _, r := range parsed.records {
		result.Registry.Add(r.Project)
	}
	result.Store = store.New(parsed.records...)
	result.Store.Renumber()
	result.Warnings = parsed.warnings
	result.Irregular = parsed.irregular
	result.Status = StatusLoaded

	for _, w := range parsed.warnings {
		c.logger().Warn("skipped row",
			zap.Int("line", w.LineNumber),
			zap.String("content", w.Content),
			zap.String("error", w.Error))
	}
	for _, w := range parsed.irregular {
		c.logger().Warn("row kept as written",
			zap.Int("line", w.LineNumber),
			zap.String("content", w.Content),
			zap.String("invalid", w.Error))
	}
	c.logger().Debug("hours file read",
		zap.String("path", path),
		zap.Int("records", result.Store.Len()),
		zap.Int("projects", result.Registry.Len()))

	return result, nil
}

// Write renumbers s and replaces the file with the header and one row per
// record in project order. An empty store performs no I/O.
// The new content goes to a temporary file that is renamed over the target,
// after the previous file has been copied to a rotating backup.
func (c *Codec) Write(path string, s *store.Store) (WriteStatus, error) {
	if s == nil || s.IsEmpty() {
		return StatusNothingToWrite, nil
	}

	s.Renumber()

	if c.Backups > 0 {
		if err := CreateBackup(path, c.Backups); err != nil {
			return StatusNothingToWrite, fmt.Errorf("failed to back up %s: %w", path, err)
		}
	}

	tmpFile := path + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return StatusNothingToWrite, err
	}

	if err := writeRecordsToTempFile(file, tmpFile, s.Records()); err != nil {
		return StatusNothingToWrite, err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return StatusNothingToWrite, err
	}

	c.logger().Debug("hours file written", zap.String("path", path), zap.Int("records", s.Len()))
	return StatusWritten, nil
}

// Row formats a record as a file row.
func Row(r record.Record) []string {
	return []string{
		strconv.Itoa(r.Seq),
		r.Employee,
		r.Project,
		r.DateString(),
		r.HoursString(),
	}
}

func writeRecordsToTempFile(file *os.File, tmpFile string, records []record.Record) error {
	writer := csv.NewWriter(file)
	if err := writer.Write(Header); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}
	for _, r := range records {
		if err := writer.Write(Row(r)); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}
	return nil
}

type parseResult struct {
	records    []record.Record
	warnings   []ParseWarning
	irregular  []ParseWarning
	headerRows int
}

// parseRows reads every row, skipping header rows and collecting warnings
// for rows that do not form a record.
func parseRows(r io.Reader) (parseResult, error) {
	var result parseResult

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				result.warnings = append(result.warnings, ParseWarning{
					LineNumber: perr.Line,
					Content:    strings.Join(row, ","),
					Error:      perr.Err.Error(),
				})
				continue
			}
			return result, err
		}

		if isHeader(row) {
			result.headerRows++
			continue
		}

		rec, err := parseRecord(row)
		if err != nil {
			line, _ := reader.FieldPos(0)
			result.warnings = append(result.warnings, ParseWarning{
				LineNumber: line,
				Content:    strings.Join(row, ","),
				Error:      err.Error(),
			})
			continue
		}
		if fields := rec.Irregular(); len(fields) > 0 {
			line, _ := reader.FieldPos(0)
			result.irregular = append(result.irregular, ParseWarning{
				LineNumber: line,
				Content:    strings.Join(row, ","),
				Error:      "invalid " + joinFields(fields),
			})
		}
		result.records = append(result.records, rec)
	}

	return result, nil
}

func isHeader(row []string) bool {
	if len(row) != len(Header) {
		return false
	}
	for i, h := range Header {
		if strings.TrimSpace(row[i]) != h {
			return false
		}
	}
	return true
}

// parseRecord builds a record from a data row. Only the column count is
// enforced: the entry number is discarded because every load renumbers, and
// cells that do not validate are kept as written.
func parseRecord(row []string) (record.Record, error) {
	if len(row) != len(Header) {
		return record.Record{}, fmt.Errorf("expected %d columns, got %d", len(Header), len(row))
	}
	return record.FromFile(row[1], row[2], row[3], row[4]), nil
}

func joinFields(fields []record.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

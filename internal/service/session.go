// Package service provides the business logic layer for the hours application.
// A Session owns the records and projects of one interactive session and
// exposes the operations the CLI and TUI frontends call.
package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xolan/hours/internal/project"
	"github.com/xolan/hours/internal/record"
	"github.com/xolan/hours/internal/storage"
	"github.com/xolan/hours/internal/store"
)

// Status messages returned to the shell
const (
	MsgEntryAdded       = "New entry was added to list."
	MsgEntryRemoved     = "Entry was removed."
	MsgEntryNotFound    = "Entry was not in list."
	MsgNoEntries        = "There are no entries to remove!"
	MsgProjectAdded     = "New project was added to list of projects"
	MsgProjectPresent   = "Project was already in project list."
	MsgProjectRejected  = "Project name cannot be empty."
	MsgEmptyProjectList = "There are no projects in the list.\nBefore adding new entries, add projects first."
)

// LoadResult reports the outcome of loading the hours file
type LoadResult struct {
	Status    storage.ReadStatus
	Message   string
	Entries   int
	Projects  int
	Warnings  []storage.ParseWarning
	Irregular []storage.ParseWarning // rows loaded with invalid cells kept as written
}

// SaveResult reports the outcome of saving the hours file
type SaveResult struct {
	Status  storage.WriteStatus
	Message string
	Entries int
}

// AddEntryResult reports the outcome of TryAddEntry
type AddEntryResult struct {
	Record         record.Record
	Message        string
	ProjectMessage string // set when the project was not recognized
}

// RemoveResult reports the outcome of RemoveEntry
type RemoveResult struct {
	Record  record.Record
	Message string
}

// ProjectResult reports the outcome of AddProject
type ProjectResult struct {
	Result  project.AddResult
	Name    string
	Message string
}

// Session holds the in-memory records and projects for one hours file.
type Session struct {
	path     string
	codec    *storage.Codec
	logger   *zap.Logger
	store    *store.Store
	registry *project.Registry
	dirty    bool
}

// NewSession creates an empty session bound to the hours file at path.
// Call Load to read the file.
func NewSession(path string, codec *storage.Codec, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if codec == nil {
		codec = storage.NewCodec(0, logger)
	}
	return &Session{
		path:     path,
		codec:    codec,
		logger:   logger,
		store:    store.New(),
		registry: project.NewRegistry(),
	}
}

// Path returns the hours file this session loads from and saves to
func (s *Session) Path() string {
	return s.path
}

// Dirty reports whether entries changed since the last load or save
func (s *Session) Dirty() bool {
	return s.dirty
}

// Load replaces the session state with the contents of the session's file
func (s *Session) Load() (LoadResult, error) {
	return s.LoadFromPath(s.path)
}

// LoadFromPath replaces the session state with the contents of path and
// binds the session to it. A missing file yields empty state.
func (s *Session) LoadFromPath(path string) (LoadResult, error) {
	result, err := s.codec.Read(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s.path = path
	s.store = result.Store
	s.registry = result.Registry
	s.dirty = false

	s.logger.Debug("session loaded",
		zap.String("path", path),
		zap.Stringer("status", result.Status),
		zap.Int("entries", s.store.Len()))

	return LoadResult{
		Status:    result.Status,
		Message:   result.Status.String(),
		Entries:   s.store.Len(),
		Projects:  s.registry.Len(),
		Warnings:  result.Warnings,
		Irregular: result.Irregular,
	}, nil
}

// Save writes the session's entries to its file
func (s *Session) Save() (SaveResult, error) {
	return s.SaveToPath(s.path)
}

// SaveToPath writes the entries to path, renumbering them in project order.
// Nothing is written when there are no entries.
func (s *Session) SaveToPath(path string) (SaveResult, error) {
	status, err := s.codec.Write(path, s.store)
	if err != nil {
		return SaveResult{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if status == storage.StatusWritten {
		s.path = path
		s.dirty = false
	}

	s.logger.Debug("session saved",
		zap.String("path", path),
		zap.Stringer("status", status),
		zap.Int("entries", s.store.Len()))

	return SaveResult{
		Status:  status,
		Message: status.String(),
		Entries: s.store.Len(),
	}, nil
}

// Entries returns the entries sorted by project
func (s *Session) Entries() []record.Record {
	return s.store.SortedByProject()
}

// Projects returns the registered projects sorted alphabetically
func (s *Session) Projects() []string {
	return s.registry.All()
}

// HasProjects reports whether any project is registered
func (s *Session) HasProjects() bool {
	return s.registry.Len() > 0
}

// TotalHours sums the hours of all entries
func (s *Session) TotalHours() decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.store.Records() {
		total = total.Add(r.Hours)
	}
	return total
}

// AddProject registers a project name for use by entries
func (s *Session) AddProject(name string) ProjectResult {
	res := s.registry.Add(name)
	result := ProjectResult{Result: res, Name: strings.TrimSpace(name)}

	switch res {
	case project.Added:
		result.Message = MsgProjectAdded
	case project.AlreadyPresent:
		result.Message = MsgProjectPresent
	default:
		result.Message = MsgProjectRejected
	}

	s.logger.Debug("add project", zap.String("name", result.Name), zap.Stringer("result", res))
	return result
}

// TryAddEntry validates raw input and appends the entry.
// On failure the returned error wraps a *record.ValidationError and the
// result carries the messages to show.
func (s *Session) TryAddEntry(employee, projectName, date, hours string) (AddEntryResult, error) {
	r, err := record.New(employee, projectName, date, hours, s.registry)
	if err != nil {
		result := AddEntryResult{Message: record.RejectedMessage}
		var verr *record.ValidationError
		if errors.As(err, &verr) {
			result.Message = verr.Message()
			result.ProjectMessage = verr.ProjectMessage()
		}
		s.logger.Debug("entry rejected", zap.Error(err))
		return result, err
	}

	r = s.store.Add(r)
	s.dirty = true

	s.logger.Debug("entry added", zap.Int("seq", r.Seq), zap.String("project", r.Project))
	return AddEntryResult{Record: r, Message: MsgEntryAdded}, nil
}

// FindEntry looks up an entry by its displayed sequence number
func (s *Session) FindEntry(seqText string) (record.Record, error) {
	if s.store.IsEmpty() {
		return record.Record{}, store.ErrNotFound
	}
	seq, ok := parseSeq(seqText)
	if !ok {
		return record.Record{}, store.ErrNotFound
	}
	r, found := s.store.Find(seq)
	if !found {
		return record.Record{}, store.ErrNotFound
	}
	return r, nil
}

// RemoveEntry removes the first entry with the given sequence number.
// Returns store.ErrNotFound with the store unchanged when nothing matches.
func (s *Session) RemoveEntry(seqText string) (RemoveResult, error) {
	if s.store.IsEmpty() {
		return RemoveResult{Message: MsgNoEntries}, store.ErrNotFound
	}

	seq, ok := parseSeq(seqText)
	if !ok {
		return RemoveResult{Message: MsgEntryNotFound}, store.ErrNotFound
	}

	removed, err := s.store.RemoveBySeq(seq)
	if err != nil {
		return RemoveResult{Message: MsgEntryNotFound}, err
	}
	s.dirty = true

	s.logger.Debug("entry removed", zap.Int("seq", removed.Seq))
	return RemoveResult{Record: removed, Message: MsgEntryRemoved}, nil
}

// parseSeq parses a displayed sequence number
func parseSeq(text string) (int, bool) {
	seq, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || seq < 1 {
		return 0, false
	}
	return seq, true
}

package core

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ExportFilePrefix prefixes generated export filenames.
const ExportFilePrefix = "noty_export_"

// Service handles the business logic for notes.
// Every operation is Load -> mutate -> Save; nothing is cached between calls.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    Clock

	mu          sync.RWMutex
	lastOp      string
	lastOpCount int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source used for timestamps and export names.
func WithClock(now Clock) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithServiceLogger sets the logger used for debug tracing.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextID returns the ID a new note appended to notes would receive.
func NextID(notes []Note) int {
	next := 1
	for _, n := range notes {
		if n.ID >= next {
			next = n.ID + 1
		}
	}
	return next
}

// ParseID converts a user-supplied ID argument.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidIDError{Input: raw}
	}
	return id, nil
}

// Add appends a note with the next free ID and the current time.
// Empty text is accepted.
func (s *Service) Add(ctx context.Context, text string) (Note, error) {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return Note{}, err
	}

	note := Note{
		ID:        NextID(notes),
		Text:      text,
		Timestamp: s.now().Format(TimestampLayout),
	}
	notes = append(notes, note)

	if err := s.repo.Save(ctx, notes); err != nil {
		return Note{}, err
	}

	s.logger.Debug("note added", "id", note.ID, "total", len(notes))
	s.record("add", 1)
	return note, nil
}

// List returns every note in storage order.
func (s *Service) List(ctx context.Context) ([]Note, error) {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.record("list", len(notes))
	return notes, nil
}

// Remove parses rawID and removes the first note carrying that ID.
func (s *Service) Remove(ctx context.Context, rawID string) (Note, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return Note{}, err
	}
	return s.RemoveByID(ctx, id)
}

// RemoveByID removes the first note whose ID equals id.
// When no note matches, the store is left untouched.
func (s *Service) RemoveByID(ctx context.Context, id int) (Note, error) {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return Note{}, err
	}

	idx := -1
	for i, n := range notes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Note{}, &NotFoundError{ID: id}
	}

	removed := notes[idx]
	notes = append(notes[:idx], notes[idx+1:]...)

	if err := s.repo.Save(ctx, notes); err != nil {
		return Note{}, err
	}

	s.logger.Debug("note removed", "id", id, "total", len(notes))
	s.record("remove", 1)
	return removed, nil
}

// FixIDs renumbers every note to its 1-based position and returns the count.
// An empty store is not written.
func (s *Service) FixIDs(ctx context.Context) (int, error) {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}
	if len(notes) == 0 {
		return 0, nil
	}

	for i := range notes {
		notes[i].ID = i + 1
	}

	if err := s.repo.Save(ctx, notes); err != nil {
		return 0, err
	}

	s.record("fix", len(notes))
	return len(notes), nil
}

// ExportResult describes a finished export.
type ExportResult struct {
	Path  string
	Count int
}

// DefaultExportName returns the generated export filename for t.
func DefaultExportName(t time.Time) string {
	return ExportFilePrefix + t.Format("20060102_150405") + ".txt"
}

// Export writes a human-readable report of every note to path.
// An empty path selects DefaultExportName in the working directory.
// With no notes nothing is written and Count is zero.
func (s *Service) Export(ctx context.Context, path string) (ExportResult, error) {
	exp, ok := s.repo.(Exporter)
	if !ok {
		return ExportResult{}, errors.New("repository does not support export")
	}

	notes, err := s.repo.Load(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	if len(notes) == 0 {
		return ExportResult{}, nil
	}

	now := s.now()
	if path == "" {
		path = DefaultExportName(now)
	}

	if err := exp.WriteReport(ctx, path, FormatReport(notes, now)); err != nil {
		return ExportResult{}, err
	}

	s.logger.Debug("notes exported", "path", path, "count", len(notes))
	s.record("export", len(notes))
	return ExportResult{Path: path, Count: len(notes)}, nil
}

// ConfirmFunc asks whether total notes may be deleted.
type ConfirmFunc func(total int) (bool, error)

// ClearResult describes the outcome of Clear.
type ClearResult struct {
	Total   int
	Cleared bool
}

// Clear deletes every note once confirm agrees.
// With an empty store confirm is never called.
func (s *Service) Clear(ctx context.Context, confirm ConfirmFunc) (ClearResult, error) {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return ClearResult{}, err
	}
	if len(notes) == 0 {
		return ClearResult{}, nil
	}

	res := ClearResult{Total: len(notes)}
	ok, err := confirm(len(notes))
	if err != nil {
		return res, err
	}
	if !ok {
		return res, nil
	}

	if err := s.repo.Save(ctx, []Note{}); err != nil {
		return res, err
	}

	res.Cleared = true
	s.record("clear", len(notes))
	return res, nil
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}

func (s *Service) record(op string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOp = op
	s.lastOpCount = count
}

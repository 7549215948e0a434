package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/markwaveai/markwave-hr/internal/domain/holiday"
)

// CalendarService keeps an in-memory snapshot of the holiday table.
// Readers see a consistent snapshot; Refresh swaps it wholesale so a
// lookup never observes a half-loaded calendar.
type CalendarService struct {
	repo holiday.Repository

	mu     sync.RWMutex
	byDate map[string]string
	all    []holiday.Holiday
}

func NewCalendarService(repo holiday.Repository) *CalendarService {
	return &CalendarService{
		repo:   repo,
		byDate: make(map[string]string),
	}
}

// Refresh reloads the snapshot from the repository. Wired to the
// background poller, which guarantees refreshes never overlap.
func (s *CalendarService) Refresh(ctx context.Context) error {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}

	byDate := make(map[string]string, len(entries))
	for _, h := range entries {
		byDate[h.Date.Format("2006-01-02")] = h.Name
	}

	s.mu.Lock()
	s.byDate = byDate
	s.all = entries
	s.mu.Unlock()

	slog.Debug("Holiday calendar refreshed", "entries", len(entries))
	return nil
}

// NameOn looks up a holiday by calendar date.
func (s *CalendarService) NameOn(date time.Time) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.byDate[date.Format("2006-01-02")]
	return name, ok
}

// All returns the current snapshot's entries.
func (s *CalendarService) All() []holiday.Holiday {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.all
}

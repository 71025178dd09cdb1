package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
)

const maxLogEntries = 500

// LogService keeps run events in memory. The process serves a single computed
// snapshot, so events only need to survive for its lifetime.
type LogService struct {
	mu      sync.Mutex
	entries []models.RunEvent
}

func NewLogService() (*LogService, error) {
	return &LogService{}, nil
}

func (s *LogService) CreateLog(ctx context.Context, action string, outcome string, message string) error {
	if s == nil {
		return errors.New("log service is nil")
	}
	if action == "" {
		return errors.New("action is empty")
	}
	if outcome == "" {
		return errors.New("outcome is empty")
	}
	_ = ctx

	entry := models.RunEvent{
		Datetime: time.Now().UTC(),
		Action:   action,
		Outcome:  outcome,
		Message:  message,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if len(s.entries) > maxLogEntries {
		s.entries = s.entries[len(s.entries)-maxLogEntries:]
	}

	return nil
}

func (s *LogService) GetLogs(ctx context.Context, limit int) ([]models.RunEvent, error) {
	if s == nil {
		return nil, errors.New("log service is nil")
	}
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	count := limit
	if count > len(s.entries) {
		count = len(s.entries)
	}

	// Newest first.
	logs := make([]models.RunEvent, 0, count)
	for i := len(s.entries) - 1; i >= len(s.entries)-count; i-- {
		logs = append(logs, s.entries[i])
	}

	return logs, nil
}

func (s *LogService) TruncateLogs(ctx context.Context) (int, error) {
	if s == nil {
		return 0, errors.New("log service is nil")
	}
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.entries)
	s.entries = nil

	return count, nil
}

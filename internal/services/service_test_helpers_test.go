package services

import (
	"context"
	"testing"
	"time"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
)

type loggedEntry struct {
	action  string
	outcome string
	message string
}

type stubLogWriter struct {
	entries []loggedEntry
}

func (s *stubLogWriter) CreateLog(ctx context.Context, action string, outcome string, message string) error {
	s.entries = append(s.entries, loggedEntry{
		action:  action,
		outcome: outcome,
		message: message,
	})
	return nil
}

func (s *stubLogWriter) hasOutcome(outcome string) bool {
	for _, entry := range s.entries {
		if entry.outcome == outcome {
			return true
		}
	}
	return false
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}

	return parsed
}

func generationReading(t *testing.T, start string, fuelType string, generation float64) models.GenerationReading {
	t.Helper()

	startTime := mustParseTime(t, start)
	return models.GenerationReading{
		Dataset:     "FUELINST",
		PublishTime: startTime.Add(5 * time.Minute),
		StartTime:   startTime,
		FuelType:    fuelType,
		Generation:  generation,
	}
}

func demandRecord(t *testing.T, start string, publish string, demand float64) models.DemandForecastRecord {
	t.Helper()

	return models.DemandForecastRecord{
		Dataset:     "TSDF",
		PublishTime: mustParseTime(t, publish),
		StartTime:   mustParseTime(t, start),
		Boundary:    "N",
		Demand:      demand,
	}
}

func newTestTransformService(t *testing.T) *TransformService {
	t.Helper()

	location, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	service, err := NewTransformService(DefaultCategoryTable(), DefaultEmissionFactors(), location)
	if err != nil {
		t.Fatalf("NewTransformService: %v", err)
	}

	return service
}

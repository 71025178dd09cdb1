package services

import (
	"context"
	"io"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
)

type GenerationProvider interface {
	Fetch(ctx context.Context) ([]models.GenerationReading, error)
}

type DemandProvider interface {
	Fetch(ctx context.Context) ([]models.DemandForecastRecord, error)
}

type GenerationFetcher interface {
	FetchGeneration(ctx context.Context, url string) ([]models.GenerationReading, error)
}

type DemandFetcher interface {
	FetchDemand(ctx context.Context, url string) ([]models.DemandForecastRecord, error)
}

type GenerationFallbackLoader interface {
	LoadGeneration(path string) ([]models.GenerationReading, error)
}

type DemandFallbackLoader interface {
	LoadDemand(path string) ([]models.DemandForecastRecord, error)
}

type SnapshotTransformer interface {
	Transform(readings []models.GenerationReading, records []models.DemandForecastRecord) Snapshot
}

type LogWriter interface {
	CreateLog(ctx context.Context, action string, outcome string, message string) error
}

type PageRenderer interface {
	RenderPage(snapshot Snapshot, w io.Writer) error
}

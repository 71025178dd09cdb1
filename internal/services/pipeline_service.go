package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

type PipelineService struct {
	generationService GenerationProvider
	demandService     DemandProvider
	transformService  SnapshotTransformer
	logService        LogWriter
}

func NewPipelineService(generationService GenerationProvider, demandService DemandProvider, transformService SnapshotTransformer, logService LogWriter) (*PipelineService, error) {
	if generationService == nil {
		return nil, errors.New("generation service is nil")
	}
	if demandService == nil {
		return nil, errors.New("demand service is nil")
	}
	if transformService == nil {
		return nil, errors.New("transform service is nil")
	}
	if logService == nil {
		return nil, errors.New("log service is nil")
	}

	return &PipelineService{
		generationService: generationService,
		demandService:     demandService,
		transformService:  transformService,
		logService:        logService,
	}, nil
}

// Run executes one fetch-transform cycle. Retrieval and empty-dataset
// failures abort before any transformation; everything after that is a valid
// snapshot, possibly with warnings.
func (s *PipelineService) Run(ctx context.Context) (Snapshot, error) {
	if s == nil {
		return Snapshot{}, errors.New("pipeline service is nil")
	}
	if s.generationService == nil {
		return Snapshot{}, errors.New("generation service is nil")
	}
	if s.demandService == nil {
		return Snapshot{}, errors.New("demand service is nil")
	}
	if s.transformService == nil {
		return Snapshot{}, errors.New("transform service is nil")
	}
	if s.logService == nil {
		return Snapshot{}, errors.New("log service is nil")
	}

	readings, err := s.generationService.Fetch(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch generation: %w", err)
	}

	records, err := s.demandService.Fetch(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch demand: %w", err)
	}

	log.Printf("retrieved %d generation readings and %d demand records", len(readings), len(records))

	snapshot := s.transformService.Transform(readings, records)

	if len(snapshot.UnknownFuelTypes) > 0 {
		warnMsg := fmt.Sprintf("unrecognized fuel types mapped to %s: %s",
			"Coal/Oil/Other", strings.Join(snapshot.UnknownFuelTypes, ", "))
		_ = s.logService.CreateLog(ctx, LogActionDataTransform, LogOutcomeWarn, warnMsg)
		log.Printf("warning: %s", warnMsg)
	}

	if len(snapshot.Balance) == 0 {
		warnMsg := "no overlapping half-hour windows between generation and demand forecast"
		_ = s.logService.CreateLog(ctx, LogActionDataTransform, LogOutcomeWarn, warnMsg)
		log.Printf("warning: %s; supply-versus-demand analysis will be empty", warnMsg)
	} else {
		sum := 0.0
		for _, point := range snapshot.Balance {
			sum += point.SupplyMinusDemand
		}
		log.Printf("average supply minus forecast demand for overlap: %.1f MW", sum/float64(len(snapshot.Balance)))
	}

	successMsg := fmt.Sprintf("intervals=%d balance_windows=%d", len(snapshot.Wide), len(snapshot.Balance))
	_ = s.logService.CreateLog(ctx, LogActionDataTransform, LogOutcomeSuccess, successMsg)

	return snapshot, nil
}

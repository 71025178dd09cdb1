package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
)

const generationDataset = "FUELINST"

type GenerationService struct {
	fetcher      GenerationFetcher
	fallback     GenerationFallbackLoader
	logService   LogWriter
	url          string
	fallbackPath string
}

func NewGenerationService(fetcher GenerationFetcher, fallback GenerationFallbackLoader, logService LogWriter, url string, fallbackPath string) (*GenerationService, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher is nil")
	}
	if fallback == nil {
		return nil, errors.New("fallback loader is nil")
	}
	if logService == nil {
		return nil, errors.New("log service is nil")
	}
	if url == "" {
		return nil, errors.New("url is empty")
	}

	return &GenerationService{
		fetcher:      fetcher,
		fallback:     fallback,
		logService:   logService,
		url:          url,
		fallbackPath: fallbackPath,
	}, nil
}

func (s *GenerationService) Fetch(ctx context.Context) ([]models.GenerationReading, error) {
	if s == nil {
		return nil, errors.New("generation service is nil")
	}
	if s.fetcher == nil {
		return nil, errors.New("fetcher is nil")
	}
	if s.fallback == nil {
		return nil, errors.New("fallback loader is nil")
	}
	if s.logService == nil {
		return nil, errors.New("log service is nil")
	}

	source := "api"
	readings, err := s.fetcher.FetchGeneration(ctx, s.url)
	if err != nil {
		warnMsg := fmt.Sprintf("dataset=%s fetch failed, trying fallback: %v", generationDataset, err)
		_ = s.logService.CreateLog(ctx, LogActionDataRetrieval, LogOutcomeWarn, warnMsg)

		source = "fallback"
		readings, err = s.fallback.LoadGeneration(s.fallbackPath)
		if err != nil {
			failMsg := fmt.Sprintf("dataset=%s fallback failed: %v", generationDataset, err)
			_ = s.logService.CreateLog(ctx, LogActionDataRetrieval, LogOutcomeFail, failMsg)
			return nil, &RetrievalError{Dataset: generationDataset, Err: err}
		}
	}

	if len(readings) == 0 {
		failMsg := fmt.Sprintf("dataset=%s source=%s returned no records", generationDataset, source)
		_ = s.logService.CreateLog(ctx, LogActionDataRetrieval, LogOutcomeFail, failMsg)
		return nil, fmt.Errorf("dataset %s: %w", generationDataset, ErrEmptyDataset)
	}

	successMsg := fmt.Sprintf("dataset=%s source=%s rows=%d", generationDataset, source, len(readings))
	_ = s.logService.CreateLog(ctx, LogActionDataRetrieval, LogOutcomeSuccess, successMsg)

	return readings, nil
}

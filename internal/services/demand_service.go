package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
)

const demandDataset = "TSDF"

type DemandService struct {
	fetcher      DemandFetcher
	fallback     DemandFallbackLoader
	logService   LogWriter
	url          string
	fallbackPath string
}

func NewDemandService(fetcher DemandFetcher, fallback DemandFallbackLoader, logService LogWriter, url string, fallbackPath string) (*DemandService, error) {
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

	return &DemandService{
		fetcher:      fetcher,
		fallback:     fallback,
		logService:   logService,
		url:          url,
		fallbackPath: fallbackPath,
	}, nil
}

func (s *DemandService) Fetch(ctx context.Context) ([]models.DemandForecastRecord, error) {
	if s == nil {
		return nil, errors.New("demand service is nil")
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
	records, err := s.fetcher.FetchDemand(ctx, s.url)
	if err != nil {
		warnMsg := fmt.Sprintf("dataset=%s fetch failed, trying fallback: %v", demandDataset, err)
		_ = s.logService.CreateLog(ctx, LogActionDataRetrieval, LogOutcomeWarn, warnMsg)

		source = "fallback"
		records, err = s.fallback.LoadDemand(s.fallbackPath)
		if err != nil {
			failMsg := fmt.Sprintf("dataset=%s fallback failed: %v", demandDataset, err)
			_ = s.logService.CreateLog(ctx, LogActionDataRetrieval, LogOutcomeFail, failMsg)
			return nil, &RetrievalError{Dataset: demandDataset, Err: err}
		}
	}

	if len(records) == 0 {
		failMsg := fmt.Sprintf("dataset=%s source=%s returned no records", demandDataset, source)
		_ = s.logService.CreateLog(ctx, LogActionDataRetrieval, LogOutcomeFail, failMsg)
		return nil, fmt.Errorf("dataset %s: %w", demandDataset, ErrEmptyDataset)
	}

	successMsg := fmt.Sprintf("dataset=%s source=%s rows=%d", demandDataset, source, len(records))
	_ = s.logService.CreateLog(ctx, LogActionDataRetrieval, LogOutcomeSuccess, successMsg)

	return records, nil
}

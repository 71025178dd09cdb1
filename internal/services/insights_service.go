package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
)

// InsightsService talks to the Elexon Insights dataset endpoints. Responses
// wrap the records in a `data` array.
type InsightsService struct {
	client *http.Client
}

func NewInsightsService(client *http.Client) (*InsightsService, error) {
	if client == nil {
		client = http.DefaultClient
	}

	return &InsightsService{client: client}, nil
}

func (s *InsightsService) FetchGeneration(ctx context.Context, url string) ([]models.GenerationReading, error) {
	if s == nil {
		return nil, errors.New("insights service is nil")
	}

	var envelope struct {
		Data []models.GenerationReading `json:"data"`
	}
	if err := s.get(ctx, url, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

func (s *InsightsService) FetchDemand(ctx context.Context, url string) ([]models.DemandForecastRecord, error) {
	if s == nil {
		return nil, errors.New("insights service is nil")
	}

	var envelope struct {
		Data []models.DemandForecastRecord `json:"data"`
	}
	if err := s.get(ctx, url, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

func (s *InsightsService) get(ctx context.Context, url string, out any) error {
	if s.client == nil {
		return errors.New("http client is nil")
	}
	if url == "" {
		return errors.New("url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; PowerMarketDashboard/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
	"github.com/jn607/UK-power-market-dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

func testSnapshot(t *testing.T) services.Snapshot {
	t.Helper()

	interval := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	intensity := 219.6

	return services.Snapshot{
		Wide: []models.IntervalRow{
			{
				LocalTime:       interval,
				Mix:             models.CategoryMix{Gas: 100, Wind: 50},
				TotalGeneration: 150,
				CarbonIntensity: &intensity,
			},
		},
		Long: []models.LongPoint{
			{LocalTime: interval, Category: models.CategoryGas, Generation: 100},
			{LocalTime: interval, Category: models.CategoryWind, Generation: 50},
			{LocalTime: interval, Category: models.CategoryNuclear, Generation: 0},
		},
		Balance: []models.BalancePoint{
			{Window: interval, TotalGeneration: 150, DemandForecast: 140, SupplyMinusDemand: 10},
		},
	}
}

func newSeriesRouter(t *testing.T, snapshot services.Snapshot) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	controller, err := NewSeriesController(snapshot)
	if err != nil {
		t.Fatalf("NewSeriesController: %v", err)
	}

	router := gin.New()
	if err := controller.RegisterRoutes(router); err != nil {
		t.Fatalf("register series routes: %v", err)
	}

	return router
}

func TestSeriesControllerGetGeneration(t *testing.T) {
	router := newSeriesRouter(t, testSnapshot(t))

	req := httptest.NewRequest(http.MethodGet, "/series/generation", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var points []models.LongPoint
	if err := json.NewDecoder(recorder.Body).Decode(&points); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("points = %d, want 3", len(points))
	}
}

func TestSeriesControllerGenerationCategoryFilter(t *testing.T) {
	router := newSeriesRouter(t, testSnapshot(t))

	req := httptest.NewRequest(http.MethodGet, "/series/generation?category=Gas", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var points []models.LongPoint
	if err := json.NewDecoder(recorder.Body).Decode(&points); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("points = %d, want 1", len(points))
	}
	if points[0].Category != models.CategoryGas {
		t.Fatalf("category = %q, want %q", points[0].Category, models.CategoryGas)
	}
}

func TestSeriesControllerGenerationInvalidCategory(t *testing.T) {
	router := newSeriesRouter(t, testSnapshot(t))

	req := httptest.NewRequest(http.MethodGet, "/series/generation?category=Plutonium", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "invalid category" {
		t.Fatalf("error = %q, want %q", resp.Error, "invalid category")
	}
}

func TestSeriesControllerGetIntensity(t *testing.T) {
	router := newSeriesRouter(t, testSnapshot(t))

	req := httptest.NewRequest(http.MethodGet, "/series/intensity", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var rows []models.IntervalRow
	if err := json.NewDecoder(recorder.Body).Decode(&rows); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].CarbonIntensity == nil {
		t.Fatalf("CarbonIntensity is nil")
	}
}

func TestSeriesControllerGetBalanceEmpty(t *testing.T) {
	snapshot := testSnapshot(t)
	snapshot.Balance = nil
	router := newSeriesRouter(t, snapshot)

	req := httptest.NewRequest(http.MethodGet, "/series/balance", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if recorder.Body.String() != "[]" {
		t.Fatalf("body = %q, want %q", recorder.Body.String(), "[]")
	}
}

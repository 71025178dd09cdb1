package services

import (
	"errors"
	"sort"
	"time"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
)

const halfHour = 30 * time.Minute

// Snapshot holds the three derived tables for one fetch-transform-render
// cycle. Values are built once and never mutated afterwards.
type Snapshot struct {
	Wide             []models.IntervalRow
	Long             []models.LongPoint
	Balance          []models.BalancePoint
	UnknownFuelTypes []string
}

type TransformService struct {
	categories CategoryTable
	factors    EmissionFactors
	location   *time.Location
}

func NewTransformService(categories CategoryTable, factors EmissionFactors, location *time.Location) (*TransformService, error) {
	if categories.byFuelType == nil {
		return nil, errors.New("category table is empty")
	}
	if factors == nil {
		return nil, errors.New("emission factors are empty")
	}
	if location == nil {
		return nil, errors.New("location is nil")
	}

	return &TransformService{
		categories: categories,
		factors:    factors,
		location:   location,
	}, nil
}

// Transform is pure: it never fails and never touches its inputs. Malformed
// category data is absorbed (categorization is total, negative values are
// clipped) and an empty reconciliation is a valid outcome.
func (s *TransformService) Transform(readings []models.GenerationReading, records []models.DemandForecastRecord) Snapshot {
	if s == nil || s.location == nil {
		return Snapshot{}
	}

	mixes := make(map[time.Time]*models.CategoryMix)
	unknown := make(map[string]struct{})

	for _, reading := range readings {
		local := reading.StartTime.In(s.location)
		value := reading.Generation
		if value < 0 {
			value = 0
		}

		category, recognized := s.categories.Categorize(reading.FuelType)
		if !recognized {
			unknown[reading.FuelType] = struct{}{}
		}

		mix, ok := mixes[local]
		if !ok {
			mix = &models.CategoryMix{}
			mixes[local] = mix
		}
		mix.Add(category, value)
	}

	intervals := make([]time.Time, 0, len(mixes))
	for local := range mixes {
		intervals = append(intervals, local)
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Before(intervals[j]) })

	wide := make([]models.IntervalRow, 0, len(intervals))
	long := make([]models.LongPoint, 0, len(intervals)*len(models.Categories()))
	for _, local := range intervals {
		mix := *mixes[local]
		total := mix.Total()

		var intensity *float64
		if total > 0 {
			numerator := 0.0
			for _, category := range models.Categories() {
				numerator += mix.Value(category) * s.factors[category]
			}
			value := numerator / total
			intensity = &value
		}

		wide = append(wide, models.IntervalRow{
			LocalTime:       local,
			Mix:             mix,
			TotalGeneration: total,
			CarbonIntensity: intensity,
		})

		for _, category := range models.Categories() {
			long = append(long, models.LongPoint{
				LocalTime:  local,
				Category:   category,
				Generation: mix.Value(category),
			})
		}
	}

	return Snapshot{
		Wide:             wide,
		Long:             long,
		Balance:          s.reconcile(readings, records),
		UnknownFuelTypes: sortedKeys(unknown),
	}
}

// reconcile buckets both series into local half-hour windows and inner-joins
// them. Windows present in only one series are dropped, not padded.
func (s *TransformService) reconcile(readings []models.GenerationReading, records []models.DemandForecastRecord) []models.BalancePoint {
	generation := make(map[time.Time]float64)
	for _, reading := range readings {
		value := reading.Generation
		if value < 0 {
			value = 0
		}
		window := reading.StartTime.In(s.location).Truncate(halfHour)
		generation[window] += value
	}

	// A window can receive several forecast revisions; the most recently
	// published one is authoritative. A tie on publish time keeps the last
	// record seen.
	latest := make(map[time.Time]models.DemandForecastRecord)
	for _, record := range records {
		window := record.StartTime.In(s.location).Truncate(halfHour)
		current, ok := latest[window]
		if !ok || !record.PublishTime.Before(current.PublishTime) {
			latest[window] = record
		}
	}

	windows := make([]time.Time, 0, len(generation))
	for window := range generation {
		if _, ok := latest[window]; ok {
			windows = append(windows, window)
		}
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].Before(windows[j]) })

	balance := make([]models.BalancePoint, 0, len(windows))
	for _, window := range windows {
		total := generation[window]
		demand := latest[window].Demand
		balance = append(balance, models.BalancePoint{
			Window:            window,
			TotalGeneration:   total,
			DemandForecast:    demand,
			SupplyMinusDemand: total - demand,
		})
	}

	return balance
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

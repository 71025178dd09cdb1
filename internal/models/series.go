package models

import "time"

type FuelCategory string

const (
	CategoryGas          FuelCategory = "Gas"
	CategoryBiomass      FuelCategory = "Biomass"
	CategoryNuclear      FuelCategory = "Nuclear"
	CategoryWind         FuelCategory = "Wind"
	CategoryHydro        FuelCategory = "Hydro"
	CategoryImports      FuelCategory = "Imports"
	CategoryCoalOilOther FuelCategory = "Coal/Oil/Other"
)

func Categories() []FuelCategory {
	return []FuelCategory{
		CategoryGas,
		CategoryBiomass,
		CategoryNuclear,
		CategoryWind,
		CategoryHydro,
		CategoryImports,
		CategoryCoalOilOther,
	}
}

// CategoryMix always carries every category so aggregated rows never have
// missing cells.
type CategoryMix struct {
	Gas          float64 `json:"gas"`
	Biomass      float64 `json:"biomass"`
	Nuclear      float64 `json:"nuclear"`
	Wind         float64 `json:"wind"`
	Hydro        float64 `json:"hydro"`
	Imports      float64 `json:"imports"`
	CoalOilOther float64 `json:"coal_oil_other"`
}

func (m CategoryMix) Value(category FuelCategory) float64 {
	switch category {
	case CategoryGas:
		return m.Gas
	case CategoryBiomass:
		return m.Biomass
	case CategoryNuclear:
		return m.Nuclear
	case CategoryWind:
		return m.Wind
	case CategoryHydro:
		return m.Hydro
	case CategoryImports:
		return m.Imports
	case CategoryCoalOilOther:
		return m.CoalOilOther
	}
	return 0
}

func (m *CategoryMix) Add(category FuelCategory, value float64) {
	switch category {
	case CategoryGas:
		m.Gas += value
	case CategoryBiomass:
		m.Biomass += value
	case CategoryNuclear:
		m.Nuclear += value
	case CategoryWind:
		m.Wind += value
	case CategoryHydro:
		m.Hydro += value
	case CategoryImports:
		m.Imports += value
	case CategoryCoalOilOther:
		m.CoalOilOther += value
	}
}

func (m CategoryMix) Total() float64 {
	total := 0.0
	for _, category := range Categories() {
		total += m.Value(category)
	}
	return total
}

type IntervalRow struct {
	LocalTime       time.Time   `json:"local_time"`
	Mix             CategoryMix `json:"mix"`
	TotalGeneration float64     `json:"total_generation"`
	CarbonIntensity *float64    `json:"carbon_intensity"`
}

type LongPoint struct {
	LocalTime  time.Time    `json:"local_time"`
	Category   FuelCategory `json:"category"`
	Generation float64      `json:"generation"`
}

type BalancePoint struct {
	Window            time.Time `json:"window"`
	TotalGeneration   float64   `json:"total_generation"`
	DemandForecast    float64   `json:"demand_forecast"`
	SupplyMinusDemand float64   `json:"supply_minus_demand"`
}

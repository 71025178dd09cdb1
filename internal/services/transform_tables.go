package services

import "github.com/jn607/UK-power-market-dashboard/internal/models"

// CategoryTable maps raw FUELINST fuel type codes onto the seven reporting
// categories. Categorization is total: known codes map directly, known
// interconnector codes map to Imports, and anything else lands in
// Coal/Oil/Other as the documented catch-all.
type CategoryTable struct {
	byFuelType      map[string]models.FuelCategory
	interconnectors map[string]struct{}
}

func DefaultCategoryTable() CategoryTable {
	return CategoryTable{
		byFuelType: map[string]models.FuelCategory{
			"CCGT":    models.CategoryGas,
			"OCGT":    models.CategoryGas,
			"BIOMASS": models.CategoryBiomass,
			"COAL":    models.CategoryCoalOilOther,
			"OIL":     models.CategoryCoalOilOther,
			"OTHER":   models.CategoryCoalOilOther,
			"NUCLEAR": models.CategoryNuclear,
			"WIND":    models.CategoryWind,
			"NPSHYD":  models.CategoryHydro,
			"PS":      models.CategoryHydro,
		},
		interconnectors: map[string]struct{}{
			"INTELEC": {},
			"INTEW":   {},
			"INTFR":   {},
			"INTGRNL": {},
			"INTIFA2": {},
			"INTIRL":  {},
			"INTNED":  {},
			"INTNEM":  {},
			"INTNSL":  {},
			"INTVKL":  {},
		},
	}
}

// Categorize never fails; the second return reports whether the code was
// recognized, so callers can surface unknown codes instead of absorbing them
// silently.
func (t CategoryTable) Categorize(fuelType string) (models.FuelCategory, bool) {
	if category, ok := t.byFuelType[fuelType]; ok {
		return category, true
	}
	if _, ok := t.interconnectors[fuelType]; ok {
		return models.CategoryImports, true
	}
	return models.CategoryCoalOilOther, false
}

// EmissionFactors holds grams of CO2 per kWh for each category, fixed for the
// process lifetime.
type EmissionFactors map[models.FuelCategory]float64

func DefaultEmissionFactors() EmissionFactors {
	return EmissionFactors{
		models.CategoryGas:          329.4,
		models.CategoryBiomass:      120.0,
		models.CategoryCoalOilOther: 675.0,
		models.CategoryNuclear:      0.0,
		models.CategoryWind:         0.0,
		models.CategoryHydro:        0.0,
		// Imports are assumed to carry a gas-like mix.
		models.CategoryImports: 329.4,
	}
}

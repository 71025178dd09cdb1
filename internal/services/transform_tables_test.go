package services

import (
	"testing"

	"github.com/jn607/UK-power-market-dashboard/internal/models"
)

func TestCategorizeMappedCodes(t *testing.T) {
	table := DefaultCategoryTable()

	cases := map[string]models.FuelCategory{
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
	}

	for fuelType, want := range cases {
		category, recognized := table.Categorize(fuelType)
		if category != want {
			t.Fatalf("Categorize(%q) = %q, want %q", fuelType, category, want)
		}
		if !recognized {
			t.Fatalf("Categorize(%q) recognized = false, want true", fuelType)
		}
	}
}

func TestCategorizeInterconnectors(t *testing.T) {
	table := DefaultCategoryTable()

	interconnectors := []string{
		"INTELEC", "INTEW", "INTFR", "INTGRNL", "INTIFA2",
		"INTIRL", "INTNED", "INTNEM", "INTNSL", "INTVKL",
	}
	for _, code := range interconnectors {
		category, recognized := table.Categorize(code)
		if category != models.CategoryImports {
			t.Fatalf("Categorize(%q) = %q, want %q", code, category, models.CategoryImports)
		}
		if !recognized {
			t.Fatalf("Categorize(%q) recognized = false, want true", code)
		}
	}
}

func TestCategorizeUnknownCodes(t *testing.T) {
	table := DefaultCategoryTable()

	for _, code := range []string{"", "FUSION", "intfr", "SOLAR"} {
		category, recognized := table.Categorize(code)
		if category != models.CategoryCoalOilOther {
			t.Fatalf("Categorize(%q) = %q, want %q", code, category, models.CategoryCoalOilOther)
		}
		if recognized {
			t.Fatalf("Categorize(%q) recognized = true, want false", code)
		}
	}
}

func TestDefaultEmissionFactorsCoverAllCategories(t *testing.T) {
	factors := DefaultEmissionFactors()

	for _, category := range models.Categories() {
		if _, ok := factors[category]; !ok {
			t.Fatalf("missing emission factor for %q", category)
		}
	}
	if factors[models.CategoryGas] != 329.4 {
		t.Fatalf("gas factor = %v, want %v", factors[models.CategoryGas], 329.4)
	}
	if factors[models.CategoryCoalOilOther] != 675.0 {
		t.Fatalf("coal/oil/other factor = %v, want %v", factors[models.CategoryCoalOilOther], 675.0)
	}
}

package recommend

import (
	"errors"
	"reflect"
	"testing"

	apperrors "alcancia/internal/errors"
	"alcancia/internal/models"
)

func questionnaireFixture() *models.Questionnaire {
	return &models.Questionnaire{
		MonthlyIncome:      1700000,
		SelectedCategories: models.StringList{"Mercado", "Arriendo", "Servicios"},
		HasDebt:            "no",
		SavingsInterest:    "maybe",
	}
}

func TestRecommendValidation(t *testing.T) {
	t.Run("rejects non-positive income", func(t *testing.T) {
		q := questionnaireFixture()
		q.MonthlyIncome = 0
		if _, err := Recommend(q); !errors.Is(err, apperrors.ErrInvalidIncome) {
			t.Errorf("expected ErrInvalidIncome, got %v", err)
		}

		q.MonthlyIncome = -100
		if _, err := Recommend(q); !errors.Is(err, apperrors.ErrInvalidIncome) {
			t.Errorf("expected ErrInvalidIncome for negative income, got %v", err)
		}
	})

	t.Run("rejects empty category selection", func(t *testing.T) {
		q := questionnaireFixture()
		q.SelectedCategories = models.StringList{}
		if _, err := Recommend(q); !errors.Is(err, apperrors.ErrNoCategories) {
			t.Errorf("expected ErrNoCategories, got %v", err)
		}
	})
}

func TestRecommendEssentialsHeavySelection(t *testing.T) {
	// Three essential categories, no log: the category mix is 100% Vitales,
	// which favors the high-needs simple templates.
	rec, err := Recommend(questionnaireFixture())
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if rec.Name != "70/20/10" {
		t.Errorf("recommended %q, want 70/20/10", rec.Name)
	}

	want := map[string]float64{
		"Gastos de vida":    1190000,
		"Ahorros":           340000,
		"Deudas/Donaciones": 170000,
	}
	if !reflect.DeepEqual(rec.Distribution, want) {
		t.Errorf("distribution = %v, want %v", rec.Distribution, want)
	}
}

func TestRecommendDeterminism(t *testing.T) {
	q := questionnaireFixture()
	first, err := Recommend(q)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	second, err := Recommend(q)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if first.Name != second.Name {
		t.Errorf("names differ across runs: %q vs %q", first.Name, second.Name)
	}
	if !reflect.DeepEqual(first.Distribution, second.Distribution) {
		t.Errorf("distributions differ across runs: %v vs %v", first.Distribution, second.Distribution)
	}
}

func TestRecommendTieKeepsEarlierTemplate(t *testing.T) {
	// "Basado en Cero" and "Personalizado" carry identical catalog rows, so
	// they always tie. With only ungrouped spending, high income, debt, and
	// savings interest both reach the maximum score and the earlier entry
	// must win.
	q := &models.Questionnaire{
		MonthlyIncome:      2500000,
		SelectedCategories: models.StringList{"Otros"},
		HasDebt:            "yes",
		SavingsInterest:    "yes",
	}

	rec, err := Recommend(q)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if rec.Name != "Basado en Cero" {
		t.Errorf("recommended %q, want the earlier tied template Basado en Cero", rec.Name)
	}
	if !reflect.DeepEqual(rec.Distribution, map[string]float64{"Asignación Manual": 2500000}) {
		t.Errorf("unexpected distribution: %v", rec.Distribution)
	}
}

func TestRecommendUsesLoggedSpending(t *testing.T) {
	q := questionnaireFixture()
	q.MonthlyLog = &models.MonthlyLog{
		Entries: []models.ExpenseEntry{
			{Category: "Arriendo", Amount: 500000},
			{Category: "Salidas", Amount: 300000},
			{Category: "Ahorros", Amount: 200000},
		},
		Total: 1000000,
	}

	// Logged percentages are exactly {50, 30, 20}, a perfect match for the
	// first template.
	rec, err := Recommend(q)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if rec.Name != "50/30/20" {
		t.Errorf("recommended %q, want 50/30/20", rec.Name)
	}
}

func TestGroupPercentagesUsesStoredTotal(t *testing.T) {
	// The stored total is trusted as-is even when it disagrees with the sum
	// of the entries.
	log := &models.MonthlyLog{
		Entries: []models.ExpenseEntry{{Category: "Arriendo", Amount: 100000}},
		Total:   400000,
	}

	pct := GroupPercentages(log)
	if pct[GroupVitales] != 25 {
		t.Errorf("Vitales%% = %v, want 25 (denominator is the stored total)", pct[GroupVitales])
	}
}

func TestGroupPercentagesDegenerateLogs(t *testing.T) {
	logs := map[string]*models.MonthlyLog{
		"nil log":    nil,
		"no entries": {Total: 500},
		"zero total": {Entries: []models.ExpenseEntry{{Category: "Mercado", Amount: 100}}},
	}

	for name, log := range logs {
		t.Run(name, func(t *testing.T) {
			for g, v := range GroupPercentages(log) {
				if v != 0 {
					t.Errorf("%q should be zero-filled, got %q = %v", name, g, v)
				}
			}
		})
	}
}

func TestGroupCountsDuplicatesAndUnknowns(t *testing.T) {
	counts := GroupCounts([]string{"Mercado", "Mercado", "Salidas", "Otros", "Inventada"})

	if counts[GroupVitales] != 2 {
		t.Errorf("Vitales count = %d, want 2 (duplicates counted)", counts[GroupVitales])
	}
	if counts[GroupOcio] != 1 {
		t.Errorf("Ocio count = %d, want 1", counts[GroupOcio])
	}
	if counts[GroupFinancieros] != 0 {
		t.Errorf("Financieros count = %d, want 0", counts[GroupFinancieros])
	}
}

func TestDistributionSumsToIncome(t *testing.T) {
	income := 1234567.0
	for _, tmpl := range Catalog() {
		t.Run(tmpl.Name, func(t *testing.T) {
			dist := Distribution(tmpl.Name, income)
			if len(dist) == 0 {
				t.Fatalf("no distribution for %q", tmpl.Name)
			}
			var sum float64
			for _, v := range dist {
				if v < 0 {
					t.Errorf("negative bucket amount %v", v)
				}
				sum += v
			}
			if diff := sum - income; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("distribution sums to %v, want %v", sum, income)
			}
		})
	}
}

func TestDistributionEightyTwenty(t *testing.T) {
	dist := Distribution("80/20", 1700000)
	want := map[string]float64{
		"Gastos totales": 1360000,
		"Ahorros/Deudas": 340000,
	}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("distribution = %v, want %v", dist, want)
	}
}

func TestDistributionUnknownTemplate(t *testing.T) {
	if dist := Distribution("90/10", 100); len(dist) != 0 {
		t.Errorf("unknown template should yield an empty distribution, got %v", dist)
	}
}

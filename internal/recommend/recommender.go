package recommend

import (
	apperrors "alcancia/internal/errors"
	"alcancia/internal/models"
)

// Recommendation is the outcome of scoring the catalog for a questionnaire.
type Recommendation struct {
	Name         string
	Distribution map[string]float64
	Score        float64
}

// Recommend scores every catalog template against the questionnaire and
// returns the winner with its monetary distribution. The catalog is scanned
// in order and ties keep the earlier template.
func Recommend(q *models.Questionnaire) (*Recommendation, error) {
	if q.MonthlyIncome <= 0 {
		return nil, apperrors.ErrInvalidIncome
	}
	if len(q.SelectedCategories) == 0 {
		return nil, apperrors.ErrNoCategories
	}

	in := ScoreInput{
		GroupPercentages: GroupPercentages(q.MonthlyLog),
		GroupCounts:      GroupCounts(q.SelectedCategories),
		HasDebt:          q.HasDebt,
		SavingsInterest:  q.SavingsInterest,
		MonthlyIncome:    q.MonthlyIncome,
	}

	var best Template
	bestScore := -1.0
	for _, t := range catalog {
		if s := Score(t, in); s > bestScore {
			bestScore = s
			best = t
		}
	}

	return &Recommendation{
		Name:         best.Name,
		Distribution: Distribution(best.Name, q.MonthlyIncome),
		Score:        bestScore,
	}, nil
}

// GroupPercentages computes the share of logged spending per group. The
// stored log total is used as the denominator as-is; entries outside the
// taxonomy contribute to no group. A nil, empty, or zero-total log yields
// all zeros.
func GroupPercentages(log *models.MonthlyLog) map[Group]float64 {
	pct := map[Group]float64{GroupVitales: 0, GroupOcio: 0, GroupFinancieros: 0}
	if log == nil || len(log.Entries) == 0 || log.Total == 0 {
		return pct
	}
	totals := map[Group]float64{}
	for _, entry := range log.Entries {
		if g, ok := GroupOf(entry.Category); ok {
			totals[g] += entry.Amount
		}
	}
	for g, amount := range totals {
		pct[g] = amount / log.Total * 100
	}
	return pct
}

// GroupCounts counts how many of the selected categories fall in each group.
// Duplicates count every time they appear.
func GroupCounts(categories []string) map[Group]int {
	counts := map[Group]int{GroupVitales: 0, GroupOcio: 0, GroupFinancieros: 0}
	for _, c := range categories {
		if g, ok := GroupOf(c); ok {
			counts[g]++
		}
	}
	return counts
}

// Distribution builds the monetary bucket allocation for a template. Each
// template has its own hand-named buckets rather than a generic percentage
// loop. Unknown names yield an empty map.
func Distribution(name string, income float64) map[string]float64 {
	switch name {
	case "50/30/20":
		return splitBuckets(income, 0.5, 0.3, 0.2)
	case "60/20/20":
		return splitBuckets(income, 0.6, 0.2, 0.2)
	case "50/15/35":
		return splitBuckets(income, 0.5, 0.15, 0.35)
	case "70/20/10":
		return map[string]float64{
			"Gastos de vida":    income * 0.7,
			"Ahorros":           income * 0.2,
			"Deudas/Donaciones": income * 0.1,
		}
	case "80/20":
		return map[string]float64{
			"Gastos totales": income * 0.8,
			"Ahorros/Deudas": income * 0.2,
		}
	case "30/30/20/20":
		return map[string]float64{
			"Vivienda":            income * 0.3,
			"Necesidades básicas": income * 0.3,
			"Deseos":              income * 0.2,
			"Ahorros/Deudas":      income * 0.2,
		}
	case "Basado en Cero", "Personalizado":
		return map[string]float64{"Asignación Manual": income}
	case "Sobres":
		return map[string]float64{"Sobres Personalizados": income}
	case "10/10/80":
		return map[string]float64{
			"Ahorros":           income * 0.1,
			"Deudas/Donaciones": income * 0.1,
			"Gastos":            income * 0.8,
		}
	default:
		return map[string]float64{}
	}
}

func splitBuckets(income, needs, wants, savings float64) map[string]float64 {
	return map[string]float64{
		"Necesidades":    income * needs,
		"Deseos":         income * wants,
		"Ahorros/Deudas": income * savings,
	}
}

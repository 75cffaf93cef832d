package recommend

import "strings"

// Weights for the four scoring dimensions. Spending dominates; the total is
// divided by the weight sum so the table can be retuned without rescaling.
var weights = struct {
	Spending float64
	Debt     float64
	Savings  float64
	Income   float64
}{
	Spending: 0.5,
	Debt:     0.25,
	Savings:  0.15,
	Income:   0.1,
}

// ScoreInput is one questionnaire snapshot prepared for scoring.
type ScoreInput struct {
	// GroupPercentages is the share of logged spending per group, derived
	// from the monthly log. Zero-filled when there is no usable log.
	GroupPercentages map[Group]float64
	// GroupCounts is how many selected categories fall in each group.
	GroupCounts map[Group]int
	// HasDebt and SavingsInterest are the raw questionnaire answers,
	// matched case-insensitively.
	HasDebt         string
	SavingsInterest string
	MonthlyIncome   float64
}

// Score rates how well a template fits the snapshot. Spending alignment uses
// the logged percentages when any are non-zero and falls back to the selected
// category mix otherwise. Sub-scores for spending are 100 minus twice the
// percentage deviation and may go negative.
func Score(t Template, in ScoreInput) float64 {
	actual := in.GroupPercentages
	if actual[GroupVitales] == 0 && actual[GroupOcio] == 0 && actual[GroupFinancieros] == 0 {
		actual = countPercentages(in.GroupCounts)
	}

	spending := (subScore(actual[GroupVitales], t.NeedsPct) +
		subScore(actual[GroupOcio], t.WantsPct) +
		subScore(actual[GroupFinancieros], t.SavingsPct)) / 3

	total := weights.Spending*spending +
		weights.Debt*debtScore(t, in.HasDebt) +
		weights.Savings*savingsScore(t, in.SavingsInterest) +
		weights.Income*incomeScore(t, in.MonthlyIncome)

	return total / (weights.Spending + weights.Debt + weights.Savings + weights.Income)
}

func subScore(actual, target float64) float64 {
	d := actual - target
	if d < 0 {
		d = -d
	}
	return 100 - d*2
}

// countPercentages turns per-group category counts into percentages of the
// total selected categories. An empty selection yields all zeros.
func countPercentages(counts map[Group]int) map[Group]float64 {
	total := counts[GroupVitales] + counts[GroupOcio] + counts[GroupFinancieros]
	pct := map[Group]float64{GroupVitales: 0, GroupOcio: 0, GroupFinancieros: 0}
	if total == 0 {
		return pct
	}
	for g, n := range counts {
		pct[g] = float64(n) / float64(total) * 100
	}
	return pct
}

func debtScore(t Template, hasDebt string) float64 {
	if strings.EqualFold(hasDebt, "yes") {
		switch t.DebtPriority {
		case PriorityHigh:
			return 100
		case PriorityMedium:
			return 70
		default:
			return 30
		}
	}
	switch t.DebtPriority {
	case PriorityLow:
		return 100
	case PriorityMedium:
		return 70
	default:
		return 50
	}
}

func savingsScore(t Template, interest string) float64 {
	switch strings.ToLower(interest) {
	case "yes":
		switch t.SavingsPriority {
		case PriorityHigh:
			return 100
		case PriorityMedium:
			return 70
		default:
			return 30
		}
	case "maybe":
		switch t.SavingsPriority {
		case PriorityMedium:
			return 100
		case PriorityHigh:
			return 70
		default:
			return 50
		}
	default:
		switch t.SavingsPriority {
		case PriorityLow:
			return 100
		case PriorityMedium:
			return 70
		default:
			return 50
		}
	}
}

// incomeScore matches template complexity to an income tier. Lower incomes
// favor simpler methods.
func incomeScore(t Template, income float64) float64 {
	switch {
	case income < 500000:
		switch t.Complexity {
		case PriorityVeryLow, PriorityLow:
			return 100
		case PriorityMedium:
			return 70
		default:
			return 30
		}
	case income < 2000000:
		switch t.Complexity {
		case PriorityLow, PriorityMedium:
			return 100
		case PriorityHigh:
			return 70
		default:
			return 50
		}
	default:
		switch t.Complexity {
		case PriorityMedium, PriorityHigh:
			return 100
		case PriorityLow:
			return 70
		default:
			return 50
		}
	}
}

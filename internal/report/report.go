// Package report turns a budget's recommended distribution and synchronized
// expenses into an end-of-month deviation report.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "alcancia/internal/errors"
	"alcancia/internal/models"
)

// Statuses used for the overall verdict and per-label deviations.
const (
	StatusWithinBudget = "Dentro del presupuesto"
	StatusExceeded     = "Excedido"
)

// Renderer draws the report charts and returns file path handles that are
// embedded into the report unmodified.
type Renderer interface {
	RenderBar(labels []string, recommended, actual []float64) (string, error)
	RenderPie(labels []string, values []float64) (string, error)
}

// Generate computes the deviation report for a budget. It fails with
// ErrReportTooEarly until the calendar has reached the last day of the
// budget's month, and with ErrChartRenderFailed when the renderer does.
// The caller persists the returned report.
func Generate(b *models.Budget, now time.Time, renderer Renderer) (*models.Report, error) {
	lastDay := time.Date(b.Period.Year(), b.Period.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if today.Before(lastDay) {
		return nil, apperrors.ErrReportTooEarly
	}

	byCategory := map[string]float64{}
	var totalActual float64
	for _, entry := range b.ActualExpenses {
		byCategory[entry.Category] += entry.Amount
		totalActual += entry.Amount
	}

	var totalRecommended float64
	for _, amount := range b.Recommended.Distribution {
		totalRecommended += amount
	}

	difference := totalRecommended - totalActual
	status := StatusWithinBudget
	if difference < 0 {
		status = StatusExceeded
	}

	deviations := computeDeviations(b.Recommended.Distribution, byCategory)

	rep := &models.Report{
		Period:       b.Period.Format("2006-01-02"),
		TemplateName: b.Recommended.Name,
		GeneratedAt:  now,
		ByCategory:   byCategory,
		Analysis: models.ReportAnalysis{
			TotalActual:      totalActual,
			TotalRecommended: totalRecommended,
			Difference:       difference,
			Status:           status,
		},
		Deviations:      deviations,
		Recommendations: buildRecommendations(difference, deviations, byCategory),
	}

	charts, err := renderCharts(renderer, deviations, byCategory, totalActual)
	if err != nil {
		return nil, err
	}
	rep.Charts = charts

	return rep, nil
}

// computeDeviations pairs every label from either side. Recommended buckets
// and expense categories live in different label spaces, so most rows carry
// a zero on one side; labels that happen to coincide are compared directly.
func computeDeviations(distribution, byCategory map[string]float64) []models.Deviation {
	labels := map[string]bool{}
	for label := range distribution {
		labels[label] = true
	}
	for label := range byCategory {
		labels[label] = true
	}

	sorted := make([]string, 0, len(labels))
	for label := range labels {
		sorted = append(sorted, label)
	}
	sort.Strings(sorted)

	deviations := make([]models.Deviation, 0, len(sorted))
	for _, label := range sorted {
		recommended := distribution[label]
		actual := byCategory[label]
		deviation := actual - recommended
		status := StatusWithinBudget
		if deviation > 0 {
			status = StatusExceeded
		}
		deviations = append(deviations, models.Deviation{
			Label:       label,
			Recommended: recommended,
			Actual:      actual,
			Deviation:   deviation,
			Status:      status,
		})
	}
	return deviations
}

func buildRecommendations(difference float64, deviations []models.Deviation, byCategory map[string]float64) []string {
	var lines []string
	if difference >= 0 {
		lines = append(lines, fmt.Sprintf("¡Genial! Estuviste dentro del presupuesto y ahorraste $%s. ¡Sigue así!", FormatMoney(difference)))
		for _, d := range deviations {
			if d.Deviation < 0 && d.Actual > 0 {
				lines = append(lines, fmt.Sprintf("En %s gastaste $%s menos de lo planeado.", d.Label, FormatMoney(-d.Deviation)))
			}
		}
		return lines
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	lines = append(lines, fmt.Sprintf("Excediste el presupuesto por $%s. Revisa tus gastos en %s.", FormatMoney(-difference), strings.Join(categories, ", ")))
	for _, d := range deviations {
		if d.Deviation > 0 {
			lines = append(lines, fmt.Sprintf("Te excediste en %s por $%s.", d.Label, FormatMoney(d.Deviation)))
		}
	}
	return lines
}

func renderCharts(renderer Renderer, deviations []models.Deviation, byCategory map[string]float64, totalActual float64) (models.ReportCharts, error) {
	var charts models.ReportCharts
	if renderer == nil {
		return charts, nil
	}

	labels := make([]string, len(deviations))
	recommended := make([]float64, len(deviations))
	actual := make([]float64, len(deviations))
	for i, d := range deviations {
		labels[i] = d.Label
		recommended[i] = d.Recommended
		actual[i] = d.Actual
	}

	bar, err := renderer.RenderBar(labels, recommended, actual)
	if err != nil {
		return charts, apperrors.Wrap(apperrors.ErrChartRenderFailed, err)
	}
	charts.Bar = bar

	// A pie of zero slices is meaningless, so months without expenses only
	// get the bar chart.
	if totalActual > 0 {
		pieLabels := make([]string, 0, len(byCategory))
		for category := range byCategory {
			pieLabels = append(pieLabels, category)
		}
		sort.Strings(pieLabels)
		values := make([]float64, len(pieLabels))
		for i, category := range pieLabels {
			values[i] = byCategory[category]
		}

		pie, err := renderer.RenderPie(pieLabels, values)
		if err != nil {
			return charts, apperrors.Wrap(apperrors.ErrChartRenderFailed, err)
		}
		charts.Pie = pie
	}

	return charts, nil
}

// FormatMoney renders an amount rounded to whole units with thousands
// separators, matching the wording used in report recommendations.
func FormatMoney(amount float64) string {
	whole := strconv.FormatFloat(amount, 'f', 0, 64)
	neg := strings.HasPrefix(whole, "-")
	digits := strings.TrimPrefix(whole, "-")

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Budget is a recommended budget promoted from a questionnaire. Period is the
// first day of the month the budget covers; ActualExpenses mirrors the user's
// expense transactions for that month and Report is filled once the month has
// closed and a report is generated.
type Budget struct {
	Base
	UserID          uint              `gorm:"not null;index" json:"user_id"`
	QuestionnaireID uint              `gorm:"not null;index" json:"questionnaire_id"`
	Period          time.Time         `gorm:"not null" json:"period"`
	Income          float64           `gorm:"not null" json:"income"`
	Recommended     RecommendedBudget `gorm:"type:jsonb;not null" json:"recommended"`
	ActualExpenses  ExpenseEntries    `gorm:"type:jsonb" json:"actual_expenses"`
	Report          *Report           `gorm:"type:jsonb" json:"report,omitempty"`
}

// Deviation compares one label's planned amount against what was actually
// spent under the same label. Labels come from both the recommended bucket
// names and the raw expense categories, so many rows have one side at zero.
type Deviation struct {
	Label       string  `json:"label"`
	Recommended float64 `json:"recommended"`
	Actual      float64 `json:"actual"`
	Deviation   float64 `json:"deviation"`
	Status      string  `json:"status"`
}

// ReportAnalysis is the verdict section of a report.
type ReportAnalysis struct {
	TotalActual      float64 `json:"total_actual"`
	TotalRecommended float64 `json:"total_recommended"`
	Difference       float64 `json:"difference"`
	Status           string  `json:"status"`
}

// ReportCharts holds file paths of the rendered chart images.
type ReportCharts struct {
	Bar string `json:"bar,omitempty"`
	Pie string `json:"pie,omitempty"`
}

// Report is the end-of-month deviation report for a budget.
type Report struct {
	Period          string             `json:"period"`
	TemplateName    string             `json:"template_name"`
	GeneratedAt     time.Time          `json:"generated_at"`
	ByCategory      map[string]float64 `json:"by_category"`
	Analysis        ReportAnalysis     `json:"analysis"`
	Deviations      []Deviation        `json:"deviations"`
	Recommendations []string           `json:"recommendations"`
	Charts          ReportCharts       `json:"charts"`
}

// Value implements driver.Valuer. A nil report is stored as NULL.
func (r *Report) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner.
func (r *Report) Scan(value interface{}) error {
	return scanJSON(value, r)
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// scanJSON decodes a JSON column value (bytes or string) into dest.
func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
}

// StringList is a JSON-encoded list of strings stored in a single column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ExpenseEntry is a single logged expense: a category, an amount, and
// optionally a description and a calendar date (YYYY-MM-DD).
type ExpenseEntry struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date,omitempty"`
}

// ExpenseEntries is a JSON-encoded list of expense entries.
type ExpenseEntries []ExpenseEntry

// Value implements driver.Valuer.
func (e ExpenseEntries) Value() (driver.Value, error) {
	if e == nil {
		e = ExpenseEntries{}
	}
	return json.Marshal(e)
}

// Scan implements sql.Scanner.
func (e *ExpenseEntries) Scan(value interface{}) error {
	return scanJSON(value, e)
}

// MonthlyLog is the running expense log attached to a questionnaire.
// Total is maintained by callers as entries are appended; the engine never
// recomputes it (see the scorer, which divides by the stored total as-is).
type MonthlyLog struct {
	Entries []ExpenseEntry `json:"entries"`
	Total   float64        `json:"total"`
}

// Value implements driver.Valuer. A nil log is stored as NULL.
func (m *MonthlyLog) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *MonthlyLog) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// RecommendedBudget is the template name and bucket distribution selected
// by the recommender for a budget.
type RecommendedBudget struct {
	Name         string             `json:"name"`
	Distribution map[string]float64 `json:"distribution"`
}

// Value implements driver.Valuer.
func (r RecommendedBudget) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan implements sql.Scanner.
func (r *RecommendedBudget) Scan(value interface{}) error {
	return scanJSON(value, r)
}

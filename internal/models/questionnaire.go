package models

// Questionnaire is one self-reported budgeting questionnaire. A user fills
// one per reporting cycle; the monthly log grows as spending is recorded and
// may later be replaced wholesale by a sync.
type Questionnaire struct {
	Base
	UserID             uint        `gorm:"not null;index" json:"user_id"`
	IncomeSources      StringList  `gorm:"type:jsonb" json:"income_sources"`
	MonthlyIncome      float64     `gorm:"not null" json:"monthly_income"`
	SelectedCategories StringList  `gorm:"type:jsonb;not null" json:"selected_categories"`
	HasDebt            string      `gorm:"size:8;not null" json:"has_debt"`
	SavingsInterest    string      `gorm:"size:8;not null" json:"savings_interest"`
	MonthlyLog         *MonthlyLog `gorm:"type:jsonb" json:"monthly_log,omitempty"`
}

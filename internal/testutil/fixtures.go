package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"alcancia/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Role:     models.RoleClient,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestQuestionnaire creates a questionnaire with essentials-heavy
// answers and an empty monthly log.
func CreateTestQuestionnaire(t *testing.T, db *gorm.DB, userID uint) *models.Questionnaire {
	t.Helper()

	questionnaire := &models.Questionnaire{
		UserID:             userID,
		IncomeSources:      models.StringList{"Salario"},
		MonthlyIncome:      1700000,
		SelectedCategories: models.StringList{"Mercado", "Arriendo", "Servicios"},
		HasDebt:            "no",
		SavingsInterest:    "maybe",
		MonthlyLog:         &models.MonthlyLog{Entries: []models.ExpenseEntry{}},
	}
	if err := db.Create(questionnaire).Error; err != nil {
		t.Fatalf("failed to create test questionnaire: %v", err)
	}
	return questionnaire
}

// AddTestLogEntry appends an expense to the questionnaire's monthly log and
// bumps its total.
func AddTestLogEntry(t *testing.T, db *gorm.DB, questionnaire *models.Questionnaire, category string, amount float64) {
	t.Helper()

	if questionnaire.MonthlyLog == nil {
		questionnaire.MonthlyLog = &models.MonthlyLog{}
	}
	questionnaire.MonthlyLog.Entries = append(questionnaire.MonthlyLog.Entries, models.ExpenseEntry{
		Category: category,
		Amount:   amount,
		Date:     time.Now().Format("2006-01-02"),
	})
	questionnaire.MonthlyLog.Total += amount

	if err := db.Save(questionnaire).Error; err != nil {
		t.Fatalf("failed to update test questionnaire log: %v", err)
	}
}

// CreateTestTransaction creates a transaction of the given type and amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID uint, txType models.TransactionType, category string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates a budget for the given questionnaire covering the
// given period month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, questionnaireID uint, period time.Time) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:          userID,
		QuestionnaireID: questionnaireID,
		Period:          time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC),
		Income:          1700000,
		Recommended: models.RecommendedBudget{
			Name: "80/20",
			Distribution: map[string]float64{
				"Gastos totales": 1360000,
				"Ahorros/Deudas": 340000,
			},
		},
		ActualExpenses: models.ExpenseEntries{},
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

package services

import (
	"time"

	"alcancia/internal/models"
	"alcancia/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, phone string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// VerificationServicer defines the contract for contact verification.
type VerificationServicer interface {
	RequestCode(userID uint, codeType models.VerificationType) (*models.VerificationCode, error)
	ConfirmCode(userID uint, code string) error
}

// QuestionnaireInput carries the answers needed to create a questionnaire.
type QuestionnaireInput struct {
	IncomeSources      []string
	MonthlyIncome      float64
	SelectedCategories []string
	HasDebt            string
	SavingsInterest    string
}

// QuestionnaireServicer defines the contract for questionnaire-related business logic.
type QuestionnaireServicer interface {
	CreateQuestionnaire(userID uint, input QuestionnaireInput) (*models.Questionnaire, error)
	GetUserQuestionnaires(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Questionnaire], error)
	GetQuestionnaireByID(userID, questionnaireID uint) (*models.Questionnaire, error)
	AddLogEntry(userID, questionnaireID uint, category string, amount float64, description string) (*models.Questionnaire, error)
	SyncMonthlyLog(userID, questionnaireID uint, start, end time.Time) (*models.Questionnaire, error)
	DeleteQuestionnaire(userID, questionnaireID uint) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.TransactionType
	Category *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, transactionType models.TransactionType, amount float64, category, description string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID, questionnaireID uint) (*models.Budget, error)
	GetUserBudgets(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID uint) (*models.Budget, error)
	SyncBudget(userID, budgetID uint) (*models.Budget, error)
	GenerateReport(userID, budgetID uint) (*models.Budget, error)
	DeleteBudget(userID, budgetID uint) error
}

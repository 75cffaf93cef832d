package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "alcancia/internal/errors"
	"alcancia/internal/logger"
	"alcancia/internal/models"
	"alcancia/internal/pagination"
	"alcancia/internal/recommend"
	"alcancia/internal/report"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db       *gorm.DB
	renderer report.Renderer
}

// NewBudgetService creates a new BudgetServicer. The renderer may be nil,
// in which case reports carry no charts.
func NewBudgetService(db *gorm.DB, renderer report.Renderer) BudgetServicer {
	return &budgetService{db: db, renderer: renderer}
}

// CreateBudget promotes a questionnaire into a budget for the coming month.
// The questionnaire must carry a non-empty monthly log so the recommendation
// reflects observed spending, not just the category selection.
func (s *budgetService) CreateBudget(userID, questionnaireID uint) (*models.Budget, error) {
	var questionnaire models.Questionnaire
	err := s.db.Where("id = ? AND user_id = ?", questionnaireID, userID).First(&questionnaire).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionnaireNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if questionnaire.MonthlyLog == nil || len(questionnaire.MonthlyLog.Entries) == 0 {
		return nil, apperrors.ErrEmptyLog
	}

	rec, err := recommend.Recommend(&questionnaire)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	period := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)

	budget := &models.Budget{
		UserID:          userID,
		QuestionnaireID: questionnaire.ID,
		Period:          period,
		Income:          questionnaire.MonthlyIncome,
		Recommended: models.RecommendedBudget{
			Name:         rec.Name,
			Distribution: rec.Distribution,
		},
		ActualExpenses: models.ExpenseEntries{},
	}
	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("Budget created", "user_id", userID, "budget_id", budget.ID, "template", rec.Name, "score", rec.Score)
	return budget, nil
}

// GetUserBudgets lists a user's budgets, newest period first.
func (s *budgetService) GetUserBudgets(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	query := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := query.Scopes(pagination.Paginate(page)).Order("period DESC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(budgets, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetBudgetByID retrieves one of the user's budgets.
func (s *budgetService) GetBudgetByID(userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// SyncBudget replaces the budget's actual expenses with the user's expense
// transactions dated inside the budget's month. The replacement is wholesale,
// so re-running a sync is idempotent.
func (s *budgetService) SyncBudget(userID, budgetID uint) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	start := budget.Period
	end := start.AddDate(0, 1, 0)
	budget.ActualExpenses = expenseEntriesBetween(transactions, start, end)

	if err := s.db.Save(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("Budget synced", "user_id", userID, "budget_id", budgetID, "expenses", len(budget.ActualExpenses))
	return budget, nil
}

// GenerateReport computes and persists the deviation report for a budget.
// Nothing is persisted when generation fails, so a chart failure never
// leaves a partial report behind.
func (s *budgetService) GenerateReport(userID, budgetID uint) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	rep, err := report.Generate(budget, time.Now(), s.renderer)
	if err != nil {
		return nil, err
	}

	budget.Report = rep
	if err := s.db.Save(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("Report generated", "user_id", userID, "budget_id", budgetID, "status", rep.Analysis.Status)
	return budget, nil
}

// DeleteBudget removes one of the user's budgets.
func (s *budgetService) DeleteBudget(userID, budgetID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

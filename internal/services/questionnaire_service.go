package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "alcancia/internal/errors"
	"alcancia/internal/models"
	"alcancia/internal/pagination"
	"alcancia/internal/recommend"
)

// questionnaireService handles questionnaire-related business logic.
type questionnaireService struct {
	db *gorm.DB
}

// NewQuestionnaireService creates a new QuestionnaireServicer.
func NewQuestionnaireService(db *gorm.DB) QuestionnaireServicer {
	return &questionnaireService{db: db}
}

// CreateQuestionnaire validates the answers and stores a new questionnaire
// with an empty monthly log.
func (s *questionnaireService) CreateQuestionnaire(userID uint, input QuestionnaireInput) (*models.Questionnaire, error) {
	if input.MonthlyIncome <= 0 {
		return nil, apperrors.ErrInvalidIncome
	}
	if len(input.SelectedCategories) == 0 {
		return nil, apperrors.ErrNoCategories
	}
	for _, category := range input.SelectedCategories {
		if !recommend.IsCategory(category) {
			return nil, apperrors.WithMessage(apperrors.ErrUnknownCategory, "unknown expense category: "+category)
		}
	}
	if !isYesNo(input.HasDebt) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "has_debt must be yes or no")
	}
	if !isYesNoMaybe(input.SavingsInterest) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "savings_interest must be yes, no, or maybe")
	}

	questionnaire := &models.Questionnaire{
		UserID:             userID,
		IncomeSources:      input.IncomeSources,
		MonthlyIncome:      input.MonthlyIncome,
		SelectedCategories: input.SelectedCategories,
		HasDebt:            input.HasDebt,
		SavingsInterest:    input.SavingsInterest,
		MonthlyLog:         &models.MonthlyLog{Entries: []models.ExpenseEntry{}},
	}
	if err := s.db.Create(questionnaire).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return questionnaire, nil
}

// GetUserQuestionnaires lists a user's questionnaires, newest first.
func (s *questionnaireService) GetUserQuestionnaires(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Questionnaire], error) {
	page.Defaults()

	query := s.db.Model(&models.Questionnaire{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var questionnaires []models.Questionnaire
	if err := query.Scopes(pagination.Paginate(page)).Order("created_at DESC").Find(&questionnaires).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(questionnaires, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetQuestionnaireByID retrieves one of the user's questionnaires.
func (s *questionnaireService) GetQuestionnaireByID(userID, questionnaireID uint) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	err := s.db.Where("id = ? AND user_id = ?", questionnaireID, userID).First(&questionnaire).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionnaireNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &questionnaire, nil
}

// AddLogEntry appends one expense to the monthly log and adds its amount to
// the stored total. The total is maintained here, never recomputed from the
// entries downstream.
func (s *questionnaireService) AddLogEntry(userID, questionnaireID uint, category string, amount float64, description string) (*models.Questionnaire, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !recommend.IsCategory(category) {
		return nil, apperrors.WithMessage(apperrors.ErrUnknownCategory, "unknown expense category: "+category)
	}

	questionnaire, err := s.GetQuestionnaireByID(userID, questionnaireID)
	if err != nil {
		return nil, err
	}

	if questionnaire.MonthlyLog == nil {
		questionnaire.MonthlyLog = &models.MonthlyLog{Entries: []models.ExpenseEntry{}}
	}
	questionnaire.MonthlyLog.Entries = append(questionnaire.MonthlyLog.Entries, models.ExpenseEntry{
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        time.Now().Format("2006-01-02"),
	})
	questionnaire.MonthlyLog.Total += amount

	if err := s.db.Save(questionnaire).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return questionnaire, nil
}

// SyncMonthlyLog rebuilds the monthly log wholesale from the user's expense
// transactions inside the [start, end) window.
func (s *questionnaireService) SyncMonthlyLog(userID, questionnaireID uint, start, end time.Time) (*models.Questionnaire, error) {
	questionnaire, err := s.GetQuestionnaireByID(userID, questionnaireID)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := expenseEntriesBetween(transactions, start, end)
	var total float64
	for _, entry := range entries {
		total += entry.Amount
	}
	questionnaire.MonthlyLog = &models.MonthlyLog{Entries: entries, Total: total}

	if err := s.db.Save(questionnaire).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return questionnaire, nil
}

// DeleteQuestionnaire removes one of the user's questionnaires.
func (s *questionnaireService) DeleteQuestionnaire(userID, questionnaireID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", questionnaireID, userID).Delete(&models.Questionnaire{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrQuestionnaireNotFound
	}
	return nil
}

func isYesNo(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "no":
		return true
	}
	return false
}

func isYesNoMaybe(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "no", "maybe":
		return true
	}
	return false
}

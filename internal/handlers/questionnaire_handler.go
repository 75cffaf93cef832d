package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "alcancia/internal/errors"
	"alcancia/internal/pagination"
	"alcancia/internal/services"
)

// QuestionnaireHandler handles questionnaire-related requests.
type QuestionnaireHandler struct {
	questionnaireService services.QuestionnaireServicer
}

// NewQuestionnaireHandler creates a new QuestionnaireHandler.
func NewQuestionnaireHandler(questionnaireService services.QuestionnaireServicer) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaireService: questionnaireService}
}

// CreateQuestionnaireRequest represents the payload for creating a questionnaire.
type CreateQuestionnaireRequest struct {
	IncomeSources      []string `json:"income_sources" binding:"omitempty,dive,min=1,max=100"`
	MonthlyIncome      float64  `json:"monthly_income" binding:"required,gt=0"`
	SelectedCategories []string `json:"selected_categories" binding:"required,min=1,dive,expense_category"`
	HasDebt            string   `json:"has_debt" binding:"required,yes_no"`
	SavingsInterest    string   `json:"savings_interest" binding:"required,yes_no_maybe"`
}

// AddLogEntryRequest represents the payload for logging one expense.
type AddLogEntryRequest struct {
	Category    string  `json:"category" binding:"required,expense_category"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=255"`
}

// SyncLogRequest represents the payload for rebuilding the monthly log from
// the user's transactions.
type SyncLogRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required,gtfield=Start"`
}

// CreateQuestionnaire handles creating a questionnaire.
// @Summary     Create a questionnaire
// @Description Record the budgeting questionnaire answers for the authenticated user
// @Tags        questionnaires
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateQuestionnaireRequest true "Questionnaire answers"
// @Success     201 {object} models.Questionnaire "Questionnaire created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /questionnaires [post]
func (h *QuestionnaireHandler) CreateQuestionnaire(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	questionnaire, err := h.questionnaireService.CreateQuestionnaire(userID, services.QuestionnaireInput{
		IncomeSources:      req.IncomeSources,
		MonthlyIncome:      req.MonthlyIncome,
		SelectedCategories: req.SelectedCategories,
		HasDebt:            req.HasDebt,
		SavingsInterest:    req.SavingsInterest,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"questionnaire": questionnaire})
}

// GetQuestionnaires handles listing the user's questionnaires.
// @Summary     Get questionnaires
// @Description Get a paginated list of questionnaires for the authenticated user
// @Tags        questionnaires
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Questionnaire] "Paginated questionnaires"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /questionnaires [get]
func (h *QuestionnaireHandler) GetQuestionnaires(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.questionnaireService.GetUserQuestionnaires(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetQuestionnaire handles retrieving a specific questionnaire.
// @Summary     Get questionnaire by ID
// @Description Get a specific questionnaire by ID
// @Tags        questionnaires
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Questionnaire ID"
// @Success     200 {object} models.Questionnaire "Questionnaire details"
// @Failure     400 {object} ErrorResponse "Invalid questionnaire ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Questionnaire not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /questionnaires/{id} [get]
func (h *QuestionnaireHandler) GetQuestionnaire(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	questionnaireID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	questionnaire, err := h.questionnaireService.GetQuestionnaireByID(userID, questionnaireID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questionnaire": questionnaire})
}

// AddLogEntry handles appending one expense to the monthly log.
// @Summary     Log an expense
// @Description Append one expense to the questionnaire's monthly log
// @Tags        questionnaires
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Questionnaire ID"
// @Param       request body AddLogEntryRequest true "Expense entry"
// @Success     200 {object} models.Questionnaire "Updated questionnaire"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Questionnaire not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /questionnaires/{id}/log [post]
func (h *QuestionnaireHandler) AddLogEntry(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	questionnaireID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddLogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	questionnaire, err := h.questionnaireService.AddLogEntry(userID, questionnaireID, req.Category, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questionnaire": questionnaire})
}

// SyncLog handles rebuilding the monthly log from transactions.
// @Summary     Sync monthly log
// @Description Rebuild the questionnaire's monthly log from the user's expense transactions in a date window
// @Tags        questionnaires
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int            true "Questionnaire ID"
// @Param       request body SyncLogRequest true "Date window"
// @Success     200 {object} models.Questionnaire "Updated questionnaire"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Questionnaire not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /questionnaires/{id}/sync [post]
func (h *QuestionnaireHandler) SyncLog(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	questionnaireID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SyncLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	questionnaire, err := h.questionnaireService.SyncMonthlyLog(userID, questionnaireID, req.Start, req.End)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questionnaire": questionnaire})
}

// DeleteQuestionnaire handles deleting a questionnaire.
// @Summary     Delete questionnaire
// @Description Delete a questionnaire by ID
// @Tags        questionnaires
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Questionnaire ID"
// @Success     200 {object} MessageResponse "Questionnaire deleted"
// @Failure     400 {object} ErrorResponse "Invalid questionnaire ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Questionnaire not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /questionnaires/{id} [delete]
func (h *QuestionnaireHandler) DeleteQuestionnaire(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	questionnaireID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.questionnaireService.DeleteQuestionnaire(userID, questionnaireID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Questionnaire deleted successfully"})
}

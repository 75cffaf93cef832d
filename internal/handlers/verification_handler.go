package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "alcancia/internal/errors"
	"alcancia/internal/models"
	"alcancia/internal/services"
)

// VerificationHandler handles contact verification requests.
type VerificationHandler struct {
	verificationService services.VerificationServicer
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(verificationService services.VerificationServicer) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationService}
}

// RequestCodeRequest represents the payload for requesting a verification code.
type RequestCodeRequest struct {
	Type models.VerificationType `json:"type" binding:"required,verification_type"`
}

// ConfirmCodeRequest represents the payload for confirming a verification code.
type ConfirmCodeRequest struct {
	Code string `json:"code" binding:"required,min=6,max=64"`
}

// RequestCode handles issuing a new verification code.
// @Summary     Request verification code
// @Description Issue a verification code delivered over the chosen channel
// @Tags        verification
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RequestCodeRequest true "Delivery channel"
// @Success     201 {object} MessageResponse "Code issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /verification/request [post]
func (h *VerificationHandler) RequestCode(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if _, err := h.verificationService.RequestCode(userID, req.Type); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Verification code sent"})
}

// ConfirmCode handles redeeming a verification code.
// @Summary     Confirm verification code
// @Description Redeem a verification code and mark the user verified
// @Tags        verification
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ConfirmCodeRequest true "Verification code"
// @Success     200 {object} MessageResponse "User verified"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Code not found"
// @Failure     409 {object} ErrorResponse "Code already used"
// @Failure     410 {object} ErrorResponse "Code expired"
// @Router      /verification/confirm [post]
func (h *VerificationHandler) ConfirmCode(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ConfirmCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.verificationService.ConfirmCode(userID, req.Code); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account verified successfully"})
}

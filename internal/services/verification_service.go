package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	"alcancia/internal/email"
	apperrors "alcancia/internal/errors"
	"alcancia/internal/logger"
	"alcancia/internal/models"
)

// codeTTL is how long a verification code stays redeemable.
const codeTTL = 60 * time.Minute

// verificationService issues and redeems single-use verification codes.
type verificationService struct {
	db     *gorm.DB
	mailer email.Mailer
}

// NewVerificationService creates a new VerificationServicer.
func NewVerificationService(db *gorm.DB, mailer email.Mailer) VerificationServicer {
	return &verificationService{db: db, mailer: mailer}
}

// RequestCode issues a fresh code for the user and delivers it by email.
// SMS delivery records the code but leaves delivery to an external gateway.
func (s *verificationService) RequestCode(userID uint, codeType models.VerificationType) (*models.VerificationCode, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	code, err := generateCode()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	record := &models.VerificationCode{
		UserID:    userID,
		Code:      code,
		Type:      codeType,
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if codeType == models.VerificationTypeEmail {
		if err := s.mailer.SendVerificationCode(user.Email, code); err != nil {
			logger.Get().Errorw("Failed to send verification email", "user_id", userID, "error", err)
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return record, nil
}

// ConfirmCode redeems a code, marking it used and the user verified.
func (s *verificationService) ConfirmCode(userID uint, code string) error {
	var record models.VerificationCode
	err := s.db.Where("user_id = ? AND code = ?", userID, code).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVerificationNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if record.UsedAt != nil {
		return apperrors.ErrVerificationUsed
	}
	if time.Now().After(record.ExpiresAt) {
		return apperrors.ErrVerificationExpired
	}

	now := time.Now()
	record.UsedAt = &now

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Update("is_verified", true).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// generateCode returns a random 6-byte hex token.
func generateCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

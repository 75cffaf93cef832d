package services

import (
	"testing"
	"time"

	"alcancia/internal/models"
	"alcancia/internal/testutil"
)

type captureMailer struct {
	to   string
	code string
	err  error
}

func (m *captureMailer) SendVerificationCode(to, code string) error {
	if m.err != nil {
		return m.err
	}
	m.to = to
	m.code = code
	return nil
}

func TestVerificationFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	mailer := &captureMailer{}
	svc := NewVerificationService(db, mailer)
	user := testutil.CreateTestUser(t, db)

	record, err := svc.RequestCode(user.ID, models.VerificationTypeEmail)
	testutil.AssertNoError(t, err)

	if mailer.to != user.Email {
		t.Errorf("code mailed to %q, want %q", mailer.to, user.Email)
	}
	if mailer.code != record.Code {
		t.Error("mailed code does not match the stored code")
	}

	t.Run("confirm marks user verified", func(t *testing.T) {
		testutil.AssertNoError(t, svc.ConfirmCode(user.ID, record.Code))

		var refreshed models.User
		testutil.AssertNoError(t, db.First(&refreshed, user.ID).Error)
		if !refreshed.IsVerified {
			t.Error("user should be verified after confirming the code")
		}
	})

	t.Run("codes are single use", func(t *testing.T) {
		err := svc.ConfirmCode(user.ID, record.Code)
		testutil.AssertAppError(t, err, "VERIFICATION_USED")
	})

	t.Run("unknown code", func(t *testing.T) {
		err := svc.ConfirmCode(user.ID, "no-such-code")
		testutil.AssertAppError(t, err, "VERIFICATION_NOT_FOUND")
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.RequestCode(9999, models.VerificationTypeEmail)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestConfirmExpiredCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	svc := NewVerificationService(db, &captureMailer{})
	user := testutil.CreateTestUser(t, db)

	record, err := svc.RequestCode(user.ID, models.VerificationTypeEmail)
	testutil.AssertNoError(t, err)

	record.ExpiresAt = time.Now().Add(-time.Minute)
	testutil.AssertNoError(t, db.Save(record).Error)

	err = svc.ConfirmCode(user.ID, record.Code)
	testutil.AssertAppError(t, err, "VERIFICATION_EXPIRED")
}

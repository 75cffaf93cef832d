// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"alcancia/internal/recommend"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("yes_no", validateYesNo)
		_ = v.RegisterValidation("yes_no_maybe", validateYesNoMaybe)
		_ = v.RegisterValidation("verification_type", validateVerificationType)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return recommend.IsCategory(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateYesNo(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "yes", "no":
		return true
	}
	return false
}

func validateYesNoMaybe(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "yes", "no", "maybe":
		return true
	}
	return false
}

func validateVerificationType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "email", "sms":
		return true
	}
	return false
}

package validator

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/college/skillbridge/internal/models"
)

// registerCustomRules wires the enum-membership rules used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-role", validateRole)
	mustRegister("is-proficiency", validateProficiency)
	mustRegister("is-batch-status", validateBatchStatus)
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	return models.ValidRole(models.Role(strings.ToUpper(value)))
}

func validateProficiency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProficiencyLevel(strings.ToUpper(value)) {
	case models.ProficiencyBeginner, models.ProficiencyIntermediate, models.ProficiencyAdvanced:
		return true
	}
	return false
}

func validateBatchStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidBatchStatus(models.BatchStatus(strings.ToUpper(value)))
}

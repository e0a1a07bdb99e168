package models

type Role string
type BatchStatus string
type ProficiencyLevel string
type HiringType string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTrainer Role = "TRAINER"
	RoleStudent Role = "STUDENT"

	BatchStatusUpcoming  BatchStatus = "UPCOMING"
	BatchStatusActive    BatchStatus = "ACTIVE"
	BatchStatusCompleted BatchStatus = "COMPLETED"

	ProficiencyBeginner     ProficiencyLevel = "BEGINNER"
	ProficiencyIntermediate ProficiencyLevel = "INTERMEDIATE"
	ProficiencyAdvanced     ProficiencyLevel = "ADVANCED"

	HiringTypeOnCampus  HiringType = "ON_CAMPUS"
	HiringTypeOffCampus HiringType = "OFF_CAMPUS"
	HiringTypeBoth      HiringType = "BOTH"
)

// ValidRole reports whether the role is one of the known account roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleTrainer, RoleStudent:
		return true
	}
	return false
}

// ValidBatchStatus reports whether the status is a known batch lifecycle state.
func ValidBatchStatus(s BatchStatus) bool {
	switch s {
	case BatchStatusUpcoming, BatchStatusActive, BatchStatusCompleted:
		return true
	}
	return false
}

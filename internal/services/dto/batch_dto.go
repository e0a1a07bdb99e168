package dto

type CreateBatchRequest struct {
	Name          string         `json:"name" validate:"required,min=2,max=150"`
	Description   string         `json:"description,omitempty"`
	DurationWeeks int            `json:"duration_weeks" validate:"required,min=1,max=104"`
	Status        string         `json:"status" validate:"required,is-batch-status"`
	Syllabus      *SyllabusInput `json:"syllabus,omitempty"`
	CompanyIDs    []string       `json:"company_ids,omitempty" validate:"dive,uuid"`
	TrainerIDs    []string       `json:"trainer_ids,omitempty" validate:"dive,uuid"`
}

type SyllabusInput struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description,omitempty"`
	Topics      []TopicInput `json:"topics,omitempty" validate:"dive"`
}

type TopicInput struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
}

type UpdateBatchStatusRequest struct {
	Status string `json:"status" validate:"required,is-batch-status"`
}

type AssignTrainerRequest struct {
	TrainerID       string `json:"trainer_id" validate:"required,uuid"`
	RoleDescription string `json:"role_description,omitempty"`
}

type MapCompanyRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

package dto

type CreateStudentRequest struct {
	Name           string       `json:"name" validate:"required,min=2,max=100"`
	Email          string       `json:"email" validate:"required,email"`
	Password       string       `json:"password" validate:"required"`
	RegisterNumber string       `json:"register_number" validate:"required"`
	Department     string       `json:"department" validate:"required"`
	Year           int          `json:"year" validate:"required,min=1,max=6"`
	PhoneNumber    string       `json:"phone_number,omitempty"`
	CGPA           float64      `json:"cgpa,omitempty" validate:"omitempty,min=0,max=10"`
	GithubLink     string       `json:"github_link,omitempty"`
	Skills         []SkillInput `json:"skills,omitempty" validate:"dive"`
}

type SkillInput struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level" validate:"required,is-proficiency"`
}

type AddSkillRequest struct {
	Skills []SkillInput `json:"skills" validate:"required,min=1,dive"`
}

type StudentResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	RegisterNumber string          `json:"register_number"`
	Department     string          `json:"department"`
	Year           int             `json:"year"`
	CGPA           float64         `json:"cgpa"`
	Skills         []SkillResponse `json:"skills,omitempty"`
}

type SkillResponse struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type AssignBatchRequest struct {
	BatchID string `json:"batch_id" validate:"required,uuid"`
}

type BatchHistoryEntry struct {
	BatchID   string `json:"batch_id"`
	BatchName string `json:"batch_name"`
	Status    string `json:"status"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

package dto

type CreateCompanyRequest struct {
	Name       string                   `json:"name" validate:"required,min=2,max=150"`
	Domain     string                   `json:"domain,omitempty"`
	HiringType string                   `json:"hiring_type,omitempty" validate:"omitempty,oneof=ON_CAMPUS OFF_CAMPUS BOTH"`
	Notes      string                   `json:"notes,omitempty"`
	Processes  []HiringProcessStepInput `json:"hiring_processes,omitempty" validate:"dive"`
}

type HiringProcessStepInput struct {
	StepOrder   int    `json:"step_order" validate:"required,min=1"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
}

type CreateTrainerRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	TeacherID      string `json:"teacher_id" validate:"required"`
	Specialization string `json:"specialization,omitempty"`
	Department     string `json:"department,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Bio            string `json:"bio,omitempty"`
}

type FeedbackRequest struct {
	StudentID string `json:"student_id,omitempty" validate:"omitempty,uuid"`
	TrainerID string `json:"trainer_id,omitempty" validate:"omitempty,uuid"`
	BatchID   string `json:"batch_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty" validate:"max=2000"`
}

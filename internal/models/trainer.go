package models

type Trainer struct {
	BaseModel
	Name           string  `gorm:"not null" json:"name"`
	Email          string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string  `gorm:"not null" json:"-"`
	Specialization string  `json:"specialization,omitempty"`
	Department     string  `json:"department"`
	PhoneNumber    string  `json:"phone_number,omitempty"`
	TeacherID      string  `gorm:"uniqueIndex;not null" json:"teacher_id"`
	Bio            string  `gorm:"type:text" json:"bio,omitempty"`
	CollegeID      *string `gorm:"type:uuid" json:"college_id,omitempty"`

	College *College       `gorm:"foreignKey:CollegeID" json:"-"`
	Batches []BatchTrainer `gorm:"foreignKey:TrainerID" json:"-"`
}

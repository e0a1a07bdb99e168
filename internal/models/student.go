package models

import "time"

type Student struct {
	BaseModel
	Name               string  `gorm:"not null" json:"name"`
	Email              string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string  `gorm:"not null" json:"-"`
	Year               int     `json:"year"`
	Department         string  `json:"department"`
	PhoneNumber        string  `json:"phone_number,omitempty"`
	RegisterNumber     string  `gorm:"uniqueIndex;not null" json:"register_number"`
	CGPA               float64 `json:"cgpa"`
	ProblemSolvedCount int     `json:"problem_solved_count"`
	GithubLink         string  `json:"github_link,omitempty"`
	PortfolioLink      string  `json:"portfolio_link,omitempty"`
	ResumeLink         string  `json:"resume_link,omitempty"`
	CollegeID          *string `gorm:"type:uuid" json:"college_id,omitempty"`

	College      *College              `gorm:"foreignKey:CollegeID" json:"-"`
	Skills       []StudentSkill        `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	BatchHistory []StudentBatchHistory `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"batch_history,omitempty"`
}

type Skill struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// StudentSkill links a student to a skill with a proficiency level
// (BEGINNER < INTERMEDIATE < ADVANCED).
type StudentSkill struct {
	BaseModel
	StudentID string           `gorm:"type:uuid;not null;index" json:"student_id"`
	SkillID   string           `gorm:"type:uuid;not null;index" json:"skill_id"`
	Level     ProficiencyLevel `gorm:"type:varchar(20);not null" json:"level"`

	Skill Skill `gorm:"foreignKey:SkillID" json:"skill"`
}

type StudentBatchHistory struct {
	BaseModel
	StudentID string      `gorm:"type:uuid;not null;index" json:"student_id"`
	BatchID   string      `gorm:"type:uuid;not null;index" json:"batch_id"`
	StartDate *time.Time  `json:"start_date,omitempty"`
	EndDate   *time.Time  `json:"end_date,omitempty"`
	Status    BatchStatus `gorm:"type:varchar(20)" json:"status"`

	Batch Batch `gorm:"foreignKey:BatchID" json:"batch"`
}

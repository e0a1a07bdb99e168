package models

// TrainerFeedback is feedback a trainer leaves about a student.
type TrainerFeedback struct {
	BaseModel
	TrainerID string `gorm:"type:uuid;not null;index" json:"trainer_id"`
	StudentID string `gorm:"type:uuid;not null;index" json:"student_id"`
	BatchID   string `gorm:"type:uuid;not null;index" json:"batch_id"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment,omitempty"`

	Trainer Trainer `gorm:"foreignKey:TrainerID" json:"-"`
	Student Student `gorm:"foreignKey:StudentID" json:"-"`
}

// StudentFeedback is feedback a student leaves about a trainer.
type StudentFeedback struct {
	BaseModel
	StudentID string `gorm:"type:uuid;not null;index" json:"student_id"`
	TrainerID string `gorm:"type:uuid;not null;index" json:"trainer_id"`
	BatchID   string `gorm:"type:uuid;not null;index" json:"batch_id"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment,omitempty"`

	Student Student `gorm:"foreignKey:StudentID" json:"-"`
	Trainer Trainer `gorm:"foreignKey:TrainerID" json:"-"`
}

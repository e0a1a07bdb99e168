package models

// Batch is a cohort with a fixed syllabus, mapped companies and trainers.
type Batch struct {
	BaseModel
	Name          string      `gorm:"not null" json:"name"`
	Description   string      `gorm:"type:text" json:"description"`
	DurationWeeks int         `json:"duration_weeks"`
	Status        BatchStatus `gorm:"type:varchar(20);not null" json:"status"`
	SyllabusID    *string     `gorm:"type:uuid" json:"syllabus_id,omitempty"`

	Syllabus        *Syllabus             `gorm:"foreignKey:SyllabusID" json:"syllabus,omitempty"`
	CompanyMappings []BatchCompanyMapping `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"company_mappings,omitempty"`
	Trainers        []BatchTrainer        `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE" json:"trainers,omitempty"`
}

type Syllabus struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Topics []SyllabusTopic `gorm:"foreignKey:SyllabusID;constraint:OnDelete:CASCADE" json:"topics,omitempty"`
}

// SyllabusTopic names a syllabus subunit. Technologies is a free-text
// comma-separated list ("java, spring, hibernate").
type SyllabusTopic struct {
	BaseModel
	SyllabusID   string `gorm:"type:uuid;not null;index" json:"syllabus_id"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	Technologies string `gorm:"type:text" json:"technologies"`
}

type BatchTrainer struct {
	BaseModel
	BatchID         string `gorm:"type:uuid;not null;index" json:"batch_id"`
	TrainerID       string `gorm:"type:uuid;not null;index" json:"trainer_id"`
	RoleDescription string `json:"role_description,omitempty"`

	Trainer Trainer `gorm:"foreignKey:TrainerID" json:"trainer"`
}

type BatchCompanyMapping struct {
	BaseModel
	BatchID   string `gorm:"type:uuid;not null;index" json:"batch_id"`
	CompanyID string `gorm:"type:uuid;not null;index" json:"company_id"`

	Company Company `gorm:"foreignKey:CompanyID" json:"company"`
}

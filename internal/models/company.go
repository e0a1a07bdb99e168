package models

type Company struct {
	BaseModel
	Name       string      `gorm:"not null" json:"name"`
	Domain     string      `json:"domain"`
	HiringType *HiringType `gorm:"type:varchar(20)" json:"hiring_type,omitempty"`
	Notes      string      `gorm:"type:text" json:"notes,omitempty"`

	HiringProcesses []CompanyHiringProcess `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"hiring_processes,omitempty"`
}

// CompanyHiringProcess is one ordered step of a company's hiring pipeline.
type CompanyHiringProcess struct {
	BaseModel
	CompanyID   string `gorm:"type:uuid;not null;index" json:"company_id"`
	StepOrder   int    `gorm:"not null" json:"step_order"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

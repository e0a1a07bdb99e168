package models

type College struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Domain       string `gorm:"uniqueIndex;not null" json:"domain"`
	WebsiteURL   string `json:"website_url,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

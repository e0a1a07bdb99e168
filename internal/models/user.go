package models

import "time"

// User is the credential record behind every account. Email is stored
// lower-cased; the unique index closes the check-then-act race between
// concurrent registrations.
type User struct {
	BaseModel
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Role         Role    `gorm:"type:varchar(20);not null" json:"role"`
	CollegeID    *string `gorm:"type:uuid" json:"college_id,omitempty"`

	College       *College       `gorm:"foreignKey:CollegeID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// RefreshToken is a persisted opaque token. At most one live token exists per
// user; rotation replaces the row inside a transaction.
type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

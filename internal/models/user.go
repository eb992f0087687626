package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is the sole identity record. Email is immutable and unique; the
// unique index is what serializes racing signups. PasswordHash is nullable:
// an account created without a password exists but cannot log in.
type User struct {
	BaseModel
	Firstname    string  `gorm:"type:text;not null"`
	Lastname     string  `gorm:"type:text;not null"`
	Email        string  `gorm:"type:text;uniqueIndex;not null"`
	PasswordHash *string `gorm:"column:password;type:text"`

	Gender      *Gender `gorm:"type:varchar(20)"`
	DateOfBirth *time.Time

	// country_code + 10-digit national number, stored concatenated
	Phone string `gorm:"type:text;not null"`

	College               *string `gorm:"type:text"`
	CurrentLocation       *string `gorm:"type:text"`
	HomeTown              *string `gorm:"type:text"`
	Country               *string `gorm:"type:text"`
	PreferredWorkLocation *string `gorm:"type:text"`
	PreferredWorkMode     *string `gorm:"type:text"`

	CareerPreferenceInternships bool `gorm:"default:false"`
	CareerPreferenceJobs        bool `gorm:"default:false"`

	WorkExperience *WorkExperience `gorm:"type:varchar(20)"`

	ResumeURL *string `gorm:"type:text"`

	// Relations
	Resume *Resume `gorm:"foreignKey:UserID"`
}

// Resume is the metadata record for an uploaded résumé. The file itself
// lives in the storage backend under StorageKey; the user-supplied filename
// is metadata only and never becomes part of a path.
type Resume struct {
	BaseModel
	UserID       uint   `gorm:"not null;index"`
	StorageKey   string `gorm:"type:text;not null;uniqueIndex"`
	OriginalName string `gorm:"column:original_name;type:text"`
	MimeType     string `gorm:"type:text"`
	Size         int64
	URL          string         `gorm:"type:text"`
	Metadata     datatypes.JSON `gorm:"type:jsonb"`
}

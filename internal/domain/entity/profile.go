package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the personal data shared by every role. It lives and dies with its User.
type Profile struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	FirstName      string     `gorm:"type:varchar(255);not null;index" json:"first_name"`
	MiddleName     string     `gorm:"type:varchar(255)" json:"middle_name,omitempty"`
	LastName       string     `gorm:"type:varchar(255);not null;index" json:"last_name"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender         string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	PhoneNumber    string     `gorm:"type:varchar(50)" json:"phone_number,omitempty"`
	ContactEmail   string     `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	ProfilePicture string     `gorm:"type:varchar(255)" json:"profile_picture,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}

// BeforeSave stores names capitalised ("jOHN" -> "John").
func (p *Profile) BeforeSave(tx *gorm.DB) error {
	p.FirstName = CapitalizeName(p.FirstName)
	p.MiddleName = CapitalizeName(p.MiddleName)
	p.LastName = CapitalizeName(p.LastName)
	return nil
}

// FullName joins first and last name.
func (p *Profile) FullName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// CapitalizeName lowercases s and upper-cases its first letter.
func CapitalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

package models

import (
	"time"
)

// Area represents a delivery zone with localized names and up to two
// preferred resident languages
type Area struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	NameEnglish        string    `gorm:"type:varchar(255)" json:"name_english"`
	NameHebrew         string    `gorm:"type:varchar(255)" json:"name_hebrew"`
	NameArabic         string    `gorm:"type:varchar(255)" json:"name_arabic"`
	PreferredLanguage1 string    `gorm:"type:varchar(10)" json:"preferred_language_1" validate:"required_without=PreferredLanguage2"`
	PreferredLanguage2 string    `gorm:"type:varchar(10)" json:"preferred_language_2" validate:"omitempty,nefield=PreferredLanguage1"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Area) TableName() string {
	return "areas"
}

// Customer represents a delivery recipient owned by a user
type Customer struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"type:varchar(64);index;not null" json:"user_id"`
	Name              string    `gorm:"type:varchar(255)" json:"name"`
	Phone             string    `gorm:"type:varchar(50)" json:"phone"`
	Phone2            string    `gorm:"type:varchar(50)" json:"phone2"`
	AreaID            uint      `gorm:"index" json:"area_id"`
	Area              string    `gorm:"type:varchar(255)" json:"area"` // plain pre-localized label
	PackagePrice      string    `gorm:"type:varchar(50)" json:"package_price"`
	PackageID         string    `gorm:"type:varchar(100)" json:"package_id"`
	BusinessName      string    `gorm:"type:varchar(255)" json:"business_name"`
	HasReturn         bool      `gorm:"default:false" json:"has_return"`
	PreferredLanguage string    `gorm:"type:varchar(10)" json:"preferred_language"`
	Language          string    `gorm:"type:varchar(10)" json:"language"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// Template represents a message skeleton with up to three language variants
type Template struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"type:varchar(64);index" json:"user_id"`
	Name            string    `gorm:"type:varchar(255)" json:"name"`
	TemplateEnglish string    `gorm:"type:text" json:"template_english"`
	TemplateHebrew  string    `gorm:"type:text" json:"template_hebrew"`
	TemplateArabic  string    `gorm:"type:text" json:"template_arabic"`
	IsDefault       bool      `gorm:"default:false" json:"is_default"`
	IsFavorite      bool      `gorm:"default:false" json:"is_favorite"`
	IsGlobal        bool      `gorm:"default:false;index" json:"is_global"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Template) TableName() string {
	return "templates"
}

// ETA is the arrival estimate one user set for one area
type ETA struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_etas_user_area" json:"user_id"`
	AreaID    uint      `gorm:"not null;uniqueIndex:idx_etas_user_area" json:"area_id"`
	ETA       string    `gorm:"column:eta;type:varchar(20)" json:"eta"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ETA) TableName() string {
	return "etas"
}

func (e ETA) String() string {
	return e.ETA
}

// SendProcess records a batch handed to the background send service
type SendProcess struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProcessID     string    `gorm:"type:varchar(255);uniqueIndex" json:"process_id"`
	UserID        string    `gorm:"type:varchar(64);index" json:"user_id"`
	TemplateID    uint      `json:"template_id"`
	SessionID     string    `gorm:"type:varchar(255)" json:"session_id"`
	CustomerCount int       `json:"customer_count"`
	MessageCount  int       `json:"message_count"`
	DelaySeconds  int       `json:"delay_seconds"`
	Estimate      string    `gorm:"type:varchar(100)" json:"estimate"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SendProcess) TableName() string {
	return "send_processes"
}

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&Area{},
		&Customer{},
		&Template{},
		&ETA{},
		&SendProcess{},
	}
}

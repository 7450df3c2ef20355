package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Audience selects who a notification is meant for.
type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceAdmins   Audience = "admins"
	AudienceStudents Audience = "students"
)

// Notification is an announcement shown in the apps.
type Notification struct {
	Base
	Title    string   `json:"title" gorm:"size:255;not null"`
	Message  string   `json:"message" gorm:"type:text;not null"`
	Audience Audience `json:"audience" gorm:"type:varchar(20);not null;default:'all'"`
	Status   Status   `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
}

// Banner is a promotional image on the storefront.
type Banner struct {
	Base
	Title    string `json:"title" gorm:"size:255;not null"`
	Image    string `json:"image" gorm:"size:500"`
	LinkURL  string `json:"link_url" gorm:"size:500"`
	Position int    `json:"position" gorm:"not null;default:0"`
	Status   Status `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
}

// SeoURL carries search engine metadata for a storefront path.
type SeoURL struct {
	Base
	Path            string `json:"path" gorm:"uniqueIndex:uniq_path;size:255;not null"`
	Slug            string `json:"slug" gorm:"size:255;index"`
	MetaTitle       string `json:"meta_title" gorm:"size:255;not null"`
	MetaDescription string `json:"meta_description" gorm:"type:text"`
	Status          Status `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName keeps the table name readable.
func (SeoURL) TableName() string { return "seo_urls" }

// Series is a test series made of questions and instructions.
type Series struct {
	Base
	Name        string     `json:"name" gorm:"uniqueIndex:uniq_name;size:255;not null"`
	Description string     `json:"description" gorm:"type:text"`
	CourseID    *uuid.UUID `json:"course_id" gorm:"type:char(36);index"`
	Status      Status     `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Course *CourseRef `json:"course" gorm:"foreignKey:CourseID;-:migration"`
}

// TableName avoids the default pluralisation of series.
func (Series) TableName() string { return "series" }

// Instruction is a rule shown before a test series starts.
type Instruction struct {
	Base
	Title    string    `json:"title" gorm:"size:255;not null"`
	Content  string    `json:"content" gorm:"type:text;not null"`
	SeriesID uuid.UUID `json:"series_id" gorm:"type:char(36);not null;index"`
	Status   Status    `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Series *SeriesRef `json:"series" gorm:"foreignKey:SeriesID;-:migration"`
}

// Question is a multiple choice question of a test series.
type Question struct {
	Base
	SeriesID      uuid.UUID  `json:"series_id" gorm:"type:char(36);not null;index"`
	Text          string     `json:"text" gorm:"type:text;not null"`
	Options       StringList `json:"options" gorm:"type:json;not null"`
	CorrectOption int        `json:"correct_option" gorm:"not null"`
	Marks         int        `json:"marks" gorm:"not null;default:1"`
	Status        Status     `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Series *SeriesRef `json:"series" gorm:"foreignKey:SeriesID;-:migration"`
}

// StringList is a list of strings stored as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	return string(b), err
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported options value %T", src)
	}
}

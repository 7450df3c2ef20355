package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups courses, books and e-books.
type Category struct {
	Base
	Name        string `json:"name" gorm:"uniqueIndex:uniq_name;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	Image       string `json:"image" gorm:"size:500"`
	Status      Status `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
}

// Course is a sellable learning program.
type Course struct {
	Base
	Title         string           `json:"title" gorm:"uniqueIndex:uniq_title;size:255;not null"`
	Slug          string           `json:"slug" gorm:"size:255;index"`
	Description   string           `json:"description" gorm:"type:text"`
	CategoryID    uuid.UUID        `json:"category_id" gorm:"type:char(36);not null;index"`
	Price         decimal.Decimal  `json:"price" gorm:"type:decimal(12,2);not null;default:0"`
	DiscountPrice *decimal.Decimal `json:"discount_price" gorm:"type:decimal(12,2)"`
	Language      string           `json:"language" gorm:"size:50"`
	Thumbnail     string           `json:"thumbnail" gorm:"size:500"`
	Status        Status           `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Category *CategoryRef `json:"category" gorm:"foreignKey:CategoryID;-:migration"`
}

// Book is a physical book sold through the store.
type Book struct {
	Base
	Title      string          `json:"title" gorm:"size:255;not null;index"`
	Author     string          `json:"author" gorm:"size:255;not null"`
	CategoryID uuid.UUID       `json:"category_id" gorm:"type:char(36);not null;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null;default:0"`
	Stock      int             `json:"stock" gorm:"not null;default:0"`
	Image      string          `json:"image" gorm:"size:500"`
	Status     Status          `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Category *CategoryRef `json:"category" gorm:"foreignKey:CategoryID;-:migration"`
}

// EBook is a downloadable book.
type EBook struct {
	Base
	Title      string          `json:"title" gorm:"size:255;not null;index"`
	Author     string          `json:"author" gorm:"size:255;not null"`
	CategoryID uuid.UUID       `json:"category_id" gorm:"type:char(36);not null;index"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null;default:0"`
	File       string          `json:"file" gorm:"size:500"`
	Status     Status          `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Category *CategoryRef `json:"category" gorm:"foreignKey:CategoryID;-:migration"`
}

// TableName keeps the table name readable.
func (EBook) TableName() string { return "ebooks" }

// Topic belongs to a course.
type Topic struct {
	Base
	Name     string    `json:"name" gorm:"size:150;not null"`
	CourseID uuid.UUID `json:"course_id" gorm:"type:char(36);not null;index"`
	Status   Status    `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Course *CourseRef `json:"course" gorm:"foreignKey:CourseID;-:migration"`
}

// Section is an ordered chapter of a course.
type Section struct {
	Base
	Name     string    `json:"name" gorm:"uniqueIndex:uniq_name;size:150;not null"`
	CourseID uuid.UUID `json:"course_id" gorm:"type:char(36);not null;index"`
	Position int       `json:"position" gorm:"not null;default:0"`
	Status   Status    `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Course *CourseRef `json:"course" gorm:"foreignKey:CourseID;-:migration"`
}

// SubTopic belongs to a topic.
type SubTopic struct {
	Base
	Name    string    `json:"name" gorm:"size:150;not null"`
	TopicID uuid.UUID `json:"topic_id" gorm:"type:char(36);not null;index"`
	Status  Status    `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Topic *TopicRef `json:"topic" gorm:"foreignKey:TopicID;-:migration"`
}

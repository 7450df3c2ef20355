package model

import (
	"time"

	"github.com/google/uuid"
)

// Class is a scheduled live session of a course.
type Class struct {
	Base
	Title      string    `json:"title" gorm:"size:255;not null"`
	CourseID   uuid.UUID `json:"course_id" gorm:"type:char(36);not null;index"`
	MeetingURL string    `json:"meeting_url" gorm:"size:500;not null"`
	StartDate  time.Time `json:"start_date" gorm:"not null;index"`
	EndDate    time.Time `json:"end_date" gorm:"not null;index"`
	Status     Status    `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	Course *CourseRef `json:"course" gorm:"foreignKey:CourseID;-:migration"`

	IsLive bool `json:"is_live" gorm:"-"`
}

// LiveAt reports whether t falls inside the class window, bounds included.
func (c Class) LiveAt(t time.Time) bool {
	return !t.Before(c.StartDate) && !t.After(c.EndDate)
}

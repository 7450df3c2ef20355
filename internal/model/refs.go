package model

import "github.com/google/uuid"

// Populated references carry only the columns a client needs to label the parent.
// The Summary lists are the matching select projections.
var (
	CategorySummary = []string{"id", "name"}
	CourseSummary   = []string{"id", "title"}
	TopicSummary    = []string{"id", "name"}
	SeriesSummary   = []string{"id", "name"}
	UserSummary     = []string{"id", "name", "email"}
)

// CategoryRef is a populated category.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (CategoryRef) TableName() string { return "categories" }

// CourseRef is a populated course.
type CourseRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

func (CourseRef) TableName() string { return "courses" }

// TopicRef is a populated topic.
type TopicRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (TopicRef) TableName() string { return "topics" }

// SeriesRef is a populated series.
type SeriesRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (SeriesRef) TableName() string { return "series" }

// UserRef is a populated dashboard user.
type UserRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (UserRef) TableName() string { return "users" }

package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"learnhub/internal/model"
)

// CreateCategoryRequest represents a create category request.
type CreateCategoryRequest struct {
	Name        string       `json:"name" form:"name" validate:"required,notblank,min=2,max=100"`
	Description string       `json:"description" form:"description"`
	Image       string       `json:"image" form:"image"`
	Status      model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateCategoryRequest) Model(files map[string]string) *model.Category {
	return &model.Category{
		Name:        r.Name,
		Description: r.Description,
		Image:       fileOr(r.Image, files, "image"),
		Status:      orActive(r.Status),
	}
}

// UpdateCategoryRequest represents an update category request.
type UpdateCategoryRequest struct {
	Name        *string       `json:"name" form:"name" validate:"omitempty,notblank,min=2,max=100"`
	Description *string       `json:"description" form:"description"`
	Image       *string       `json:"image" form:"image"`
	Status      *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateCategoryRequest) Changes(files map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "name", r.Name)
	set(changes, "description", r.Description)
	setFile(changes, "image", r.Image, files, "image")
	set(changes, "status", r.Status)
	return changes
}

// CreateCourseRequest represents a create course request.
type CreateCourseRequest struct {
	Title         string           `json:"title" form:"title" validate:"required,notblank,max=255"`
	Description   string           `json:"description" form:"description"`
	CategoryID    uuid.UUID        `json:"category_id" form:"category_id" validate:"required"`
	Price         *decimal.Decimal `json:"price" form:"price" validate:"required,gte=0"`
	DiscountPrice *decimal.Decimal `json:"discount_price" form:"discount_price" validate:"omitempty,gte=0"`
	Language      string           `json:"language" form:"language" validate:"max=50"`
	Thumbnail     string           `json:"thumbnail" form:"thumbnail"`
	Status        model.Status     `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateCourseRequest) Model(files map[string]string) *model.Course {
	return &model.Course{
		Title:         r.Title,
		Description:   r.Description,
		CategoryID:    r.CategoryID,
		Price:         deref(r.Price),
		DiscountPrice: r.DiscountPrice,
		Language:      r.Language,
		Thumbnail:     fileOr(r.Thumbnail, files, "thumbnail"),
		Status:        orActive(r.Status),
	}
}

// UpdateCourseRequest represents an update course request.
type UpdateCourseRequest struct {
	Title         *string          `json:"title" form:"title" validate:"omitempty,notblank,max=255"`
	Description   *string          `json:"description" form:"description"`
	CategoryID    *uuid.UUID       `json:"category_id" form:"category_id"`
	Price         *decimal.Decimal `json:"price" form:"price" validate:"omitempty,gte=0"`
	DiscountPrice *decimal.Decimal `json:"discount_price" form:"discount_price" validate:"omitempty,gte=0"`
	Language      *string          `json:"language" form:"language" validate:"omitempty,max=50"`
	Thumbnail     *string          `json:"thumbnail" form:"thumbnail"`
	Status        *model.Status    `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateCourseRequest) Changes(files map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "title", r.Title)
	set(changes, "description", r.Description)
	set(changes, "category_id", r.CategoryID)
	set(changes, "price", r.Price)
	set(changes, "discount_price", r.DiscountPrice)
	set(changes, "language", r.Language)
	setFile(changes, "thumbnail", r.Thumbnail, files, "thumbnail")
	set(changes, "status", r.Status)
	return changes
}

// CreateBookRequest represents a create book request.
type CreateBookRequest struct {
	Title      string           `json:"title" form:"title" validate:"required,notblank,max=255"`
	Author     string           `json:"author" form:"author" validate:"required,notblank,max=255"`
	CategoryID uuid.UUID        `json:"category_id" form:"category_id" validate:"required"`
	Price      *decimal.Decimal `json:"price" form:"price" validate:"required,gte=0"`
	Stock      int              `json:"stock" form:"stock" validate:"gte=0"`
	Image      string           `json:"image" form:"image"`
	Status     model.Status     `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateBookRequest) Model(files map[string]string) *model.Book {
	return &model.Book{
		Title:      r.Title,
		Author:     r.Author,
		CategoryID: r.CategoryID,
		Price:      deref(r.Price),
		Stock:      r.Stock,
		Image:      fileOr(r.Image, files, "image"),
		Status:     orActive(r.Status),
	}
}

// UpdateBookRequest represents an update book request.
type UpdateBookRequest struct {
	Title      *string          `json:"title" form:"title" validate:"omitempty,notblank,max=255"`
	Author     *string          `json:"author" form:"author" validate:"omitempty,notblank,max=255"`
	CategoryID *uuid.UUID       `json:"category_id" form:"category_id"`
	Price      *decimal.Decimal `json:"price" form:"price" validate:"omitempty,gte=0"`
	Stock      *int             `json:"stock" form:"stock" validate:"omitempty,gte=0"`
	Image      *string          `json:"image" form:"image"`
	Status     *model.Status    `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateBookRequest) Changes(files map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "title", r.Title)
	set(changes, "author", r.Author)
	set(changes, "category_id", r.CategoryID)
	set(changes, "price", r.Price)
	set(changes, "stock", r.Stock)
	setFile(changes, "image", r.Image, files, "image")
	set(changes, "status", r.Status)
	return changes
}

// CreateEBookRequest represents a create e-book request.
type CreateEBookRequest struct {
	Title      string           `json:"title" form:"title" validate:"required,notblank,max=255"`
	Author     string           `json:"author" form:"author" validate:"required,notblank,max=255"`
	CategoryID uuid.UUID        `json:"category_id" form:"category_id" validate:"required"`
	Price      *decimal.Decimal `json:"price" form:"price" validate:"required,gte=0"`
	File       string           `json:"file" form:"file"`
	Status     model.Status     `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateEBookRequest) Model(files map[string]string) *model.EBook {
	return &model.EBook{
		Title:      r.Title,
		Author:     r.Author,
		CategoryID: r.CategoryID,
		Price:      deref(r.Price),
		File:       fileOr(r.File, files, "file"),
		Status:     orActive(r.Status),
	}
}

// UpdateEBookRequest represents an update e-book request.
type UpdateEBookRequest struct {
	Title      *string          `json:"title" form:"title" validate:"omitempty,notblank,max=255"`
	Author     *string          `json:"author" form:"author" validate:"omitempty,notblank,max=255"`
	CategoryID *uuid.UUID       `json:"category_id" form:"category_id"`
	Price      *decimal.Decimal `json:"price" form:"price" validate:"omitempty,gte=0"`
	File       *string          `json:"file" form:"file"`
	Status     *model.Status    `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateEBookRequest) Changes(files map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "title", r.Title)
	set(changes, "author", r.Author)
	set(changes, "category_id", r.CategoryID)
	set(changes, "price", r.Price)
	setFile(changes, "file", r.File, files, "file")
	set(changes, "status", r.Status)
	return changes
}

// CreateTopicRequest represents a create topic request.
type CreateTopicRequest struct {
	Name     string       `json:"name" form:"name" validate:"required,notblank,max=150"`
	CourseID uuid.UUID    `json:"course_id" form:"course_id" validate:"required"`
	Status   model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateTopicRequest) Model(map[string]string) *model.Topic {
	return &model.Topic{Name: r.Name, CourseID: r.CourseID, Status: orActive(r.Status)}
}

// UpdateTopicRequest represents an update topic request.
type UpdateTopicRequest struct {
	Name     *string       `json:"name" form:"name" validate:"omitempty,notblank,max=150"`
	CourseID *uuid.UUID    `json:"course_id" form:"course_id"`
	Status   *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateTopicRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "name", r.Name)
	set(changes, "course_id", r.CourseID)
	set(changes, "status", r.Status)
	return changes
}

// CreateSectionRequest represents a create section request.
type CreateSectionRequest struct {
	Name     string       `json:"name" form:"name" validate:"required,notblank,max=150"`
	CourseID uuid.UUID    `json:"course_id" form:"course_id" validate:"required"`
	Position int          `json:"position" form:"position" validate:"gte=0"`
	Status   model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateSectionRequest) Model(map[string]string) *model.Section {
	return &model.Section{Name: r.Name, CourseID: r.CourseID, Position: r.Position, Status: orActive(r.Status)}
}

// UpdateSectionRequest represents an update section request.
type UpdateSectionRequest struct {
	Name     *string       `json:"name" form:"name" validate:"omitempty,notblank,max=150"`
	CourseID *uuid.UUID    `json:"course_id" form:"course_id"`
	Position *int          `json:"position" form:"position" validate:"omitempty,gte=0"`
	Status   *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateSectionRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "name", r.Name)
	set(changes, "course_id", r.CourseID)
	set(changes, "position", r.Position)
	set(changes, "status", r.Status)
	return changes
}

// CreateSubTopicRequest represents a create subtopic request.
type CreateSubTopicRequest struct {
	Name    string       `json:"name" form:"name" validate:"required,notblank,max=150"`
	TopicID uuid.UUID    `json:"topic_id" form:"topic_id" validate:"required"`
	Status  model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateSubTopicRequest) Model(map[string]string) *model.SubTopic {
	return &model.SubTopic{Name: r.Name, TopicID: r.TopicID, Status: orActive(r.Status)}
}

// UpdateSubTopicRequest represents an update subtopic request.
type UpdateSubTopicRequest struct {
	Name    *string       `json:"name" form:"name" validate:"omitempty,notblank,max=150"`
	TopicID *uuid.UUID    `json:"topic_id" form:"topic_id"`
	Status  *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateSubTopicRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "name", r.Name)
	set(changes, "topic_id", r.TopicID)
	set(changes, "status", r.Status)
	return changes
}

// CreateClassRequest represents a create live class request.
type CreateClassRequest struct {
	Title      string       `json:"title" form:"title" validate:"required,notblank,max=255"`
	CourseID   uuid.UUID    `json:"course_id" form:"course_id" validate:"required"`
	MeetingURL string       `json:"meeting_url" form:"meeting_url" validate:"required,url"`
	StartDate  time.Time    `json:"start_date" form:"start_date" validate:"required"`
	EndDate    time.Time    `json:"end_date" form:"end_date" validate:"required,gtfield=StartDate"`
	Status     model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateClassRequest) Model(map[string]string) *model.Class {
	return &model.Class{
		Title:      r.Title,
		CourseID:   r.CourseID,
		MeetingURL: r.MeetingURL,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     orActive(r.Status),
	}
}

// UpdateClassRequest represents an update live class request.
type UpdateClassRequest struct {
	Title      *string       `json:"title" form:"title" validate:"omitempty,notblank,max=255"`
	CourseID   *uuid.UUID    `json:"course_id" form:"course_id"`
	MeetingURL *string       `json:"meeting_url" form:"meeting_url" validate:"omitempty,url"`
	StartDate  *time.Time    `json:"start_date" form:"start_date"`
	EndDate    *time.Time    `json:"end_date" form:"end_date"`
	Status     *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateClassRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "title", r.Title)
	set(changes, "course_id", r.CourseID)
	set(changes, "meeting_url", r.MeetingURL)
	set(changes, "start_date", r.StartDate)
	set(changes, "end_date", r.EndDate)
	set(changes, "status", r.Status)
	return changes
}

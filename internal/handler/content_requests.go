package handler

import (
	"github.com/google/uuid"

	"learnhub/internal/model"
)

// CreateNotificationRequest represents a create notification request.
type CreateNotificationRequest struct {
	Title    string         `json:"title" form:"title" validate:"required,notblank,max=255"`
	Message  string         `json:"message" form:"message" validate:"required,notblank"`
	Audience model.Audience `json:"audience" form:"audience" validate:"omitempty,oneof=all admins students"`
	Status   model.Status   `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateNotificationRequest) Model(map[string]string) *model.Notification {
	audience := r.Audience
	if audience == "" {
		audience = model.AudienceAll
	}
	return &model.Notification{
		Title:    r.Title,
		Message:  r.Message,
		Audience: audience,
		Status:   orActive(r.Status),
	}
}

// UpdateNotificationRequest represents an update notification request.
type UpdateNotificationRequest struct {
	Title    *string         `json:"title" form:"title" validate:"omitempty,notblank,max=255"`
	Message  *string         `json:"message" form:"message" validate:"omitempty,notblank"`
	Audience *model.Audience `json:"audience" form:"audience" validate:"omitempty,oneof=all admins students"`
	Status   *model.Status   `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateNotificationRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "title", r.Title)
	set(changes, "message", r.Message)
	set(changes, "audience", r.Audience)
	set(changes, "status", r.Status)
	return changes
}

// CreateBannerRequest represents a create banner request.
type CreateBannerRequest struct {
	Title    string       `json:"title" form:"title" validate:"required,notblank,max=255"`
	Image    string       `json:"image" form:"image"`
	LinkURL  string       `json:"link_url" form:"link_url" validate:"omitempty,url"`
	Position int          `json:"position" form:"position" validate:"gte=0"`
	Status   model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateBannerRequest) Model(files map[string]string) *model.Banner {
	return &model.Banner{
		Title:    r.Title,
		Image:    fileOr(r.Image, files, "image"),
		LinkURL:  r.LinkURL,
		Position: r.Position,
		Status:   orActive(r.Status),
	}
}

// UpdateBannerRequest represents an update banner request.
type UpdateBannerRequest struct {
	Title    *string       `json:"title" form:"title" validate:"omitempty,notblank,max=255"`
	Image    *string       `json:"image" form:"image"`
	LinkURL  *string       `json:"link_url" form:"link_url" validate:"omitempty,url"`
	Position *int          `json:"position" form:"position" validate:"omitempty,gte=0"`
	Status   *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateBannerRequest) Changes(files map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "title", r.Title)
	setFile(changes, "image", r.Image, files, "image")
	set(changes, "link_url", r.LinkURL)
	set(changes, "position", r.Position)
	set(changes, "status", r.Status)
	return changes
}

// CreateSeoURLRequest represents a create SEO URL request.
type CreateSeoURLRequest struct {
	Path            string       `json:"path" form:"path" validate:"required,startswith=/,max=255"`
	MetaTitle       string       `json:"meta_title" form:"meta_title" validate:"required,notblank,max=255"`
	MetaDescription string       `json:"meta_description" form:"meta_description"`
	Status          model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateSeoURLRequest) Model(map[string]string) *model.SeoURL {
	return &model.SeoURL{
		Path:            r.Path,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		Status:          orActive(r.Status),
	}
}

// UpdateSeoURLRequest represents an update SEO URL request.
type UpdateSeoURLRequest struct {
	Path            *string       `json:"path" form:"path" validate:"omitempty,startswith=/,max=255"`
	MetaTitle       *string       `json:"meta_title" form:"meta_title" validate:"omitempty,notblank,max=255"`
	MetaDescription *string       `json:"meta_description" form:"meta_description"`
	Status          *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateSeoURLRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "path", r.Path)
	set(changes, "meta_title", r.MetaTitle)
	set(changes, "meta_description", r.MetaDescription)
	set(changes, "status", r.Status)
	return changes
}

// CreateSeriesRequest represents a create test series request.
type CreateSeriesRequest struct {
	Name        string       `json:"name" form:"name" validate:"required,notblank,max=255"`
	Description string       `json:"description" form:"description"`
	CourseID    *uuid.UUID   `json:"course_id" form:"course_id"`
	Status      model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateSeriesRequest) Model(map[string]string) *model.Series {
	return &model.Series{
		Name:        r.Name,
		Description: r.Description,
		CourseID:    r.CourseID,
		Status:      orActive(r.Status),
	}
}

// UpdateSeriesRequest represents an update test series request.
type UpdateSeriesRequest struct {
	Name        *string       `json:"name" form:"name" validate:"omitempty,notblank,max=255"`
	Description *string       `json:"description" form:"description"`
	CourseID    *uuid.UUID    `json:"course_id" form:"course_id"`
	Status      *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateSeriesRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "name", r.Name)
	set(changes, "description", r.Description)
	set(changes, "course_id", r.CourseID)
	set(changes, "status", r.Status)
	return changes
}

// CreateInstructionRequest represents a create instruction request.
type CreateInstructionRequest struct {
	Title    string       `json:"title" form:"title" validate:"required,notblank,max=255"`
	Content  string       `json:"content" form:"content" validate:"required,notblank"`
	SeriesID uuid.UUID    `json:"series_id" form:"series_id" validate:"required"`
	Status   model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateInstructionRequest) Model(map[string]string) *model.Instruction {
	return &model.Instruction{
		Title:    r.Title,
		Content:  r.Content,
		SeriesID: r.SeriesID,
		Status:   orActive(r.Status),
	}
}

// UpdateInstructionRequest represents an update instruction request.
type UpdateInstructionRequest struct {
	Title    *string       `json:"title" form:"title" validate:"omitempty,notblank,max=255"`
	Content  *string       `json:"content" form:"content" validate:"omitempty,notblank"`
	SeriesID *uuid.UUID    `json:"series_id" form:"series_id"`
	Status   *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateInstructionRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "title", r.Title)
	set(changes, "content", r.Content)
	set(changes, "series_id", r.SeriesID)
	set(changes, "status", r.Status)
	return changes
}

// CreateQuestionRequest represents a create question request.
type CreateQuestionRequest struct {
	SeriesID      uuid.UUID    `json:"series_id" form:"series_id" validate:"required"`
	Text          string       `json:"text" form:"text" validate:"required,notblank"`
	Options       []string     `json:"options" form:"options" validate:"required,min=2,max=6,dive,notblank"`
	CorrectOption *int         `json:"correct_option" form:"correct_option" validate:"required"`
	Marks         int          `json:"marks" form:"marks" validate:"omitempty,gt=0"`
	Status        model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateQuestionRequest) Model(map[string]string) *model.Question {
	marks := r.Marks
	if marks == 0 {
		marks = 1
	}
	return &model.Question{
		SeriesID:      r.SeriesID,
		Text:          r.Text,
		Options:       model.StringList(r.Options),
		CorrectOption: deref(r.CorrectOption),
		Marks:         marks,
		Status:        orActive(r.Status),
	}
}

// UpdateQuestionRequest represents an update question request.
// options and correct_option are replaced together.
type UpdateQuestionRequest struct {
	SeriesID      *uuid.UUID    `json:"series_id" form:"series_id"`
	Text          *string       `json:"text" form:"text" validate:"omitempty,notblank"`
	Options       []string      `json:"options" form:"options" validate:"omitempty,min=2,max=6,dive,notblank"`
	CorrectOption *int          `json:"correct_option" form:"correct_option" validate:"required_with=Options"`
	Marks         *int          `json:"marks" form:"marks" validate:"omitempty,gt=0"`
	Status        *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateQuestionRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "series_id", r.SeriesID)
	set(changes, "text", r.Text)
	if r.Options != nil {
		changes["options"] = model.StringList(r.Options)
	}
	set(changes, "correct_option", r.CorrectOption)
	set(changes, "marks", r.Marks)
	set(changes, "status", r.Status)
	return changes
}

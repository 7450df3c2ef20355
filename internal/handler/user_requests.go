package handler

import "learnhub/internal/model"

// CreateUserRequest represents a create dashboard user request.
type CreateUserRequest struct {
	Name     string       `json:"name" form:"name" validate:"required,notblank,max=255"`
	Email    string       `json:"email" form:"email" validate:"required,email,max=255"`
	Password string       `json:"password" form:"password" validate:"required,min=6,max=72"`
	Role     model.Role   `json:"role" form:"role" validate:"required,oneof=superadmin admin data-entry"`
	Status   model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

// Model carries the plaintext password; the user hooks hash it before insert.
func (r *CreateUserRequest) Model(map[string]string) *model.User {
	return &model.User{
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.Password,
		Role:         r.Role,
		Status:       orActive(r.Status),
	}
}

// UpdateUserRequest represents an update dashboard user request.
type UpdateUserRequest struct {
	Name     *string       `json:"name" form:"name" validate:"omitempty,notblank,max=255"`
	Email    *string       `json:"email" form:"email" validate:"omitempty,email,max=255"`
	Password *string       `json:"password" form:"password" validate:"omitempty,min=6,max=72"`
	Role     *model.Role   `json:"role" form:"role" validate:"omitempty,oneof=superadmin admin data-entry"`
	Status   *model.Status `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateUserRequest) Changes(map[string]string) map[string]interface{} {
	changes := map[string]interface{}{}
	set(changes, "name", r.Name)
	set(changes, "email", r.Email)
	set(changes, "password", r.Password)
	set(changes, "role", r.Role)
	set(changes, "status", r.Status)
	return changes
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest optionally carries the refresh token to revoke.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest represents a change password request.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72,nefield=CurrentPassword"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

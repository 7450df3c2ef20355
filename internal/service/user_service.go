package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"learnhub/internal/model"
)

const bcryptCost = 10

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// UserHooks hash plaintext passwords before they reach the database.
// Create expects the plaintext in PasswordHash; updates carry it under "password".
func UserHooks() Hooks[model.User] {
	return Hooks[model.User]{
		BeforeCreate: func(_ context.Context, u *model.User) error {
			hashed, err := HashPassword(u.PasswordHash)
			if err != nil {
				return err
			}
			u.PasswordHash = hashed
			if u.Status == "" {
				u.Status = model.StatusActive
			}
			return nil
		},
		BeforeUpdate: func(_ context.Context, _ *model.User, changes map[string]interface{}) error {
			plain, ok := changes["password"].(string)
			if !ok {
				return nil
			}
			hashed, err := HashPassword(plain)
			if err != nil {
				return err
			}
			changes["password"] = hashed
			return nil
		},
	}
}

package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"file size", &LimitError{Kind: LimitFileSize, Field: "image"}, http.StatusRequestEntityTooLarge, "LIMIT_FILE_SIZE", "file too large: image"},
		{"file count", &LimitError{Kind: LimitFileCount}, http.StatusBadRequest, "LIMIT_FILE_COUNT", "too many files"},
		{"unexpected file", &LimitError{Kind: LimitUnexpectedFile, Field: "avatar"}, http.StatusBadRequest, "LIMIT_UNEXPECTED_FILE", "unexpected file field: avatar"},
		{"part count", &LimitError{Kind: LimitPartCount}, http.StatusBadRequest, "LIMIT_PART_COUNT", "too many parts"},
		{"field key", &LimitError{Kind: LimitFieldKey}, http.StatusBadRequest, "LIMIT_FIELD_KEY", "field name too long"},
		{"field value", &LimitError{Kind: LimitFieldValue, Field: "bio"}, http.StatusBadRequest, "LIMIT_FIELD_VALUE", "field value too long: bio"},
		{"field count", &LimitError{Kind: LimitFieldCount}, http.StatusBadRequest, "LIMIT_FIELD_COUNT", "too many fields"},
		{"max bytes", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, "ENTITY_TOO_LARGE", "request entity too large"},
		{"echo body limit", echo.ErrStatusRequestEntityTooLarge, http.StatusRequestEntityTooLarge, "ENTITY_TOO_LARGE", "request entity too large"},
		{"file type", fmt.Errorf("%w: text/plain", ErrInvalidFileType), http.StatusBadRequest, "INVALID_FILE_TYPE", "invalid file type: text/plain"},
		{"validation", NewValidationError("name is a required field"), http.StatusBadRequest, "VALIDATION_ERROR", "validation failed"},
		{
			"mysql duplicate",
			pkgerrors.WithStack(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Go' for key 'courses.uniq_title'"}),
			http.StatusConflict, "DUPLICATE_KEY", "title already exists",
		},
		{"gorm duplicate", gorm.ErrDuplicatedKey, http.StatusConflict, "DUPLICATE_KEY", "duplicate value"},
		{"no token", ErrNoToken, http.StatusUnauthorized, "NO_TOKEN", "not authorized, no token"},
		{"user not found", ErrUserNotFound, http.StatusUnauthorized, "USER_NOT_FOUND", "not authorized, user not found"},
		{"token failed", ErrTokenFailed, http.StatusUnauthorized, "TOKEN_FAILED", "not authorized, token failed"},
		{"jwt validation", &jwt.ValidationError{Errors: jwt.ValidationErrorExpired}, http.StatusUnauthorized, "TOKEN_FAILED", "not authorized, token failed"},
		{"invalid id", ErrInvalidID, http.StatusBadRequest, "INVALID_ID", "invalid id format"},
		{"named not found", fmt.Errorf("get: %w", NotFound("course")), http.StatusNotFound, "NOT_FOUND", "course not found"},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "NOT_FOUND", "resource not found"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN", "forbidden"},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password"},
		{"inactive", ErrAccountInactive, http.StatusForbidden, "ACCOUNT_INACTIVE", "account is not active"},
		{"bad body", fmt.Errorf("%w: unexpected EOF", ErrInvalidRequest), http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: unexpected EOF"},
		{"echo method", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method Not Allowed"},
		{"fallback", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR", "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestMapErrorToHTTP_ValidationDetails(t *testing.T) {
	got := MapErrorToHTTP(NewValidationError("name is a required field", "price must be 0 or greater"))
	assert.Equal(t, []string{"name is a required field", "price must be 0 or greater"}, got.Details)
}

func serve(production bool, method, path string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(production)
	e.Any("/boom", h)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHTTPErrorHandler(t *testing.T) {
	failing := func(echo.Context) error { return pkgerrors.New("database exploded") }

	t.Run("route not found", func(t *testing.T) {
		rec := serve(false, http.MethodPost, "/nowhere", failing)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "ROUTE_NOT_FOUND", body.Code)
		assert.Equal(t, "route not found: POST /nowhere", body.Message)
	})

	t.Run("stack outside production", func(t *testing.T) {
		rec := serve(false, http.MethodGet, "/boom", failing)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "database exploded", body.Message)
		assert.Contains(t, body.Stack, "TestHTTPErrorHandler")
	})

	t.Run("no stack in production", func(t *testing.T) {
		rec := serve(true, http.MethodGet, "/boom", failing)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.Stack)
	})

	t.Run("client errors carry no stack", func(t *testing.T) {
		rec := serve(false, http.MethodGet, "/boom", func(echo.Context) error { return ErrInvalidID })
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotContains(t, rec.Body.String(), "stack")
	})

	t.Run("head has no body", func(t *testing.T) {
		rec := serve(false, http.MethodHead, "/boom", failing)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const mysqlDuplicateEntry = 1062

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Stack   string   `json:"stack,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Details    []string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Success: false,
		Code:    e.Code,
		Message: e.Message,
		Errors:  e.Details,
	}
}

// rule maps one error signature to its HTTP shape. Rules are checked in order.
type rule struct {
	match   func(err error) bool
	resolve func(err error) *HTTPError
}

func fixed(status int, code string) func(error) *HTTPError {
	return func(err error) *HTTPError {
		return NewHTTPError(status, err.Error(), code)
	}
}

func limitRule(kind LimitKind, status int) rule {
	return rule{
		match: func(err error) bool {
			var le *LimitError
			return errors.As(err, &le) && le.Kind == kind
		},
		resolve: fixed(status, string(kind)),
	}
}

func isSentinel(targets ...error) func(error) bool {
	return func(err error) bool {
		for _, t := range targets {
			if errors.Is(err, t) {
				return true
			}
		}
		return false
	}
}

var duplicateKeyPattern = regexp.MustCompile(`for key '(?:[^'.]+\.)?([^']+)'`)

var rules = []rule{
	limitRule(LimitFileSize, http.StatusRequestEntityTooLarge),
	limitRule(LimitFileCount, http.StatusBadRequest),
	limitRule(LimitUnexpectedFile, http.StatusBadRequest),
	limitRule(LimitPartCount, http.StatusBadRequest),
	limitRule(LimitFieldKey, http.StatusBadRequest),
	limitRule(LimitFieldValue, http.StatusBadRequest),
	limitRule(LimitFieldCount, http.StatusBadRequest),
	{
		match: isEntityTooLarge,
		resolve: func(error) *HTTPError {
			return NewHTTPError(http.StatusRequestEntityTooLarge, "request entity too large", "ENTITY_TOO_LARGE")
		},
	},
	{
		match: func(err error) bool {
			return strings.Contains(strings.ToLower(err.Error()), ErrInvalidFileType.Error())
		},
		resolve: fixed(http.StatusBadRequest, "INVALID_FILE_TYPE"),
	},
	{
		match: func(err error) bool {
			var ve *ValidationError
			var vErrs validator.ValidationErrors
			return errors.As(err, &ve) || errors.As(err, &vErrs)
		},
		resolve: resolveValidation,
	},
	{
		match: func(err error) bool {
			var de *DuplicateKeyError
			var me *mysql.MySQLError
			return errors.As(err, &de) ||
				(errors.As(err, &me) && me.Number == mysqlDuplicateEntry) ||
				errors.Is(err, gorm.ErrDuplicatedKey)
		},
		resolve: func(err error) *HTTPError {
			dup := AsDuplicateKey(err)
			return NewHTTPError(http.StatusConflict, dup.Error(), "DUPLICATE_KEY")
		},
	},
	{match: isSentinel(ErrNoToken), resolve: fixed(http.StatusUnauthorized, "NO_TOKEN")},
	{match: isSentinel(ErrUserNotFound), resolve: fixed(http.StatusUnauthorized, "USER_NOT_FOUND")},
	{
		match: func(err error) bool {
			var jve *jwt.ValidationError
			return errors.Is(err, ErrTokenFailed) || errors.As(err, &jve)
		},
		resolve: func(error) *HTTPError {
			return NewHTTPError(http.StatusUnauthorized, ErrTokenFailed.Error(), "TOKEN_FAILED")
		},
	},
	{match: isSentinel(ErrInvalidID), resolve: fixed(http.StatusBadRequest, "INVALID_ID")},
	{match: isSentinel(ErrNotFound, gorm.ErrRecordNotFound), resolve: func(err error) *HTTPError {
		msg := ErrNotFound.Error()
		var nf *NotFoundError
		if errors.As(err, &nf) {
			msg = nf.Error()
		}
		return NewHTTPError(http.StatusNotFound, msg, "NOT_FOUND")
	}},
	{match: isSentinel(ErrForbidden), resolve: fixed(http.StatusForbidden, "FORBIDDEN")},
	{match: isSentinel(ErrInvalidCredentials), resolve: fixed(http.StatusUnauthorized, "INVALID_CREDENTIALS")},
	{match: isSentinel(ErrInvalidRefreshToken), resolve: fixed(http.StatusUnauthorized, "INVALID_REFRESH_TOKEN")},
	{match: isSentinel(ErrAccountInactive), resolve: fixed(http.StatusForbidden, "ACCOUNT_INACTIVE")},
	{match: isSentinel(ErrInvalidRequest), resolve: fixed(http.StatusBadRequest, "INVALID_REQUEST")},
	{
		match: func(err error) bool {
			var he *HTTPError
			return errors.As(err, &he)
		},
		resolve: func(err error) *HTTPError {
			var he *HTTPError
			errors.As(err, &he)
			return he
		},
	},
	{
		match: func(err error) bool {
			var he *echo.HTTPError
			return errors.As(err, &he)
		},
		resolve: resolveEcho,
	},
}

func isEntityTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) || errors.Is(err, echo.ErrStatusRequestEntityTooLarge) {
		return true
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "request body too large") || strings.Contains(msg, "request entity too large")
}

func resolveValidation(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "validation failed",
			Code:       "VALIDATION_ERROR",
			Details:    ve.Messages,
		}
	}
	var vErrs validator.ValidationErrors
	errors.As(err, &vErrs)
	details := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		details = append(details, fe.Error())
	}
	return &HTTPError{
		StatusCode: http.StatusBadRequest,
		Message:    "validation failed",
		Code:       "VALIDATION_ERROR",
		Details:    details,
	}
}

func resolveEcho(err error) *HTTPError {
	var he *echo.HTTPError
	errors.As(err, &he)
	code := "HTTP_ERROR"
	switch he.Code {
	case http.StatusBadRequest:
		code = "INVALID_REQUEST"
	case http.StatusNotFound:
		code = "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		code = "METHOD_NOT_ALLOWED"
	case http.StatusUnauthorized:
		code = "UNAUTHORIZED"
	}
	msg := http.StatusText(he.Code)
	if s, ok := he.Message.(string); ok && s != "" {
		msg = s
	}
	return NewHTTPError(he.Code, msg, code)
}

// AsDuplicateKey extracts the offending field of a duplicate key violation.
func AsDuplicateKey(err error) *DuplicateKeyError {
	var de *DuplicateKeyError
	if errors.As(err, &de) {
		return de
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		if m := duplicateKeyPattern.FindStringSubmatch(me.Message); m != nil {
			return &DuplicateKeyError{Field: strings.TrimPrefix(m[1], "uniq_")}
		}
	}
	return &DuplicateKeyError{}
}

// MapErrorToHTTP maps any error to its HTTP shape using the ordered rule table.
// Unmatched errors become a 500 carrying the error message.
func MapErrorToHTTP(err error) *HTTPError {
	for _, r := range rules {
		if r.match(err) {
			return r.resolve(err)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
}

// Stack renders the error chain including any recorded stack trace.
func Stack(err error) string {
	return fmt.Sprintf("%+v", err)
}

package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "learnhub/internal/errors"
	"learnhub/internal/model"
)

const (
	// ContextKey holds the authenticated *model.User.
	ContextKey = "user"
	claimsKey  = "auth.claims"
	parsedKey  = "auth.parsed"
	causeKey   = "auth.cause"
)

// Token lookups understood by Middleware.
const (
	LookupHeader = "header:" + echo.HeaderAuthorization + ":Bearer "
	LookupQuery  = "query:token"
)

// UserLookup loads the user a token was issued to.
type UserLookup func(ctx context.Context, id uuid.UUID) (*model.User, error)

// Authenticator verifies bearer tokens and resolves their user.
type Authenticator struct {
	jwt    *JWTService
	tokens TokenStoreInterface
	users  UserLookup
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(jwtService *JWTService, tokens TokenStoreInterface, users UserLookup) *Authenticator {
	return &Authenticator{jwt: jwtService, tokens: tokens, users: users}
}

// Authenticate validates token and returns its user and claims.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*model.User, *Claims, error) {
	claims, err := a.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, nil, apperrors.ErrTokenFailed
	}
	if blacklisted, _ := a.tokens.IsAccessTokenBlacklisted(ctx, claims.ID); blacklisted {
		return nil, nil, apperrors.ErrTokenFailed
	}

	user, err := a.users(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, err
	}
	if user.Status == model.StatusInactive {
		return nil, nil, apperrors.ErrAccountInactive
	}
	return user, claims, nil
}

// Middleware protects routes with a bearer token read through lookup.
func (a *Authenticator) Middleware(lookup string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: lookup,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			c.Set(parsedKey, true)
			user, claims, err := a.Authenticate(c.Request().Context(), token)
			if err != nil {
				c.Set(causeKey, err)
				return nil, err
			}
			c.Set(claimsKey, claims)
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if parsed, _ := c.Get(parsedKey).(bool); !parsed {
				return apperrors.ErrNoToken
			}
			if cause, ok := c.Get(causeKey).(error); ok {
				return cause
			}
			return apperrors.ErrTokenFailed
		},
	})
}

// RequireRoles allows the request when the user has one of roles.
// Superadmins pass every role gate.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return apperrors.ErrNoToken
			}
			if user.Role == model.RoleSuperAdmin {
				return next(c)
			}
			for _, r := range roles {
				if user.Role == r {
					return next(c)
				}
			}
			return apperrors.ErrForbidden
		}
	}
}

// CurrentUser returns the authenticated user or nil.
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextKey).(*model.User)
	return u
}

// CurrentClaims returns the claims of the verified access token or nil.
func CurrentClaims(c echo.Context) *Claims {
	claims, _ := c.Get(claimsKey).(*Claims)
	return claims
}

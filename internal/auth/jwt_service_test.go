package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/model"
)

func testUser(role model.Role) *model.User {
	return &model.User{
		Base:   model.Base{ID: uuid.New()},
		Name:   "Dana",
		Email:  "dana@example.com",
		Role:   role,
		Status: model.StatusActive,
	}
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", 0, 0)
	user := testUser(model.RoleAdmin)

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.InDelta(t, DefaultAccessTokenExpiry.Seconds(), claims.RemainingTTL().Seconds(), 5)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)

	tokenID, token, err := svc.GenerateRefreshToken(testUser(model.RoleDataEntry))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)
	assert.Equal(t, TokenRefresh, claims.Type)
	assert.Equal(t, time.Hour, svc.RefreshTTL())
}

func TestJWTService_TokenTypesAreNotInterchangeable(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, time.Hour)
	user := testUser(model.RoleAdmin)

	access, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	_, refresh, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, TokenAccess, claims.Type)
	_, err = svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
	_, err = svc.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, time.Hour)
	user := testUser(model.RoleAdmin)

	expired, err := NewJWTService("secret", -time.Hour, time.Hour).GenerateAccessToken(user)
	require.NoError(t, err)
	foreign, err := NewJWTService("other-secret", time.Hour, time.Hour).GenerateAccessToken(user)
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: user.ID}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", foreign},
		{"unsigned", none},
		{"garbage", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestClaims_RemainingTTLNeverNegative(t *testing.T) {
	c := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}}
	assert.Equal(t, time.Duration(0), c.RemainingTTL())
	assert.Equal(t, time.Duration(0), (&Claims{}).RemainingTTL())
}

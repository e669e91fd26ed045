//go:build unit

package jwt_test

import (
	"testing"
	"time"

	pkgjwt "car-rental-engine/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func sign(t *testing.T, key string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestService_ValidateToken(t *testing.T) {
	svc := pkgjwt.NewService(secret)
	userID := uuid.New()
	future := time.Now().Add(time.Hour).Unix()

	t.Run("valid customer token", func(t *testing.T) {
		token := sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID.String(), "role": "customer", "exp": future})
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, pkgjwt.RoleCustomer, claims.Role)
	})

	testCases := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:    "expired",
			token:   sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID.String(), "role": "admin", "exp": time.Now().Add(-time.Minute).Unix()}),
			wantErr: pkgjwt.ErrExpiredToken,
		},
		{
			name:    "wrong secret",
			token:   sign(t, "other", jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID.String(), "role": "admin", "exp": future}),
			wantErr: pkgjwt.ErrInvalidToken,
		},
		{
			name:    "other hmac size",
			token:   sign(t, secret, jwt.SigningMethodHS512, jwt.MapClaims{"user_id": userID.String(), "role": "admin", "exp": future}),
			wantErr: pkgjwt.ErrInvalidToken,
		},
		{
			name:    "missing user",
			token:   sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin", "exp": future}),
			wantErr: pkgjwt.ErrInvalidToken,
		},
		{
			name:    "unknown role",
			token:   sign(t, secret, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID.String(), "role": "operator", "exp": future}),
			wantErr: pkgjwt.ErrUnknownRole,
		},
		{
			name:    "garbage",
			token:   "not-a-token",
			wantErr: pkgjwt.ErrInvalidToken,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

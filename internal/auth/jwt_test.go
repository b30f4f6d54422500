package auth

import (
	"math"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	token, err := m.GenerateAccessToken(42, "ada@example.com")
	require.NoError(t, err)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
}

func TestParseRejectsForeignAndExpiredTokens(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	other, err := NewJWTManager("other-secret", time.Minute).GenerateAccessToken(1, "a@b.c")
	require.NoError(t, err)
	_, err = m.ParseAndValidate(other)
	assert.Error(t, err)

	expired, err := NewJWTManager("test-secret", -time.Minute).GenerateAccessToken(1, "a@b.c")
	require.NoError(t, err)
	_, err = m.ParseAndValidate(expired)
	assert.Error(t, err)
}

func signRaw(t *testing.T, method jwt.SigningMethod, claims *Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestParseRejectsMalformedClaims(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	valid := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}

	tests := []struct {
		name   string
		method jwt.SigningMethod
		claims *Claims
		want   error
	}{
		{"no user", jwt.SigningMethodHS256, &Claims{RegisteredClaims: valid}, ErrTokenSubject},
		{"uid beyond int4", jwt.SigningMethodHS256, &Claims{UserID: math.MaxInt32 + 1, RegisteredClaims: valid}, ErrTokenSubject},
		{"other issuer", jwt.SigningMethodHS256, &Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "elsewhere", ExpiresAt: valid.ExpiresAt,
		}}, jwt.ErrTokenInvalidIssuer},
		{"no expiry", jwt.SigningMethodHS256, &Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer}}, jwt.ErrTokenRequiredClaimMissing},
		{"hs512", jwt.SigningMethodHS512, &Claims{UserID: 1, RegisteredClaims: valid}, jwt.ErrTokenSignatureInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.ParseAndValidate(signRaw(t, tt.method, tt.claims))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

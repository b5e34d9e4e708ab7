package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestVerify(t *testing.T) {
	v := NewVerifier(Config{Secret: testSecret})

	tokenString := signToken(t, jwt.MapClaims{
		"sub":   "user_2abc",
		"email": "student@iub.ac.bd",
		"name":  "Tanvir Ahmed",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	id, err := v.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user_2abc", id.Subject)
	assert.Equal(t, "student@iub.ac.bd", id.Email)
	assert.Equal(t, "Tanvir Ahmed", id.Name)
}

func TestVerifyExpired(t *testing.T) {
	v := NewVerifier(Config{Secret: testSecret})

	tokenString := signToken(t, jwt.MapClaims{
		"sub": "user_2abc",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := v.Verify(tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyMissingSubject(t *testing.T) {
	v := NewVerifier(Config{Secret: testSecret})

	tokenString := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	v := NewVerifier(Config{Secret: "other-secret"})

	tokenString := signToken(t, jwt.MapClaims{
		"sub": "user_2abc",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyIssuerMismatch(t *testing.T) {
	v := NewVerifier(Config{Secret: testSecret, Issuer: "profscope.app"})

	tokenString := signToken(t, jwt.MapClaims{
		"sub": "user_2abc",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Bearer ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

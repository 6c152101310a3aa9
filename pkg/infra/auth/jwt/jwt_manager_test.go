package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManagerWithSecret(t *testing.T, secret string) Manager {
	t.Helper()
	mgr, err := NewJwtManager(secret)
	require.NoError(t, err)
	return mgr
}

func signTokenWithSecret(secret string, method jwtlib.SigningMethod, claims jwtlib.Claims) (string, error) {
	token := jwtlib.NewWithClaims(method, claims)
	return token.SignedString([]byte(secret))
}

func TestNewJwtManager_RequiresSecret(t *testing.T) {
	_, err := NewJwtManager("")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestCreateToken_AndValidate_Success(t *testing.T) {
	mgr := newManagerWithSecret(t, "test-secret")

	token, err := mgr.CreateToken("moderator@polyglai.app", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "moderator@polyglai.app", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

func TestCreateToken_RejectsNonPositiveTTL(t *testing.T) {
	mgr := newManagerWithSecret(t, "test-secret")

	for _, ttl := range []time.Duration{0, -time.Minute} {
		token, err := mgr.CreateToken("ops", ttl)
		assert.ErrorIs(t, err, ErrInvalidTTL, "ttl %s", ttl)
		assert.Empty(t, token)
	}
}

func TestValidateToken_RequiresExpiry(t *testing.T) {
	secret := "exp-secret"
	signed, err := signTokenWithSecret(secret, jwtlib.SigningMethodHS256, &Claims{Role: RoleAdmin})
	require.NoError(t, err)

	mgr := newManagerWithSecret(t, secret)
	_, err = mgr.ValidateToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	claims := &Claims{Role: RoleAdmin, RegisteredClaims: jwtlib.RegisteredClaims{IssuedAt: jwtlib.NewNumericDate(time.Now())}}
	signed, err := signTokenWithSecret("other-secret", jwtlib.SigningMethodHS256, claims)
	require.NoError(t, err)

	mgr := newManagerWithSecret(t, "test-secret")
	_, err = mgr.ValidateToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := "expire-secret"
	claims := &Claims{Role: RoleAdmin, RegisteredClaims: jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-1 * time.Hour)),
	}}
	signed, err := signTokenWithSecret(secret, jwtlib.SigningMethodHS256, claims)
	require.NoError(t, err)

	mgr := newManagerWithSecret(t, secret)
	_, err = mgr.ValidateToken(signed)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestValidateToken_WrongAlgorithm(t *testing.T) {
	secret := "alg-secret"
	claims := &Claims{Role: RoleAdmin}
	signed, err := signTokenWithSecret(secret, jwtlib.SigningMethodHS512, claims)
	require.NoError(t, err)

	mgr := newManagerWithSecret(t, secret)
	_, err = mgr.ValidateToken(signed)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestValidateToken_RequiresAdminRole(t *testing.T) {
	secret := "role-secret"
	signed, err := signTokenWithSecret(secret, jwtlib.SigningMethodHS256, &Claims{
		Role:             "learner",
		RegisteredClaims: jwtlib.RegisteredClaims{ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour))},
	})
	require.NoError(t, err)

	mgr := newManagerWithSecret(t, secret)
	_, err = mgr.ValidateToken(signed)
	assert.Equal(t, ErrForbiddenRole, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	mgr := newManagerWithSecret(t, "test-secret")

	for _, token := range []string{"", "abc", "a.b", "a.b.c"} {
		_, err := mgr.ValidateToken(token)
		assert.Equal(t, ErrInvalidToken, err, "token %q", token)
	}
}

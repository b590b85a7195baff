package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(now time.Time) *JWTService {
	s := NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "interntrack-test",
	})
	s.now = func() time.Time { return now }
	return s
}

func TestGenerateAndValidateToken(t *testing.T) {
	now := time.Now()
	s := newTestJWTService(now)

	user := &models.User{ID: 7, Email: "bob@uni.edu", Role: models.RoleInstitutionSupervisor}
	pair, err := s.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, 900, pair.ExpiresIn)
	assert.Equal(t, 86400, pair.RefreshExpiresIn)

	claims, err := s.ValidateAndExtractClaims(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "bob@uni.edu", claims.Email)
	assert.Equal(t, "INSTITUTION_SUPERVISOR", claims.Role)
	assert.Equal(t, "interntrack-test", claims.Issuer)

	assert.Equal(t, now.Add(24*time.Hour), s.GetRefreshTokenExpiry())
}

func TestValidateTokenExpired(t *testing.T) {
	issued := time.Now().Add(-time.Hour)
	s := newTestJWTService(issued)

	pair, err := s.GenerateTokenPair(&models.User{ID: 1, Email: "a@uni.edu", Role: models.RoleStudent})
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	s := newTestJWTService(time.Now())
	other := newTestJWTService(time.Now())
	other.config.SecretKey = "another-secret"

	pair, err := other.GenerateTokenPair(&models.User{ID: 1, Email: "a@uni.edu", Role: models.RoleStudent})
	require.NoError(t, err)

	_, err = s.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = s.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}

func TestValidateAndExtractClaimsRejectsUnknownRole(t *testing.T) {
	now := time.Now()
	s := newTestJWTService(now)

	claims := &Claims{
		UserID: 3,
		Email:  "x@uni.edu",
		Role:   "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.ValidateAndExtractClaims(signed)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = s.ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer a.b.c", want: "a.b.c"},
		{name: "raw token", header: "a.b.c", want: "a.b.c"},
		{name: "quoted", header: `"Bearer a.b.c"`, want: "a.b.c"},
		{name: "empty", header: "", wantErr: true},
		{name: "not a jwt", header: "Bearer abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	BcryptCost = 4
	t.Cleanup(func() { BcryptCost = 12 })

	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)
	assert.True(t, CheckPassword(hash, "s3cretpass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestGenerateVerificationCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateVerificationCode(DefaultCodeLength)
		require.NoError(t, err)
		require.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(CodeAlphabet, r), "unexpected glyph %q", r)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 190)

	assert.NotContains(t, CodeAlphabet, "0")
	assert.NotContains(t, CodeAlphabet, "O")
	assert.NotContains(t, CodeAlphabet, "1")
	assert.NotContains(t, CodeAlphabet, "I")

	code, err := GenerateVerificationCode(0)
	require.NoError(t, err)
	assert.Len(t, code, DefaultCodeLength)
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/tjwls100/souldiary-be/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", "souldiary-test", time.Hour)

	token, err := tm.Generate(models.User{UserID: "hana", Name: "Hana"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "hana", claims.UserID)
	require.Equal(t, "Hana", claims.Name)
	require.Equal(t, "souldiary-test", claims.Issuer)
	require.Equal(t, "hana", claims.Subject)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "souldiary-test", -time.Minute)

	token, err := tm.Generate(models.User{UserID: "hana", Name: "Hana"})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", "souldiary-test", time.Hour)
	other := NewTokenManager("other-secret", "souldiary-test", time.Hour)

	token, err := tm.Generate(models.User{UserID: "hana", Name: "Hana"})
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", "souldiary-test", time.Hour)

	_, err := tm.Parse("not-a-token")
	require.Error(t, err)
}

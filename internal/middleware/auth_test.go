package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tjwls100/souldiary-be/internal/auth"
	"github.com/tjwls100/souldiary-be/internal/http/respond"
	"github.com/tjwls100/souldiary-be/internal/models"
)

func TestAuthMissingCredentialIsUnauthenticated(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", "souldiary-test", time.Hour)
	handler := Auth(tm, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a credential")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/get-user-info", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	var body respond.Envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.False(t, body.IsSuccess)
}

func TestAuthInvalidCredentialIsForbidden(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", "souldiary-test", time.Hour)
	handler := Auth(tm, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a bad credential")
	}))

	for _, header := range []string{"Bearer bogus", "Bearer ", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/get-user-info", nil)
		req.Header.Set("Authorization", header)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		// A present-but-empty or non-bearer header counts as absent.
		want := http.StatusForbidden
		if header != "Bearer bogus" {
			want = http.StatusUnauthorized
		}
		require.Equal(t, want, rr.Code, "header %q", header)
	}
}

func TestAuthExpiredCredentialIsForbidden(t *testing.T) {
	expired := auth.NewTokenManager("test-secret", "souldiary-test", -time.Minute)
	token, err := expired.Generate(models.User{UserID: "hana", Name: "Hana"})
	require.NoError(t, err)

	tm := auth.NewTokenManager("test-secret", "souldiary-test", time.Hour)
	handler := Auth(tm, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired credential")
	}))

	req := httptest.NewRequest(http.MethodGet, "/get-user-info", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAuthAttachesIdentity(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", "souldiary-test", time.Hour)
	token, err := tm.Generate(models.User{UserID: "hana", Name: "Hana"})
	require.NoError(t, err)

	var got *auth.Claims
	handler := Auth(tm, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.IdentityFrom(r.Context())
		require.True(t, ok)
		got = claims
	}))

	req := httptest.NewRequest(http.MethodGet, "/get-user-info", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, got)
	require.Equal(t, "hana", got.UserID)
	require.Equal(t, "Hana", got.Name)
}

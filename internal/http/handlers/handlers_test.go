package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tjwls100/souldiary-be/internal/auth"
	"github.com/tjwls100/souldiary-be/internal/middleware"
	"github.com/tjwls100/souldiary-be/internal/storage/memory"
)

const testInitialCoin = 5000

// newTestServer wires every handler against an in-memory store, mirroring
// the real route table.
func newTestServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()
	store := memory.New()
	tokens := auth.NewTokenManager("test-secret", "souldiary-test", time.Hour)
	requireAuth := func(next http.Handler) http.Handler {
		return middleware.Auth(tokens, next)
	}

	mux := http.NewServeMux()
	NewUserHandler(store, tokens, testInitialCoin).Register(mux, requireAuth)
	NewDiaryHandler(store).Register(mux, requireAuth)
	NewStickerHandler(store).Register(mux, requireAuth)
	NewCalendarHandler(store).Register(mux, requireAuth)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, store
}

// doJSON issues a request with an optional bearer token and JSON body, and
// decodes the response body into a generic map.
func doJSON(t *testing.T, method, url, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// signupAndLogin registers a fresh user and returns a valid bearer token.
func signupAndLogin(t *testing.T, baseURL, userID, password string) string {
	t.Helper()
	status, body := doJSON(t, http.MethodPost, baseURL+"/signup", "", map[string]string{
		"name":     "Test User",
		"user_id":  userID,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, true, body["isSuccess"])

	status, body = doJSON(t, http.MethodPost, baseURL+"/login", "", map[string]string{
		"user_id":  userID,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["isSuccess"])
	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

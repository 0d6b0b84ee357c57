package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetMoodColorUpsertKeepsLatestValue(t *testing.T) {
	ts, _ := newTestServer(t)
	token := signupAndLogin(t, ts.URL, "hana", "secret-password")

	for _, color := range []string{"#FFABAB", "#000000"} {
		status, body := doJSON(t, http.MethodPost, ts.URL+"/set-mood-color", token, map[string]any{
			"date":  "2024-05-01",
			"color": color,
		})
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, true, body["isSuccess"])
	}

	status, body := doJSON(t, http.MethodGet, ts.URL+"/get-mood-color?date=2024-05-01", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["isSuccess"])
	require.Equal(t, "#000000", body["color"])

	status, body = doJSON(t, http.MethodGet, ts.URL+"/get-user-calendar", token, nil)
	require.Equal(t, http.StatusOK, status)
	days, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, days, 1)
}

func TestMoodColorThenStickerOnSameDate(t *testing.T) {
	ts, _ := newTestServer(t)
	token := signupAndLogin(t, ts.URL, "hana", "secret-password")

	status, _ := doJSON(t, http.MethodPost, ts.URL+"/set-mood-color", token, map[string]any{
		"date":  "2024-05-01",
		"color": "#FFABAB",
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, http.MethodPost, ts.URL+"/apply-sticker", token, map[string]any{
		"sticker_id": 7,
		"date":       "2024-05-01",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, http.MethodGet, ts.URL+"/get-mood-color?date=2024-05-01", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["isSuccess"])
	require.Equal(t, "#FFABAB", body["color"])
	require.Equal(t, float64(7), body["sticker_id"])
}

func TestGetMoodColorNoData(t *testing.T) {
	ts, _ := newTestServer(t)
	token := signupAndLogin(t, ts.URL, "hana", "secret-password")

	status, body := doJSON(t, http.MethodGet, ts.URL+"/get-mood-color?date=2024-05-01", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, false, body["isSuccess"])
}

func TestCalendarValidation(t *testing.T) {
	ts, _ := newTestServer(t)
	token := signupAndLogin(t, ts.URL, "hana", "secret-password")

	status, _ := doJSON(t, http.MethodPost, ts.URL+"/set-mood-color", token, map[string]any{
		"date": "2024-05-01",
	})
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, http.MethodPost, ts.URL+"/apply-sticker", token, map[string]any{
		"sticker_id": 7,
	})
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, http.MethodGet, ts.URL+"/get-mood-color", token, nil)
	require.Equal(t, http.StatusBadRequest, status)
}

func TestCalendarRoutesRequireAuth(t *testing.T) {
	ts, _ := newTestServer(t)

	status, _ := doJSON(t, http.MethodPost, ts.URL+"/set-mood-color", "", map[string]any{
		"date":  "2024-05-01",
		"color": "#FFABAB",
	})
	require.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, http.MethodGet, ts.URL+"/get-user-calendar", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

package siteconf

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := New(WithLogger(zerolog.New(io.Discard)))
	require.NoError(t, err)
	return app
}

func get(t *testing.T, app *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleIndex(t *testing.T) {
	rec := get(t, newTestApp(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `href="/settings/development/"`)
	assert.Contains(t, body, `href="/settings/production/"`)
	assert.Contains(t, body, "relative links")
	assert.Contains(t, body, ProductionURL)
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
}

func TestHandleSettingsPage(t *testing.T) {
	rec := get(t, newTestApp(t), "/settings/development/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Europe/Athens")
	assert.Contains(t, body, "UA-86665642-1")
	assert.NotContains(t, body, "relative_urls")
	assert.Contains(t, body, "feed_all_atom")
	assert.Contains(t, body, "<pre>null</pre>")
}

func TestHandleSettingsPageRedirectsToSlash(t *testing.T) {
	rec := get(t, newTestApp(t), "/settings/development")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/settings/development/", rec.Header().Get("Location"))
}

func TestHandleSettingsPageUnknownProfile(t *testing.T) {
	rec := get(t, newTestApp(t), "/settings/staging/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not found")
}

func TestHandleAPISettingsJSON(t *testing.T) {
	rec := get(t, newTestApp(t), "/api/settings/development")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))

	got, err := DecodeJSON(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Default().StaticPaths, got.StaticPaths)
	assert.Equal(t, 10, got.DefaultPagination)
	assert.Nil(t, got.FeedAllAtom)
}

func TestHandleAPISettingsYAML(t *testing.T) {
	rec := get(t, newTestApp(t), "/api/settings/prod?format=yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/yaml")

	got, err := DecodeYAML(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, ProductionURL, got.SiteURL)
}

func TestHandleAPIKey(t *testing.T) {
	app := newTestApp(t)

	rec := get(t, app, "/api/settings/development/default_pagination")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "default_pagination", body.Key)
	assert.JSONEq(t, "10", string(body.Value))

	rec = get(t, app, "/api/settings/development/extra_path_metadata")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `{"extra/robots.txt":{"path":"robots.txt"},"extra/favicon.ico":{"path":"favicon.ico"}}`, string(body.Value))

	// The echoed key is the one that was looked up.
	rec = get(t, app, "/api/settings/development/TimeZone")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, KeyTimezone, body.Key)
	assert.JSONEq(t, `"Europe/Athens"`, string(body.Value))

	rec = get(t, app, "/api/settings/development/%20google_analytics%20")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, KeyGoogleAnalytics, body.Key)
}

func TestHandleAPIKeyNotFound(t *testing.T) {
	app := newTestApp(t)

	tests := []string{
		"/api/settings/development/bogus",
		"/api/settings/development/relative_urls",
		"/api/settings/production/google_analytics",
		"/api/settings/staging/author",
		"/api/settings/staging",
	}
	for _, target := range tests {
		rec := get(t, app, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json", target)
	}
}

func TestSecureHeaders(t *testing.T) {
	rec := get(t, newTestApp(t), "/")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

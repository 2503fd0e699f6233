package siteconf

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gkomninos/siteconf/views"
)

func (a *App) handleIndex(c echo.Context) error {
	summaries := make([]views.ProfileSummary, 0, len(a.profiles))
	for _, p := range Profiles() {
		cfg := a.profiles[p]
		summaries = append(summaries, views.ProfileSummary{
			Name:     string(p),
			SiteName: cfg.SiteName,
			SiteURL:  cfg.SiteURL,
			Relative: cfg.Relative(),
			Keys:     len(cfg.Settings()),
		})
	}
	return renderPage(c, http.StatusOK, views.Index(summaries))
}

func (a *App) handleSettingsPage(c echo.Context) error {
	p, cfg, ok := a.profile(c.Param("profile"))
	if !ok {
		return echo.ErrNotFound
	}
	settings := cfg.Settings()
	rows := make([]views.Row, 0, len(settings))
	for _, st := range settings {
		rows = append(rows, views.Row{Key: st.Key, Value: displayValue(st.Value)})
	}
	return renderPage(c, http.StatusOK, views.Settings(string(p), rows))
}

func (a *App) handleAPISettings(c echo.Context) error {
	_, cfg, ok := a.profile(c.Param("profile"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown profile")
	}
	if strings.EqualFold(c.QueryParam("format"), "yaml") {
		var buf bytes.Buffer
		if err := cfg.EncodeYAML(&buf); err != nil {
			return err
		}
		return c.Blob(http.StatusOK, "application/yaml; charset=utf-8", buf.Bytes())
	}
	return c.JSON(http.StatusOK, cfg)
}

func (a *App) handleAPIKey(c echo.Context) error {
	_, cfg, ok := a.profile(c.Param("profile"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown profile")
	}
	key := NormalizeKey(c.Param("key"))
	v, err := cfg.Get(key)
	switch {
	case errors.Is(err, ErrUnknownKey):
		return echo.NewHTTPError(http.StatusNotFound, "unknown key")
	case errors.Is(err, ErrUnset):
		return echo.NewHTTPError(http.StatusNotFound, "key not set in this profile")
	case err != nil:
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"key":   key,
		"value": v,
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		a.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = renderPage(c, http.StatusNotFound, views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("server error")
		_ = renderPage(c, code, views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// displayValue formats a setting for the HTML table; JSON keeps null feeds
// and (label, url) pairs readable.
func displayValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "?"
	}
	return string(b)
}

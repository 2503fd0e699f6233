// Package siteconf holds the settings record of the notes.log site and the
// tooling that hands it to the static-site generator.
//
// The record itself is a literal: Load returns it for a profile and nothing
// in this package changes it afterwards. Around it sit encoders (JSON, YAML,
// SQLite), a static asset inventory and a read-only Echo app for inspecting
// both profiles over HTTP.
package siteconf

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// App serves the settings of every profile over HTTP. Records are loaded
// once in New and only read afterwards.
type App struct {
	Echo   *echo.Echo
	Logger zerolog.Logger

	profiles map[Profile]SiteConfig
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the logger used for request and error logs.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// New loads every profile and wires middleware and routes.
func New(opts ...Option) (*App, error) {
	a := &App{
		Echo:     echo.New(),
		Logger:   zerolog.New(os.Stderr).With().Timestamp().Logger(),
		profiles: make(map[Profile]SiteConfig),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	for _, p := range Profiles() {
		c, err := Load(p)
		if err != nil {
			return nil, err
		}
		a.profiles[p] = c
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a, nil
}

func (a *App) setupRoutes() {
	e := a.Echo
	e.GET("/", a.handleIndex)
	e.GET("/settings/:profile/", a.handleSettingsPage)
	e.GET("/api/settings/:profile", a.handleAPISettings)
	e.GET("/api/settings/:profile/:key", a.handleAPIKey)
}

// Start serves on addr until the server is shut down.
func (a *App) Start(addr string) error {
	a.Logger.Info().Str("addr", addr).Msg("serving settings")
	if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// profile resolves a route parameter to a loaded record.
func (a *App) profile(name string) (Profile, SiteConfig, bool) {
	p, err := ParseProfile(name)
	if err != nil {
		return "", SiteConfig{}, false
	}
	c, ok := a.profiles[p]
	return p, c, ok
}

package siteconf

import (
	"errors"
	"fmt"
	"strings"
)

// Profile names one of the two settings definitions.
type Profile string

const (
	Development Profile = "development"
	Production  Profile = "production"
)

// ProductionURL is the public base URL of the published site.
const ProductionURL = "https://gkomninos.github.io"

const googleAnalyticsID = "UA-86665642-1"

// ErrUnknownProfile is returned for profile names other than development and production.
var ErrUnknownProfile = errors.New("siteconf: unknown profile")

// Profiles lists the known profiles, development first.
func Profiles() []Profile {
	return []Profile{Development, Production}
}

// ParseProfile maps a profile name (or its dev/prod short form) to a Profile.
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "development", "dev":
		return Development, nil
	case "production", "prod":
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Load returns the settings record for p. Every call builds a fresh value.
func Load(p Profile) (SiteConfig, error) {
	c := base()
	switch p {
	case Development:
	case Production:
		// The published definition pins absolute links and carries no
		// tracking id.
		c.SiteURL = ProductionURL
		c.RelativeURLs = boolPtr(false)
		c.GoogleAnalytics = ""
	default:
		return SiteConfig{}, fmt.Errorf("%w: %q", ErrUnknownProfile, string(p))
	}
	return c, nil
}

// Default returns the development record, the settings module as written.
func Default() SiteConfig {
	c, _ := Load(Development)
	return c
}

// base is the development definition. Production is derived from it.
func base() SiteConfig {
	return SiteConfig{
		Author:             "Giorgos",
		SiteName:           "/home/gkomninos/log/notes.log",
		SiteURL:            "",
		PygmentsRSTOptions: map[string]string{"linenos": "table"},
		Path:               "content",
		Timezone:           "Europe/Athens",
		DefaultLang:        "en",
		Theme:              "/home/giorgos/project/pelican-themes/nice-blog",
		SidebarDisplay:     []string{},
		GoogleAnalytics:    googleAnalyticsID,

		// Feed generation is usually not desired when developing.
		FeedAllAtom:         nil,
		CategoryFeedAtom:    nil,
		TranslationFeedAtom: nil,
		AuthorFeedAtom:      nil,
		AuthorFeedRSS:       nil,

		Links: []Link{
			{Label: "Pelican", URL: "http://getpelican.com/"},
			{Label: "Python.org", URL: "http://python.org/"},
			{Label: "Jinja2", URL: "http://jinja.pocoo.org/"},
			{Label: "You can modify those links in your config file", URL: "#"},
		},
		Social: []Link{
			{Label: "You can add links in your config file", URL: "#"},
			{Label: "Another social link", URL: "#"},
		},

		DefaultPagination: 10,

		StaticPaths: []string{"images", "extra/robots.txt", "extra/favicon.ico"},
		ExtraPathMetadata: map[string]PathMetadata{
			"extra/robots.txt":  {"path": "robots.txt"},
			"extra/favicon.ico": {"path": "favicon.ico"},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

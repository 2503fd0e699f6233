package views

import (
	"net/url"

	"github.com/a-h/templ"
)

// PathEscape wraps url.PathEscape for use in component markup.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// siteURLLabel shows how links are built for a profile.
func siteURLLabel(p ProfileSummary) string {
	if p.SiteURL == "" || p.Relative {
		return "relative links"
	}
	return p.SiteURL
}

package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

const style = `body{font-family:ui-monospace,monospace;max-width:56rem;margin:2rem auto;padding:0 1rem;color:#1c1917}
table{border-collapse:collapse;width:100%}td,th{border:1px solid #d6d3d1;padding:.35rem .5rem;text-align:left;vertical-align:top}
th{background:#f5f5f4}a{color:inherit}pre{margin:0;white-space:pre-wrap}`

// Index lists the available profiles.
func Index(profiles []ProfileSummary) templ.Component {
	return page("Profiles", func(b *strings.Builder) {
		b.WriteString("<h1>Profiles</h1><table><thead><tr><th>profile</th><th>sitename</th><th>links</th><th>keys</th></tr></thead><tbody>")
		for _, p := range profiles {
			b.WriteString(`<tr><td><a href="/settings/` + esc(PathEscape(p.Name)) + `/">` + esc(p.Name) + `</a></td>`)
			b.WriteString("<td>" + esc(p.SiteName) + "</td>")
			b.WriteString("<td>" + esc(siteURLLabel(p)) + "</td>")
			b.WriteString("<td>" + strconv.Itoa(p.Keys) + "</td></tr>")
		}
		b.WriteString("</tbody></table>")
	})
}

// Settings renders the settings table of one profile.
func Settings(profile string, rows []Row) templ.Component {
	return page(profile, func(b *strings.Builder) {
		b.WriteString(`<p><a href="/">profiles</a></p><h1>` + esc(profile) + "</h1>")
		b.WriteString("<table><thead><tr><th>key</th><th>value</th></tr></thead><tbody>")
		for _, r := range rows {
			b.WriteString("<tr><td>" + esc(r.Key) + "</td><td><pre>" + esc(r.Value) + "</pre></td></tr>")
		}
		b.WriteString("</tbody></table>")
		b.WriteString(`<p><a href="/api/settings/` + esc(PathEscape(profile)) + `">json</a> · <a href="/api/settings/` + esc(PathEscape(profile)) + `?format=yaml">yaml</a></p>`)
	})
}

// NotFound is the 404 page.
func NotFound() templ.Component {
	return page("Not found", func(b *strings.Builder) {
		b.WriteString(`<h1>Not found</h1><p><a href="/">profiles</a></p>`)
	})
}

// ServerError is the 5xx page.
func ServerError() templ.Component {
	return page("Server error", func(b *strings.Builder) {
		b.WriteString("<h1>Something went wrong</h1>")
	})
}

func page(title string, body func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		b.WriteString(esc(title))
		b.WriteString("</title><style>" + style + "</style></head><body>")
		body(&b)
		b.WriteString("</body></html>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

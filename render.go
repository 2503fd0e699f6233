package siteconf

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// renderPage renders page into memory and only then writes it with the given
// status. A page that fails halfway leaves the response uncommitted, so the
// error handler can still answer with a 500 page.
func renderPage(c echo.Context, code int, page templ.Component) error {
	var buf bytes.Buffer
	if err := page.Render(c.Request().Context(), &buf); err != nil {
		return fmt.Errorf("siteconf: render %s: %w", c.Path(), err)
	}
	return c.HTMLBlob(code, buf.Bytes())
}

package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestSettingsEscapesValues(t *testing.T) {
	var buf bytes.Buffer
	err := Settings("development", []Row{{Key: "sitename", Value: "<b>notes</b>"}}).Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	got := buf.String()
	if strings.Contains(got, "<b>notes</b>") {
		t.Errorf("value not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;b&gt;notes&lt;/b&gt;") {
		t.Errorf("escaped value missing: %q", got)
	}
	if !strings.Contains(got, `href="/api/settings/development?format=yaml"`) {
		t.Errorf("yaml link missing: %q", got)
	}
}

func TestIndexLinksProfiles(t *testing.T) {
	var buf bytes.Buffer
	profiles := []ProfileSummary{
		{Name: "development", SiteName: "notes", Relative: true, Keys: 20},
		{Name: "production", SiteName: "notes", SiteURL: "https://example.org", Keys: 21},
	}
	if err := Index(profiles).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		`href="/settings/development/"`,
		`href="/settings/production/"`,
		"relative links",
		"https://example.org",
		"<td>21</td>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Index missing %q in %q", want, got)
		}
	}
}

func TestNotFound(t *testing.T) {
	var buf bytes.Buffer
	if err := NotFound().Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<!DOCTYPE html>") {
		t.Errorf("NotFound should render a full page, got %q", buf.String())
	}
}

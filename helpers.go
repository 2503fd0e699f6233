package siteconf

import (
	"net/url"
	"path"
	"strings"
)

// Feed is a feed toggle. A nil Path means the feed is not generated.
type Feed struct {
	Key  string
	Path *string
}

// Enabled reports whether the generator should produce this feed.
func (f Feed) Enabled() bool {
	return f.Path != nil && *f.Path != ""
}

// Feeds returns the feed toggles in definition order.
func (c SiteConfig) Feeds() []Feed {
	return []Feed{
		{Key: KeyFeedAllAtom, Path: clonePtr(c.FeedAllAtom)},
		{Key: KeyCategoryFeedAtom, Path: clonePtr(c.CategoryFeedAtom)},
		{Key: KeyTranslationFeedAtom, Path: clonePtr(c.TranslationFeedAtom)},
		{Key: KeyAuthorFeedAtom, Path: clonePtr(c.AuthorFeedAtom)},
		{Key: KeyAuthorFeedRSS, Path: clonePtr(c.AuthorFeedRSS)},
	}
}

// FeedURL returns the link to the feed named by key. ok is false when the
// key is not a feed or the feed is disabled.
func (c SiteConfig) FeedURL(key string) (u string, ok bool) {
	for _, f := range c.Feeds() {
		if f.Key == key && f.Enabled() {
			return c.URLFor(*f.Path), true
		}
	}
	return "", false
}

// Relative reports whether output links should be relative: either the
// site URL is empty or relative_urls is set.
func (c SiteConfig) Relative() bool {
	if c.SiteURL == "" {
		return true
	}
	return c.RelativeURLs != nil && *c.RelativeURLs
}

// URLFor builds the link to an output path. In relative mode the path is
// returned relative to the site root; otherwise it is joined onto SiteURL.
func (c SiteConfig) URLFor(p string) string {
	rel := strings.TrimPrefix(p, "/")
	if c.Relative() {
		return rel
	}
	u, err := url.Parse(c.SiteURL)
	if err != nil {
		return rel
	}
	u.Path = path.Join("/", u.Path, rel)
	if strings.HasSuffix(rel, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// OutputPath returns where the generator writes the static file src:
// the "path" override from extra_path_metadata, or src itself.
func (c SiteConfig) OutputPath(src string) string {
	if md, ok := c.ExtraPathMetadata[src]; ok {
		if p := md["path"]; p != "" {
			return p
		}
	}
	return src
}

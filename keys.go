package siteconf

import (
	"errors"
	"fmt"
	"strings"
)

// Recognized configuration keys.
const (
	KeyAuthor              = "author"
	KeySiteName            = "sitename"
	KeySiteURL             = "siteurl"
	KeyPygmentsRSTOptions  = "pygments_rst_options"
	KeyPath                = "path"
	KeyTimezone            = "timezone"
	KeyDefaultLang         = "default_lang"
	KeyTheme               = "theme"
	KeySidebarDisplay      = "sidebar_display"
	KeyGoogleAnalytics     = "google_analytics"
	KeyFeedAllAtom         = "feed_all_atom"
	KeyCategoryFeedAtom    = "category_feed_atom"
	KeyTranslationFeedAtom = "translation_feed_atom"
	KeyAuthorFeedAtom      = "author_feed_atom"
	KeyAuthorFeedRSS       = "author_feed_rss"
	KeyLinks               = "links"
	KeySocial              = "social"
	KeyDefaultPagination   = "default_pagination"
	KeyRelativeURLs        = "relative_urls"
	KeyStaticPaths         = "static_paths"
	KeyExtraPathMetadata   = "extra_path_metadata"
)

var (
	// ErrUnknownKey is returned by Get for keys the record does not define.
	ErrUnknownKey = errors.New("siteconf: unknown key")
	// ErrUnset is returned by Get for optional keys with no value in this profile.
	ErrUnset = errors.New("siteconf: key not set")
)

// field reads one key off the record. ok is false for unset optional keys.
type field struct {
	key string
	get func(c SiteConfig) (v any, ok bool)
}

var fields = []field{
	{KeyAuthor, func(c SiteConfig) (any, bool) { return c.Author, true }},
	{KeySiteName, func(c SiteConfig) (any, bool) { return c.SiteName, true }},
	{KeySiteURL, func(c SiteConfig) (any, bool) { return c.SiteURL, true }},
	{KeyPygmentsRSTOptions, func(c SiteConfig) (any, bool) { return cloneStrings(c.PygmentsRSTOptions), true }},
	{KeyPath, func(c SiteConfig) (any, bool) { return c.Path, true }},
	{KeyTimezone, func(c SiteConfig) (any, bool) { return c.Timezone, true }},
	{KeyDefaultLang, func(c SiteConfig) (any, bool) { return c.DefaultLang, true }},
	{KeyTheme, func(c SiteConfig) (any, bool) { return c.Theme, true }},
	{KeySidebarDisplay, func(c SiteConfig) (any, bool) { return cloneSlice(c.SidebarDisplay), true }},
	{KeyGoogleAnalytics, func(c SiteConfig) (any, bool) { return c.GoogleAnalytics, c.GoogleAnalytics != "" }},
	{KeyFeedAllAtom, func(c SiteConfig) (any, bool) { return clonePtr(c.FeedAllAtom), true }},
	{KeyCategoryFeedAtom, func(c SiteConfig) (any, bool) { return clonePtr(c.CategoryFeedAtom), true }},
	{KeyTranslationFeedAtom, func(c SiteConfig) (any, bool) { return clonePtr(c.TranslationFeedAtom), true }},
	{KeyAuthorFeedAtom, func(c SiteConfig) (any, bool) { return clonePtr(c.AuthorFeedAtom), true }},
	{KeyAuthorFeedRSS, func(c SiteConfig) (any, bool) { return clonePtr(c.AuthorFeedRSS), true }},
	{KeyLinks, func(c SiteConfig) (any, bool) { return cloneSlice(c.Links), true }},
	{KeySocial, func(c SiteConfig) (any, bool) { return cloneSlice(c.Social), true }},
	{KeyDefaultPagination, func(c SiteConfig) (any, bool) { return c.DefaultPagination, true }},
	{KeyRelativeURLs, func(c SiteConfig) (any, bool) { return clonePtr(c.RelativeURLs), c.RelativeURLs != nil }},
	{KeyStaticPaths, func(c SiteConfig) (any, bool) { return cloneSlice(c.StaticPaths), true }},
	{KeyExtraPathMetadata, func(c SiteConfig) (any, bool) { return cloneMetadata(c.ExtraPathMetadata), true }},
}

// Keys returns every recognized key in definition order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Settings returns the record as ordered key/value pairs, skipping unset
// optional keys. Values are copies.
func (c SiteConfig) Settings() []Setting {
	out := make([]Setting, 0, len(fields))
	for _, f := range fields {
		if v, ok := f.get(c); ok {
			out = append(out, Setting{Key: f.key, Value: v})
		}
	}
	return out
}

// NormalizeKey folds key to the form used in the key table: trimmed and
// lower case.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Get returns the value for key, looked up by NormalizeKey(key).
func (c SiteConfig) Get(key string) (any, error) {
	k := NormalizeKey(key)
	for _, f := range fields {
		if f.key != k {
			continue
		}
		v, ok := f.get(c)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnset, k)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

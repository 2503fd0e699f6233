package siteconf

// SiteConfig is the settings record handed to the static-site generator.
// Field order follows the settings file and is the order every encoder emits.
//
// A nil feed toggle means the feed is disabled. GoogleAnalytics and
// RelativeURLs are optional and left out of encodings when unset.
type SiteConfig struct {
	Author             string            `json:"author" yaml:"author"`
	SiteName           string            `json:"sitename" yaml:"sitename"`
	SiteURL            string            `json:"siteurl" yaml:"siteurl"`
	PygmentsRSTOptions map[string]string `json:"pygments_rst_options" yaml:"pygments_rst_options"`
	Path               string            `json:"path" yaml:"path"`
	Timezone           string            `json:"timezone" yaml:"timezone"`
	DefaultLang        string            `json:"default_lang" yaml:"default_lang"`
	Theme              string            `json:"theme" yaml:"theme"`
	SidebarDisplay     []string          `json:"sidebar_display" yaml:"sidebar_display"`
	GoogleAnalytics    string            `json:"google_analytics,omitempty" yaml:"google_analytics,omitempty"`

	FeedAllAtom         *string `json:"feed_all_atom" yaml:"feed_all_atom"`
	CategoryFeedAtom    *string `json:"category_feed_atom" yaml:"category_feed_atom"`
	TranslationFeedAtom *string `json:"translation_feed_atom" yaml:"translation_feed_atom"`
	AuthorFeedAtom      *string `json:"author_feed_atom" yaml:"author_feed_atom"`
	AuthorFeedRSS       *string `json:"author_feed_rss" yaml:"author_feed_rss"`

	Links             []Link                  `json:"links" yaml:"links"`
	Social            []Link                  `json:"social" yaml:"social"`
	DefaultPagination int                     `json:"default_pagination" yaml:"default_pagination"`
	RelativeURLs      *bool                   `json:"relative_urls,omitempty" yaml:"relative_urls,omitempty"`
	StaticPaths       []string                `json:"static_paths" yaml:"static_paths"`
	ExtraPathMetadata map[string]PathMetadata `json:"extra_path_metadata" yaml:"extra_path_metadata"`
}

// Link is a (label, URL) pair rendered into the blogroll or social widget.
type Link struct {
	Label string
	URL   string
}

// PathMetadata holds per-file overrides; "path" is the output location.
type PathMetadata map[string]string

// Setting is one key/value pair of the record.
type Setting struct {
	Key   string
	Value any
}

// Clone returns a copy that shares no slices or maps with c.
func (c SiteConfig) Clone() SiteConfig {
	out := c
	out.PygmentsRSTOptions = cloneStrings(c.PygmentsRSTOptions)
	out.SidebarDisplay = cloneSlice(c.SidebarDisplay)
	out.FeedAllAtom = clonePtr(c.FeedAllAtom)
	out.CategoryFeedAtom = clonePtr(c.CategoryFeedAtom)
	out.TranslationFeedAtom = clonePtr(c.TranslationFeedAtom)
	out.AuthorFeedAtom = clonePtr(c.AuthorFeedAtom)
	out.AuthorFeedRSS = clonePtr(c.AuthorFeedRSS)
	out.Links = cloneSlice(c.Links)
	out.Social = cloneSlice(c.Social)
	out.RelativeURLs = clonePtr(c.RelativeURLs)
	out.StaticPaths = cloneSlice(c.StaticPaths)
	out.ExtraPathMetadata = cloneMetadata(c.ExtraPathMetadata)
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneMetadata(m map[string]PathMetadata) map[string]PathMetadata {
	if m == nil {
		return nil
	}
	out := make(map[string]PathMetadata, len(m))
	for k, v := range m {
		out[k] = PathMetadata(cloneStrings(v))
	}
	return out
}

package views

// ProfileSummary is one line of the profile index.
type ProfileSummary struct {
	Name     string
	SiteName string
	SiteURL  string // empty in relative mode
	Relative bool
	Keys     int
}

// Row is one key of a settings table. Value is already formatted for display.
type Row struct {
	Key   string
	Value string
}

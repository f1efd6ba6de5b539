package throwback

import (
	"strconv"
)

const (
	// SettingsKey is the name of the record in the settings store.
	SettingsKey = "throwback-posts"

	// TargetSelf opens linked posts in the current tab.
	TargetSelf = "_self"
	// TargetBlank opens linked posts in a new tab.
	TargetBlank = "_blank"

	// DefaultTitle is the schema default of the widget title.
	DefaultTitle = "Throwback Posts!"
	// DefaultSubtitle is the schema default of the widget subtitle.
	DefaultSubtitle = "Time to celebrate."
	// DefaultPrimaryColor is the schema default header background.
	DefaultPrimaryColor = "#EE4440"
	// DefaultSecondaryColor is the schema default link color.
	DefaultSecondaryColor = "#4CDBC4"

	// DefaultMaxPosts is the schema default of posts per offset.
	DefaultMaxPosts = 5
	// MinMaxPosts is the lower bound of posts per offset.
	MinMaxPosts = 1
	// MaxMaxPosts is the upper bound of posts per offset.
	MaxMaxPosts = 8
)

// Media is an uploaded or linked asset.
type Media struct {
	URL string `form:"url" json:"url" validate:"omitempty,url,max=2048"`
}

// Settings is the persisted configuration of the widget.
// The json keys are the storage contract, renaming one orphans stored values.
type Settings struct {
	Activate        bool     `form:"activate"         json:"activate"`
	Dates           []string `form:"dates"            json:"dates"            validate:"dive,offset"`
	CategoryIDs     []uint64 `form:"categories"       json:"categories"`
	ExcludedPostIDs []uint64 `form:"posts_to_exclude" json:"posts_to_exclude"`
	Title           string   `form:"title"            json:"title"            validate:"max=255"`
	Subtitle        string   `form:"subtitle"         json:"subtitle"         validate:"max=255"`
	MaxPosts        int      `form:"max_posts"        json:"max_posts"        validate:"min=1,max=8"`
	OpenTarget      string   `form:"open_target"      json:"open_target"      validate:"omitempty,oneof=_self _blank"`
	PrimaryColor    string   `form:"primary_color"    json:"primary_color"    validate:"omitempty,hexcolor"`
	SecondaryColor  string   `form:"secondary_color"  json:"secondary_color"  validate:"omitempty,hexcolor"`
	Icon            Media    `form:"icon"             json:"icon"`
	ShowDate        bool     `form:"show_date"        json:"show_date"`
	ShowTime        bool     `form:"show_time"        json:"show_time"`
	ShowImage       bool     `form:"show_image"       json:"show_image"`
	ShowExcerpt     bool     `form:"show_excerpt"     json:"show_excerpt"`
}

// DefaultSettings returns the record the admin form starts from.
func DefaultSettings() *Settings {
	return &Settings{
		Title:          DefaultTitle,
		Subtitle:       DefaultSubtitle,
		MaxPosts:       DefaultMaxPosts,
		OpenTarget:     TargetSelf,
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
	}
}

// Normalize clamps MaxPosts into its valid range. A zero value falls back to
// the default so a hand edited record never asks for unlimited results.
func (s *Settings) Normalize() {
	switch {
	case s.MaxPosts == 0:
		s.MaxPosts = DefaultMaxPosts
	case s.MaxPosts < MinMaxPosts:
		s.MaxPosts = MinMaxPosts
	case s.MaxPosts > MaxMaxPosts:
		s.MaxPosts = MaxMaxPosts
	}
}

// FormValues returns the record as form values keyed by schema field id.
func (s *Settings) FormValues() map[string][]string {
	values := map[string][]string{
		"title":            {s.Title},
		"subtitle":         {s.Subtitle},
		"max_posts":        {strconv.Itoa(s.MaxPosts)},
		"open_target":      {s.OpenTarget},
		"primary_color":    {s.PrimaryColor},
		"secondary_color":  {s.SecondaryColor},
		"icon":             {s.Icon.URL},
		"dates":            append([]string(nil), s.Dates...),
		"categories":       formatIDs(s.CategoryIDs),
		"posts_to_exclude": formatIDs(s.ExcludedPostIDs),
	}

	flags := map[string]bool{
		"activate":     s.Activate,
		"show_date":    s.ShowDate,
		"show_time":    s.ShowTime,
		"show_image":   s.ShowImage,
		"show_excerpt": s.ShowExcerpt,
	}

	for id, on := range flags {
		if on {
			values[id] = []string{"true"}
		}
	}

	return values
}

func formatIDs(ids []uint64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatUint(id, 10)
	}

	return out
}

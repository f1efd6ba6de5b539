package throwback

import (
	"strconv"
)

// FieldType is the kind of input a schema field renders as.
type FieldType string

// Supported field types.
const (
	FieldCheckbox    FieldType = "checkbox"
	FieldSelect      FieldType = "select"
	FieldMultiSelect FieldType = "multiselect"
	FieldText        FieldType = "text"
	FieldSpinner     FieldType = "spinner"
	FieldColor       FieldType = "color"
	FieldMedia       FieldType = "media"
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Field declares one input of the admin form. ID doubles as form name and
// json key of the settings record.
type Field struct {
	ID       string
	Type     FieldType
	Title    string
	Subtitle string
	Default  string
	Min      int
	Max      int
	Step     int
	Unit     string
	Options  []Option
}

// Section groups fields under a heading.
type Section struct {
	Title  string
	Fields []Field
}

// Schema declares the admin settings form. Option lists are built from the
// resolved offsets, the available categories and every post.
func Schema(offsets []Offset, categories []Category, posts []PostRef) []Section {
	dates := make([]Option, len(offsets))
	for i, o := range offsets {
		dates[i] = Option{Value: o.Key, Label: o.Label}
	}

	cats := make([]Option, len(categories))
	for i, c := range categories {
		cats[i] = Option{Value: strconv.FormatUint(c.ID, 10), Label: c.Name}
	}

	all := make([]Option, len(posts))
	for i, p := range posts {
		all[i] = Option{Value: strconv.FormatUint(p.ID, 10), Label: p.Title}
	}

	return []Section{
		{
			Title: "General",
			Fields: []Field{
				{ID: "activate", Type: FieldCheckbox, Title: "Activate Throwback Posts"},
				{
					ID:       "dates",
					Type:     FieldMultiSelect,
					Title:    "Throwback Dates",
					Subtitle: "Which dates do you want to show?",
					Options:  dates,
				},
				{
					ID:    "categories",
					Type:  FieldMultiSelect,
					Title: "Post Categories",
					Subtitle: "Select the categories for the posts you want to include. " +
						"Leave empty if you want to use all the categories.",
					Options: cats,
				},
				{
					ID:       "posts_to_exclude",
					Type:     FieldMultiSelect,
					Title:    "Posts to Exclude",
					Subtitle: "These posts will not appear on the widget.",
					Options:  all,
				},
			},
		},
		{
			Title: "Design/Content Options",
			Fields: []Field{
				{ID: "title", Type: FieldText, Title: "Widget Title", Default: DefaultTitle},
				{ID: "subtitle", Type: FieldText, Title: "Widget Subtitle", Default: DefaultSubtitle},
				{
					ID:       "max_posts",
					Type:     FieldSpinner,
					Title:    "Maximum number of posts",
					Subtitle: "Max posts per date",
					Default:  strconv.Itoa(DefaultMaxPosts),
					Min:      MinMaxPosts,
					Max:      MaxMaxPosts,
					Step:     1,
					Unit:     "posts",
				},
				{
					ID:       "open_target",
					Type:     FieldSelect,
					Title:    "Open Posts Method",
					Subtitle: "Where to open the linked posts",
					Default:  TargetSelf,
					Options: []Option{
						{Value: TargetSelf, Label: "Self page"},
						{Value: TargetBlank, Label: "New Tab"},
					},
				},
				{ID: "primary_color", Type: FieldColor, Title: "Primary Color", Default: DefaultPrimaryColor},
				{ID: "secondary_color", Type: FieldColor, Title: "Secondary Color", Default: DefaultSecondaryColor},
				{ID: "icon", Type: FieldMedia, Title: "Image Icon", Subtitle: "Leave empty to use the default icon"},
				{ID: "show_date", Type: FieldCheckbox, Title: "Display Date for the post"},
				{
					ID:       "show_time",
					Type:     FieldCheckbox,
					Title:    "Display Throwback Time",
					Subtitle: `Display "One month ago", "One year ago"...`,
				},
				{ID: "show_image", Type: FieldCheckbox, Title: "Display Featured Image (if exists)"},
				{ID: "show_excerpt", Type: FieldCheckbox, Title: "Display Excerpt for the post (if exists)"},
			},
		},
	}
}

// FieldIDs returns every field id declared by the schema in order.
func FieldIDs(sections []Section) []string {
	var ids []string

	for _, section := range sections {
		for _, f := range section.Fields {
			ids = append(ids, f.ID)
		}
	}

	return ids
}

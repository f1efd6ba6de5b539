package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/throwback-posts/throwback-posts/internal/daemon"
	tb "github.com/throwback-posts/throwback-posts/internal/throwback"
)

const previewDateLayout = "2006-01-02"

// preview colors follow the widget defaults
var ( //nolint:gochecknoglobals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#EE4440", Dark: "#EE4440"}
	colorLink    = lipgloss.AdaptiveColor{Light: "#1F8A78", Dark: "#4CDBC4"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
)

var (
	previewDate string

	previewCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "preview",
		Short: "Print the throwback groups of a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := daemon.OpenDB(cfg)
			if err != nil {
				return err
			}

			deps, err := daemon.Wire(cfg, db)
			if err != nil {
				return err
			}

			day, err := parseDay(previewDate, deps.Throwback.Today())
			if err != nil {
				return err
			}

			settings, groups, err := deps.Throwback.LoadAt(cmd.Context(), day)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderPreview(day, settings, groups))

			return err
		},
	}
)

func init() { //nolint:gochecknoinits
	previewCmd.Flags().StringVar(&previewDate, "date", "", "day to preview as YYYY-MM-DD, defaults to today")

	rootCmd.AddCommand(previewCmd)
}

// parseDay reads value in the location of today. An empty value is today.
func parseDay(value string, today time.Time) (time.Time, error) {
	if value == "" {
		return today, nil
	}

	day, err := time.ParseInLocation(previewDateLayout, value, today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", value, err)
	}

	return day, nil
}

func renderPreview(day time.Time, settings *tb.Settings, groups []tb.Group) string {
	var (
		b          strings.Builder
		titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
		groupStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
		postStyle  = lipgloss.NewStyle().Foreground(colorLink).PaddingLeft(2)
		dimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	)

	b.WriteString(titleStyle.Render("Throwback posts for " + day.Format(previewDateLayout)))
	b.WriteString("\n")

	switch {
	case settings == nil:
		b.WriteString(dimStyle.Render("no settings stored, the widget is hidden"))
		return b.String()
	case !settings.Activate:
		b.WriteString(dimStyle.Render("the widget is not activated"))
		return b.String()
	case len(groups) == 0:
		b.WriteString(dimStyle.Render("nothing was published on the selected dates"))
		return b.String()
	}

	for _, g := range groups {
		b.WriteString(groupStyle.Render(g.Label))
		b.WriteString("\n")

		for _, p := range g.Posts {
			b.WriteString(postStyle.Render(p.Title))
			b.WriteString(" ")
			b.WriteString(dimStyle.Render(p.PublishedAt.In(day.Location()).Format("2006/01/02") + "  " + p.Permalink))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

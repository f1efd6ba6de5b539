package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/throwback-posts/throwback-posts/internal/daemon"
	"github.com/throwback-posts/throwback-posts/internal/db/controller/post"
)

var (
	importFile string

	importCmd = &cobra.Command{ //nolint:gochecknoglobals
		Use:   "import",
		Short: "Load posts and categories from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			f, err := os.Open(importFile)
			if err != nil {
				return err
			}
			defer f.Close() //nolint:errcheck

			posts, err := decodePosts(f)
			if err != nil {
				return err
			}

			db, err := daemon.OpenDB(cfg)
			if err != nil {
				return err
			}

			n, err := post.NewStore(db, cfg.Site.URL).Import(cmd.Context(), posts)
			if err != nil {
				return err
			}

			log.Info().Int("posts", n).Str("file", importFile).Msg("import finished")

			return nil
		},
	}
)

func init() { //nolint:gochecknoinits
	importCmd.Flags().StringVar(&importFile, "file", "posts.json", "JSON array of posts")

	rootCmd.AddCommand(importCmd)
}

func decodePosts(r io.Reader) ([]post.ImportPost, error) {
	var posts []post.ImportPost

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	return posts, nil
}

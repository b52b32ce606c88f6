package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jeremyjsx/folio/internal/listing"
	"github.com/jeremyjsx/folio/internal/posts"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var (
		query  string
		tag    string
		view   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, optionally filtered by search text and tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}

			state := listing.NewState().
				WithQuery(query).
				ToggleTag(tag).
				WithView(listing.ViewMode(view))
			v := listing.Derive(all, state)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}
			printView(out, v)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "q", "q", "", "search text matched against title, excerpt and tags")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "only show posts carrying this tag")
	cmd.Flags().StringVar(&view, "view", string(listing.Grid), "output layout: grid or list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the derived listing as JSON")
	return cmd
}

func printView(w io.Writer, v listing.View) {
	fmt.Fprintln(w, v.Summary)
	if v.Shown == 0 {
		fmt.Fprintln(w, "No articles match the current filters.")
		return
	}
	for _, p := range v.Posts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d min read\n", p.Slug, p.Title, p.DisplayDate(), p.ReadingTime())
		if v.State.View == listing.List {
			if p.Excerpt != "" {
				fmt.Fprintf(w, "\t%s\n", p.Excerpt)
			}
			fmt.Fprintf(w, "\t%s\n", formatTags(p, 3))
		}
	}
}

// formatTags shows the first limit tags and a count of the rest.
func formatTags(p *posts.Post, limit int) string {
	if len(p.Tags) == 0 {
		return ""
	}
	shown := p.Tags
	if len(shown) > limit {
		shown = shown[:limit]
	}
	parts := make([]string, 0, len(shown)+1)
	for _, t := range shown {
		parts = append(parts, "#"+t)
	}
	if extra := len(p.Tags) - len(shown); extra > 0 {
		parts = append(parts, fmt.Sprintf("+%d more", extra))
	}
	return strings.Join(parts, " ")
}

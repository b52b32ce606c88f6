package cli

import (
	"fmt"
	"strings"

	"github.com/jeremyjsx/folio/internal/posts"
	"github.com/jeremyjsx/folio/internal/render"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Print a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}

			slug := args[0]
			p, ok := posts.FindBySlug(all, slug)
			if !ok {
				return fmt.Errorf("%w: %s", posts.ErrNotFound, slug)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Title)
			fmt.Fprintf(out, "By %s · %s · %d min read\n", p.Author, p.DisplayDate(), p.ReadingTime())
			if cover := p.Cover(opts.cfg.FallbackCoverImage); cover != "" {
				fmt.Fprintf(out, "Cover: %s\n", cover)
			}
			if len(p.Tags) > 0 {
				fmt.Fprintf(out, "Tags: #%s\n", strings.Join(p.Tags, " #"))
			}
			if p.Excerpt != "" {
				fmt.Fprintf(out, "\n%q\n", p.Excerpt)
			}
			fmt.Fprintln(out)

			if !asHTML {
				fmt.Fprintln(out, p.Content)
				return nil
			}
			html, err := render.New().Render(p.Content)
			if err != nil {
				return err
			}
			fmt.Fprint(out, html)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "render the Markdown body to sanitized HTML")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/jeremyjsx/folio/internal/posts"
	"github.com/spf13/cobra"
)

func newTagsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print every distinct tag, sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			for _, tag := range posts.AllTags(all) {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

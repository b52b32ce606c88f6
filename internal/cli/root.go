// Package cli implements blogctl, a terminal client for the posts document.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jeremyjsx/folio/internal/app"
	"github.com/jeremyjsx/folio/internal/config"
	"github.com/jeremyjsx/folio/internal/posts"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type options struct {
	v   *viper.Viper
	cfg *config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}

	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Browse, search and render blog posts from the posts document",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initializeConfig(cmd)
		},
	}

	root.PersistentFlags().String("source", "", "posts source: URL, s3://bucket/key, postgres, or file path (env POSTS_SOURCE)")
	root.PersistentFlags().Duration("timeout", 10*time.Second, "HTTP timeout when fetching posts (env HTTP_TIMEOUT)")
	root.PersistentFlags().String("fallback-cover", "", "cover image used when a post has none (env FALLBACK_COVER_IMAGE)")

	root.AddCommand(newListCmd(opts), newTagsCmd(opts), newShowCmd(opts))
	return root
}

func (o *options) initializeConfig(cmd *cobra.Command) error {
	o.cfg = config.Load()

	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()
	_ = o.v.BindEnv("source", "POSTS_SOURCE")
	_ = o.v.BindEnv("timeout", "HTTP_TIMEOUT")
	_ = o.v.BindEnv("fallback-cover", "FALLBACK_COVER_IMAGE")
	if err := o.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if s := o.v.GetString("source"); s != "" {
		o.cfg.PostsSource = s
	}
	if d := o.v.GetDuration("timeout"); d > 0 {
		o.cfg.HTTPTimeout = d
	}
	if c := o.v.GetString("fallback-cover"); c != "" {
		o.cfg.FallbackCoverImage = c
	}
	return nil
}

// load fetches the collection once. A CLI invocation is one page load, so
// caching is never applied.
func (o *options) load(ctx context.Context) ([]*posts.Post, error) {
	cfg := *o.cfg
	cfg.CacheTTL = 0

	src, closeFn, err := app.OpenSource(ctx, &cfg)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	all, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	return all, nil
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

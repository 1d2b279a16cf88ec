// Package cmd — convert command.
// This is the post driver: it parses the export, runs every post through the
// content transform pipeline, and writes the resulting page bundles.
//
// Per-post content problems (a failed image fetch, an odd table) degrade
// inside the pipeline and never abort the run; only environment failures
// (unreadable export, uncreatable directories) do.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/noorkhafidzin/blogger2hugo/core"
	"github.com/noorkhafidzin/blogger2hugo/core/feed"
	"github.com/noorkhafidzin/blogger2hugo/core/hugo"
	"github.com/noorkhafidzin/blogger2hugo/core/output"
	"github.com/noorkhafidzin/blogger2hugo/core/transform"
)

// Flag variables.
var (
	flagOutputDir   string
	flagConcurrency int
	flagTimeout     time.Duration
)

var convertCmd = &cobra.Command{
	Use:   "convert <export.xml>",
	Short: "Convert a Blogger Atom export into Hugo page bundles",
	Long: `Convert reads a Blogger Atom export and writes one Hugo page bundle per
post: posts/<slug>/index.md plus a posts/<slug>/images/ directory with the
post's images downloaded and rewritten to local references.

Examples:
  blogger2hugo convert blog-export.xml
  blogger2hugo convert blog-export.xml --output_dir ./content
  blogger2hugo convert blog-export.xml --concurrency 4 --timeout 30s`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	convertCmd.Flags().IntVar(&flagConcurrency, "concurrency", core.DefaultConcurrency, "Parallel image downloads per post")
	convertCmd.Flags().DurationVar(&flagTimeout, "timeout", core.DefaultFetchTimeout, "Timeout per image download")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := core.Config{
		Concurrency:  flagConcurrency,
		FetchTimeout: flagTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	posts, err := feed.ParseFile(args[0])
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	return runPosts(context.Background(), posts, transform.New(cfg), writer)
}

// runPosts drives every post through the pipeline and prints the summary.
func runPosts(ctx context.Context, posts []core.Post, tr *transform.Transformer, writer *output.Writer) error {
	var posted, drafts int

	for _, post := range posts {
		doc, err := tr.Transform(ctx, post.Content, writer.ImageDir(post.Slug), post.Slug)
		if err != nil {
			return fmt.Errorf("transforming %s: %w", post.Slug, err)
		}

		fm, err := hugo.Render(hugo.FromPost(post))
		if err != nil {
			return fmt.Errorf("front matter for %s: %w", post.Slug, err)
		}

		if _, err := writer.WritePost(post.Slug, []byte(fm+doc)); err != nil {
			return err
		}

		if post.Draft {
			drafts++
		} else {
			posted++
		}
		fmt.Fprintf(os.Stdout, "[OK] /posts/%s/index.md | draft=%t\n", post.Slug, post.Draft)
	}

	fmt.Fprintf(os.Stdout, "\nCompleted: %d posted article(s), %d draft article(s)\n", posted, drafts)
	return nil
}

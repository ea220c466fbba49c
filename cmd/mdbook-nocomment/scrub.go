package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"nocomment/internal/config"
	"nocomment/internal/md"
	"nocomment/internal/preprocess"
	"nocomment/internal/scrub"
)

var scrubCmd = &cobra.Command{
	Use:   "scrub [flags] chapter.md",
	Short: "Scrub HTML comments from a single markdown file",
	Long: `Scrub runs the comment filter over one markdown file and prints the
result, without the mdbook protocol around it. Useful for checking what
the preprocessor would do to a chapter. A book.toml next to the file is
honored when present.`,
	Args: cobra.ExactArgs(1),
	RunE: runScrub,
}

func init() {
	scrubCmd.Flags().String("format", "markdown", "output format (markdown|events)")
}

func runScrub(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", filePath, err)
	}

	opts := config.Default()
	opts, err = config.LoadBookTOML(opts, filepath.Join(filepath.Dir(filePath), "book.toml"), "nocomment")
	if err != nil {
		return err
	}
	opts, err = overlayFlags(cmd, opts)
	if err != nil {
		return err
	}

	tracer, err := setupTracer(cmd, opts.TraceLevel)
	if err != nil {
		return err
	}
	defer tracer.Close()

	switch format {
	case "markdown":
		fmt.Fprint(os.Stdout, preprocess.ScrubMarkdown(string(content), tracer))
		return nil
	case "events":
		events := scrub.Scrub(md.Tokenize(string(content)), scrub.WithTracer(tracer))
		for _, ev := range events {
			if ev.Text == "" && ev.Level == 0 {
				fmt.Fprintf(os.Stdout, "%s\n", ev.Kind)
				continue
			}
			if ev.Level > 0 {
				fmt.Fprintf(os.Stdout, "%-16s level=%d\n", ev.Kind, ev.Level)
				continue
			}
			fmt.Fprintf(os.Stdout, "%-16s %q\n", ev.Kind, ev.Text)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

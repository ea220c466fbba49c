package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nocomment/internal/book"
	"nocomment/internal/cache"
	"nocomment/internal/config"
	"nocomment/internal/preprocess"
	"nocomment/internal/trace"
	"nocomment/internal/version"
)

const appName = "mdbook-nocomment"

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "An mdbook preprocessor that cleans up HTML comments",
	Long: `mdbook-nocomment removes HTML comments (<!-- ... -->) from every chapter
of an mdbook book, including comments split across lines and paragraphs.

When run without a subcommand it speaks the mdbook preprocessor protocol:
it reads the [context, book] JSON pair from stdin and writes the processed
book to stdout.`,
	RunE: runPreprocess,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status
// code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(supportsCmd)
	rootCmd.AddCommand(scrubCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("trace-level", "off", "trace verbosity (off|error|phase|debug)")
	rootCmd.PersistentFlags().String("trace", "-", "trace output path (\"-\" for stderr)")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel chapter workers (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().Bool("cache", false, "cache scrubbed chapters on disk")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPreprocess(cmd *cobra.Command, _ []string) error {
	// mdbook talks over stdin; a human at a terminal gets the help text.
	if isTerminal(os.Stdin) {
		return cmd.Help()
	}

	ctx, b, err := book.ParseInput(os.Stdin)
	if err != nil {
		return err
	}

	opts := config.FromContext(config.Default(), ctx, "nocomment")
	opts, err = overlayFlags(cmd, opts)
	if err != nil {
		return err
	}

	tracer, err := setupTracer(cmd, opts.TraceLevel)
	if err != nil {
		return err
	}
	defer tracer.Close()

	p := preprocess.New(opts, tracer)
	if opts.Cache {
		store, err := cache.Open(appName)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		p.WithStore(store)
	}

	preprocess.WarnIncompatible(os.Stderr, p, ctx.MdbookVersion)

	processed, err := p.Run(ctx, b)
	if err != nil {
		return err
	}
	return book.WriteBook(os.Stdout, processed)
}

// overlayFlags applies explicitly set command-line flags on top of the
// configuration-derived options.
func overlayFlags(cmd *cobra.Command, opts config.Options) (config.Options, error) {
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("jobs") {
		jobs, err := flags.GetInt("jobs")
		if err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		if jobs > 0 {
			opts.Jobs = jobs
		}
	}
	if flags.Changed("cache") {
		enabled, err := flags.GetBool("cache")
		if err != nil {
			return opts, fmt.Errorf("failed to get cache flag: %w", err)
		}
		opts.Cache = enabled
	}
	if flags.Changed("trace-level") {
		level, err := flags.GetString("trace-level")
		if err != nil {
			return opts, fmt.Errorf("failed to get trace-level flag: %w", err)
		}
		opts.TraceLevel = level
	}
	return opts, nil
}

// setupTracer builds a tracer from the resolved trace level and the
// --trace output flag.
func setupTracer(cmd *cobra.Command, levelStr string) (trace.Tracer, error) {
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	out, err := cmd.Root().PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	return trace.New(trace.Config{Level: level, OutputPath: out})
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

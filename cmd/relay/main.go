package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackcoderx/relay/pkg/core"
	"github.com/blackcoderx/relay/pkg/printer"
	"github.com/blackcoderx/relay/pkg/request"
	"github.com/blackcoderx/relay/pkg/storage"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "relay [tokens...]",
	Short: "relay - send, save and replay HTTP requests from the terminal",
	Long: `relay turns a flat list of tokens into an HTTP request. Requests can be
saved into a per-directory project, replayed by name and templated with
values from named environments. Run relay -h for the token reference.`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               run,
}

func run(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	settings, err := core.LoadSettings(core.NewViper(root))
	if err != nil {
		return err
	}
	if settings.NoColor || !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}

	logger := core.NewLogger(settings.LogLevel, os.Stderr)
	userAgent := settings.UserAgent
	if userAgent == "" {
		userAgent = "relay/" + version
	}

	client := request.NewClient(
		request.WithTimeout(settings.Timeout),
		request.WithValidateSSL(settings.ValidateSSL),
		request.WithUserAgent(userAgent),
		request.WithLogger(logger),
	)
	store := storage.NewStore(root, storage.WithLogger(logger))

	runner := core.NewRunner(store,
		core.WithClient(client),
		core.WithLogger(logger),
		core.WithPrompter(core.DefaultPrompter(os.Stdin, os.Stdout)),
		core.WithHighlight(!settings.NoColor && isatty.IsTerminal(os.Stdout.Fd())),
		core.WithBuildInfo(core.BuildInfo{Version: version, Commit: commit, Date: date}),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return runner.Run(ctx, append([]string{cmd.Name()}, args...))
}

// reportError prints err and, for failed upstream calls, the response body.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)

	var upstream *request.UpstreamError
	if errors.As(err, &upstream) && len(upstream.Body) > 0 {
		_ = printer.NewTerminal(w).Print(upstream.Body)
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

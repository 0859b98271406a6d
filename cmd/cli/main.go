package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/treegridgo/internal/app"
	"github.com/specialistvlad/treegridgo/internal/cli"
)

// main is the entrypoint for the treegridgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	src, closeSource, err := app.OpenSource(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open records source: %w", err)
	}
	defer func() {
		if cerr := closeSource(context.WithoutCancel(ctx)); cerr != nil {
			slog.Warn("Failed to close records source.", "error", cerr)
		}
	}()

	return app.NewApp(outW, logW, appConfig, src).Run(ctx)
}

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Search   SearchCommand   `cmd:"search" help:"Find fragrances matching a description."`
	TUI      TUICommand      `cmd:"tui" help:"Take the fragrance quiz in the terminal."`
	Serve    ServeCommand    `cmd:"serve" help:"Serve the fragrance quiz web page."`
	Similar  SimilarCommand  `cmd:"similar" help:"Find fragrances similar to a known cologne."`
	Colognes ColognesCommand `cmd:"colognes" help:"List colognes known to the recommendation engine."`
	Version  VersionCommand  `cmd:"version" help:"Print the version of scentquiz."`
}

func main() {
	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli, kong.UsageOnError(), kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := getLogger("error")
		log.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}

func getLogger(level string) *slog.Logger {
	ll := slog.LevelInfo
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: ll,
	}))
}

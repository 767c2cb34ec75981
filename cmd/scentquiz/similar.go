package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/a-h/scentquiz/client"
	"github.com/a-h/scentquiz/quiz"
)

type SimilarCommand struct {
	EngineURL    string `help:"The URL of the recommendation engine." env:"ENGINE_URL" default:"http://localhost:8000"`
	EngineAPIKey string `help:"The API key for the recommendation engine." env:"ENGINE_API_KEY" default:""`
	ID           int64  `arg:"" help:"The ID of the cologne to find matches for."`
	TopK         int    `help:"The number of matches to return." default:"5"`
	JSON         bool   `help:"Print the results as JSON instead of cards." default:"false"`
	Width        int    `help:"The width of the cards." default:"80"`
	LogLevel     string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c SimilarCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	log.Debug("getting similar colognes", slog.Int64("id", c.ID), slog.Int("topK", c.TopK))
	rsc := client.New(c.EngineURL, c.EngineAPIKey)
	results, err := rsc.SimilarGet(ctx, c.ID, c.TopK)
	if err != nil {
		return fmt.Errorf("failed to get similar colognes: %w", err)
	}
	log.Debug("got similar colognes", slog.Int("count", len(results)))
	return printView(os.Stdout, quiz.Render(quiz.Query{}, results, nil), c.JSON, c.Width)
}

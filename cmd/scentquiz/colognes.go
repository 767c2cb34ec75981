package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/a-h/scentquiz/client"
)

type ColognesCommand struct {
	EngineURL    string `help:"The URL of the recommendation engine." env:"ENGINE_URL" default:"http://localhost:8000"`
	EngineAPIKey string `help:"The API key for the recommendation engine." env:"ENGINE_API_KEY" default:""`
	Limit        int    `help:"The maximum number of colognes to list." default:"50"`
	Pretty       bool   `help:"Pretty print the JSON output." default:"true"`
	LogLevel     string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c ColognesCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	log.Debug("listing colognes", slog.Int("limit", c.Limit))
	rsc := client.New(c.EngineURL, c.EngineAPIKey)
	colognes, err := rsc.ColognesGet(ctx, c.Limit)
	if err != nil {
		return fmt.Errorf("failed to list colognes: %w", err)
	}
	log.Debug("listed colognes", slog.Int("count", len(colognes)))

	enc := json.NewEncoder(os.Stdout)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(colognes)
}

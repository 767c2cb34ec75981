package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/a-h/scentquiz/client"
	"github.com/a-h/scentquiz/quiz"
	"github.com/a-h/scentquiz/quiz/termview"
)

var errBlankPreferences = errors.New("preferences must not be blank")

type SearchCommand struct {
	EngineURL    string `help:"The URL of the recommendation engine." env:"ENGINE_URL" default:"http://localhost:8000"`
	EngineAPIKey string `help:"The API key for the recommendation engine." env:"ENGINE_API_KEY" default:""`
	Preferences  string `arg:"" help:"A description of the fragrance you are looking for."`
	Gender       string `help:"Only match colognes for this gender." env:"GENDER" default:"All"`
	JSON         bool   `help:"Print the results as JSON instead of cards." default:"false"`
	Width        int    `help:"The width of the cards." default:"80"`
	LogLevel     string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c SearchCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	q, ok := quiz.NewQuery(c.Preferences, c.Gender)
	if !ok {
		return errBlankPreferences
	}
	log.Debug("searching", slog.String("preferences", q.Preferences), slog.String("gender", q.Gender))

	view, searchErr := quiz.Search(ctx, client.New(c.EngineURL, c.EngineAPIKey), q)
	if err = printView(os.Stdout, view, c.JSON, c.Width); err != nil {
		return err
	}
	if searchErr != nil {
		return fmt.Errorf("failed to search: %w", searchErr)
	}
	return nil
}

func printView(w io.Writer, v quiz.View, asJSON bool, width int) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, termview.Render(v, width))
	return err
}

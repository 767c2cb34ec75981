package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/scentquiz/client"
	pageget "github.com/a-h/scentquiz/handlers/page/get"
	searchpost "github.com/a-h/scentquiz/handlers/search/post"
	"github.com/a-h/scentquiz/quiz"
	"github.com/a-h/scentquiz/ratelimit"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

type ServeCommand struct {
	EngineURL       string  `help:"The URL of the recommendation engine." env:"ENGINE_URL" default:"http://localhost:8000"`
	EngineAPIKey    string  `help:"The API key for the recommendation engine." env:"ENGINE_API_KEY" default:""`
	OptionsFile     string  `help:"A YAML file of suggestions and gender options." env:"OPTIONS_FILE" default:""`
	SearchRateLimit float64 `help:"The maximum number of searches per second sent to the engine, 0 for no limit." env:"SEARCH_RATE_LIMIT" default:"5"`
	SearchBurst     int     `help:"The number of searches allowed in a burst above the rate limit." env:"SEARCH_BURST" default:"10"`
	ListenAddr      string  `help:"The address to listen on." env:"LISTEN_ADDR" default:"localhost:9030"`
	TLSCertFile     string  `help:"The TLS certificate file." env:"TLS_CERT_FILE" default:""`
	TLSKeyFile      string  `help:"The TLS key file." env:"TLS_KEY_FILE" default:""`
	LogLevel        string  `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

// searchPath serves the results fragment to the quiz page's script.
const searchPath = "/search"

func (c ServeCommand) limiter() *rate.Limiter {
	if c.SearchRateLimit <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(c.SearchRateLimit), c.SearchBurst)
}

func (c ServeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	options, err := quiz.LoadOptions(c.OptionsFile)
	if err != nil {
		return fmt.Errorf("failed to load options: %w", err)
	}

	log.Info("using recommendation engine", slog.String("url", c.EngineURL))
	rsc := client.New(c.EngineURL, c.EngineAPIKey)

	// Both routes search the engine, so they share a limiter.
	limiter := c.limiter()

	mux := http.NewServeMux()

	pgh := pageget.New(log, rsc, options, searchPath)
	mux.Handle("GET /{$}", ratelimit.New(limiter, pgh))

	sph := searchpost.New(log, rsc)
	mux.Handle("POST "+searchPath, ratelimit.New(limiter, sph))

	withCORSMux := cors.AllowAll().Handler(mux)

	log.Info("Listening", slog.String("addr", c.ListenAddr))
	s := &http.Server{
		Addr:    c.ListenAddr,
		Handler: withCORSMux,
	}
	if c.TLSCertFile != "" && c.TLSKeyFile != "" {
		log.Info("Enabling TLS mode")
		var cert tls.Certificate
		cert, err = tls.LoadX509KeyPair(c.TLSCertFile, c.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load cert: %w", err)
		}
		s.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}
		return s.ListenAndServeTLS(c.TLSCertFile, c.TLSKeyFile)
	}
	return s.ListenAndServe()
}

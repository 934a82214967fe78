package cmd

import (
	"fmt"

	"github.com/kunalnano/yt-search/pkg/config"
	"github.com/kunalnano/yt-search/pkg/fetch"
	"github.com/kunalnano/yt-search/pkg/search"
)

// newService builds the retrieval pipeline from the loaded configuration.
func newService(cfg *config.Config) *search.Service {
	fetcher := fetch.NewHTTPFetcher(fetch.Options{
		Timeout:           cfg.Timeout.Duration,
		MaxRetries:        cfg.MaxRetries,
		InitialBackoff:    cfg.InitialBackoff.Duration,
		MaxBackoff:        cfg.MaxBackoff.Duration,
		RequestsPerMinute: cfg.RequestsPerMinute,
		UserAgent:         cfg.UserAgent,
		AcceptLanguage:    cfg.AcceptLanguage,
	})
	return search.NewService(fetcher, cfg.BaseURL, cfg.MaxResults)
}

func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

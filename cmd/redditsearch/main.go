package main

import (
	"context"
	"os"

	"redditsearch/internal/collector"
	"redditsearch/internal/config"
	"redditsearch/internal/logging"
)

func main() {
	logger := logging.Logger

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load settings", "err", err)
		os.Exit(1)
	}

	logger.Info("Settings resolved",
		"user_agent", cfg.RedditUserAgent,
		"subreddits", cfg.DefaultSubreddits,
		"keywords", cfg.DefaultKeywords,
		"database", cfg.DatabasePath,
		"output", cfg.OutputDir,
		"credentials", cfg.RedditClientID != "",
	)

	// No live client yet. COLLECTOR_MODE=mock previews the fixture feed.
	if os.Getenv("COLLECTOR_MODE") != "mock" {
		logger.Info("Nothing to scrape yet; set COLLECTOR_MODE=mock for a fixture preview")
		return
	}

	client := collector.NewMockClient()
	ctx := context.Background()
	for _, sub := range cfg.DefaultSubreddits {
		posts, err := client.FetchNewPosts(ctx, sub, 25)
		if err != nil {
			logger.Error("Fetch failed", "sub", sub, "err", err)
			continue
		}
		for _, p := range posts {
			logger.Info("Post", "sub", p.Subreddit, "score", p.Score, "title", p.Title)
		}
	}
}

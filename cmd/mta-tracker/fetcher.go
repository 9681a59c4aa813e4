package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/LS122800/MTA-Tracker/feed"
)

// fetcher retrieves raw feed bytes from a URL or a local file. Local paths
// are a CLI convenience for saved .pb snapshots; HTTP goes through the feed
// client so headers and retry apply.
type fetcher struct {
	client *feed.Client
}

func newFetcher(apiKey string, timeout time.Duration) *fetcher {
	return &fetcher{client: feed.NewClient(apiKey, timeout)}
}

func (f *fetcher) fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, nil
	}
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}
	return f.client.Fetch(ctx, urlOrPath)
}

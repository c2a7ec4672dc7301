//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"sensorika-scraper/internal/fetch"
	"sensorika-scraper/internal/scrape"
)

// Hits the real site; run with -tags integration. Skips instead of failing
// when the site is unreachable or has changed its markup.
func TestLiveHomePage(t *testing.T) {
	client := fetch.NewClient(25*time.Second, "Mozilla/5.0", 5*1024*1024)
	svc := scrape.NewService(client, "https://sensorika.uz")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	students, err := svc.Students(ctx)
	if err != nil {
		t.Skipf("skipping: live scrape failed: %v", err)
		return
	}
	if len(students) == 0 {
		t.Error("expected at least one student card")
	}

	news, err := svc.News(ctx)
	if err != nil {
		t.Skipf("skipping: news scrape failed: %v", err)
		return
	}
	if len(news) == 0 {
		t.Error("expected at least one news item")
	}
}

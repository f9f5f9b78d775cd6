package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/murilodk/campushub/internal/client/models"
	"github.com/murilodk/campushub/internal/client/transport"
	"github.com/murilodk/campushub/internal/logging"
)

// NewsService fetches the public RSS news feed. The feed is unauthenticated,
// so its responses never pass through the expiry monitor.
type NewsService struct {
	http    *transport.Client
	feedURL string
	log     logging.Logger
}

func NewNewsService(http *transport.Client, feedURL string, log logging.Logger) *NewsService {
	return &NewsService{http: http, feedURL: feedURL, log: log}
}

type rssFeed struct {
	Channel struct {
		Items []struct {
			Title   string `xml:"title"`
			Link    string `xml:"link"`
			Content string `xml:"content"`
			PubDate string `xml:"pubDate"`
		} `xml:"item"`
	} `xml:"channel"`
}

// Fetch downloads and parses the feed, stripping HTML from each item's
// content and formatting its publication date.
func (n *NewsService) Fetch(ctx context.Context) ([]models.NewsItem, error) {
	data, err := n.http.GetRaw(ctx, n.feedURL)
	if err != nil {
		return nil, err
	}

	var feed rssFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	items := make([]models.NewsItem, len(feed.Channel.Items))
	for i, it := range feed.Channel.Items {
		items[i] = models.NewsItem{
			Title:   it.Title,
			Link:    it.Link,
			Content: stripHTML(it.Content),
			PubDate: formatFeedDate(it.PubDate),
		}
	}
	return items, nil
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTML reduces an HTML fragment to its text content.
func stripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTagPattern.ReplaceAllString(s, "")))
}

// formatFeedDate renders an RFC 1123 feed timestamp as a display date;
// unparseable values pass through unchanged.
func formatFeedDate(raw string) string {
	for _, layout := range []string{time.RFC1123Z, time.RFC1123} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(displayDateLayout)
		}
	}
	return raw
}

package cli

import (
	"context"
	"fmt"
)

// News prints the public news feed.
func (a *App) News(ctx context.Context) error {
	items, err := a.news.Fetch(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching news failed", "error", err)
		return err
	}

	for _, it := range items {
		fmt.Printf("%s | %s\n", it.PubDate, it.Title)
		fmt.Println(it.Content)
		fmt.Println(it.Link)
		fmt.Println()
	}
	return nil
}

package models

// NewsItem is a feed entry with display-ready fields: Content has HTML
// stripped, PubDate is formatted.
type NewsItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Content string `json:"content"`
	PubDate string `json:"pub_date"`
}

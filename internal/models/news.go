package models

import "time"

// NewsItemStatus values for review-queue items.
const (
	NewsStatusPendingReview = "pending_review"
)

// FeedSource is one configured RSS source for the aggregator.
type FeedSource struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Category string   `json:"category"`
	Priority string   `json:"priority"` // high | medium | low
	Tags     []string `json:"tags,omitempty"`
	// Filter is an optional keyword allow-list; when set, only items whose
	// title or content contains one of the keywords are kept.
	Filter []string `json:"filter,omitempty"`
}

// NewsSourceRef is the source attribution embedded in each queued item.
type NewsSourceRef struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// NewsMetadata records fetch provenance for a queued item.
type NewsMetadata struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Status    string    `json:"status"`
}

// NewsItem is a normalized feed item waiting in the review queue for human
// curation.
type NewsItem struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	URL            string        `json:"url"`
	Content        string        `json:"content"`
	ContentSnippet string        `json:"contentSnippet"`
	PublishDate    time.Time     `json:"publishDate"`
	Author         string        `json:"author"`
	Source         NewsSourceRef `json:"source"`
	Tags           []string      `json:"tags,omitempty"`
	ImageURL       string        `json:"imageUrl,omitempty"`
	Metadata       NewsMetadata  `json:"metadata"`
}

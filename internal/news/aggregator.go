// Package news fetches configured RSS feeds, filters and dedupes their
// items and stages the survivors in a file-based review queue for human
// curation.
package news

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/oldoaktown/backend/config"
	"github.com/oldoaktown/backend/internal/models"
)

const maxItemIDLength = 50

// Report summarizes one aggregation run.
type Report struct {
	RunID              uuid.UUID      `json:"runId"`
	Date               time.Time      `json:"date"`
	TotalItemsFetched  int            `json:"totalItemsFetched"`
	BySource           map[string]int `json:"bySource"`
	ByCategory         map[string]int `json:"byCategory"`
	ByPriority         map[string]int `json:"byPriority"`
	ItemsInReviewQueue int            `json:"itemsInReviewQueue"`
}

// Aggregator runs the batch job: sequential fetch over a fixed source
// list, one HTTP request per source, with a pause between sources.
type Aggregator struct {
	sources []models.FeedSource
	queue   *ReviewQueue
	parser  *gofeed.Parser
	strip   *bluemonday.Policy
	cfg     config.FeedsConfig
	logger  *zap.Logger
}

// NewAggregator creates an aggregator over the given sources.
func NewAggregator(sources []models.FeedSource, queue *ReviewQueue, cfg config.FeedsConfig, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		sources: sources,
		queue:   queue,
		parser:  gofeed.NewParser(),
		strip:   bluemonday.StrictPolicy(),
		cfg:     cfg,
		logger:  logger,
	}
}

// Run fetches every source in order, stages new items in the review queue
// and archives a run report. Per-source failures are logged and the run
// continues; only a report-write failure is returned.
func (a *Aggregator) Run(ctx context.Context) (*Report, error) {
	a.logger.Info("starting aggregation", zap.Int("sources", len(a.sources)))

	var newItems []models.NewsItem
	for i, source := range a.sources {
		items, err := a.fetchSource(ctx, source)
		if err != nil {
			a.logger.Error("fetch source failed", zap.Error(err), zap.String("source", source.Name))
		} else {
			a.logger.Info("source fetched",
				zap.String("source", source.Name),
				zap.Int("new_items", len(items)),
			)
			newItems = append(newItems, items...)
		}

		// Pause between requests to avoid hammering endpoints.
		if i < len(a.sources)-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(a.cfg.SourceDelayMS) * time.Millisecond):
			}
		}
	}

	for i := range newItems {
		filename, err := a.queue.Save(&newItems[i])
		if err != nil {
			a.logger.Error("save to review queue failed", zap.Error(err), zap.String("item_id", newItems[i].ID))
			continue
		}
		a.logger.Info("saved to review queue", zap.String("file", filename))
	}

	report := a.buildReport(newItems)
	if err := a.queue.Archive(report); err != nil {
		return nil, fmt.Errorf("archive report: %w", err)
	}

	a.logger.Info("aggregation complete",
		zap.String("run_id", report.RunID.String()),
		zap.Int("new_items", report.TotalItemsFetched),
		zap.Int("pending_review", report.ItemsInReviewQueue),
	)
	return report, nil
}

// fetchSource fetches one feed and returns the normalized items that pass
// the source filter and are not already queued or published.
func (a *Aggregator) fetchSource(ctx context.Context, source models.FeedSource) ([]models.NewsItem, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(a.cfg.FetchTimeoutSec)*time.Second)
	defer cancel()

	feed, err := a.parser.ParseURLWithContext(source.URL, fetchCtx)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source.URL, err)
	}

	var items []models.NewsItem
	for _, item := range feed.Items {
		if !matchesFilter(item, source.Filter) {
			continue
		}
		link := item.Link
		if link == "" {
			link = item.GUID
		}
		itemID := itemID(link, item.Title)
		if itemID == "" || a.queue.Contains(itemID) {
			continue
		}

		content := item.Content
		if content == "" {
			content = item.Description
		}
		cleaned := a.cleanText(content)
		publishDate := time.Now().UTC()
		if item.PublishedParsed != nil {
			publishDate = *item.PublishedParsed
		}

		items = append(items, models.NewsItem{
			ID:             itemID,
			Title:          a.cleanText(item.Title),
			URL:            link,
			Content:        cleaned,
			ContentSnippet: truncate(cleaned, a.cfg.SnippetLength),
			PublishDate:    publishDate,
			Author:         itemAuthor(item, source.Name),
			Source: models.NewsSourceRef{
				Name:     source.Name,
				URL:      source.URL,
				Category: source.Category,
				Priority: source.Priority,
			},
			Tags:     source.Tags,
			ImageURL: extractImageURL(item),
			Metadata: models.NewsMetadata{
				FetchedAt: time.Now().UTC(),
				Status:    models.NewsStatusPendingReview,
			},
		})
	}
	return items, nil
}

func (a *Aggregator) buildReport(items []models.NewsItem) *Report {
	report := &Report{
		RunID:              uuid.New(),
		Date:               time.Now().UTC(),
		TotalItemsFetched:  len(items),
		BySource:           map[string]int{},
		ByCategory:         map[string]int{},
		ByPriority:         map[string]int{},
		ItemsInReviewQueue: a.queue.Len(),
	}
	for _, item := range items {
		report.BySource[item.Source.Name]++
		report.ByCategory[item.Source.Category]++
		report.ByPriority[item.Source.Priority]++
	}
	return report
}

var whitespace = regexp.MustCompile(`\s+`)

// cleanText strips HTML tags, decodes entities and collapses whitespace.
func (a *Aggregator) cleanText(text string) string {
	if text == "" {
		return ""
	}
	stripped := a.strip.Sanitize(text)
	return strings.TrimSpace(whitespace.ReplaceAllString(html.UnescapeString(stripped), " "))
}

// itemID derives a stable id from the item URL, falling back to the title.
func itemID(url, title string) string {
	source := url
	if source == "" {
		source = title
	}
	id := slug.Make(source)
	if len(id) > maxItemIDLength {
		id = strings.TrimRight(id[:maxItemIDLength], "-")
	}
	return id
}

// matchesFilter applies the per-source keyword allow-list. An empty filter
// keeps everything.
func matchesFilter(item *gofeed.Item, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	searchText := strings.ToLower(item.Title + " " + item.Description + " " + item.Content)
	for _, keyword := range filter {
		if strings.Contains(searchText, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func itemAuthor(item *gofeed.Item, fallback string) string {
	for _, author := range item.Authors {
		if author != nil && author.Name != "" {
			return author.Name
		}
	}
	return fallback
}

var imgTag = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)

// extractImageURL pulls an image from feed metadata, enclosures or an img
// tag in the raw content, in that order.
func extractImageURL(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	for _, raw := range []string{item.Content, item.Description} {
		if m := imgTag.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

package news

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oldoaktown/backend/internal/models"
	"github.com/oldoaktown/backend/pkg/jsonfile"
)

// ReviewQueue is the flat-file staging area for fetched news items: one
// JSON file per item under the queue directory, moved (by hand) to the
// published directory once curated.
type ReviewQueue struct {
	queueDir     string
	publishedDir string
	archiveDir   string
}

// NewReviewQueue creates a review queue over the given directories,
// creating them as needed.
func NewReviewQueue(queueDir, publishedDir, archiveDir string) (*ReviewQueue, error) {
	for _, dir := range []string{queueDir, publishedDir, archiveDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return &ReviewQueue{queueDir: queueDir, publishedDir: publishedDir, archiveDir: archiveDir}, nil
}

// Contains reports whether any file in the review queue or published
// directory already carries the item id in its name.
func (q *ReviewQueue) Contains(itemID string) bool {
	for _, dir := range []string{q.queueDir, q.publishedDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if strings.Contains(e.Name(), itemID) {
				return true
			}
		}
	}
	return false
}

// Save writes one item file into the review queue and returns its filename.
func (q *ReviewQueue) Save(item *models.NewsItem) (string, error) {
	filename := fmt.Sprintf("%s-%d.json", item.ID, time.Now().UnixMilli())
	if err := jsonfile.Write(filepath.Join(q.queueDir, filename), item); err != nil {
		return "", err
	}
	return filename, nil
}

// Len returns the number of item files currently awaiting review.
func (q *ReviewQueue) Len() int {
	entries, err := os.ReadDir(q.queueDir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".json") {
			n++
		}
	}
	return n
}

// Archive writes a run report into the archive directory.
func (q *ReviewQueue) Archive(report *Report) error {
	filename := fmt.Sprintf("aggregation-%d.json", time.Now().UnixMilli())
	return jsonfile.Write(filepath.Join(q.archiveDir, filename), report)
}

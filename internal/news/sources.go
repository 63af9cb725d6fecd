package news

import "github.com/oldoaktown/backend/internal/models"

// DefaultSources is the fixed feed list for the Old Oak Common area. Feeds
// without a filter take every item; the trade feeds are narrowed to local
// keywords.
var DefaultSources = []models.FeedSource{
	{
		Name:     "HS2 Ltd",
		URL:      "https://www.hs2.org.uk/feed/",
		Category: "hs2",
		Priority: "high",
		Tags:     []string{"hs2", "transport", "infrastructure"},
	},
	{
		Name:     "Construction Enquirer",
		URL:      "https://www.constructionenquirer.com/feed/",
		Category: "construction",
		Priority: "medium",
		Tags:     []string{"construction", "development"},
		Filter:   []string{"old oak", "hs2", "park royal"},
	},
	{
		Name:     "Old Oak Neighbourhood Forum",
		URL:      "http://oldoakneighbourhoodforum.org/feed/",
		Category: "community",
		Priority: "high",
		Tags:     []string{"community", "residents", "local"},
	},
	{
		Name:     "Railway PRO",
		URL:      "https://www.railwaypro.com/feed/",
		Category: "transport",
		Priority: "medium",
		Tags:     []string{"transport", "railway", "infrastructure"},
		Filter:   []string{"old oak", "hs2", "elizabeth line"},
	},
	{
		Name:     "OPDC Planning",
		URL:      "https://www.london.gov.uk/opdc/feeds/news.xml",
		Category: "planning",
		Priority: "high",
		Tags:     []string{"planning", "development", "opdc"},
	},
}

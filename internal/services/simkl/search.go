package simkl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/amaumene/movienarr/internal/media"
)

const maxLabelLength = 75

// Choice is one autocomplete option handed to the command surface
type Choice struct {
	Label string `json:"name"`
	Value int64  `json:"value"`
}

// Search queries the provider for titles matching the search string.
// Results without a year are excluded, labels are capped at 75 characters,
// and repeated lookups are deduplicated by the TTL cache.
func (c *Client) Search(ctx context.Context, kind media.Kind, search string) ([]Choice, error) {
	cacheKey := strings.ReplaceAll(search, " ", "_") + "_" + searchSlug(kind)
	if cached, found := c.searchCache.Get(cacheKey); found {
		c.logger.WithField("key", cacheKey).Debug("Search cache hit")
		return cached, nil
	}

	c.logger.WithFields(map[string]interface{}{
		"kind":   kind,
		"search": search,
	}).Info("Searching Simkl")

	path := fmt.Sprintf("/search/%s?q=%s&client_id=%s", searchSlug(kind), url.QueryEscape(search), c.clientID)

	var results []searchResult
	if err := c.doRequest(ctx, path, &results); err != nil {
		return nil, fmt.Errorf("simkl search failed: %w", err)
	}

	choices := make([]Choice, 0, len(results))
	for _, result := range results {
		if result.Year == 0 {
			continue
		}
		choices = append(choices, Choice{
			Label: fmt.Sprintf("%s (%d)", truncateLabel(result.Title), result.Year),
			Value: result.IDs.SimklID,
		})
	}

	c.searchCache.Set(cacheKey, choices)
	return choices, nil
}

// searchSlug returns the singular path segment the search endpoint expects
func searchSlug(kind media.Kind) string {
	if kind == media.KindShow {
		return "tv"
	}
	return "movie"
}

func truncateLabel(title string) string {
	runes := []rune(title)
	if len(runes) <= maxLabelLength {
		return title
	}
	return string(runes[:maxLabelLength-3]) + "..."
}

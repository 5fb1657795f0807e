package controllers

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amaumene/movienarr/internal/media"
	"github.com/amaumene/movienarr/internal/models"
	"github.com/amaumene/movienarr/internal/services/simkl"
)

const (
	// maxSearchLength matches the provider's query limit
	maxSearchLength = 75
	// defaultSearchProbe is queried while the user input is still too
	// short to be meaningful
	defaultSearchProbe = "avatar"
)

var searchSanitizer = regexp.MustCompile(`[^A-Za-z0-9?! ]`)

// Choice is one autocomplete option handed to the command surface
type Choice struct {
	Label string `json:"name"`
	Value int64  `json:"value"`
}

// WatchlistController orchestrates the entry lifecycle against the store,
// using the provider client for any external refresh
type WatchlistController struct {
	db     *models.Database
	simkl  *simkl.Client
	logger *logrus.Logger
}

// NewWatchlistController creates a new watch-list controller
func NewWatchlistController(db *models.Database, simklClient *simkl.Client, logger *logrus.Logger) *WatchlistController {
	return &WatchlistController{
		db:     db,
		simkl:  simklClient,
		logger: logger,
	}
}

// Add puts a new entry on a kind's list. The existence check runs before
// the provider fetch so duplicates never cost an external call. Returns
// models.ErrConflict for duplicates and models.ErrNotFound when the
// provider has no usable metadata for the id.
func (c *WatchlistController) Add(ctx context.Context, kind media.Kind, simklID int64, ownerName string, ownerID int64) (media.Media, error) {
	exists, err := c.db.EntryExists(kind, simklID)
	if err != nil {
		return media.Media{}, fmt.Errorf("failed to check entry: %w", err)
	}
	if exists {
		return media.Media{}, models.ErrConflict
	}

	m, err := c.simkl.Fetch(ctx, kind, simklID)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"kind":     kind,
			"simkl_id": simklID,
		}).Error("Failed to fetch media from provider")
		return media.Media{}, models.ErrNotFound
	}

	now := time.Now().Unix()
	releaseTime := m.ReleaseTimestamp()
	entry := &models.MediaEntry{
		Kind:        kind,
		SimklID:     simklID,
		IMDBID:      m.IDs.IMDB,
		Title:       m.Title,
		IsReleased:  released(releaseTime, now),
		ReleaseTime: releaseTime,
		Runtime:     m.Runtime,
		Rating:      m.Rating,
		AddedAt:     now,
		OwnerName:   ownerName,
		OwnerID:     ownerID,
	}

	if err := c.db.InsertEntry(entry); err != nil {
		return media.Media{}, fmt.Errorf("failed to insert entry: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"kind":  kind,
		"title": m.Title,
		"owner": ownerName,
	}).Info("Added entry to watch list")

	return m, nil
}

// SetWatched moves an entry into the watched partition. Calling it again
// just advances the timestamp.
func (c *WatchlistController) SetWatched(kind media.Kind, simklID int64) error {
	return c.db.SetWatched(kind, simklID)
}

// Remove deletes an entry, gated on ownership inside the store
func (c *WatchlistController) Remove(kind media.Kind, simklID int64, ownerID int64) error {
	return c.db.RemoveEntry(kind, simklID, ownerID)
}

// RandomPick selects a released, unwatched entry uniformly at random and
// fetches its full metadata for the preview. Passes through
// models.ErrNoEligibleEntries when nothing qualifies.
func (c *WatchlistController) RandomPick(ctx context.Context, kind media.Kind) (media.Media, int64, int64, error) {
	entry, err := c.db.RandomReleased(kind)
	if err != nil {
		return media.Media{}, 0, 0, err
	}

	m, err := c.simkl.Fetch(ctx, kind, entry.SimklID)
	if err != nil {
		return media.Media{}, 0, 0, fmt.Errorf("failed to fetch picked media: %w", err)
	}

	return m, entry.OwnerID, entry.AddedAt, nil
}

// Info fetches the detailed metadata for an entry currently on the
// to-watch list, plus its owner context. models.ErrNotFound means the
// entry is not on that list.
func (c *WatchlistController) Info(ctx context.Context, kind media.Kind, simklID int64) (media.Media, int64, int64, error) {
	ownerID, addedAt, err := c.db.OwnerInfo(kind, simklID)
	if err != nil {
		return media.Media{}, 0, 0, err
	}

	m, err := c.simkl.Fetch(ctx, kind, simklID)
	if err != nil {
		return media.Media{}, 0, 0, fmt.Errorf("failed to fetch media: %w", err)
	}

	return m, ownerID, addedAt, nil
}

// RefreshUnreleased re-derives the release state of every unreleased
// entry from fresh provider metadata. Entries are refreshed sequentially,
// in list order; a failed fetch skips the entry and keeps going.
func (c *WatchlistController) RefreshUnreleased(ctx context.Context) error {
	for _, kind := range media.Kinds() {
		entries, err := c.db.UnreleasedEntries(kind)
		if err != nil {
			return fmt.Errorf("failed to get unreleased %s entries: %w", kind, err)
		}

		c.logger.WithFields(logrus.Fields{
			"kind":  kind,
			"count": len(entries),
		}).Info("Refreshing unreleased entries")

		for _, entry := range entries {
			m, err := c.simkl.Fetch(ctx, kind, entry.SimklID)
			if err != nil {
				c.logger.WithError(err).WithFields(logrus.Fields{
					"kind":     kind,
					"simkl_id": entry.SimklID,
				}).Error("Failed to refresh entry, skipping")
				continue
			}

			releaseTime := m.ReleaseTimestamp()
			entry.IsReleased = released(releaseTime, time.Now().Unix())
			entry.ReleaseTime = releaseTime
			entry.Runtime = m.Runtime
			entry.Rating = m.Rating

			if err := c.db.UpdateEntry(entry); err != nil {
				c.logger.WithError(err).Error("Failed to update refreshed entry")
			}
		}
	}

	return nil
}

// SearchProvider queries the provider for autocomplete choices. Input is
// sanitized before it leaves the process; inputs still too short to be
// useful fall back to a default probe, over-long ones yield nothing.
func (c *WatchlistController) SearchProvider(ctx context.Context, kind media.Kind, search string) ([]Choice, error) {
	sanitized := defaultSearchProbe
	if len(search) >= 2 {
		sanitized = searchSanitizer.ReplaceAllString(search, "")
	}
	if sanitized == "" || len(sanitized) >= maxSearchLength {
		return []Choice{}, nil
	}

	results, err := c.simkl.Search(ctx, kind, strings.ToLower(sanitized))
	if err != nil {
		return nil, err
	}

	choices := make([]Choice, 0, len(results))
	for _, result := range results {
		choices = append(choices, Choice{Label: result.Label, Value: result.Value})
	}
	return choices, nil
}

// SearchToWatch matches unwatched entries for autocomplete
func (c *WatchlistController) SearchToWatch(kind media.Kind, search string) ([]Choice, error) {
	entries, err := c.db.SearchToWatchTitles(kind, search)
	if err != nil {
		return nil, err
	}
	return entryChoices(entries), nil
}

// SearchOwned matches the caller's own entries for autocomplete, watched
// or not, so remove can offer everything the caller may delete
func (c *WatchlistController) SearchOwned(kind media.Kind, search string, ownerID int64) ([]Choice, error) {
	entries, err := c.db.OwnedEntries(kind, search, ownerID)
	if err != nil {
		return nil, err
	}
	return entryChoices(entries), nil
}

func entryChoices(entries []*models.MediaEntry) []Choice {
	choices := make([]Choice, 0, len(entries))
	for _, entry := range entries {
		choices = append(choices, Choice{Label: entry.Title, Value: entry.SimklID})
	}
	return choices
}

// released derives the lifecycle release flag. A zero release time means
// the release is unknown, which never counts as released.
func released(releaseTime, now int64) bool {
	return releaseTime != 0 && releaseTime <= now
}

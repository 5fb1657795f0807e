package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/movienarr/internal/cache"
	"github.com/amaumene/movienarr/internal/config"
	"github.com/amaumene/movienarr/internal/media"
	"github.com/amaumene/movienarr/internal/models"
	"github.com/amaumene/movienarr/internal/services/simkl"
)

func newTestController(t *testing.T, handler http.Handler) (*WatchlistController, *models.Database) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	db, err := models.NewDatabase(filepath.Join(t.TempDir(), "list.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	client, err := simkl.NewClient(&config.Config{
		SimklClientID: "test-client-id",
		SimklBaseURL:  server.URL,
	}, cache.New[[]simkl.Choice](100, time.Minute), logger)
	require.NoError(t, err)

	return NewWatchlistController(db, client, logger), db
}

func payloadHandler(t *testing.T, payloads map[string]string, calls *int) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			*calls++
		}
		body, ok := payloads[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	})
}

func TestAddThenWatchLifecycle(t *testing.T) {
	ctrl, _ := newTestController(t, payloadHandler(t, map[string]string{
		"/movies/100": `{"title": "Dune", "year": 2021, "ids": {"simkl": 100, "imdb": "tt1160419"}, "released": "2021-09-15"}`,
	}, nil))
	ctx := context.Background()

	m, err := ctrl.Add(ctx, media.KindMovie, 100, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", m.Title)

	// the new entry lands on the to-watch view with its metadata gaps
	// rendered as placeholders
	display, err := ctrl.ToWatchDisplay()
	require.NoError(t, err)

	var bodies []string
	for _, f := range display.Fields {
		bodies = append(bodies, f.Value)
	}
	joined := strings.Join(bodies, "\n")
	assert.Contains(t, joined, "[Dune](https://simkl.com/movies/100/)")
	assert.Contains(t, joined, "N/A")
	assert.Contains(t, joined, "★ N/A")

	// watching moves it across partitions
	require.NoError(t, ctrl.SetWatched(media.KindMovie, 100))

	display, err = ctrl.ToWatchDisplay()
	require.NoError(t, err)
	for _, f := range display.Fields {
		assert.NotContains(t, f.Value, "Dune")
	}

	watched, err := ctrl.WatchedDisplay()
	require.NoError(t, err)
	var found bool
	for _, f := range watched.Fields {
		if strings.Contains(f.Value, "Dune") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAddDuplicateSkipsProvider(t *testing.T) {
	var calls int
	ctrl, _ := newTestController(t, payloadHandler(t, map[string]string{
		"/movies/100": `{"title": "Dune", "ids": {"simkl": 100}}`,
	}, &calls))
	ctx := context.Background()

	_, err := ctrl.Add(ctx, media.KindMovie, 100, "alice", 1)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	// the duplicate is rejected before any provider traffic
	_, err = ctrl.Add(ctx, media.KindMovie, 100, "bob", 2)
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, 1, calls)
}

func TestAddUnknownID(t *testing.T) {
	ctrl, _ := newTestController(t, payloadHandler(t, nil, nil))

	_, err := ctrl.Add(context.Background(), media.KindMovie, 999, "alice", 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddDerivesReleaseState(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	ctrl, db := newTestController(t, payloadHandler(t, map[string]string{
		"/movies/100": `{"title": "Dune", "ids": {"simkl": 100}, "released": "2021-09-15"}`,
		"/movies/101": fmt.Sprintf(`{"title": "Dune: Part Three", "ids": {"simkl": 101}, "released": %q}`, future),
		"/movies/102": `{"title": "Shelved", "ids": {"simkl": 102}}`,
	}, nil))
	ctx := context.Background()

	_, err := ctrl.Add(ctx, media.KindMovie, 100, "alice", 1)
	require.NoError(t, err)
	_, err = ctrl.Add(ctx, media.KindMovie, 101, "alice", 1)
	require.NoError(t, err)
	_, err = ctrl.Add(ctx, media.KindMovie, 102, "alice", 1)
	require.NoError(t, err)

	unreleased, err := db.UnreleasedEntries(media.KindMovie)
	require.NoError(t, err)
	require.Len(t, unreleased, 2)

	byID := map[int64]*models.MediaEntry{}
	for _, entry := range unreleased {
		byID[entry.SimklID] = entry
	}

	// a future date is unreleased with a known time
	require.Contains(t, byID, int64(101))
	assert.NotZero(t, byID[101].ReleaseTime)

	// an absent date is unreleased indefinitely
	require.Contains(t, byID, int64(102))
	assert.Zero(t, byID[102].ReleaseTime)
}

func TestRandomPick(t *testing.T) {
	ctrl, db := newTestController(t, payloadHandler(t, map[string]string{
		"/movies/100": `{"title": "Dune", "ids": {"simkl": 100}, "released": "2021-09-15"}`,
	}, nil))
	ctx := context.Background()

	_, _, _, err := ctrl.RandomPick(ctx, media.KindMovie)
	assert.ErrorIs(t, err, models.ErrNoEligibleEntries)

	_, err = ctrl.Add(ctx, media.KindMovie, 100, "alice", 42)
	require.NoError(t, err)

	m, ownerID, addedAt, err := ctrl.RandomPick(ctx, media.KindMovie)
	require.NoError(t, err)
	assert.Equal(t, "Dune", m.Title)
	assert.Equal(t, int64(42), ownerID)
	assert.NotZero(t, addedAt)

	// once watched, nothing is eligible again
	require.NoError(t, db.SetWatched(media.KindMovie, 100))
	_, _, _, err = ctrl.RandomPick(ctx, media.KindMovie)
	assert.ErrorIs(t, err, models.ErrNoEligibleEntries)
}

func TestInfo(t *testing.T) {
	ctrl, _ := newTestController(t, payloadHandler(t, map[string]string{
		"/movies/100": `{"title": "Dune", "ids": {"simkl": 100}, "released": "2021-09-15"}`,
	}, nil))
	ctx := context.Background()

	_, _, _, err := ctrl.Info(ctx, media.KindMovie, 100)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = ctrl.Add(ctx, media.KindMovie, 100, "alice", 42)
	require.NoError(t, err)

	m, ownerID, _, err := ctrl.Info(ctx, media.KindMovie, 100)
	require.NoError(t, err)
	assert.Equal(t, "Dune", m.Title)
	assert.Equal(t, int64(42), ownerID)
}

func TestRefreshUnreleased(t *testing.T) {
	payloads := map[string]string{
		"/movies/100": `{"title": "Dune: Part Three", "ids": {"simkl": 100}}`,
	}
	ctrl, db := newTestController(t, payloadHandler(t, payloads, nil))
	ctx := context.Background()

	_, err := ctrl.Add(ctx, media.KindMovie, 100, "alice", 1)
	require.NoError(t, err)

	unreleased, err := db.UnreleasedEntries(media.KindMovie)
	require.NoError(t, err)
	require.Len(t, unreleased, 1)

	// the provider learns the date, and it is already in the past
	payloads["/movies/100"] = `{"title": "Dune: Part Three", "ids": {"simkl": 100}, "released": "2021-09-15", "runtime": 150, "ratings": {"imdb": {"rating": 8.2}}}`
	require.NoError(t, ctrl.RefreshUnreleased(ctx))

	unreleased, err = db.UnreleasedEntries(media.KindMovie)
	require.NoError(t, err)
	assert.Empty(t, unreleased)

	entries, err := db.ToWatchEntries(media.KindMovie)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsReleased)
	assert.Equal(t, 150, entries[0].Runtime)
	assert.Equal(t, 8.2, entries[0].Rating)
}

func TestRefreshSkipsFailedFetches(t *testing.T) {
	ctrl, db := newTestController(t, payloadHandler(t, map[string]string{
		"/movies/100": `{"title": "Dune: Part Three", "ids": {"simkl": 100}}`,
	}, nil))
	ctx := context.Background()

	_, err := ctrl.Add(ctx, media.KindMovie, 100, "alice", 1)
	require.NoError(t, err)

	entry := &models.MediaEntry{Kind: media.KindMovie, SimklID: 999, Title: "Ghost", OwnerID: 1}
	require.NoError(t, db.InsertEntry(entry))

	// the unknown id fails its fetch and the pass keeps going
	require.NoError(t, ctrl.RefreshUnreleased(ctx))

	unreleased, err := db.UnreleasedEntries(media.KindMovie)
	require.NoError(t, err)
	assert.Len(t, unreleased, 2)
}

func TestSearchProviderSanitization(t *testing.T) {
	var queries []string
	ctrl, _ := newTestController(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		fmt.Fprint(w, `[]`)
	}))
	ctx := context.Background()

	// short input falls back to the default probe
	_, err := ctrl.SearchProvider(ctx, media.KindMovie, "d")
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, "avatar", queries[0])

	// markup-ish characters are stripped and the rest lowercased
	_, err = ctrl.SearchProvider(ctx, media.KindMovie, `Dune: "Part" <Two>`)
	require.NoError(t, err)
	require.Len(t, queries, 2)
	assert.Equal(t, "dune part two", queries[1])

	// an input that sanitizes to nothing never reaches the provider
	choices, err := ctrl.SearchProvider(ctx, media.KindMovie, "@@@")
	require.NoError(t, err)
	assert.Empty(t, choices)
	assert.Len(t, queries, 2)

	// over-long input is dropped the same way
	choices, err = ctrl.SearchProvider(ctx, media.KindMovie, strings.Repeat("a", 80))
	require.NoError(t, err)
	assert.Empty(t, choices)
	assert.Len(t, queries, 2)

	// punctuation the sanitizer keeps survives
	_, err = ctrl.SearchProvider(ctx, media.KindMovie, "What If...?")
	require.NoError(t, err)
	require.Len(t, queries, 3)
	assert.Equal(t, "what if?", queries[2])
}

func TestSearchToWatchAndOwned(t *testing.T) {
	ctrl, db := newTestController(t, payloadHandler(t, nil, nil))

	mine := &models.MediaEntry{Kind: media.KindMovie, SimklID: 100, Title: "Dune", OwnerID: 1}
	require.NoError(t, db.InsertEntry(mine))
	theirs := &models.MediaEntry{Kind: media.KindMovie, SimklID: 101, Title: "Dune: Part Two", OwnerID: 2}
	require.NoError(t, db.InsertEntry(theirs))

	choices, err := ctrl.SearchToWatch(media.KindMovie, "dune")
	require.NoError(t, err)
	assert.Len(t, choices, 2)

	choices, err = ctrl.SearchOwned(media.KindMovie, "dune", 1)
	require.NoError(t, err)
	require.Len(t, choices, 1)
	assert.Equal(t, Choice{Label: "Dune", Value: 100}, choices[0])
}

func TestReleased(t *testing.T) {
	now := int64(1700000000)

	assert.True(t, released(now-1, now))
	assert.True(t, released(now, now))
	assert.False(t, released(now+1, now))

	// an unknown release time never counts as released
	assert.False(t, released(0, now))
}

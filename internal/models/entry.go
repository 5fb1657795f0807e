package models

import (
	"errors"
	"fmt"

	"github.com/amaumene/movienarr/internal/media"
)

var (
	// ErrConflict is returned when inserting an entry that already exists
	ErrConflict = errors.New("entry already exists")

	// ErrNotFound is returned when an entry is not on the list
	ErrNotFound = errors.New("entry not found")

	// ErrNoEligibleEntries is returned by RandomReleased when nothing is
	// both released and unwatched
	ErrNoEligibleEntries = errors.New("no eligible entries")
)

// MediaEntry is a persisted watch-list row. An entry is in exactly one of
// three lifecycle states derived from (IsReleased, WatchedAt):
// unwatched-unreleased, unwatched-released, or watched.
type MediaEntry struct {
	Kind    media.Kind `boltholdIndex:"Kind"`
	SimklID int64
	IMDBID  string

	Title       string
	IsReleased  bool
	ReleaseTime int64
	Runtime     int // minutes
	Rating      float64

	AddedAt   int64
	WatchedAt int64 // 0 = not watched

	OwnerName string
	OwnerID   int64
}

// Key returns the store key. Embedding the kind makes per-kind uniqueness
// of the external id a key constraint.
func (e *MediaEntry) Key() string {
	return fmt.Sprintf("%s:%d", e.Kind, e.SimklID)
}

// Watched reports whether the entry is in the watched partition
func (e *MediaEntry) Watched() bool {
	return e.WatchedAt != 0
}

package models

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/amaumene/movienarr/internal/media"
)

// SearchLimit caps autocomplete query results
const SearchLimit = 25

// Database wraps the bolthold store holding the two watch-list collections
type Database struct {
	store *bolthold.Store
}

// NewDatabase creates a new database connection
func NewDatabase(path string) (*Database, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Database{store: store}, nil
}

// Close closes the database connection
func (db *Database) Close() error {
	return db.store.Close()
}

// EntryExists reports whether an entry with the given external id is on
// the kind's list
func (db *Database) EntryExists(kind media.Kind, simklID int64) (bool, error) {
	err := db.store.Get(entryKey(kind, simklID), &MediaEntry{})
	if errors.Is(err, bolthold.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertEntry creates a new entry. Inserting an external id already on the
// kind's list fails with ErrConflict and leaves the existing row untouched.
func (db *Database) InsertEntry(entry *MediaEntry) error {
	err := db.store.Insert(entry.Key(), entry)
	if errors.Is(err, bolthold.ErrKeyExists) {
		return ErrConflict
	}
	return err
}

// UpdateEntry overwrites an existing entry
func (db *Database) UpdateEntry(entry *MediaEntry) error {
	return db.store.Update(entry.Key(), entry)
}

// SetWatched stamps the entry with the current time. Repeated calls keep
// advancing the timestamp; a missing id is a silent no-op.
func (db *Database) SetWatched(kind media.Kind, simklID int64) error {
	var entry MediaEntry
	err := db.store.Get(entryKey(kind, simklID), &entry)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	entry.WatchedAt = time.Now().Unix()
	return db.store.Update(entry.Key(), &entry)
}

// RemoveEntry deletes the entry only when both the id and the owner match.
// A missing id and a non-owning caller are both silent no-ops; the cause is
// not surfaced so remove cannot be used as an ownership oracle.
func (db *Database) RemoveEntry(kind media.Kind, simklID int64, ownerID int64) error {
	var entry MediaEntry
	err := db.store.Get(entryKey(kind, simklID), &entry)
	if errors.Is(err, bolthold.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if entry.OwnerID != ownerID {
		return nil
	}

	return db.store.Delete(entry.Key(), &MediaEntry{})
}

// UnreleasedEntries retrieves all entries still waiting on a release
func (db *Database) UnreleasedEntries(kind media.Kind) ([]*MediaEntry, error) {
	var entries []*MediaEntry
	err := db.store.Find(&entries, bolthold.Where("Kind").Eq(kind).And("IsReleased").Eq(false))
	return entries, err
}

// ToWatchEntries retrieves the unwatched rows of a kind, oldest added first
func (db *Database) ToWatchEntries(kind media.Kind) ([]*MediaEntry, error) {
	var entries []*MediaEntry
	err := db.store.Find(&entries, bolthold.Where("Kind").Eq(kind).And("WatchedAt").Eq(int64(0)))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AddedAt < entries[j].AddedAt
	})
	return entries, nil
}

// WatchedEntries retrieves the watched rows of a kind. Titles starting with
// a non-letter sort after letter-starting ones, then case-insensitive by title.
func (db *Database) WatchedEntries(kind media.Kind) ([]*MediaEntry, error) {
	var entries []*MediaEntry
	err := db.store.Find(&entries, bolthold.Where("Kind").Eq(kind).And("WatchedAt").Ne(int64(0)))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		li, lj := letterInitial(entries[i].Title), letterInitial(entries[j].Title)
		if li != lj {
			return li
		}
		return strings.ToLower(entries[i].Title) < strings.ToLower(entries[j].Title)
	})
	return entries, nil
}

// SearchToWatchTitles matches unwatched rows whose title contains the
// substring, case-insensitively
func (db *Database) SearchToWatchTitles(kind media.Kind, substring string) ([]*MediaEntry, error) {
	entries, err := db.ToWatchEntries(kind)
	if err != nil {
		return nil, err
	}
	return filterByTitle(entries, substring), nil
}

// OwnedEntries matches rows added by ownerID whose title contains the
// substring, watched or not
func (db *Database) OwnedEntries(kind media.Kind, substring string, ownerID int64) ([]*MediaEntry, error) {
	var entries []*MediaEntry
	err := db.store.Find(&entries, bolthold.Where("Kind").Eq(kind).And("OwnerID").Eq(ownerID))
	if err != nil {
		return nil, err
	}
	return filterByTitle(entries, substring), nil
}

// RandomReleased picks uniformly among released, unwatched entries of a
// kind. An empty eligible set yields ErrNoEligibleEntries, never a crash.
func (db *Database) RandomReleased(kind media.Kind) (*MediaEntry, error) {
	var entries []*MediaEntry
	err := db.store.Find(&entries, bolthold.Where("Kind").Eq(kind).
		And("IsReleased").Eq(true).
		And("WatchedAt").Eq(int64(0)))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEligibleEntries
	}

	return entries[rand.IntN(len(entries))], nil
}

// OwnerInfo returns the owner id and added-at time for an entry currently
// on the to-watch list. ErrNotFound means the entry is not on that list.
func (db *Database) OwnerInfo(kind media.Kind, simklID int64) (int64, int64, error) {
	var entry MediaEntry
	err := db.store.Get(entryKey(kind, simklID), &entry)
	if errors.Is(err, bolthold.ErrNotFound) {
		return 0, 0, ErrNotFound
	}
	if err != nil {
		return 0, 0, err
	}
	if entry.Watched() {
		return 0, 0, ErrNotFound
	}

	return entry.OwnerID, entry.AddedAt, nil
}

func entryKey(kind media.Kind, simklID int64) string {
	return (&MediaEntry{Kind: kind, SimklID: simklID}).Key()
}

func letterInitial(title string) bool {
	for _, r := range title {
		return unicode.IsLetter(r)
	}
	return false
}

func filterByTitle(entries []*MediaEntry, substring string) []*MediaEntry {
	needle := strings.ToLower(substring)

	matches := make([]*MediaEntry, 0, SearchLimit)
	for _, entry := range entries {
		if !strings.Contains(strings.ToLower(entry.Title), needle) {
			continue
		}
		matches = append(matches, entry)
		if len(matches) == SearchLimit {
			break
		}
	}
	return matches
}

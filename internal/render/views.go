package render

import (
	"fmt"

	"github.com/amaumene/movienarr/internal/media"
	"github.com/amaumene/movienarr/internal/models"
)

// The two list views are the only shapes this engine serves.
const (
	ToWatchTitle = "To Watch"
	WatchedTitle = "Watched"

	ToWatchColor = 0x87ff00
	WatchedColor = 0xff0000

	ToWatchChunkSize = 15
	WatchedChunkSize = 35
)

const entryURLPattern = "https://simkl.com/%s/%d/"

// NewToWatchDisplay renders the to-watch view from the two kind sections
func NewToWatchDisplay(movies, shows Columns) Display {
	columnTitles := [3]string{"Title", "Runtime", "IMDb"}
	return BuildListDisplay(ToWatchTitle, ToWatchColor, movies, shows, columnTitles, ToWatchChunkSize)
}

// NewWatchedDisplay renders the watched view from the two kind sections
func NewWatchedDisplay(movies, shows Columns) Display {
	columnTitles := [3]string{"Title", "Watched", blankGlyph}
	return BuildListDisplay(WatchedTitle, WatchedColor, movies, shows, columnTitles, WatchedChunkSize)
}

// ToWatchColumns builds the linked title / runtime / rating columns for
// one kind. Unreleased entries with a known date carry a relative-time
// suffix on the title.
func ToWatchColumns(kind media.Kind, entries []*models.MediaEntry) Columns {
	var cols Columns
	for _, entry := range entries {
		title := Link(media.PrintableTitle(entry.Title), fmt.Sprintf(entryURLPattern, kind.Slug(), entry.SimklID))
		if !entry.IsReleased && entry.ReleaseTime != 0 {
			title += fmt.Sprintf(" (%s)", RelativeTime(entry.ReleaseTime))
		}

		cols[0] = append(cols[0], title)
		cols[1] = append(cols[1], media.ConvertMinutes(entry.Runtime))
		cols[2] = append(cols[2], media.PrintableRating(entry.Rating))
	}
	return cols
}

// WatchedColumns builds the plain title / watched-time columns for one
// kind. The third column stays empty and renders as the blank placeholder.
func WatchedColumns(entries []*models.MediaEntry) Columns {
	var cols Columns
	for _, entry := range entries {
		cols[0] = append(cols[0], media.PrintableTitle(entry.Title))
		cols[1] = append(cols[1], RelativeTime(entry.WatchedAt))
	}
	return cols
}

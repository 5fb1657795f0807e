package controllers

import (
	"fmt"
	"time"

	"github.com/amaumene/movienarr/internal/media"
	"github.com/amaumene/movienarr/internal/render"
)

// ToWatchDisplay queries both kinds and renders the to-watch view
func (c *WatchlistController) ToWatchDisplay() (render.Display, error) {
	movies, err := c.db.ToWatchEntries(media.KindMovie)
	if err != nil {
		return render.Display{}, fmt.Errorf("failed to query movies: %w", err)
	}
	shows, err := c.db.ToWatchEntries(media.KindShow)
	if err != nil {
		return render.Display{}, fmt.Errorf("failed to query shows: %w", err)
	}

	return render.NewToWatchDisplay(
		render.ToWatchColumns(media.KindMovie, movies),
		render.ToWatchColumns(media.KindShow, shows),
	), nil
}

// WatchedDisplay queries both kinds and renders the watched view
func (c *WatchlistController) WatchedDisplay() (render.Display, error) {
	movies, err := c.db.WatchedEntries(media.KindMovie)
	if err != nil {
		return render.Display{}, fmt.Errorf("failed to query movies: %w", err)
	}
	shows, err := c.db.WatchedEntries(media.KindShow)
	if err != nil {
		return render.Display{}, fmt.Errorf("failed to query shows: %w", err)
	}

	return render.NewWatchedDisplay(
		render.WatchedColumns(movies),
		render.WatchedColumns(shows),
	), nil
}

// AddedPreview renders the confirmation preview shown after an add
func AddedPreview(m media.Media) render.Display {
	return render.NewPreviewDisplay(m, render.PreviewColorAdded)
}

// InfoPreview renders the detailed preview with the added-by line
func InfoPreview(m media.Media, ownerID, addedAt int64) render.Display {
	return render.NewPreviewDisplay(m, render.PreviewColorInfo,
		render.WithAddedByLine(ownerID, addedAt))
}

// RandomPreview renders the ephemeral random-pick preview with owner
// context and a deletion countdown
func RandomPreview(m media.Media, ownerID, addedAt int64) render.Display {
	return render.NewPreviewDisplay(m, render.PreviewColorInfo,
		render.WithOwnerField(ownerID, addedAt),
		render.WithDeletionCountdown(time.Now()))
}

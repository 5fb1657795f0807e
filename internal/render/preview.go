package render

import (
	"fmt"
	"time"

	"github.com/amaumene/movienarr/internal/media"
)

const (
	imdbURLPattern      = "https://imdb.com/title/%s"
	shortIMDBURLPattern = "imdb.com/title/%s"
	posterURLPattern    = "https://simkl.in/posters/%s_m.webp"

	// PreviewColorAdded decorates the confirmation preview after an add
	PreviewColorAdded = 0x87ff00
	// PreviewColorInfo decorates info and random-pick previews
	PreviewColorInfo = 0xfaff00

	// RandomPickTTL is how long an ephemeral random-pick display lives
	RandomPickTTL = 600 * time.Second
	// the countdown points slightly before the actual deletion so the
	// surface never shows a moment of overdue text
	countdownLead = 5 * time.Second
)

// PreviewOption appends trailing context fields to a preview display
type PreviewOption func(*Display)

// WithAddedByLine appends the single italic added-by line used by info
// previews
func WithAddedByLine(ownerID, addedAt int64) PreviewOption {
	return func(d *Display) {
		d.Fields = append(d.Fields, Field{
			Name:   blankGlyph,
			Value:  Italic(fmt.Sprintf("Added by %s %s", Mention(ownerID), RelativeTime(addedAt))),
			Inline: false,
		})
	}
}

// WithOwnerField appends the named added-by field used by random picks
func WithOwnerField(ownerID, addedAt int64) PreviewOption {
	return func(d *Display) {
		d.Fields = append(d.Fields, Field{
			Name:   "Added By",
			Value:  fmt.Sprintf("%s %s", Mention(ownerID), RelativeTime(addedAt)),
			Inline: false,
		})
	}
}

// WithDeletionCountdown marks the display ephemeral and appends the
// countdown notice
func WithDeletionCountdown(now time.Time) PreviewOption {
	return func(d *Display) {
		deleteAt := now.Add(RandomPickTTL - countdownLead).Unix()
		d.Fields = append(d.Fields, Field{
			Name:   blankGlyph,
			Value:  Italic(fmt.Sprintf("Deleting %s", RelativeTime(deleteAt))),
			Inline: false,
		})
		d.DeleteAfter = int64(RandomPickTTL / time.Second)
	}
}

// NewPreviewDisplay renders the detailed single-item view for one
// canonical media record
func NewPreviewDisplay(m media.Media, color int, opts ...PreviewOption) Display {
	shortURL := fmt.Sprintf(shortIMDBURLPattern, m.IDs.IMDB)
	url := fmt.Sprintf(imdbURLPattern, m.IDs.IMDB)

	d := Display{
		Title:     m.Title,
		URL:       url,
		Color:     color,
		Thumbnail: fmt.Sprintf(posterURLPattern, m.Poster),
		Author: &Author{
			Name: fmt.Sprintf("%s %s 🞄 %s", m.Kind.Emoji(), m.Kind.Label(), shortURL),
			URL:  url,
		},
		Fields: []Field{
			{Name: "Runtime", Value: m.PrintableRuntime(), Inline: true},
			{Name: "IMDb", Value: m.PrintableRating(), Inline: true},
			{Name: "Rating", Value: m.Certification, Inline: true},
			{Name: "Genres", Value: m.PrintableGenres(), Inline: false},
			{Name: "Description", Value: m.Overview, Inline: false},
			{Name: "Release Date", Value: formatReleaseDate(m.ReleaseTimestamp()), Inline: false},
		},
	}

	switch m.Kind {
	case media.KindShow:
		d.Fields = append(d.Fields,
			Field{Name: "Episodes", Value: m.PrintableEpisodes(), Inline: true},
			Field{Name: "Status", Value: m.PrintableStatus(), Inline: true},
			Field{Name: "Network", Value: showNetwork(m), Inline: true},
		)
	default:
		d.Fields = append(d.Fields,
			Field{Name: "Director", Value: movieDirector(m), Inline: true},
			Field{Name: "Budget", Value: m.PrintableBudget(), Inline: true},
			Field{Name: "Revenue", Value: m.PrintableRevenue(), Inline: true},
		)
	}

	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// formatReleaseDate renders "January 2, 2006 (<t:ts:R>)", or N/A for an
// unknown release
func formatReleaseDate(ts int64) string {
	if ts == 0 {
		return media.NotAvailable
	}
	readable := time.Unix(ts, 0).UTC().Format("January 2, 2006")
	return fmt.Sprintf("%s (%s)", readable, RelativeTime(ts))
}

func movieDirector(m media.Media) string {
	if m.Movie == nil {
		return media.NotAvailable
	}
	return m.Movie.Director
}

func showNetwork(m media.Media) string {
	if m.Show == nil {
		return media.NotAvailable
	}
	return m.Show.Network
}

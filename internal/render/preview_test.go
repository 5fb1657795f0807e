package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/movienarr/internal/media"
)

func movieMedia() media.Media {
	budget := int64(165_000_000)
	revenue := int64(434_800_000)
	return media.Media{
		Kind:          media.KindMovie,
		Title:         "Dune: Part Two",
		IDs:           media.IDs{Simkl: 100, IMDB: "tt15239678"},
		Poster:        "86/8693672175e9b8f2eb",
		Runtime:       166,
		Rating:        8.5,
		Overview:      "Paul Atreides unites with the Fremen.",
		Genres:        []string{"Sci-Fi", "Adventure"},
		Certification: "PG-13",
		Movie: &media.MovieDetails{
			Released: "2024-02-28",
			Director: "Denis Villeneuve",
			Budget:   &budget,
			Revenue:  &revenue,
		},
	}
}

func showMedia() media.Media {
	return media.Media{
		Kind:   media.KindShow,
		Title:  "Severance",
		IDs:    media.IDs{Simkl: 200, IMDB: "tt11280740"},
		Poster: "12/1234abcd",
		Rating: 8.7,
		Genres: []string{"Drama"},
		Show: &media.ShowDetails{
			FirstAired:    "2022-02-18T02:00:00Z",
			TotalEpisodes: 19,
			Status:        "ongoing",
			Network:       "Apple TV+",
		},
	}
}

func TestMoviePreviewFields(t *testing.T) {
	d := NewPreviewDisplay(movieMedia(), PreviewColorInfo)

	assert.Equal(t, "Dune: Part Two", d.Title)
	assert.Equal(t, "https://imdb.com/title/tt15239678", d.URL)
	assert.Equal(t, PreviewColorInfo, d.Color)
	assert.Equal(t, "https://simkl.in/posters/86/8693672175e9b8f2eb_m.webp", d.Thumbnail)

	require.NotNil(t, d.Author)
	assert.Equal(t, "🎥 Movie 🞄 imdb.com/title/tt15239678", d.Author.Name)
	assert.Equal(t, "https://imdb.com/title/tt15239678", d.Author.URL)

	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		"Runtime", "IMDb", "Rating", "Genres", "Description", "Release Date",
		"Director", "Budget", "Revenue",
	}, names)

	assert.Equal(t, "2h 46m", d.Fields[0].Value)
	assert.Equal(t, "★ 8.5", d.Fields[1].Value)
	assert.Equal(t, "PG-13", d.Fields[2].Value)
	assert.Equal(t, "Sci-Fi, Adventure", d.Fields[3].Value)
	assert.Equal(t, "Denis Villeneuve", d.Fields[6].Value)
	assert.Equal(t, "$165.0 million", d.Fields[7].Value)
	assert.Equal(t, "$434.8 million", d.Fields[8].Value)

	ts := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC).Unix()
	assert.Equal(t, "February 28, 2024 (<t:1709078400:R>)", d.Fields[5].Value)
	assert.Equal(t, int64(1709078400), ts)

	assert.Zero(t, d.DeleteAfter)
}

func TestShowPreviewFields(t *testing.T) {
	d := NewPreviewDisplay(showMedia(), PreviewColorAdded)

	require.NotNil(t, d.Author)
	assert.Equal(t, "📺 TV Show 🞄 imdb.com/title/tt11280740", d.Author.Name)

	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		"Runtime", "IMDb", "Rating", "Genres", "Description", "Release Date",
		"Episodes", "Status", "Network",
	}, names)

	assert.Equal(t, "N/A", d.Fields[0].Value)
	assert.Equal(t, "19", d.Fields[6].Value)
	assert.Equal(t, "Ongoing", d.Fields[7].Value)
	assert.Equal(t, "Apple TV+", d.Fields[8].Value)
}

func TestPreviewUnknownReleaseDate(t *testing.T) {
	m := movieMedia()
	m.Movie.Released = "N/A"

	d := NewPreviewDisplay(m, PreviewColorInfo)
	assert.Equal(t, "N/A", d.Fields[5].Value)
}

func TestWithAddedByLine(t *testing.T) {
	d := NewPreviewDisplay(movieMedia(), PreviewColorInfo, WithAddedByLine(42, 1700000000))

	last := d.Fields[len(d.Fields)-1]
	assert.Equal(t, blankGlyph, last.Name)
	assert.Equal(t, "*Added by <@42> <t:1700000000:R>*", last.Value)
	assert.False(t, last.Inline)
}

func TestWithOwnerField(t *testing.T) {
	d := NewPreviewDisplay(movieMedia(), PreviewColorInfo, WithOwnerField(42, 1700000000))

	last := d.Fields[len(d.Fields)-1]
	assert.Equal(t, "Added By", last.Name)
	assert.Equal(t, "<@42> <t:1700000000:R>", last.Value)
}

func TestWithDeletionCountdown(t *testing.T) {
	now := time.Unix(1700000000, 0)
	d := NewPreviewDisplay(movieMedia(), PreviewColorInfo, WithDeletionCountdown(now))

	assert.Equal(t, int64(600), d.DeleteAfter)

	// the countdown lands just ahead of the actual deletion
	last := d.Fields[len(d.Fields)-1]
	assert.Equal(t, "*Deleting <t:1700000595:R>*", last.Value)
}

func TestOptionOrderIsAppendOrder(t *testing.T) {
	d := NewPreviewDisplay(movieMedia(), PreviewColorInfo,
		WithOwnerField(42, 1700000000),
		WithDeletionCountdown(time.Unix(1700000000, 0)),
	)

	require.GreaterOrEqual(t, len(d.Fields), 2)
	assert.Equal(t, "Added By", d.Fields[len(d.Fields)-2].Name)
	assert.Contains(t, d.Fields[len(d.Fields)-1].Value, "Deleting")
}

package simkl

import (
	"fmt"

	"github.com/amaumene/movienarr/internal/media"
)

// Normalize converts a raw provider payload into the canonical media
// model. Optional fields default instead of failing: absent strings become
// N/A, absent numbers become 0, an absent genre list becomes ["N/A"].
// A payload without a title is invalid and nothing partial is produced.
func Normalize(kind media.Kind, raw payload) (media.Media, error) {
	if raw.Title == "" {
		return media.Media{}, fmt.Errorf("invalid %s payload: missing title", kind)
	}

	m := media.Media{
		Kind:          kind,
		Title:         raw.Title,
		Year:          intOr(raw.Year),
		Poster:        strOr(raw.Poster),
		Runtime:       intOr(raw.Runtime),
		Rating:        imdbRating(raw.Ratings),
		Overview:      strOr(raw.Overview),
		Genres:        raw.Genres,
		Certification: strOr(raw.Certification),
	}
	if len(m.Genres) == 0 {
		m.Genres = []string{media.NotAvailable}
	}

	m.IDs.IMDB = "tt0"
	if raw.IDs != nil {
		m.IDs.Simkl = raw.IDs.Simkl
		if raw.IDs.IMDB != nil && *raw.IDs.IMDB != "" {
			m.IDs.IMDB = *raw.IDs.IMDB
		}
	}

	switch kind {
	case media.KindShow:
		m.Show = &media.ShowDetails{
			FirstAired:    strOr(raw.FirstAired),
			TotalEpisodes: intOr(raw.TotalEpisodes),
			Status:        strOr(raw.Status),
			Network:       strOr(raw.Network),
		}
	default:
		m.Movie = &media.MovieDetails{
			Released: strOr(raw.Released),
			Director: strOr(raw.Director),
			Budget:   raw.Budget,
			Revenue:  raw.Revenue,
		}
	}

	return m, nil
}

func strOr(v *string) string {
	if v == nil || *v == "" {
		return media.NotAvailable
	}
	return *v
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func imdbRating(ratings *payloadRatings) float64 {
	if ratings == nil || ratings.IMDB == nil || ratings.IMDB.Rating == nil {
		return 0
	}
	return *ratings.IMDB.Rating
}

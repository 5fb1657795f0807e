package media

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// NotAvailable is the sentinel for absent string fields
	NotAvailable = "N/A"

	maxTitleLength = 40

	movieDateLayout = "2006-01-02"
	showDateLayout  = time.RFC3339
)

// IDs holds the external identifiers of a media item
type IDs struct {
	Simkl int64
	IMDB  string
}

// Media is the canonical, normalized representation of a provider payload.
// Exactly one of Movie/Show is set, matching Kind.
type Media struct {
	Kind          Kind
	Title         string
	Year          int
	IDs           IDs
	Poster        string
	Runtime       int // minutes
	Rating        float64
	Overview      string
	Genres        []string
	Certification string

	Movie *MovieDetails
	Show  *ShowDetails
}

// MovieDetails holds the movie-specific fields
type MovieDetails struct {
	Released string // YYYY-MM-DD, or N/A
	Director string
	Budget   *int64 // nil when the provider has no figure
	Revenue  *int64
}

// ShowDetails holds the show-specific fields
type ShowDetails struct {
	FirstAired    string // ISO-8601 with offset, or N/A
	TotalEpisodes int
	Status        string
	Network       string
}

// ReleaseTimestamp derives the unix release time of the media.
// Unparseable or absent dates yield 0, which callers treat as an
// unknown release, never an error. Dates before 1970 also yield 0.
func (m Media) ReleaseTimestamp() int64 {
	var raw, layout string
	switch m.Kind {
	case KindShow:
		if m.Show == nil {
			return 0
		}
		raw, layout = m.Show.FirstAired, showDateLayout
	default:
		if m.Movie == nil {
			return 0
		}
		raw, layout = m.Movie.Released, movieDateLayout
	}

	t, err := time.Parse(layout, raw)
	if err != nil || t.Year() <= 1969 {
		return 0
	}
	return t.Unix()
}

// PrintableRuntime renders the runtime as "1h 42m", or N/A when zero
func (m Media) PrintableRuntime() string {
	return ConvertMinutes(m.Runtime)
}

// PrintableRating renders the rating as "★ 9.3", or "★ N/A" when zero
func (m Media) PrintableRating() string {
	return PrintableRating(m.Rating)
}

// PrintableGenres joins the genre list, or N/A when empty
func (m Media) PrintableGenres() string {
	if len(m.Genres) == 0 {
		return NotAvailable
	}
	return strings.Join(m.Genres, ", ")
}

// PrintableBudget renders the movie budget, or N/A for shows and unknown figures
func (m Media) PrintableBudget() string {
	if m.Movie == nil {
		return NotAvailable
	}
	return printableMoney(m.Movie.Budget)
}

// PrintableRevenue renders the movie revenue, or N/A for shows and unknown figures
func (m Media) PrintableRevenue() string {
	if m.Movie == nil {
		return NotAvailable
	}
	return printableMoney(m.Movie.Revenue)
}

// PrintableStatus renders the show status title-cased, or N/A when unknown
func (m Media) PrintableStatus() string {
	if m.Show == nil {
		return NotAvailable
	}
	status := m.Show.Status
	if status == "" || status == NotAvailable || strings.EqualFold(status, "tba") {
		return NotAvailable
	}
	return cases.Title(language.English).String(status)
}

// PrintableEpisodes renders the show episode count
func (m Media) PrintableEpisodes() string {
	if m.Show == nil {
		return NotAvailable
	}
	return strconv.Itoa(m.Show.TotalEpisodes)
}

// ConvertMinutes renders a minute count as "1h 42m", dropping zero parts.
// A zero count renders as N/A.
func ConvertMinutes(total int) string {
	if total == 0 {
		return NotAvailable
	}

	hours := total / 60
	minutes := total % 60
	var parts []string
	if hours != 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes != 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}

// PrintableRating renders a rating as "★ 9.3", or "★ N/A" when zero
func PrintableRating(rating float64) string {
	if rating == 0 {
		return "★ " + NotAvailable
	}
	return fmt.Sprintf("★ %.1f", rating)
}

// PrintableTitle truncates long titles so they fit a display column
func PrintableTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLength {
		return title
	}
	return strings.TrimRight(string(runes[:maxTitleLength-3]), " ") + "..."
}

// printableMoney renders a currency amount with an abbreviated magnitude.
// nil means the provider had no figure at all.
func printableMoney(amount *int64) string {
	if amount == nil {
		return NotAvailable
	}

	v := float64(*amount)
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.1f trillion", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.1f billion", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.1f million", v/1e6)
	default:
		return "$" + humanize.Comma(*amount)
	}
}

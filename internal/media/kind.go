package media

import "fmt"

// Kind discriminates between the two media variants
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "show"
)

// Kinds lists all valid kinds in display order
func Kinds() []Kind {
	return []Kind{KindMovie, KindShow}
}

// ParseKind validates a kind string coming from an external caller
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMovie, KindShow:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown media kind: %q", s)
}

// Slug returns the provider URL path segment for the kind
func (k Kind) Slug() string {
	if k == KindShow {
		return "tv"
	}
	return "movies"
}

// Section returns the display section name for the kind
func (k Kind) Section() string {
	if k == KindShow {
		return "Shows"
	}
	return "Movies"
}

// Label returns the human-readable kind label used in previews
func (k Kind) Label() string {
	if k == KindShow {
		return "TV Show"
	}
	return "Movie"
}

// Emoji returns the kind glyph used in preview author lines
func (k Kind) Emoji() string {
	if k == KindShow {
		return "📺"
	}
	return "🎥"
}

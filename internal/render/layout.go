package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/amaumene/movienarr/internal/media"
)

const (
	// ruleGlyph draws the horizontal rules framing a section header
	ruleGlyph = "⏤"
	// blankGlyph is an invisible filler accepted by the UI where empty
	// strings are rejected
	blankGlyph = "ㅤ"

	maxRuleLength    = 34
	maxPaddingLength = 16

	// markupOffset approximates the rendered width of a linked title:
	// the link markup itself takes no visible space
	markupOffset = 24
	linkScheme   = "http"
)

// Columns holds the three parallel text columns of one kind section
type Columns [3][]string

// listLayout carries the glyph strings derived from the widest title
type listLayout struct {
	rule    string
	padding string
}

// BuildListDisplay packs the two kind sections into the bounded field
// grid: one header field per section followed by chunked inline column
// fields. Pure function of its inputs.
func BuildListDisplay(title string, color int, movies, shows Columns, columnTitles [3]string, chunkSize int) Display {
	layout := newListLayout(movies[0], shows[0])

	fields := layout.sectionFields(media.KindMovie.Section(), movies, columnTitles, chunkSize)
	fields = append(fields, layout.sectionFields(media.KindShow.Section(), shows, columnTitles, chunkSize)...)

	return Display{
		Title:  title,
		Color:  color,
		Fields: fields,
	}
}

func newListLayout(movieTitles, showTitles []string) listLayout {
	buffer := 4 + maxDisplayLength(movieTitles, showTitles)
	return listLayout{
		rule:    strings.Repeat(ruleGlyph, clamp(buffer*65/100, maxRuleLength)),
		padding: strings.Repeat(blankGlyph, clamp((buffer+3)/4, maxPaddingLength)),
	}
}

// maxDisplayLength returns the widest rendered title across both kinds.
// When any title carries link markup, the fixed markup offset is
// subtracted from every raw length. An empty union yields 0.
func maxDisplayLength(movieTitles, showTitles []string) int {
	titles := append(append([]string{}, movieTitles...), showTitles...)

	markup := false
	for _, title := range titles {
		if strings.Contains(title, linkScheme) {
			markup = true
			break
		}
	}

	longest := 0
	for _, title := range titles {
		length := utf8.RuneCountInString(title)
		if markup {
			length -= markupOffset
		}
		if length > longest {
			longest = length
		}
	}
	return longest
}

func (l listLayout) sectionFields(section string, cols Columns, columnTitles [3]string, chunkSize int) []Field {
	fields := []Field{l.headerField(section)}
	return append(fields, chunkedFields(cols, columnTitles, chunkSize)...)
}

func (l listLayout) headerField(section string) Field {
	return Field{
		Name:   blankGlyph,
		Value:  fmt.Sprintf("%s\n%s%s\n%s", l.rule, l.padding, Bold(section), l.rule),
		Inline: false,
	}
}

// chunkedFields splits the three parallel columns into groups of chunkSize
// rows and emits three inline fields per group. Column titles appear only
// on the first group; later groups and empty column slices fall back to
// the blank glyph because the UI rejects empty names and bodies.
func chunkedFields(cols Columns, columnTitles [3]string, chunkSize int) []Field {
	var groups [3][][]string
	for i, col := range cols {
		if len(col) > 0 {
			groups[i] = lo.Chunk(col, chunkSize)
		}
	}

	var fields []Field
	for g := 0; g < len(groups[0]); g++ {
		for col := 0; col < 3; col++ {
			body := blankGlyph
			if g < len(groups[col]) {
				body = strings.Join(groups[col][g], "\n")
			}
			fields = append(fields, Field{Name: blankGlyph, Value: body, Inline: true})
		}
	}

	for i, columnTitle := range columnTitles {
		if columnTitle != "" && i < len(fields) {
			fields[i].Name = columnTitle
		}
	}
	return fields
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

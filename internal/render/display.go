package render

// Field is one display field record of the chat-UI contract. The UI
// never accepts an empty name or body, hence the blank-glyph placeholders.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Author is the optional author line of a display
type Author struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Display is an ordered field list plus the decoration the chat surface
// renders around it
type Display struct {
	Title       string  `json:"title"`
	URL         string  `json:"url,omitempty"`
	Color       int     `json:"color"`
	Author      *Author `json:"author,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	Fields      []Field `json:"fields"`
	DeleteAfter int64   `json:"delete_after,omitempty"` // seconds, 0 = keep
}

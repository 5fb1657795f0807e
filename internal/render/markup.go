package render

import "fmt"

// Chat surface markup helpers. Relative times are rendered client-side by
// the surface from timestamp tokens, so displays never go stale.

// Link renders text as an inline hyperlink
func Link(text, url string) string {
	return fmt.Sprintf("[%s](%s)", text, url)
}

// Bold renders text bold
func Bold(text string) string {
	return fmt.Sprintf("**%s**", text)
}

// Italic renders text italic
func Italic(text string) string {
	return fmt.Sprintf("*%s*", text)
}

// RelativeTime renders a unix timestamp as a live relative-time token
func RelativeTime(ts int64) string {
	return fmt.Sprintf("<t:%d:R>", ts)
}

// Mention renders a user id as a mention token
func Mention(userID int64) string {
	return fmt.Sprintf("<@%d>", userID)
}

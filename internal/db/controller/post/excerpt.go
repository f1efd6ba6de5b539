package post

import (
	"html"
	"regexp"
	"strings"
)

const (
	excerptWords = 55
	excerptMore  = "…"
)

var (
	tagPattern         = regexp.MustCompile(`(?s)<[^>]*>`)                                    //nolint:gochecknoglobals
	scriptStylePattern = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`) //nolint:gochecknoglobals
)

// Excerpt returns the first words of content with markup removed. An ellipsis
// is appended only when the content was shortened.
func Excerpt(content string, words int) string {
	if words <= 0 {
		words = excerptWords
	}

	text := scriptStylePattern.ReplaceAllString(content, " ")
	text = tagPattern.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)

	fields := strings.Fields(text)
	if len(fields) <= words {
		return strings.Join(fields, " ")
	}

	return strings.Join(fields[:words], " ") + excerptMore
}

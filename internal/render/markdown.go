// Package render holds the text transforms shared by the assistant and the
// chat widget: markdown stripping for model output and the markdown-lite
// HTML formatting the widget applies to bot replies.
package render

import (
	"html"
	"regexp"
	"strings"
)

var (
	reBold      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reItalic    = regexp.MustCompile(`\*([^*]+)\*`)
	reUnderBold = regexp.MustCompile(`__([^_]+)__`)
	reUnder     = regexp.MustCompile(`_([^_]+)_`)
	reCodeBlock = regexp.MustCompile("(?s)```[^`]*```")
	reCode      = regexp.MustCompile("`([^`]+)`")
	reHeader    = regexp.MustCompile(`(?m)^#+\s+`)
	reLink      = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
	reHRule     = regexp.MustCompile(`(?m)^[-*]{3,}$`)
	reBlankRuns = regexp.MustCompile(`\n\s*\n`)

	reHTMLBold   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reHTMLItalic = regexp.MustCompile(`\*([^*]+)\*`)
)

// Strip removes markdown formatting from model output so replies read as
// plain text in the widget.
func Strip(text string) string {
	if text == "" {
		return text
	}

	text = reBold.ReplaceAllString(text, "$1")
	text = reItalic.ReplaceAllString(text, "$1")
	text = reUnderBold.ReplaceAllString(text, "$1")
	text = reUnder.ReplaceAllString(text, "$1")

	text = reCodeBlock.ReplaceAllString(text, "")
	text = reCode.ReplaceAllString(text, "$1")

	text = reHeader.ReplaceAllString(text, "")
	text = reLink.ReplaceAllString(text, "$1")
	text = reHRule.ReplaceAllString(text, "")

	text = reBlankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// EscapeHTML escapes user-supplied text before insertion into markup.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// FormatHTML escapes text and applies the widget's markdown-lite transforms.
// Bold and italic markers become tags, newlines become <br>. Applied to bot
// replies only; user messages get EscapeHTML plus line breaks.
func FormatHTML(text string) string {
	out := html.EscapeString(text)
	out = reHTMLBold.ReplaceAllString(out, "<strong>$1</strong>")
	out = reHTMLItalic.ReplaceAllString(out, "<em>$1</em>")
	return strings.ReplaceAll(out, "\n", "<br>")
}

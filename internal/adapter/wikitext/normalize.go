// Package wikitext converts raw wiki markup into readable plain text.
// It handles only the subset of constructs needed for that (templates,
// refs, links, tables, emphasis, headings), not the full grammar.
package wikitext

import (
	"regexp"
	"strings"
)

var (
	// Known limitation: does not handle nested braces. A template
	// containing {{...}} inside itself leaves the outer braces behind.
	templateRe = regexp.MustCompile(`\{\{[^}]+\}\}`)

	// One pass for refs, comments, category/file/image links, bracketed
	// external links, and any remaining angle-bracket tags.
	cleanupRe = regexp.MustCompile(`(?s)<ref[^>]*>.*?</ref>|<!--.*?-->|\[\[Category:.*?\]\]|\[\[File:.*?\]\]|\[\[Image:.*?\]\]|\[http[^\]]+\]|<.*?>`)

	// Bold must run before italic so ''' is not consumed as ''.
	boldRe   = regexp.MustCompile(`'''(.*?)'''`)
	italicRe = regexp.MustCompile(`''(.*?)''`)

	// Longest delimiter first so each heading level maps to its own.
	heading4Re = regexp.MustCompile(`====\s*(.*?)\s*====`)
	heading3Re = regexp.MustCompile(`===\s*(.*?)\s*===`)
	heading2Re = regexp.MustCompile(`==\s*(.*?)\s*==`)

	linkRe  = regexp.MustCompile(`\[\[(?:[^|\]]*\|)?([^\]]+)\]\]`)
	tableRe = regexp.MustCompile(`(?s)\{\|.*?\|\}`)

	lineMarkerRe = regexp.MustCompile(`(?m)^[\s*#:]+`)
	newlineRe    = regexp.MustCompile(`\n{3,}`)
	trailerRe    = regexp.MustCompile(`(?m)^(References|See also)`)
)

// Normalize converts raw wiki markup to plain text. It is total: any
// input yields a string. The passes run in a fixed order; later
// patterns assume earlier ones already removed confounding syntax.
func Normalize(text string) string {
	text = templateRe.ReplaceAllString(text, "")
	text = cleanupRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "**$1**")
	text = italicRe.ReplaceAllString(text, "*$1*")
	text = heading4Re.ReplaceAllString(text, "#### $1")
	text = heading3Re.ReplaceAllString(text, "### $1")
	text = heading2Re.ReplaceAllString(text, "## $1")
	text = linkRe.ReplaceAllString(text, "$1")
	text = tableRe.ReplaceAllString(text, "")
	text = lineMarkerRe.ReplaceAllString(text, "")
	text = newlineRe.ReplaceAllString(text, "\n\n")

	// Drop everything from a References or See also section onward.
	if loc := trailerRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}

	return strings.TrimSpace(text)
}

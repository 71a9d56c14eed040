package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxHighlights      = 8
	minHighlightLength = 3 // in runes; shorter fragments are separator noise
)

// highlightSeparators splits free-text itineraries on line breaks, bullets,
// hyphens/dashes, commas and semicolons.
var highlightSeparators = regexp.MustCompile(`[\r\n•●▪◦·\-–—,;]+`)

// ExtractHighlights returns up to 8 distinct itinerary highlights from
// activities, falling back to description when activities yields none.
func ExtractHighlights(activities, description string) []string {
	if h := splitHighlights(activities); len(h) > 0 {
		return h
	}
	return splitHighlights(description)
}

func splitHighlights(text string) []string {
	out := []string{}
	if strings.TrimSpace(text) == "" {
		return out
	}

	seen := make(map[string]struct{})
	for _, segment := range highlightSeparators.Split(text, -1) {
		segment = strings.TrimSpace(segment)
		if utf8.RuneCountInString(segment) < minHighlightLength {
			continue
		}
		if _, dup := seen[segment]; dup {
			continue
		}
		seen[segment] = struct{}{}
		out = append(out, segment)
		if len(out) == maxHighlights {
			break
		}
	}
	return out
}

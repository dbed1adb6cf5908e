package domain

import "strings"

// artistDelimiters lists the co-credit separators in the order they are applied.
// Matching is case-sensitive on the literal text.
var artistDelimiters = []string{
	", ",
	"&",
	"/",
	" VS ", " Vs ",
	" ft ", " ft.", " Ft ", " Ft.",
	" and ", " And ",
	" feat ", " Feat ", " Featuring ", " feat.", " Feat.",
}

// SplitArtistName splits a raw catalog artist credit into canonical artist names.
// Each delimiter pass re-splits every fragment produced by the previous passes,
// so "A feat. B, C" yields [A B C]. Names without delimiters come back as the
// single trimmed input.
func SplitArtistName(raw string) []string {
	fragments := []string{raw}

	for _, delim := range artistDelimiters {
		next := make([]string, 0, len(fragments))
		for _, f := range fragments {
			next = append(next, strings.Split(f, delim)...)
		}
		fragments = next
	}

	names := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			names = append(names, f)
		}
	}

	if len(names) == 0 {
		return []string{strings.TrimSpace(raw)}
	}
	return names
}

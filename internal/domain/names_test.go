package domain

import (
	"slices"
	"testing"
)

func TestSplitArtistName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "no delimiter", raw: "Radiohead", want: []string{"Radiohead"}},
		{name: "trims surrounding space", raw: "  Björk \t", want: []string{"Björk"}},
		{name: "ampersand", raw: "Artist A & Artist B", want: []string{"Artist A", "Artist B"}},
		{name: "feat with comma", raw: "A feat. B, C", want: []string{"A", "B", "C"}},
		{name: "slash", raw: "Nick Cave/Warren Ellis", want: []string{"Nick Cave", "Warren Ellis"}},
		{name: "versus upper", raw: "Jay-Z VS Linkin Park", want: []string{"Jay-Z", "Linkin Park"}},
		{name: "versus title case", raw: "Armin Vs Tiesto", want: []string{"Armin", "Tiesto"}},
		{name: "lowercase vs is not a delimiter", raw: "Armin vs Tiesto", want: []string{"Armin vs Tiesto"}},
		{name: "ft dot", raw: "Drake ft. Rihanna", want: []string{"Drake", "Rihanna"}},
		{name: "Ft without dot", raw: "Drake Ft Rihanna", want: []string{"Drake", "Rihanna"}},
		{name: "and", raw: "Simon and Garfunkel", want: []string{"Simon", "Garfunkel"}},
		{name: "Featuring", raw: "Gorillaz Featuring De La Soul", want: []string{"Gorillaz", "De La Soul"}},
		{name: "many delimiters keep order", raw: "A, B & C / D feat E", want: []string{"A", "B", "C", "D", "E"}},
		{name: "and inside a word is kept", raw: "Band of Horses", want: []string{"Band of Horses"}},
		{name: "empty", raw: "", want: []string{""}},
		{name: "only delimiters", raw: " & ", want: []string{"&"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitArtistName(tt.raw)
			if !slices.Equal(got, tt.want) {
				t.Errorf("SplitArtistName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitArtistName_Idempotent(t *testing.T) {
	inputs := []string{
		"A feat. B, C",
		"Nick Cave & The Bad Seeds",
		"Daft Punk",
		"Simon and Garfunkel / Paul Simon Ft. Art",
	}

	for _, raw := range inputs {
		for _, fragment := range SplitArtistName(raw) {
			again := SplitArtistName(fragment)
			if len(again) != 1 || again[0] != fragment {
				t.Errorf("splitting fragment %q of %q again gave %q", fragment, raw, again)
			}
		}
	}
}

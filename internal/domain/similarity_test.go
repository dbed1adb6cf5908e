package domain

import (
	"encoding/json"
	"testing"
)

func TestCacheEntry_DecodesPairs(t *testing.T) {
	// Format written by the original browser build of the tool
	data := `[["A",[{"artist":"C","mbid":"m2","match":0.9}]],["B",[]]]`

	var entries []CacheEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Artist != "A" || len(entries[0].Similar) != 1 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].Similar[0] != (Similarity{Name: "C", ExternalID: "m2", Match: 0.9}) {
		t.Errorf("unexpected similarity: %+v", entries[0].Similar[0])
	}
	if entries[1].Artist != "B" || len(entries[1].Similar) != 0 {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestCacheEntry_EncodesEmptyListAsArray(t *testing.T) {
	data, err := json.Marshal(CacheEntry{Artist: "B"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `["B",[]]` {
		t.Errorf("unexpected encoding: %s", data)
	}
}

func TestCacheEntry_RejectsMalformed(t *testing.T) {
	bad := []string{
		`{"artist":"A"}`,
		`["A"]`,
		`[1,[]]`,
		`["A",{"x":1}]`,
	}
	for _, data := range bad {
		var e CacheEntry
		if err := json.Unmarshal([]byte(data), &e); err == nil {
			t.Errorf("expected error decoding %s", data)
		}
	}
}

func TestAtOrAbove_ThresholdIsInclusive(t *testing.T) {
	similar := []Similarity{
		{Name: "exact", Match: 0.85},
		{Name: "below", Match: 0.8499},
		{Name: "above", Match: 1},
	}

	got := AtOrAbove(similar, 0.85)
	if len(got) != 2 || got[0].Name != "exact" || got[1].Name != "above" {
		t.Errorf("unexpected filter result: %+v", got)
	}
}

package model

import (
	"testing"
	"time"
)

func TestCollection_Merge(t *testing.T) {
	a1 := Release{ID: "a", Title: "First", CoverURL: "https://img/a1.jpg"}
	a2 := Release{ID: "a", Title: "First", CoverURL: "https://img/a2.jpg"}
	b := Release{ID: "b", Title: "Second"}
	c := Release{ID: "c", Title: "Third"}

	tests := []struct {
		name      string
		prior     Collection
		newer     []Release
		wantIDs   []string
		wantCover map[string]string
	}{
		{
			name:    "disjoint sets concatenate in order",
			prior:   Collection{a1, b},
			newer:   []Release{c},
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:      "newer entry overwrites by id in place",
			prior:     Collection{a1, b},
			newer:     []Release{a2},
			wantIDs:   []string{"a", "b"},
			wantCover: map[string]string{"a": "https://img/a2.jpg"},
		},
		{
			name:    "merge with self is a no-op",
			prior:   Collection{a1, b, c},
			newer:   []Release{a1, b, c},
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:      "duplicate within newer keeps the last",
			prior:     nil,
			newer:     []Release{a1, a2},
			wantIDs:   []string{"a"},
			wantCover: map[string]string{"a": "https://img/a2.jpg"},
		},
		{
			name:    "empty prior",
			prior:   nil,
			newer:   []Release{b},
			wantIDs: []string{"b"},
		},
		{
			name:    "empty newer",
			prior:   Collection{b},
			newer:   nil,
			wantIDs: []string{"b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.prior.Merge(tt.newer)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d releases, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: got ID %q, want %q", i, got[i].ID, id)
				}
			}
			for id, cover := range tt.wantCover {
				for _, r := range got {
					if r.ID == id && r.CoverURL != cover {
						t.Errorf("release %q: got cover %q, want %q", id, r.CoverURL, cover)
					}
				}
			}
		})
	}
}

func TestCollection_MergeIdempotent(t *testing.T) {
	c := Collection{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
	}

	once := c.Merge(c)
	twice := once.Merge(once)

	if len(once) != len(c) || len(twice) != len(c) {
		t.Fatalf("merge with self changed size: %d -> %d -> %d", len(c), len(once), len(twice))
	}
	for i := range c {
		if once[i] != c[i] || twice[i] != c[i] {
			t.Errorf("position %d changed after self-merge", i)
		}
	}
}

func TestCollection_Has(t *testing.T) {
	c := Collection{{ID: "a"}, {ID: "b"}}

	if !c.Has("a") {
		t.Error("expected Has(a) to be true")
	}
	if c.Has("z") {
		t.Error("expected Has(z) to be false")
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.UTC)
	if got := Today(now); got != "2024-03-07" {
		t.Errorf("got %q, want 2024-03-07", got)
	}
}

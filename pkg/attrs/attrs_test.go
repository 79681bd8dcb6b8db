package attrs

import (
	"slices"
	"testing"
)

func TestAllSortedAndUnique(t *testing.T) {
	names := All()
	if len(names) != 176 {
		t.Fatalf("All() returned %d names, want 176", len(names))
	}
	if !slices.IsSorted(names) {
		t.Error("All() should be sorted")
	}
	if len(slices.Compact(slices.Clone(names))) != len(names) {
		t.Error("All() should not contain duplicates")
	}
}

func TestKnown(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"label", true},
		{"lhead", true},
		{"Damping", true},
		{"damping", false},
		{"URL", true},
		{"not-an-attribute", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Known(tt.name); got != tt.want {
				t.Errorf("Known(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	got := Match("TAIL")
	want := []string{"arrowtail", "ltail", "sametail", "tailURL", "tail_lp", "tailclip", "tailhref", "taillabel", "tailport", "tailtarget", "tailtooltip"}
	if !slices.Equal(got, want) {
		t.Errorf("Match(TAIL) = %v, want %v", got, want)
	}

	if len(Match("")) != len(All()) {
		t.Error("Match(\"\") should return all names")
	}
}

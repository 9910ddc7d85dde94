package pipeline

import "testing"

func TestStateAbbreviation(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Alabama", "AL"},
		{"District of Columbia", "DC"},
		{"West Virginia", "WV"},
		{"Puerto Rico", "PU"}, // not in the map: first-two-letters fallback
		{"guam", "GU"},
		{"X", "X"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := StateAbbreviation(tc.name); got != tc.want {
			t.Fatalf("StateAbbreviation(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestStateAbbreviationCoversAllStates(t *testing.T) {
	if len(stateAbbrev) != 51 {
		t.Fatalf("map covers %d entries, want 50 states + DC", len(stateAbbrev))
	}
}

package api

import "testing"

func TestURLJoin(t *testing.T) {
	cases := []struct {
		name  string
		parts []string
		want  string
	}{
		{"no fragments", nil, ""},
		{"single fragment", []string{"a"}, "a"},
		{"inserts slash", []string{"a", "b"}, "a/b"},
		{"keeps trailing slash", []string{"a/", "b"}, "a/b"},
		{"keeps leading slash", []string{"a", "/b"}, "a/b"},
		{"collapses double slash", []string{"a/", "/b"}, "a/b"},
		{"skips empty fragments", []string{"", "a", "", "b"}, "a/b"},
		{"all empty", []string{"", ""}, ""},
		{"many without slashes", []string{"a", "b", "c", "d"}, "a/b/c/d"},
		{"fragments are opaque", []string{"https://api.example.com/", "/rats/search", "details"}, "https://api.example.com/rats/search/details"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := URLJoin(tc.parts...); got != tc.want {
				t.Fatalf("URLJoin(%q) = %q, want %q", tc.parts, got, tc.want)
			}
		})
	}
}

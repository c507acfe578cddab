package textutil_test

import (
	"testing"

	"voiceclean/internal/textutil"
)

func TestDisplayTitle(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/videos/weekly_team_sync.mp4", "Weekly Team Sync"},
		{"interview-take.2.final.mov", "Interview Take 2 Final"},
		{"/videos/LECTURE 01.mkv", "Lecture 01"},
		{"___.mp4", "Unknown Video"},
		{"", "Unknown Video"},
	}
	for _, tc := range cases {
		if got := textutil.DisplayTitle(tc.path); got != tc.want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

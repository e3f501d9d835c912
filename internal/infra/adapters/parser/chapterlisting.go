package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/sa6mwa/id3v24"
)

// ChapterListing returns one "(MM:SS) Title" line per chapter mark,
// or "(HH:MM:SS) Title" for every line if any chapter starts at or
// after one hour. This is the format Spotify picks up from episode
// descriptions, see
// https://support.spotify.com/us/creators/article/creating-and-managing-chapters/
// An empty string is returned if there are no chapters or if any
// start time can not be parsed.
func ChapterListing(chapters []id3v24.Chapter) string {
	if len(chapters) == 0 {
		return ""
	}
	oneHour, err := time.Parse(time.TimeOnly, "01:00:00")
	if err != nil {
		return ""
	}
	starts := make([]time.Time, 0, len(chapters))
	layout := "04:05"
	for _, c := range chapters {
		s, err := id3v24.StringTimeToTime(c.Start)
		if err != nil {
			return ""
		}
		if !s.Before(oneHour) {
			layout = time.TimeOnly
		}
		starts = append(starts, s)
	}
	var b strings.Builder
	for i, c := range chapters {
		fmt.Fprintf(&b, "(%s) %s\n", starts[i].Format(layout), strings.TrimSpace(c.Title))
	}
	return b.String()
}

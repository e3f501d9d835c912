package rss

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sa6mwa/podfeed/internal/app/model"
)

// RFC 2822 as used by pubDate and lastBuildDate, always in GMT.
const (
	dateTimeLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
	dateLayout     = "Mon, 02 Jan 2006"
	midnightSuffix = " 00:00:00 GMT"
)

// FormatDateTime renders t in UTC, e.g. "Fri, 05 Jun 2020 04:09:26 GMT".
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(dateTimeLayout)
}

// FormatDate renders d at midnight GMT.
func FormatDate(d model.Date) string {
	return d.Time().Format(dateLayout) + midnightSuffix
}

// FormatDateOrTime dispatches on the variant of v.
func FormatDateOrTime(v model.DateOrTime) string {
	switch v := v.(type) {
	case model.Date:
		return FormatDate(v)
	case model.DateTime:
		return FormatDateTime(v.Time)
	}
	panic(fmt.Sprintf("rss: unsupported DateOrTime %T", v))
}

// FormatInt renders i in base 10 without grouping.
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatFloat renders f with as few digits as needed, 1.0 is "1".
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// JoinURL joins base and p with exactly one slash between them.
// Nothing else in either part is touched.
func JoinURL(base, p string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

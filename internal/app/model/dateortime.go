package model

import (
	"strconv"
	"strings"
	"time"
)

// DateOrTime is the publish date of an item. It is either a Date
// (day precision) or a DateTime (an instant). The set is closed, no
// other type implements it.
type DateOrTime interface {
	dateOrTime()
}

// Date is a calendar day, rendered at midnight GMT.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (Date) dateOrTime() {}

// NewDate returns the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DateTime is an instant in time.
type DateTime struct {
	time.Time
}

func (DateTime) dateOrTime() {}

// Epoch is what malformed timestamps decode to.
var Epoch = time.Unix(0, 0).UTC()

var timestampLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 02 Jan 2006 15:04:05 GMT",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses s as an RFC 3339 or RFC 1123 timestamp or as
// milliseconds since the Unix epoch. Malformed input yields Epoch,
// callers needing strictness must validate s themselves.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC()
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return Epoch
}

// ParseDateOrTime returns a Date for "2006-01-02" and "today", a
// DateTime for "now" and otherwise the DateTime of ParseTimestamp.
func ParseDateOrTime(s string) DateOrTime {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "today":
		n := time.Now().UTC()
		return NewDate(n.Year(), n.Month(), n.Day())
	case "now":
		return DateTime{time.Now().UTC()}
	}
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return NewDate(d.Year(), d.Month(), d.Day())
	}
	return DateTime{ParseTimestamp(s)}
}

// PubDate wraps a DateOrTime so it can be decoded from a podspec.
type PubDate struct {
	DateOrTime
}

func (p *PubDate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var buf string
	if err := unmarshal(&buf); err != nil {
		return err
	}
	p.DateOrTime = ParseDateOrTime(buf)
	return nil
}

func (p PubDate) MarshalYAML() (interface{}, error) {
	switch v := p.DateOrTime.(type) {
	case Date:
		return v.Time().Format(time.DateOnly), nil
	case DateTime:
		return v.UTC().Format(time.RFC3339), nil
	}
	return nil, nil
}

// Timestamp is a time.Time decoded with ParseTimestamp.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var buf string
	if err := unmarshal(&buf); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(buf)) {
	case "", "now", "today":
		t.Time = time.Now().UTC()
	default:
		t.Time = ParseTimestamp(buf)
	}
	return nil
}

func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.UTC().Format(time.RFC3339), nil
}

package model

import "github.com/sa6mwa/id3v24"

// Item is one episode of the feed.
type Item struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	// Path is relative to Channel.SiteURL.
	Path       string   `yaml:"path" validate:"required"`
	Categories []string `yaml:"categories,omitempty"`
	Author     string   `yaml:"author"`
	PubDate    PubDate  `yaml:"pubDate"`
	Content    string   `yaml:"content,omitempty"`
	// ContentEncoded is HTML emitted as CDATA.
	ContentEncoded string `yaml:"contentEncoded,omitempty"`
	// ContentMarkdown is rendered into ContentEncoded by the parser
	// adapter when ContentEncoded is empty.
	ContentMarkdown     string               `yaml:"contentMarkdown,omitempty"`
	Transcripts         []Transcript         `yaml:"transcripts,omitempty" validate:"dive"`
	Chapters            Chapters             `yaml:"chapters"`
	ChapterMarks        []id3v24.Chapter     `yaml:"chapterMarks,omitempty"`
	Persons             []Person             `yaml:"persons,omitempty" validate:"dive"`
	Soundbites          []Soundbite          `yaml:"soundbites,omitempty" validate:"dive"`
	Season              Season               `yaml:"season"`
	Episode             Episode              `yaml:"episode"`
	Location            *Location            `yaml:"location,omitempty"`
	Enclosure           *Enclosure           `yaml:"enclosure,omitempty"`
	AlternateEnclosures []AlternateEnclosure `yaml:"alternateEnclosures,omitempty" validate:"dive"`
}

// Enclosure is the primary media file of an item. Length is optional.
type Enclosure struct {
	URL    string `yaml:"url" validate:"required,url"`
	Type   string `yaml:"type" validate:"required"`
	Length *int64 `yaml:"length,omitempty"`
}

// AlternateEnclosure is another rendition of the item's media.
type AlternateEnclosure struct {
	Type    string   `yaml:"type" validate:"required"`
	Length  int64    `yaml:"length" validate:"gte=0"`
	Title   string   `yaml:"title" validate:"required"`
	Sources []string `yaml:"sources" validate:"required,min=1,dive,required"`
}

type Transcript struct {
	URL  string `yaml:"url" validate:"required,url"`
	Type string `yaml:"type" validate:"required"`
	Rel  string `yaml:"rel,omitempty"`
	// Language is rendered as the lang attribute.
	Language string `yaml:"language,omitempty"`
}

type Chapters struct {
	URL  string `yaml:"url" validate:"required,url"`
	Type string `yaml:"type" validate:"required"`
}

// Soundbite is a highlight clip, both fields in seconds.
type Soundbite struct {
	Title     string  `yaml:"title"`
	StartTime float64 `yaml:"startTime" validate:"gte=0"`
	Duration  float64 `yaml:"duration" validate:"gt=0"`
}

type Season struct {
	Number int    `yaml:"number" validate:"gte=0"`
	Name   string `yaml:"name"`
}

// Episode numbers are floats so trailers can sit between episodes
// (1.5).
type Episode struct {
	Number  float64 `yaml:"number" validate:"gte=0"`
	Display string  `yaml:"display"`
}

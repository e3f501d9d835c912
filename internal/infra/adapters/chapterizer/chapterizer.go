// chapterizer writes Podcasting 2.0 JSON chapters files from the
// chapter marks of each item in the podspec. The files are written
// to the local storage directory under the basename of the
// podcast:chapters url, ready to be published next to the media. It
// implements the ports.ForChapterizing interface.
package chapterizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sa6mwa/id3v24"
	"github.com/sa6mwa/podfeed/internal/app/humanreadable"
	"github.com/sa6mwa/podfeed/internal/app/model"
	"github.com/sa6mwa/podfeed/internal/app/ports"
	"github.com/sa6mwa/podfeed/internal/infra/adapters/logger"
)

// Version of the JSON chapters format written.
const Version = "1.2.0"

var ErrNilPointer error = errors.New("received nil pointer")

type Chapter struct {
	StartTime float64 `json:"startTime"`
	Title     string  `json:"title"`
}

// Document is the JSON chapters file.
type Document struct {
	Version  string    `json:"version"`
	Chapters []Chapter `json:"chapters"`
}

type forChapterizing struct {
	ports.ForAsking
}

// New returns a chapterizer using asker to confirm overwriting an
// existing chapters file with different content.
func New(asker ports.ForAsking) ports.ForChapterizing {
	return &forChapterizing{
		ForAsking: asker,
	}
}

// NewDocument converts id3v24 chapter marks into a chapters document
// with start times in seconds.
func NewDocument(marks []id3v24.Chapter) (*Document, error) {
	doc := &Document{
		Version:  Version,
		Chapters: make([]Chapter, 0, len(marks)),
	}
	for _, m := range marks {
		s, err := id3v24.StringTimeToTime(m.Start)
		if err != nil {
			return nil, fmt.Errorf("chapter %q: %w", m.Title, err)
		}
		seconds := float64(s.Hour()*3600+s.Minute()*60+s.Second()) + float64(s.Nanosecond())/1e9
		doc.Chapters = append(doc.Chapters, Chapter{
			StartTime: seconds,
			Title:     strings.TrimSpace(m.Title),
		})
	}
	return doc, nil
}

func (c *forChapterizing) WriteChapters(ctx context.Context, spec *model.Podspec) (int, error) {
	l := logger.FromContext(ctx)
	if spec == nil {
		return 0, ErrNilPointer
	}
	written := 0
	for _, it := range spec.Channel.Items {
		if len(it.ChapterMarks) == 0 {
			continue
		}
		doc, err := NewDocument(it.ChapterMarks)
		if err != nil {
			return written, fmt.Errorf("%s: %w", it.Title, err)
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return written, err
		}
		data = append(data, '\n')
		p := spec.LocalPath(it.Chapters.URL)
		existing, err := os.ReadFile(p)
		switch {
		case err == nil:
			if bytes.Equal(existing, data) {
				l.Debug("Chapters file is up to date", "file", p)
				continue
			}
			if !c.Ask(ctx, "%s differs from the chapter marks of %q, overwrite?", p, it.Title) {
				l.Info("Not overwriting", "file", p)
				continue
			}
		case !errors.Is(err, os.ErrNotExist):
			return written, err
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return written, fmt.Errorf("unable to write %s: %w", p, err)
		}
		l.Info("Wrote chapters", "file", p, "chapters", len(doc.Chapters), "humanSize", humanreadable.SI(int64(len(data))))
		written++
	}
	return written, nil
}

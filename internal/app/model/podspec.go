package model

import (
	"os"
	"path/filepath"
	"strings"
)

// Podspec is the aggregate loaded from a podspec yaml file: the feed
// itself plus where to put what is generated from it.
type Podspec struct {
	// Output is the filename of the rendered RSS feed.
	Output string `yaml:"output"`
	// LocalStorageDir holds media, transcripts and chapter files
	// referenced by the feed. Used when sniffing media types and when
	// writing chapters files.
	LocalStorageDir string  `yaml:"localStorageDir,omitempty"`
	Channel         Channel `yaml:"channel"`
}

func (p *Podspec) LocalStorageDirExpanded() string {
	return resolvetilde(p.LocalStorageDir)
}

// LocalPath returns the file under LocalStorageDir named as the last
// element of uri.
func (p *Podspec) LocalPath(uri string) string {
	base := uri
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return filepath.Join(p.LocalStorageDirExpanded(), base)
}

// resolvetilde returns path where initial tilde (~) is replaced by
// os.UserHomeDir().
func resolvetilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		dirname, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}
		return filepath.Join(dirname, path[2:])
	}
	return path
}

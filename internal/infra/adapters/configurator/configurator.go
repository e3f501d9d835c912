// configurator is an adapter for loading the podspec aggregate
// constituting the podcast feed from a yaml file. It implements the
// ports.ForConfiguring interface.
package configurator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/sa6mwa/podfeed/internal/app/model"
	"github.com/sa6mwa/podfeed/internal/app/ports"
	"github.com/sa6mwa/podfeed/internal/infra/adapters/logger"
	"gopkg.in/yaml.v3"
)

var (
	ErrNilPointer     error = errors.New("received nil pointer")
	ErrMissingPubDate error = errors.New("item has no pubDate")
	ErrDuplicatePath  error = errors.New("more than one item with the same path")
)

const (
	DefaultSpecfile    = "podspec.yaml"
	DefaultOutput      = "podcast.rss"
	defaultValueType   = "lightning"
	defaultValueMethod = "keysend"
)

// configurator.New returns a local file-based configurator that
// satisfies the ports.ForConfiguring port interface.
func New(podspecFilename string) ports.ForConfiguring {
	if podspecFilename == "" {
		podspecFilename = DefaultSpecfile
	}
	return &forConfiguring{
		specFile: podspecFilename,
		validate: validator.New(),
	}
}

// Implements the ports.ForConfiguring interface.
type forConfiguring struct {
	specFile string
	validate *validator.Validate
}

func (c *forConfiguring) Load(ctx context.Context) (*model.Podspec, error) {
	l := logger.FromContext(ctx)
	f, err := os.Open(c.specFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var spec model.Podspec
	if err := yaml.NewDecoder(f).Decode(&spec); err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", c.specFile, err)
	}
	setDefaults(&spec)
	if err := sniffMediaTypes(ctx, &spec); err != nil {
		return nil, fmt.Errorf("%s: %w", c.specFile, err)
	}
	if err := c.Validate(ctx, &spec); err != nil {
		return nil, fmt.Errorf("%s: %w", c.specFile, err)
	}
	l.Debug("Loaded podspec", "file", c.specFile, "title", spec.Channel.Title, "items", len(spec.Channel.Items))
	return &spec, nil
}

func (c *forConfiguring) Validate(ctx context.Context, spec *model.Podspec) error {
	if spec == nil {
		return ErrNilPointer
	}
	if err := c.validate.Struct(spec.Channel); err != nil {
		return err
	}
	for i, it := range spec.Channel.Items {
		if it.PubDate.DateOrTime == nil {
			return fmt.Errorf("%w: %q", ErrMissingPubDate, it.Title)
		}
		// Path is also the guid.
		if idx := spec.Channel.ContainsItem(it.Path); idx != i {
			return fmt.Errorf("%w: %s", ErrDuplicatePath, it.Path)
		}
	}
	return nil
}

// setDefaults fills in what the podspec left out. A missing
// lastBuildDate is the time of loading, as for an empty one.
func setDefaults(spec *model.Podspec) {
	if strings.TrimSpace(spec.Output) == "" {
		spec.Output = DefaultOutput
	}
	if spec.Channel.LastBuildDate.IsZero() {
		spec.Channel.LastBuildDate.Time = time.Now().UTC()
	}
	if spec.Channel.Value.Type == "" {
		spec.Channel.Value.Type = defaultValueType
	}
	if spec.Channel.Value.Method == "" {
		spec.Channel.Value.Method = defaultValueMethod
	}
}

// sniffMediaTypes fills in empty media types from files with the same
// basename in the local storage directory. Files that do not exist
// are skipped, validation reports the missing type.
func sniffMediaTypes(ctx context.Context, spec *model.Podspec) error {
	l := logger.FromContext(ctx)
	mimetype.SetLimit(1024 * 1024)
	sniff := func(uri string, contentType *string) error {
		if *contentType != "" || uri == "" {
			return nil
		}
		p := spec.LocalPath(uri)
		if _, err := os.Stat(p); err != nil {
			return nil
		}
		mt, err := mimetype.DetectFile(p)
		if err != nil {
			return fmt.Errorf("unable to detect content-type of %s: %w", p, err)
		}
		*contentType, _, _ = strings.Cut(mt.String(), ";")
		l.Debug("Detected content-type", "file", p, "type", *contentType)
		return nil
	}
	for i := range spec.Channel.Items {
		it := &spec.Channel.Items[i]
		if it.Enclosure != nil {
			if err := sniff(it.Enclosure.URL, &it.Enclosure.Type); err != nil {
				return err
			}
		}
		for j := range it.AlternateEnclosures {
			ae := &it.AlternateEnclosures[j]
			if len(ae.Sources) > 0 {
				if err := sniff(ae.Sources[0], &ae.Type); err != nil {
					return err
				}
			}
		}
		for j := range it.Transcripts {
			if err := sniff(it.Transcripts[j].URL, &it.Transcripts[j].Type); err != nil {
				return err
			}
		}
	}
	return nil
}

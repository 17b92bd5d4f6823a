package sources

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source file validation errors.
var (
	ErrNoSources         = errors.New("at least one source is required")
	ErrSourceMissingName = errors.New("source name is required")
	ErrSourceMissingURL  = errors.New("source url is required")
	ErrSourceBadKind     = errors.New("source kind must be 'feed' or 'scrape'")
	ErrNoEnabledSources  = errors.New("at least one source must be enabled")
)

// File is the YAML override for the built-in registry.
type File struct {
	Sources  []FileSource `yaml:"sources"`
	Keywords []string     `yaml:"keywords"`
}

// FileSource mirrors Source plus an enable switch.
type FileSource struct {
	Source  `yaml:",inline"`
	Enabled bool `yaml:"enabled"`
}

// LoadFile reads a YAML sources file and returns the enabled sources
// and the keyword list (built-in keywords when the file omits them).
func LoadFile(path string) ([]Source, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read sources file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse sources file: %w", err)
	}

	if err := f.validate(); err != nil {
		return nil, nil, err
	}

	var enabled []Source
	for _, fs := range f.Sources {
		if !fs.Enabled {
			continue
		}
		s := fs.Source
		if s.Type == "" {
			if s.Kind == KindScrape {
				s.Type = TypeWebScrape
			} else {
				s.Type = TypeRSS
			}
		}
		if s.Category == "" {
			s.Category = "general"
		}
		enabled = append(enabled, s)
	}

	keywords := f.Keywords
	if len(keywords) == 0 {
		keywords = Keywords()
	}
	return enabled, keywords, nil
}

func (f *File) validate() error {
	if len(f.Sources) == 0 {
		return ErrNoSources
	}

	enabledCount := 0
	for i, s := range f.Sources {
		if s.Name == "" {
			return fmt.Errorf("%w: source[%d]", ErrSourceMissingName, i)
		}
		if s.URL == "" {
			return fmt.Errorf("%w: source[%d]", ErrSourceMissingURL, i)
		}
		if s.Kind != KindFeed && s.Kind != KindScrape {
			return fmt.Errorf("%w: source[%d] has kind %q", ErrSourceBadKind, i, s.Kind)
		}
		if s.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledSources
	}
	return nil
}

package track

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

// Definition is the on-disk YAML form of a track
type Definition struct {
	ID     uint64                         `yaml:"id"`
	Name   string                         `yaml:"name"`
	Rows   []string                       `yaml:"rows"`
	Legend map[string]core.TileProperties `yaml:"legend,omitempty"`
}

// Parse decodes and builds a track from YAML
func Parse(data []byte) (*core.Track, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode track: %w", err)
	}
	return def.Build()
}

// Build turns the definition into a validated track
func (d Definition) Build() (*core.Track, error) {
	legend := make(Legend, len(d.Legend))
	for glyph, props := range d.Legend {
		if utf8.RuneCountInString(glyph) != 1 {
			return nil, fmt.Errorf("%w: legend key %q must be a single glyph", core.ErrInvalidTrack, glyph)
		}
		r, _ := utf8.DecodeRuneInString(glyph)
		legend[r] = props
	}
	t, err := FromRows(d.ID, d.Name, d.Rows, legend)
	if err != nil {
		return nil, fmt.Errorf("track %d (%s): %w", d.ID, d.Name, err)
	}
	return t, nil
}

// LoadFile reads a single YAML track definition
func LoadFile(path string) (*core.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadDir parses every *.yaml and *.yml file in dir concurrently.
// Tracks are returned ordered by id; duplicate ids are an error.
func LoadDir(ctx context.Context, dir string) ([]*core.Track, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}

	tracks := make([]*core.Track, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := LoadFile(path)
			if err != nil {
				return err
			}
			tracks[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(tracks, func(i, j int) bool { return tracks[i].ID < tracks[j].ID })
	for i := 1; i < len(tracks); i++ {
		if tracks[i].ID == tracks[i-1].ID {
			return nil, fmt.Errorf("%w: duplicate track id %d", core.ErrInvalidTrack, tracks[i].ID)
		}
	}
	return tracks, nil
}

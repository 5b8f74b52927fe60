// Package levels provides level loading for the dash game: the YAML level
// format, the embedded level pack and directory loading.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
	"github.com/vovakirdan/tui-dash/internal/games/dash/levels/formats"
	"github.com/vovakirdan/tui-dash/internal/games/dash/script"
)

var (
	// ErrLevelNotFound is returned when no level has the requested ID.
	ErrLevelNotFound = errors.New("level not found")
	// ErrInvalidLevel wraps parse and script validation failures.
	ErrInvalidLevel = errors.New("invalid level")
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Palette  entity.Palette
	Program  script.Program
	Metadata map[string]string
	FilePath string // empty for embedded levels
}

// Validate interprets the level's whole script once.
func (l *Level) Validate() error {
	if err := l.Program.Validate(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrInvalidLevel, l.ID, err)
	}
	return nil
}

// Columns returns the number of column groups in the level.
func (l *Level) Columns() int {
	return l.Program.TotalColumns()
}

// Parse decodes and validates a level file.
func Parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	lvl := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Palette:  parsed.Palette,
		Program:  parsed.Program,
		Metadata: parsed.Metadata,
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped; use LoadFile to see why.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

// LoadFile loads and validates a single level file.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	lvl, err := Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("loading %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

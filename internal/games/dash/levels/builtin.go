package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Builtin returns the embedded level pack sorted by ID.
// An invalid embedded level is a build defect and reported as an error.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "data")
	if err != nil {
		return nil, fmt.Errorf("levels: read embedded pack: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := path.Join("data", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
		lvl, err := Parse(data, path.Ext(name))
		if err != nil {
			return nil, fmt.Errorf("levels: embedded %s: %w", name, err)
		}
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
	"github.com/vovakirdan/tui-dash/internal/games/dash/script"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Palette    YAMLPalette       `yaml:"palette"`
	Animations []YAMLAnimation   `yaml:"animations,omitempty"`
	Portals    []int             `yaml:"portals,omitempty"`
	Messages   []string          `yaml:"messages,omitempty"`
	Script     []string          `yaml:"script"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPalette holds the four slot colours as hex codes or colour names.
type YAMLPalette struct {
	Foreground string `yaml:"foreground"`
	Animated   string `yaml:"animated"`
	Background string `yaml:"background"`
	Ground     string `yaml:"ground"`
}

// YAMLAnimation is one animation-table entry.
type YAMLAnimation struct {
	Distance float64 `yaml:"distance"`
	Rate     float64 `yaml:"rate"`
	TriggerX float64 `yaml:"trigger_x"`
	Count    int     `yaml:"count"`
	Mode     string  `yaml:"mode,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Palette  entity.Palette
	Program  script.Program
	Metadata map[string]string
}

// ParseYAML parses a YAML level file. The script itself is not validated here.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Metadata: yl.Metadata,
		Program: script.Program{
			Lines:    yl.Script,
			Portals:  yl.Portals,
			Messages: yl.Messages,
		},
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	slots := []struct {
		slot  entity.Slot
		value string
	}{
		{entity.SlotForeground, yl.Palette.Foreground},
		{entity.SlotAnimated, yl.Palette.Animated},
		{entity.SlotBackground, yl.Palette.Background},
		{entity.SlotGround, yl.Palette.Ground},
	}
	for _, s := range slots {
		if s.value == "" {
			return Level{}, fmt.Errorf("palette: missing %s colour", s.slot)
		}
		c, err := ParseColor(s.value)
		if err != nil {
			return Level{}, fmt.Errorf("palette %s: %w", s.slot, err)
		}
		level.Palette.Set(s.slot, c)
	}

	for i, a := range yl.Animations {
		mode, err := script.ParseFinalMode(a.Mode)
		if err != nil {
			return Level{}, fmt.Errorf("animation %d: %w", i, err)
		}
		level.Program.Anims = append(level.Program.Anims, script.AnimParams{
			Distance: a.Distance,
			Rate:     a.Rate,
			TriggerX: a.TriggerX,
			Count:    a.Count,
			Mode:     mode,
		})
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

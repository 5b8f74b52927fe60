package formats

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// ParseColor accepts "#RRGGBB" or an SVG/CSS colour name such as "crimson".
func ParseColor(s string) (core.RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return core.ParseHex(s)
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return core.RGB{}, fmt.Errorf("unknown colour %q", s)
	}
	return core.RGB{R: c.R, G: c.G, B: c.B}, nil
}

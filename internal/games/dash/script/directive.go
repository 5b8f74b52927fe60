package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
)

var (
	colorDirective   = regexp.MustCompile(`^(colorChange1?|colorChanGe1?|bgchange|bgchanGe|cgchange|cgchanGe):(#[0-9A-Fa-f]{6})(\d*)$`)
	textureDirective = regexp.MustCompile(`^texture:(\d+)$`)
	directiveNames   = []string{"colorChange", "colorChanGe", "bgchange", "bgchanGe", "cgchange", "cgchanGe", "texture", "staticCamera", "end"}
)

// looksLikeDirective reports whether a line is meant as a directive, so that
// malformed directives are not misreported as bad rows.
func looksLikeDirective(line string) bool {
	if strings.Contains(line, ":") {
		return true
	}
	for _, name := range directiveNames {
		if strings.HasPrefix(line, name) {
			return true
		}
	}
	return false
}

// colorSlot maps a colour directive name to its palette slot and whether it fades.
func colorSlot(name string) (entity.Slot, bool) {
	fade := strings.Contains(name, "G")
	switch strings.ToLower(name) {
	case "colorchange":
		return entity.SlotForeground, fade
	case "colorchange1":
		return entity.SlotAnimated, fade
	case "bgchange":
		return entity.SlotBackground, fade
	default:
		return entity.SlotGround, fade
	}
}

// parseDirective turns a directive line into its timed event. cursor is the
// current build x and far the trigger used by look-ahead directives.
func parseDirective(line string, cursor, far float64) (*entity.TimedEvent, error) {
	farX := max(cursor, far)

	switch line {
	case "staticCamera":
		return &entity.TimedEvent{TriggerX: farX, Kind: entity.EventStaticCamera}, nil
	case "end":
		return &entity.TimedEvent{TriggerX: farX, Kind: entity.EventLevelEnd}, nil
	}

	if m := textureDirective.FindStringSubmatch(line); m != nil {
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: texture index: %v", ErrMalformedDirective, err)
		}
		return &entity.TimedEvent{TriggerX: farX, Kind: entity.EventTextureSwap, Texture: idx}, nil
	}

	m := colorDirective.FindStringSubmatch(line)
	if m == nil {
		return nil, ErrMalformedDirective
	}
	slot, fade := colorSlot(m[1])
	c, err := core.ParseHex(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDirective, err)
	}

	steps := 0
	switch {
	case fade && len(m[3]) != 3:
		return nil, fmt.Errorf("%w: fade needs a 3-digit step count", ErrMalformedDirective)
	case !fade && m[3] != "":
		return nil, fmt.Errorf("%w: immediate colour change takes no step count", ErrMalformedDirective)
	case fade:
		steps, _ = strconv.Atoi(m[3])
		if steps == 0 {
			return nil, fmt.Errorf("%w: fade step count must be positive", ErrMalformedDirective)
		}
	}
	return entity.NewPaletteSwap(cursor, slot, c, steps), nil
}

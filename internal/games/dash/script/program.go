// Package script compiles level-script lines into entity spawn batches.
//
// A row line is a column of single-character tokens listed bottom to top,
// followed by one decimal digit that repeats the column horizontally:
//
//	b9     nine blocks on the bottom slot
//	0s3    three spikes one slot above the floor
//	bp1    a block with a portal stacked above it
//
// Directive lines schedule timed events instead of spawning entities:
// colour changes, staticCamera, texture:N and end.
package script

import (
	"fmt"

	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
)

// FinalMode pre-displaces animated entities so that their animation ends on
// the nominal grid slot instead of starting there.
type FinalMode int

const (
	FinalNone FinalMode = iota
	FinalBoth           // displace up-movers and down-movers
	FinalDown           // displace only up-movers (M, W)
	FinalUp             // displace only down-movers (m, w)
)

// ParseFinalMode converts a level-file mode name.
func ParseFinalMode(s string) (FinalMode, error) {
	switch s {
	case "":
		return FinalNone, nil
	case "final":
		return FinalBoth, nil
	case "final_down", "finalDown":
		return FinalDown, nil
	case "final_up", "finalUp":
		return FinalUp, nil
	default:
		return FinalNone, fmt.Errorf("script: unknown animation mode %q", s)
	}
}

// AnimParams is one entry of the animation-parameter table.
type AnimParams struct {
	Distance float64
	Rate     float64
	TriggerX float64
	Count    int
	Mode     FinalMode
}

// Program is a complete level script with its side tables.
type Program struct {
	Lines    []string
	Anims    []AnimParams
	Portals  []int
	Messages []string
}

// TotalColumns returns the number of column groups the script spawns, the
// denominator of level progress. Malformed rows count as zero.
func (p *Program) TotalColumns() int {
	total := 0
	for _, line := range p.Lines {
		if _, repeat, ok := splitRow(line); ok {
			total += repeat
		}
	}
	return total
}

// Validate interprets the whole script once and returns the first error.
func (p *Program) Validate() error {
	for i, fn := range p.Portals {
		if !entity.ValidPortalFunction(fn) {
			return fmt.Errorf("script: portal table entry %d: %w: %d", i, ErrInvalidPortal, fn)
		}
	}
	for i, a := range p.Anims {
		if a.Count <= 0 || a.Rate <= 0 || a.Distance < 0 {
			return fmt.Errorf("script: animation table entry %d: count and rate must be positive", i)
		}
	}

	in := NewInterpreter(p, DefaultFarTriggerX)
	cursor := DefaultSpawnX
	for {
		b, err := in.Next(cursor, 0)
		if err != nil {
			return err
		}
		if b.Complete {
			return nil
		}
		cursor += b.Advance
	}
}

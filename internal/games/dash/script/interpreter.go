package script

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
)

// Grid layout in world pixels.
const (
	BottomY  = 399 // top of the lowest slot
	TopSlot  = 270 // offset of the highest slot above BottomY
	ColumnW  = entity.Size
	SlotH    = entity.Size
	rowToken = "bsS0RBpTMmWw"

	DefaultSpawnX      = 480.0
	DefaultFarTriggerX = 820.0
)

// Batch is the output of one interpreted line.
type Batch struct {
	Entities []*entity.Entity
	Events   []*entity.TimedEvent

	// Columns holds the x of every column group spawned, in order.
	Columns []float64
	// Advance is how far the build cursor moves past this batch.
	Advance float64

	// Complete is set once the script is exhausted.
	Complete bool
}

// Interpreter walks a Program one line at a time. It owns the line, animation,
// portal and message cursors and is reset by creating a new one.
type Interpreter struct {
	prog    *Program
	farX    float64
	line    int
	anim    int
	animUse int
	portal  int
	message int
}

// NewInterpreter returns an interpreter positioned at the first line.
// farTriggerX is the minimum trigger x of staticCamera, texture and end.
func NewInterpreter(p *Program, farTriggerX float64) *Interpreter {
	return &Interpreter{prog: p, farX: farTriggerX}
}

// Line returns the index of the next line to interpret.
func (in *Interpreter) Line() int {
	return in.line
}

// Done reports whether every line has been consumed.
func (in *Interpreter) Done() bool {
	return in.line >= len(in.prog.Lines)
}

// Next interprets exactly one line with the build cursor at x. texture is the
// block texture index stamped on spawned blocks. A malformed line is rejected
// whole: nothing is spawned and the cursor does not advance.
func (in *Interpreter) Next(x float64, texture int) (Batch, error) {
	if in.Done() {
		return Batch{Complete: true}, nil
	}

	idx := in.line
	raw := in.prog.Lines[idx]
	line := strings.TrimSpace(raw)

	var (
		b   Batch
		err error
	)
	if tokens, repeat, ok := splitRow(line); ok {
		b, err = in.row(tokens, repeat, x, texture)
	} else if looksLikeDirective(line) {
		var ev *entity.TimedEvent
		ev, err = parseDirective(line, x, in.farX)
		if err == nil {
			b.Events = append(b.Events, ev)
		}
	} else {
		err = classifyRowError(line)
	}
	if err != nil {
		return Batch{}, &LineError{Line: idx, Text: raw, Err: err}
	}

	in.line++
	return b, nil
}

// splitRow splits a row line into its tokens and trailing repeat digit.
func splitRow(line string) (string, int, bool) {
	n := len(line)
	if n < 2 {
		return "", 0, false
	}
	last := line[n-1]
	if last < '0' || last > '9' {
		return "", 0, false
	}
	tokens := line[:n-1]
	for i := 0; i < len(tokens); i++ {
		if !strings.ContainsRune(rowToken, rune(tokens[i])) {
			return "", 0, false
		}
	}
	return tokens, int(last - '0'), true
}

func classifyRowError(line string) error {
	n := len(line)
	if n < 2 || line[n-1] < '0' || line[n-1] > '9' {
		return ErrMalformedRow
	}
	return ErrUnknownToken
}

// row spawns repeat copies of a token column starting at x. Side-table
// cursors are committed only if the whole row succeeds.
func (in *Interpreter) row(tokens string, repeat int, x float64, texture int) (Batch, error) {
	saved := *in
	var b Batch

	for i := 0; i < repeat; i++ {
		cx := x + float64(i*ColumnW)
		if err := in.column(&b, tokens, cx, texture); err != nil {
			*in = saved
			return Batch{}, err
		}
		b.Columns = append(b.Columns, cx)

		if in.anim < len(in.prog.Anims) && in.animUse >= in.prog.Anims[in.anim].Count {
			in.anim++
			in.animUse = 0
		}
	}
	b.Advance = float64(repeat * ColumnW)
	return b, nil
}

// column spawns one stack of tokens, bottom to top.
func (in *Interpreter) column(b *Batch, tokens string, x float64, texture int) error {
	offset := 0.0
	for j := 0; j < len(tokens); j++ {
		var next byte
		if j+1 < len(tokens) {
			next = tokens[j+1]
		}
		top := offset == TopSlot
		y := BottomY - offset

		switch tokens[j] {
		case 'b':
			b.Entities = append(b.Entities, entity.NewBlock(x, y, texture))
		case '0':
		case 's':
			b.Entities = append(b.Entities, entity.NewSpike(x, y, next == 'b' || top))
		case 'S':
			if next == 'b' || next == 'S' || next == 's' || top {
				b.Entities = append(b.Entities, entity.NewHalfSpike(x, y, true))
			} else {
				b.Entities = append(b.Entities, entity.NewHalfSpike(x, y+SlotH/2, false))
			}
		case 'R':
			b.Entities = append(b.Entities, entity.NewRing(entity.KindJumpRing, x, y, entity.RingJump))
		case 'B':
			b.Entities = append(b.Entities, entity.NewRing(entity.KindGravityRing, x, y, entity.RingGravity))
		case 'T':
			if in.message >= len(in.prog.Messages) {
				return errTable("message")
			}
			b.Entities = append(b.Entities, entity.NewText(x, y, in.prog.Messages[in.message]))
			in.message++
		case 'p':
			if in.portal >= len(in.prog.Portals) {
				return errTable("portal")
			}
			offset += 2 * SlotH
			b.Entities = append(b.Entities, entity.NewPortal(x, BottomY-offset, in.prog.Portals[in.portal]))
			in.portal++
		case 'M', 'm', 'W', 'w':
			e, err := in.animated(tokens[j], next, x, y, top, texture)
			if err != nil {
				return err
			}
			b.Entities = append(b.Entities, e)
		default:
			return ErrUnknownToken
		}
		offset += SlotH
	}
	return nil
}

// animated spawns an M/m block or W/w spike bound to the current animation entry.
func (in *Interpreter) animated(tok, next byte, x, y float64, top bool, texture int) (*entity.Entity, error) {
	if in.anim >= len(in.prog.Anims) {
		return nil, errTable("animation")
	}
	p := in.prog.Anims[in.anim]
	in.animUse++

	dir := entity.Down
	if tok == 'M' || tok == 'W' {
		dir = entity.Up
	}
	switch {
	case dir == entity.Up && (p.Mode == FinalBoth || p.Mode == FinalDown):
		y += p.Distance
	case dir == entity.Down && (p.Mode == FinalBoth || p.Mode == FinalUp):
		y -= p.Distance
	}

	var e *entity.Entity
	switch tok {
	case 'M', 'm':
		e = entity.NewBlock(x, y, texture)
	case 'W':
		e = entity.NewSpike(x, y, next == 'b' || next == 'M' || top)
	default:
		e = entity.NewSpike(x, y, next == 'b' || next == 'm' || top)
	}
	e.Anim = &entity.Animation{
		Direction: dir,
		Distance:  p.Distance,
		Rate:      p.Rate,
		TriggerX:  p.TriggerX,
		OriginY:   y,
	}
	return e, nil
}

func errTable(name string) error {
	return fmt.Errorf("%s %w", name, ErrTableExhausted)
}

package script

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
)

func nextBatch(t *testing.T, in *Interpreter, x float64) Batch {
	t.Helper()
	b, err := in.Next(x, 0)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	return b
}

func TestRowSpawnsRepeatedBlocks(t *testing.T) {
	in := NewInterpreter(&Program{Lines: []string{"b9"}}, DefaultFarTriggerX)
	b := nextBatch(t, in, 480)

	if len(b.Entities) != 9 {
		t.Fatalf("spawned %d entities, expected 9", len(b.Entities))
	}
	for i, e := range b.Entities {
		wantX := 480 + float64(i*30)
		if e.Kind != entity.KindBlock {
			t.Errorf("entity %d kind = %s, expected block", i, e.Kind)
		}
		if e.Rect.X != wantX || e.Rect.Y != 399 || e.Rect.W != 30 || e.Rect.H != 30 {
			t.Errorf("entity %d rect = %+v, expected (%v, 399, 30, 30)", i, e.Rect, wantX)
		}
	}
	if len(b.Columns) != 9 || b.Advance != 270 {
		t.Errorf("columns = %d advance = %v, expected 9 and 270", len(b.Columns), b.Advance)
	}
}

func TestColumnStacking(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		portals  []int
		kinds    []entity.Kind
		ys       []float64
		inverted []bool
	}{
		{
			name:     "spike on a block",
			line:     "bs1",
			kinds:    []entity.Kind{entity.KindBlock, entity.KindSpike},
			ys:       []float64{399, 369},
			inverted: []bool{false, false},
		},
		{
			name:     "spike under a block hangs",
			line:     "sb1",
			kinds:    []entity.Kind{entity.KindSpike, entity.KindBlock},
			ys:       []float64{399, 369},
			inverted: []bool{true, false},
		},
		{
			name:     "spike on the top slot hangs",
			line:     "000000000s1",
			kinds:    []entity.Kind{entity.KindSpike},
			ys:       []float64{129},
			inverted: []bool{true},
		},
		{
			name:     "half spike sits on the lower half",
			line:     "S1",
			kinds:    []entity.Kind{entity.KindHalfSpike},
			ys:       []float64{414},
			inverted: []bool{false},
		},
		{
			name:     "half spike under a block hangs",
			line:     "Sb1",
			kinds:    []entity.Kind{entity.KindHalfSpike, entity.KindBlock},
			ys:       []float64{399, 369},
			inverted: []bool{true, false},
		},
		{
			name:     "portal on a block",
			line:     "bp1",
			portals:  []int{entity.FuncHover},
			kinds:    []entity.Kind{entity.KindBlock, entity.KindPortal},
			ys:       []float64{399, 309},
			inverted: []bool{false, false},
		},
		{
			name:     "block above a portal",
			line:     "pb1",
			portals:  []int{entity.FuncGravityUp},
			kinds:    []entity.Kind{entity.KindGravityTrigger, entity.KindBlock},
			ys:       []float64{339, 309},
			inverted: []bool{false, false},
		},
		{
			name:     "rings and gaps",
			line:     "0R0B1",
			kinds:    []entity.Kind{entity.KindJumpRing, entity.KindGravityRing},
			ys:       []float64{369, 309},
			inverted: []bool{false, false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewInterpreter(&Program{Lines: []string{tc.line}, Portals: tc.portals}, DefaultFarTriggerX)
			b := nextBatch(t, in, 480)

			if len(b.Entities) != len(tc.kinds) {
				t.Fatalf("spawned %d entities, expected %d", len(b.Entities), len(tc.kinds))
			}
			for i, e := range b.Entities {
				if e.Kind != tc.kinds[i] {
					t.Errorf("entity %d kind = %s, expected %s", i, e.Kind, tc.kinds[i])
				}
				if e.Rect.Y != tc.ys[i] {
					t.Errorf("entity %d y = %v, expected %v", i, e.Rect.Y, tc.ys[i])
				}
				if e.Inverted != tc.inverted[i] {
					t.Errorf("entity %d inverted = %v, expected %v", i, e.Inverted, tc.inverted[i])
				}
			}
		})
	}
}

func TestSideTablesConsumedInOrder(t *testing.T) {
	prog := &Program{
		Lines:    []string{"p2", "T1", "bT1"},
		Portals:  []int{entity.FuncArrow, entity.FuncFreeFall},
		Messages: []string{"hello", "world"},
	}
	in := NewInterpreter(prog, DefaultFarTriggerX)

	b := nextBatch(t, in, 480)
	if b.Entities[0].Function != entity.FuncArrow || b.Entities[1].Function != entity.FuncFreeFall {
		t.Errorf("portal functions = %d, %d", b.Entities[0].Function, b.Entities[1].Function)
	}

	b = nextBatch(t, in, 540)
	if b.Entities[0].Text != "hello" {
		t.Errorf("first message = %q", b.Entities[0].Text)
	}
	b = nextBatch(t, in, 570)
	if b.Entities[1].Text != "world" {
		t.Errorf("second message = %q", b.Entities[1].Text)
	}
}

func TestTableExhaustionRejectsWholeLine(t *testing.T) {
	prog := &Program{Lines: []string{"p2"}, Portals: []int{entity.FuncHover}}
	in := NewInterpreter(prog, DefaultFarTriggerX)

	_, err := in.Next(480, 0)
	if !errors.Is(err, ErrTableExhausted) {
		t.Fatalf("error = %v, expected ErrTableExhausted", err)
	}
	var le *LineError
	if !errors.As(err, &le) || le.Line != 0 {
		t.Errorf("error should be a LineError for line 0, got %v", err)
	}
	if in.Line() != 0 {
		t.Errorf("line cursor advanced to %d on error", in.Line())
	}
	if in.portal != 0 {
		t.Errorf("portal cursor = %d, expected rollback to 0", in.portal)
	}
}

func TestAnimationTableCursor(t *testing.T) {
	prog := &Program{
		Lines: []string{"M3"},
		Anims: []AnimParams{
			{Distance: 60, Rate: 2, TriggerX: 500, Count: 2},
			{Distance: 30, Rate: 1, TriggerX: 400, Count: 1, Mode: FinalBoth},
		},
	}
	in := NewInterpreter(prog, DefaultFarTriggerX)
	b := nextBatch(t, in, 480)

	if len(b.Entities) != 3 {
		t.Fatalf("spawned %d entities, expected 3", len(b.Entities))
	}
	first, second, third := b.Entities[0], b.Entities[1], b.Entities[2]
	if first.Anim.Distance != 60 || second.Anim.Distance != 60 {
		t.Errorf("first entry should serve two blocks, got %v and %v", first.Anim.Distance, second.Anim.Distance)
	}
	if third.Anim.Distance != 30 || third.Anim.TriggerX != 400 {
		t.Errorf("third block should use the second entry, got %+v", third.Anim)
	}
	if third.Rect.Y != 429 || third.Anim.OriginY != 429 {
		t.Errorf("final up-mover should start one distance low, y = %v", third.Rect.Y)
	}
	if third.Anim.Target() != 399 {
		t.Errorf("final animation should end on its slot, target = %v", third.Anim.Target())
	}
	if first.Anim == second.Anim {
		t.Error("entities must not share animation state")
	}
	if first.Anim.Direction != entity.Up {
		t.Errorf("M should animate up, got %s", first.Anim.Direction)
	}
}

func TestAnimatedSpikes(t *testing.T) {
	prog := &Program{
		Lines: []string{"Wb1", "wm1", "w1"},
		Anims: []AnimParams{{Distance: 30, Rate: 1, TriggerX: 400, Count: 10}},
	}
	in := NewInterpreter(prog, DefaultFarTriggerX)

	b := nextBatch(t, in, 480)
	if e := b.Entities[0]; e.Kind != entity.KindSpike || !e.Inverted || e.Anim.Direction != entity.Up {
		t.Errorf("W under a block = %+v", e)
	}
	b = nextBatch(t, in, 510)
	if e := b.Entities[0]; !e.Inverted || e.Anim.Direction != entity.Down {
		t.Errorf("w under m = %+v", e)
	}
	if !b.Entities[1].Animated() || b.Entities[1].Kind != entity.KindBlock {
		t.Errorf("m should be an animated block")
	}
	b = nextBatch(t, in, 540)
	if b.Entities[0].Inverted {
		t.Error("lone w should stand upright")
	}
}

func TestAnimationTableExhausted(t *testing.T) {
	in := NewInterpreter(&Program{Lines: []string{"M1"}}, DefaultFarTriggerX)
	if _, err := in.Next(480, 0); !errors.Is(err, ErrTableExhausted) {
		t.Errorf("error = %v, expected ErrTableExhausted", err)
	}
}

func TestDirectives(t *testing.T) {
	tests := []struct {
		line    string
		cursor  float64
		kind    entity.EventKind
		trigger float64
		slot    entity.Slot
		fade    int
	}{
		{"colorChange:#FF0000", 480, entity.EventPaletteSwap, 480, entity.SlotForeground, 0},
		{"colorChange1:#00ff00", 510, entity.EventPaletteSwap, 510, entity.SlotAnimated, 0},
		{"bgchanGe:#0000FF045", 480, entity.EventPaletteSwap, 480, entity.SlotBackground, 45},
		{"cgchanGe:#123456100", 480, entity.EventPaletteSwap, 480, entity.SlotGround, 100},
		{"cgchange:#123456", 480, entity.EventPaletteSwap, 480, entity.SlotGround, 0},
		{"staticCamera", 480, entity.EventStaticCamera, 820, 0, 0},
		{"staticCamera", 1000, entity.EventStaticCamera, 1000, 0, 0},
		{"end", 600, entity.EventLevelEnd, 820, 0, 0},
		{"texture:2", 480, entity.EventTextureSwap, 820, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			in := NewInterpreter(&Program{Lines: []string{tc.line}}, DefaultFarTriggerX)
			b := nextBatch(t, in, tc.cursor)

			if len(b.Entities) != 0 || b.Advance != 0 {
				t.Errorf("directive should not spawn or advance, got %d entities advance %v", len(b.Entities), b.Advance)
			}
			if len(b.Events) != 1 {
				t.Fatalf("got %d events, expected 1", len(b.Events))
			}
			ev := b.Events[0]
			if ev.Kind != tc.kind || ev.TriggerX != tc.trigger {
				t.Errorf("event = %s, expected %s @%v", ev, tc.kind, tc.trigger)
			}
			if tc.kind != entity.EventPaletteSwap {
				return
			}
			if ev.Slot != tc.slot {
				t.Errorf("slot = %s, expected %s", ev.Slot, tc.slot)
			}
			switch {
			case tc.fade == 0 && ev.Fade != nil:
				t.Error("immediate change should not fade")
			case tc.fade > 0 && (ev.Fade == nil || ev.Fade.Total != tc.fade):
				t.Errorf("fade = %+v, expected %d steps", ev.Fade, tc.fade)
			}
		})
	}
}

func TestMalformedLines(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"colorChange:#FF00", ErrMalformedDirective},
		{"bgchanGe:#0000FF", ErrMalformedDirective},
		{"bgchanGe:#0000FF45", ErrMalformedDirective},
		{"bgchanGe:#0000FF000", ErrMalformedDirective},
		{"colorChange:#FF0000010", ErrMalformedDirective},
		{"texture:x", ErrMalformedDirective},
		{"staticCamera1", ErrMalformedDirective},
		{"ending", ErrMalformedDirective},
		{"foo:bar", ErrMalformedDirective},
		{"bx3", ErrUnknownToken},
		{"bbb", ErrMalformedRow},
		{"9", ErrMalformedRow},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			in := NewInterpreter(&Program{Lines: []string{tc.line}}, DefaultFarTriggerX)
			b, err := in.Next(480, 0)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Next(%q) error = %v, expected %v", tc.line, err, tc.want)
			}
			if len(b.Entities) != 0 || len(b.Events) != 0 {
				t.Error("a rejected line must not produce a partial batch")
			}
		})
	}
}

func TestNextOneLinePerCallAndCompletion(t *testing.T) {
	prog := &Program{Lines: []string{"b2", "colorChange:#FF0000", "0s3"}}
	in := NewInterpreter(prog, DefaultFarTriggerX)

	for i := 0; i < 3; i++ {
		if in.Done() {
			t.Fatalf("done after %d lines", i)
		}
		b := nextBatch(t, in, 480)
		if b.Complete {
			t.Fatalf("line %d reported completion", i)
		}
		if in.Line() != i+1 {
			t.Errorf("Line() = %d, expected %d", in.Line(), i+1)
		}
	}
	if b := nextBatch(t, in, 480); !b.Complete {
		t.Error("exhausted script should report completion")
	}
}

func TestProgramTotalColumns(t *testing.T) {
	prog := &Program{Lines: []string{"b9", "colorChange:#FF0000", "0s3", "end"}}
	if got := prog.TotalColumns(); got != 12 {
		t.Errorf("TotalColumns() = %d, expected 12", got)
	}
}

func TestProgramValidate(t *testing.T) {
	tests := []struct {
		name string
		prog Program
		want error
	}{
		{
			name: "valid",
			prog: Program{
				Lines:   []string{"b9", "bp1", "bgchanGe:#0000FF045", "M2", "end"},
				Portals: []int{entity.FuncHover},
				Anims:   []AnimParams{{Distance: 30, Rate: 1, TriggerX: 400, Count: 2}},
			},
		},
		{
			name: "unknown portal function",
			prog: Program{Lines: []string{"p1"}, Portals: []int{5}},
			want: ErrInvalidPortal,
		},
		{
			name: "bad token deep in the script",
			prog: Program{Lines: []string{"b9", "b9", "bq1"}},
			want: ErrUnknownToken,
		},
		{
			name: "not enough portals",
			prog: Program{Lines: []string{"p1", "p1"}, Portals: []int{entity.FuncArrow}},
			want: ErrTableExhausted,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.prog.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestParseFinalMode(t *testing.T) {
	tests := []struct {
		in      string
		want    FinalMode
		wantErr bool
	}{
		{"", FinalNone, false},
		{"final", FinalBoth, false},
		{"final_down", FinalDown, false},
		{"finalUp", FinalUp, false},
		{"sideways", FinalNone, true},
	}
	for _, tc := range tests {
		got, err := ParseFinalMode(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ParseFinalMode(%q) = %v, %v", tc.in, got, err)
		}
	}
}

package dash

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
	"github.com/vovakirdan/tui-dash/internal/games/dash/sim"
)

// Glyphs and fixed colours for entities that are not palette tinted.
var (
	blockGlyphs = []rune{'█', '▓', '▒', '░'}

	spikeColor   = core.RGB{R: 0xF0, G: 0xF0, B: 0xF0}
	jumpColor    = core.RGB{R: 0xFF, G: 0xD7, B: 0x00}
	gravityColor = core.RGB{R: 0x3F, G: 0xA9, B: 0xF5}
	playerColor  = core.RGB{R: 0xFF, G: 0xFF, B: 0x00}
	dyingColor   = core.RGB{R: 0xFF, G: 0x30, B: 0x30}
	textColor    = core.RGB{R: 0xFF, G: 0xFF, B: 0xFF}
	dotColor     = core.RGB{R: 0xFF, G: 0xFF, B: 0xFF}
	spentColor   = core.RGB{R: 0x55, G: 0x55, B: 0x55}

	portalColors = map[int]core.RGB{
		entity.FuncArrow:        {R: 0xFF, G: 0x66, B: 0xCC},
		entity.FuncFreeFall:     {R: 0x66, G: 0xFF, B: 0x66},
		entity.FuncGravityBall:  {R: 0xFF, G: 0x33, B: 0x33},
		entity.FuncHover:        {R: 0xAA, G: 0x66, B: 0xFF},
		entity.FuncTeleportUp:   {R: 0xFF, G: 0xA5, B: 0x00},
		entity.FuncTeleportDown: {R: 0xFF, G: 0xA5, B: 0x00},
		entity.FuncSpeedFast:    {R: 0x00, G: 0xFF, B: 0xFF},
		entity.FuncSpeedNormal:  {R: 0x00, G: 0x99, B: 0xFF},
	}
)

// view maps world pixels to screen cells. Row 0 is the HUD.
type view struct {
	dst    *core.Screen
	spanX  float64
	top    float64
	spanY  float64
	bg     core.RGB
	scroll float64
	window core.Rect
}

func (g *Game) newView(dst *core.Screen, s sim.Snapshot) view {
	p := g.cfg.Player
	top := p.CeilingY - p.Size
	spanY := p.FloorY + 2*p.Size - top
	return view{
		dst:    dst,
		spanX:  g.cfg.Scroll.ScreenWidth,
		top:    top,
		spanY:  spanY,
		bg:     s.Palette.Get(entity.SlotBackground),
		scroll: s.Scrolled,
		window: core.NewRect(0, top, g.cfg.Scroll.ScreenWidth, spanY),
	}
}

func (v view) col(x float64) int {
	return int(math.Floor(x * float64(v.dst.Width()) / v.spanX))
}

func (v view) row(y float64) int {
	rows := float64(v.dst.Height() - 1)
	return 1 + int(math.Floor((y-v.top)*rows/v.spanY))
}

// span returns the cell range covered by a world rect, at least one cell each way.
func (v view) span(r core.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = v.col(r.X), v.row(r.Y)
	c1, r1 = max(c0+1, v.col(r.Right())), max(r0+1, v.row(r.Bottom()))
	return c0, r0, c1, r1
}

func (v view) fill(r core.Rect, ch rune, fg core.RGB) {
	c0, r0, c1, r1 := v.span(r)
	for y := max(r0, 1); y < r1; y++ {
		for x := c0; x < c1; x++ {
			v.dst.SetCell(x, y, core.Colored(ch, fg).OnBackground(v.bg))
		}
	}
}

func (v view) text(x, y int, s string, fg core.RGB) {
	i := 0
	for _, r := range s {
		v.dst.SetCell(x+i, y, core.Colored(r, fg).OnBackground(v.bg))
		i++
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s, ok := g.Snapshot()
	if !ok {
		g.drawCenteredMessage(dst, "LEVEL ERROR", g.errText(dst.Width()-8))
		return
	}

	v := g.newView(dst, s)
	dst.FillCell(core.Plain(' ').OnBackground(v.bg))

	g.drawBounds(v, s)
	for _, d := range s.Dots {
		if !v.window.Contains(d.X, d.Y) {
			continue
		}
		c := v.bg.Lerp(dotColor, int(d.Alpha*100), 100)
		dst.SetCell(v.col(d.X), v.row(d.Y), core.Colored('·', c).OnBackground(v.bg))
	}
	for _, e := range s.Entities {
		// Text runs past its rect, so only shapes are culled.
		if e.Kind != entity.KindText && !v.window.Intersects(e.Rect) {
			continue
		}
		g.drawEntity(v, e)
	}
	g.drawPlayer(v, s.Player)
	g.drawHUD(dst, s)

	switch {
	case s.State.Complete:
		g.drawCenteredMessage(dst, "LEVEL COMPLETE", fmt.Sprintf("Attempts: %d  |  R restart  Q menu", s.State.Attempts))
	case s.State.Paused:
		g.drawCenteredMessage(dst, "PAUSED", "P resume  |  R restart  Q menu")
	}
}

// drawBounds draws the ceiling and the ground strip. The ground texture
// moves with the world.
func (g *Game) drawBounds(v view, s sim.Snapshot) {
	ground := s.Palette.Get(entity.SlotGround)
	_, _, _, ceilEnd := v.span(s.Ceiling)
	for y := 1; y < ceilEnd; y++ {
		for x := 0; x < v.dst.Width(); x++ {
			v.dst.SetCell(x, y, core.Colored('▀', ground).OnBackground(v.bg))
		}
	}

	groundTop := v.row(s.Ground.Y)
	cell := g.cfg.Player.Size
	for x := 0; x < v.dst.Width(); x++ {
		wx := (float64(x)+0.5)*v.spanX/float64(v.dst.Width()) + v.scroll
		ch := '▓'
		if int(math.Floor(wx/cell))%2 == 0 {
			ch = '▒'
		}
		for y := groundTop; y < v.dst.Height(); y++ {
			r := ch
			if y == groundTop {
				r = '▄'
			}
			v.dst.SetCell(x, y, core.Colored(r, ground).OnBackground(v.bg))
		}
	}
}

func (g *Game) drawEntity(v view, e sim.EntityView) {
	switch e.Kind {
	case entity.KindBlock:
		v.fill(e.Rect, blockGlyphs[e.Texture%len(blockGlyphs)], e.Color)
	case entity.KindSpike:
		ch, c := '▲', spikeColor
		if e.Inverted {
			ch = '▼'
		}
		if e.Tinted {
			c = e.Color
		}
		v.fill(e.Rect, ch, c)
	case entity.KindHalfSpike:
		ch := '▴'
		if e.Inverted {
			ch = '▾'
		}
		v.fill(e.Rect, ch, spikeColor)
	case entity.KindJumpRing:
		v.fill(e.Rect, '○', enabledColor(e, jumpColor))
	case entity.KindGravityRing:
		v.fill(e.Rect, '◎', enabledColor(e, gravityColor))
	case entity.KindPortal:
		v.fill(e.Rect, '▐', enabledColor(e, portalColors[e.Function]))
	case entity.KindGravityTrigger:
		ch := '⇣'
		if e.Function == entity.FuncGravityUp {
			ch = '⇡'
		}
		v.fill(e.Rect, ch, enabledColor(e, gravityColor))
	case entity.KindText:
		v.text(v.col(e.Rect.X), v.row(e.Rect.Y), e.Text, textColor)
	}
}

func enabledColor(e sim.EntityView, c core.RGB) core.RGB {
	if !e.Enabled {
		return spentColor
	}
	return c
}

func (g *Game) drawPlayer(v view, p sim.PlayerView) {
	if p.Dying {
		v.fill(p.Rect, '✕', dyingColor)
		return
	}
	v.fill(p.Rect, p.Glyph, playerColor)
}

// drawHUD draws the level name, progress bar, percent and attempt counter.
func (g *Game) drawHUD(dst *core.Screen, s sim.Snapshot) {
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 0, ' ')
	}
	left := fmt.Sprintf(" %s  %3d%% %s", g.Title(), s.State.Percent, progressBar(s.State.Percent, 20))
	dst.DrawText(0, 0, left)

	var flags []string
	if s.FlyThrough {
		flags = append(flags, "FLY")
	}
	if s.Player.Scheme != sim.SchemeFreeFall {
		flags = append(flags, s.Player.Scheme.String())
	}
	right := fmt.Sprintf("%s  Attempt %d ", strings.Join(flags, " "), s.State.Attempts)
	dst.DrawText(dst.Width()-len([]rune(right)), 0, right)
}

// progressBar renders percent as a fixed-width bar.
func progressBar(percent, width int) string {
	filled := core.Clamp(percent*width/100, 0, width)
	return "[" + strings.Repeat("■", filled) + strings.Repeat("·", width-filled) + "]"
}

func (g *Game) errText(width int) string {
	msg := "unknown error"
	if g.err != nil {
		msg = g.err.Error()
	}
	if width > 3 && len([]rune(msg)) > width {
		msg = string([]rune(msg)[:width-3]) + "..."
	}
	return msg
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, core.Plain(' '))
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

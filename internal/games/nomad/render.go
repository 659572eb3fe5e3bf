package nomad

import (
	"fmt"
	"math"

	"github.com/vovakirdan/desert-nomad/internal/core"
)

// Visual characters for rendering
const (
	GroundChar    = '═'
	SandChar      = '░'
	BodyChar      = '█'
	HeadChar      = '◆'
	Leg1Char      = '╱'
	Leg2Char      = '╲'
	WarningChar   = '▼'
	DustChar      = '·'
	WindChar      = '-'
	ShimmerChar   = '~'
	CactusChar    = '▓'
	RockChar      = '▲'
	SnakeChar     = '∿'
	ScorpionChar  = '¤'
	QuicksandChar = '≈'
)

var tumbleweedFrames = []rune{'@', '*', '%', '&'}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()
	r := renderer{dst: dst, cw: g.cfg.Viewport.CellWidth, ch: g.cfg.Viewport.CellHeight}

	r.drawWeather(snap)
	r.drawGround(snap)
	for _, o := range snap.Obstacles {
		r.drawObstacle(o)
	}
	r.drawPlayer(snap.Player)
	r.drawHUD(snap)

	if g.cfg.Session.DebugOverlay {
		r.drawDebug(snap)
	}
	if snap.TutorialPending && !snap.GameOver {
		dst.DrawTextCenteredColored(dst.Height()/3, "SPACE / W to jump  -  S to duck", core.ColorBrightWhite)
	}
	if g.paused {
		r.drawCenteredMessage("PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		sub := fmt.Sprintf("Score: %d  Best: %d  |  Press R to restart", snap.Score, snap.Best)
		title := "GAME OVER"
		if snap.NewBest {
			title = "NEW BEST!"
		}
		r.drawCenteredMessage(title, sub)
	}
}

// renderer maps world units onto screen cells.
type renderer struct {
	dst    *core.Screen
	cw, ch float64
}

func (r renderer) col(x float64) int { return int(math.Floor(x / r.cw)) }
func (r renderer) row(y float64) int { return int(math.Floor(y / r.ch)) }

// cells returns the screen rectangle covered by a world box.
// Any box taller or wider than zero covers at least one cell.
func (r renderer) cells(b core.Box) core.Rect {
	x0, y0 := r.col(b.X), r.row(b.Y)
	x1 := core.Max(x0+1, int(math.Ceil(b.Right()/r.cw)))
	y1 := core.Max(y0+1, int(math.Ceil(b.Bottom()/r.ch)))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (r renderer) drawGround(snap Snapshot) {
	gy := r.row(snap.GroundY)
	for x := 0; x < r.dst.Width(); x++ {
		r.dst.SetColored(x, gy, GroundChar, core.ColorYellow)
	}

	// Scrolling dunes below the ground line
	offset := int(snap.Elapsed*snap.Speed/(r.cw*16.0)) % 7
	for y := gy + 1; y < r.dst.Height(); y++ {
		for x := 0; x < r.dst.Width(); x++ {
			if (x+offset+y*3)%7 == 0 {
				r.dst.SetColored(x, y, SandChar, core.ColorOrange)
			}
		}
	}
}

func (r renderer) drawPlayer(p Player) {
	rect := r.cells(core.NewBox(p.X, p.Y, p.Width, p.Height))
	color := core.ColorBrightCyan
	if p.InHazard {
		color = core.ColorOrange
	}

	// Body fills the box, head on top, legs on the bottom row
	r.dst.DrawRectColored(rect, BodyChar, color)
	r.dst.SetColored(rect.X+rect.W-1, rect.Y, HeadChar, color)
	if rect.H < 2 {
		return
	}
	legs := rect.Bottom() - 1
	for x := rect.X; x < rect.Right(); x++ {
		r.dst.SetColored(x, legs, ' ', core.ColorDefault)
	}
	switch {
	case !p.Grounded:
		r.dst.SetColored(rect.X, legs, Leg1Char, color)
		r.dst.SetColored(rect.X+1, legs, Leg2Char, color)
	case p.RunFrame%2 == 0:
		r.dst.SetColored(rect.X, legs, Leg1Char, color)
		r.dst.SetColored(rect.Right()-1, legs, Leg2Char, color)
	default:
		r.dst.SetColored(rect.X+1, legs, Leg1Char, color)
		r.dst.SetColored(rect.Right()-2, legs, Leg2Char, color)
	}
}

func (r renderer) drawObstacle(o ObstacleView) {
	rect := r.cells(o.Bounds())
	switch o.Kind {
	case KindCactus:
		r.dst.DrawRectColored(rect, CactusChar, core.ColorGreen)
	case KindRock:
		r.dst.DrawRectColored(rect, RockChar, core.ColorGray)
	case KindSnake:
		for x := rect.X; x < rect.Right(); x++ {
			ch := SnakeChar
			if (x+int(o.AnimFrame))%2 == 0 {
				ch = '~'
			}
			r.dst.SetColored(x, rect.Y, ch, core.ColorYellow)
		}
	case KindScorpion:
		r.dst.DrawRectColored(rect, ScorpionChar, core.ColorRed)
	case KindQuicksand:
		// Only the surface row is visible
		for x := rect.X; x < rect.Right(); x++ {
			ch := QuicksandChar
			if int(o.AnimTime+float64(x))%3 == 0 {
				ch = '°'
			}
			r.dst.SetColored(x, r.row(o.Y), ch, core.ColorOrange)
		}
	case KindTumbleweed:
		frame := tumbleweedFrames[int(o.Rotation)%len(tumbleweedFrames)]
		r.dst.DrawRectColored(rect, frame, core.ColorBrightYellow)
	default:
		panic(fmt.Sprintf("nomad: unknown obstacle kind %d", o.Kind))
	}

	if o.Warning && rect.Y > 1 {
		r.dst.SetColored(rect.X+rect.W/2, rect.Y-1, WarningChar, core.ColorBrightRed)
	}
}

// drawWeather scatters cosmetic particles. Placement is a hash of the
// cell and time so frames are stable without extra state.
func (r renderer) drawWeather(snap Snapshot) {
	v := snap.Weather.Visuals
	frame := int(snap.Elapsed / 50)
	gy := r.row(snap.GroundY)

	dust := (1 - v.Visibility) * 0.6
	streaks := math.Min(0.25, v.WindStrength*0.03)
	for y := 1; y < gy; y++ {
		for x := 0; x < r.dst.Width(); x++ {
			h := cellHash(x+frame*int(1+v.WindStrength), y)
			switch {
			case h < dust:
				r.dst.SetColored(x, y, DustChar, core.ColorOrange)
			case h < dust+streaks:
				r.dst.SetColored(x, y, WindChar, core.ColorGray)
			}
		}
	}

	if v.HeatDistortion > 0.2 && gy > 1 {
		for x := 0; x < r.dst.Width(); x++ {
			if cellHash(x, frame) < v.HeatDistortion*0.5 {
				r.dst.SetColored(x, gy-1, ShimmerChar, core.ColorBrightRed)
			}
		}
	}
}

// cellHash returns a stable pseudo-random value in [0, 1) for a cell.
func cellHash(x, y int) float64 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h%10000) / 10000
}

func (r renderer) drawHUD(snap Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.Best)
	r.dst.DrawText(2, 0, left)

	right := fmt.Sprintf(" %s  |  %s ", snap.Tier.Label, snap.Weather.Kind)
	if snap.Weather.Transitioning {
		right = fmt.Sprintf(" %s  |  %s -> %s ", snap.Tier.Label, snap.Weather.Kind, snap.Weather.Target)
	}
	r.dst.DrawText(r.dst.Width()-len([]rune(right))-2, 0, right)

	if snap.Weather.Banner != "" {
		color := core.ColorBrightYellow
		if snap.Weather.BannerAlpha < 0.4 {
			color = core.ColorGray
		}
		r.dst.DrawTextCenteredColored(2, snap.Weather.Banner, color)
	}
}

func (r renderer) drawDebug(snap Snapshot) {
	lines := []string{
		fmt.Sprintf("Speed: %.2f", snap.Speed),
		fmt.Sprintf("Tier: %s (x%.2f)", snap.Tier.Label, snap.Tier.SpeedMult),
		fmt.Sprintf("Weather: %s (%.0f%%)", snap.Weather.Kind, snap.Weather.Intensity*100),
		fmt.Sprintf("Wind: %.1f", snap.Weather.Visuals.WindStrength),
		fmt.Sprintf("Obstacles: %d", len(snap.Obstacles)),
	}
	for i, line := range lines {
		r.dst.DrawTextColored(2, 2+i, line, core.ColorBrightGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (r renderer) drawCenteredMessage(title, subtitle string) {
	w := r.dst.Width()
	h := r.dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	r.dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	r.dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	r.dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	r.dst.DrawText(subtitleX, boxY+3, subtitle)
}

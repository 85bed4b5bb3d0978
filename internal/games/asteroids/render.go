package asteroids

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// End-of-session messages.
const (
	WinMessage  = "You Win!"
	LoseMessage = "Game Over!"
	RestartHint = "Press Enter to play again, Q to quit"
)

// tierColors colours asteroids from largest to smallest.
var tierColors = [TierCount]core.Color{
	core.ColorGray,
	core.ColorWhite,
	core.ColorOrange,
	core.ColorBrightRed,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Screen too small (min %dx%d)", minScreenW, minScreenH))
		return
	}

	w := g.session.World
	g.canvas.Clear()
	g.drawField(w)
	g.canvas.Flush(dst, hudRows)
	g.drawHUD(dst, w)

	switch g.session.Phase() {
	case PhaseWon:
		drawCenteredMessage(dst, WinMessage, fmt.Sprintf("Score: %d", w.Score), RestartHint, core.ColorBrightGreen)
	case PhaseLost:
		drawCenteredMessage(dst, LoseMessage, fmt.Sprintf("Score: %d", w.Score), RestartHint, core.ColorBrightRed)
	default:
		if g.session.Paused() {
			drawCenteredMessage(dst, "PAUSED", "", "Press P to resume", core.ColorBrightYellow)
		}
	}
}

// drawField plots every entity onto the canvas.
func (g *Game) drawField(w *World) {
	for _, a := range w.Asteroids {
		sides := w.params.Tiers[a.Tier].Sides
		g.canvas.Polygon(a.Pos, a.Radius, sides, a.Rotation, tierColors[a.Tier])
	}

	for _, b := range w.Ship.Bullets {
		g.canvas.Plot(b.Pos, core.ColorBrightYellow)
	}

	s := w.Ship
	size := g.cfg.Ship.Size
	nose := s.Pos.Add(core.FromHeading(s.Heading).Scale(size))
	left := s.Pos.Add(core.FromHeading(s.Heading - 140).Scale(size * 0.8))
	right := s.Pos.Add(core.FromHeading(s.Heading + 140).Scale(size * 0.8))
	g.canvas.Triangle(nose, left, right, core.ColorBrightWhite)

	if s.Shield {
		g.canvas.Circle(s.Pos, g.cfg.Ship.ShieldRadius, core.ColorBrightCyan)
	}
}

// drawHUD writes the status line above the playfield.
func (g *Game) drawHUD(dst *core.Screen, w *World) {
	counts := w.TierCounts()
	left := fmt.Sprintf(" Score: %d  Rocks: %d (%d/%d/%d/%d)",
		w.Score, len(w.Asteroids), counts[0], counts[1], counts[2], counts[3])
	dst.DrawText(0, 0, left)

	if w.Ship.Shield {
		dst.DrawTextColor(len(left)+2, 0, "SHIELD", core.ColorBrightCyan)
	}

	right := fmt.Sprintf("Session %d ", g.session.Played())
	dst.DrawText(dst.Width()-len(right), 0, right)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle, hint string, titleColor core.Color) {
	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(max(len(title), len(subtitle), len(hint))+4, 6)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColor(box.X+(box.W-len(title))/2, box.Y+1, title, titleColor)
	if subtitle != "" {
		dst.DrawText(box.X+(box.W-len(subtitle))/2, box.Y+2, subtitle)
	}
	dst.DrawText(box.X+(box.W-len(hint))/2, box.Y+4, hint)
}

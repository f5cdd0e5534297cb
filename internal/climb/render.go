package climb

import (
	"fmt"

	"github.com/ddrozdov/tui-climber/internal/core"
)

// Visual characters for rendering
const (
	ClimberChar = 'Y'
	WallChar    = '│'
	GroundChar  = '═'
)

// hudRows is the vertical space reserved for score line, climber and ground.
const hudRows = 4

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.wall == nil {
		dst.DrawTextCentered(dst.Height()/2, "Press any key to start")
		return
	}

	w := dst.Width()
	h := dst.Height()
	cx := w / 2
	groundY := h - 1
	climberY := h - 3
	rowH := g.rowHeight()

	// Ground and the wall's center line
	dst.DrawHLine(0, groundY, w, GroundChar)
	dst.DrawVLineColored(cx, 0, groundY, WallChar, core.ColorGray)

	// Holds, head first. During a transition every hold is drawn higher by
	// the pending scroll distance and slides down into place.
	pending := int(g.scroll.pending() + 0.5)
	for i, hold := range g.wall.Holds() {
		y := climberY - (i+1)*rowH - pending
		if y < 1 {
			continue // Above the visible wall
		}
		g.drawHold(dst, hold, cx, y, i == 0)
	}

	// Climber
	dst.SetCell(cx, climberY, ClimberChar, core.ColorOrange)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawHold renders a single hold on its side of the wall.
// The active hold gets bracket markers so the player knows which hold the
// next input is checked against.
func (g *Game) drawHold(dst *core.Screen, hold Hold, cx, y int, active bool) {
	info := hold.Kind.Info()

	var x int
	if hold.Side == SideLeft {
		x = cx - 2 - info.Width
	} else {
		x = cx + 2
	}

	for i := 0; i < info.Width; i++ {
		dst.SetCell(x+i, y, info.Glyph, info.Color)
	}

	if active {
		dst.SetCell(x-1, y, '[', core.ColorWhite)
		dst.SetCell(x+info.Width, y, ']', core.ColorWhite)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title) + 4
	if len(subtitle)+4 > boxW {
		boxW = len(subtitle) + 4
	}
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

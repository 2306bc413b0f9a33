package game

import (
	"fmt"
	"math"

	"github.com/skydrift/skydrift/internal/core"
)

// Visual characters for rendering
const (
	BodyChar     = '●'
	ObstacleChar = '█'
	CapDownChar  = '▄'
	CapUpChar    = '▀'
	GroundChar   = '═'
	GroundTick   = '╪'
	CloudChar    = '~'
)

// cloudShapes are the cloud cluster positions within one world width,
// as (x offset, row) pairs. The layer offset slides them left.
var cloudShapes = [][2]int{
	{6, 2}, {7, 2}, {8, 2},
	{27, 1}, {28, 1}, {29, 1}, {30, 1},
	{52, 3}, {53, 3},
	{68, 2}, {69, 2}, {70, 2},
}

// Render draws the session into the screen buffer. The world is drawn
// 1:1 in cells and centered when the screen is larger than the world.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	worldW := int(s.cfg.World.Width)
	worldH := int(s.cfg.World.Height)
	ox := core.Max(0, (dst.Width()-worldW)/2)
	oy := core.Max(0, (dst.Height()-worldH)/2)
	groundY := oy + worldH - 1

	s.drawGround(dst, ox, groundY, worldW)
	s.drawClouds(dst, ox, oy, worldW)

	for _, o := range s.pool.Slots() {
		s.drawObstacle(dst, o, ox, oy, worldH)
	}

	s.drawEntity(dst, ox, oy)

	// HUD
	dst.DrawTextColored(ox+2, oy, fmt.Sprintf(" Score: %d ", s.score), core.ColorBrightYellow)

	switch {
	case s.paused:
		s.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case s.phase == PhaseIdle:
		s.drawCenteredMessage(dst, "SKY DRIFT", "Press Enter to start")
	case s.phase == PhaseGameOver:
		s.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.score))
	}
}

// drawGround renders the scrolling ground strip. A tick mark every few
// cells makes the scroll visible; its phase comes from the layer offset.
func (s *Session) drawGround(dst *core.Screen, ox, groundY, worldW int) {
	phase := int(-s.bg.Ground.X) % 6
	if phase < 0 {
		phase += 6
	}
	for x := 0; x < worldW; x++ {
		ch := GroundChar
		if (x+phase)%6 == 0 {
			ch = GroundTick
		}
		dst.SetCell(ox+x, groundY, ch, core.ColorGray)
	}
}

// drawClouds renders the cloud layer twice, one world width apart, so
// the wraparound is seamless.
func (s *Session) drawClouds(dst *core.Screen, ox, oy, worldW int) {
	offset := int(math.Round(s.bg.Clouds.X))
	for _, shape := range cloudShapes {
		for _, base := range []int{offset, offset + worldW} {
			x := shape[0] + base
			if x >= 0 && x < worldW {
				dst.SetCell(ox+x, oy+shape[1], CloudChar, core.ColorCyan)
			}
		}
	}
}

// drawObstacle renders a single barrier column with an end cap facing
// the gap.
func (s *Session) drawObstacle(dst *core.Screen, o Obstacle, ox, oy, worldH int) {
	x0 := int(math.Round(o.X))
	w := int(s.pool.Width())
	h := int(o.Height)

	if o.Anchor == AnchorTop {
		for dy := 0; dy < h-1; dy++ {
			dst.DrawHLine(ox+x0, oy+dy, w, ObstacleChar, core.ColorGreen)
		}
		dst.DrawHLine(ox+x0, oy+h-1, w, CapDownChar, core.ColorGreen)
		return
	}

	top := worldH - h
	dst.DrawHLine(ox+x0, oy+top, w, CapUpChar, core.ColorGreen)
	for dy := top + 1; dy < worldH; dy++ {
		dst.DrawHLine(ox+x0, oy+dy, w, ObstacleChar, core.ColorGreen)
	}
}

// drawEntity renders the actor with a heading glyph derived from its
// cosmetic angle.
func (s *Session) drawEntity(dst *core.Screen, ox, oy int) {
	x := ox + int(math.Round(s.entity.X))
	y := oy + int(math.Round(s.entity.Y))

	head := '►'
	switch {
	case !s.entity.Alive && s.entity.Angle >= 60:
		head = '▼'
	case s.entity.Angle <= -10:
		head = '▲'
	case s.entity.Angle >= 45:
		head = '▼'
	}

	color := core.ColorBrightWhite
	if !s.entity.Alive {
		color = core.ColorRed
	}
	dst.SetCell(x-1, y, BodyChar, color)
	dst.SetCell(x, y, head, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (s *Session) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

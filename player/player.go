package player

import (
	"strings"

	"focus/utils"
)

// Color is a piece token. Every player owns exactly one color.
type Color byte

const (
	NoColor Color = 0
	Green   Color = 'G'
	Red     Color = 'R'
	Blue    Color = 'B'
	Yellow  Color = 'Y'
)

// Palette lists the colors a player may choose, in table order.
var Palette = []Color{Green, Red, Blue, Yellow}

func (c Color) String() string {
	if c == NoColor {
		return ""
	}
	return string(rune(c))
}

// ParseColor accepts a single palette letter in either case.
func ParseColor(s string) (Color, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 {
		return NoColor, false
	}
	c := Color(s[0])
	if !utils.Contains(Palette, c) {
		return NoColor, false
	}
	return c, true
}

// Player holds the per-seat counters of a match.
type Player struct {
	name     string
	color    Color
	active   bool // false once dominated
	reserve  int  // pieces available for a reserved move
	captured int  // opponent pieces taken
}

func (p *Player) Name() string  { return p.name }
func (p *Player) Color() Color  { return p.color }
func (p *Player) Active() bool  { return p.active }
func (p *Player) Reserve() int  { return p.reserve }
func (p *Player) Captured() int { return p.captured }

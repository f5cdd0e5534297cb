// Package climb implements the wall climbing reaction game.
// The player matches Left/Right inputs to the side of the next hold before
// the per-move countdown expires. Pure logic, no rendering dependencies.
package climb

import (
	"math/rand"

	"github.com/ddrozdov/tui-climber/internal/core"
)

// Side is the wall side a hold sits on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Kind is the visual type of a hold. Each kind maps to a fixed presentation
// descriptor; the mapping is static configuration, only the choice of kind is
// randomized.
type Kind int

const (
	KindJug Kind = iota
	KindCrimp
	KindSloper
	KindPinch

	kindCount
)

// String returns the climbing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindJug:
		return "jug"
	case KindCrimp:
		return "crimp"
	case KindSloper:
		return "sloper"
	case KindPinch:
		return "pinch"
	default:
		return "unknown"
	}
}

// KindInfo describes how a hold kind is drawn.
type KindInfo struct {
	Glyph rune       // Cell rune, repeated Width times
	Width int        // Horizontal size in cells
	Color core.Color // Foreground color (theme maps it to a concrete terminal color)
}

var kindInfos = [kindCount]KindInfo{
	KindJug:    {Glyph: '◉', Width: 2, Color: core.ColorGreen},
	KindCrimp:  {Glyph: '▪', Width: 1, Color: core.ColorYellow},
	KindSloper: {Glyph: '◠', Width: 3, Color: core.ColorCyan},
	KindPinch:  {Glyph: '◆', Width: 2, Color: core.ColorMagenta},
}

// Info returns the presentation descriptor for the kind.
func (k Kind) Info() KindInfo {
	if k < 0 || k >= kindCount {
		return KindInfo{Glyph: '?', Width: 1, Color: core.ColorDefault}
	}
	return kindInfos[k]
}

// Hold is a single climbing target. Immutable once created; discarded when
// consumed by a correct move.
type Hold struct {
	Side Side
	Kind Kind
}

// randomHold draws a hold with side chosen 50/50 and kind chosen uniformly
// from the kind set, both from the game's seeded RNG.
func randomHold(rng *rand.Rand) Hold {
	side := SideLeft
	if rng.Intn(2) == 1 {
		side = SideRight
	}
	return Hold{
		Side: side,
		Kind: Kind(rng.Intn(int(kindCount))),
	}
}

package overlay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// ErrInvalidPlacement is returned by ParsePlacement for unknown names.
var ErrInvalidPlacement = errors.New("invalid placement")

// Placement selects where an anchored surface sits relative to its anchor.
type Placement string

const (
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementLeft        Placement = "left"
	PlacementRight       Placement = "right"
)

// Placements lists every supported placement.
var Placements = []Placement{
	PlacementBottomStart,
	PlacementBottomEnd,
	PlacementTopStart,
	PlacementTopEnd,
	PlacementLeft,
	PlacementRight,
}

// Valid reports whether p is a supported placement.
func (p Placement) Valid() bool {
	for _, known := range Placements {
		if p == known {
			return true
		}
	}
	return false
}

// ParsePlacement converts a configuration string into a Placement.
func ParsePlacement(s string) (Placement, error) {
	p := Placement(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlacement, s)
	}
	return p, nil
}

// Place computes the unclamped position of a surface of the given size.
// Unknown placements fall back to bottom-start.
func Place(anchor dom.Rect, size dom.Size, p Placement, offset int) dom.Point {
	centeredTop := anchor.Top + (anchor.Height-size.Height)/2

	switch p {
	case PlacementBottomEnd:
		return dom.Point{Top: anchor.Bottom() + offset, Left: anchor.Right() - size.Width}
	case PlacementTopStart:
		return dom.Point{Top: anchor.Top - size.Height - offset, Left: anchor.Left}
	case PlacementTopEnd:
		return dom.Point{Top: anchor.Top - size.Height - offset, Left: anchor.Right() - size.Width}
	case PlacementLeft:
		return dom.Point{Top: centeredTop, Left: anchor.Left - size.Width - offset}
	case PlacementRight:
		return dom.Point{Top: centeredTop, Left: anchor.Right() + offset}
	default:
		return dom.Point{Top: anchor.Bottom() + offset, Left: anchor.Left}
	}
}

// Clamp pushes pos back inside the viewport so the surface keeps padding
// cells of clearance on every side where it fits. The placement is never
// changed; a surface larger than the viewport is pinned to the padding.
func Clamp(pos dom.Point, size dom.Size, viewport dom.Size, padding int) dom.Point {
	return dom.Point{
		Top:  clampAxis(pos.Top, size.Height, viewport.Height, padding),
		Left: clampAxis(pos.Left, size.Width, viewport.Width, padding),
	}
}

func clampAxis(v, extent, viewport, padding int) int {
	return max(padding, min(v, viewport-extent-padding))
}

// Position is Place followed by Clamp.
func Position(anchor dom.Rect, size dom.Size, p Placement, offset int, viewport dom.Size, padding int) dom.Point {
	return Clamp(Place(anchor, size, p, offset), size, viewport, padding)
}

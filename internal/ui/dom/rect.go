package dom

// Point is a position in viewport cells.
type Point struct {
	Top  int
	Left int
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether either dimension is empty.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an element's bounding box in viewport cells.
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Right returns the first column right of the rectangle.
func (r Rect) Right() int { return r.Left + r.Width }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{Top: r.Top, Left: r.Left} }

// IsZero reports whether the rectangle covers no cells.
func (r Rect) IsZero() bool { return r.Size().IsZero() }

// Contains reports whether the cell at column x, row y lies inside r.
func (r Rect) Contains(x, y int) bool {
	if r.IsZero() {
		return false
	}
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// RectAt builds a rectangle from an origin and a size.
func RectAt(p Point, s Size) Rect {
	return Rect{Top: p.Top, Left: p.Left, Width: s.Width, Height: s.Height}
}

// Package roi provides containment tests for the region-of-interest shapes
// used when gating detections: axis-aligned rectangles, ellipses and simple
// polygons.
package roi

// ROI is any region that can answer a point containment query.
type ROI interface {
	Contains(x, y float64) bool
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Containment is half-open: the left and top edges are inside, the right and
// bottom edges are not, so adjacent rectangles tile without overlap.
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Ellipse is an axis-aligned ellipse given by centre and semi-axes.
type Ellipse struct {
	CX, CY float64
	RX, RY float64
}

// Contains reports whether the point lies inside or on the ellipse.
func (e Ellipse) Contains(x, y float64) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx := (x - e.CX) / e.RX
	dy := (y - e.CY) / e.RY
	return dx*dx+dy*dy <= 1
}

// Polygon is a simple polygon given by its vertices in order. The last
// vertex connects back to the first.
type Polygon struct {
	Xs, Ys []float64
}

// Contains reports whether the point lies inside the polygon using the
// even-odd crossing rule. A polygon with fewer than three vertices contains
// nothing.
func (p Polygon) Contains(x, y float64) bool {
	n := len(p.Xs)
	if n < 3 || len(p.Ys) != n {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := p.Xs[i], p.Ys[i]
		xj, yj := p.Xs[j], p.Ys[j]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

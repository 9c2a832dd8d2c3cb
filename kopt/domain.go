package kopt

// Domain is the bounding rectangle of a point set, plus the per-level
// quadrant span used to normalize coordinates into [0, 1] before Morton-key
// encoding. xdim(level)/ydim(level) mirror the original domain.xdim(level):
// the full extent at level 0, halved at each deeper level.
type Domain struct {
	xmin, xmax float64
	ymin, ymax float64
}

// newDomain computes the axis-aligned bounding rectangle of x/y. A
// degenerate extent (all points sharing an x or y coordinate) is widened by
// one unit so that normalization never divides by zero.
//
// Complexity: O(N).
func newDomain(x, y []float64) Domain {
	d := Domain{xmin: x[0], xmax: x[0], ymin: y[0], ymax: y[0]}
	for i := 1; i < len(x); i++ {
		if x[i] < d.xmin {
			d.xmin = x[i]
		}
		if x[i] > d.xmax {
			d.xmax = x[i]
		}
		if y[i] < d.ymin {
			d.ymin = y[i]
		}
		if y[i] > d.ymax {
			d.ymax = y[i]
		}
	}
	if d.xmax == d.xmin {
		d.xmax = d.xmin + 1
	}
	if d.ymax == d.ymin {
		d.ymax = d.ymin + 1
	}
	return d
}

// xdim returns the width of the domain at the given quadtree level (level 0
// is the full width, each deeper level halves it).
//
// Complexity: O(1).
func (d Domain) xdim(level int) float64 {
	return (d.xmax - d.xmin) / float64(int(1)<<uint(level))
}

// ydim returns the height of the domain at the given quadtree level.
//
// Complexity: O(1).
func (d Domain) ydim(level int) float64 {
	return (d.ymax - d.ymin) / float64(int(1)<<uint(level))
}

// normalize maps a raw (x, y) coordinate into [0, 1] x [0, 1] relative to
// the domain's bounding rectangle.
//
// Complexity: O(1).
func (d Domain) normalize(x, y float64) (nx, ny float64) {
	nx = (x - d.xmin) / d.xdim(0)
	ny = (y - d.ymin) / d.ydim(0)
	return nx, ny
}

package kopt

import "testing"

func TestNewDomain_BoundingBox(t *testing.T) {
	x := []float64{1, 5, -2, 3}
	y := []float64{2, -1, 7, 0}
	d := newDomain(x, y)

	if d.xmin != -2 || d.xmax != 5 {
		t.Fatalf("x extent = [%v, %v], want [-2, 5]", d.xmin, d.xmax)
	}
	if d.ymin != -1 || d.ymax != 7 {
		t.Fatalf("y extent = [%v, %v], want [-1, 7]", d.ymin, d.ymax)
	}
}

// TestNewDomain_DegenerateWidened checks that an extent collapsed to a
// single value (all points sharing a coordinate) is widened by one unit so
// normalize never divides by zero.
func TestNewDomain_DegenerateWidened(t *testing.T) {
	x := []float64{3, 3, 3}
	y := []float64{1, 2, 3}
	d := newDomain(x, y)

	if d.xmax-d.xmin != 1 {
		t.Fatalf("degenerate x extent not widened: got %v", d.xmax-d.xmin)
	}
	if d.ymax-d.ymin == 0 {
		t.Fatal("non-degenerate y extent should not be widened")
	}
}

func TestDomain_XdimYdimHalving(t *testing.T) {
	d := Domain{xmin: 0, xmax: 8, ymin: 0, ymax: 4}
	if d.xdim(0) != 8 || d.ydim(0) != 4 {
		t.Fatalf("level 0 dims = (%v, %v), want (8, 4)", d.xdim(0), d.ydim(0))
	}
	if d.xdim(1) != 4 || d.ydim(1) != 2 {
		t.Fatalf("level 1 dims = (%v, %v), want (4, 2)", d.xdim(1), d.ydim(1))
	}
	if d.xdim(3) != 1 {
		t.Fatalf("level 3 xdim = %v, want 1", d.xdim(3))
	}
}

func TestDomain_Normalize(t *testing.T) {
	d := Domain{xmin: 0, xmax: 10, ymin: 0, ymax: 20}

	nx, ny := d.normalize(0, 0)
	if nx != 0 || ny != 0 {
		t.Fatalf("normalize(min) = (%v, %v), want (0, 0)", nx, ny)
	}

	nx, ny = d.normalize(10, 20)
	if nx != 1 || ny != 1 {
		t.Fatalf("normalize(max) = (%v, %v), want (1, 1)", nx, ny)
	}

	nx, ny = d.normalize(5, 10)
	if nx != 0.5 || ny != 0.5 {
		t.Fatalf("normalize(mid) = (%v, %v), want (0.5, 0.5)", nx, ny)
	}
}

package geom

import "testing"

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Segment
		expected bool
	}{
		{
			name:     "crossing diagonals",
			a:        Seg(0, 0, 10, 10),
			b:        Seg(0, 10, 10, 0),
			expected: true,
		},
		{
			name:     "perpendicular cross",
			a:        Seg(-5, 0, 5, 0),
			b:        Seg(0, -5, 0, 5),
			expected: true,
		},
		{
			name:     "disjoint non-parallel",
			a:        Seg(0, 0, 10, 0),
			b:        Seg(20, -5, 20, 5),
			expected: false,
		},
		{
			name:     "shared endpoint (corner)",
			a:        Seg(0, 0, 10, 0),
			b:        Seg(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "shared start point",
			a:        Seg(0, 0, 10, 0),
			b:        Seg(0, 0, 0, 10),
			expected: false,
		},
		{
			name:     "endpoint touches interior (T-junction)",
			a:        Seg(0, 0, 10, 0),
			b:        Seg(5, 0, 5, 10),
			expected: false,
		},
		{
			name:     "parallel horizontal",
			a:        Seg(0, 0, 10, 0),
			b:        Seg(0, 5, 10, 5),
			expected: false,
		},
		{
			name:     "parallel diagonal",
			a:        Seg(0, 0, 10, 10),
			b:        Seg(1, 0, 11, 10),
			expected: false,
		},
		{
			name:     "overlapping collinear",
			a:        Seg(0, 0, 10, 0),
			b:        Seg(5, 0, 15, 0),
			expected: true,
		},
		{
			name:     "contained collinear",
			a:        Seg(0, -20, 0, 20),
			b:        Seg(0, -5, 0, 5),
			expected: true,
		},
		{
			name:     "collinear disjoint",
			a:        Seg(0, 0, 1, 0),
			b:        Seg(5, 0, 6, 0),
			expected: true,
		},
		{
			name:     "collinear within rounding",
			a:        Seg(0, 0, 0.3, 0.3),
			b:        Seg(0.1, 0.1, 0.1+0.2, 0.1+0.2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Intersects(tc.a, tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := Intersects(tc.b, tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestIntersectsSelf(t *testing.T) {
	// Geometrically a segment overlaps itself everywhere
	s := Seg(-50, 0, -50, -60)
	if !Intersects(s, s) {
		t.Error("a segment should intersect itself (coincident)")
	}
}

func TestNearZero(t *testing.T) {
	tests := []struct {
		v        float64
		expected bool
	}{
		{0, true},
		{1e-12, true},
		{-1e-12, true},
		{Epsilon, true},
		{1e-6, false},
		{-0.5, false},
	}

	for _, tc := range tests {
		if got := NearZero(tc.v); got != tc.expected {
			t.Errorf("NearZero(%g) = %v, expected %v", tc.v, got, tc.expected)
		}
	}
}

func TestPointOps(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: 1, Y: -2}

	if got := p.Add(q); got != (Point{X: 4, Y: 2}) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := p.Sub(q); got != (Point{X: 2, Y: 6}) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := p.LenSq(); got != 25 {
		t.Errorf("LenSq() = %v, expected 25", got)
	}
}

func TestSegmentDegenerate(t *testing.T) {
	if !Seg(1, 1, 1, 1).Degenerate() {
		t.Error("zero-length segment should be degenerate")
	}
	if Seg(1, 1, 1, 2).Degenerate() {
		t.Error("unit segment should not be degenerate")
	}
}

package world

import "testing"

func TestNewRectCorners(t *testing.T) {
	r := NewRect(2, 3, 6, 4)
	if r.X1 != 2 || r.Y1 != 3 || r.X2 != 8 || r.Y2 != 7 {
		t.Errorf("NewRect(2,3,6,4) = (%d,%d,%d,%d), want (2,3,8,7)", r.X1, r.Y1, r.X2, r.Y2)
	}
}

func TestCenterTruncates(t *testing.T) {
	tests := []struct {
		rect  Rect
		wantX int
		wantY int
	}{
		{NewRect(0, 0, 4, 4), 2, 2},
		// Odd dimensions: integer division biases toward the lower corner.
		{NewRect(0, 0, 5, 5), 2, 2},
		{NewRect(2, 2, 7, 3), 5, 3},
		{NewRect(10, 20, 1, 1), 10, 20},
	}

	for _, tt := range tests {
		x, y := tt.rect.Center()
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Center of (%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				tt.rect.X1, tt.rect.Y1, tt.rect.X2, tt.rect.Y2, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestIntersects(t *testing.T) {
	base := NewRect(5, 5, 5, 5) // corners (5,5)-(10,10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(7, 7, 5, 5), true},
		{"contained", NewRect(6, 6, 2, 2), true},
		{"identical", NewRect(5, 5, 5, 5), true},
		// Closed-interval test: sharing only an edge or a corner counts
		// as intersecting, so accepted rooms keep a separating wall.
		{"shared right edge", NewRect(10, 5, 5, 5), true},
		{"shared bottom edge", NewRect(5, 10, 5, 5), true},
		{"shared corner", NewRect(10, 10, 5, 5), true},
		{"one apart horizontally", NewRect(11, 5, 5, 5), false},
		{"one apart vertically", NewRect(5, 11, 5, 5), false},
		{"far away", NewRect(30, 30, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// The test is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

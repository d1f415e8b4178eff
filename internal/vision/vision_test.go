package vision

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/darkwarren/internal/fov"
	"github.com/samdwyer/darkwarren/internal/world"
)

// fakeOracle records Compute calls and reports a fixed-radius square
// of visibility around the last origin.
type fakeOracle struct {
	computeCalls int
	originX      int
	originY      int
	radius       int
	computed     bool
}

func (f *fakeOracle) SetProperties(x, y int, transparent, walkable bool) {}

func (f *fakeOracle) Compute(originX, originY, radius int, lightWalls bool, algo fov.Algorithm) {
	f.computeCalls++
	f.originX = originX
	f.originY = originY
	f.radius = radius
	f.computed = true
}

func (f *fakeOracle) IsVisible(x, y int) bool {
	if !f.computed {
		return false
	}
	dx, dy := x-f.originX, y-f.originY
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= f.radius && dy <= f.radius
}

func openDungeon(t *testing.T, width, height int) *world.Dungeon {
	t.Helper()
	d := world.NewDungeon(width, height, rand.New(rand.NewSource(1)))
	// Carve everything except the outer border.
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			d.Tiles[y][x] = world.Floor()
		}
	}
	return d
}

func TestFirstUpdateAlwaysComputes(t *testing.T) {
	d := openDungeon(t, 20, 20)
	oracle := &fakeOracle{}
	tr := NewTracker(d, oracle, 3, true)

	if !tr.Update(5, 5) {
		t.Error("first Update must recompute (sentinel never matches)")
	}
	if oracle.computeCalls != 1 {
		t.Errorf("Compute called %d times, want 1", oracle.computeCalls)
	}
}

func TestUpdateSkipsWhenViewerStill(t *testing.T) {
	d := openDungeon(t, 20, 20)
	oracle := &fakeOracle{}
	tr := NewTracker(d, oracle, 3, true)

	tr.Update(5, 5)
	for i := 0; i < 4; i++ {
		if tr.Update(5, 5) {
			t.Error("Update with unchanged position must not recompute")
		}
	}
	if oracle.computeCalls != 1 {
		t.Errorf("Compute called %d times, want 1", oracle.computeCalls)
	}

	// The first tick where the position changes computes again.
	if !tr.Update(6, 5) {
		t.Error("Update after a move must recompute")
	}
	if oracle.computeCalls != 2 {
		t.Errorf("Compute called %d times, want 2", oracle.computeCalls)
	}
}

func TestExploredIsMonotonic(t *testing.T) {
	d := openDungeon(t, 30, 30)
	oracle := &fakeOracle{}
	tr := NewTracker(d, oracle, 2, true)

	tr.Update(5, 5)
	if !d.GetTile(5, 5).Explored {
		t.Fatal("visible tile should be marked explored")
	}
	if !d.GetTile(7, 7).Explored {
		t.Fatal("tile inside the visible square should be explored")
	}

	// Move far away: the old tiles leave the field of view but stay
	// explored through an arbitrary sequence of further moves.
	moves := [][2]int{{20, 20}, {25, 10}, {10, 25}, {20, 20}}
	for _, mv := range moves {
		tr.Update(mv[0], mv[1])
		if !d.GetTile(5, 5).Explored {
			t.Fatalf("explored flag lost after move to (%d,%d)", mv[0], mv[1])
		}
	}

	if oracle.IsVisible(5, 5) {
		t.Error("old position should no longer be visible")
	}
}

func TestStateAtThreeStates(t *testing.T) {
	d := openDungeon(t, 30, 30)
	oracle := &fakeOracle{}
	tr := NewTracker(d, oracle, 2, true)

	tr.Update(5, 5)
	if got := tr.StateAt(5, 5); got != StateVisible {
		t.Errorf("current position state = %v, want StateVisible", got)
	}
	if got := tr.StateAt(25, 25); got != StateUnknown {
		t.Errorf("never-seen tile state = %v, want StateUnknown", got)
	}

	tr.Update(25, 25)
	if got := tr.StateAt(5, 5); got != StateRemembered {
		t.Errorf("previously seen tile state = %v, want StateRemembered", got)
	}
	if got := tr.StateAt(25, 25); got != StateVisible {
		t.Errorf("new position state = %v, want StateVisible", got)
	}
}

func TestTrackerWithShadowcastOracle(t *testing.T) {
	// End-to-end with the real sweep: walls block sight and the states
	// resolve accordingly.
	d := openDungeon(t, 30, 30)
	// A wall segment east of the start position.
	for y := 5; y <= 15; y++ {
		d.Tiles[y][12] = world.Wall()
	}

	oracle := fov.New(30, 30)
	tr := NewTracker(d, oracle, 8, true)
	tr.Update(10, 10)

	if tr.StateAt(10, 10) != StateVisible {
		t.Error("viewer tile should be visible")
	}
	if tr.StateAt(12, 10) != StateVisible {
		t.Error("wall in line of sight should be lit")
	}
	if tr.StateAt(15, 10) != StateUnknown {
		t.Error("tile behind the wall should be unknown")
	}
	if d.GetTile(15, 10).Explored {
		t.Error("tile behind the wall should not be explored")
	}
}

package fov

import "testing"

// openMap creates a fully-open (all floor) map for sweep tests.
func openMap(width, height int) *Map {
	m := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetProperties(x, y, true, true)
		}
	}
	return m
}

func TestNotVisibleBeforeCompute(t *testing.T) {
	m := openMap(10, 10)

	// The contract: IsVisible is false everywhere until the first sweep.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if m.IsVisible(x, y) {
				t.Fatalf("(%d,%d) visible before any Compute", x, y)
			}
		}
	}
}

func TestOriginAlwaysVisible(t *testing.T) {
	m := openMap(20, 20)
	m.Compute(5, 5, 5, true, AlgoShadowcast)

	if !m.IsVisible(5, 5) {
		t.Error("origin tile must always be visible")
	}
}

func TestNearbyTilesVisible(t *testing.T) {
	// Tiles at cardinal distance 3 on a fully open map must be lit with
	// radius 5: the radius condition is dx²+dy² < radius², 9 < 25.
	m := openMap(20, 20)
	m.Compute(10, 10, 5, true, AlgoShadowcast)

	for _, pos := range [][2]int{{10, 7}, {10, 13}, {7, 10}, {13, 10}} {
		if !m.IsVisible(pos[0], pos[1]) {
			t.Errorf("tile (%d,%d) at distance 3 should be visible", pos[0], pos[1])
		}
	}
}

func TestRadiusLimit(t *testing.T) {
	m := openMap(40, 40)
	m.Compute(20, 20, 5, true, AlgoShadowcast)

	if m.IsVisible(20, 26) {
		t.Error("tile at distance 6 should be beyond radius 5")
	}
	if m.IsVisible(35, 35) {
		t.Error("far corner should not be visible")
	}
}

func TestComputeReplacesPreviousSweep(t *testing.T) {
	m := openMap(30, 30)

	m.Compute(5, 5, 4, true, AlgoShadowcast)
	if !m.IsVisible(5, 5) {
		t.Fatal("first sweep should light its origin")
	}

	m.Compute(25, 25, 4, true, AlgoShadowcast)
	if m.IsVisible(5, 5) {
		t.Error("old origin should be dark after the sweep moved away")
	}
	if !m.IsVisible(25, 25) {
		t.Error("new origin should be visible")
	}
}

func TestWallCastsShadow(t *testing.T) {
	m := openMap(20, 20)
	// A wall directly east of the origin.
	m.SetProperties(12, 10, false, false)
	m.Compute(10, 10, 8, true, AlgoShadowcast)

	if !m.IsVisible(12, 10) {
		t.Error("the wall itself should be lit (lightWalls=true)")
	}
	if m.IsVisible(14, 10) {
		t.Error("tile directly behind the wall should be in shadow")
	}
	if m.IsVisible(16, 10) {
		t.Error("tile further behind the wall should be in shadow")
	}
	// Tiles well off the shadow line stay lit.
	if !m.IsVisible(12, 14) {
		t.Error("tile outside the shadow cone should be visible")
	}
}

func TestLightWallsOff(t *testing.T) {
	m := openMap(20, 20)
	m.SetProperties(12, 10, false, false)
	m.Compute(10, 10, 8, false, AlgoShadowcast)

	if m.IsVisible(12, 10) {
		t.Error("opaque tile should stay dark with lightWalls=false")
	}
	if !m.IsVisible(11, 10) {
		t.Error("open tile in front of the wall should still be lit")
	}
}

func TestOutOfBoundsQueries(t *testing.T) {
	m := openMap(10, 10)
	m.Compute(5, 5, 20, true, AlgoShadowcast)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 5}, {5, 10}} {
		if m.IsVisible(p[0], p[1]) {
			t.Errorf("out-of-bounds (%d,%d) should never be visible", p[0], p[1])
		}
	}

	// Computing from an out-of-bounds origin lights nothing.
	m.Compute(-3, -3, 5, true, AlgoShadowcast)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if m.IsVisible(x, y) {
				t.Fatalf("(%d,%d) lit by an out-of-bounds origin", x, y)
			}
		}
	}
}

// Package fov computes field-of-view visibility using recursive
// shadowcasting. It knows nothing about dungeons or entities; callers
// describe the map as per-cell transparency and walkability and query
// visibility after each sweep.
package fov

// Algorithm selects the visibility sweep to run.
type Algorithm int

const (
	// AlgoShadowcast is recursive shadowcasting over eight octants.
	AlgoShadowcast Algorithm = iota
)

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//   worldX = cx + dx*xx + dy*xy
//   worldY = cy + dx*yx + dy*yy
// where dx sweeps horizontally within the row and dy is the fixed row index.
// These match the standard RogueBasin recursive shadowcasting multipliers.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Map holds the sweep's view of the world plus the result of the most
// recent Compute call. Before any Compute, every cell reads as not
// visible.
type Map struct {
	width, height int
	transparent   [][]bool
	walkable      [][]bool
	visible       [][]bool
}

// New creates an all-opaque map of the given dimensions.
func New(width, height int) *Map {
	m := &Map{
		width:       width,
		height:      height,
		transparent: makeGrid(width, height),
		walkable:    makeGrid(width, height),
		visible:     makeGrid(width, height),
	}
	return m
}

func makeGrid(width, height int) [][]bool {
	g := make([][]bool, height)
	for y := range g {
		g[y] = make([]bool, width)
	}
	return g
}

// SetProperties records whether one cell transmits light and can be
// walked on. Call once per cell after map generation.
func (m *Map) SetProperties(x, y int, transparent, walkable bool) {
	if !m.InBounds(x, y) {
		return
	}
	m.transparent[y][x] = transparent
	m.walkable[y][x] = walkable
}

// InBounds reports whether the coordinates are on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// IsVisible reports whether the cell was lit by the most recent Compute.
func (m *Map) IsVisible(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.visible[y][x]
}

// IsWalkable reports the walkability recorded for the cell.
func (m *Map) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.walkable[y][x]
}

// Compute recalculates visibility from the given origin, replacing the
// previous sweep's result. Cells beyond radius are never lit. When
// lightWalls is false, opaque cells stay dark even when in line of sight.
func (m *Map) Compute(originX, originY, radius int, lightWalls bool, algo Algorithm) {
	// Clear the previous sweep.
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.visible[y][x] = false
		}
	}

	if !m.InBounds(originX, originY) {
		return
	}

	// Origin is always visible.
	m.visible[originY][originX] = true

	// Only shadowcasting is implemented; algo exists so the sweep
	// selection stays part of the call contract.
	for _, t := range octants {
		m.castLight(originX, originY, 1, 1.0, 0.0, radius, lightWalls, t[0], t[1], t[2], t[3])
	}
}

// castLight casts light for one octant using recursive shadowcasting.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep (the row coordinate)
//   - dx sweeps from -j to 0 (the column coordinate within the row)
//   - world position: (cx + dx*xx + dy*xy,  cy + dx*yx + dy*yy)
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func (m *Map) castLight(cx, cy, row int, start, end float64, radius int, lightWalls bool, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			// dy is negative so (dy+0.5) and (dy-0.5) are both negative,
			// making the slopes positive for dx < 0 and decreasing toward 0
			// as dx moves right.
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue // cell is right of the current beam
			}
			if end > lSlope {
				break // cell and everything after it is left of the beam
			}

			inBounds := m.InBounds(wx, wy)
			opaque := !inBounds || !m.transparent[wy][wx]

			if float64(dx*dx+dy*dy) < radiusSq && inBounds {
				if !opaque || lightWalls {
					m.visible[wy][wx] = true
				}
			}

			if blocked {
				if opaque {
					// Still inside a wall run; advance the shadow boundary.
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else {
				if opaque && j < radius {
					// Hit a new wall; cast a child scan beyond it.
					blocked = true
					m.castLight(cx, cy, j+1, start, lSlope, radius, lightWalls, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break // entire row was wall, nothing lit beyond
		}
	}
}

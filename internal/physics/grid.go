package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SpatialGrid is a uniform grid for broad-phase collision lookups on the
// viewport. Items are inserted by position and index; QueryAround visits the
// 3x3 cell neighborhood of a point.
//
// Cell size must be >= the largest box reach tested against the grid so the
// neighborhood covers every candidate. Positions outside the viewport are
// clamped into the edge cells, which keeps them reachable from any point
// within reach of that edge.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize
	width       float64
	height      float64
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a cell.
// The slice is reused between frames (reset to [:0]).
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering a width x height viewport.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	g := &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
	}
	g.Reset(width, height)
	return g
}

// Reset empties the grid and resizes it when the viewport changed.
func (g *SpatialGrid) Reset(width, height float64) {
	if width == g.width && height == g.height && g.cells != nil {
		for i := range g.cells {
			g.cells[i].items = g.cells[i].items[:0]
		}
		return
	}

	cols := int(math.Ceil(width * g.invCellSize))
	rows := int(math.Ceil(height * g.invCellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g.width = width
	g.height = height
	g.cols = cols
	g.rows = rows
	g.cells = make([]gridCell, cols*rows)
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(p r2.Vec, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item in the 3x3 cell neighborhood around p.
// Neighbors past the viewport edges are skipped; collisions do not wrap.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(p r2.Vec, fn func(index int) bool) {
	col, row := g.posToCell(p)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts a position to grid cell coordinates, clamped to the grid.
func (g *SpatialGrid) posToCell(p r2.Vec) (col, row int) {
	col = int(math.Floor(p.X * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(p.Y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}

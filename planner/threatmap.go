package planner

import (
	"math"

	"github.com/lixenwraith/zonesim/geometry"
	"github.com/lixenwraith/zonesim/sim"
)

// baseCellCost is the traversal cost of an unthreatened cell. Keeping it at
// 1 makes the Manhattan heuristic admissible: no edge is ever cheaper.
const baseCellCost = 1.0

// CostGrid is the per-tick threat map: one traversal cost per lattice cell,
// flat-indexed row*cols+col
type CostGrid struct {
	grid  *Grid
	cells []float64
}

// NewCostGrid allocates a cost map with every cell at base cost
func NewCostGrid(grid *Grid) *CostGrid {
	c := &CostGrid{
		grid:  grid,
		cells: make([]float64, grid.Rows*grid.Cols),
	}
	c.Reset()
	return c
}

// Reset returns every cell to the base cost
func (c *CostGrid) Reset() {
	for i := range c.cells {
		c.cells[i] = baseCellCost
	}
}

// At returns the traversal cost of a cell
func (c *CostGrid) At(n Node) float64 {
	return c.cells[c.grid.index(n)]
}

// BuildThreatMap rebuilds the cost map for the current tick: base cost
// everywhere, plus ThreatPenalty for every cell whose center lies inside a
// defender's region of dominance. Overlapping regions stack additively, or
// saturate at a single penalty when cfg.SaturateThreat is set.
func BuildThreatMap(world sim.WorldState, grid *Grid, cfg sim.Config) *CostGrid {
	costs := NewCostGrid(grid)
	k := cfg.SpeedRatio()

	for _, defender := range world.Defenders {
		dominance, ok := geometry.Apollonian(defender.Position, world.Intruder.Position, k)
		if !ok {
			if cfg.HalfPlaneThreat {
				costs.addHalfPlane(defender.Position, world.Intruder.Position, cfg)
			}
			continue
		}
		costs.addCircle(dominance, cfg)
	}
	return costs
}

// addCircle applies the threat penalty to every cell whose center lies
// inside the circle, scanning only the circle's bounding box
func (c *CostGrid) addCircle(circle geometry.Circle, cfg sim.Config) {
	g := c.grid
	center := g.ToGrid(circle.Center)
	reach := int(math.Ceil(circle.Radius/g.CellSize())) + 1

	rowLo := clampIndex(center.Row-reach, g.Rows)
	rowHi := clampIndex(center.Row+reach, g.Rows)
	colLo := clampIndex(center.Col-reach, g.Cols)
	colHi := clampIndex(center.Col+reach, g.Cols)

	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			n := Node{Row: row, Col: col}
			if circle.ContainsPoint(g.ToWorld(n)) {
				c.penalize(n, cfg)
			}
		}
	}
}

// addHalfPlane penalizes the degenerate equal-speed dominance region: every
// cell at least as close to the defender as to the intruder
func (c *CostGrid) addHalfPlane(defender, intruder geometry.Point, cfg sim.Config) {
	g := c.grid
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			n := Node{Row: row, Col: col}
			if geometry.DominatesHalfPlane(g.ToWorld(n), defender, intruder) {
				c.penalize(n, cfg)
			}
		}
	}
}

func (c *CostGrid) penalize(n Node, cfg sim.Config) {
	i := c.grid.index(n)
	if cfg.SaturateThreat {
		if c.cells[i] < baseCellCost+cfg.ThreatPenalty {
			c.cells[i] = baseCellCost + cfg.ThreatPenalty
		}
		return
	}
	c.cells[i] += cfg.ThreatPenalty
}

// Package planner computes the intruder's per-tick motion command. It
// discretizes the world into an axis-aligned lattice, inflates traversal
// costs wherever a defender's region of dominance covers a cell, and runs
// A* toward the protected zone. The cost map is rebuilt from scratch every
// tick since defenders move.
package planner

import (
	"github.com/lixenwraith/zonesim/geometry"
	"github.com/lixenwraith/zonesim/sim"
)

// Node is a lattice cell coordinate
type Node struct {
	Row, Col int
}

// Path is an ordered node sequence from start to goal inclusive
type Path []Node

// Grid maps between world space and the planning lattice. ToGrid and
// ToWorld form a consistent nearest-cell mapping, not an exact inverse.
type Grid struct {
	Rows, Cols int
	Min, Max   geometry.Point

	cellW, cellH float64
}

// NewGrid builds the lattice covering the configured world bounds
func NewGrid(cfg sim.Config) *Grid {
	b := cfg.WorldBounds
	return &Grid{
		Rows:  cfg.GridRows,
		Cols:  cfg.GridCols,
		Min:   b.Min,
		Max:   b.Max,
		cellW: (b.Max.X - b.Min.X) / float64(cfg.GridCols),
		cellH: (b.Max.Y - b.Min.Y) / float64(cfg.GridRows),
	}
}

// ToGrid returns the nearest cell to p. Points outside the bounds clamp to
// the boundary cells; the mapping is total.
func (g *Grid) ToGrid(p geometry.Point) Node {
	col := int((p.X - g.Min.X) / g.cellW)
	row := int((p.Y - g.Min.Y) / g.cellH)
	return Node{
		Row: clampIndex(row, g.Rows),
		Col: clampIndex(col, g.Cols),
	}
}

// ToWorld returns the world-space center of a cell
func (g *Grid) ToWorld(n Node) geometry.Point {
	return geometry.Point{
		X: g.Min.X + (float64(n.Col)+0.5)*g.cellW,
		Y: g.Min.Y + (float64(n.Row)+0.5)*g.cellH,
	}
}

// Contains reports whether the node lies on the lattice
func (g *Grid) Contains(n Node) bool {
	return n.Row >= 0 && n.Row < g.Rows && n.Col >= 0 && n.Col < g.Cols
}

// index returns the flat cell index (row*cols + col)
func (g *Grid) index(n Node) int {
	return n.Row*g.Cols + n.Col
}

// CellSize returns the smaller cell dimension, the conservative radius unit
// for bounding-box scans: dividing by it never undercounts cells on either
// axis
func (g *Grid) CellSize() float64 {
	if g.cellW < g.cellH {
		return g.cellW
	}
	return g.cellH
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

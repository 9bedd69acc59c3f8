package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"

// maxHallwaySegment bounds the length of each straight piece of a hallway
const maxHallwaySegment = 56

type hallwayWalk struct {
	c              *GenerationContext
	x, y           int
	startX, startY int
}

// walk moves *cur one tile at a time toward target, opening tiles as it goes.
// It returns false when the walk met open floor away from its start or ran too long.
func (h *hallwayWalk) walk(cur *int, target int) bool {
	for n := 0; *cur != target; n++ {
		if n >= maxHallwaySegment {
			return false
		}

		t := h.c.tile(h.x, h.y)
		if t.IsOpen() {
			if h.x != h.startX || h.y != h.startY {
				return false
			}
		} else {
			t.Terrain.Type = world.TerrainNormal
		}

		if *cur >= target {
			*cur--
		} else {
			*cur++
		}
	}
	return true
}

// createHallway opens an L or Z shaped path from the start point to the end
// point, turning at turnX (horizontal) or turnY (vertical). The hallway stops
// early when it joins existing open floor.
func (c *GenerationContext) createHallway(startX, startY, endX, endY int, vertical bool, turnX, turnY int) {
	h := &hallwayWalk{c: c, x: startX, y: startY, startX: startX, startY: startY}

	if !vertical {
		if h.walk(&h.x, turnX) && h.walk(&h.y, endY) {
			h.walk(&h.x, endX)
		}
		return
	}

	if h.walk(&h.y, turnY) && h.walk(&h.x, endX) {
		h.walk(&h.y, endY)
	}
}

// drawConnection carves the hallway from cell (x, y) to its neighbour in
// direction d. from is the coordinate where the hallway leaves the cell and to
// the one where it enters the neighbour: x for vertical hallways, y otherwise.
func (c *GenerationContext) drawConnection(g *Grid, x, y int, d world.Cardinal, from, to int) {
	cell := g.Cell(x, y)
	other := g.neighbour(x, y, d)

	switch d {
	case world.CardinalUp:
		c.createHallway(from, cell.StartY, to, other.EndY-1, true, c.gridX[x], c.gridY[y])
	case world.CardinalDown:
		c.createHallway(from, cell.EndY-1, to, other.StartY, true, c.gridX[x], c.gridY[y+1]-1)
	case world.CardinalLeft:
		c.createHallway(cell.StartX, from, other.StartX-1, to, false, c.gridX[x], c.gridY[y])
	case world.CardinalRight:
		c.createHallway(cell.EndX-1, from, other.StartX, to, false, c.gridX[x+1]-1, c.gridY[y])
	}
}

// isVertical reports whether hallways in direction d run up or down
func isVertical(d world.Cardinal) bool {
	return d == world.CardinalUp || d == world.CardinalDown
}

package generator

import (
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

// Columns past which a turning extra hallway may not head right on partial floors
const (
	smallFloorHallwayLimit  = 32
	mediumFloorHallwayLimit = 48
)

// generateExtraHallways digs up to count dead end hallways that wander out of
// random rooms without opening 2x2 areas
func (c *GenerationContext) generateExtraHallways(g *Grid, count int) {
	added := false

	for i := 0; i < count; i++ {
		x := c.rng.RandInt(g.SizeX)
		y := c.rng.RandInt(g.SizeY)

		cell := g.Cell(x, y)
		if !cell.IsRoom || !cell.Connected || cell.Invalid || cell.MazeRoom {
			continue
		}

		if c.digExtraHallway(g, x, y, cell) {
			c.emit(StepMinor, EventGenerateExtraHallway)
			added = true
		}
	}

	if added {
		c.emit(StepMajor, EventGenerateExtraHallways)
	}
}

// digExtraHallway returns false when the hallway was abandoned before digging
func (c *GenerationContext) digExtraHallway(g *Grid, gx, gy int, cell *GridCell) bool {
	x := c.rng.RandRange(cell.StartX, cell.EndX)
	y := c.rng.RandRange(cell.StartY, cell.EndY)
	dir := world.Direction(c.rng.RandInt(4) * 2)

	// Turn away from the grid edges
	for j := 0; j < 3; j++ {
		if dir == world.DirDown && gy >= g.SizeY-1 {
			dir = world.DirRight
		}
		if dir == world.DirRight && gx >= g.SizeX-1 {
			dir = world.DirUp
		}
		if dir == world.DirUp && gy <= 0 {
			dir = world.DirLeft
		}
		if dir == world.DirLeft && gx <= 0 {
			dir = world.DirDown
		}
	}

	room := c.tile(x, y).RoomIndex
	dx, dy := dir.Delta()
	for c.tile(x, y).RoomIndex == room {
		x += dx
		y += dy
	}
	for c.tile(x, y).IsOpen() {
		x += dx
		y += dy
	}

	if c.tile(x, y).Terrain.Type == world.TerrainSecondary {
		return false
	}
	if x-2 < 0 || x+2 >= world.FloorWidth || y-2 < 0 || y+2 >= world.FloorHeight {
		return false
	}
	if c.sideOpen(x, y, dir) {
		return false
	}

	steps := c.rng.RandInt(3) + 3
	for {
		if x <= 1 || y <= 1 || x >= world.FloorWidth-2 || y >= world.FloorHeight-1 {
			break
		}
		t := c.tile(x, y)
		if t.IsOpen() || t.Terrain.ImpassableWall {
			break
		}

		if !c.wouldOpenSquare(x, y) {
			t.Terrain.Type = world.TerrainNormal
		}

		if c.sideOpen(x, y, dir) {
			break
		}

		steps--
		if steps == 0 {
			steps = c.rng.RandInt(3) + 3
			if c.rng.RandInt(100) < 50 {
				dir = dir.Rotate(2)
			} else {
				dir = dir.Rotate(6)
			}

			if dir == world.DirRight {
				if x >= smallFloorHallwayLimit && c.status.FloorSize == dungeon.FloorSizeSmall {
					break
				}
				if x >= mediumFloorHallwayLimit && c.status.FloorSize == dungeon.FloorSizeMedium {
					break
				}
			}
		}

		dx, dy := dir.Delta()
		x += dx
		y += dy
	}

	return true
}

// sideOpen reports whether either tile 90 degrees off dir is open
func (c *GenerationContext) sideOpen(x, y int, dir world.Direction) bool {
	for _, turn := range []int{2, 6} {
		dx, dy := dir.Rotate(turn).Delta()
		if c.tile(x+dx, y+dy).IsOpen() {
			return true
		}
	}
	return false
}

// wouldOpenSquare reports whether opening (x, y) completes a 2x2 open block
func (c *GenerationContext) wouldOpenSquare(x, y int) bool {
	open := func(x, y int) bool { return c.tile(x, y).IsOpen() }

	for _, sx := range []int{1, -1} {
		for _, sy := range []int{1, -1} {
			if open(x+sx, y) && open(x+sx, y+sy) && open(x, y+sy) {
				return true
			}
		}
	}
	return false
}

package generator

import (
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

// gridPositions returns the sizeX+1 column and sizeY+1 row boundaries of an
// evenly spaced grid over the floor
func gridPositions(sizeX, sizeY int) (xs, ys []int) {
	xs = make([]int, 0, sizeX+1)
	ys = make([]int, 0, sizeY+1)

	stepX := world.FloorWidth / sizeX
	for x := 0; x <= sizeX; x++ {
		xs = append(xs, x*stepX)
	}

	stepY := world.FloorHeight / sizeY
	for y := 0; y <= sizeY; y++ {
		ys = append(ys, y*stepY)
	}

	return xs, ys
}

// resetFloor recreates every tile and forgets the current grid
func (c *GenerationContext) resetFloor() {
	c.floor.Reset()

	c.info.StairsSpawnX = Unset
	c.info.StairsSpawnY = Unset
	c.dungeon.NumItems = 0
	c.gridX, c.gridY = nil, nil

	c.emit(StepMajor, EventResetFloor)
}

// initGrid allocates a grid of the given size. Every cell in range starts as a
// room; cells cut off by the floor size class are invalid.
func (c *GenerationContext) initGrid(sizeX, sizeY int) *Grid {
	g := &Grid{SizeX: sizeX, SizeY: sizeY}

	for x := 0; x < sizeX; x++ {
		for y := 0; y < sizeY; y++ {
			cell := g.Cell(x, y)
			switch {
			case c.status.FloorSize == dungeon.FloorSizeSmall && x >= sizeX/2:
				cell.Invalid = true
			case c.status.FloorSize == dungeon.FloorSizeMedium && x >= 3*sizeX/4:
				cell.Invalid = true
			}
			cell.IsRoom = true
		}
	}

	c.emit(StepMajor, EventInitDungeonGrid)
	return g
}

// carveRect opens every tile of [x0, x1) x [y0, y1) and assigns it to room
func (c *GenerationContext) carveRect(x0, y0, x1, y1, room int) {
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			t := c.tile(x, y)
			t.Terrain.Type = world.TerrainNormal
			t.RoomIndex = room
		}
	}
}

// forEachCell visits the in-use cells column by column
func (g *Grid) forEachCell(fn func(x, y int, cell *GridCell)) {
	for x := 0; x < g.SizeX; x++ {
		for y := 0; y < g.SizeY; y++ {
			fn(x, y, &g.cells[x][y])
		}
	}
}

// forEachCellByRow visits the in-use cells row by row
func (g *Grid) forEachCellByRow(fn func(x, y int, cell *GridCell)) {
	for y := 0; y < g.SizeY; y++ {
		for x := 0; x < g.SizeX; x++ {
			fn(x, y, &g.cells[x][y])
		}
	}
}

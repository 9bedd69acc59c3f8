package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"

// selectionTable returns a table with a single true entry moved around by 64
// random swaps among the first n slots. Walking the candidates in order and
// picking the one whose slot is true selects a candidate.
func (c *GenerationContext) selectionTable(n int) []bool {
	table := make([]bool, max(roomBitsLen, n))
	table[0] = true

	for i := 0; i < selectionSwaps; i++ {
		a := c.rng.RandInt(n)
		b := c.rng.RandInt(n)
		table[a], table[b] = table[b], table[a]
	}
	return table
}

// setObstacle turns a tile into secondary terrain when requested and the tile
// belongs to room, or into wall otherwise
func setObstacle(t *world.Tile, useSecondary bool, room int) {
	if useSecondary && t.RoomIndex == room {
		t.Terrain.Type = world.TerrainSecondary
	} else {
		t.Terrain.Type = world.TerrainWall
	}
}

// generateMazeLine grows a wall from (x, y) in strides of two tiles, heading
// for open tiles inside [xmin, xmax) x [ymin, ymax) until none is left
func (c *GenerationContext) generateMazeLine(x, y, xmin, ymin, xmax, ymax int, useSecondary bool, room int) {
	for {
		dir := world.Cardinal(c.rng.RandInt(4))
		setObstacle(c.tile(x, y), useSecondary, room)

		found := false
		for i := 0; i < world.NumCardinals; i++ {
			dx, dy := dir.Delta()
			nx, ny := x+2*dx, y+2*dy
			if nx >= xmin && nx < xmax && ny >= ymin && ny < ymax && c.tile(nx, ny).IsOpen() {
				found = true
				break
			}
			dir = dir.Next()
		}

		if !found {
			return
		}

		dx, dy := dir.Delta()
		setObstacle(c.tile(x+dx, y+dy), useSecondary, room)
		x += 2 * dx
		y += 2 * dy
	}
}

// generateMaze fills a room with a maze of walls (or secondary terrain)
func (c *GenerationContext) generateMaze(cell *GridCell, useSecondary bool) {
	cell.MazeRoom = true
	c.status.HasMaze = true

	room := c.tile(cell.StartX, cell.StartY).RoomIndex
	line := func(x, y int) {
		c.generateMazeLine(x, y, cell.StartX, cell.StartY, cell.EndX, cell.EndY, useSecondary, room)
	}

	// Lines start from the walls around the room: top, right, bottom, left
	for x := cell.StartX + 1; x < cell.EndX-1; x += 2 {
		if !c.tile(x, cell.StartY-1).IsOpen() {
			line(x, cell.StartY-1)
		}
	}
	for y := cell.StartY + 1; y < cell.EndY-1; y += 2 {
		if !c.tile(cell.EndX, y).IsOpen() {
			line(cell.EndX, y)
		}
	}
	for x := cell.StartX + 1; x < cell.EndX-1; x += 2 {
		if !c.tile(x, cell.EndY).IsOpen() {
			line(x, cell.EndY)
		}
	}
	for y := cell.StartY + 1; y < cell.EndY-1; y += 2 {
		if !c.tile(cell.StartX-1, y).IsOpen() {
			line(cell.StartX-1, y)
		}
	}

	for x := cell.StartX + 3; x < cell.EndX-3; x += 2 {
		for y := cell.StartY + 3; y < cell.EndY-3; y += 2 {
			t := c.tile(x, y)
			if !t.IsOpen() {
				continue
			}
			if useSecondary {
				t.Terrain.Type = world.TerrainSecondary
			} else {
				t.Terrain.Type = world.TerrainWall
			}
			line(x, y)
		}
	}
}

// canHoldMaze reports whether a room can be turned into a maze room
func (cell *GridCell) canHoldMaze() bool {
	return cell.isPlainRoom() && !cell.KecleonShop && !cell.MonsterHouse &&
		cell.Width()%2 != 0 && cell.Height()%2 != 0
}

// generateMazeRoom may turn one odd sized room into a maze room
func (c *GenerationContext) generateMazeRoom(g *Grid, chance int) {
	if chance <= 0 {
		return
	}
	if c.rng.RandInt(100) >= chance {
		return
	}
	if !c.settings.AllowWallMazeRoomGeneration {
		return
	}

	candidates := 0
	g.forEachCellByRow(func(x, y int, cell *GridCell) {
		if cell.canHoldMaze() {
			candidates++
		}
	})
	if candidates == 0 {
		return
	}

	table := c.selectionTable(candidates)
	counter := 0
	g.forEachCellByRow(func(x, y int, cell *GridCell) {
		if !cell.canHoldMaze() {
			return
		}
		if table[counter] {
			c.generateMaze(cell, false)
			c.emit(StepMajor, EventGenerateMazeRoom)
		}
		counter++
	})
}

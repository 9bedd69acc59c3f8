package generator

import (
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

const (
	maxRooms        = 32
	roomBitsLen     = 256
	selectionSwaps  = 64
	roomRetryLimit  = 200
	roomRetryChance = 60
)

// assignRooms decides which cells hold rooms; the rest become hallway anchors.
// A negative request asks for exactly -requested rooms, otherwise up to two
// extra rooms are added.
func (c *GenerationContext) assignRooms(g *Grid, requested int) {
	extra := c.rng.RandInt(3)
	if requested < 0 {
		requested = -requested
	} else {
		requested += extra
	}

	bits := make([]bool, max(roomBitsLen, requested))
	for i := 0; i < requested; i++ {
		bits[i] = true
	}

	slots := g.SizeX * g.SizeY
	for i := 0; i < selectionSwaps; i++ {
		a := c.rng.RandInt(slots)
		b := c.rng.RandInt(slots)
		bits[a], bits[b] = bits[b], bits[a]
	}

	c.status.NumRooms = 0
	midX := (g.SizeX - 1) / 2
	counter := 0

	g.forEachCell(func(x, y int, cell *GridCell) {
		if cell.Invalid {
			return
		}

		switch {
		case c.status.NumRooms >= maxRooms:
			cell.IsRoom = false
		case bits[counter]:
			cell.IsRoom = true
			c.status.NumRooms++
			// No room in the middle of the second row on odd width grids
			if g.SizeX%2 != 0 && y == 1 && x == midX {
				cell.IsRoom = false
			}
		default:
			cell.IsRoom = false
		}
		counter++
	})

	if c.status.NumRooms >= 2 {
		return
	}

	for attempt := 0; attempt < roomRetryLimit; attempt++ {
		if c.forceOneRoom(g) {
			break
		}
	}

	c.status.SecondSpawn = false
}

// forceOneRoom turns the first valid cell that passes a roll into a room
func (c *GenerationContext) forceOneRoom(g *Grid) bool {
	for x := 0; x < g.SizeX; x++ {
		for y := 0; y < g.SizeY; y++ {
			cell := g.Cell(x, y)
			if cell.Invalid {
				continue
			}
			if c.rng.RandInt(100) < roomRetryChance {
				cell.IsRoom = true
				return true
			}
		}
	}
	return false
}

// createRoomsAndAnchors carves a rectangle for every room cell and a single
// anchor tile for every other valid cell
func (c *GenerationContext) createRoomsAndAnchors(g *Grid, xs, ys []int, flags dungeon.RoomFlags) {
	room := 0

	g.forEachCellByRow(func(x, y int, cell *GridCell) {
		if cell.Invalid {
			return
		}

		rangeX := xs[x+1] - xs[x] - 4
		rangeY := ys[y+1] - ys[y] - 3

		if !cell.IsRoom {
			c.createAnchor(g, x, y, xs[x], ys[y], rangeX, rangeY)
			return
		}

		c.createRoom(cell, xs[x], ys[y], rangeX, rangeY, room, flags)
		room++
	})

	c.emit(StepMajor, EventCreateRoomsAndAnchors)
}

func (c *GenerationContext) createAnchor(g *Grid, x, y, baseX, baseY, rangeX, rangeY int) {
	loX, hiX := 2, 4
	if x == 0 {
		loX = 1
	}
	if x == g.SizeX-1 {
		hiX = 2
	}

	loY, hiY := 2, 4
	if y == 0 {
		loY = 1
	}
	if y == g.SizeY-1 {
		hiY = 2
	}

	px := c.rng.RandRange(baseX+2+loX, baseX+2+rangeX-hiX)
	py := c.rng.RandRange(baseY+2+loY, baseY+2+rangeY-hiY)

	cell := g.Cell(x, y)
	cell.StartX, cell.StartY = px, py
	cell.EndX, cell.EndY = px+1, py+1

	t := c.tile(px, py)
	t.Terrain.Type = world.TerrainNormal
	t.RoomIndex = world.RoomAnchor

	c.emit(StepMinor, EventCreateAnchor)
}

func (c *GenerationContext) createRoom(cell *GridCell, baseX, baseY, rangeX, rangeY, room int, flags dungeon.RoomFlags) {
	sizeX := c.rng.RandRange(5, rangeX)
	sizeY := c.rng.RandRange(4, rangeY)

	// Prefer odd sizes when the cell has room for them
	if sizeX|1 < rangeX {
		sizeX |= 1
	}
	if sizeY|1 < rangeY {
		sizeY |= 1
	}

	// Keep the aspect ratio within 2:3 and 3:2
	if sizeX > sizeY*3/2 {
		sizeX = sizeY * 3 / 2
	}
	if sizeY > sizeX*3/2 {
		sizeY = sizeX * 3 / 2
	}

	startX := c.rng.RandInt(rangeX-sizeX) + baseX + 2
	startY := c.rng.RandInt(rangeY-sizeY) + baseY + 2

	cell.StartX, cell.StartY = startX, startY
	cell.EndX, cell.EndY = startX+sizeX, startY+sizeY
	c.carveRect(cell.StartX, cell.StartY, cell.EndX, cell.EndY, room)

	secondary := c.rng.RandInt(100) < c.constants.SecondaryStructureFlagChance
	if c.status.SecondaryStructuresBudget == 0 {
		secondary = false
	}

	imperfect := flags.RoomImperfections
	if secondary && imperfect {
		if c.rng.RandInt(100) < 50 {
			imperfect = false
		} else {
			secondary = false
		}
	}

	cell.FlagImperfect = imperfect
	cell.FlagSecondaryStructure = secondary

	c.emit(StepMinor, EventCreateRoom)
}

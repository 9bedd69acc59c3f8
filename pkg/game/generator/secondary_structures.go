package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"

// SecondaryStructure is the decoration rolled for a room flagged to hold one
type SecondaryStructure int

// Secondary structures
const (
	StructureNone SecondaryStructure = iota
	StructureMazePlusDot
	StructureCheckerboard
	StructurePool
	StructureIsland
	StructureDivider

	numStructures = 6
)

const checkerboardDraws = 64

func (cell *GridCell) canHoldSecondaryStructure() bool {
	return !cell.Invalid && !cell.MonsterHouse && !cell.Merged && cell.IsRoom &&
		cell.FlagSecondaryStructure && !cell.FlagImperfect
}

// markStructureRoom flags every tile of the cell as part of a structure room
func (c *GenerationContext) markStructureRoom(cell *GridCell) {
	for x := cell.StartX; x < cell.EndX; x++ {
		for y := cell.StartY; y < cell.EndY; y++ {
			c.tile(x, y).Spawn.StructureRoom = true
		}
	}
}

// isNextToHallway reports whether (x, y) or a cardinal neighbour is a hallway tile
func (c *GenerationContext) isNextToHallway(x, y int) bool {
	points := [5][2]int{{x, y}, {x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}}
	for _, p := range points {
		t := c.floor.TileAt(p[0], p[1])
		if t != nil && t.IsHallway() {
			return true
		}
	}
	return false
}

func (c *GenerationContext) setSecondary(x, y int) {
	c.tile(x, y).Terrain.Type = world.TerrainSecondary
}

// takeStructureBudget spends one unit of the structure budget if any is left
func (c *GenerationContext) takeStructureBudget() bool {
	if c.status.SecondaryStructuresBudget <= 0 {
		return false
	}
	c.status.SecondaryStructuresBudget--
	return true
}

// generateSecondaryStructures rolls a structure for every flagged room while
// the budget lasts
func (c *GenerationContext) generateSecondaryStructures(g *Grid) {
	generated := false

	g.forEachCellByRow(func(x, y int, cell *GridCell) {
		if !cell.canHoldSecondaryStructure() {
			return
		}

		kind := SecondaryStructure(c.rng.RandInt(numStructures))
		if c.buildStructure(cell, kind) {
			cell.HasSecondaryStructure = true
			c.emit(StepMinor, EventGenerateSecondaryStructure)
			generated = true
		}
	})

	if generated {
		c.emit(StepMajor, EventGenerateSecondaryStructures)
	}
}

// buildStructure returns true when a structure was placed in the cell
func (c *GenerationContext) buildStructure(cell *GridCell, kind SecondaryStructure) bool {
	w, h := cell.Width(), cell.Height()
	midX := floorDiv(cell.EndX+cell.StartX, 2)
	midY := floorDiv(cell.EndY+cell.StartY, 2)

	switch kind {
	case StructureMazePlusDot:
		if !c.takeStructureBudget() {
			return false
		}
		switch {
		case w%2 != 0 && h%2 != 0:
			c.markStructureRoom(cell)
			c.generateMaze(cell, true)
		case w >= 5 && h >= 5:
			c.setSecondary(midX, midY)
			c.setSecondary(midX, midY-1)
			c.setSecondary(midX-1, midY)
			c.setSecondary(midX+1, midY)
			c.setSecondary(midX, midY+1)
		default:
			c.setSecondary(midX, midY)
		}
		return true

	case StructureCheckerboard:
		if c.status.SecondaryStructuresBudget <= 0 || w%2 == 0 || h%2 == 0 {
			return false
		}
		c.takeStructureBudget()
		c.markStructureRoom(cell)

		for i := 0; i < checkerboardDraws; i++ {
			rx := c.rng.RandInt(w)
			ry := c.rng.RandInt(h)
			if (rx+ry)%2 != 0 {
				c.setSecondary(cell.StartX+rx, cell.StartY+ry)
			}
		}
		return true

	case StructurePool:
		if w < 5 || h < 5 {
			return false
		}
		x1 := c.rng.RandRange(cell.StartX+2, cell.EndX-3)
		y1 := c.rng.RandRange(cell.StartY+2, cell.EndY-3)
		x2 := c.rng.RandRange(cell.StartX+2, cell.EndX-3)
		y2 := c.rng.RandRange(cell.StartY+2, cell.EndY-3)

		if !c.takeStructureBudget() {
			return false
		}
		c.markStructureRoom(cell)

		if x1 > x2 {
			x1, x2 = x2, x1
		}
		// Rows are clamped rather than swapped, so a pool can collapse to one row
		if y1 > y2 {
			y1 = y2
		}

		for px := x1; px <= x2; px++ {
			for py := y1; py <= y2; py++ {
				c.setSecondary(px, py)
			}
		}
		return true

	case StructureIsland:
		if w < 6 || h < 6 || !c.takeStructureBudget() {
			return false
		}
		c.markStructureRoom(cell)

		for px := midX - 2; px <= midX+1; px++ {
			for py := midY - 2; py <= midY+1; py++ {
				if px != midX-2 && px != midX+1 && py != midY-2 && py != midY+1 {
					continue
				}
				t := c.tile(px, py)
				t.Terrain.Type = world.TerrainSecondary
				t.Terrain.CornerCuttable = true
			}
		}

		warp := c.tile(midX-1, midY-1)
		warp.Spawn.Trap = true
		warp.Spawn.SpecialTile = true
		warp.Spawn.WarpTile = true

		for _, p := range [3][2]int{{midX, midY - 1}, {midX - 1, midY}, {midX, midY}} {
			t := c.tile(p[0], p[1])
			t.Spawn.Item = true
			t.Spawn.SpecialTile = true
		}
		return true

	case StructureDivider:
		if !c.takeStructureBudget() {
			return false
		}
		c.markStructureRoom(cell)

		if c.rng.RandInt(2) == 0 {
			for i := cell.StartX; i < cell.EndX; i++ {
				if c.isNextToHallway(i, midY) {
					return false
				}
			}
			for i := cell.StartX; i < cell.EndX; i++ {
				c.setSecondary(i, midY)
			}
		} else {
			for i := cell.StartY; i < cell.EndY; i++ {
				if c.isNextToHallway(midX, i) {
					return false
				}
			}
			for i := cell.StartY; i < cell.EndY; i++ {
				c.setSecondary(midX, i)
			}
		}

		for px := cell.StartX; px < cell.EndX; px++ {
			for py := cell.StartY; py < cell.EndY; py++ {
				c.tile(px, py).Spawn.Divider = true
			}
		}
		return true
	}

	return false
}

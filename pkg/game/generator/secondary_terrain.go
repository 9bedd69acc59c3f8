package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"

// Number of rivers, picked uniformly from this table
var riverCounts = [8]int{1, 1, 1, 2, 2, 2, 3, 3}

const (
	lakeDraws            = 64
	lakeRadius           = 3
	lakeMargin           = 2
	lakeSmoothNeighbours = 4

	standaloneLakeSize     = 10
	standaloneLakeDraws    = 80
	standaloneLakeAttempts = 200
)

// setSecondaryTerrainOnWall floods a breakable wall tile
func setSecondaryTerrainOnWall(t *world.Tile) {
	if t.Terrain.ImpassableWall || t.Terrain.Type != world.TerrainWall {
		return
	}
	t.Terrain.Type = world.TerrainSecondary
}

func (c *GenerationContext) isSecondary(x, y int) bool {
	return c.tile(x, y).Terrain.Type == world.TerrainSecondary
}

// generateSecondaryTerrain fills walls with rivers ending in lakes, then
// scatters standalone lakes
func (c *GenerationContext) generateSecondaryTerrain() {
	if !c.props.RoomFlags.SecondaryTerrainGeneration {
		return
	}

	rivers := riverCounts[c.rng.RandInt(len(riverCounts))]
	for i := 0; i < rivers; i++ {
		c.generateRiver()
	}

	for i := 0; i < c.props.SecondaryTerrainDensity; i++ {
		c.generateStandaloneLake()
	}

	c.floor.ForEachTile(func(x, y int, t *world.Tile) {
		if t.Terrain.Type != world.TerrainSecondary {
			return
		}
		if t.Terrain.InKecleonShop || t.Terrain.InMonsterHouse || t.Terrain.Unbreakable || t.Spawn.Stairs {
			t.Terrain.Type = world.TerrainNormal
			return
		}
		if x <= 1 || x >= world.FloorWidth-2 || y <= 1 || y >= world.FloorHeight-2 {
			t.Terrain.Type = world.TerrainWall
		}
	})

	c.emit(StepMajor, EventGenerateSecondaryTerrain)
}

// generateRiver flows from the top or bottom edge across the floor, turning
// left or right now and then, and drops a lake after a number of steps. It
// stops when it leaves the floor or runs into existing secondary terrain.
func (c *GenerationContext) generateRiver() {
	y, dirY := 0, 1
	if c.rng.RandInt(100) < 50 {
		y, dirY = world.FloorHeight-1, -1
	}
	flowY := dirY

	stepsUntilLake := c.rng.RandInt(50) + 10
	x := c.rng.RandRange(2, world.FloorWidth-2)
	dirX := 0

	outOfRange := func() bool { return y < 0 || y >= world.FloorHeight }

	for done := false; !done; {
		generated := false

		n := c.rng.RandInt(6) + 2
		for v := 0; v < n; v++ {
			if x >= 0 && x < world.FloorWidth {
				if t := c.floor.TileAt(x, y); t != nil {
					if t.Terrain.Type == world.TerrainSecondary {
						done = true
						if generated {
							c.emit(StepMinor, EventSecondaryTerrainRiver)
						}
						break
					}
					setSecondaryTerrainOnWall(t)
					generated = true
				}
			}

			x += dirX
			y += dirY

			if outOfRange() {
				c.emit(StepMinor, EventSecondaryTerrainRiver)
				break
			}

			stepsUntilLake--
			if stepsUntilLake != 0 {
				continue
			}

			c.emit(StepMinor, EventSecondaryTerrainRiver)
			c.generateRiverLake(x, y)
			c.emit(StepMinor, EventSecondaryTerrainRiverLake)
		}

		if !done {
			// Alternate between flowing sideways and along the river's direction
			if dirX != 0 {
				dirX, dirY = 0, flowY
			} else {
				dirX = 1
				if c.rng.RandInt(100) < 50 {
					dirX = -1
				}
				dirY = 0
			}
		}

		if outOfRange() {
			done = true
		}
	}
}

func inLakeBounds(x, y int) bool {
	return x >= lakeMargin && x < world.FloorWidth-lakeMargin && y >= lakeMargin && y < world.FloorHeight-lakeMargin
}

// generateRiverLake grows a lake around (x, y) from the secondary terrain
// already there and smooths its outline
func (c *GenerationContext) generateRiverLake(x, y int) {
	for j := 0; j < lakeDraws; j++ {
		tx := x + c.rng.RandInt(2*lakeRadius+1) - lakeRadius
		ty := y + c.rng.RandInt(2*lakeRadius+1) - lakeRadius
		if !inLakeBounds(tx, ty) {
			continue
		}

		if c.secondaryNear(tx, ty) {
			setSecondaryTerrainOnWall(c.tile(tx, ty))
		}
	}

	for ox := -lakeRadius; ox <= lakeRadius; ox++ {
		for oy := -lakeRadius; oy <= lakeRadius; oy++ {
			tx, ty := x+ox, y+oy
			if !inLakeBounds(tx, ty) {
				continue
			}
			if c.secondaryNeighbours(tx, ty) >= lakeSmoothNeighbours {
				setSecondaryTerrainOnWall(c.tile(tx, ty))
			}
		}
	}
}

// secondaryNear reports whether the 3x3 block around (x, y) holds secondary terrain
func (c *GenerationContext) secondaryNear(x, y int) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if c.isSecondary(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// secondaryNeighbours counts the secondary tiles among the eight neighbours of (x, y)
func (c *GenerationContext) secondaryNeighbours(x, y int) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if (dx != 0 || dy != 0) && c.isSecondary(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// generateStandaloneLake erodes a 10x10 block from its border inwards and
// floods whatever is left around a random interior tile
func (c *GenerationContext) generateStandaloneLake() {
	var rx, ry int
	found := false
	for attempt := 0; attempt < standaloneLakeAttempts; attempt++ {
		rx = c.rng.RandInt(world.FloorWidth)
		ry = c.rng.RandInt(world.FloorHeight)
		if c.floor.IsPlayablePosition(rx, ry) {
			found = true
			break
		}
	}
	if !found {
		return
	}

	var table [standaloneLakeSize][standaloneLakeSize]bool
	for x := 0; x < standaloneLakeSize; x++ {
		for y := 0; y < standaloneLakeSize; y++ {
			table[x][y] = x == 0 || y == 0 || x == standaloneLakeSize-1 || y == standaloneLakeSize-1
		}
	}

	for v := 0; v < standaloneLakeDraws; v++ {
		x := c.rng.RandInt(standaloneLakeSize-2) + 1
		y := c.rng.RandInt(standaloneLakeSize-2) + 1
		if table[x-1][y] || table[x+1][y] || table[x][y-1] || table[x][y+1] {
			table[x][y] = true
		}
	}

	half := standaloneLakeSize / 2
	for x := 0; x < standaloneLakeSize; x++ {
		for y := 0; y < standaloneLakeSize; y++ {
			if table[x][y] {
				continue
			}
			if t := c.floor.TileAt(rx+x-half, ry+y-half); t != nil {
				setSecondaryTerrainOnWall(t)
			}
		}
	}

	c.emit(StepMinor, EventSecondaryTerrainStandaloneLake)
}

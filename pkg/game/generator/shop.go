package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"

const (
	shopShuffleSwaps = 200
	shopMinWidth     = 5
	shopMinHeight    = 4

	// Starting values of the shop bounding box on the dungeon snapshot
	defaultMaxPosition = 9999
)

// canHoldShop reports whether a room can be turned into a kecleon shop
func (cell *GridCell) canHoldShop() bool {
	if cell.Invalid || cell.HasBeenMerged || cell.Merged || !cell.Connected || !cell.IsRoom ||
		cell.HasSecondaryStructure || cell.MazeRoom || cell.FlagSecondaryStructure {
		return false
	}
	return abs(cell.Width()) >= shopMinWidth && abs(cell.Height()) >= shopMinHeight
}

// shuffledGridIndexes returns 0..MaxGridSize-1 scrambled by random swaps
func (c *GenerationContext) shuffledGridIndexes() []int {
	list := make([]int, MaxGridSize)
	for i := range list {
		list[i] = i
	}
	for i := 0; i < shopShuffleSwaps; i++ {
		a := c.rng.RandInt(MaxGridSize)
		b := c.rng.RandInt(MaxGridSize)
		list[a], list[b] = list[b], list[a]
	}
	return list
}

// generateKecleonShop may turn the first suitable room, in a random order, into a shop
func (c *GenerationContext) generateKecleonShop(g *Grid, chance int) {
	if c.status.HasMonsterHouse || c.floorType() == dungeon.FloorTypeRescue || chance <= 0 {
		return
	}
	if c.rng.RandInt(100) >= chance {
		return
	}

	xs := c.shuffledGridIndexes()
	ys := c.shuffledGridIndexes()

	for _, x := range xs {
		if x >= g.SizeX {
			continue
		}
		for _, y := range ys {
			if y >= g.SizeY {
				continue
			}

			cell := g.Cell(x, y)
			if !cell.canHoldShop() {
				continue
			}

			c.placeKecleonShop(cell)
			c.emit(StepMajor, EventGenerateKecleonShop)
			return
		}
	}
}

func (c *GenerationContext) placeKecleonShop(cell *GridCell) {
	c.status.HasKecleonShop = true
	cell.KecleonShop = true

	s := &c.status
	s.KecleonShopMinX, s.KecleonShopMinY = cell.StartX, cell.StartY
	s.KecleonShopMaxX, s.KecleonShopMaxY = cell.EndX, cell.EndY
	if cell.Height() < 3 {
		s.KecleonShopMaxY = cell.EndY + 1
	}

	d := &c.dungeon
	d.KecleonShopMinX, d.KecleonShopMinY = defaultMaxPosition, defaultMaxPosition
	d.KecleonShopMaxX, d.KecleonShopMaxY = -defaultMaxPosition, -defaultMaxPosition

	// The shop floor leaves a one tile margin inside the room
	for x := s.KecleonShopMinX + 1; x < s.KecleonShopMaxX-1; x++ {
		for y := s.KecleonShopMinY + 1; y < s.KecleonShopMaxY-1; y++ {
			t := c.tile(x, y)
			t.Terrain.InKecleonShop = true
			t.Spawn.Monster = false
			t.Spawn.Stairs = false

			d.KecleonShopMinX = min(d.KecleonShopMinX, x)
			d.KecleonShopMinY = min(d.KecleonShopMinY, y)
			d.KecleonShopMaxX = max(d.KecleonShopMaxX, x)
			d.KecleonShopMaxY = max(d.KecleonShopMaxY, y)
		}
	}

	for x := cell.StartX; x < cell.EndX; x++ {
		for y := cell.StartY; y < cell.EndY; y++ {
			c.tile(x, y).Spawn.SpecialTile = true
		}
	}

	s.KecleonShopMiddleX = floorDiv(s.KecleonShopMinX+s.KecleonShopMaxX, 2)
	s.KecleonShopMiddleY = floorDiv(s.KecleonShopMinY+s.KecleonShopMaxY, 2)
}

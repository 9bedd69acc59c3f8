package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"

// guaranteedChance is passed by layouts that always build a monster house
const guaranteedChance = 999

// canHoldMonsterHouse reports whether a room can be turned into a monster house
func (cell *GridCell) canHoldMonsterHouse() bool {
	return cell.isPlainRoom() && !cell.KecleonShop && !cell.MazeRoom
}

// generateMonsterHouse may turn one room into a monster house
func (c *GenerationContext) generateMonsterHouse(g *Grid, chance int) {
	if chance <= 0 {
		return
	}
	if c.rng.RandInt(100) >= chance {
		return
	}
	if c.status.HasKecleonShop {
		return
	}

	// A mission target on the floor keeps monster houses away, unless the
	// mission is an outlaw hiding in one
	if (!c.dungeon.IsOutlawMonsterHouseFloor() && c.dungeon.HasMissionMonster()) || c.floorType() != dungeon.FloorTypeNormal {
		return
	}

	candidates := 0
	g.forEachCell(func(x, y int, cell *GridCell) {
		if cell.canHoldMonsterHouse() {
			candidates++
		}
	})
	if candidates == 0 {
		return
	}

	table := c.selectionTable(candidates)
	counter := 0
	done := false
	g.forEachCell(func(x, y int, cell *GridCell) {
		if done || !cell.canHoldMonsterHouse() {
			return
		}
		if table[counter] {
			c.placeMonsterHouse(cell)
			c.emit(StepMajor, EventGenerateMonsterHouse)
			done = true
			return
		}
		counter++
	})
}

func (c *GenerationContext) placeMonsterHouse(cell *GridCell) {
	c.status.HasMonsterHouse = true
	cell.MonsterHouse = true

	for x := cell.StartX; x < cell.EndX; x++ {
		for y := cell.StartY; y < cell.EndY; y++ {
			t := c.tile(x, y)
			t.Terrain.InMonsterHouse = true
			c.info.MonsterHouseRoom = t.RoomIndex
		}
	}
}

package generator

import (
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

const (
	maxTrapSpawns            = 56
	minMonsterHouseItemSpawn = 6
	hiddenStairsRNGBank      = 3
)

type point struct {
	x, y int
}

// spawnCandidates lists the tiles matching pred, column by column
func (c *GenerationContext) spawnCandidates(pred func(x, y int, t *world.Tile) bool) []point {
	var out []point
	c.floor.ForEachTile(func(x, y int, t *world.Tile) {
		if pred(x, y, t) {
			out = append(out, point{x, y})
		}
	})
	return out
}

// isRoomFloor reports whether a tile is open room floor outside any shop,
// junction or unbreakable tile
func isRoomFloor(t *world.Tile) bool {
	return t.IsOpen() && t.RoomIndex != world.RoomNone && !t.Terrain.InKecleonShop &&
		!t.Terrain.NaturalJunction && !t.Terrain.Unbreakable
}

// shuffleSpawnPositions swaps random pairs twice as many times as there are positions
func (c *GenerationContext) shuffleSpawnPositions(list []point) {
	for i := 0; i < len(list)*2; i++ {
		a := c.rng.RandInt(len(list))
		b := c.rng.RandInt(len(list))
		list[a], list[b] = list[b], list[a]
	}
}

// spreadSpawns shuffles the candidates and hands n of them to place, starting
// at a random index and wrapping around
func (c *GenerationContext) spreadSpawns(list []point, n int, place func(t *world.Tile)) {
	c.shuffleSpawnPositions(list)
	cur := c.rng.RandInt(len(list))
	for i := 0; i < n; i++ {
		p := list[cur]
		cur++
		if cur == len(list) {
			cur = 0
		}
		place(c.tile(p.x, p.y))
	}
}

// spawnStairs places the stairs, or hidden stairs when hidden is not none
func (c *GenerationContext) spawnStairs(x, y int, hidden dungeon.HiddenStairsType) {
	t := c.tile(x, y)
	t.Spawn.Item = false
	t.Spawn.Stairs = true

	switch {
	case hidden == dungeon.HiddenStairsNone:
		c.info.StairsSpawnX, c.info.StairsSpawnY = x, y
		c.status.StairsRoomIndex = t.RoomIndex
	case c.status.SecondSpawn:
		c.status.HiddenStairsSpawnX, c.status.HiddenStairsSpawnY = x, y
	default:
		c.info.HiddenStairsSpawnX, c.info.HiddenStairsSpawnY = x, y
		c.info.HiddenStairsType = hidden
	}

	// The stairs room of a rescue floor becomes a monster house
	if hidden == dungeon.HiddenStairsNone && c.floorType() == dungeon.FloorTypeRescue {
		room := t.RoomIndex
		c.floor.ForEachTile(func(_, _ int, other *world.Tile) {
			if other.IsOpen() && other.RoomIndex == room {
				other.Terrain.InMonsterHouse = true
				c.info.MonsterHouseRoom = room
			}
		})
	}

	c.emit(StepMinor, EventSpawnStairs)
}

// spawnNonEnemies places the stairs, items, buried items, monster house
// loot, traps and the player
func (c *GenerationContext) spawnNonEnemies(emptyMonsterHouse bool) {
	if !c.info.HasStairs() {
		c.spawnAllStairs()
	}

	c.spawnItems()
	c.spawnBuriedItems()
	if !emptyMonsterHouse {
		c.spawnMonsterHouseLoot()
	}
	c.spawnTraps()

	if !c.info.HasPlayerSpawn() {
		c.spawnPlayer()
	}

	c.emit(StepMajor, EventSpawnNonEnemies)
}

func (c *GenerationContext) spawnAllStairs() {
	list := c.spawnCandidates(func(_, _ int, t *world.Tile) bool {
		return t.IsOpen() && t.RoomIndex != world.RoomNone && !t.Terrain.InKecleonShop &&
			!t.Spawn.Monster && !t.Spawn.SpecialTile && !t.Terrain.NaturalJunction && !t.Terrain.Unbreakable
	})
	if len(list) == 0 {
		return
	}

	i := c.rng.RandInt(len(list))
	c.spawnStairs(list[i].x, list[i].y, dungeon.HiddenStairsNone)

	if c.status.HiddenStairsType == dungeon.HiddenStairsNone {
		return
	}

	list = append(list[:i], list[i+1:]...)
	if c.dungeon.IsLastFloor() {
		return
	}

	c.rng.UseSecondary(hiddenStairsRNGBank)
	h := c.rng.RandInt(len(list))
	if len(list) == 0 {
		return
	}
	c.spawnStairs(list[h].x, list[h].y, c.status.HiddenStairsType)
}

func (c *GenerationContext) spawnItems() {
	list := c.spawnCandidates(func(_, _ int, t *world.Tile) bool {
		return isRoomFloor(t) && !t.Terrain.InMonsterHouse
	})
	if len(list) == 0 {
		return
	}

	n := c.props.ItemDensity
	if n != 0 {
		n = max(c.rng.RandRange(n-2, n+2), 1)
	}
	if c.dungeon.GuaranteedItemID != 0 {
		n++
	}
	c.dungeon.NumItems = n + 1

	if n+1 <= 0 {
		return
	}
	c.spreadSpawns(list, n+1, func(t *world.Tile) { t.Spawn.Item = true })
	c.emit(StepMinor, EventSpawnItems)
}

func (c *GenerationContext) spawnBuriedItems() {
	list := c.spawnCandidates(func(_, _ int, t *world.Tile) bool {
		return t.Terrain.Type == world.TerrainWall
	})
	if len(list) == 0 {
		return
	}

	n := c.props.BuriedItemDensity
	if n != 0 {
		n = c.rng.RandRange(n-2, n+2)
	}
	if n <= 0 {
		return
	}

	c.spreadSpawns(list, n, func(t *world.Tile) { t.Spawn.Item = true })
	c.emit(StepMinor, EventSpawnBuriedItems)
}

func (c *GenerationContext) spawnMonsterHouseLoot() {
	list := c.spawnCandidates(func(_, _ int, t *world.Tile) bool {
		return !t.Terrain.InKecleonShop && t.Terrain.InMonsterHouse && !t.Terrain.NaturalJunction
	})
	if len(list) == 0 {
		return
	}

	n := max(minMonsterHouseItemSpawn, c.rng.RandRange(5*len(list)/10, 8*len(list)/10))
	n = min(n, c.constants.MaxMonsterHouseItemSpawns)

	trapsAllowed := c.dungeon.NonstoryFlag || c.dungeon.ID >= c.constants.FirstMonsterHouseTrapDungeonID
	c.spreadSpawns(list, n, func(t *world.Tile) {
		if c.rng.RandInt(2) == 1 {
			t.Spawn.Item = true
		} else if trapsAllowed {
			t.Spawn.Trap = true
		}
	})
	c.emit(StepMinor, EventSpawnMonsterHouseItemsTraps)
}

func (c *GenerationContext) spawnTraps() {
	list := c.spawnCandidates(func(_, _ int, t *world.Tile) bool {
		return isRoomFloor(t) && !t.Spawn.Item
	})
	if len(list) == 0 {
		return
	}

	n := c.rng.RandRange(floorDiv(c.props.TrapDensity, 2), c.props.TrapDensity)
	if n <= 0 {
		return
	}
	n = min(n, maxTrapSpawns)

	c.spreadSpawns(list, n, func(t *world.Tile) { t.Spawn.Trap = true })
	c.emit(StepMinor, EventSpawnTraps)
}

func (c *GenerationContext) spawnPlayer() {
	rescue := c.floorType() == dungeon.FloorTypeRescue
	list := c.spawnCandidates(func(_, _ int, t *world.Tile) bool {
		if !isRoomFloor(t) || t.Spawn.Item || t.Spawn.Monster || t.Spawn.Trap {
			return false
		}
		return !rescue || !t.Spawn.Stairs
	})
	if len(list) == 0 {
		return
	}

	i := c.rng.RandInt(len(list))
	c.info.PlayerSpawnX, c.info.PlayerSpawnY = list[i].x, list[i].y
	c.emit(StepMinor, EventSpawnPlayer)
}

// resolveInvalidSpawns drops spawns that conflict with the terrain or with each other
func (c *GenerationContext) resolveInvalidSpawns() {
	c.floor.ForEachTile(func(_, _ int, t *world.Tile) {
		if !t.IsOpen() {
			if t.Terrain.ImpassableWall && t.Terrain.Unbreakable {
				t.Spawn.Item = false
			}
			t.Spawn.Trap = false
		}

		if t.Spawn.Stairs {
			t.Terrain.Stairs = true
			t.Spawn.Trap = false
		}

		if t.Spawn.Item {
			t.Spawn.Trap = false
		}
	})
}

package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"

// emptyMonsterHouseEnemies caps the extra enemies of an itemless monster house
const emptyMonsterHouseEnemies = 3

// spawnEnemies scatters enemies over the rooms and, when the layout demands
// a monster house, packs extra enemies into it
func (c *GenerationContext) spawnEnemies(emptyMonsterHouse bool) {
	density := c.props.EnemyDensity
	var n int
	if density < 1 {
		n = abs(density)
	} else {
		n = max(c.rng.RandRange(floorDiv(density, 2), density), 1)
	}

	isPlayer := func(x, y int) bool {
		return c.info.PlayerSpawnX == x && c.info.PlayerSpawnY == y
	}

	list := c.spawnCandidates(func(x, y int, t *world.Tile) bool {
		if !isRoomFloor(t) || t.Spawn.Item || t.Spawn.Stairs || isPlayer(x, y) {
			return false
		}
		return !c.status.NoEnemySpawn || c.info.MonsterHouseRoom != t.RoomIndex
	})

	if len(list) > 0 && n+1 > 0 {
		c.spreadSpawns(list, n+1, func(t *world.Tile) { t.Spawn.Monster = true })
		c.emit(StepMinor, EventSpawnNonMonsterHouseEnemies)
	}

	if !c.info.ForceCreateMonsterHouse {
		c.emit(StepMajor, EventSpawnEnemies)
		return
	}

	limit := c.constants.MaxMonsterHouseEnemySpawns
	if emptyMonsterHouse {
		limit = emptyMonsterHouseEnemies
	}
	limit = limit * 3 / 2

	list = c.spawnCandidates(func(x, y int, t *world.Tile) bool {
		return t.IsOpen() && t.RoomIndex != world.RoomNone && !t.Terrain.InKecleonShop &&
			!t.Terrain.Unbreakable && t.Terrain.InMonsterHouse && !isPlayer(x, y)
	})

	if len(list) > 0 {
		n = max(1, c.rng.RandRange(7*len(list)/10, 8*len(list)/10))
		n = min(n, limit)

		c.spreadSpawns(list, n, func(t *world.Tile) { t.Spawn.Monster = true })
		c.emit(StepMinor, EventSpawnMonsterHouseExtraEnemies)
	}

	c.emit(StepMajor, EventSpawnEnemies)
}

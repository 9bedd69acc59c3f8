package generator

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

// Retry limits of the generation loops
const (
	maxSpawnAttempts      = 10
	maxLayoutAttempts     = 10
	maxGridSizeAttempts   = 32
	minTilesPerGridCell   = 8
	minAcceptedRooms      = 2
	minAcceptedRoomTiles  = 20
	acceptedRoomIndexMax  = 0x40
	acceptedRoomTileLimit = 0xF0
)

// Options holds the optional inputs of a generation. Zero values select the defaults.
type Options struct {
	Seed       uint32
	Constants  *dungeon.GenerationConstants
	Settings   *dungeon.AdvancedGenerationSettings
	Observer   Observer
	Verbosity  StepLevel
	FixedRooms FixedRoomLoader
}

// Result is the outcome of generating one floor
type Result struct {
	Floor   *world.Floor
	Tiles   world.Tiles
	Info    GenerationInfo
	Status  FloorGenerationStatus
	Dungeon dungeon.Dungeon

	// Grid cell boundaries of the layout that was kept
	GridX, GridY []int
}

// GenerateDungeon generates one floor. It always produces a floor with a
// player spawn; failed attempts fall back to a single monster house room.
// The dungeon snapshot is copied and never modified.
func GenerateDungeon(props dungeon.FloorProperties, d dungeon.Dungeon, opts Options) *Result {
	c := newContext(props, d, opts)
	c.generateFloor()

	return &Result{
		Floor:   c.floor,
		Tiles:   c.floor.Snapshot(),
		Info:    c.info,
		Status:  c.status,
		Dungeon: c.dungeon,
		GridX:   c.gridX,
		GridY:   c.gridY,
	}
}

// resetAttemptStatus forgets the features found by a previous layout attempt
func (c *GenerationContext) resetAttemptStatus() {
	c.status.HasKecleonShop = false
	c.status.HasMonsterHouse = false
	c.status.HasMaze = false
	c.status.KecleonShopMiddleX = Unset
	c.status.KecleonShopMiddleY = Unset
	c.info.MonsterHouseRoom = world.RoomNone
}

func (c *GenerationContext) clearSpawnCoordinates() {
	c.info.PlayerSpawnX, c.info.PlayerSpawnY = Unset, Unset
	c.info.StairsSpawnX, c.info.StairsSpawnY = Unset, Unset
	c.info.HiddenStairsSpawnX, c.info.HiddenStairsSpawnY = Unset, Unset
	c.status.StairsRoomIndex = world.RoomNone
}

// fallbackToOneRoom replaces the floor with a single monster house room
func (c *GenerationContext) fallbackToOneRoom() {
	c.resetAttemptStatus()
	c.resetFloor()
	c.generateOneRoomMonsterHouseFloor()
	c.info.ForceCreateMonsterHouse = true
}

// generateFallbackFloor builds and populates the one room floor used once
// every spawn attempt failed. It is not validated again.
func (c *GenerationContext) generateFallbackFloor() {
	c.fallbackToOneRoom()
	c.clearSpawnCoordinates()
	c.finalizeJunctions()
	c.spawnNonEnemies(false)
	c.spawnEnemies(false)
	c.resolveInvalidSpawns()
}

// sampleGridSize picks the grid dimensions of a standard floor
func (c *GenerationContext) sampleGridSize() (int, int) {
	maxX, maxY := 9, 8
	if c.props.Layout == dungeon.LayoutLarge0x8 {
		maxX, maxY = 5, 4
	}

	sizeX, sizeY := 2, 2
	attempts := maxGridSizeAttempts
	for ; attempts > 0; attempts-- {
		sizeX = c.rng.RandRange(2, maxX)
		sizeY = c.rng.RandRange(2, maxY)
		if sizeX <= 6 && sizeY <= 4 {
			break
		}
	}
	if attempts == 0 {
		sizeX, sizeY = 4, 4
	}

	if world.FloorWidth/sizeX < minTilesPerGridCell {
		sizeX = 1
	}
	if world.FloorHeight/sizeY < minTilesPerGridCell {
		sizeY = 1
	}
	return sizeX, sizeY
}

// layoutAccepted reports whether the floor has at least two rooms and enough room tiles
func (c *GenerationContext) layoutAccepted() bool {
	if c.status.IsInvalid {
		return false
	}

	rooms := mapset.New[int]()
	tiles := 0
	c.floor.ForEachTile(func(_, _ int, t *world.Tile) {
		if !t.IsOpen() || t.RoomIndex >= acceptedRoomTileLimit {
			return
		}
		tiles++
		if t.RoomIndex < acceptedRoomIndexMax {
			rooms.Put(t.RoomIndex)
		}
	})

	return rooms.Size() >= minAcceptedRooms && tiles >= minAcceptedRoomTiles
}

// generateLayout tries up to ten layouts and falls back to a one room floor.
// It returns whether secondary terrain should be generated.
func (c *GenerationContext) generateLayout() bool {
	fixedRoom := false
	secondaryTerrain := false
	layout := GeneratorFor(c.props.Layout)

	attempt := 0
	for ; attempt < maxLayoutAttempts; attempt++ {
		if fixedRoom {
			if isFullFloorFixedRoom(c.info.FixedRoomID) {
				break
			}
			fixedRoom = false
		}

		c.info.FloorGenerationAttempts = attempt
		if attempt > 0 {
			c.status.SecondaryStructuresBudget = 0
		}

		c.status.IsInvalid = false
		c.resetAttemptStatus()
		c.resetFloor()
		c.info.PlayerSpawnX, c.info.PlayerSpawnY = Unset, Unset

		if c.info.FixedRoomID != 0 && c.fixedRooms.LoadFixedRoom(c.info.FixedRoomID, c.floor, c.props) {
			fixedRoom = true
			continue
		}

		sizeX, sizeY := c.sampleGridSize()
		c.status.Layout = c.props.Layout

		layout.generate(c, sizeX, sizeY)
		secondaryTerrain = layout.SecondaryTerrain()
		if layout.ForcesMonsterHouse() {
			c.info.ForceCreateMonsterHouse = true
		}

		c.resetInnerBoundaryTileRows()
		c.ensureImpassableTilesAreWalls()

		if c.layoutAccepted() {
			break
		}
	}

	if attempt == maxLayoutAttempts {
		c.fallbackToOneRoom()
	}

	return secondaryTerrain
}

// generateFloor runs layout generation and spawning until the stairs can be
// reached from everywhere, and falls back to a one room floor after ten tries
func (c *GenerationContext) generateFloor() {
	c.status.StairsRoomIndex = world.RoomNone
	c.status.FloorSize = dungeon.FloorSizeLarge
	c.info.FixedRoomID = c.props.FixedRoomID

	c.status.MonsterHouseChance = c.props.MonsterHouseChance
	c.status.KecleonShopChance = c.props.KecleonShopChance
	c.status.SecondaryStructuresBudget = c.props.SecondaryStructuresBudget
	c.status.HiddenStairsType = c.props.HiddenStairsType
	c.status.NoEnemySpawn = c.dungeon.IsOutlawMonsterHouseFloor()
	c.status.HasChasmsAsSecondaryTerrain = c.dungeon.SecondaryTerrainType() == dungeon.SecondaryTerrainChasm

	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		c.rng.UsePrimary()
		c.info.SpawnAttempts = attempt
		c.clearSpawnCoordinates()

		secondaryTerrain := c.generateLayout()

		c.finalizeJunctions()
		if secondaryTerrain {
			c.generateSecondaryTerrain()
		}

		emptyMonsterHouse := c.rng.RandInt(100) < c.props.ItemlessMonsterHouseChance
		c.spawnNonEnemies(emptyMonsterHouse)
		c.spawnEnemies(emptyMonsterHouse)
		c.resolveInvalidSpawns()

		if c.info.HasPlayerSpawn() {
			if c.floorType() == dungeon.FloorTypeFixed {
				break
			}
			if c.info.HasStairs() && c.stairsAlwaysReachable(c.info.StairsSpawnX, c.info.StairsSpawnY, false) {
				break
			}
		}

		if attempt+1 == maxSpawnAttempts {
			c.generateFallbackFloor()
		}
	}

	if c.info.HasStairs() {
		c.stairsAlwaysReachable(c.info.StairsSpawnX, c.info.StairsSpawnY, true)
	}

	c.emit(StepComplete, EventGenerateFloor)
}

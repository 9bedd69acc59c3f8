package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

func TestGeneratorFor_EveryLayoutHasATemplate(t *testing.T) {
	for _, layout := range dungeon.AllLayouts() {
		g := GeneratorFor(layout)
		require.NotNil(t, g, "layout %s", layout)
		assert.NotEmpty(t, g.Name(), "layout %s", layout)
	}
}

func TestGeneratorFor_UnknownLayoutFallsBack(t *testing.T) {
	for _, layout := range []dungeon.FloorLayout{dungeon.LayoutUnused0xC, dungeon.LayoutUnused0xF, dungeon.FloorLayout(99)} {
		assert.Equal(t, DefaultGenerator, GeneratorFor(layout), "layout %s", layout)
	}
	assert.Equal(t, Standard, GeneratorFor(dungeon.LayoutLarge0x8))
}

func TestLayoutGenerators_Flags(t *testing.T) {
	assert.True(t, OneRoomMH.ForcesMonsterHouse())
	assert.True(t, TwoRoomsMH.ForcesMonsterHouse())
	assert.False(t, Standard.ForcesMonsterHouse())

	assert.True(t, Standard.SecondaryTerrain())
	assert.False(t, Cross.SecondaryTerrain())
	assert.False(t, Beetle.SecondaryTerrain())
}

// plainRoom sets up a one cell grid holding a connected room over the given bounds
func plainRoom(c *GenerationContext, x0, y0, x1, y1, room int) (*Grid, *GridCell) {
	g := c.initGrid(1, 1)
	cell := g.Cell(0, 0)
	cell.StartX, cell.StartY = x0, y0
	cell.EndX, cell.EndY = x1, y1
	cell.IsRoom = true
	cell.Connected = true
	c.carveRect(x0, y0, x1, y1, room)
	return g, cell
}

func TestGenerateKecleonShop(t *testing.T) {
	c := newTestContext(1)
	g, cell := plainRoom(c, 2, 2, 10, 8, 0)

	c.generateKecleonShop(g, 100)

	require.True(t, c.status.HasKecleonShop)
	assert.True(t, cell.KecleonShop)
	assert.Equal(t, 6, c.status.KecleonShopMiddleX)
	assert.Equal(t, 5, c.status.KecleonShopMiddleY)

	assert.True(t, c.tile(3, 3).Terrain.InKecleonShop)
	assert.True(t, c.tile(8, 6).Terrain.InKecleonShop)
	assert.False(t, c.tile(2, 2).Terrain.InKecleonShop, "shop keeps a margin inside the room")
	assert.True(t, c.tile(2, 2).Spawn.SpecialTile)

	assert.Equal(t, 3, c.dungeon.KecleonShopMinX)
	assert.Equal(t, 8, c.dungeon.KecleonShopMaxX)
}

func TestGenerateKecleonShop_SkippedWithMonsterHouse(t *testing.T) {
	c := newTestContext(1)
	g, _ := plainRoom(c, 2, 2, 10, 8, 0)
	c.status.HasMonsterHouse = true

	c.generateKecleonShop(g, 100)
	assert.False(t, c.status.HasKecleonShop)
}

func TestGenerateKecleonShop_RoomTooSmall(t *testing.T) {
	c := newTestContext(1)
	g, _ := plainRoom(c, 2, 2, 5, 5, 0)

	c.generateKecleonShop(g, 100)
	assert.False(t, c.status.HasKecleonShop)
}

func TestGenerateMonsterHouse(t *testing.T) {
	c := newTestContext(1)
	g, cell := plainRoom(c, 4, 4, 12, 10, 3)

	c.generateMonsterHouse(g, guaranteedChance)

	require.True(t, c.status.HasMonsterHouse)
	assert.True(t, cell.MonsterHouse)
	assert.Equal(t, 3, c.info.MonsterHouseRoom)
	assert.Equal(t, 48, c.floor.CountTiles(func(tile *world.Tile) bool { return tile.Terrain.InMonsterHouse }))
}

func TestGenerateMonsterHouse_BlockedByMission(t *testing.T) {
	c := newTestContext(1)
	c.dungeon.MissionDestination = dungeon.MissionDestination{IsDestinationFloor: true, Type: dungeon.MissionRescueClient}
	g, _ := plainRoom(c, 4, 4, 12, 10, 3)

	c.generateMonsterHouse(g, guaranteedChance)
	assert.False(t, c.status.HasMonsterHouse)
}

func TestGenerateMazeRoom_NeedsPatch(t *testing.T) {
	c := newTestContext(1)
	g, cell := plainRoom(c, 3, 3, 14, 12, 0)

	c.generateMazeRoom(g, 100)
	assert.False(t, cell.MazeRoom)

	c.settings.AllowWallMazeRoomGeneration = true
	c.generateMazeRoom(g, 100)
	require.True(t, cell.MazeRoom)
	assert.True(t, c.status.HasMaze)

	walls := 0
	for x := cell.StartX; x < cell.EndX; x++ {
		for y := cell.StartY; y < cell.EndY; y++ {
			if c.tile(x, y).Terrain.Type == world.TerrainWall {
				walls++
			}
		}
	}
	assert.Positive(t, walls)
}

func TestGenerateMazeRoom_EvenRoomsAreSkipped(t *testing.T) {
	c := newTestContext(1)
	c.settings.AllowWallMazeRoomGeneration = true
	g, cell := plainRoom(c, 3, 3, 13, 12, 0)

	c.generateMazeRoom(g, 100)
	assert.False(t, cell.MazeRoom)
}

func TestFinalizeJunctions(t *testing.T) {
	c := newTestContext(1)
	c.carveRect(5, 5, 10, 10, 0)
	c.createHallway(9, 7, 20, 7, false, 15, 0)
	c.tile(20, 20).Terrain.Type = world.TerrainNormal
	c.tile(20, 20).RoomIndex = world.RoomAnchor

	c.finalizeJunctions()

	assert.True(t, c.tile(9, 7).Terrain.NaturalJunction, "room tile next to the hallway")
	assert.False(t, c.tile(6, 7).Terrain.NaturalJunction)
	assert.Equal(t, world.RoomNone, c.tile(20, 20).RoomIndex, "lone anchors turn into hallway")
}

func TestResetInnerBoundaryTileRows(t *testing.T) {
	c := newTestContext(1)
	c.carveRect(2, 1, 10, 4, 0)
	c.carveRect(2, innerBottomRow, 10, innerBottomRow+1, 1)

	c.resetInnerBoundaryTileRows()

	for x := 2; x < 10; x++ {
		assert.False(t, c.tile(x, innerTopRow).IsOpen())
		assert.False(t, c.tile(x, innerBottomRow).IsOpen())
		assert.True(t, c.tile(x, 2).IsOpen())
	}
}

package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
)

func TestStairsAlwaysReachable_SingleRoom(t *testing.T) {
	c := newTestContext(1)
	c.carveRect(5, 5, 15, 10, 0)

	assert.True(t, c.stairsAlwaysReachable(7, 7, false))
	assert.Equal(t, 50, c.status.NumTilesReachableFromStairs)
}

func TestStairsAlwaysReachable_IsolatedTile(t *testing.T) {
	c := newTestContext(1)
	c.carveRect(5, 5, 15, 10, 0)
	c.tile(30, 20).Terrain.Type = world.TerrainNormal

	assert.False(t, c.stairsAlwaysReachable(7, 7, false))
	assert.False(t, c.tile(30, 20).Terrain.UnreachableFromStairs, "check mode must not mark tiles")

	assert.True(t, c.stairsAlwaysReachable(7, 7, true))
	assert.True(t, c.tile(30, 20).Terrain.UnreachableFromStairs)
	assert.False(t, c.tile(7, 7).Terrain.UnreachableFromStairs)
}

func TestStairsAlwaysReachable_UnbreakableMayBeCutOff(t *testing.T) {
	c := newTestContext(1)
	c.carveRect(5, 5, 15, 10, 0)
	island := c.tile(30, 20)
	island.Terrain.Type = world.TerrainNormal
	island.Terrain.Unbreakable = true

	assert.True(t, c.stairsAlwaysReachable(7, 7, false))
}

func TestStairsAlwaysReachable_DiagonalNeedsBothFlanks(t *testing.T) {
	c := newTestContext(1)
	c.tile(10, 10).Terrain.Type = world.TerrainNormal
	c.tile(11, 11).Terrain.Type = world.TerrainNormal

	assert.False(t, c.stairsAlwaysReachable(10, 10, false), "diagonal step past two walls")

	c.tile(11, 10).Terrain.CornerCuttable = true
	c.tile(10, 11).Terrain.CornerCuttable = true
	assert.True(t, c.stairsAlwaysReachable(10, 10, false))
}

func TestStairsAlwaysReachable_SecondaryTerrainBlocks(t *testing.T) {
	c := newTestContext(1)
	c.carveRect(5, 5, 20, 6, 0)
	c.tile(12, 5).Terrain.Type = world.TerrainSecondary

	assert.False(t, c.stairsAlwaysReachable(5, 5, false))

	c.stairsAlwaysReachable(5, 5, true)
	assert.True(t, c.tile(13, 5).Terrain.UnreachableFromStairs)
	assert.False(t, c.tile(12, 5).Terrain.UnreachableFromStairs, "secondary terrain itself is never flagged")
}

func TestReachableFrom_Hallway(t *testing.T) {
	c := newTestContext(1)
	c.carveRect(3, 3, 6, 6, 0)
	c.carveRect(20, 3, 23, 6, 1)
	c.createHallway(5, 4, 20, 4, false, 12, 0)

	visited := c.reachableFrom(4, 4)
	assert.True(t, visited.Has(point{21, 4}))
	assert.True(t, visited.Has(point{12, 4}))
	assert.False(t, visited.Has(point{12, 8}))
}

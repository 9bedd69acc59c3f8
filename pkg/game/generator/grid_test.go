package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

func newTestContext(seed uint32) *GenerationContext {
	return newContext(dungeon.DefaultFloorProperties(), dungeon.DefaultDungeon(), Options{Seed: seed})
}

func TestGridPositions(t *testing.T) {
	xs, ys := gridPositions(4, 2)
	assert.Equal(t, []int{0, 14, 28, 42, 56}, xs)
	assert.Equal(t, []int{0, 16, 32}, ys)

	xs, ys = gridPositions(1, 1)
	assert.Equal(t, []int{0, world.FloorWidth}, xs)
	assert.Equal(t, []int{0, world.FloorHeight}, ys)
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{-3, 2, -2},
		{-4, 2, -2},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	assert.Equal(t, 3, abs(-3))
	assert.Equal(t, 3, abs(3))
}

func TestInitGrid_PartialFloorsInvalidateColumns(t *testing.T) {
	c := newTestContext(1)
	c.status.FloorSize = dungeon.FloorSizeSmall
	g := c.initGrid(4, 2)

	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			assert.Equal(t, x >= 2, g.Cell(x, y).Invalid, "cell (%d, %d)", x, y)
		}
	}

	c.status.FloorSize = dungeon.FloorSizeMedium
	g = c.initGrid(4, 2)
	assert.False(t, g.Cell(2, 0).Invalid)
	assert.True(t, g.Cell(3, 0).Invalid)
}

func TestAssignRooms_ExactCount(t *testing.T) {
	for _, seed := range []uint32{1, 2, 3, 4, 5} {
		c := newTestContext(seed)
		g := c.initGrid(4, 3)
		c.assignRooms(g, -5)

		rooms := 0
		g.forEachCell(func(_, _ int, cell *GridCell) {
			if cell.IsRoom {
				rooms++
			}
		})
		assert.Equal(t, 5, rooms, "seed %d", seed)
		assert.Equal(t, 5, c.status.NumRooms, "seed %d", seed)
	}
}

func TestAssignRooms_OddGridSkipsMiddleOfSecondRow(t *testing.T) {
	for _, seed := range []uint32{1, 2, 3, 4, 5, 6, 7, 8} {
		c := newTestContext(seed)
		g := c.initGrid(3, 3)
		c.assignRooms(g, -9)

		assert.False(t, g.Cell(1, 1).IsRoom, "seed %d", seed)
	}
}

func TestAssignRooms_AtLeastOneRoom(t *testing.T) {
	for _, seed := range []uint32{1, 2, 3, 4, 5} {
		c := newTestContext(seed)
		g := c.initGrid(3, 2)
		c.assignRooms(g, 0)

		rooms := 0
		g.forEachCell(func(_, _ int, cell *GridCell) {
			if cell.IsRoom {
				rooms++
			}
		})
		assert.GreaterOrEqual(t, rooms, 1, "seed %d", seed)
	}
}

func TestSelectionTable_SingleEntry(t *testing.T) {
	c := newTestContext(11)
	table := c.selectionTable(7)

	count := 0
	for i, v := range table {
		if v {
			count++
			assert.Less(t, i, 7)
		}
	}
	assert.Equal(t, 1, count)
}

func TestCreateHallway_LShape(t *testing.T) {
	c := newTestContext(1)
	c.createHallway(5, 5, 20, 10, false, 12, 0)

	open := []struct{ x, y int }{{5, 5}, {11, 5}, {12, 5}, {12, 9}, {12, 10}, {19, 10}}
	for _, p := range open {
		assert.True(t, c.tile(p.x, p.y).IsOpen(), "(%d, %d) should be open", p.x, p.y)
	}
	assert.False(t, c.tile(20, 10).IsOpen())
	assert.False(t, c.tile(13, 5).IsOpen())
	assert.Equal(t, world.RoomNone, c.tile(12, 7).RoomIndex)
}

func TestCreateHallway_StopsAtOpenFloor(t *testing.T) {
	c := newTestContext(1)
	c.carveRect(8, 3, 10, 8, 0)
	c.createHallway(3, 5, 20, 5, false, 15, 0)

	assert.True(t, c.tile(7, 5).IsOpen())
	assert.False(t, c.tile(10, 5).IsOpen(), "hallway must stop when it joins open floor")
}

func TestCarveRect(t *testing.T) {
	c := newTestContext(1)
	c.carveRect(2, 3, 6, 5, 7)

	n := c.floor.CountTiles(func(tile *world.Tile) bool { return tile.IsOpen() })
	assert.Equal(t, 8, n)
	assert.Equal(t, 7, c.tile(5, 4).RoomIndex)
	assert.False(t, c.tile(6, 4).IsOpen())
}

func TestGridConnect_Symmetric(t *testing.T) {
	c := newTestContext(1)
	g := c.initGrid(3, 3)
	g.connect(1, 1, world.CardinalRight)

	assert.True(t, g.Cell(1, 1).ConnectedTo[world.CardinalRight])
	assert.True(t, g.Cell(2, 1).ConnectedTo[world.CardinalLeft])
	assert.Equal(t, 1, g.Cell(1, 1).connectionCount())
}

func TestGridInvalidAt(t *testing.T) {
	g := &Grid{SizeX: 2, SizeY: 2}
	g.Cell(1, 0).Invalid = true

	assert.True(t, g.invalidAt(-1, 0))
	assert.True(t, g.invalidAt(MaxGridSize, 0))
	assert.True(t, g.invalidAt(1, 0))
	assert.False(t, g.invalidAt(0, 0))
	// Storage beyond the in-use size is still a valid position
	assert.False(t, g.invalidAt(5, 5))
}

func TestAssignGridCellConnections_EveryRoomLinked(t *testing.T) {
	c := newTestContext(21)
	c.props.FloorConnectivity = 40
	g := c.initGrid(4, 3)

	c.assignGridCellConnections(g, 0, 0)

	linked := 0
	g.forEachCell(func(_, _ int, cell *GridCell) {
		if cell.connectionCount() > 0 {
			linked++
		}
	})
	require.Positive(t, linked)

	// Links never point outside the in-use grid
	g.forEachCell(func(x, y int, cell *GridCell) {
		for d := world.Cardinal(0); d < world.NumCardinals; d++ {
			if cell.ConnectedTo[d] {
				assert.True(t, g.inBounds(x, y, d), "cell (%d, %d) linked %s off the grid", x, y, d)
			}
		}
	})
}

// deadEndGrid returns a 2x2 grid whose top right cell is an anchor linked only
// to its left. Down is its one free direction and the column to its right lies
// outside the in-use grid.
func deadEndGrid(c *GenerationContext) *Grid {
	g := c.initGrid(2, 2)
	g.Cell(1, 0).IsRoom = false
	g.connect(1, 0, world.CardinalLeft)
	return g
}

func TestRemoveDeadEnds_UnpatchedChecksRightNeighbour(t *testing.T) {
	for _, seed := range []uint32{1, 2, 3, 4, 5} {
		c := newTestContext(seed)
		g := deadEndGrid(c)
		require.True(t, g.invalidAt(2, 0))
		require.False(t, g.invalidAt(1, 1))

		c.removeDeadEnds(g)

		assert.Equal(t, 1, g.Cell(1, 0).connectionCount(), "seed %d", seed)
		assert.False(t, g.Cell(1, 0).ConnectedTo[world.CardinalDown], "seed %d", seed)
		assert.False(t, g.Cell(1, 1).ConnectedTo[world.CardinalUp], "seed %d", seed)
	}
}

func TestRemoveDeadEnds_PatchedChecksChosenNeighbour(t *testing.T) {
	for _, seed := range []uint32{1, 2, 3, 4, 5} {
		c := newTestContext(seed)
		c.settings.FixDeadEndValidationError = true
		g := deadEndGrid(c)

		c.removeDeadEnds(g)

		assert.Equal(t, 2, g.Cell(1, 0).connectionCount(), "seed %d", seed)
		assert.True(t, g.Cell(1, 0).ConnectedTo[world.CardinalDown], "seed %d", seed)
		assert.True(t, g.Cell(1, 1).ConnectedTo[world.CardinalUp], "seed %d", seed)
	}
}

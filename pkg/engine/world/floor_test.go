package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloorBorderIsImpassable(t *testing.T) {
	f := NewFloor()
	f.ForEachTile(func(x, y int, tile *Tile) {
		onEdge := x == 0 || y == 0 || x == FloorWidth-1 || y == FloorHeight-1
		if tile.Terrain.ImpassableWall != onEdge {
			t.Errorf("tile (%d, %d): expected impassable=%v, got %v", x, y, onEdge, tile.Terrain.ImpassableWall)
		}
		if tile.RoomIndex != RoomNone {
			t.Errorf("tile (%d, %d): expected room index %#x, got %#x", x, y, RoomNone, tile.RoomIndex)
		}
	})
	assert.Equal(t, "", f.Validate())
}

func TestTileAtOutOfBounds(t *testing.T) {
	f := NewFloor()
	assert.Nil(t, f.TileAt(-1, 0))
	assert.Nil(t, f.TileAt(FloorWidth, 0))
	assert.Nil(t, f.TileAt(0, FloorHeight))
	assert.NotNil(t, f.TileAt(FloorWidth-1, FloorHeight-1))
	assert.Panics(t, func() { f.Tile(FloorWidth, 0) })
}

func TestValidateReportsBrokenInvariants(t *testing.T) {
	f := NewFloor()
	f.Tile(0, 5).Terrain.Type = TerrainNormal
	require.NotEmpty(t, f.Validate())

	f = NewFloor()
	f.Tile(1, 5).Terrain.Type = TerrainNormal
	require.NotEmpty(t, f.Validate())

	f = NewFloor()
	f.Tile(FloorWidth-2, 10).Terrain.Type = TerrainSecondary
	require.Contains(t, f.Validate(), "Secondary")

	f = NewFloor()
	f.Tile(10, 10).RoomIndex = RoomAnchor
	require.NotEmpty(t, f.Validate())

	f = NewFloor()
	f.Tile(10, 10).Spawn.Trap = true
	f.Tile(10, 10).Spawn.Item = true
	require.NotEmpty(t, f.Validate())
}

func TestSnapshotIsACopy(t *testing.T) {
	f := NewFloor()
	snap := f.Snapshot()
	f.Tile(10, 10).Terrain.Type = TerrainNormal
	assert.Equal(t, TerrainWall, snap[10][10].Terrain.Type)
	assert.NotEqual(t, snap, f.Snapshot())
}

func TestCountTiles(t *testing.T) {
	f := NewFloor()
	for x := 5; x < 8; x++ {
		f.Tile(x, 5).Terrain.Type = TerrainNormal
	}
	assert.Equal(t, 3, f.CountTiles(func(tile *Tile) bool { return tile.IsOpen() }))
	assert.Equal(t, 2*FloorWidth+2*(FloorHeight-2), f.CountTiles(func(tile *Tile) bool { return tile.Terrain.ImpassableWall }))
}

func TestDirectionRotation(t *testing.T) {
	assert.Equal(t, DirRight, DirDown.Rotate(2))
	assert.Equal(t, DirLeft, DirDown.Rotate(6))
	assert.Equal(t, DirDownLeft, DirDown.Rotate(-1))
	assert.Equal(t, DirUp, DirDown.Opposite())

	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v: opposite delta mismatch", d)
		}
		if d.IsCardinal() != (dx == 0 || dy == 0) {
			t.Errorf("%v: IsCardinal disagrees with delta (%d, %d)", d, dx, dy)
		}
	}
}

func TestCardinalRotation(t *testing.T) {
	c := CardinalRight
	seen := []Cardinal{}
	for i := 0; i < NumCardinals; i++ {
		seen = append(seen, c)
		c = c.Next()
	}
	assert.Equal(t, []Cardinal{CardinalRight, CardinalUp, CardinalLeft, CardinalDown}, seen)
	assert.Equal(t, CardinalDown, CardinalUp.Opposite())

	dx, dy := CardinalUp.Delta()
	assert.Equal(t, 0, dx)
	assert.Equal(t, -1, dy)
}

func TestResetClearsFixedRoom(t *testing.T) {
	f := NewFloor()
	block := f.FixedRoom()
	block[3][4].Terrain.Type = TerrainNormal
	block[3][4].RoomIndex = 2

	assert.Equal(t, TerrainNormal, f.FixedRoom()[3][4].Terrain.Type)

	f.Reset()
	assert.Equal(t, NewTile(), f.FixedRoom()[3][4])
}

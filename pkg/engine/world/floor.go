package world

import "fmt"

// Floor dimensions in tiles
const (
	FloorWidth    = 56
	FloorHeight   = 32
	FixedRoomSize = 8
)

// Tiles is the full tile map of one floor, indexed [x][y]
type Tiles [FloorWidth][FloorHeight]Tile

// FixedRoomTiles holds the tiles of a pre-authored room, indexed [x][y]
type FixedRoomTiles [FixedRoomSize][FixedRoomSize]Tile

// Floor represents the tile map being generated
type Floor struct {
	tiles     Tiles
	fixedRoom FixedRoomTiles
}

// NewFloor creates a freshly reset floor
func NewFloor() *Floor {
	f := &Floor{}
	f.Reset()
	return f
}

// Width returns the number of columns in the floor
func (f *Floor) Width() int {
	return FloorWidth
}

// Height returns the number of rows in the floor
func (f *Floor) Height() int {
	return FloorHeight
}

// Reset recreates every tile. The outermost ring becomes impassable wall.
func (f *Floor) Reset() {
	for x := 0; x < FloorWidth; x++ {
		for y := 0; y < FloorHeight; y++ {
			f.tiles[x][y] = NewTile()
			if f.IsOnPerimeter(x, y) {
				f.tiles[x][y].Terrain.ImpassableWall = true
			}
		}
	}

	for x := 0; x < FixedRoomSize; x++ {
		for y := 0; y < FixedRoomSize; y++ {
			f.fixedRoom[x][y] = NewTile()
		}
	}
}

// IsValidPosition checks if an x/y position is within floor bounds
func (f *Floor) IsValidPosition(x, y int) bool {
	return x >= 0 && x < FloorWidth && y >= 0 && y < FloorHeight
}

// IsPlayablePosition checks if a position is inside the impassable outer ring
func (f *Floor) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < FloorWidth-1 && y >= 1 && y < FloorHeight-1
}

// IsOnPerimeter checks if a position is on the edge of the floor
func (f *Floor) IsOnPerimeter(x, y int) bool {
	return f.IsValidPosition(x, y) && !f.IsPlayablePosition(x, y)
}

// Tile returns the tile at the given position. It panics when out of bounds.
func (f *Floor) Tile(x, y int) *Tile {
	return &f.tiles[x][y]
}

// TileAt returns the tile at the given position, or nil if out of bounds
func (f *Floor) TileAt(x, y int) *Tile {
	if !f.IsValidPosition(x, y) {
		return nil
	}
	return &f.tiles[x][y]
}

// ResetTile replaces the tile at the given position with a fresh one
func (f *Floor) ResetTile(x, y int) {
	f.tiles[x][y] = NewTile()
}

// FixedRoom returns the fixed room tile block
func (f *Floor) FixedRoom() *FixedRoomTiles {
	return &f.fixedRoom
}

// Snapshot returns a copy of all tiles
func (f *Floor) Snapshot() Tiles {
	return f.tiles
}

// ForEachTile iterates over all tiles column by column, calling the provided function for each
func (f *Floor) ForEachTile(fn func(x, y int, tile *Tile)) {
	for x := 0; x < FloorWidth; x++ {
		for y := 0; y < FloorHeight; y++ {
			fn(x, y, &f.tiles[x][y])
		}
	}
}

// CountTiles returns how many tiles satisfy pred
func (f *Floor) CountTiles(pred func(tile *Tile) bool) int {
	n := 0
	f.ForEachTile(func(x, y int, tile *Tile) {
		if pred(tile) {
			n++
		}
	})
	return n
}

// Validate checks the floor for broken invariants and returns a description or empty string if valid
func (f *Floor) Validate() string {
	for x := 0; x < FloorWidth; x++ {
		for y := 0; y < FloorHeight; y++ {
			t := &f.tiles[x][y]

			if f.IsOnPerimeter(x, y) {
				if !t.Terrain.ImpassableWall || t.Terrain.Type != TerrainWall {
					return fmt.Sprintf("Border tile (%d, %d) is not an impassable wall", x, y)
				}
			} else if (x == 1 || x == FloorWidth-2 || y == 1 || y == FloorHeight-2) && t.Terrain.Type != TerrainWall {
				return fmt.Sprintf("Tile (%d, %d) next to the border is %s", x, y, t.Terrain.Type)
			}

			if t.RoomIndex == RoomAnchor {
				return fmt.Sprintf("Tile (%d, %d) still holds an unresolved anchor", x, y)
			}

			if t.Spawn.Trap && (t.Spawn.Item || t.Spawn.Stairs) {
				return fmt.Sprintf("Tile (%d, %d) has a trap together with an item or stairs", x, y)
			}
		}
	}

	return ""
}

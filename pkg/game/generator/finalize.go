package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"

// Rows directly inside the top and bottom border
const (
	innerTopRow    = 1
	innerBottomRow = 0x1E
)

// resetInnerBoundaryTileRows wipes the rows next to the top and bottom border
func (c *GenerationContext) resetInnerBoundaryTileRows() {
	for x := 0; x < world.FloorWidth; x++ {
		for _, y := range []int{innerTopRow, innerBottomRow} {
			c.floor.ResetTile(x, y)
			if x == 0 || x == world.FloorWidth-1 {
				c.tile(x, y).Terrain.ImpassableWall = true
			}
		}
	}
}

// ensureImpassableTilesAreWalls turns every impassable tile back into wall
func (c *GenerationContext) ensureImpassableTilesAreWalls() {
	c.floor.ForEachTile(func(x, y int, t *world.Tile) {
		if t.Terrain.ImpassableWall {
			t.Terrain.Type = world.TerrainWall
		}
	})
}

// finalizeJunctions marks the room tile where each hallway tile meets a room
// and resolves the remaining hallway anchors
func (c *GenerationContext) finalizeJunctions() {
	c.floor.ForEachTile(func(x, y int, t *world.Tile) {
		if !t.IsOpen() {
			return
		}

		switch t.RoomIndex {
		case world.RoomNone:
			if j := c.junctionNeighbour(x, y); j != nil {
				j.Terrain.NaturalJunction = true
				if j.Terrain.Type == world.TerrainSecondary {
					j.Terrain.Type = world.TerrainNormal
				}
			}
		case world.RoomAnchor:
			t.RoomIndex = world.RoomNone
		}
	})
}

// junctionNeighbour returns the first neighbour of a hallway tile, checking
// left, up, down then right, that belongs to a room
func (c *GenerationContext) junctionNeighbour(x, y int) *world.Tile {
	candidates := [4][2]int{{x - 1, y}, {x, y - 1}, {x, y + 1}, {x + 1, y}}
	for _, p := range candidates {
		if n := c.floor.TileAt(p[0], p[1]); n != nil && n.RoomIndex != world.RoomNone {
			return n
		}
	}
	return nil
}

// Package world provides the fixed-size tile floor primitives shared by the
// generator and the debug tooling.
package world

// TerrainType is the base terrain of a tile
type TerrainType int

// Terrain types
const (
	TerrainWall TerrainType = iota
	TerrainNormal
	TerrainSecondary
	TerrainChasm
)

// String returns the string representation of a terrain type
func (t TerrainType) String() string {
	switch t {
	case TerrainWall:
		return "Wall"
	case TerrainNormal:
		return "Normal"
	case TerrainSecondary:
		return "Secondary"
	case TerrainChasm:
		return "Chasm"
	default:
		return "Unknown"
	}
}

// Room index sentinels
const (
	// RoomAnchor marks a hallway anchor that has not been resolved yet
	RoomAnchor = 0xFE
	// RoomNone marks a tile that belongs to no room (hallways and walls)
	RoomNone = 0xFF
)

// TerrainFlags describe the terrain of a tile
type TerrainFlags struct {
	Type TerrainType

	CornerCuttable        bool
	NaturalJunction       bool // room tile next to a hallway
	ImpassableWall        bool
	InKecleonShop         bool
	InMonsterHouse        bool
	Unbreakable           bool
	Stairs                bool
	KeyDoor               bool
	KeyDoorKeyLocked      bool
	KeyDoorEscortLocked   bool
	UnreachableFromStairs bool
}

// SpawnFlags mark what should be spawned on a tile
type SpawnFlags struct {
	Stairs      bool
	Item        bool
	Trap        bool
	Monster     bool
	SpecialTile bool

	// Structure marks, set by secondary structures
	StructureRoom bool // tile inside a room holding a secondary structure
	WarpTile      bool
	Divider       bool
}

// Tile is one floor position
type Tile struct {
	Terrain   TerrainFlags
	Spawn     SpawnFlags
	TextureID int
	RoomIndex int
}

// NewTile returns a wall tile that belongs to no room
func NewTile() Tile {
	return Tile{RoomIndex: RoomNone}
}

// IsOpen returns true if the tile has normal walkable terrain
func (t *Tile) IsOpen() bool {
	return t.Terrain.Type == TerrainNormal
}

// InRoom returns true if the tile carries a room or anchor index
func (t *Tile) InRoom() bool {
	return t.RoomIndex != RoomNone
}

// IsHallway returns true for open tiles outside any room
func (t *Tile) IsHallway() bool {
	return t.IsOpen() && t.RoomIndex == RoomNone
}

// ClearSpawns removes the stairs, item and trap spawn flags
func (t *Tile) ClearSpawns() {
	t.Spawn.Stairs = false
	t.Spawn.Item = false
	t.Spawn.Trap = false
}

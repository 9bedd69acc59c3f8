// Package generator builds dungeon floors: it partitions the floor into a grid,
// carves rooms and hallways, adds special features, places spawns and checks
// that the stairs can be reached.
package generator

import (
	"slices"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/random"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

// MaxGridSize is the storage size of the cell grid in each dimension
const MaxGridSize = 15

// Unset marks a spawn coordinate that has not been placed yet
const Unset = -1

// GridCell is one partition of the coarse placement grid.
// Bounds are half-open: [StartX, EndX) x [StartY, EndY).
type GridCell struct {
	StartX, StartY int
	EndX, EndY     int

	Invalid               bool
	IsRoom                bool // anchor when false
	Connected             bool
	HasSecondaryStructure bool
	KecleonShop           bool
	MonsterHouse          bool
	MazeRoom              bool
	Merged                bool // took part in a merge
	HasBeenMerged         bool // absorbed into a neighbour

	FlagImperfect          bool
	FlagSecondaryStructure bool

	ConnectedTo   [world.NumCardinals]bool
	ShouldConnect [world.NumCardinals]bool
}

// Width returns the width of the cell bounds
func (c *GridCell) Width() int {
	return c.EndX - c.StartX
}

// Height returns the height of the cell bounds
func (c *GridCell) Height() int {
	return c.EndY - c.StartY
}

// connectionCount returns how many directions the cell is connected in
func (c *GridCell) connectionCount() int {
	n := 0
	for _, ok := range c.ConnectedTo {
		if ok {
			n++
		}
	}
	return n
}

// isPlainRoom reports whether the cell is a connected room with no feature on it
func (c *GridCell) isPlainRoom() bool {
	return !c.Invalid && !c.HasBeenMerged && c.Connected && c.IsRoom && !c.HasSecondaryStructure
}

// Grid is the fixed-size cell storage. Only the first SizeX columns and SizeY rows are in use.
type Grid struct {
	cells        [MaxGridSize][MaxGridSize]GridCell
	SizeX, SizeY int
}

// Cell returns the cell at the given grid position. It panics when outside the storage.
func (g *Grid) Cell(x, y int) *GridCell {
	return &g.cells[x][y]
}

// invalidAt reports whether a position is outside the storage or flagged invalid
func (g *Grid) invalidAt(x, y int) bool {
	if x < 0 || x >= MaxGridSize || y < 0 || y >= MaxGridSize {
		return true
	}
	return g.cells[x][y].Invalid
}

// neighbour returns the cell next to (x, y) in direction d
func (g *Grid) neighbour(x, y int, d world.Cardinal) *GridCell {
	dx, dy := d.Delta()
	return &g.cells[x+dx][y+dy]
}

// connect links (x, y) with its neighbour in direction d on both sides
func (g *Grid) connect(x, y int, d world.Cardinal) {
	g.cells[x][y].ConnectedTo[d] = true
	g.neighbour(x, y, d).ConnectedTo[d.Opposite()] = true
}

// FloorGenerationStatus collects facts discovered while generating one floor
type FloorGenerationStatus struct {
	Layout    dungeon.FloorLayout
	FloorSize dungeon.FloorSize
	NumRooms  int

	SecondSpawn                 bool
	HasMonsterHouse             bool
	HasKecleonShop              bool
	HasMaze                     bool
	HasChasmsAsSecondaryTerrain bool
	IsInvalid                   bool
	NoEnemySpawn                bool

	StairsRoomIndex             int
	KecleonShopChance           int
	MonsterHouseChance          int
	SecondaryStructuresBudget   int
	HiddenStairsType            dungeon.HiddenStairsType
	HiddenStairsSpawnX          int
	HiddenStairsSpawnY          int
	NumTilesReachableFromStairs int

	KecleonShopMinX, KecleonShopMinY       int
	KecleonShopMaxX, KecleonShopMaxY       int
	KecleonShopMiddleX, KecleonShopMiddleY int
}

// GenerationInfo holds the spawn coordinates and counters produced by generation
type GenerationInfo struct {
	ForceCreateMonsterHouse bool
	MonsterHouseRoom        int
	FixedRoomID             int
	HiddenStairsType        dungeon.HiddenStairsType

	FloorGenerationAttempts int
	SpawnAttempts           int

	PlayerSpawnX, PlayerSpawnY             int
	StairsSpawnX, StairsSpawnY             int
	HiddenStairsSpawnX, HiddenStairsSpawnY int
}

// HasPlayerSpawn reports whether a player spawn was placed
func (i *GenerationInfo) HasPlayerSpawn() bool {
	return i.PlayerSpawnX != Unset && i.PlayerSpawnY != Unset
}

// HasStairs reports whether the stairs were placed
func (i *GenerationInfo) HasStairs() bool {
	return i.StairsSpawnX != Unset && i.StairsSpawnY != Unset
}

// GenerationContext owns all state of one generation run
type GenerationContext struct {
	floor *world.Floor
	rng   *random.DungeonRandom

	props     dungeon.FloorProperties
	dungeon   dungeon.Dungeon
	constants dungeon.GenerationConstants
	settings  dungeon.AdvancedGenerationSettings

	status FloorGenerationStatus
	info   GenerationInfo

	// Grid cell boundaries of the current layout, nil before one is chosen
	gridX, gridY []int

	observer   Observer
	verbosity  StepLevel
	fixedRooms FixedRoomLoader
}

func newContext(props dungeon.FloorProperties, d dungeon.Dungeon, opts Options) *GenerationContext {
	c := &GenerationContext{
		floor:      world.NewFloor(),
		rng:        random.New(opts.Seed),
		props:      props,
		dungeon:    d,
		constants:  dungeon.DefaultGenerationConstants(),
		settings:   dungeon.DefaultAdvancedGenerationSettings(),
		observer:   opts.Observer,
		verbosity:  opts.Verbosity,
		fixedRooms: opts.FixedRooms,
	}

	if opts.Constants != nil {
		c.constants = *opts.Constants
	}
	if opts.Settings != nil {
		c.settings = *opts.Settings
	}
	if c.fixedRooms == nil {
		c.fixedRooms = NoFixedRooms{}
	}

	c.info = GenerationInfo{
		MonsterHouseRoom:   world.RoomNone,
		PlayerSpawnX:       Unset,
		PlayerSpawnY:       Unset,
		StairsSpawnX:       Unset,
		StairsSpawnY:       Unset,
		HiddenStairsSpawnX: Unset,
		HiddenStairsSpawnY: Unset,
	}
	c.status.StairsRoomIndex = world.RoomNone
	c.status.HiddenStairsSpawnX = Unset
	c.status.HiddenStairsSpawnY = Unset
	c.status.KecleonShopMiddleX = Unset
	c.status.KecleonShopMiddleY = Unset

	return c
}

func (c *GenerationContext) tile(x, y int) *world.Tile {
	return c.floor.Tile(x, y)
}

// setGridBounds records the cell boundaries of the layout being built
func (c *GenerationContext) setGridBounds(xs, ys []int) {
	c.gridX = xs
	c.gridY = ys
}

// floorType classifies the floor from the dungeon snapshot and fixed room id
func (c *GenerationContext) floorType() dungeon.FloorType {
	if c.dungeon.Objective == dungeon.ObjectiveRescue && c.dungeon.Floor == c.dungeon.RescueFloor {
		return dungeon.FloorTypeRescue
	}
	if c.info.FixedRoomID > 0 && c.info.FixedRoomID <= maxFixedFloorID {
		return dungeon.FloorTypeFixed
	}
	return dungeon.FloorTypeNormal
}

// View is a read-only window onto a generation in progress.
// Every accessor returns a copy.
type View struct {
	c *GenerationContext
}

// Tile returns a copy of the tile at the given position
func (v View) Tile(x, y int) world.Tile {
	return *v.c.floor.Tile(x, y)
}

// Tiles returns a copy of the whole tile map
func (v View) Tiles() world.Tiles {
	return v.c.floor.Snapshot()
}

// Info returns a copy of the generation info
func (v View) Info() GenerationInfo {
	return v.c.info
}

// Status returns a copy of the floor generation status
func (v View) Status() FloorGenerationStatus {
	return v.c.status
}

// GridBounds returns the column and row boundaries of the current layout grid
func (v View) GridBounds() (xs, ys []int) {
	return slices.Clone(v.c.gridX), slices.Clone(v.c.gridY)
}

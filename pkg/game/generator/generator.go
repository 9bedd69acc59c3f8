package generator

import (
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

// LayoutGenerator builds the room and hallway layout of one floor shape
type LayoutGenerator interface {
	Name() string
	// SecondaryTerrain reports whether rivers and lakes are added after the layout
	SecondaryTerrain() bool
	// ForcesMonsterHouse reports whether enemies must fill a monster house
	ForcesMonsterHouse() bool

	generate(c *GenerationContext, sizeX, sizeY int)
}

// template is a LayoutGenerator backed by a build function
type template struct {
	name              string
	secondaryTerrain  bool
	forceMonsterHouse bool
	build             func(c *GenerationContext, sizeX, sizeY int)
}

func (t *template) Name() string {
	return t.name
}

func (t *template) SecondaryTerrain() bool {
	return t.secondaryTerrain
}

func (t *template) ForcesMonsterHouse() bool {
	return t.forceMonsterHouse
}

func (t *template) generate(c *GenerationContext, sizeX, sizeY int) {
	t.build(c, sizeX, sizeY)
}

// Available layouts
var (
	Standard         LayoutGenerator = &template{name: "standard", secondaryTerrain: true, build: (*GenerationContext).generateStandardFloor}
	Small            LayoutGenerator = &template{name: "small", secondaryTerrain: true, build: partialFloor(dungeon.FloorSizeSmall)}
	Medium           LayoutGenerator = &template{name: "medium", secondaryTerrain: true, build: partialFloor(dungeon.FloorSizeMedium)}
	OneRoomMH        LayoutGenerator = &template{name: "one-room-monster-house", forceMonsterHouse: true, build: ignoreSize((*GenerationContext).generateOneRoomMonsterHouseFloor)}
	OuterRing        LayoutGenerator = &template{name: "outer-ring", secondaryTerrain: true, build: ignoreSize((*GenerationContext).generateOuterRingFloor)}
	Crossroads       LayoutGenerator = &template{name: "crossroads", secondaryTerrain: true, build: ignoreSize((*GenerationContext).generateCrossroadsFloor)}
	TwoRoomsMH       LayoutGenerator = &template{name: "two-rooms-monster-house", forceMonsterHouse: true, build: ignoreSize((*GenerationContext).generateTwoRoomsWithMonsterHouseFloor)}
	Line             LayoutGenerator = &template{name: "line", secondaryTerrain: true, build: ignoreSize((*GenerationContext).generateLineFloor)}
	Cross            LayoutGenerator = &template{name: "cross", build: ignoreSize((*GenerationContext).generateCrossFloor)}
	Beetle           LayoutGenerator = &template{name: "beetle", build: ignoreSize((*GenerationContext).generateBeetleFloor)}
	OuterRooms       LayoutGenerator = &template{name: "outer-rooms", secondaryTerrain: true, build: (*GenerationContext).generateOuterRoomsFloor}
	DefaultGenerator                 = Standard
)

var layoutGenerators = map[dungeon.FloorLayout]LayoutGenerator{
	dungeon.LayoutLarge:                    Standard,
	dungeon.LayoutLarge0x8:                 Standard,
	dungeon.LayoutSmall:                    Small,
	dungeon.LayoutMedium:                   Medium,
	dungeon.LayoutOneRoomMonsterHouse:      OneRoomMH,
	dungeon.LayoutOuterRing:                OuterRing,
	dungeon.LayoutCrossroads:               Crossroads,
	dungeon.LayoutTwoRoomsWithMonsterHouse: TwoRoomsMH,
	dungeon.LayoutLine:                     Line,
	dungeon.LayoutCross:                    Cross,
	dungeon.LayoutBeetle:                   Beetle,
	dungeon.LayoutOuterRooms:               OuterRooms,
}

// GeneratorFor returns the generator of a layout. Layouts without a template
// of their own use the standard one.
func GeneratorFor(layout dungeon.FloorLayout) LayoutGenerator {
	if g, ok := layoutGenerators[layout]; ok {
		return g
	}
	return DefaultGenerator
}

func ignoreSize(fn func(c *GenerationContext)) func(c *GenerationContext, sizeX, sizeY int) {
	return func(c *GenerationContext, _, _ int) {
		fn(c)
	}
}

// partialFloor builds a standard floor on four columns, of which only the
// left part is usable for the given size class
func partialFloor(size dungeon.FloorSize) func(c *GenerationContext, sizeX, sizeY int) {
	return func(c *GenerationContext, _, _ int) {
		sizeY := c.rng.RandInt(2) + 2
		c.status.FloorSize = size
		c.generateStandardFloor(4, sizeY)
	}
}

// decorate runs the feature passes shared by most layouts
func (c *GenerationContext) decorate(g *Grid, maze, structures bool) {
	if maze {
		c.generateMazeRoom(g, c.props.MazeRoomChance)
	}
	c.generateKecleonShop(g, c.status.KecleonShopChance)
	c.generateMonsterHouse(g, c.status.MonsterHouseChance)
	c.generateExtraHallways(g, c.props.NumExtraHallways)
	c.generateRoomImperfections(g)
	if structures {
		c.generateSecondaryStructures(g)
	}
}

// connectRandomly links cells by a random walk from a random cursor
func (c *GenerationContext) connectRandomly(g *Grid) {
	cx := c.rng.RandInt(g.SizeX)
	cy := c.rng.RandInt(g.SizeY)
	c.assignGridCellConnections(g, cx, cy)
}

func (c *GenerationContext) generateStandardFloor(sizeX, sizeY int) {
	xs, ys := gridPositions(sizeX, sizeY)
	c.setGridBounds(xs, ys)

	g := c.initGrid(sizeX, sizeY)
	c.assignRooms(g, c.props.RoomDensity)
	c.createRoomsAndAnchors(g, xs, ys, c.props.RoomFlags)

	c.connectRandomly(g)
	c.createGridCellConnections(g, false)
	c.ensureConnectedGrid(g)

	c.decorate(g, true, true)
}

// Bounds of the single room of a one room floor
const (
	oneRoomStartX = 2
	oneRoomStartY = 2
	oneRoomEndX   = 0x36
	oneRoomEndY   = 0x1E
)

func (c *GenerationContext) generateOneRoomMonsterHouseFloor() {
	g := c.initGrid(1, 1)

	cell := g.Cell(0, 0)
	cell.StartX, cell.StartY = oneRoomStartX, oneRoomStartY
	cell.EndX, cell.EndY = oneRoomEndX, oneRoomEndY
	cell.IsRoom = true
	cell.Connected = true
	cell.Invalid = false

	c.carveRect(cell.StartX, cell.StartY, cell.EndX, cell.EndY, 0)
	c.emit(StepMajor, EventOneRoomMonsterHouseFloor)

	c.generateMonsterHouse(g, guaranteedChance)
}

// carveFixedRoom carves a random room inside the fixed grid cell (x, y).
// minX and minY bound the room size and offset is the margin from the cell edge.
func (c *GenerationContext) carveFixedRoom(g *Grid, x, y, minX, minY, offset, room int) {
	rangeX := c.gridX[x+1] - c.gridX[x] - 3
	rangeY := c.gridY[y+1] - c.gridY[y] - 3

	sizeX := c.rng.RandRange(minX, rangeX)
	sizeY := c.rng.RandRange(minY, rangeY)
	startX := c.rng.RandInt(rangeX-sizeX) + c.gridX[x] + offset
	startY := c.rng.RandInt(rangeY-sizeY) + c.gridY[y] + offset

	cell := g.Cell(x, y)
	cell.StartX, cell.StartY = startX, startY
	cell.EndX, cell.EndY = startX+sizeX, startY+sizeY
	c.carveRect(cell.StartX, cell.StartY, cell.EndX, cell.EndY, room)

	c.emit(StepMinor, EventCreateRoom)
}

// placeFixedAnchor opens a hallway anchor tile inside the fixed grid cell (x, y)
func (c *GenerationContext) placeFixedAnchor(g *Grid, x, y int) {
	px := c.rng.RandRange(c.gridX[x]+1, c.gridX[x+1]-2)
	py := c.rng.RandRange(c.gridY[y]+1, c.gridY[y+1]-2)

	// Keep the column next to the floor edge walled
	px = min(max(px, 2), world.FloorWidth-3)

	cell := g.Cell(x, y)
	cell.StartX, cell.StartY = px, py
	cell.EndX, cell.EndY = px+1, py+1

	t := c.tile(px, py)
	t.Terrain.Type = world.TerrainNormal
	t.RoomIndex = world.RoomNone

	c.emit(StepMinor, EventCreateAnchor)
}

// carveFixedGrid creates every valid room and anchor of a fixed layout row by row
func (c *GenerationContext) carveFixedGrid(g *Grid) {
	room := 0
	g.forEachCellByRow(func(x, y int, cell *GridCell) {
		if cell.Invalid {
			return
		}
		if cell.IsRoom {
			c.carveFixedRoom(g, x, y, 5, 4, 2, room)
			room++
			return
		}
		c.placeFixedAnchor(g, x, y)
	})
}

// setRoomMask makes every cell a room when isRoom returns true and an anchor otherwise
func (g *Grid) setRoomMask(isRoom func(x, y int) bool) {
	g.forEachCell(func(x, y int, cell *GridCell) {
		cell.IsRoom = isRoom(x, y)
	})
}

// invalidateCorners marks the four corner cells of the grid invalid
func (g *Grid) invalidateCorners() {
	g.Cell(0, 0).Invalid = true
	g.Cell(0, g.SizeY-1).Invalid = true
	g.Cell(g.SizeX-1, 0).Invalid = true
	g.Cell(g.SizeX-1, g.SizeY-1).Invalid = true
}

// chainRow connects the cells from x0 to x1 of row y left to right
func (g *Grid) chainRow(y, x0, x1 int) {
	for x := x0; x < x1; x++ {
		g.connect(x, y, world.CardinalRight)
	}
}

// chainColumn connects the cells from y0 to y1 of column x top to bottom
func (g *Grid) chainColumn(x, y0, y1 int) {
	for y := y0; y < y1; y++ {
		g.connect(x, y, world.CardinalDown)
	}
}

func (g *Grid) onEdge(x, y int) bool {
	return x == 0 || y == 0 || x == g.SizeX-1 || y == g.SizeY-1
}

func (c *GenerationContext) generateOuterRingFloor() {
	xs := []int{0, 5, 0x10, 0x1C, 0x27, 0x33, 0x38}
	ys := []int{2, 7, 0x10, 0x19, 0x1E}
	c.setGridBounds(xs, ys)

	g := c.initGrid(6, 4)
	g.setRoomMask(func(x, y int) bool { return !g.onEdge(x, y) })
	c.carveFixedGrid(g)
	c.emit(StepMajor, EventOuterRingFloor)

	g.chainRow(0, 0, g.SizeX-1)
	g.chainColumn(0, 0, g.SizeY-1)
	g.chainRow(g.SizeY-1, 0, g.SizeX-1)
	g.chainColumn(g.SizeX-1, 0, g.SizeY-1)

	c.connectRandomly(g)
	c.createGridCellConnections(g, false)
	c.ensureConnectedGrid(g)

	c.decorate(g, false, false)
}

func (c *GenerationContext) generateCrossroadsFloor() {
	xs := []int{0, 0xB, 0x16, 0x21, 0x2C, 0x38}
	ys := []int{1, 9, 0x10, 0x17, 0x1F}
	c.setGridBounds(xs, ys)

	g := c.initGrid(5, 4)
	g.setRoomMask(g.onEdge)
	g.invalidateCorners()
	c.carveFixedGrid(g)
	c.emit(StepMajor, EventCrossroadsFloor)

	for x := 1; x < g.SizeX-1; x++ {
		g.chainColumn(x, 0, g.SizeY-1)
	}
	for y := 1; y < g.SizeY-1; y++ {
		g.chainRow(y, 0, g.SizeX-1)
	}

	c.createGridCellConnections(g, true)
	c.ensureConnectedGrid(g)

	c.decorate(g, false, false)
}

func (c *GenerationContext) generateTwoRoomsWithMonsterHouseFloor() {
	xs := []int{2, 0x1C, 0x36}
	ys := []int{2, 0x1E}
	c.setGridBounds(xs, ys)

	g := c.initGrid(2, 1)
	for x := 0; x < g.SizeX; x++ {
		c.carveFixedRoom(g, x, 0, 10, 16, 1, x)
	}
	c.emit(StepMajor, EventTwoRoomsWithMonsterHouseFloor)

	g.connect(0, 0, world.CardinalRight)
	c.createGridCellConnections(g, false)

	c.generateMonsterHouse(g, guaranteedChance)
}

func (c *GenerationContext) generateLineFloor() {
	xs := []int{0, 0xB, 0x16, 0x21, 0x2C, 0x38}
	ys := []int{4, 0xF}
	c.setGridBounds(xs, ys)

	g := c.initGrid(5, 1)
	c.assignRooms(g, c.props.RoomDensity)
	c.createRoomsAndAnchors(g, xs, ys, c.props.RoomFlags)

	c.connectRandomly(g)
	c.createGridCellConnections(g, true)
	c.ensureConnectedGrid(g)

	c.decorate(g, false, false)
}

func (c *GenerationContext) generateCrossFloor() {
	xs := []int{0xB, 0x16, 0x21, 0x2C}
	ys := []int{2, 0xB, 0x14, 0x1E}
	c.setGridBounds(xs, ys)

	g := c.initGrid(3, 3)
	g.invalidateCorners()
	c.createRoomsAndAnchors(g, xs, ys, c.props.RoomFlags)

	g.chainColumn(1, 0, 2)
	g.chainRow(1, 0, 2)

	c.createGridCellConnections(g, true)
	c.ensureConnectedGrid(g)

	c.decorate(g, false, false)
}

func (c *GenerationContext) generateBeetleFloor() {
	xs := []int{5, 0xF, 0x23, 0x32}
	ys := []int{2, 0xB, 0x14, 0x1E}
	c.setGridBounds(xs, ys)

	g := c.initGrid(3, 3)
	c.createRoomsAndAnchors(g, xs, ys, c.props.RoomFlags)

	for y := 0; y < g.SizeY; y++ {
		g.chainRow(y, 0, g.SizeX-1)
	}
	c.createGridCellConnections(g, true)

	c.mergeRoomsVertically(g, 1, 0, 1)
	c.mergeRoomsVertically(g, 1, 0, 2)
	c.emit(StepMajor, EventMergeRoomsVertically)

	c.ensureConnectedGrid(g)

	c.decorate(g, false, false)
}

func (c *GenerationContext) generateOuterRoomsFloor(sizeX, sizeY int) {
	xs, ys := gridPositions(sizeX, sizeY)
	c.setGridBounds(xs, ys)

	g := c.initGrid(sizeX, sizeY)
	g.forEachCell(func(x, y int, cell *GridCell) {
		if !g.onEdge(x, y) {
			cell.Invalid = true
		}
	})
	c.createRoomsAndAnchors(g, xs, ys, c.props.RoomFlags)

	top, bottom := 0, sizeY-1
	left, right := 0, sizeX-1

	if c.settings.FixGenerateOuterRoomsFloorError {
		for x := 0; x < sizeX; x++ {
			if x > 0 {
				g.Cell(x, top).ConnectedTo[world.CardinalLeft] = true
				g.Cell(x, bottom).ConnectedTo[world.CardinalLeft] = true
			}
			if x < sizeX-1 {
				g.Cell(x+1, top).ConnectedTo[world.CardinalRight] = true
				g.Cell(x+1, bottom).ConnectedTo[world.CardinalRight] = true
			}
		}
		for y := 0; y < sizeY; y++ {
			if y > 0 {
				g.Cell(left, y).ConnectedTo[world.CardinalUp] = true
				g.Cell(right, y).ConnectedTo[world.CardinalUp] = true
			}
			if y < sizeY-1 {
				g.Cell(left, y+1).ConnectedTo[world.CardinalDown] = true
				g.Cell(right, y+1).ConnectedTo[world.CardinalDown] = true
			}
		}
	} else {
		// Unpatched, the flags point the wrong way and stop one cell short
		for x := 0; x < sizeX; x++ {
			if x > 0 {
				g.Cell(x, top).ConnectedTo[world.CardinalRight] = true
				g.Cell(x, bottom).ConnectedTo[world.CardinalRight] = true
			}
			if x < sizeX-2 {
				g.Cell(x+1, top).ConnectedTo[world.CardinalLeft] = true
				g.Cell(x+1, bottom).ConnectedTo[world.CardinalLeft] = true
			}
		}
		for y := 0; y < sizeY; y++ {
			if y > 0 {
				g.Cell(left, y).ConnectedTo[world.CardinalUp] = true
				g.Cell(right, y).ConnectedTo[world.CardinalUp] = true
			}
			if y < sizeY-2 {
				g.Cell(left, y).ConnectedTo[world.CardinalDown] = true
				g.Cell(right, y).ConnectedTo[world.CardinalDown] = true
			}
		}
	}

	c.createGridCellConnections(g, false)
	c.ensureConnectedGrid(g)

	c.decorate(g, true, true)
}

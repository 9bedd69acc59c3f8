package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"

// imperfectionCorner is where a room starts being eaten away and which of its
// cardinal neighbours are expected to be open there
type imperfectionCorner struct {
	moves      [2][2]int
	expectOpen map[world.Direction]bool
}

// Corners in order: top-left, top-right, bottom-right, bottom-left
var imperfectionCorners = [4]imperfectionCorner{
	{moves: [2][2]int{{0, 1}, {1, 0}}, expectOpen: map[world.Direction]bool{world.DirDown: true, world.DirRight: true}},
	{moves: [2][2]int{{-1, 0}, {0, 1}}, expectOpen: map[world.Direction]bool{world.DirDown: true, world.DirLeft: true}},
	{moves: [2][2]int{{0, -1}, {-1, 0}}, expectOpen: map[world.Direction]bool{world.DirUp: true, world.DirLeft: true}},
	{moves: [2][2]int{{1, 0}, {0, -1}}, expectOpen: map[world.Direction]bool{world.DirRight: true, world.DirUp: true}},
}

func (cell *GridCell) canHoldImperfections() bool {
	return !cell.Invalid && !cell.HasBeenMerged && !cell.Merged && cell.IsRoom && cell.Connected &&
		!cell.HasSecondaryStructure && !cell.MazeRoom && cell.FlagImperfect
}

// cornerPoint returns the tile of the given corner inside the room
func (cell *GridCell) cornerPoint(corner int) (int, int) {
	switch corner {
	case 0:
		return cell.StartX, cell.StartY
	case 1:
		return cell.EndX - 1, cell.StartY
	case 2:
		return cell.EndX - 1, cell.EndY - 1
	default:
		return cell.StartX, cell.EndY - 1
	}
}

func (cell *GridCell) contains(x, y int) bool {
	return x >= cell.StartX && x < cell.EndX && y >= cell.StartY && y < cell.EndY
}

// generateRoomImperfections walls in tiles from the corners of flagged rooms
// so they look less rectangular
func (c *GenerationContext) generateRoomImperfections(g *Grid) {
	added := false

	g.forEachCell(func(x, y int, cell *GridCell) {
		if !cell.canHoldImperfections() {
			return
		}
		if c.rng.RandInt(100) < c.constants.NoImperfectionsChance {
			return
		}

		addedHere := false
		length := max((cell.Width()+cell.Height())/4, 1)

		for counter := 0; counter < length; counter++ {
			for i := 0; i < 2; i++ {
				if c.eatCorner(cell, c.rng.RandInt(4), i) {
					addedHere = true
				}
			}
		}

		if addedHere {
			added = true
			c.emit(StepMinor, EventGenerateRoomImperfection)
		}
	})

	if added {
		c.emit(StepMajor, EventGenerateRoomImperfections)
	}
}

// eatCorner walks from a room corner to the first open tile and turns it into
// wall if it is away from hallways and sits on the room edge
func (c *GenerationContext) eatCorner(cell *GridCell, corner, i int) bool {
	px, py := cell.cornerPoint(corner)
	move := imperfectionCorners[corner].moves[i]

	for v := 0; v < 10; v++ {
		if !cell.contains(px, py) {
			return false
		}

		if !c.tile(px, py).IsOpen() {
			px += move[0]
			py += move[1]
			continue
		}

		if c.nearHallway(px, py) {
			return false
		}

		expect := imperfectionCorners[corner].expectOpen
		for _, d := range []world.Direction{world.DirDown, world.DirRight, world.DirUp, world.DirLeft} {
			dx, dy := d.Delta()
			if c.tile(px+dx, py+dy).IsOpen() != expect[d] {
				return false
			}
		}

		c.tile(px, py).Terrain.Type = world.TerrainWall
		return true
	}

	return false
}

// nearHallway reports whether a hallway tile lies within two tiles of (x, y)
func (c *GenerationContext) nearHallway(x, y int) bool {
	for _, d := range world.AllDirections() {
		dx, dy := d.Delta()
		nx, ny := x+dx, y+dy
		for ox := -1; ox <= 1; ox++ {
			for oy := -1; oy <= 1; oy++ {
				if c.tile(nx+ox, ny+oy).IsHallway() {
					return true
				}
			}
		}
	}
	return false
}

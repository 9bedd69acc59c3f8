package generator

import "github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"

// Order in which cell connections are turned into hallways
var hallwayOrder = []world.Cardinal{world.CardinalUp, world.CardinalDown, world.CardinalLeft, world.CardinalRight}

// Merge direction chosen by the second merge roll
var mergeDirections = [4]world.Cardinal{world.CardinalLeft, world.CardinalUp, world.CardinalRight, world.CardinalDown}

// inBounds reports whether the neighbour of (x, y) in direction d is inside the in-use grid
func (g *Grid) inBounds(x, y int, d world.Cardinal) bool {
	switch d {
	case world.CardinalRight:
		return x < g.SizeX-1
	case world.CardinalUp:
		return y > 0
	case world.CardinalLeft:
		return x > 0
	case world.CardinalDown:
		return y < g.SizeY-1
	default:
		return false
	}
}

// assignGridCellConnections links cells with a random walk that keeps its
// heading half of the time, starting at (cx, cy). Unless dead ends are
// allowed, anchors with a single connection are then extended.
func (c *GenerationContext) assignGridCellConnections(g *Grid, cx, cy int) {
	dir := world.Cardinal(c.rng.RandInt(4))

	for i := 0; i < c.props.FloorConnectivity; i++ {
		test := c.rng.RandInt(8)
		next := world.Cardinal(c.rng.RandInt(4))
		if test < 4 {
			dir = next
		}

		turns := 0
		for !g.inBounds(cx, cy, dir) {
			if turns == world.NumCardinals {
				return
			}
			dir = dir.Next()
			turns++
		}

		dx, dy := dir.Delta()
		if !g.Cell(cx+dx, cy+dy).Invalid {
			g.connect(cx, cy, dir)
			cx += dx
			cy += dy
		}
	}

	if !c.props.AllowDeadEnds {
		c.removeDeadEnds(g)
	}
}

// removeDeadEnds gives every anchor with exactly one connection a second one.
// Unpatched, the target check always looks at the cell to the right.
func (c *GenerationContext) removeDeadEnds(g *Grid) {
	for more := true; more; {
		more = false

		// The scan position jumps along with each new connection
		for y := 0; y < g.SizeY; y++ {
			for x := 0; x < g.SizeX; x++ {
				cell := g.Cell(x, y)
				if cell.Invalid || cell.IsRoom || cell.connectionCount() != 1 {
					continue
				}

				dir := world.Cardinal(c.rng.RandInt(4))
				ok := false
				for i := 0; i < 8; i++ {
					if g.inBounds(x, y, dir) && !cell.ConnectedTo[dir] {
						ok = true
						break
					}
					dir = dir.Next()
				}
				if !ok {
					continue
				}

				dx, dy := dir.Delta()
				checkX, checkY := x+dx, y+dy
				if !c.settings.FixDeadEndValidationError {
					checkX, checkY = x+1, y
				}
				if g.invalidAt(checkX, checkY) {
					continue
				}

				g.connect(x, y, dir)
				if dir != world.CardinalDown {
					more = true
				}
				x += dx
				y += dy
			}
		}
	}
}

// neighbourPoint picks where a hallway enters the neighbour cell: the anchor
// tile, or a random interior coordinate of a room
func (c *GenerationContext) neighbourPoint(other *GridCell, vertical bool) int {
	switch {
	case vertical && !other.IsRoom:
		return other.StartX
	case vertical:
		return c.rng.RandRange(other.StartX+1, other.EndX-1)
	case !other.IsRoom:
		return other.StartY
	default:
		return c.rng.RandRange(other.StartY+1, other.EndY-1)
	}
}

// createGridCellConnections carves a hallway for every connection and then,
// unless disabled, merges some pairs of neighbouring rooms
func (c *GenerationContext) createGridCellConnections(g *Grid, disableMerge bool) {
	g.forEachCellByRow(func(x, y int, cell *GridCell) {
		if cell.Invalid {
			cell.ShouldConnect = [world.NumCardinals]bool{}
			return
		}

		if x == 0 {
			cell.ConnectedTo[world.CardinalLeft] = false
		}
		if y == 0 {
			cell.ConnectedTo[world.CardinalUp] = false
		}
		if x == g.SizeX-1 {
			cell.ConnectedTo[world.CardinalRight] = false
		}
		if y == g.SizeY-1 {
			cell.ConnectedTo[world.CardinalDown] = false
		}
		cell.ShouldConnect = cell.ConnectedTo
	})

	g.forEachCell(func(x, y int, cell *GridCell) {
		if cell.Invalid {
			return
		}

		px, py := cell.StartX, cell.StartY
		if cell.IsRoom {
			px = c.rng.RandRange(cell.StartX+1, cell.EndX-1)
			py = c.rng.RandRange(cell.StartY+1, cell.EndY-1)
		}

		for _, d := range hallwayOrder {
			if !cell.ShouldConnect[d] {
				continue
			}

			other := g.neighbour(x, y, d)
			if !other.Invalid {
				vertical := isVertical(d)
				to := c.neighbourPoint(other, vertical)
				from := py
				if vertical {
					from = px
				}
				c.drawConnection(g, x, y, d, from, to)
				c.emit(StepMinor, EventCreateHallway)
			}

			cell.ShouldConnect[d] = false
			other.ShouldConnect[d.Opposite()] = false
			cell.Connected = true
			other.Connected = true
		}
	})

	if !disableMerge {
		c.mergeRooms(g)
	}

	c.emit(StepMajor, EventCreateGridCellConnections)
}

// canMerge reports whether a cell may take part in a room merge
func (cell *GridCell) canMerge() bool {
	return !cell.Invalid && cell.Connected && !cell.Merged && !cell.HasSecondaryStructure && cell.IsRoom
}

func (c *GenerationContext) mergeRooms(g *Grid) {
	g.forEachCell(func(x, y int, cell *GridCell) {
		chance := c.rng.RandInt(100)
		if chance >= c.constants.MergeRoomsChance || !cell.canMerge() {
			return
		}

		d := mergeDirections[c.rng.RandInt(4)]
		if !g.inBounds(x, y, d) {
			return
		}
		other := g.neighbour(x, y, d)
		if !other.canMerge() {
			return
		}

		first, second := cell, other
		if d == world.CardinalLeft || d == world.CardinalUp {
			first, second = other, cell
		}

		room := c.tile(cell.StartX, cell.StartY).RoomIndex
		c.absorbCell(other, cell, first, second, !isVertical(d), room)
		c.emit(StepMinor, EventMergeRoom)
	})
}

// absorbCell carves the rectangle spanning first and second (second lies right
// of or below first) with the given room index. keep takes the new bounds and
// gone is retired.
func (c *GenerationContext) absorbCell(keep, gone, first, second *GridCell, horizontal bool, room int) {
	var x0, y0, x1, y1 int
	if horizontal {
		x0, x1 = first.StartX, second.EndX
		y0, y1 = min(first.StartY, second.StartY), max(first.EndY, second.EndY)
	} else {
		x0, x1 = min(first.StartX, second.StartX), max(first.EndX, second.EndX)
		y0, y1 = first.StartY, second.EndY
	}

	c.carveRect(x0, y0, x1, y1, room)

	keep.StartX, keep.StartY = x0, y0
	keep.EndX, keep.EndY = x1, y1
	keep.Merged = true

	gone.Merged = true
	gone.Connected = false
	gone.HasBeenMerged = true
}

// mergeRoomsVertically joins the room at (x, y) with the room dy rows below it
func (c *GenerationContext) mergeRoomsVertically(g *Grid, x, y, dy int) {
	keep := g.Cell(x, y)
	gone := g.Cell(x, y+dy)
	room := c.tile(keep.StartX, keep.StartY).RoomIndex

	c.absorbCell(keep, gone, keep, gone, false, room)
	c.emit(StepMinor, EventMergeRoomVertically)
}

// ensureConnectedGrid hooks every unconnected room up to a connected
// neighbour, and walls in the anchors and rooms that stay unconnected
func (c *GenerationContext) ensureConnectedGrid(g *Grid) {
	changed := false

	g.forEachCell(func(x, y int, cell *GridCell) {
		if cell.Invalid || cell.Connected || cell.HasBeenMerged {
			return
		}

		if !cell.IsRoom || cell.HasSecondaryStructure {
			t := c.tile(cell.StartX, cell.StartY)
			t.Terrain.Type = world.TerrainWall
			t.RoomIndex = world.RoomNone
			t.ClearSpawns()

			c.emit(StepMinor, EventRemoveUnconnectedAnchor)
			changed = true
			return
		}

		fromX := c.rng.RandRange(cell.StartX+1, cell.EndX-1)
		fromY := c.rng.RandRange(cell.StartY+1, cell.EndY-1)

		for _, d := range hallwayOrder {
			if !g.inBounds(x, y, d) {
				continue
			}
			other := g.neighbour(x, y, d)
			if other.Invalid || other.Merged || !other.Connected {
				continue
			}

			toX, toY := other.StartX, other.StartY
			if other.IsRoom {
				toX = c.rng.RandRange(other.StartX+1, other.EndX-1)
				toY = c.rng.RandRange(other.StartY+1, other.EndY-1)
			}

			if isVertical(d) {
				c.drawConnection(g, x, y, d, fromX, toX)
			} else {
				c.drawConnection(g, x, y, d, fromY, toY)
			}

			cell.Connected = true
			g.connect(x, y, d)

			c.emit(StepMinor, EventEnsureConnectedHallway)
			changed = true
			return
		}
	})

	g.forEachCell(func(x, y int, cell *GridCell) {
		if cell.Invalid || cell.HasBeenMerged || cell.Connected {
			return
		}

		for tx := cell.StartX; tx < cell.EndX; tx++ {
			for ty := cell.StartY; ty < cell.EndY; ty++ {
				t := c.tile(tx, ty)
				t.Terrain.Type = world.TerrainWall
				t.ClearSpawns()
				t.RoomIndex = world.RoomNone
			}
		}

		if cell.IsRoom {
			if cell.Width() > 0 && cell.Height() > 0 {
				changed = true
			}
			c.emit(StepMinor, EventRemoveUnconnectedRoom)
		}
	})

	if changed {
		c.emit(StepMajor, EventEnsureConnectedGrid)
	}
}

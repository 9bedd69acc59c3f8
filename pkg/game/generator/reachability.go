package generator

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
)

// blocksWalk reports whether a tile stops movement, including diagonal steps
// past its corner
func blocksWalk(t *world.Tile) bool {
	return !t.IsOpen() && !t.Terrain.CornerCuttable
}

// blocksEntry reports whether a tile cannot be entered at all
func blocksEntry(t *world.Tile) bool {
	return blocksWalk(t) || (t.Terrain.Type == world.TerrainSecondary && !t.Terrain.CornerCuttable)
}

// reachableFrom walks the floor from (x, y) in all eight directions. A
// diagonal step needs both tiles it cuts past to be passable.
func (c *GenerationContext) reachableFrom(x, y int) *mapset.Set[point] {
	visited := mapset.New[point]()
	frontier := queue.New[point]()

	start := point{x, y}
	visited.Put(start)
	frontier.Enqueue(start)

	for !frontier.Empty() {
		p := frontier.Dequeue()

		for _, d := range world.AllDirections() {
			dx, dy := d.Delta()
			next := point{p.x + dx, p.y + dy}

			t := c.floor.TileAt(next.x, next.y)
			if t == nil || blocksEntry(t) || visited.Has(next) {
				continue
			}
			if !d.IsCardinal() && (blocksWalk(c.tile(p.x, next.y)) || blocksWalk(c.tile(next.x, p.y))) {
				continue
			}

			visited.Put(next)
			frontier.Enqueue(next)
		}
	}

	return &visited
}

// stairsAlwaysReachable reports whether every enterable tile can be walked to
// from the stairs at (x, y). Unbreakable tiles are allowed to be cut off.
// With mark set it instead flags every unreachable tile and returns true.
func (c *GenerationContext) stairsAlwaysReachable(x, y int, mark bool) bool {
	if mark {
		c.floor.ForEachTile(func(_, _ int, t *world.Tile) {
			t.Terrain.UnreachableFromStairs = false
		})
	}

	visited := c.reachableFrom(x, y)
	c.status.NumTilesReachableFromStairs = visited.Size()

	ok := true
	c.floor.ForEachTile(func(tx, ty int, t *world.Tile) {
		if !ok || blocksEntry(t) || visited.Has(point{tx, ty}) {
			return
		}
		if mark {
			t.Terrain.UnreachableFromStairs = true
		} else if !t.Terrain.Unbreakable {
			ok = false
		}
	})

	return ok
}

// Package devtools provides developer tools for inspecting generated floors.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/generator"
)

// Map symbols
const (
	SymbolStairs       = '='
	SymbolShop         = 'K'
	SymbolItem         = 'I'
	SymbolMonster      = 'M'
	SymbolTrap         = 'T'
	SymbolHallway      = 'P'
	SymbolAnchor       = 'A'
	SymbolMonsterHouse = 'Z'
	SymbolRoom         = 'X'
	SymbolGridBorder   = '\\'
	SymbolWall         = '-'
	SymbolSecondary    = 'v'
	SymbolChasm        = 'C'
)

// legend lists every symbol with its label key, in the order it is printed
var legend = []struct {
	symbol rune
	key    string
}{
	{SymbolStairs, "stairs"},
	{SymbolShop, "kecleon shop"},
	{SymbolItem, "item"},
	{SymbolMonster, "monster"},
	{SymbolTrap, "trap"},
	{SymbolHallway, "hallway"},
	{SymbolAnchor, "hallway anchor"},
	{SymbolMonsterHouse, "monster house"},
	{SymbolRoom, "room"},
	{SymbolGridBorder, "wall on a grid cell border"},
	{SymbolWall, "wall"},
	{SymbolSecondary, "secondary terrain"},
	{SymbolChasm, "chasm"},
}

// Symbol returns the map character of a tile. border marks a tile lying on a
// grid cell boundary, which only changes how walls are drawn.
func Symbol(t *world.Tile, border bool) rune {
	switch t.Terrain.Type {
	case world.TerrainNormal:
		switch {
		case t.Spawn.Stairs:
			return SymbolStairs
		case t.Terrain.InKecleonShop:
			return SymbolShop
		case t.Spawn.Item:
			return SymbolItem
		case t.Spawn.Monster:
			return SymbolMonster
		case t.Spawn.Trap:
			return SymbolTrap
		case t.RoomIndex == world.RoomNone:
			return SymbolHallway
		case t.RoomIndex == world.RoomAnchor:
			return SymbolAnchor
		case t.Terrain.InMonsterHouse:
			return SymbolMonsterHouse
		default:
			return SymbolRoom
		}
	case world.TerrainWall:
		if border {
			return SymbolGridBorder
		}
		return SymbolWall
	case world.TerrainSecondary:
		return SymbolSecondary
	default:
		return SymbolChasm
	}
}

// onBoundary reports whether v lies on one of the boundaries or right before it
func onBoundary(v int, bounds []int) bool {
	for _, b := range bounds {
		if v == b-1 || v == b {
			return true
		}
	}
	return false
}

// writeMap writes one line per row with the symbols separated by spaces.
// style may be nil for plain output.
func writeMap(w io.Writer, tiles *world.Tiles, xs, ys []int, style func(r rune) string) error {
	var line strings.Builder
	for y := 0; y < world.FloorHeight; y++ {
		line.Reset()
		borderY := onBoundary(y, ys)

		for x := 0; x < world.FloorWidth; x++ {
			if x > 0 {
				line.WriteByte(' ')
			}
			r := Symbol(&tiles[x][y], borderY || onBoundary(x, xs))
			if style != nil {
				line.WriteString(style(r))
			} else {
				line.WriteRune(r)
			}
		}

		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

// MapString renders the floor one character per tile. Walls on the grid
// boundaries xs and ys are drawn as a backslash; nil boundaries skip the overlay.
func MapString(tiles *world.Tiles, xs, ys []int) string {
	var sb strings.Builder
	writeMap(&sb, tiles, xs, ys, nil)
	return sb.String()
}

// Palette maps map symbols to colour styles. Symbols without an entry are printed plain.
type Palette map[rune]color.Style

// DefaultPalette returns the colours used by the command line viewer
func DefaultPalette() Palette {
	return Palette{
		SymbolStairs:       color.Style{color.FgGreen, color.OpBold},
		SymbolShop:         color.Style{color.FgYellow, color.OpBold},
		SymbolItem:         color.Style{color.FgMagenta, color.OpBold},
		SymbolMonster:      color.Style{color.FgRed, color.OpBold},
		SymbolTrap:         color.Style{color.FgRed},
		SymbolHallway:      color.Style{color.FgBlue},
		SymbolAnchor:       color.Style{color.FgCyan, color.OpBold},
		SymbolMonsterHouse: color.Style{color.FgRed, color.BgBlack},
		SymbolRoom:         color.Style{color.FgWhite},
		SymbolGridBorder:   color.Style{color.FgGray, color.OpBold},
		SymbolWall:         color.Style{color.FgGray},
		SymbolSecondary:    color.Style{color.FgCyan},
		SymbolChasm:        color.Style{color.FgBlack, color.BgGray},
	}
}

// ColorMapString renders the floor like MapString with every symbol coloured by palette
func ColorMapString(tiles *world.Tiles, xs, ys []int, palette Palette) string {
	var sb strings.Builder
	writeMap(&sb, tiles, xs, ys, func(r rune) string {
		if s, ok := palette[r]; ok {
			return s.Sprint(string(r))
		}
		return string(r)
	})
	return sb.String()
}

// dynamicGet looks up label keys that are not constant strings
var dynamicGet = gotext.Get

// point formats a coordinate pair, or "none" when it is unset
func point(x, y int) string {
	if x == generator.Unset || y == generator.Unset {
		return gotext.Get("none")
	}
	return fmt.Sprintf("%d,%d", x, y)
}

// WriteDump writes the metadata, legend and map sections of a generated floor
func WriteDump(out io.Writer, res *generator.Result, seed uint32) error {
	w := &stickyWriter{w: out}
	info, status := res.Info, res.Status
	label := func(key string, value any) {
		fmt.Fprintf(w, "%s: %v\n", dynamicGet(key), value)
	}

	fmt.Fprintln(w, "=== "+gotext.Get("FLOOR DUMP")+" ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Metadata ---")
	label("seed", seed)
	label("floor", res.Dungeon.Floor)
	label("layout", status.Layout)
	label("floor_size", status.FloorSize)
	label("grid_x", res.GridX)
	label("grid_y", res.GridY)
	label("num_rooms", status.NumRooms)
	label("generation_attempts", info.FloorGenerationAttempts)
	label("spawn_attempts", info.SpawnAttempts)
	label("player_spawn", point(info.PlayerSpawnX, info.PlayerSpawnY))
	label("stairs", point(info.StairsSpawnX, info.StairsSpawnY))
	label("hidden_stairs", point(info.HiddenStairsSpawnX, info.HiddenStairsSpawnY))
	label("forced_monster_house", info.ForceCreateMonsterHouse)
	label("has_monster_house", status.HasMonsterHouse)
	label("has_kecleon_shop", status.HasKecleonShop)
	label("has_maze", status.HasMaze)
	label("num_items", res.Dungeon.NumItems)
	label("tiles_reachable_from_stairs", status.NumTilesReachableFromStairs)
	if msg := res.Floor.Validate(); msg != "" {
		label("validation", msg)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Legend ---")
	for _, l := range legend {
		fmt.Fprintf(w, "%c = %s\n", l.symbol, dynamicGet(l.key))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Map ---")
	if err := writeMap(w, &res.Tiles, res.GridX, res.GridY, nil); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== "+gotext.Get("END FLOOR DUMP")+" ===")
	return w.err
}

// stickyWriter remembers the first write error and drops every later write
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.err = err
	return n, err
}

// DumpFloorToFile writes a full debug dump of a generated floor to path and
// returns the absolute path of the file
func DumpFloorToFile(path string, res *generator.Result, seed uint32) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve dump path: %w", err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create dump file: %w", err)
	}
	defer f.Close()

	if err := WriteDump(f, res, seed); err != nil {
		return absPath, fmt.Errorf("write dump file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return absPath, fmt.Errorf("sync dump file: %w", err)
	}
	return absPath, nil
}

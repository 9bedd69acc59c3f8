package devtools

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/generator"
)

func TestSymbol(t *testing.T) {
	open := func(room int) world.Tile {
		tile := world.NewTile()
		tile.Terrain.Type = world.TerrainNormal
		tile.RoomIndex = room
		return tile
	}

	stairs := open(0)
	stairs.Spawn.Stairs = true
	stairs.Spawn.Item = true

	shop := open(0)
	shop.Terrain.InKecleonShop = true
	shop.Spawn.Item = true

	item := open(0)
	item.Spawn.Item = true
	item.Spawn.Monster = true

	monster := open(0)
	monster.Spawn.Monster = true

	trap := open(world.RoomNone)
	trap.Spawn.Trap = true

	house := open(2)
	house.Terrain.InMonsterHouse = true

	secondary := world.NewTile()
	secondary.Terrain.Type = world.TerrainSecondary

	chasm := world.NewTile()
	chasm.Terrain.Type = world.TerrainChasm

	wall := world.NewTile()

	tests := []struct {
		name   string
		tile   world.Tile
		border bool
		want   rune
	}{
		{"stairs win over items", stairs, false, SymbolStairs},
		{"shop wins over items", shop, false, SymbolShop},
		{"item wins over monster", item, false, SymbolItem},
		{"monster", monster, false, SymbolMonster},
		{"trap on a hallway", trap, false, SymbolTrap},
		{"hallway", open(world.RoomNone), false, SymbolHallway},
		{"anchor", open(world.RoomAnchor), false, SymbolAnchor},
		{"monster house", house, false, SymbolMonsterHouse},
		{"room", open(4), true, SymbolRoom},
		{"wall", wall, false, SymbolWall},
		{"wall on border", wall, true, SymbolGridBorder},
		{"secondary", secondary, true, SymbolSecondary},
		{"chasm", chasm, false, SymbolChasm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Symbol(&tt.tile, tt.border); got != tt.want {
				t.Errorf("Symbol() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapString_Shape(t *testing.T) {
	floor := world.NewFloor()
	floor.Tile(10, 5).Terrain.Type = world.TerrainNormal
	tiles := floor.Snapshot()

	out := MapString(&tiles, nil, nil)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, world.FloorHeight)
	for i, line := range lines {
		if len(line) != world.FloorWidth*2-1 {
			t.Errorf("line %d has length %d", i, len(line))
		}
	}
	assert.Equal(t, byte(SymbolHallway), lines[5][20])
	assert.NotContains(t, out, string(SymbolGridBorder))
}

func TestMapString_GridOverlay(t *testing.T) {
	floor := world.NewFloor()
	tiles := floor.Snapshot()

	lines := strings.Split(MapString(&tiles, []int{0, 28, 56}, []int{0, 32}), "\n")

	assert.Equal(t, byte(SymbolGridBorder), lines[5][27*2])
	assert.Equal(t, byte(SymbolGridBorder), lines[5][28*2])
	assert.Equal(t, byte(SymbolWall), lines[5][10*2])
	assert.Equal(t, byte(SymbolGridBorder), lines[0][10*2])
}

func TestColorMapString_MatchesPlainOutput(t *testing.T) {
	res := generator.GenerateDungeon(dungeon.DefaultFloorProperties(), dungeon.DefaultDungeon(), generator.Options{Seed: 3})

	plain := MapString(&res.Tiles, res.GridX, res.GridY)
	colored := ColorMapString(&res.Tiles, res.GridX, res.GridY, DefaultPalette())

	assert.Equal(t, plain, color.ClearCode(colored))
}

func TestDumpFloorToFile(t *testing.T) {
	res := generator.GenerateDungeon(dungeon.DefaultFloorProperties(), dungeon.DefaultDungeon(), generator.Options{Seed: 7})
	path := filepath.Join(t.TempDir(), "floor.txt")

	abs, err := DumpFloorToFile(path, res, 7)
	require.NoError(t, err)

	data, err := os.ReadFile(abs)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "--- Metadata ---")
	assert.Contains(t, out, "--- Legend ---")
	assert.Contains(t, out, "seed: 7")
	assert.Contains(t, out, "layout: small")
	assert.Contains(t, out, MapString(&res.Tiles, res.GridX, res.GridY))
	assert.NotContains(t, out, "validation:")
}

func TestDumpFloorToFile_BadPath(t *testing.T) {
	res := generator.GenerateDungeon(dungeon.DefaultFloorProperties(), dungeon.DefaultDungeon(), generator.Options{Seed: 7})

	_, err := DumpFloorToFile(filepath.Join(t.TempDir(), "missing", "floor.txt"), res, 7)
	assert.ErrorContains(t, err, "create dump file")
}

var errFlakyWrite = errors.New("flaky write")

// flakyWriter records every write and fails only the one numbered failAt
type flakyWriter struct {
	writes []string
	failAt int
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	f.writes = append(f.writes, string(p))
	if len(f.writes)-1 == f.failAt {
		return 0, errFlakyWrite
	}
	return len(p), nil
}

func TestWriteDump_ReportsMapWriteErrors(t *testing.T) {
	res := generator.GenerateDungeon(dungeon.DefaultFloorProperties(), dungeon.DefaultDungeon(), generator.Options{Seed: 7})

	clean := &flakyWriter{failAt: -1}
	require.NoError(t, WriteDump(clean, res, 7))

	firstRow := -1
	for i, w := range clean.writes {
		if w == "--- Map ---\n" {
			firstRow = i + 1
			break
		}
	}
	require.Positive(t, firstRow)

	// Only a single map row fails, every later write would succeed
	flaky := &flakyWriter{failAt: firstRow + 3}
	err := WriteDump(flaky, res, 7)
	require.ErrorIs(t, err, errFlakyWrite)
	assert.Len(t, flaky.writes, firstRow+4)
}

func TestWriteDump_ReportsHeaderWriteErrors(t *testing.T) {
	res := generator.GenerateDungeon(dungeon.DefaultFloorProperties(), dungeon.DefaultDungeon(), generator.Options{Seed: 7})

	flaky := &flakyWriter{failAt: 0}
	assert.ErrorIs(t, WriteDump(flaky, res, 7), errFlakyWrite)
	assert.Len(t, flaky.writes, 1)
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/random"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/terminal"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/devtools"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/generator"
)

// Colour modes of the map output
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var errBadColorMode = errors.New("color mode must be auto, always or never")

// config is everything the command line decides
type config struct {
	seed      uint32
	preseed   bool
	props     dungeon.FloorProperties
	dungeon   dungeon.Dungeon
	settings  dungeon.AdvancedGenerationSettings
	verbosity generator.StepLevel
	verbose   bool
	dumpPath  string
	colorMode string
	showGrid  bool
}

// parseFlags turns the command line into a config
func parseFlags(args []string, output io.Writer) (*config, error) {
	fs := flag.NewFlagSet("dungeon-mystery", flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := dungeon.DefaultFloorProperties()
	d := dungeon.DefaultDungeon()

	seed := fs.Uint("seed", 1, "generator seed")
	preseed := fs.Bool("preseed", false, "treat -seed as a preseed and derive the real seed from it")
	layout := fs.String("layout", defaults.Layout.String(), "floor layout ("+layoutNames()+")")
	rooms := fs.Int("rooms", defaults.RoomDensity, "room density; negative asks for exactly that many rooms")
	connectivity := fs.Int("connectivity", defaults.FloorConnectivity, "number of random grid connections")
	deadEnds := fs.Bool("dead-ends", false, "allow hallway dead ends")
	mhChance := fs.Int("mh-chance", 0, "monster house chance (0-100)")
	shopChance := fs.Int("shop-chance", 0, "kecleon shop chance (0-100)")
	mazeChance := fs.Int("maze-chance", 0, "maze room chance (0-100)")
	itemlessChance := fs.Int("itemless-mh-chance", 0, "chance of a monster house without items (0-100)")
	items := fs.Int("items", 0, "item density")
	traps := fs.Int("traps", 0, "trap density")
	enemies := fs.Int("enemies", 0, "enemy density; negative asks for exactly that many enemies")
	buried := fs.Int("buried", 0, "buried item density")
	extraHallways := fs.Int("extra-hallways", 0, "number of extra hallway attempts")
	structures := fs.Int("structures", 0, "secondary structures budget")
	terrainDensity := fs.Int("terrain-density", defaults.SecondaryTerrainDensity, "secondary terrain density")
	terrain := fs.Bool("terrain", false, "generate rivers and lakes of secondary terrain")
	imperfections := fs.Bool("imperfections", false, "allow room imperfections")
	fixedRoom := fs.Int("fixed-room", 0, "fixed room id")
	hiddenStairs := fs.Int("hidden-stairs", int(dungeon.HiddenStairsNone), "hidden stairs type (0 none, 1 secret bazaar, 2 secret room)")
	floor := fs.Int("floor", d.Floor, "current floor number")
	floors := fs.Int("floors", d.NumFloorsPlusOne-1, "number of floors in the dungeon")
	tileset := fs.Int("tileset", d.TilesetID, "tileset id, selects the secondary terrain type")
	fixDeadEnds := fs.Bool("fix-dead-ends", false, "patch the dead end validation defect")
	fixOuterRooms := fs.Bool("fix-outer-rooms", false, "patch the outer rooms connection defect")
	wallMazes := fs.Bool("wall-mazes", false, "allow maze rooms built from walls")
	verbosity := fs.String("verbosity", generator.StepMajor.String(), "observer verbosity (complete, major, minor)")
	verbose := fs.Bool("v", false, "log every generation step at debug level")
	dump := fs.String("dump", "", "write a full floor dump to this file")
	colorMode := fs.String("color", colorAuto, "colour the map (auto, always, never)")
	showGrid := fs.Bool("grid", true, "draw grid cell borders on the map")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	l, err := dungeon.ParseFloorLayout(*layout)
	if err != nil {
		return nil, err
	}

	cfg := &config{
		seed:      uint32(*seed),
		preseed:   *preseed,
		dumpPath:  *dump,
		colorMode: strings.ToLower(*colorMode),
		showGrid:  *showGrid,
		verbose:   *verbose,
	}

	switch cfg.colorMode {
	case colorAuto, colorAlways, colorNever:
	default:
		return nil, fmt.Errorf("%w: %q", errBadColorMode, *colorMode)
	}

	cfg.verbosity, err = generator.ParseStepLevel(*verbosity)
	if err != nil {
		return nil, err
	}
	if cfg.verbose {
		cfg.verbosity = generator.StepMinor
	}

	cfg.props = dungeon.FloorProperties{
		Layout:                     l,
		RoomDensity:                *rooms,
		FloorConnectivity:          *connectivity,
		EnemyDensity:               *enemies,
		KecleonShopChance:          *shopChance,
		MonsterHouseChance:         *mhChance,
		MazeRoomChance:             *mazeChance,
		AllowDeadEnds:              *deadEnds,
		SecondaryStructuresBudget:  *structures,
		RoomFlags:                  dungeon.RoomFlags{SecondaryTerrainGeneration: *terrain, RoomImperfections: *imperfections},
		ItemDensity:                *items,
		TrapDensity:                *traps,
		FixedRoomID:                *fixedRoom,
		NumExtraHallways:           *extraHallways,
		BuriedItemDensity:          *buried,
		SecondaryTerrainDensity:    *terrainDensity,
		ItemlessMonsterHouseChance: *itemlessChance,
		HiddenStairsType:           dungeon.HiddenStairsType(*hiddenStairs),
	}
	if err := cfg.props.Validate(); err != nil {
		return nil, fmt.Errorf("invalid floor properties: %w", err)
	}

	d.Floor = *floor
	d.NumFloorsPlusOne = *floors + 1
	d.TilesetID = *tileset
	cfg.dungeon = d

	cfg.settings = dungeon.AdvancedGenerationSettings{
		AllowWallMazeRoomGeneration:     *wallMazes,
		FixDeadEndValidationError:       *fixDeadEnds,
		FixGenerateOuterRoomsFloorError: *fixOuterRooms,
	}

	return cfg, nil
}

func layoutNames() string {
	var names []string
	for _, l := range dungeon.AllLayouts() {
		names = append(names, l.String())
	}
	return strings.Join(names, ", ")
}

// useColor decides whether the map is coloured
func (c *config) useColor(out *os.File) bool {
	switch c.colorMode {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return out != nil && terminal.IsTerminal(out)
	}
}

// run generates one floor and prints it
func run(cfg *config, stdout io.Writer, logger *slog.Logger) error {
	seed := cfg.seed
	if cfg.preseed {
		seed, _ = random.SeedFromPreseed(seed)
	}

	res := generator.GenerateDungeon(cfg.props, cfg.dungeon, generator.Options{
		Seed:      seed,
		Settings:  &cfg.settings,
		Observer:  generator.LogObserver{Logger: logger},
		Verbosity: cfg.verbosity,
	})

	if msg := res.Floor.Validate(); msg != "" {
		logger.Warn("generated floor is inconsistent", "problem", msg)
	}

	var xs, ys []int
	if cfg.showGrid {
		xs, ys = res.GridX, res.GridY
	}

	f, _ := stdout.(*os.File)
	if cfg.useColor(f) {
		if cfg.colorMode == colorAlways {
			color.Enable = true
			color.ForceColor()
		}
		fmt.Fprint(stdout, devtools.ColorMapString(&res.Tiles, xs, ys, devtools.DefaultPalette()))
	} else {
		fmt.Fprint(stdout, devtools.MapString(&res.Tiles, xs, ys))
	}
	if f != nil && terminal.IsTerminal(f) && !terminal.FitsFloor(world.FloorWidth) {
		logger.Info("terminal is narrower than the map, lines will wrap", "width", terminal.GetWidth())
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, gotext.Get("Seed %d, layout %s, %d rooms", seed, res.Status.Layout, res.Status.NumRooms))
	fmt.Fprintln(stdout, gotext.Get("Generation attempts %d, spawn attempts %d", res.Info.FloorGenerationAttempts+1, res.Info.SpawnAttempts+1))
	if res.Info.ForceCreateMonsterHouse {
		fmt.Fprintln(stdout, gotext.Get("Floor holds a forced monster house"))
	}

	if cfg.dumpPath != "" {
		path, err := devtools.DumpFloorToFile(cfg.dumpPath, res, seed)
		if err != nil {
			return err
		}
		logger.Info("floor dump written", "path", path)
	}

	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

package dungeon

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrUnknownLayout    = errors.New("unknown floor layout")
	ErrChanceOutOfRange = errors.New("chance out of range 0-100")
	ErrNegativeValue    = errors.New("value must not be negative")
)

// RoomFlags toggle optional room decoration passes
type RoomFlags struct {
	SecondaryTerrainGeneration bool
	RoomImperfections          bool
}

// FloorProperties are the shape and density parameters of one floor.
// Generation never mutates them.
type FloorProperties struct {
	Layout            FloorLayout
	RoomDensity       int // negative means exactly -RoomDensity rooms
	FloorConnectivity int

	EnemyDensity               int // negative means exactly -EnemyDensity enemies
	KecleonShopChance          int
	MonsterHouseChance         int
	MazeRoomChance             int
	AllowDeadEnds              bool
	SecondaryStructuresBudget  int
	RoomFlags                  RoomFlags
	ItemDensity                int
	TrapDensity                int
	FixedRoomID                int
	NumExtraHallways           int
	BuriedItemDensity          int
	SecondaryTerrainDensity    int
	ShopItemPositions          int
	ItemlessMonsterHouseChance int
	HiddenStairsType           HiddenStairsType
	HiddenStairsSpawnChance    int
}

// DefaultFloorProperties returns the baseline floor properties
func DefaultFloorProperties() FloorProperties {
	return FloorProperties{
		Layout:                  LayoutSmall,
		RoomDensity:             4,
		FloorConnectivity:       15,
		SecondaryTerrainDensity: 10,
		HiddenStairsType:        HiddenStairsNone,
	}
}

// Validate checks the properties for values a caller most likely did not mean.
// Generation itself tolerates any values.
func (p FloorProperties) Validate() error {
	if !p.Layout.IsValid() {
		return fmt.Errorf("layout %d: %w", int(p.Layout), ErrUnknownLayout)
	}

	chances := []struct {
		name  string
		value int
	}{
		{"kecleon shop chance", p.KecleonShopChance},
		{"monster house chance", p.MonsterHouseChance},
		{"maze room chance", p.MazeRoomChance},
		{"itemless monster house chance", p.ItemlessMonsterHouseChance},
		{"hidden stairs spawn chance", p.HiddenStairsSpawnChance},
	}
	for _, c := range chances {
		if c.value < 0 || c.value > 100 {
			return fmt.Errorf("%s %d: %w", c.name, c.value, ErrChanceOutOfRange)
		}
	}

	counts := []struct {
		name  string
		value int
	}{
		{"floor connectivity", p.FloorConnectivity},
		{"secondary structures budget", p.SecondaryStructuresBudget},
		{"item density", p.ItemDensity},
		{"trap density", p.TrapDensity},
		{"extra hallways", p.NumExtraHallways},
		{"buried item density", p.BuriedItemDensity},
		{"secondary terrain density", p.SecondaryTerrainDensity},
	}
	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%s %d: %w", c.name, c.value, ErrNegativeValue)
		}
	}

	return nil
}

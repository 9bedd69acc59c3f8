package dungeon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFloorPropertiesAreValid(t *testing.T) {
	p := DefaultFloorProperties()
	require.NoError(t, p.Validate())
	assert.Equal(t, LayoutSmall, p.Layout)
	assert.Equal(t, 4, p.RoomDensity)
	assert.Equal(t, 15, p.FloorConnectivity)
	assert.Equal(t, 10, p.SecondaryTerrainDensity)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *FloorProperties)
		want   error
	}{
		{"layout", func(p *FloorProperties) { p.Layout = FloorLayout(42) }, ErrUnknownLayout},
		{"shop chance", func(p *FloorProperties) { p.KecleonShopChance = 101 }, ErrChanceOutOfRange},
		{"maze chance", func(p *FloorProperties) { p.MazeRoomChance = -1 }, ErrChanceOutOfRange},
		{"traps", func(p *FloorProperties) { p.TrapDensity = -3 }, ErrNegativeValue},
		{"extra hallways", func(p *FloorProperties) { p.NumExtraHallways = -1 }, ErrNegativeValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultFloorProperties()
			tc.mutate(&p)
			err := p.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNegativeDensitiesAreAllowed(t *testing.T) {
	p := DefaultFloorProperties()
	p.RoomDensity = -3
	p.EnemyDensity = -5
	assert.NoError(t, p.Validate())
}

func TestParseFloorLayout(t *testing.T) {
	for _, l := range AllLayouts() {
		got, err := ParseFloorLayout(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := ParseFloorLayout("spiral")
	assert.ErrorIs(t, err, ErrUnknownLayout)

	got, err := ParseFloorLayout("  Cross ")
	require.NoError(t, err)
	assert.Equal(t, LayoutCross, got)
}

func TestMissionChecks(t *testing.T) {
	d := DefaultDungeon()
	assert.False(t, d.IsOutlawMonsterHouseFloor())
	assert.False(t, d.HasMissionMonster())

	d.MissionDestination = MissionDestination{
		IsDestinationFloor: true,
		Type:               MissionArrestOutlaw,
		Subtype:            MissionSubtypeOutlawMonsterHouse,
	}
	assert.True(t, d.IsOutlawMonsterHouseFloor())
	assert.True(t, d.HasMissionMonster())

	d.MissionDestination.Type = MissionFindItem
	assert.False(t, d.IsOutlawMonsterHouseFloor())
	assert.False(t, d.HasMissionMonster())
}

func TestIsLastFloor(t *testing.T) {
	d := DefaultDungeon()
	d.NumFloorsPlusOne = 4
	d.Floor = 2
	assert.False(t, d.IsLastFloor())
	d.Floor = 3
	assert.True(t, d.IsLastFloor())
}

func TestSecondaryTerrainTypeForTileset(t *testing.T) {
	assert.Equal(t, SecondaryTerrainWater, SecondaryTerrainTypeForTileset(0))
	assert.Equal(t, SecondaryTerrainChasm, SecondaryTerrainTypeForTileset(26))
	assert.Equal(t, SecondaryTerrainLava, SecondaryTerrainTypeForTileset(57))
	assert.Equal(t, SecondaryTerrainWater, SecondaryTerrainTypeForTileset(NumTilesets+10))

	d := DefaultDungeon()
	d.TilesetID = 110
	assert.Equal(t, SecondaryTerrainLava, d.SecondaryTerrainType())
}

func TestDefaultSettings(t *testing.T) {
	c := DefaultGenerationConstants()
	assert.Equal(t, 5, c.MergeRoomsChance)
	assert.Equal(t, 60, c.NoImperfectionsChance)
	assert.Equal(t, 80, c.SecondaryStructureFlagChance)
	assert.Equal(t, 7, c.MaxMonsterHouseItemSpawns)
	assert.Equal(t, 30, c.MaxMonsterHouseEnemySpawns)
	assert.Equal(t, 28, c.FirstMonsterHouseTrapDungeonID)

	assert.Equal(t, AdvancedGenerationSettings{}, DefaultAdvancedGenerationSettings())
}

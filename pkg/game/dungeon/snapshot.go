package dungeon

// MissionDestination describes the mission targeting the current floor, if any
type MissionDestination struct {
	IsDestinationFloor bool
	Type               MissionType
	Subtype            int
}

// Dungeon is the snapshot of the dungeon the floor belongs to
type Dungeon struct {
	ID                 int
	Floor              int
	RescueFloor        int
	NonstoryFlag       bool
	MissionDestination MissionDestination
	EnemyDensity       int
	Objective          DungeonObjective
	TilesetID          int

	// Filled in during generation on the working copy
	NumItems        int
	KecleonShopMinX int
	KecleonShopMinY int
	KecleonShopMaxX int
	KecleonShopMaxY int

	BoostKecleonShopSpawnChance  bool
	BoostHiddenStairsSpawnChance bool
	GuaranteedItemID             int
	NumFloorsPlusOne             int
}

// DefaultDungeon returns the baseline dungeon snapshot
func DefaultDungeon() Dungeon {
	return Dungeon{
		ID:               1,
		Floor:            1,
		RescueFloor:      1,
		NonstoryFlag:     true,
		Objective:        ObjectiveNormal,
		NumFloorsPlusOne: 4,
	}
}

// IsLastFloor reports whether the current floor is the final floor of the dungeon
func (d *Dungeon) IsLastFloor() bool {
	return d.Floor+1 >= d.NumFloorsPlusOne
}

// IsOutlawMonsterHouseFloor reports whether an outlaw is hiding in a monster house on this floor
func (d *Dungeon) IsOutlawMonsterHouseFloor() bool {
	m := d.MissionDestination
	return m.IsDestinationFloor && m.Type == MissionArrestOutlaw && m.Subtype == MissionSubtypeOutlawMonsterHouse
}

// HasMissionMonster reports whether a mission places a specific monster on this floor
func (d *Dungeon) HasMissionMonster() bool {
	m := d.MissionDestination
	if !m.IsDestinationFloor {
		return false
	}

	switch m.Type {
	case MissionRescueClient, MissionRescueTarget, MissionEscortToTarget, MissionDeliverItem,
		MissionSearchForTarget, MissionTakeItemFromOutlaw, MissionArrestOutlaw:
		return true
	default:
		return false
	}
}

// SecondaryTerrainType returns the secondary terrain used by the dungeon tileset
func (d *Dungeon) SecondaryTerrainType() SecondaryTerrainType {
	return SecondaryTerrainTypeForTileset(d.TilesetID)
}

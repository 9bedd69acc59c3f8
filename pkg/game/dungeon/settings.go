package dungeon

// GenerationConstants are tunable values that stay fixed for a whole generation
type GenerationConstants struct {
	MergeRoomsChance               int
	NoImperfectionsChance          int
	SecondaryStructureFlagChance   int
	MaxMonsterHouseItemSpawns      int
	MaxMonsterHouseEnemySpawns     int
	FirstMonsterHouseTrapDungeonID int
}

// DefaultGenerationConstants returns the baseline constants
func DefaultGenerationConstants() GenerationConstants {
	return GenerationConstants{
		MergeRoomsChance:               5,
		NoImperfectionsChance:          60,
		SecondaryStructureFlagChance:   80,
		MaxMonsterHouseItemSpawns:      7,
		MaxMonsterHouseEnemySpawns:     30,
		FirstMonsterHouseTrapDungeonID: 28,
	}
}

// AdvancedGenerationSettings toggle patches for known defects of the generation algorithm.
// All patches are off by default so floors match the unpatched algorithm bit for bit.
type AdvancedGenerationSettings struct {
	// AllowWallMazeRoomGeneration lets the maze room pass build wall mazes.
	// Unpatched, that pass always bails out before converting a room.
	AllowWallMazeRoomGeneration bool

	// FixDeadEndValidationError makes dead end removal check the neighbour in the
	// direction it is extending to. Unpatched, every direction checks the cell to the right.
	FixDeadEndValidationError bool

	// FixGenerateOuterRoomsFloorError builds the outer rooms ring with the correct
	// connection flags. Unpatched, grids two cells wide end up disconnected.
	FixGenerateOuterRoomsFloorError bool
}

// DefaultAdvancedGenerationSettings returns settings with every patch disabled
func DefaultAdvancedGenerationSettings() AdvancedGenerationSettings {
	return AdvancedGenerationSettings{}
}

package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnknownStepLevel is returned by ParseStepLevel for names it does not know
var ErrUnknownStepLevel = errors.New("unknown step level")

// StepLevel is how significant a generation step is. An observer with
// verbosity v receives every event whose level is at most v.
type StepLevel int

// Step levels
const (
	StepComplete StepLevel = iota
	StepMajor
	StepMinor
)

// String returns the string representation of a step level
func (l StepLevel) String() string {
	switch l {
	case StepComplete:
		return "Complete"
	case StepMajor:
		return "Major"
	case StepMinor:
		return "Minor"
	default:
		return "Unknown"
	}
}

// ParseStepLevel converts a level name, as printed by String, into a step level
func ParseStepLevel(name string) (StepLevel, error) {
	for _, l := range []StepLevel{StepComplete, StepMajor, StepMinor} {
		if strings.EqualFold(strings.TrimSpace(name), l.String()) {
			return l, nil
		}
	}
	return StepComplete, fmt.Errorf("%w: %q", ErrUnknownStepLevel, name)
}

// EventKind names the generation step that just finished
type EventKind int

// Major steps
const (
	EventResetFloor EventKind = iota
	EventInitDungeonGrid
	EventCreateRoomsAndAnchors
	EventCreateGridCellConnections
	EventEnsureConnectedGrid
	EventGenerateMazeRoom
	EventGenerateKecleonShop
	EventGenerateMonsterHouse
	EventGenerateExtraHallways
	EventGenerateRoomImperfections
	EventGenerateSecondaryStructures
	EventGenerateSecondaryTerrain
	EventOneRoomMonsterHouseFloor
	EventOuterRingFloor
	EventCrossroadsFloor
	EventTwoRoomsWithMonsterHouseFloor
	EventMergeRoomsVertically
	EventSpawnNonEnemies
	EventSpawnEnemies
	EventGenerateFloor
)

// Minor steps
const (
	EventCreateAnchor EventKind = iota + 100
	EventCreateRoom
	EventCreateHallway
	EventMergeRoom
	EventMergeRoomVertically
	EventEnsureConnectedHallway
	EventRemoveUnconnectedAnchor
	EventRemoveUnconnectedRoom
	EventGenerateExtraHallway
	EventGenerateRoomImperfection
	EventGenerateSecondaryStructure
	EventSecondaryTerrainRiver
	EventSecondaryTerrainRiverLake
	EventSecondaryTerrainStandaloneLake
	EventSpawnStairs
	EventSpawnItems
	EventSpawnBuriedItems
	EventSpawnMonsterHouseItemsTraps
	EventSpawnTraps
	EventSpawnPlayer
	EventSpawnNonMonsterHouseEnemies
	EventSpawnMonsterHouseExtraEnemies
)

var eventNames = map[EventKind]string{
	EventResetFloor:                     "ResetFloor",
	EventInitDungeonGrid:                "InitDungeonGrid",
	EventCreateRoomsAndAnchors:          "CreateRoomsAndAnchors",
	EventCreateGridCellConnections:      "CreateGridCellConnections",
	EventEnsureConnectedGrid:            "EnsureConnectedGrid",
	EventGenerateMazeRoom:               "GenerateMazeRoom",
	EventGenerateKecleonShop:            "GenerateKecleonShop",
	EventGenerateMonsterHouse:           "GenerateMonsterHouse",
	EventGenerateExtraHallways:          "GenerateExtraHallways",
	EventGenerateRoomImperfections:      "GenerateRoomImperfections",
	EventGenerateSecondaryStructures:    "GenerateSecondaryStructures",
	EventGenerateSecondaryTerrain:       "GenerateSecondaryTerrain",
	EventOneRoomMonsterHouseFloor:       "OneRoomMonsterHouseFloor",
	EventOuterRingFloor:                 "OuterRingFloor",
	EventCrossroadsFloor:                "CrossroadsFloor",
	EventTwoRoomsWithMonsterHouseFloor:  "TwoRoomsWithMonsterHouseFloor",
	EventMergeRoomsVertically:           "MergeRoomsVertically",
	EventSpawnNonEnemies:                "SpawnNonEnemies",
	EventSpawnEnemies:                   "SpawnEnemies",
	EventGenerateFloor:                  "GenerateFloor",
	EventCreateAnchor:                   "CreateAnchor",
	EventCreateRoom:                     "CreateRoom",
	EventCreateHallway:                  "CreateHallway",
	EventMergeRoom:                      "MergeRoom",
	EventMergeRoomVertically:            "MergeRoomVertically",
	EventEnsureConnectedHallway:         "EnsureConnectedHallway",
	EventRemoveUnconnectedAnchor:        "RemoveUnconnectedAnchor",
	EventRemoveUnconnectedRoom:          "RemoveUnconnectedRoom",
	EventGenerateExtraHallway:           "GenerateExtraHallway",
	EventGenerateRoomImperfection:       "GenerateRoomImperfection",
	EventGenerateSecondaryStructure:     "GenerateSecondaryStructure",
	EventSecondaryTerrainRiver:          "SecondaryTerrainRiver",
	EventSecondaryTerrainRiverLake:      "SecondaryTerrainRiverLake",
	EventSecondaryTerrainStandaloneLake: "SecondaryTerrainStandaloneLake",
	EventSpawnStairs:                    "SpawnStairs",
	EventSpawnItems:                     "SpawnItems",
	EventSpawnBuriedItems:               "SpawnBuriedItems",
	EventSpawnMonsterHouseItemsTraps:    "SpawnMonsterHouseItemsTraps",
	EventSpawnTraps:                     "SpawnTraps",
	EventSpawnPlayer:                    "SpawnPlayer",
	EventSpawnNonMonsterHouseEnemies:    "SpawnNonMonsterHouseEnemies",
	EventSpawnMonsterHouseExtraEnemies:  "SpawnMonsterHouseExtraEnemies",
}

// String returns the string representation of an event kind
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is delivered to an Observer after a generation step
type Event struct {
	Level StepLevel
	Kind  EventKind
	View  View
}

// Observer is notified synchronously, in algorithm order, as generation progresses.
// Observers must not hold on to the View after OnStep returns.
type Observer interface {
	OnStep(e Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(e Event)

// OnStep calls f(e)
func (f ObserverFunc) OnStep(e Event) {
	f(e)
}

// LogObserver writes every event it receives to a structured logger.
// Minor steps are logged at debug level, the rest at info level.
type LogObserver struct {
	Logger *slog.Logger
}

// OnStep logs the event
func (o LogObserver) OnStep(e Event) {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	level := slog.LevelInfo
	if e.Level == StepMinor {
		level = slog.LevelDebug
	}

	info := e.View.Info()
	status := e.View.Status()
	logger.LogAttrs(context.Background(), level, "generation step",
		slog.String("level", e.Level.String()),
		slog.String("event", e.Kind.String()),
		slog.Int("attempt", info.FloorGenerationAttempts),
		slog.Int("rooms", status.NumRooms),
	)
}

// emit delivers an event to the observer if its level passes the verbosity threshold
func (c *GenerationContext) emit(level StepLevel, kind EventKind) {
	if c.observer == nil || level > c.verbosity {
		return
	}
	c.observer.OnStep(Event{Level: level, Kind: kind, View: View{c: c}})
}

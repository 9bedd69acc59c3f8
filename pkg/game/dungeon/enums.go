// Package dungeon holds the read-only inputs of floor generation: the floor
// properties, the dungeon snapshot and the tunable constants.
package dungeon

import (
	"fmt"
	"strings"
)

// FloorLayout selects the overall shape of a floor
type FloorLayout int

// Floor layouts
const (
	LayoutLarge FloorLayout = iota
	LayoutSmall
	LayoutOneRoomMonsterHouse
	LayoutOuterRing
	LayoutCrossroads
	LayoutTwoRoomsWithMonsterHouse
	LayoutLine
	LayoutCross
	LayoutLarge0x8
	LayoutBeetle
	LayoutOuterRooms
	LayoutMedium
	LayoutUnused0xC
	LayoutUnused0xD
	LayoutUnused0xE
	LayoutUnused0xF
)

var layoutNames = map[FloorLayout]string{
	LayoutLarge:                    "large",
	LayoutSmall:                    "small",
	LayoutOneRoomMonsterHouse:      "one-room-monster-house",
	LayoutOuterRing:                "outer-ring",
	LayoutCrossroads:               "crossroads",
	LayoutTwoRoomsWithMonsterHouse: "two-rooms-monster-house",
	LayoutLine:                     "line",
	LayoutCross:                    "cross",
	LayoutLarge0x8:                 "large-0x8",
	LayoutBeetle:                   "beetle",
	LayoutOuterRooms:               "outer-rooms",
	LayoutMedium:                   "medium",
	LayoutUnused0xC:                "unused-0xc",
	LayoutUnused0xD:                "unused-0xd",
	LayoutUnused0xE:                "unused-0xe",
	LayoutUnused0xF:                "unused-0xf",
}

// String returns the string representation of a layout
func (l FloorLayout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// IsValid returns true if the layout is one of the known layout values
func (l FloorLayout) IsValid() bool {
	return l >= LayoutLarge && l <= LayoutUnused0xF
}

// AllLayouts returns every layout that has its own template, in declaration order
func AllLayouts() []FloorLayout {
	return []FloorLayout{
		LayoutLarge, LayoutSmall, LayoutOneRoomMonsterHouse, LayoutOuterRing,
		LayoutCrossroads, LayoutTwoRoomsWithMonsterHouse, LayoutLine, LayoutCross,
		LayoutLarge0x8, LayoutBeetle, LayoutOuterRooms, LayoutMedium,
	}
}

// ParseFloorLayout converts a layout name (as printed by String) into a layout
func ParseFloorLayout(name string) (FloorLayout, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l, n := range layoutNames {
		if n == name {
			return l, nil
		}
	}
	return LayoutLarge, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}

// FloorSize limits how many grid columns a standard floor may use
type FloorSize int

// Floor sizes
const (
	FloorSizeLarge FloorSize = iota
	FloorSizeSmall
	FloorSizeMedium
)

// String returns the string representation of a floor size
func (s FloorSize) String() string {
	switch s {
	case FloorSizeLarge:
		return "Large"
	case FloorSizeSmall:
		return "Small"
	case FloorSizeMedium:
		return "Medium"
	default:
		return "Unknown"
	}
}

// FloorType tells normal floors apart from fixed-room and rescue floors
type FloorType int

// Floor types
const (
	FloorTypeNormal FloorType = iota
	FloorTypeFixed
	FloorTypeRescue
)

// String returns the string representation of a floor type
func (t FloorType) String() string {
	switch t {
	case FloorTypeNormal:
		return "Normal"
	case FloorTypeFixed:
		return "Fixed"
	case FloorTypeRescue:
		return "Rescue"
	default:
		return "Unknown"
	}
}

// HiddenStairsType selects what the hidden stairs lead to
type HiddenStairsType int

// Hidden stairs types
const (
	HiddenStairsNone         HiddenStairsType = 0
	HiddenStairsSecretBazaar HiddenStairsType = 1
	HiddenStairsSecretRoom   HiddenStairsType = 2
	HiddenStairsRandom       HiddenStairsType = 255
)

// String returns the string representation of a hidden stairs type
func (h HiddenStairsType) String() string {
	switch h {
	case HiddenStairsNone:
		return "None"
	case HiddenStairsSecretBazaar:
		return "SecretBazaar"
	case HiddenStairsSecretRoom:
		return "SecretRoom"
	case HiddenStairsRandom:
		return "Random"
	default:
		return "Unknown"
	}
}

// MissionType is the kind of mission that targets a floor
type MissionType int

// Mission types
const (
	MissionRescueClient MissionType = iota
	MissionRescueTarget
	MissionEscortToTarget
	MissionExploreWithClient
	MissionProspectWithClient
	MissionGuideClient
	MissionFindItem
	MissionDeliverItem
	MissionSearchForTarget
	MissionTakeItemFromOutlaw
	MissionArrestOutlaw
	MissionChallengeRequest
	MissionTreasureMemo
)

// MissionSubtypeOutlawMonsterHouse is the outlaw subtype where the outlaw hides in a monster house
const MissionSubtypeOutlawMonsterHouse = 7

// DungeonObjective is why the player is in the dungeon
type DungeonObjective int

// Dungeon objectives
const (
	ObjectiveStory DungeonObjective = iota
	ObjectiveNormal
	ObjectiveRescue
	ObjectiveUnkGameMode5
)

// SecondaryTerrainType is the obstacle terrain a tileset uses for secondary terrain
type SecondaryTerrainType int

// Secondary terrain types
const (
	SecondaryTerrainWater SecondaryTerrainType = iota
	SecondaryTerrainLava
	SecondaryTerrainChasm
)

// String returns the string representation of a secondary terrain type
func (s SecondaryTerrainType) String() string {
	switch s {
	case SecondaryTerrainWater:
		return "Water"
	case SecondaryTerrainLava:
		return "Lava"
	case SecondaryTerrainChasm:
		return "Chasm"
	default:
		return "Unknown"
	}
}

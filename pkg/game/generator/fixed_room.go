package generator

import (
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/engine/world"
	"github.com/EpicYoshiMaster/dungeon-mystery/pkg/game/dungeon"
)

// Fixed room id ranges
const (
	maxFixedFloorID    = 0x6E // ids up to here make the floor a fixed floor
	fullFloorRoomLimit = 0xA5 // ids below this replace the whole floor
)

// FixedRoomLoader stamps pre-authored rooms onto a floor.
// LoadFixedRoom returns true when it has written the room and normal layout
// generation must be skipped.
type FixedRoomLoader interface {
	LoadFixedRoom(id int, floor *world.Floor, props dungeon.FloorProperties) bool
}

// NoFixedRooms is the loader used when none is configured. It never loads anything.
type NoFixedRooms struct{}

// LoadFixedRoom always reports a miss
func (NoFixedRooms) LoadFixedRoom(int, *world.Floor, dungeon.FloorProperties) bool {
	return false
}

// isFullFloorFixedRoom reports whether the fixed room id covers the entire floor
func isFullFloorFixedRoom(id int) bool {
	return id > 0 && id < fullFloorRoomLimit
}

package dungeon

// NumTilesets is the number of entries in the tileset secondary terrain table
const NumTilesets = 200

// Tilesets whose secondary terrain is not water
var nonWaterTilesets = map[int]SecondaryTerrainType{
	26:  SecondaryTerrainChasm,
	27:  SecondaryTerrainChasm,
	42:  SecondaryTerrainChasm,
	43:  SecondaryTerrainChasm,
	44:  SecondaryTerrainChasm,
	54:  SecondaryTerrainChasm,
	55:  SecondaryTerrainChasm,
	56:  SecondaryTerrainChasm,
	57:  SecondaryTerrainLava,
	58:  SecondaryTerrainLava,
	61:  SecondaryTerrainChasm,
	73:  SecondaryTerrainChasm,
	99:  SecondaryTerrainChasm,
	110: SecondaryTerrainLava,
	112: SecondaryTerrainLava,
	123: SecondaryTerrainLava,
	179: SecondaryTerrainChasm,
	182: SecondaryTerrainLava,
	183: SecondaryTerrainChasm,
	189: SecondaryTerrainChasm,
	194: SecondaryTerrainLava,
}

// SecondaryTerrainTypeForTileset returns the secondary terrain used by a tileset.
// Unknown tilesets use water.
func SecondaryTerrainTypeForTileset(tileset int) SecondaryTerrainType {
	if t, ok := nonWaterTilesets[tileset]; ok {
		return t
	}
	return SecondaryTerrainWater
}

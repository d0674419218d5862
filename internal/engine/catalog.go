package engine

import "github.com/theo/arena-forge/internal/domain"

// Fixed card catalogs. Order matters: the draft picks an index into these
// slices, so reordering or resizing a catalog changes every historical draw.
var traits = []domain.Item{
	{ID: "berserk", Label: "Berserk", Power: 7},
	{ID: "guardian", Label: "Guardian", Power: 5},
	{ID: "arcane", Label: "Arcane", Power: 6},
	{ID: "swift", Label: "Swift", Power: 4},
	{ID: "vampiric", Label: "Vampiric", Power: 6},
	{ID: "fortified", Label: "Fortified", Power: 5},
}

var units = []domain.Item{
	{ID: "orb_knight", Label: "Orb Knight", Power: 8},
	{ID: "ember_mage", Label: "Ember Mage", Power: 9},
	{ID: "void_hunter", Label: "Void Hunter", Power: 10},
	{ID: "crystal_tank", Label: "Crystal Tank", Power: 11},
	{ID: "storm_scout", Label: "Storm Scout", Power: 7},
}

var modifiers = []domain.Item{
	{ID: "hp_boost", Label: "+12 HP", HP: 12, Power: 2},
	{ID: "econ_boost", Label: "+3 Economy", Economy: 3, Power: 1},
	{ID: "crit_core", Label: "Crit Core", Power: 5},
	{ID: "stability", Label: "Stability Matrix", Power: 4},
}

func catalogFor(t domain.ChoiceType) []domain.Item {
	switch t {
	case domain.ChoiceTypeTrait:
		return traits
	case domain.ChoiceTypeUnit:
		return units
	default:
		return modifiers
	}
}

package testutils

import (
	"github.com/greyvale/sheet-api/internal/entities/sheet"
)

// Test fixture IDs
const (
	TestSheetID  = "sheet_test_001"
	TestPlayerID = "player_test_001"
)

// NewTestItem creates an item definition with sensible defaults
func NewTestItem(id, name string, kind sheet.ItemKind) *sheet.ItemDefinition {
	return &sheet.ItemDefinition{
		ID:     id,
		Name:   name,
		Kind:   kind,
		Rarity: sheet.RarityCommon,
	}
}

// NewTestSheet creates an empty sheet snapshot for a player
func NewTestSheet(id, playerID string) *sheet.SheetData {
	return &sheet.SheetData{
		ID:       id,
		PlayerID: playerID,
		Name:     "Test Character",
	}
}

// NewTestRecipe creates a recipe with the given component lines
func NewTestRecipe(id, craftedItemID string, components ...sheet.ComponentRequirement) *sheet.RecipeDefinition {
	return &sheet.RecipeDefinition{
		ID:            id,
		Name:          "Recipe " + craftedItemID,
		CraftedItemID: craftedItemID,
		Components:    components,
	}
}

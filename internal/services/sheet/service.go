// Package sheet defines the interface for character sheet operations
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/greyvale/sheet-api/internal/services/sheet Service

import (
	"context"

	"github.com/greyvale/sheet-api/internal/economy"
	entities "github.com/greyvale/sheet-api/internal/entities/sheet"
)

// Service defines the interface for character sheet operations
type Service interface {
	// Sheet lifecycle
	CreateSheet(ctx context.Context, input *CreateSheetInput) (*CreateSheetOutput, error)
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	ListSheets(ctx context.Context, input *ListSheetsInput) (*ListSheetsOutput, error)
	DeleteSheet(ctx context.Context, input *DeleteSheetInput) (*DeleteSheetOutput, error)
	UpdateGold(ctx context.Context, input *UpdateGoldInput) (*UpdateGoldOutput, error)

	// Inventory ledger
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// Equipment slots
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
	GetEquipment(ctx context.Context, input *GetEquipmentInput) (*GetEquipmentOutput, error)
	CountEquipped(ctx context.Context, input *CountEquippedInput) (*CountEquippedOutput, error)

	// Utility pool
	StageUtilityItem(ctx context.Context, input *StageUtilityItemInput) (*StageUtilityItemOutput, error)
	AdjustUtilityQuantity(ctx context.Context, input *AdjustUtilityQuantityInput) (*AdjustUtilityQuantityOutput, error)
	ClearUtilitySlot(ctx context.Context, input *ClearUtilitySlotInput) (*ClearUtilitySlotOutput, error)

	// Crafting
	ListCraftable(ctx context.Context, input *ListCraftableInput) (*ListCraftableOutput, error)
	CraftItem(ctx context.Context, input *CraftItemInput) (*CraftItemOutput, error)
}

// Sheet lifecycle types

// CreateSheetInput defines the request for creating a sheet
type CreateSheetInput struct {
	PlayerID string
	Name     string
	Gold     int64
}

// CreateSheetOutput defines the response for creating a sheet
type CreateSheetOutput struct {
	Sheet *entities.SheetData
}

// GetSheetInput defines the request for getting a sheet
type GetSheetInput struct {
	SheetID string
}

// GetSheetOutput defines the response for getting a sheet
type GetSheetOutput struct {
	Sheet *entities.SheetData
}

// ListSheetsInput defines the request for listing a player's sheets
type ListSheetsInput struct {
	PlayerID string
}

// ListSheetsOutput defines the response for listing a player's sheets
type ListSheetsOutput struct {
	Sheets []*entities.SheetData
}

// DeleteSheetInput defines the request for deleting a sheet
type DeleteSheetInput struct {
	SheetID string
}

// DeleteSheetOutput defines the response for deleting a sheet
type DeleteSheetOutput struct {
	SheetID string
}

// UpdateGoldInput defines the request for setting a sheet's gold total
type UpdateGoldInput struct {
	SheetID string
	Gold    int64
}

// UpdateGoldOutput defines the response for setting a sheet's gold total
type UpdateGoldOutput struct {
	Sheet *entities.SheetData
}

// Inventory types

// AddItemInput defines the request for adding items to the ledger
type AddItemInput struct {
	SheetID  string
	ItemID   string
	Quantity int
}

// AddItemOutput defines the response for adding items to the ledger
type AddItemOutput struct {
	Sheet *entities.SheetData
}

// RemoveItemInput defines the request for removing items from the ledger
type RemoveItemInput struct {
	SheetID  string
	ItemID   string
	Quantity int
}

// RemoveItemOutput defines the response for removing items from the ledger
type RemoveItemOutput struct {
	Sheet *entities.SheetData
}

// GetInventoryInput defines the request for reading the ledger
type GetInventoryInput struct {
	SheetID string
}

// GetInventoryOutput defines the response for reading the ledger
type GetInventoryOutput struct {
	Stacks []entities.StackData
}

// Equipment types

// EquipItemInput defines the request for equipping an item into a slot
type EquipItemInput struct {
	SheetID string
	SlotID  string
	ItemID  string
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	Sheet *entities.SheetData
}

// UnequipItemInput defines the request for clearing an equipment slot
type UnequipItemInput struct {
	SheetID string
	SlotID  string
}

// UnequipItemOutput defines the response for clearing an equipment slot
type UnequipItemOutput struct {
	Sheet *entities.SheetData
}

// GetEquipmentInput defines the request for reading equipped items
type GetEquipmentInput struct {
	SheetID string
}

// GetEquipmentOutput defines the response for reading equipped items
type GetEquipmentOutput struct {
	Equipped map[string]*entities.ItemDefinition
}

// CountEquippedInput defines the request for counting occupied slots.
// Exactly one of SlotKind or Category is set.
type CountEquippedInput struct {
	SheetID  string
	SlotKind string
	Category string
}

// CountEquippedOutput defines the response for counting occupied slots
type CountEquippedOutput struct {
	Count int
}

// Utility pool types

// StageUtilityItemInput defines the request for staging an item into a
// utility slot
type StageUtilityItemInput struct {
	SheetID  string
	SlotID   string
	ItemID   string
	Quantity int
}

// StageUtilityItemOutput defines the response for staging an item
type StageUtilityItemOutput struct {
	Sheet *entities.SheetData
}

// AdjustUtilityQuantityInput defines the request for a one-step utility
// quantity change. Delta must be +1 or -1; -1 consumes from the ledger.
type AdjustUtilityQuantityInput struct {
	SheetID string
	SlotID  string
	Delta   int
}

// AdjustUtilityQuantityOutput defines the response for a utility
// quantity change
type AdjustUtilityQuantityOutput struct {
	Sheet *entities.SheetData
}

// ClearUtilitySlotInput defines the request for emptying a utility slot
type ClearUtilitySlotInput struct {
	SheetID string
	SlotID  string
}

// ClearUtilitySlotOutput defines the response for emptying a utility slot
type ClearUtilitySlotOutput struct {
	Sheet *entities.SheetData
}

// Crafting types

// ListCraftableInput defines the request for evaluating every known recipe
type ListCraftableInput struct {
	SheetID string
}

// ListCraftableOutput defines the response for evaluating known recipes
type ListCraftableOutput struct {
	Recipes []*economy.Craftability
}

// CraftItemInput defines the request for executing a recipe
type CraftItemInput struct {
	SheetID  string
	RecipeID string
}

// CraftItemOutput defines the response for executing a recipe
type CraftItemOutput struct {
	Sheet       *entities.SheetData
	CraftedItem *entities.ItemDefinition
}

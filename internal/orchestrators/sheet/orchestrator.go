// Package sheet implements the character sheet orchestrator
package sheet

import (
	"context"
	"log/slog"

	"github.com/greyvale/sheet-api/internal/clients/catalog"
	"github.com/greyvale/sheet-api/internal/economy"
	entities "github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
	"github.com/greyvale/sheet-api/internal/pkg/idgen"
	sheetrepo "github.com/greyvale/sheet-api/internal/repositories/sheet"
	sheetservice "github.com/greyvale/sheet-api/internal/services/sheet"
)

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	SheetRepo   sheetrepo.Repository
	Catalog     catalog.Client
	IDGenerator idgen.Generator

	// ConsumeOnEquip removes an item from the ledger when it is
	// equipped and returns the replaced item. Off by default: worn
	// gear stays listed in the inventory.
	ConsumeOnEquip bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetRepo == nil {
		vb.RequiredField("SheetRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the sheet.Service interface
type Orchestrator struct {
	sheetRepo      sheetrepo.Repository
	catalog        catalog.Client
	idGenerator    idgen.Generator
	consumeOnEquip bool
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		sheetRepo:      cfg.SheetRepo,
		catalog:        cfg.Catalog,
		idGenerator:    cfg.IDGenerator,
		consumeOnEquip: cfg.ConsumeOnEquip,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ sheetservice.Service = (*Orchestrator)(nil)

func (o *Orchestrator) stateConfig() *economy.StateConfig {
	return &economy.StateConfig{ConsumeOnEquip: o.consumeOnEquip}
}

// loadState fetches a sheet and materializes its economy state.
func (o *Orchestrator) loadState(ctx context.Context, sheetID string) (*entities.SheetData, *economy.State, error) {
	getOutput, err := o.sheetRepo.Get(ctx, sheetrepo.GetInput{ID: sheetID})
	if err != nil {
		return nil, nil, err
	}

	state, err := economy.FromSnapshot(getOutput.Sheet, o.stateConfig())
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to materialize sheet %s", sheetID)
	}

	return getOutput.Sheet, state, nil
}

// saveState flattens the economy state back into data and persists it.
func (o *Orchestrator) saveState(ctx context.Context, data *entities.SheetData, state *economy.State) (*entities.SheetData, error) {
	state.Snapshot(data)

	updateOutput, err := o.sheetRepo.Update(ctx, sheetrepo.UpdateInput{Sheet: data})
	if err != nil {
		return nil, err
	}
	return updateOutput.Sheet, nil
}

// Sheet lifecycle methods

// CreateSheet creates a new empty character sheet
func (o *Orchestrator) CreateSheet(ctx context.Context, input *sheetservice.CreateSheetInput) (*sheetservice.CreateSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	if input.Gold < 0 {
		vb.InvalidField("gold", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data := &entities.SheetData{
		ID:       o.idGenerator.Generate(),
		PlayerID: input.PlayerID,
		Name:     input.Name,
		Gold:     input.Gold,
	}

	// Flatten an empty state so the snapshot carries the canonical
	// empty inventory, equipment, and utility slot shapes.
	state, err := economy.NewState(o.stateConfig())
	if err != nil {
		return nil, err
	}
	state.Snapshot(data)

	createOutput, err := o.sheetRepo.Create(ctx, sheetrepo.CreateInput{Sheet: data})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created sheet",
		"sheet_id", createOutput.Sheet.ID,
		"player_id", createOutput.Sheet.PlayerID,
	)

	return &sheetservice.CreateSheetOutput{Sheet: createOutput.Sheet}, nil
}

// GetSheet retrieves a sheet by ID
func (o *Orchestrator) GetSheet(ctx context.Context, input *sheetservice.GetSheetInput) (*sheetservice.GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SheetID == "" {
		return nil, errors.InvalidArgument("sheetID is required")
	}

	getOutput, err := o.sheetRepo.Get(ctx, sheetrepo.GetInput{ID: input.SheetID})
	if err != nil {
		return nil, err
	}

	return &sheetservice.GetSheetOutput{Sheet: getOutput.Sheet}, nil
}

// ListSheets returns all sheets owned by a player
func (o *Orchestrator) ListSheets(ctx context.Context, input *sheetservice.ListSheetsInput) (*sheetservice.ListSheetsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("playerID is required")
	}

	listOutput, err := o.sheetRepo.ListByPlayerID(ctx, sheetrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &sheetservice.ListSheetsOutput{Sheets: listOutput.Sheets}, nil
}

// DeleteSheet removes a sheet
func (o *Orchestrator) DeleteSheet(ctx context.Context, input *sheetservice.DeleteSheetInput) (*sheetservice.DeleteSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SheetID == "" {
		return nil, errors.InvalidArgument("sheetID is required")
	}

	if _, err := o.sheetRepo.Delete(ctx, sheetrepo.DeleteInput{ID: input.SheetID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted sheet", "sheet_id", input.SheetID)

	return &sheetservice.DeleteSheetOutput{SheetID: input.SheetID}, nil
}

// UpdateGold sets a sheet's gold total
func (o *Orchestrator) UpdateGold(ctx context.Context, input *sheetservice.UpdateGoldInput) (*sheetservice.UpdateGoldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	if input.Gold < 0 {
		vb.InvalidField("gold", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	getOutput, err := o.sheetRepo.Get(ctx, sheetrepo.GetInput{ID: input.SheetID})
	if err != nil {
		return nil, err
	}

	data := getOutput.Sheet
	data.Gold = input.Gold

	updateOutput, err := o.sheetRepo.Update(ctx, sheetrepo.UpdateInput{Sheet: data})
	if err != nil {
		return nil, err
	}

	return &sheetservice.UpdateGoldOutput{Sheet: updateOutput.Sheet}, nil
}

// Inventory methods

// AddItem adds a quantity of a catalog item to the sheet's ledger
func (o *Orchestrator) AddItem(ctx context.Context, input *sheetservice.AddItemInput) (*sheetservice.AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	errors.ValidateRequired("itemID", input.ItemID, vb)
	errors.ValidatePositive("quantity", input.Quantity, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	item, err := o.catalog.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	data, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	state.Ledger.Add(item, input.Quantity)

	updated, err := o.saveState(ctx, data, state)
	if err != nil {
		return nil, err
	}

	return &sheetservice.AddItemOutput{Sheet: updated}, nil
}

// RemoveItem removes a quantity of an item from the sheet's ledger
func (o *Orchestrator) RemoveItem(ctx context.Context, input *sheetservice.RemoveItemInput) (*sheetservice.RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	errors.ValidateRequired("itemID", input.ItemID, vb)
	errors.ValidatePositive("quantity", input.Quantity, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	if err := state.Ledger.Remove(input.ItemID, input.Quantity); err != nil {
		return nil, err
	}

	updated, err := o.saveState(ctx, data, state)
	if err != nil {
		return nil, err
	}

	return &sheetservice.RemoveItemOutput{Sheet: updated}, nil
}

// GetInventory returns the sheet's inventory stacks
func (o *Orchestrator) GetInventory(ctx context.Context, input *sheetservice.GetInventoryInput) (*sheetservice.GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SheetID == "" {
		return nil, errors.InvalidArgument("sheetID is required")
	}

	getOutput, err := o.sheetRepo.Get(ctx, sheetrepo.GetInput{ID: input.SheetID})
	if err != nil {
		return nil, err
	}

	return &sheetservice.GetInventoryOutput{Stacks: getOutput.Sheet.Stacks}, nil
}

// Equipment methods

// EquipItem binds a catalog item into an equipment slot
func (o *Orchestrator) EquipItem(ctx context.Context, input *sheetservice.EquipItemInput) (*sheetservice.EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	errors.ValidateRequired("slotID", input.SlotID, vb)
	errors.ValidateRequired("itemID", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	item, err := o.catalog.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	data, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	if err := state.Registry.Equip(economy.SlotID(input.SlotID), item); err != nil {
		return nil, err
	}

	updated, err := o.saveState(ctx, data, state)
	if err != nil {
		return nil, err
	}

	return &sheetservice.EquipItemOutput{Sheet: updated}, nil
}

// UnequipItem clears an equipment slot
func (o *Orchestrator) UnequipItem(ctx context.Context, input *sheetservice.UnequipItemInput) (*sheetservice.UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	errors.ValidateRequired("slotID", input.SlotID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	if err := state.Registry.Equip(economy.SlotID(input.SlotID), nil); err != nil {
		return nil, err
	}

	updated, err := o.saveState(ctx, data, state)
	if err != nil {
		return nil, err
	}

	return &sheetservice.UnequipItemOutput{Sheet: updated}, nil
}

// GetEquipment returns the sheet's equipped items keyed by slot ID
func (o *Orchestrator) GetEquipment(ctx context.Context, input *sheetservice.GetEquipmentInput) (*sheetservice.GetEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SheetID == "" {
		return nil, errors.InvalidArgument("sheetID is required")
	}

	_, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	return &sheetservice.GetEquipmentOutput{Equipped: state.Registry.Equipped()}, nil
}

// CountEquipped counts occupied slots for one slot kind or one category
func (o *Orchestrator) CountEquipped(ctx context.Context, input *sheetservice.CountEquippedInput) (*sheetservice.CountEquippedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	if (input.SlotKind == "") == (input.Category == "") {
		vb.InvalidField("slotKind", "exactly one of slotKind or category is required")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	_, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	var count int
	if input.SlotKind != "" {
		count, err = state.Registry.CountEquippedKind(entities.SlotKind(input.SlotKind))
	} else {
		count, err = state.Registry.CountEquippedCategory(entities.SlotCategory(input.Category))
	}
	if err != nil {
		return nil, err
	}

	return &sheetservice.CountEquippedOutput{Count: count}, nil
}

// Utility pool methods

// StageUtilityItem fills a utility slot with an owned item
func (o *Orchestrator) StageUtilityItem(ctx context.Context, input *sheetservice.StageUtilityItemInput) (*sheetservice.StageUtilityItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	errors.ValidateRequired("slotID", input.SlotID, vb)
	errors.ValidateRequired("itemID", input.ItemID, vb)
	errors.ValidatePositive("quantity", input.Quantity, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	// Staging is bounded by the ledger, so the definition normally
	// comes from an owned stack. The catalog fallback keeps the error
	// for a garbage item ID a catalog miss instead of a bound failure.
	item := state.Ledger.Item(input.ItemID)
	if item == nil {
		item, err = o.catalog.GetItem(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
	}

	if err := state.Pool.Stage(input.SlotID, item, input.Quantity); err != nil {
		return nil, err
	}

	updated, err := o.saveState(ctx, data, state)
	if err != nil {
		return nil, err
	}

	return &sheetservice.StageUtilityItemOutput{Sheet: updated}, nil
}

// AdjustUtilityQuantity steps a utility slot's quantity by one. A
// negative step consumes the item from the ledger.
func (o *Orchestrator) AdjustUtilityQuantity(ctx context.Context, input *sheetservice.AdjustUtilityQuantityInput) (*sheetservice.AdjustUtilityQuantityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	errors.ValidateRequired("slotID", input.SlotID, vb)
	if input.Delta != 1 && input.Delta != -1 {
		vb.InvalidField("delta", "must be +1 or -1")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	if err := state.Pool.AdjustQuantity(input.SlotID, input.Delta); err != nil {
		return nil, err
	}

	updated, err := o.saveState(ctx, data, state)
	if err != nil {
		return nil, err
	}

	return &sheetservice.AdjustUtilityQuantityOutput{Sheet: updated}, nil
}

// ClearUtilitySlot empties a utility slot without touching the ledger
func (o *Orchestrator) ClearUtilitySlot(ctx context.Context, input *sheetservice.ClearUtilitySlotInput) (*sheetservice.ClearUtilitySlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	errors.ValidateRequired("slotID", input.SlotID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	if err := state.Pool.Clear(input.SlotID); err != nil {
		return nil, err
	}

	updated, err := o.saveState(ctx, data, state)
	if err != nil {
		return nil, err
	}

	return &sheetservice.ClearUtilitySlotOutput{Sheet: updated}, nil
}

// Crafting methods

// itemSource builds a resolver item source from the full catalog.
func (o *Orchestrator) itemSource(ctx context.Context) (economy.MapItemSource, error) {
	items, err := o.catalog.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog items")
	}

	source := make(economy.MapItemSource, len(items))
	for _, item := range items {
		source[item.ID] = item
	}
	return source, nil
}

// ListCraftable evaluates every recipe the sheet knows against its ledger
func (o *Orchestrator) ListCraftable(ctx context.Context, input *sheetservice.ListCraftableInput) (*sheetservice.ListCraftableOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SheetID == "" {
		return nil, errors.InvalidArgument("sheetID is required")
	}

	_, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	recipes, err := o.catalog.ListRecipes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog recipes")
	}

	source, err := o.itemSource(ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := economy.NewResolver(&economy.ResolverConfig{
		Ledger: state.Ledger,
		Items:  source,
	})
	if err != nil {
		return nil, err
	}

	results := make([]*economy.Craftability, 0, len(recipes))
	for _, recipe := range recipes {
		craftability, err := resolver.Evaluate(recipe)
		if err != nil {
			return nil, err
		}
		if !craftability.IsKnown {
			continue
		}
		results = append(results, craftability)
	}

	return &sheetservice.ListCraftableOutput{Recipes: results}, nil
}

// CraftItem executes a recipe: consumes its components and produces the
// crafted item
func (o *Orchestrator) CraftItem(ctx context.Context, input *sheetservice.CraftItemInput) (*sheetservice.CraftItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sheetID", input.SheetID, vb)
	errors.ValidateRequired("recipeID", input.RecipeID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, state, err := o.loadState(ctx, input.SheetID)
	if err != nil {
		return nil, err
	}

	recipes, err := o.catalog.ListRecipes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog recipes")
	}

	var recipe *entities.RecipeDefinition
	for _, candidate := range recipes {
		if candidate.ID == input.RecipeID {
			recipe = candidate
			break
		}
	}
	if recipe == nil {
		return nil, errors.NotFoundf("recipe %s not found", input.RecipeID)
	}

	source, err := o.itemSource(ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := economy.NewResolver(&economy.ResolverConfig{
		Ledger: state.Ledger,
		Items:  source,
	})
	if err != nil {
		return nil, err
	}

	crafted, err := resolver.Craft(recipe)
	if err != nil {
		return nil, err
	}

	updated, err := o.saveState(ctx, data, state)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "crafted item",
		"sheet_id", input.SheetID,
		"recipe_id", input.RecipeID,
		"crafted_item_id", crafted.ID,
	)

	return &sheetservice.CraftItemOutput{Sheet: updated, CraftedItem: crafted}, nil
}

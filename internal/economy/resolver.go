package economy

import (
	"github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
)

// ItemSource resolves item definitions for the resolver. It is
// implemented over the external catalog by the service layer and by
// plain maps in tests; the resolver itself never performs I/O.
type ItemSource interface {
	ItemDefinition(itemID string) (*sheet.ItemDefinition, bool)
}

// MapItemSource is an ItemSource over a pre-fetched map of definitions.
type MapItemSource map[string]*sheet.ItemDefinition

// ItemDefinition implements ItemSource.
func (m MapItemSource) ItemDefinition(itemID string) (*sheet.ItemDefinition, bool) {
	item, ok := m[itemID]
	return item, ok
}

// Craftability is the derived known/craftable/missing status of one
// recipe against the current ledger. It is recomputed on every relevant
// change and never persisted.
type Craftability struct {
	Recipe      *sheet.RecipeDefinition `json:"recipe"`
	CraftedItem *sheet.ItemDefinition   `json:"craftedItem,omitempty"`

	// IsKnown is true when the player possesses the recipe item. A
	// recipe is permanent knowledge: crafting never consumes it.
	IsKnown bool `json:"isKnown"`

	// CanCraft is true when the recipe is known, the crafted item
	// resolves in the catalog, and every component requirement is met.
	CanCraft bool `json:"canCraft"`

	// Missing lists only the positive shortfalls (required minus
	// available), ready for "need 2 more Iron Ore" badges.
	Missing []sheet.ComponentRequirement `json:"missing,omitempty"`
}

// ResolverConfig configures the crafting resolver.
type ResolverConfig struct {
	Ledger *Ledger
	Items  ItemSource
}

// Validate validates the ResolverConfig.
func (cfg *ResolverConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Ledger == nil {
		return errors.InvalidArgument("ledger cannot be nil")
	}
	if cfg.Items == nil {
		return errors.InvalidArgument("items cannot be nil")
	}
	return nil
}

// Resolver decides craftability and performs the atomic
// consume-and-produce transaction against the ledger.
type Resolver struct {
	ledger *Ledger
	items  ItemSource
}

// NewResolver creates a crafting resolver.
func NewResolver(cfg *ResolverConfig) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{ledger: cfg.Ledger, items: cfg.Items}, nil
}

// Evaluate computes the Craftability of recipe against the current
// ledger. It never mutates anything.
func (r *Resolver) Evaluate(recipe *sheet.RecipeDefinition) (*Craftability, error) {
	if recipe == nil {
		return nil, errors.InvalidArgument("recipe is required")
	}

	result := &Craftability{
		Recipe:  recipe,
		IsKnown: r.ledger.Has(recipe.ID),
	}

	crafted, found := r.items.ItemDefinition(recipe.CraftedItemID)
	if found {
		result.CraftedItem = crafted
	}

	for _, req := range recipe.Components {
		available := r.ledger.Quantity(req.ItemID)
		if shortfall := req.Quantity - available; shortfall > 0 {
			missing := req
			missing.Quantity = shortfall
			result.Missing = append(result.Missing, missing)
		}
	}

	result.CanCraft = result.IsKnown && found && len(result.Missing) == 0
	return result, nil
}

// Craft performs the crafting transaction: validate, consume every
// component in one all-or-nothing batch, then add the crafted item. A
// failure anywhere before the batch leaves the ledger untouched, and the
// batch itself cannot partially apply, so no component is ever lost.
// The recipe item is not consumed.
func (r *Resolver) Craft(recipe *sheet.RecipeDefinition) (*sheet.ItemDefinition, error) {
	status, err := r.Evaluate(recipe)
	if err != nil {
		return nil, err
	}

	if !status.IsKnown {
		return nil, errors.RecipeUnknownf("recipe %s is not held", recipe.ID).
			WithMeta("recipe_id", recipe.ID)
	}
	if status.CraftedItem == nil {
		return nil, errors.NotFoundf("crafted item %s not in catalog", recipe.CraftedItemID).
			WithMeta("item_id", recipe.CraftedItemID)
	}
	if len(status.Missing) > 0 {
		return nil, errors.InsufficientComponentsf("recipe %s is missing %d component(s)",
			recipe.ID, len(status.Missing)).
			WithMeta("recipe_id", recipe.ID).
			WithMeta("missing", status.Missing)
	}

	lines := make([]RemoveLine, 0, len(recipe.Components))
	for _, req := range recipe.Components {
		lines = append(lines, RemoveLine{ItemID: req.ItemID, Quantity: req.Quantity})
	}
	if err := r.ledger.RemoveMany(lines); err != nil {
		// The ledger changed between Evaluate and the batch. RemoveMany
		// is all-or-nothing, so nothing was consumed.
		return nil, errors.WrapWithCode(err, errors.CodeInsufficientComponents,
			"components no longer available")
	}

	r.ledger.Add(status.CraftedItem, 1)
	return status.CraftedItem, nil
}

// Package sheet defines the character sheet domain entities shared by the
// economy core, the repositories, and the service layer.
package sheet

// ItemKind identifies which family an item definition belongs to
type ItemKind string

// Item kinds
const (
	ItemKindWeapon            ItemKind = "Weapon"
	ItemKindArmor             ItemKind = "Armor"
	ItemKindAmmunition        ItemKind = "Ammunition"
	ItemKindPotion            ItemKind = "Potion"
	ItemKindScroll            ItemKind = "Scroll"
	ItemKindCraftingComponent ItemKind = "Crafting Component"
	ItemKindTrap              ItemKind = "Trap"
	ItemKindExplosive         ItemKind = "Explosive"
	ItemKindThrowable         ItemKind = "Throwable"
	ItemKindRecipe            ItemKind = "Recipe"
	ItemKindMiscellaneous     ItemKind = "Miscellaneous"
)

// Rarity identifies how rare an item is
type Rarity string

// Item rarities
const (
	RarityOrdinary        Rarity = "Ordinary"
	RarityCommon          Rarity = "Common"
	RarityUncommon        Rarity = "Uncommon"
	RarityRare            Rarity = "Rare"
	RarityVeryRare        Rarity = "Very Rare"
	RarityEpic            Rarity = "Epic"
	RarityLegendary       Rarity = "Legendary"
	RarityUnique          Rarity = "Unique"
	RarityExceedinglyRare Rarity = "Exceedingly Rare"
)

// ItemDefinition is an immutable catalog entry. The economy core only
// looks at ID and Kind; everything kind-specific (damage, armor rating,
// bonuses, effects) travels in Attributes as opaque payload.
type ItemDefinition struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Kind        ItemKind       `json:"itemType"`
	Rarity      Rarity         `json:"rarity"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

// ComponentRequirement is one line of a recipe: which component item and
// how many of it a craft consumes.
type ComponentRequirement struct {
	ItemID   string `json:"itemId"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
}

// RecipeDefinition is an immutable catalog entry describing a craft.
// The recipe item itself is permanent knowledge: possessing it unlocks
// the craft and crafting never consumes it.
type RecipeDefinition struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	CraftedItemID string                 `json:"craftedItemId"`
	Components    []ComponentRequirement `json:"requiredComponents"`
}

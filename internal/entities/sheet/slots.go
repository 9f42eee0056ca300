package sheet

// SlotKind identifies a family of equipment slots. Kinds with a
// cardinality above one expand into indexed slot instances (wrist0,
// wrist1, ...); cardinality-one kinds use the bare kind key as slot id.
type SlotKind string

// Equipment slot kinds
const (
	SlotKindPrimaryWeapon   SlotKind = "primaryWeapon"
	SlotKindSecondaryWeapon SlotKind = "secondaryWeapon"
	SlotKindHead            SlotKind = "head"
	SlotKindShoulders       SlotKind = "shoulders"
	SlotKindTorso           SlotKind = "torso"
	SlotKindLegs            SlotKind = "legs"
	SlotKindFeet            SlotKind = "feet"
	SlotKindFace            SlotKind = "face"
	SlotKindNeck            SlotKind = "neck"
	SlotKindWrist           SlotKind = "wrist"
	SlotKindFinger          SlotKind = "finger"
	SlotKindWaist           SlotKind = "waist"
	SlotKindAnkle           SlotKind = "ankle"
	SlotKindToes            SlotKind = "toes"
)

// String returns the string representation of the slot kind
func (k SlotKind) String() string {
	return string(k)
}

// SlotCategory groups slot kinds for aggregate counts on the equipment
// screens ("3/4 equipped" badges).
type SlotCategory string

// Equipment slot categories
const (
	CategoryWeapons     SlotCategory = "weapons"
	CategoryHead        SlotCategory = "head"
	CategoryTorso       SlotCategory = "torso"
	CategoryLegs        SlotCategory = "legs"
	CategoryAccessories SlotCategory = "accessories"
)

// String returns the string representation of the slot category
func (c SlotCategory) String() string {
	return string(c)
}

// SlotKindSpec is one row of the static slot table: a kind, how many
// indexed instances it has, which category it belongs to, and which item
// kind may be bound to it.
type SlotKindSpec struct {
	Kind        SlotKind
	Cardinality int
	Category    SlotCategory
	Accepts     ItemKind
}

// slotTable is the static slot configuration. Order is significant: it
// fixes the arena layout used by the equipment registry, so new kinds
// must be appended, never inserted.
var slotTable = []SlotKindSpec{
	{Kind: SlotKindPrimaryWeapon, Cardinality: 1, Category: CategoryWeapons, Accepts: ItemKindWeapon},
	{Kind: SlotKindSecondaryWeapon, Cardinality: 1, Category: CategoryWeapons, Accepts: ItemKindWeapon},
	{Kind: SlotKindHead, Cardinality: 1, Category: CategoryHead, Accepts: ItemKindArmor},
	{Kind: SlotKindShoulders, Cardinality: 1, Category: CategoryTorso, Accepts: ItemKindArmor},
	{Kind: SlotKindTorso, Cardinality: 1, Category: CategoryTorso, Accepts: ItemKindArmor},
	{Kind: SlotKindLegs, Cardinality: 1, Category: CategoryLegs, Accepts: ItemKindArmor},
	{Kind: SlotKindFeet, Cardinality: 1, Category: CategoryLegs, Accepts: ItemKindArmor},
	{Kind: SlotKindFace, Cardinality: 2, Category: CategoryAccessories, Accepts: ItemKindArmor},
	{Kind: SlotKindNeck, Cardinality: 1, Category: CategoryAccessories, Accepts: ItemKindArmor},
	{Kind: SlotKindWrist, Cardinality: 2, Category: CategoryAccessories, Accepts: ItemKindArmor},
	{Kind: SlotKindFinger, Cardinality: 4, Category: CategoryAccessories, Accepts: ItemKindArmor},
	{Kind: SlotKindWaist, Cardinality: 1, Category: CategoryAccessories, Accepts: ItemKindArmor},
	{Kind: SlotKindAnkle, Cardinality: 2, Category: CategoryAccessories, Accepts: ItemKindArmor},
	{Kind: SlotKindToes, Cardinality: 4, Category: CategoryAccessories, Accepts: ItemKindArmor},
}

// SlotKinds returns the slot table rows in arena order.
func SlotKinds() []SlotKindSpec {
	out := make([]SlotKindSpec, len(slotTable))
	copy(out, slotTable)
	return out
}

// SlotKindSpecFor returns the spec for a kind, or false for an unknown kind.
func SlotKindSpecFor(kind SlotKind) (SlotKindSpec, bool) {
	for _, spec := range slotTable {
		if spec.Kind == kind {
			return spec, true
		}
	}
	return SlotKindSpec{}, false
}

// TotalSlotCount returns how many concrete slot instances the table expands to.
func TotalSlotCount() int {
	total := 0
	for _, spec := range slotTable {
		total += spec.Cardinality
	}
	return total
}

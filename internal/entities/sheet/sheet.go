package sheet

// UtilitySlotCount is the fixed number of utility ("hotlist") slots on a
// sheet. Slots exist for the lifetime of the sheet; only their contents
// change.
const UtilitySlotCount = 5

// StackData is one inventory stack in a persisted snapshot. At most one
// stack exists per item id.
type StackData struct {
	Item     *ItemDefinition `json:"item"`
	Quantity int             `json:"quantity"`
}

// UtilitySlotData is the persisted contents of one utility slot. Item is
// nil for an empty slot, in which case Quantity is zero.
type UtilitySlotData struct {
	SlotID   string          `json:"slotId"`
	Item     *ItemDefinition `json:"item,omitempty"`
	Quantity int             `json:"quantity,omitempty"`
}

// SheetData is the full serializable snapshot of a character sheet. The
// economy core is materialized from it on load and flattened back into it
// before every save; persistence has no other view of the state.
type SheetData struct {
	ID       string `json:"id"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Gold     int64  `json:"gold"`

	Stacks   []StackData                `json:"inventory"`
	Equipped map[string]*ItemDefinition `json:"equippedItems"`
	Utility  []UtilitySlotData          `json:"utilitySlots"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

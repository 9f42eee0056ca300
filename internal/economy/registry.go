package economy

import (
	"strconv"
	"sync"

	"github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
)

// SlotID is the concrete address of one equipment slot instance, e.g.
// "head", "wrist0", "primaryWeapon". SlotIDs are only produced by
// ResolveSlotAddress or validated against the registry's table, never
// assembled by callers from raw strings.
type SlotID string

// String returns the string representation of the slot id
func (id SlotID) String() string {
	return string(id)
}

// ResolveSlotAddress maps (kind, index) to a concrete slot id. Index is
// ignored for cardinality-1 kinds and must be within [0, cardinality)
// otherwise.
func ResolveSlotAddress(kind sheet.SlotKind, index int) (SlotID, error) {
	spec, ok := sheet.SlotKindSpecFor(kind)
	if !ok {
		return "", errors.InvalidArgumentf("unknown slot kind %q", kind)
	}
	if spec.Cardinality == 1 {
		return SlotID(kind), nil
	}
	if index < 0 || index >= spec.Cardinality {
		return "", errors.InvalidArgumentf("slot kind %q has %d instances, index %d out of range",
			kind, spec.Cardinality, index)
	}
	return SlotID(string(kind) + strconv.Itoa(index)), nil
}

// slotRef locates one slot instance inside the registry arena.
type slotRef struct {
	spec   sheet.SlotKindSpec
	offset int
}

// RegistryConfig configures the equipment slot registry.
type RegistryConfig struct {
	Ledger *Ledger

	// ConsumeOnEquip makes Equip subtract the bound item from the
	// ledger and clearing a slot return it. The observed behavior of
	// the sheet is non-consuming (the same sword can sit in two slots
	// without owning two), so the default is false; the knob exists to
	// make that policy explicit instead of baked in.
	ConsumeOnEquip bool
}

// Validate validates the RegistryConfig.
func (cfg *RegistryConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Ledger == nil {
		return errors.InvalidArgument("ledger cannot be nil")
	}
	return nil
}

// Registry binds catalog items into equipment slots. Slots live in a
// flat arena indexed by a (kind, index) offset table built once from
// the static slot configuration, so every reachable SlotID is valid by
// construction.
type Registry struct {
	mu             sync.Mutex
	ledger         *Ledger
	consumeOnEquip bool

	slots []*sheet.ItemDefinition
	refs  map[SlotID]slotRef
	ids   []SlotID // arena order, for deterministic snapshots
}

// NewRegistry creates an equipment registry with every slot empty.
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		ledger:         cfg.Ledger,
		consumeOnEquip: cfg.ConsumeOnEquip,
		slots:          make([]*sheet.ItemDefinition, sheet.TotalSlotCount()),
		refs:           make(map[SlotID]slotRef),
	}

	offset := 0
	for _, spec := range sheet.SlotKinds() {
		for i := 0; i < spec.Cardinality; i++ {
			id, err := ResolveSlotAddress(spec.Kind, i)
			if err != nil {
				return nil, err
			}
			r.refs[id] = slotRef{spec: spec, offset: offset}
			r.ids = append(r.ids, id)
			offset++
		}
	}
	return r, nil
}

// Equip binds item into the slot, or clears the slot when item is nil.
// Binding over an occupied slot replaces the previous reference. The
// item kind must match what the slot accepts.
func (r *Registry) Equip(slotID SlotID, item *sheet.ItemDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.refs[slotID]
	if !ok {
		return errors.InvalidArgumentf("unknown slot %q", slotID)
	}

	if item == nil {
		previous := r.slots[ref.offset]
		r.slots[ref.offset] = nil
		if r.consumeOnEquip && previous != nil {
			r.ledger.Add(previous, 1)
		}
		return nil
	}

	if item.Kind != ref.spec.Accepts {
		return errors.InvalidArgumentf("slot %q accepts %s items, cannot equip %s",
			slotID, ref.spec.Accepts, item.Kind)
	}

	if r.consumeOnEquip {
		if err := r.ledger.Remove(item.ID, 1); err != nil {
			return err
		}
		if previous := r.slots[ref.offset]; previous != nil {
			r.ledger.Add(previous, 1)
		}
	}

	r.slots[ref.offset] = item
	return nil
}

// Get returns the item bound to the slot, or nil for an empty slot.
func (r *Registry) Get(slotID SlotID) (*sheet.ItemDefinition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.refs[slotID]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown slot %q", slotID)
	}
	return r.slots[ref.offset], nil
}

// CountEquippedKind returns how many instances of the kind hold an item.
func (r *Registry) CountEquippedKind(kind sheet.SlotKind) (int, error) {
	spec, ok := sheet.SlotKindSpecFor(kind)
	if !ok {
		return 0, errors.InvalidArgumentf("unknown slot kind %q", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countKindLocked(spec), nil
}

func (r *Registry) countKindLocked(spec sheet.SlotKindSpec) int {
	base := r.refs[r.mustAddress(spec.Kind)].offset
	count := 0
	for i := 0; i < spec.Cardinality; i++ {
		if r.slots[base+i] != nil {
			count++
		}
	}
	return count
}

// CountEquippedCategory sums equipped counts across every slot kind in
// the category.
func (r *Registry) CountEquippedCategory(category sheet.SlotCategory) (int, error) {
	found := false
	total := 0

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, spec := range sheet.SlotKinds() {
		if spec.Category != category {
			continue
		}
		found = true
		total += r.countKindLocked(spec)
	}
	if !found {
		return 0, errors.InvalidArgumentf("unknown slot category %q", category)
	}
	return total, nil
}

// Equipped returns a snapshot of every occupied slot keyed by slot id.
func (r *Registry) Equipped() map[string]*sheet.ItemDefinition {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]*sheet.ItemDefinition)
	for _, id := range r.ids {
		if item := r.slots[r.refs[id].offset]; item != nil {
			out[id.String()] = item
		}
	}
	return out
}

// restore binds a persisted item without applying the consume policy;
// used only when materializing a snapshot, where the ledger already
// accounts for any consumption.
func (r *Registry) restore(slotID SlotID, item *sheet.ItemDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.refs[slotID]
	if !ok {
		return errors.InvalidArgumentf("unknown slot %q", slotID)
	}
	if item != nil && item.Kind != ref.spec.Accepts {
		return errors.InvalidArgumentf("slot %q accepts %s items, cannot restore %s",
			slotID, ref.spec.Accepts, item.Kind)
	}
	r.slots[ref.offset] = item
	return nil
}

// mustAddress resolves the first instance of a kind already present in
// the table; only called with kinds taken from the table itself.
func (r *Registry) mustAddress(kind sheet.SlotKind) SlotID {
	id, err := ResolveSlotAddress(kind, 0)
	if err != nil {
		panic(err)
	}
	return id
}

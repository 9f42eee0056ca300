package economy

import (
	"strconv"
	"sync"

	"github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
)

// UtilitySlotID returns the id of the nth utility slot ("utility0" ...).
func UtilitySlotID(index int) (string, error) {
	if index < 0 || index >= sheet.UtilitySlotCount {
		return "", errors.InvalidArgumentf("utility slot index %d out of range [0, %d)",
			index, sheet.UtilitySlotCount)
	}
	return "utility" + strconv.Itoa(index), nil
}

type utilitySlot struct {
	id       string
	item     *sheet.ItemDefinition
	quantity int
}

// Pool is the fixed-size "hotlist": a staging area that makes a
// sub-quantity of an inventory item visible for quick use. Staging does
// not take ownership away from the ledger; only AdjustQuantity(-1)
// consumes, and it drains the ledger as it does. Every slot quantity is
// bounded above by what the ledger has for that item.
type Pool struct {
	mu     sync.Mutex
	ledger *Ledger
	slots  [sheet.UtilitySlotCount]utilitySlot
}

// NewPool creates the utility pool with all slots empty.
func NewPool(ledger *Ledger) (*Pool, error) {
	if ledger == nil {
		return nil, errors.InvalidArgument("ledger cannot be nil")
	}

	p := &Pool{ledger: ledger}
	for i := range p.slots {
		id, _ := UtilitySlotID(i)
		p.slots[i].id = id
	}
	return p, nil
}

func (p *Pool) slot(slotID string) (*utilitySlot, error) {
	for i := range p.slots {
		if p.slots[i].id == slotID {
			return &p.slots[i], nil
		}
	}
	return nil, errors.InvalidArgumentf("unknown utility slot %q", slotID)
}

// Stage sets the slot's (item, quantity). It fails with SlotOccupied if
// the slot already holds a different item, and with InsufficientQuantity
// if the requested quantity exceeds what the ledger owns. Staging never
// mutates the ledger.
func (p *Pool) Stage(slotID string, item *sheet.ItemDefinition, quantity int) error {
	if item == nil || item.ID == "" {
		return errors.InvalidArgument("item is required")
	}
	if quantity <= 0 {
		return errors.InvalidArgumentf("stage quantity must be positive, got %d", quantity)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	slot, err := p.slot(slotID)
	if err != nil {
		return err
	}
	if slot.item != nil && slot.item.ID != item.ID {
		return errors.SlotOccupiedf("slot %s already holds %s", slotID, slot.item.Name).
			WithMeta("slot_id", slotID).
			WithMeta("held_item_id", slot.item.ID)
	}

	available := p.ledger.Quantity(item.ID)
	if quantity > available {
		return errors.InsufficientQuantityf("cannot stage %d of %s, ledger has %d",
			quantity, item.ID, available)
	}

	slot.item = item
	slot.quantity = quantity
	return nil
}

// AdjustQuantity changes a slot's quantity by +1 or -1.
//
// +1 stages one more copy from inventory and is refused once the ledger
// is out of the item or the slot already mirrors everything owned.
// -1 is a use: it removes one unit from the ledger as well, so consuming
// from the hotlist drains the main pool. A slot drained to zero is
// cleared.
func (p *Pool) AdjustQuantity(slotID string, delta int) error {
	if delta != 1 && delta != -1 {
		return errors.InvalidArgumentf("delta must be +1 or -1, got %d", delta)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	slot, err := p.slot(slotID)
	if err != nil {
		return err
	}
	if slot.item == nil {
		return errors.FailedPrecondition("slot is empty")
	}

	if delta == 1 {
		available := p.ledger.Quantity(slot.item.ID)
		if available == 0 {
			return errors.InsufficientQuantityf("ledger has no %s left to stage", slot.item.ID)
		}
		if slot.quantity+1 > available {
			return errors.InsufficientQuantityf("slot %s already stages all %d owned %s",
				slotID, available, slot.item.ID)
		}
		slot.quantity++
		return nil
	}

	if err := p.ledger.Remove(slot.item.ID, 1); err != nil {
		return err
	}
	slot.quantity--
	if slot.quantity == 0 {
		slot.item = nil
	}
	return nil
}

// Clear empties the slot. The staged quantity was never subtracted from
// the ledger, so clearing needs no ledger mutation.
func (p *Pool) Clear(slotID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	slot, err := p.slot(slotID)
	if err != nil {
		return err
	}
	slot.item = nil
	slot.quantity = 0
	return nil
}

// Slots returns the pool contents in slot order, including empty slots.
func (p *Pool) Slots() []sheet.UtilitySlotData {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]sheet.UtilitySlotData, len(p.slots))
	for i := range p.slots {
		out[i] = sheet.UtilitySlotData{
			SlotID:   p.slots[i].id,
			Item:     p.slots[i].item,
			Quantity: p.slots[i].quantity,
		}
	}
	return out
}

// restore places persisted contents back into a slot, clamping the
// quantity to the ledger bound so a stale snapshot cannot re-introduce
// more staged copies than are owned.
func (p *Pool) restore(data sheet.UtilitySlotData) error {
	if data.Item == nil || data.Quantity <= 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	slot, err := p.slot(data.SlotID)
	if err != nil {
		return err
	}

	quantity := data.Quantity
	if available := p.ledger.Quantity(data.Item.ID); quantity > available {
		quantity = available
	}
	if quantity == 0 {
		return nil
	}
	slot.item = data.Item
	slot.quantity = quantity
	return nil
}

// Package economy implements the item-economy core: the inventory
// ledger, the equipment slot registry, the utility pool, and the
// crafting resolver. Everything in this package is a synchronous,
// in-memory state transition; persistence and transport live elsewhere.
//
// The ledger is the single source of truth for item counts. The
// registry and the pool read quantities through it and route every
// mutation through Add/Remove/RemoveMany; nothing else touches a stack.
package economy

import (
	"sort"
	"sync"

	"github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
)

// Stack is one (item, quantity) entry in the ledger. At most one stack
// exists per item id; a stack whose quantity reaches zero is pruned.
type Stack struct {
	Item     *sheet.ItemDefinition
	Quantity int
}

// RemoveLine is one line of a batch remove.
type RemoveLine struct {
	ItemID   string
	Quantity int
}

// Ledger is the authoritative count of every item a character owns,
// independent of where the item is used. Each exported method is an
// indivisible step relative to every other ledger operation.
type Ledger struct {
	mu     sync.Mutex
	stacks map[string]*Stack
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{stacks: make(map[string]*Stack)}
}

// Add increases the stack for item by quantity, creating the stack if
// absent. A nil item or non-positive quantity is a no-op.
func (l *Ledger) Add(item *sheet.ItemDefinition, quantity int) {
	if item == nil || item.ID == "" || quantity <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if stack, ok := l.stacks[item.ID]; ok {
		stack.Quantity += quantity
		return
	}
	l.stacks[item.ID] = &Stack{Item: item, Quantity: quantity}
}

// Remove decreases the stack for itemID by quantity, pruning the stack
// when it reaches zero. Returns InsufficientQuantity if the stack does
// not have enough units; no mutation occurs on failure.
func (l *Ledger) Remove(itemID string, quantity int) error {
	if quantity <= 0 {
		return errors.InvalidArgumentf("remove quantity must be positive, got %d", quantity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.removeLocked(itemID, quantity)
}

func (l *Ledger) removeLocked(itemID string, quantity int) error {
	stack, ok := l.stacks[itemID]
	if !ok || stack.Quantity < quantity {
		have := 0
		if ok {
			have = stack.Quantity
		}
		return errors.InsufficientQuantityf("item %s: have %d, need %d", itemID, have, quantity).
			WithMeta("item_id", itemID).
			WithMeta("have", have).
			WithMeta("need", quantity)
	}

	stack.Quantity -= quantity
	if stack.Quantity == 0 {
		delete(l.stacks, itemID)
	}
	return nil
}

// RemoveMany applies a batch of removes all-or-nothing: if any line
// would fail, no stack is mutated. Lines for the same item are summed
// before checking, so a batch cannot sneak past the availability check
// by splitting one item across lines.
func (l *Ledger) RemoveMany(lines []RemoveLine) error {
	totals := make(map[string]int, len(lines))
	order := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return errors.InvalidArgumentf("remove quantity must be positive for item %s, got %d",
				line.ItemID, line.Quantity)
		}
		if _, seen := totals[line.ItemID]; !seen {
			order = append(order, line.ItemID)
		}
		totals[line.ItemID] += line.Quantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, itemID := range order {
		stack, ok := l.stacks[itemID]
		if !ok || stack.Quantity < totals[itemID] {
			have := 0
			if ok {
				have = stack.Quantity
			}
			return errors.InsufficientQuantityf("item %s: have %d, need %d", itemID, have, totals[itemID]).
				WithMeta("item_id", itemID).
				WithMeta("have", have).
				WithMeta("need", totals[itemID])
		}
	}

	for _, itemID := range order {
		// Checked above, cannot fail.
		_ = l.removeLocked(itemID, totals[itemID])
	}
	return nil
}

// Quantity returns the owned count for itemID, zero for unknown items.
func (l *Ledger) Quantity(itemID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if stack, ok := l.stacks[itemID]; ok {
		return stack.Quantity
	}
	return 0
}

// Has reports whether at least one unit of itemID is owned.
func (l *Ledger) Has(itemID string) bool {
	return l.Quantity(itemID) > 0
}

// Item returns the definition held by the stack for itemID, or nil.
func (l *Ledger) Item(itemID string) *sheet.ItemDefinition {
	l.mu.Lock()
	defer l.mu.Unlock()

	if stack, ok := l.stacks[itemID]; ok {
		return stack.Item
	}
	return nil
}

// Stacks returns a copy of all stacks ordered by item id. Pruned stacks
// never appear.
func (l *Ledger) Stacks() []Stack {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Stack, 0, len(l.stacks))
	for _, stack := range l.stacks {
		out = append(out, *stack)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out
}

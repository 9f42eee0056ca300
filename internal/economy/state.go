package economy

import (
	"github.com/greyvale/sheet-api/internal/entities/sheet"
)

// StateConfig configures a materialized sheet state.
type StateConfig struct {
	// ConsumeOnEquip is forwarded to the equipment registry.
	ConsumeOnEquip bool
}

// State is the single owned store for one character sheet: the ledger
// plus the registry and pool that read through it. Panels and handlers
// get a handle to this object and funnel every mutation through its
// components; nothing mutates a stack directly.
type State struct {
	Ledger   *Ledger
	Registry *Registry
	Pool     *Pool
}

// NewState creates an empty sheet state.
func NewState(cfg *StateConfig) (*State, error) {
	if cfg == nil {
		cfg = &StateConfig{}
	}

	ledger := NewLedger()
	registry, err := NewRegistry(&RegistryConfig{
		Ledger:         ledger,
		ConsumeOnEquip: cfg.ConsumeOnEquip,
	})
	if err != nil {
		return nil, err
	}
	pool, err := NewPool(ledger)
	if err != nil {
		return nil, err
	}

	return &State{Ledger: ledger, Registry: registry, Pool: pool}, nil
}

// FromSnapshot materializes a sheet state from a persisted snapshot.
// The ledger is restored first so that the pool's ledger bound holds
// while slots are refilled. Equipment entries with slot ids that no
// longer resolve are dropped rather than failing the whole load.
func FromSnapshot(data *sheet.SheetData, cfg *StateConfig) (*State, error) {
	state, err := NewState(cfg)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return state, nil
	}

	for _, stack := range data.Stacks {
		state.Ledger.Add(stack.Item, stack.Quantity)
	}

	for slotID, item := range data.Equipped {
		if item == nil {
			continue
		}
		// Restore bypasses the consume policy: the snapshot's ledger
		// already reflects whatever was consumed when the item was
		// equipped.
		if err := state.Registry.restore(SlotID(slotID), item); err != nil {
			continue
		}
	}

	for _, slot := range data.Utility {
		if err := state.Pool.restore(slot); err != nil {
			return nil, err
		}
	}

	return state, nil
}

// Snapshot flattens the state back into data, replacing its stacks,
// equipment bindings, and utility slots. Identity fields on data are
// left alone.
func (s *State) Snapshot(data *sheet.SheetData) {
	stacks := s.Ledger.Stacks()
	data.Stacks = make([]sheet.StackData, 0, len(stacks))
	for _, stack := range stacks {
		data.Stacks = append(data.Stacks, sheet.StackData{
			Item:     stack.Item,
			Quantity: stack.Quantity,
		})
	}

	data.Equipped = s.Registry.Equipped()
	data.Utility = s.Pool.Slots()
}

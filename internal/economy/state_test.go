package economy_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/greyvale/sheet-api/internal/economy"
	"github.com/greyvale/sheet-api/internal/entities/sheet"
)

type StateTestSuite struct {
	suite.Suite
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}

func (s *StateTestSuite) TestNewStateEmpty() {
	state, err := economy.NewState(nil)
	s.Require().NoError(err)
	s.Empty(state.Ledger.Stacks())
	s.Empty(state.Registry.Equipped())
	s.Len(state.Pool.Slots(), sheet.UtilitySlotCount)
}

func (s *StateTestSuite) TestRoundTrip() {
	state, err := economy.NewState(nil)
	s.Require().NoError(err)

	torch := &sheet.ItemDefinition{ID: "torch", Name: "Torch", Kind: sheet.ItemKindMiscellaneous}
	bracer := armorItem("bracer", "Bracer")
	sword := weaponItem("sword", "Short Sword")

	state.Ledger.Add(torch, 5)
	state.Ledger.Add(sword, 1)
	s.Require().NoError(state.Registry.Equip("wrist1", bracer))
	s.Require().NoError(state.Registry.Equip("primaryWeapon", sword))
	s.Require().NoError(state.Pool.Stage("utility0", torch, 3))

	data := &sheet.SheetData{ID: "sheet_1", PlayerID: "player_1"}
	state.Snapshot(data)

	restored, err := economy.FromSnapshot(data, nil)
	s.Require().NoError(err)

	s.Equal(5, restored.Ledger.Quantity("torch"))
	s.Equal(1, restored.Ledger.Quantity("sword"))

	got, err := restored.Registry.Get("wrist1")
	s.NoError(err)
	s.Equal("bracer", got.ID)

	slots := restored.Pool.Slots()
	s.Equal("torch", slots[0].Item.ID)
	s.Equal(3, slots[0].Quantity)
}

func (s *StateTestSuite) TestFromSnapshotNil() {
	state, err := economy.FromSnapshot(nil, nil)
	s.Require().NoError(err)
	s.Empty(state.Ledger.Stacks())
}

func (s *StateTestSuite) TestFromSnapshotClampsStaleUtility() {
	torch := &sheet.ItemDefinition{ID: "torch", Name: "Torch", Kind: sheet.ItemKindMiscellaneous}
	data := &sheet.SheetData{
		Stacks: []sheet.StackData{{Item: torch, Quantity: 2}},
		Utility: []sheet.UtilitySlotData{
			{SlotID: "utility0", Item: torch, Quantity: 4},
		},
	}

	state, err := economy.FromSnapshot(data, nil)
	s.Require().NoError(err)

	slots := state.Pool.Slots()
	s.Equal(2, slots[0].Quantity, "staged quantity is clamped to the ledger bound")
}

func (s *StateTestSuite) TestFromSnapshotDropsInvalidEquipment() {
	data := &sheet.SheetData{
		Equipped: map[string]*sheet.ItemDefinition{
			"wrist9":        armorItem("bracer", "Bracer"),
			"primaryWeapon": weaponItem("sword", "Sword"),
		},
	}

	state, err := economy.FromSnapshot(data, nil)
	s.Require().NoError(err)

	equipped := state.Registry.Equipped()
	s.Len(equipped, 1)
	s.Contains(equipped, "primaryWeapon")
}

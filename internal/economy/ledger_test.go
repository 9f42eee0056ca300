package economy_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/greyvale/sheet-api/internal/economy"
	"github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
)

func componentItem(id, name string) *sheet.ItemDefinition {
	return &sheet.ItemDefinition{
		ID:     id,
		Name:   name,
		Kind:   sheet.ItemKindCraftingComponent,
		Rarity: sheet.RarityCommon,
	}
}

type LedgerTestSuite struct {
	suite.Suite
	ledger *economy.Ledger

	ironOre *sheet.ItemDefinition
	leather *sheet.ItemDefinition
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	s.ledger = economy.NewLedger()
	s.ironOre = componentItem("ironOre", "Iron Ore")
	s.leather = componentItem("leather", "Leather")
}

func (s *LedgerTestSuite) TestAddAndQuantity() {
	s.Equal(0, s.ledger.Quantity("ironOre"))

	s.ledger.Add(s.ironOre, 5)
	s.Equal(5, s.ledger.Quantity("ironOre"))

	s.ledger.Add(s.ironOre, 2)
	s.Equal(7, s.ledger.Quantity("ironOre"))

	// One stack per item id
	stacks := s.ledger.Stacks()
	s.Len(stacks, 1)
	s.Equal("ironOre", stacks[0].Item.ID)
	s.Equal(7, stacks[0].Quantity)
}

func (s *LedgerTestSuite) TestAddIgnoresBadInput() {
	s.ledger.Add(nil, 3)
	s.ledger.Add(s.ironOre, 0)
	s.ledger.Add(s.ironOre, -4)
	s.Empty(s.ledger.Stacks())
}

func (s *LedgerTestSuite) TestRemove() {
	s.ledger.Add(s.ironOre, 5)

	s.NoError(s.ledger.Remove("ironOre", 3))
	s.Equal(2, s.ledger.Quantity("ironOre"))

	err := s.ledger.Remove("ironOre", 5)
	s.True(errors.IsInsufficientQuantity(err))
	s.Equal(2, s.ledger.Quantity("ironOre"), "failed remove must not mutate")
}

func (s *LedgerTestSuite) TestRemoveUnknownItem() {
	err := s.ledger.Remove("phantom", 1)
	s.True(errors.IsInsufficientQuantity(err))
}

func (s *LedgerTestSuite) TestRemovePrunesAtZero() {
	s.ledger.Add(s.ironOre, 2)
	s.NoError(s.ledger.Remove("ironOre", 2))

	s.Equal(0, s.ledger.Quantity("ironOre"))
	s.False(s.ledger.Has("ironOre"))
	s.Empty(s.ledger.Stacks(), "zeroed stack must be absent from enumeration")
}

func (s *LedgerTestSuite) TestRemoveManyAllOrNothing() {
	s.ledger.Add(s.ironOre, 2)
	s.ledger.Add(s.leather, 1)

	err := s.ledger.RemoveMany([]economy.RemoveLine{
		{ItemID: "ironOre", Quantity: 2},
		{ItemID: "leather", Quantity: 3},
	})
	s.True(errors.IsInsufficientQuantity(err))
	s.Equal(2, s.ledger.Quantity("ironOre"), "no line may be applied when any line fails")
	s.Equal(1, s.ledger.Quantity("leather"))
}

func (s *LedgerTestSuite) TestRemoveManySuccess() {
	s.ledger.Add(s.ironOre, 2)
	s.ledger.Add(s.leather, 1)

	s.NoError(s.ledger.RemoveMany([]economy.RemoveLine{
		{ItemID: "ironOre", Quantity: 2},
		{ItemID: "leather", Quantity: 1},
	}))
	s.Equal(0, s.ledger.Quantity("ironOre"))
	s.Equal(0, s.ledger.Quantity("leather"))
	s.Empty(s.ledger.Stacks())
}

func (s *LedgerTestSuite) TestRemoveManySumsDuplicateLines() {
	s.ledger.Add(s.ironOre, 3)

	err := s.ledger.RemoveMany([]economy.RemoveLine{
		{ItemID: "ironOre", Quantity: 2},
		{ItemID: "ironOre", Quantity: 2},
	})
	s.True(errors.IsInsufficientQuantity(err), "split lines must not pass the availability check")
	s.Equal(3, s.ledger.Quantity("ironOre"))
}

func (s *LedgerTestSuite) TestConservation() {
	// Every successful add/remove pair nets out: nothing is created or
	// destroyed outside the calls themselves.
	s.ledger.Add(s.ironOre, 10)
	s.ledger.Add(s.leather, 4)
	s.NoError(s.ledger.Remove("ironOre", 4))
	s.NoError(s.ledger.RemoveMany([]economy.RemoveLine{
		{ItemID: "ironOre", Quantity: 6},
		{ItemID: "leather", Quantity: 1},
	}))

	added := 10 + 4
	removed := 4 + 6 + 1
	remaining := 0
	for _, stack := range s.ledger.Stacks() {
		remaining += stack.Quantity
	}
	s.Equal(added-removed, remaining)
}

func (s *LedgerTestSuite) TestStacksOrderedByItemID() {
	s.ledger.Add(s.leather, 1)
	s.ledger.Add(s.ironOre, 1)

	stacks := s.ledger.Stacks()
	s.Require().Len(stacks, 2)
	s.Equal("ironOre", stacks[0].Item.ID)
	s.Equal("leather", stacks[1].Item.ID)
}

package sheet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/greyvale/sheet-api/internal/clients/catalog/mock"
	entities "github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
	"github.com/greyvale/sheet-api/internal/orchestrators/sheet"
	"github.com/greyvale/sheet-api/internal/pkg/idgen"
	sheetrepo "github.com/greyvale/sheet-api/internal/repositories/sheet"
	sheetrepomock "github.com/greyvale/sheet-api/internal/repositories/sheet/mock"
	sheetservice "github.com/greyvale/sheet-api/internal/services/sheet"
	"github.com/greyvale/sheet-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *sheetrepomock.MockRepository
	mockCatalog  *catalogmock.MockClient
	orchestrator *sheet.Orchestrator
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = sheetrepomock.NewMockRepository(s.ctrl)
	s.mockCatalog = catalogmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := sheet.New(&sheet.Config{
		SheetRepo:   s.mockRepo,
		Catalog:     s.mockCatalog,
		IDGenerator: idgen.NewSequential("sheet"),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectGet wires the repo mock to return data for the test sheet.
func (s *OrchestratorTestSuite) expectGet(data *entities.SheetData) {
	s.mockRepo.EXPECT().
		Get(s.ctx, sheetrepo.GetInput{ID: data.ID}).
		Return(&sheetrepo.GetOutput{Sheet: data}, nil)
}

// expectUpdate wires the repo mock to echo back whatever is saved.
func (s *OrchestratorTestSuite) expectUpdate() {
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sheetrepo.UpdateInput) (*sheetrepo.UpdateOutput, error) {
			return &sheetrepo.UpdateOutput{Sheet: input.Sheet}, nil
		})
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := sheet.New(&sheet.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateSheet() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sheetrepo.CreateInput) (*sheetrepo.CreateOutput, error) {
			return &sheetrepo.CreateOutput{Sheet: input.Sheet}, nil
		})

	output, err := s.orchestrator.CreateSheet(s.ctx, &sheetservice.CreateSheetInput{
		PlayerID: testutils.TestPlayerID,
		Name:     "Brialynne",
		Gold:     150,
	})
	s.Require().NoError(err)
	s.Equal("sheet_1", output.Sheet.ID)
	s.Equal(testutils.TestPlayerID, output.Sheet.PlayerID)
	s.Equal(int64(150), output.Sheet.Gold)
	s.Empty(output.Sheet.Stacks)
	s.Len(output.Sheet.Utility, entities.UtilitySlotCount)
}

func (s *OrchestratorTestSuite) TestCreateSheetValidation() {
	testCases := []struct {
		name  string
		input *sheetservice.CreateSheetInput
	}{
		{name: "nil input", input: nil},
		{name: "missing player", input: &sheetservice.CreateSheetInput{Name: "X"}},
		{name: "missing name", input: &sheetservice.CreateSheetInput{PlayerID: "p"}},
		{name: "negative gold", input: &sheetservice.CreateSheetInput{PlayerID: "p", Name: "X", Gold: -1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateSheet(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestUpdateGold() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	s.expectGet(data)
	s.expectUpdate()

	output, err := s.orchestrator.UpdateGold(s.ctx, &sheetservice.UpdateGoldInput{
		SheetID: testutils.TestSheetID,
		Gold:    999,
	})
	s.Require().NoError(err)
	s.Equal(int64(999), output.Sheet.Gold)
}

func (s *OrchestratorTestSuite) TestAddItem() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	potion := testutils.NewTestItem("healing-potion", "Healing Potion", entities.ItemKindPotion)

	s.mockCatalog.EXPECT().
		GetItem(s.ctx, "healing-potion").
		Return(potion, nil)
	s.expectGet(data)
	s.expectUpdate()

	output, err := s.orchestrator.AddItem(s.ctx, &sheetservice.AddItemInput{
		SheetID:  testutils.TestSheetID,
		ItemID:   "healing-potion",
		Quantity: 3,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Sheet.Stacks, 1)
	s.Equal(3, output.Sheet.Stacks[0].Quantity)
	s.Equal("healing-potion", output.Sheet.Stacks[0].Item.ID)
}

func (s *OrchestratorTestSuite) TestAddItemCatalogMiss() {
	s.mockCatalog.EXPECT().
		GetItem(s.ctx, "no-such-item").
		Return(nil, errors.NotFound("item no-such-item not found"))

	_, err := s.orchestrator.AddItem(s.ctx, &sheetservice.AddItemInput{
		SheetID:  testutils.TestSheetID,
		ItemID:   "no-such-item",
		Quantity: 1,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRemoveItemInsufficient() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	potion := testutils.NewTestItem("healing-potion", "Healing Potion", entities.ItemKindPotion)
	data.Stacks = []entities.StackData{{Item: potion, Quantity: 2}}

	s.expectGet(data)

	_, err := s.orchestrator.RemoveItem(s.ctx, &sheetservice.RemoveItemInput{
		SheetID:  testutils.TestSheetID,
		ItemID:   "healing-potion",
		Quantity: 5,
	})
	s.Require().Error(err)
	s.True(errors.IsInsufficientQuantity(err))
}

func (s *OrchestratorTestSuite) TestRemoveItemPrunesStack() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	potion := testutils.NewTestItem("healing-potion", "Healing Potion", entities.ItemKindPotion)
	data.Stacks = []entities.StackData{{Item: potion, Quantity: 2}}

	s.expectGet(data)
	s.expectUpdate()

	output, err := s.orchestrator.RemoveItem(s.ctx, &sheetservice.RemoveItemInput{
		SheetID:  testutils.TestSheetID,
		ItemID:   "healing-potion",
		Quantity: 2,
	})
	s.Require().NoError(err)
	s.Empty(output.Sheet.Stacks)
}

func (s *OrchestratorTestSuite) TestEquipItem() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	helm := testutils.NewTestItem("iron-helm", "Iron Helm", entities.ItemKindArmor)

	s.mockCatalog.EXPECT().
		GetItem(s.ctx, "iron-helm").
		Return(helm, nil)
	s.expectGet(data)
	s.expectUpdate()

	output, err := s.orchestrator.EquipItem(s.ctx, &sheetservice.EquipItemInput{
		SheetID: testutils.TestSheetID,
		SlotID:  "head",
		ItemID:  "iron-helm",
	})
	s.Require().NoError(err)
	s.Require().Contains(output.Sheet.Equipped, "head")
	s.Equal("iron-helm", output.Sheet.Equipped["head"].ID)
}

func (s *OrchestratorTestSuite) TestEquipItemWrongKind() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	potion := testutils.NewTestItem("healing-potion", "Healing Potion", entities.ItemKindPotion)

	s.mockCatalog.EXPECT().
		GetItem(s.ctx, "healing-potion").
		Return(potion, nil)
	s.expectGet(data)

	_, err := s.orchestrator.EquipItem(s.ctx, &sheetservice.EquipItemInput{
		SheetID: testutils.TestSheetID,
		SlotID:  "head",
		ItemID:  "healing-potion",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUnequipItem() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	helm := testutils.NewTestItem("iron-helm", "Iron Helm", entities.ItemKindArmor)
	data.Equipped = map[string]*entities.ItemDefinition{"head": helm}

	s.expectGet(data)
	s.expectUpdate()

	output, err := s.orchestrator.UnequipItem(s.ctx, &sheetservice.UnequipItemInput{
		SheetID: testutils.TestSheetID,
		SlotID:  "head",
	})
	s.Require().NoError(err)
	s.NotContains(output.Sheet.Equipped, "head")
}

func (s *OrchestratorTestSuite) TestCountEquipped() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	data.Equipped = map[string]*entities.ItemDefinition{
		"wrist0": testutils.NewTestItem("bracer-a", "Bracer A", entities.ItemKindArmor),
		"wrist1": testutils.NewTestItem("bracer-b", "Bracer B", entities.ItemKindArmor),
		"neck":   testutils.NewTestItem("amulet", "Amulet", entities.ItemKindArmor),
	}

	testCases := []struct {
		name     string
		input    *sheetservice.CountEquippedInput
		expected int
	}{
		{
			name:     "by kind",
			input:    &sheetservice.CountEquippedInput{SheetID: testutils.TestSheetID, SlotKind: "wrist"},
			expected: 2,
		},
		{
			name:     "by category",
			input:    &sheetservice.CountEquippedInput{SheetID: testutils.TestSheetID, Category: "accessories"},
			expected: 3,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectGet(data)

			output, err := s.orchestrator.CountEquipped(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, output.Count)
		})
	}
}

func (s *OrchestratorTestSuite) TestCountEquippedRequiresOneSelector() {
	_, err := s.orchestrator.CountEquipped(s.ctx, &sheetservice.CountEquippedInput{
		SheetID:  testutils.TestSheetID,
		SlotKind: "wrist",
		Category: "accessories",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestStageUtilityItem() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	potion := testutils.NewTestItem("healing-potion", "Healing Potion", entities.ItemKindPotion)
	data.Stacks = []entities.StackData{{Item: potion, Quantity: 4}}

	s.expectGet(data)
	s.expectUpdate()

	output, err := s.orchestrator.StageUtilityItem(s.ctx, &sheetservice.StageUtilityItemInput{
		SheetID:  testutils.TestSheetID,
		SlotID:   "utility0",
		ItemID:   "healing-potion",
		Quantity: 2,
	})
	s.Require().NoError(err)

	slot := output.Sheet.Utility[0]
	s.Equal("healing-potion", slot.Item.ID)
	s.Equal(2, slot.Quantity)
	// Staging mirrors the ledger, it never drains it.
	s.Equal(4, output.Sheet.Stacks[0].Quantity)
}

func (s *OrchestratorTestSuite) TestAdjustUtilityConsumesLedger() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	potion := testutils.NewTestItem("healing-potion", "Healing Potion", entities.ItemKindPotion)
	data.Stacks = []entities.StackData{{Item: potion, Quantity: 3}}
	data.Utility = []entities.UtilitySlotData{
		{SlotID: "utility0", Item: potion, Quantity: 2},
	}

	s.expectGet(data)
	s.expectUpdate()

	output, err := s.orchestrator.AdjustUtilityQuantity(s.ctx, &sheetservice.AdjustUtilityQuantityInput{
		SheetID: testutils.TestSheetID,
		SlotID:  "utility0",
		Delta:   -1,
	})
	s.Require().NoError(err)
	s.Equal(1, output.Sheet.Utility[0].Quantity)
	s.Equal(2, output.Sheet.Stacks[0].Quantity)
}

func (s *OrchestratorTestSuite) TestAdjustUtilityRejectsBigDelta() {
	_, err := s.orchestrator.AdjustUtilityQuantity(s.ctx, &sheetservice.AdjustUtilityQuantityInput{
		SheetID: testutils.TestSheetID,
		SlotID:  "utility0",
		Delta:   3,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestClearUtilitySlot() {
	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	potion := testutils.NewTestItem("healing-potion", "Healing Potion", entities.ItemKindPotion)
	data.Stacks = []entities.StackData{{Item: potion, Quantity: 3}}
	data.Utility = []entities.UtilitySlotData{
		{SlotID: "utility0", Item: potion, Quantity: 2},
	}

	s.expectGet(data)
	s.expectUpdate()

	output, err := s.orchestrator.ClearUtilitySlot(s.ctx, &sheetservice.ClearUtilitySlotInput{
		SheetID: testutils.TestSheetID,
		SlotID:  "utility0",
	})
	s.Require().NoError(err)
	s.Nil(output.Sheet.Utility[0].Item)
	s.Equal(3, output.Sheet.Stacks[0].Quantity)
}

func (s *OrchestratorTestSuite) craftingFixtures() (*entities.SheetData, *entities.RecipeDefinition, []*entities.ItemDefinition) {
	ore := testutils.NewTestItem("iron-ore", "Iron Ore", entities.ItemKindCraftingComponent)
	hide := testutils.NewTestItem("boar-hide", "Boar Hide", entities.ItemKindCraftingComponent)
	sword := testutils.NewTestItem("iron-sword", "Iron Sword", entities.ItemKindWeapon)
	recipeItem := testutils.NewTestItem("recipe-iron-sword", "Recipe: Iron Sword", entities.ItemKindRecipe)

	recipe := testutils.NewTestRecipe("recipe-iron-sword", "iron-sword",
		entities.ComponentRequirement{ItemID: "iron-ore", Name: "Iron Ore", Quantity: 2},
		entities.ComponentRequirement{ItemID: "boar-hide", Name: "Boar Hide", Quantity: 1},
	)

	data := testutils.NewTestSheet(testutils.TestSheetID, testutils.TestPlayerID)
	data.Stacks = []entities.StackData{
		{Item: recipeItem, Quantity: 1},
		{Item: ore, Quantity: 2},
		{Item: hide, Quantity: 1},
	}

	return data, recipe, []*entities.ItemDefinition{ore, hide, sword, recipeItem}
}

func (s *OrchestratorTestSuite) TestListCraftable() {
	data, recipe, items := s.craftingFixtures()

	s.expectGet(data)
	s.mockCatalog.EXPECT().ListRecipes(s.ctx).Return([]*entities.RecipeDefinition{recipe}, nil)
	s.mockCatalog.EXPECT().ListItems(s.ctx).Return(items, nil)

	output, err := s.orchestrator.ListCraftable(s.ctx, &sheetservice.ListCraftableInput{
		SheetID: testutils.TestSheetID,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Recipes, 1)
	s.True(output.Recipes[0].IsKnown)
	s.True(output.Recipes[0].CanCraft)
	s.Empty(output.Recipes[0].Missing)
}

func (s *OrchestratorTestSuite) TestListCraftableSkipsUnknownRecipes() {
	data, recipe, items := s.craftingFixtures()
	// Drop the recipe item: the recipe exists in the catalog but the
	// sheet has never learned it.
	data.Stacks = data.Stacks[1:]

	s.expectGet(data)
	s.mockCatalog.EXPECT().ListRecipes(s.ctx).Return([]*entities.RecipeDefinition{recipe}, nil)
	s.mockCatalog.EXPECT().ListItems(s.ctx).Return(items, nil)

	output, err := s.orchestrator.ListCraftable(s.ctx, &sheetservice.ListCraftableInput{
		SheetID: testutils.TestSheetID,
	})
	s.Require().NoError(err)
	s.Empty(output.Recipes)
}

func (s *OrchestratorTestSuite) TestCraftItem() {
	data, recipe, items := s.craftingFixtures()

	s.expectGet(data)
	s.mockCatalog.EXPECT().ListRecipes(s.ctx).Return([]*entities.RecipeDefinition{recipe}, nil)
	s.mockCatalog.EXPECT().ListItems(s.ctx).Return(items, nil)
	s.expectUpdate()

	output, err := s.orchestrator.CraftItem(s.ctx, &sheetservice.CraftItemInput{
		SheetID:  testutils.TestSheetID,
		RecipeID: "recipe-iron-sword",
	})
	s.Require().NoError(err)
	s.Equal("iron-sword", output.CraftedItem.ID)

	quantities := map[string]int{}
	for _, stack := range output.Sheet.Stacks {
		quantities[stack.Item.ID] = stack.Quantity
	}
	s.Equal(1, quantities["iron-sword"])
	s.Equal(1, quantities["recipe-iron-sword"])
	s.NotContains(quantities, "iron-ore")
	s.NotContains(quantities, "boar-hide")
}

func (s *OrchestratorTestSuite) TestCraftItemMissingComponents() {
	data, recipe, items := s.craftingFixtures()
	// Only one ore where the recipe needs two.
	data.Stacks[1].Quantity = 1

	s.expectGet(data)
	s.mockCatalog.EXPECT().ListRecipes(s.ctx).Return([]*entities.RecipeDefinition{recipe}, nil)
	s.mockCatalog.EXPECT().ListItems(s.ctx).Return(items, nil)

	_, err := s.orchestrator.CraftItem(s.ctx, &sheetservice.CraftItemInput{
		SheetID:  testutils.TestSheetID,
		RecipeID: "recipe-iron-sword",
	})
	s.Require().Error(err)
	s.True(errors.IsInsufficientComponents(err))
}

func (s *OrchestratorTestSuite) TestCraftItemUnknownRecipeID() {
	data, _, _ := s.craftingFixtures()

	s.expectGet(data)
	s.mockCatalog.EXPECT().ListRecipes(s.ctx).Return(nil, nil)

	_, err := s.orchestrator.CraftItem(s.ctx, &sheetservice.CraftItemInput{
		SheetID:  testutils.TestSheetID,
		RecipeID: "recipe-iron-sword",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

// Package httpapi exposes the sheet service over a JSON HTTP API
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	entities "github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
	sheetservice "github.com/greyvale/sheet-api/internal/services/sheet"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	SheetService sheetservice.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}

	return vb.Build()
}

// Handler serves the sheet API routes
type Handler struct {
	sheetService sheetservice.Service
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{sheetService: cfg.SheetService}, nil
}

// Routes builds the route table. All routes are wrapped with CORS
// headers for the browser client.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.handleHealth)

	mux.HandleFunc("POST /v1/sheets", h.handleCreateSheet)
	mux.HandleFunc("GET /v1/sheets", h.handleListSheets)
	mux.HandleFunc("GET /v1/sheets/{sheetID}", h.handleGetSheet)
	mux.HandleFunc("DELETE /v1/sheets/{sheetID}", h.handleDeleteSheet)
	mux.HandleFunc("PUT /v1/sheets/{sheetID}/gold", h.handleUpdateGold)

	mux.HandleFunc("GET /v1/sheets/{sheetID}/inventory", h.handleGetInventory)
	mux.HandleFunc("POST /v1/sheets/{sheetID}/inventory", h.handleAddItem)
	mux.HandleFunc("POST /v1/sheets/{sheetID}/inventory/remove", h.handleRemoveItem)

	mux.HandleFunc("GET /v1/sheets/{sheetID}/equipment", h.handleGetEquipment)
	mux.HandleFunc("GET /v1/sheets/{sheetID}/equipment/count", h.handleCountEquipped)
	mux.HandleFunc("PUT /v1/sheets/{sheetID}/equipment/{slotID}", h.handleEquipItem)
	mux.HandleFunc("DELETE /v1/sheets/{sheetID}/equipment/{slotID}", h.handleUnequipItem)

	mux.HandleFunc("PUT /v1/sheets/{sheetID}/utility/{slotID}", h.handleStageUtilityItem)
	mux.HandleFunc("POST /v1/sheets/{sheetID}/utility/{slotID}/adjust", h.handleAdjustUtilityQuantity)
	mux.HandleFunc("DELETE /v1/sheets/{sheetID}/utility/{slotID}", h.handleClearUtilitySlot)

	mux.HandleFunc("GET /v1/sheets/{sheetID}/craftable", h.handleListCraftable)
	mux.HandleFunc("POST /v1/sheets/{sheetID}/craft", h.handleCraftItem)

	return enableCORS(mux)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	respondJSON(w, code.HTTPStatus(), errorBody{
		Code:    string(code),
		Message: errors.GetMessage(err),
	})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidArgument("malformed request body")
	}
	return nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Sheet lifecycle handlers

type createSheetRequest struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Gold     int64  `json:"gold"`
}

func (h *Handler) handleCreateSheet(w http.ResponseWriter, r *http.Request) {
	var req createSheetRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	output, err := h.sheetService.CreateSheet(r.Context(), &sheetservice.CreateSheetInput{
		PlayerID: req.PlayerID,
		Name:     req.Name,
		Gold:     req.Gold,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output.Sheet)
}

func (h *Handler) handleListSheets(w http.ResponseWriter, r *http.Request) {
	output, err := h.sheetService.ListSheets(r.Context(), &sheetservice.ListSheetsInput{
		PlayerID: r.URL.Query().Get("playerId"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheets)
}

func (h *Handler) handleGetSheet(w http.ResponseWriter, r *http.Request) {
	output, err := h.sheetService.GetSheet(r.Context(), &sheetservice.GetSheetInput{
		SheetID: r.PathValue("sheetID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheet)
}

func (h *Handler) handleDeleteSheet(w http.ResponseWriter, r *http.Request) {
	_, err := h.sheetService.DeleteSheet(r.Context(), &sheetservice.DeleteSheetInput{
		SheetID: r.PathValue("sheetID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

type updateGoldRequest struct {
	Gold int64 `json:"gold"`
}

func (h *Handler) handleUpdateGold(w http.ResponseWriter, r *http.Request) {
	var req updateGoldRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	output, err := h.sheetService.UpdateGold(r.Context(), &sheetservice.UpdateGoldInput{
		SheetID: r.PathValue("sheetID"),
		Gold:    req.Gold,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheet)
}

// Inventory handlers

type inventoryItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) handleGetInventory(w http.ResponseWriter, r *http.Request) {
	output, err := h.sheetService.GetInventory(r.Context(), &sheetservice.GetInventoryInput{
		SheetID: r.PathValue("sheetID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Stacks)
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	output, err := h.sheetService.AddItem(r.Context(), &sheetservice.AddItemInput{
		SheetID:  r.PathValue("sheetID"),
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheet)
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	var req inventoryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	output, err := h.sheetService.RemoveItem(r.Context(), &sheetservice.RemoveItemInput{
		SheetID:  r.PathValue("sheetID"),
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheet)
}

// Equipment handlers

type equipItemRequest struct {
	ItemID string `json:"itemId"`
}

func (h *Handler) handleGetEquipment(w http.ResponseWriter, r *http.Request) {
	output, err := h.sheetService.GetEquipment(r.Context(), &sheetservice.GetEquipmentInput{
		SheetID: r.PathValue("sheetID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Equipped)
}

// countEquippedResponse is the JSON shape of a slot count.
type countEquippedResponse struct {
	Count int `json:"count"`
}

func (h *Handler) handleCountEquipped(w http.ResponseWriter, r *http.Request) {
	output, err := h.sheetService.CountEquipped(r.Context(), &sheetservice.CountEquippedInput{
		SheetID:  r.PathValue("sheetID"),
		SlotKind: r.URL.Query().Get("kind"),
		Category: r.URL.Query().Get("category"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, countEquippedResponse{Count: output.Count})
}

func (h *Handler) handleEquipItem(w http.ResponseWriter, r *http.Request) {
	var req equipItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	output, err := h.sheetService.EquipItem(r.Context(), &sheetservice.EquipItemInput{
		SheetID: r.PathValue("sheetID"),
		SlotID:  r.PathValue("slotID"),
		ItemID:  req.ItemID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheet)
}

func (h *Handler) handleUnequipItem(w http.ResponseWriter, r *http.Request) {
	output, err := h.sheetService.UnequipItem(r.Context(), &sheetservice.UnequipItemInput{
		SheetID: r.PathValue("sheetID"),
		SlotID:  r.PathValue("slotID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheet)
}

// Utility pool handlers

type stageUtilityRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) handleStageUtilityItem(w http.ResponseWriter, r *http.Request) {
	var req stageUtilityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	output, err := h.sheetService.StageUtilityItem(r.Context(), &sheetservice.StageUtilityItemInput{
		SheetID:  r.PathValue("sheetID"),
		SlotID:   r.PathValue("slotID"),
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheet)
}

type adjustUtilityRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) handleAdjustUtilityQuantity(w http.ResponseWriter, r *http.Request) {
	var req adjustUtilityRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	output, err := h.sheetService.AdjustUtilityQuantity(r.Context(), &sheetservice.AdjustUtilityQuantityInput{
		SheetID: r.PathValue("sheetID"),
		SlotID:  r.PathValue("slotID"),
		Delta:   req.Delta,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheet)
}

func (h *Handler) handleClearUtilitySlot(w http.ResponseWriter, r *http.Request) {
	output, err := h.sheetService.ClearUtilitySlot(r.Context(), &sheetservice.ClearUtilitySlotInput{
		SheetID: r.PathValue("sheetID"),
		SlotID:  r.PathValue("slotID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Sheet)
}

// Crafting handlers

type craftItemRequest struct {
	RecipeID string `json:"recipeId"`
}

type craftItemResponse struct {
	Sheet       *entities.SheetData      `json:"sheet"`
	CraftedItem *entities.ItemDefinition `json:"craftedItem"`
}

func (h *Handler) handleListCraftable(w http.ResponseWriter, r *http.Request) {
	output, err := h.sheetService.ListCraftable(r.Context(), &sheetservice.ListCraftableInput{
		SheetID: r.PathValue("sheetID"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, output.Recipes)
}

func (h *Handler) handleCraftItem(w http.ResponseWriter, r *http.Request) {
	var req craftItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	output, err := h.sheetService.CraftItem(r.Context(), &sheetservice.CraftItemInput{
		SheetID:  r.PathValue("sheetID"),
		RecipeID: req.RecipeID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, craftItemResponse{
		Sheet:       output.Sheet,
		CraftedItem: output.CraftedItem,
	})
}

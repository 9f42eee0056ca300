// Package catalog is the client for the static item and recipe catalog:
// a read-only lookup service keyed by item id. The catalog owns every
// ItemDefinition and RecipeDefinition; the rest of the system holds
// references into it and never mutates an entry.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/greyvale/sheet-api/internal/clients/catalog Client

import (
	"context"

	"github.com/greyvale/sheet-api/internal/entities/sheet"
)

// Client defines the interface for catalog lookups
type Client interface {
	// GetItem fetches one item definition
	// Returns errors.NotFound on a catalog miss; callers render the
	// entity as an unknown item instead of failing the whole screen
	GetItem(ctx context.Context, itemID string) (*sheet.ItemDefinition, error)

	// ListItems returns every item definition in the catalog
	ListItems(ctx context.Context) ([]*sheet.ItemDefinition, error)

	// ListRecipes returns every recipe definition in the catalog
	ListRecipes(ctx context.Context) ([]*sheet.RecipeDefinition, error)
}

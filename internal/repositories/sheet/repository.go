// Package sheet provides the interface for character sheet persistence
package sheet

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetrepomock github.com/greyvale/sheet-api/internal/repositories/sheet Repository

import (
	"context"

	entities "github.com/greyvale/sheet-api/internal/entities/sheet"
)

// Repository defines the interface for sheet persistence. The economy
// core exposes its full state as a SheetData snapshot; this layer
// decides nothing about its contents, it only stores and indexes it.
type Repository interface {
	// Create stores a new sheet document
	// Returns errors.InvalidArgument for nil/incomplete sheets
	// Returns errors.AlreadyExists if the sheet ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a sheet document by ID
	// Returns errors.NotFound if no sheet exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites an existing sheet document
	// Returns errors.NotFound if no sheet exists
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a sheet document and its index entries
	// Returns errors.NotFound if no sheet exists
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID returns all sheets owned by a player
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a sheet
type CreateInput struct {
	Sheet *entities.SheetData
}

// CreateOutput defines the output for creating a sheet
type CreateOutput struct {
	Sheet *entities.SheetData
}

// GetInput defines the input for getting a sheet
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a sheet
type GetOutput struct {
	Sheet *entities.SheetData
}

// UpdateInput defines the input for updating a sheet
type UpdateInput struct {
	Sheet *entities.SheetData
}

// UpdateOutput defines the output for updating a sheet
type UpdateOutput struct {
	Sheet *entities.SheetData
}

// DeleteInput defines the input for deleting a sheet
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a sheet
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing a player's sheets
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's sheets
type ListByPlayerIDOutput struct {
	Sheets []*entities.SheetData
}

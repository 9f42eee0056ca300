// Package errors provides the structured error handling used across sheet-api.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping via Code.HTTPStatus
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("sheet not found")
//	err := errors.InsufficientQuantityf("have %d, need %d", have, need)
//
// Adding metadata:
//
//	err := errors.InsufficientComponents("missing components").
//	    WithMeta("missing", shortfall)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get sheet")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsInsufficientQuantity(err) {
//	    // Surface a blocking message, nothing was mutated
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("sheetID", input.SheetID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound / AlreadyExists with relevant IDs in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Let economy errors (InsufficientQuantity, SlotOccupied,
//     RecipeUnknown, InsufficientComponents) pass through untouched so
//     handlers can map them
//
// Handler layer:
//   - Map codes to HTTP statuses with Code.HTTPStatus
//   - Render Message and Meta as the JSON error body
package errors

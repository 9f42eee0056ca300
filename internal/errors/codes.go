package errors

import "net/http"

// Code represents an error code
type Code string

// Infrastructure error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Item-economy error codes. These are expected, recoverable outcomes of
// ledger, slot, and crafting operations, not infrastructure failures.
const (
	CodeInsufficientQuantity   Code = "INSUFFICIENT_QUANTITY"
	CodeSlotOccupied           Code = "SLOT_OCCUPIED"
	CodeRecipeUnknown          Code = "RECIPE_UNKNOWN"
	CodeInsufficientComponents Code = "INSUFFICIENT_COMPONENTS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeInternal:
		return http.StatusInternalServerError
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeInsufficientQuantity, CodeInsufficientComponents:
		return http.StatusConflict
	case CodeSlotOccupied:
		return http.StatusConflict
	case CodeRecipeUnknown:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

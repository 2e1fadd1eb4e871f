package domain

import "errors"

// Domain failure taxonomy. Handlers return these sentinels (possibly
// wrapped); the delivery layer maps them onto transport status codes.
var (
	// ErrNotFound signals that an id does not resolve to an active entity.
	// It is an absent-value outcome rather than an exceptional failure.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName signals a case-insensitive category name collision.
	ErrDuplicateName = errors.New("category name already exists")

	// ErrHasDependents signals a category deletion blocked by active products.
	ErrHasDependents = errors.New("category has active products")

	// ErrInvalidCategory signals a product referencing a missing or
	// inactive category.
	ErrInvalidCategory = errors.New("category does not exist")

	// ErrInvalidArgument signals a value that violates a domain invariant:
	// negative price or stock, non-positive adjustment quantity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientStock signals a stock removal exceeding the current
	// quantity. It is a kind of invalid argument.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// IsInvalidArgument reports whether err belongs to the invalid-argument
// family, including insufficient stock.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInsufficientStock)
}

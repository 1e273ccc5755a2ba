package domain

import "errors"

// Domain errors for catalog lookups
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrUnknownCategory indicates a product references a category the catalog does not define.
	ErrUnknownCategory = errors.New("product references an unknown category")

	// ErrDuplicateID indicates two catalog entries of the same kind share an ID.
	ErrDuplicateID = errors.New("duplicate catalog id")
)

// Domain errors for Money value object
var (
	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Domain errors for catalog entry validation
var (
	// ErrEmptyID indicates an attempt to create a catalog entry without an ID.
	ErrEmptyID = errors.New("catalog id cannot be empty")

	// ErrEmptyName indicates an attempt to create a catalog entry with an empty name.
	ErrEmptyName = errors.New("catalog name cannot be empty")

	// ErrEmptyProductCategory indicates an attempt to create a product with an empty category.
	ErrEmptyProductCategory = errors.New("product category cannot be empty")

	// ErrNameTooLong indicates the name exceeds maximum length.
	ErrNameTooLong = errors.New("catalog name exceeds maximum length of 255 characters")
)

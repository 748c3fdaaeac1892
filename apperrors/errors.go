package apperrors

import "fmt"

// Kind identifies the machine-readable error category returned to API clients.
type Kind string

const (
	KindInvalidRequest  Kind = "INVALID_REQUEST"
	KindNotFound        Kind = "NOT_FOUND"
	KindOutOfBounds     Kind = "OUT_OF_BOUNDS"
	KindInvalidGeometry Kind = "INVALID_GEOMETRY"
	KindInternal        Kind = "INTERNAL"
)

// InvalidRequestError signals malformed input (bad shape or values). Maps to 400.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string { return e.Message }

// ProductNotFoundError signals a missing or inactive product. Maps to 404.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

// AreaNotFoundError signals an unknown print area or side id. Maps to 404.
type AreaNotFoundError struct {
	AreaID string
}

func (e *AreaNotFoundError) Error() string {
	return fmt.Sprintf("print area not found: %s", e.AreaID)
}

// OrderNotFoundError signals a lookup for an order id that does not exist. Maps to 404.
type OrderNotFoundError struct {
	OrderID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order not found: %s", e.OrderID)
}

// OutOfBoundsError signals geometry that violates the containment invariant
// (area extends outside the side image, or non-positive dimensions). Maps to 400.
type OutOfBoundsError struct {
	Message string
}

func (e *OutOfBoundsError) Error() string { return e.Message }

// InvalidGeometryError signals zero or negative display/reference dimensions
// handed to a coordinate conversion. Maps to 400.
type InvalidGeometryError struct {
	Message string
}

func (e *InvalidGeometryError) Error() string { return e.Message }

// NewInvalidRequest builds an InvalidRequestError with a formatted message.
func NewInvalidRequest(format string, args ...interface{}) *InvalidRequestError {
	return &InvalidRequestError{Message: fmt.Sprintf(format, args...)}
}

package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a catalog lookup misses.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductUnavailable is returned when adding an unavailable product.
	ErrProductUnavailable = errors.New("product is not available")
	// ErrCartItemNotFound is returned when a cart item is missing or owned by another user.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderNotFound is returned when an order is missing or inaccessible.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidOrderState is returned on an illegal order transition.
	ErrInvalidOrderState = errors.New("order cannot be cancelled in its current state")
	// ErrSelfDemotion is returned when an admin tries to revoke their own admin role.
	ErrSelfDemotion = errors.New("administrators cannot revoke their own admin role")
	// ErrDuplicateEmail is returned when registering an already used email.
	ErrDuplicateEmail = errors.New("email is already registered")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidRUT is returned when a billing document request carries a malformed RUT.
	ErrInvalidRUT = errors.New("invalid RUT")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrProductUnavailable):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PRODUCT_UNAVAILABLE")
	case errors.Is(err, ErrCartItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CART_ITEM_NOT_FOUND")
	case errors.Is(err, ErrEmptyCart):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CART")
	case errors.Is(err, ErrOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case errors.Is(err, ErrInvalidOrderState):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ORDER_STATE")
	case errors.Is(err, ErrSelfDemotion):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_DEMOTION")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidRUT):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_RUT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

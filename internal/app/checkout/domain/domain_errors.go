package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrDuplicateID     = errors.New("product id already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyProductID  = errors.New("product id cannot be empty")
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidPrice    = errors.New("product price must be positive")
	ErrInvalidDiscount = errors.New("discounted price must be positive and below the list price")
	ErrNegativeStock   = errors.New("product stock cannot be negative")
	ErrInvalidCategory = errors.New("product category cannot be empty")
	ErrMoneyOverflow   = errors.New("money value exceeds storage range")

	// Cart errors
	ErrOutOfStock      = errors.New("insufficient stock")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNotInCart       = errors.New("product is not in the cart")
	ErrEmptySession    = errors.New("session id cannot be empty")

	// Billing errors
	ErrEmptyCart       = errors.New("cart is empty")
	ErrEmptyCustomer   = errors.New("customer id and name are required")
	ErrInvalidTaxRate  = errors.New("tax rate must be a non-negative number")
	ErrPaymentDeclined = errors.New("payment declined")

	// Verification errors
	ErrUnknownBill        = errors.New("unknown bill")
	ErrAlreadyVerified    = errors.New("bill already verified")
	ErrEmptyVerifier      = errors.New("verifier identity cannot be empty")
	ErrInvalidScanPayload = errors.New("invalid scan payload")

	// Roster errors
	ErrEmptyStaffName   = errors.New("staff name cannot be empty")
	ErrInvalidStaffRole = errors.New("staff role must be security or admin")
	ErrDuplicateStaff   = errors.New("staff member already on the roster")
	ErrUnknownVerifier  = errors.New("verifier is not on the staff roster")
)

// AlreadyVerifiedError reports who verified a bill first. It matches
// ErrAlreadyVerified with errors.Is.
type AlreadyVerifiedError struct {
	BillID     string
	VerifiedBy string
	VerifiedAt time.Time
}

func (e *AlreadyVerifiedError) Error() string {
	return fmt.Sprintf("bill %s already verified by %s at %s",
		e.BillID, e.VerifiedBy, e.VerifiedAt.Format(time.RFC3339))
}

func (e *AlreadyVerifiedError) Is(target error) bool {
	return target == ErrAlreadyVerified
}

// OutOfStockError carries the shortfall details. It matches ErrOutOfStock.
type OutOfStockError struct {
	ProductID string
	Requested int64
	Available int64
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *OutOfStockError) Is(target error) bool {
	return target == ErrOutOfStock
}

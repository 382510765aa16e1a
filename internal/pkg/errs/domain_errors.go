package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Input errors
	ErrInvalidQuoteInput = errors.New("invalid quote input")
	ErrInvalidUserType   = errors.New("invalid user type")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidCurrency   = errors.New("invalid currency")

	// Pricing errors
	ErrPurchaseRejected = errors.New("purchase rejected")

	// Configuration errors
	ErrInvalidDiscountPolicy = errors.New("invalid discount policy")
)

package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrEntryNotFound     = errors.New("catalog entry not found")
	ErrInvalidCategory   = errors.New("invalid catalog category")
	ErrInvalidPayload    = errors.New("catalog payload does not match category")
	ErrRateNotFound      = errors.New("exchange rate not found")
	ErrInvalidRate       = errors.New("exchange rate must be positive and between two different currencies")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrDayNotFound       = errors.New("itinerary day not found")
	ErrItemNotFound      = errors.New("itinerary item not found")
	ErrPackageNotFound   = errors.New("activity package not found")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

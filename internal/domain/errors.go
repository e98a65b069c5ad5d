package domain

import "errors"

var (
	// ErrUnauthorized is returned when the caller lacks the required role
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned when a required field is missing or malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount is returned when a decimal amount string cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrSeriesNotFound is returned when a series id does not resolve
	ErrSeriesNotFound = errors.New("series not found")

	// ErrShipNotFound is returned when a ship id does not resolve
	ErrShipNotFound = errors.New("ship not found")

	// ErrSupplyExhausted is returned when a mint would exceed the series supply cap
	ErrSupplyExhausted = errors.New("supply exhausted")

	// ErrAlreadyOwnsShip is returned when the caller already holds a ship
	ErrAlreadyOwnsShip = errors.New("account already owns a ship")

	// ErrInsufficientDeposit is returned when the attached deposit is below the mint price
	ErrInsufficientDeposit = errors.New("insufficient deposit")
)

package dto

import (
	"errors"

	"github.com/space-ranger/ship-registry/internal/domain"
)

// CreateSeriesRequest is the request body for creating a series
type CreateSeriesRequest struct {
	Title     string `json:"title"`
	MediaPath string `json:"mediaPath"`
	MaxSupply uint32 `json:"maxSupply"`
}

// Validate validates the create series request
func (r *CreateSeriesRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.MediaPath == "" {
		return errors.New("mediaPath is required")
	}
	if r.MaxSupply == 0 {
		return errors.New("maxSupply must be greater than zero")
	}
	return nil
}

// MintShipRequest is the request body for minting a ship.
// AttachedDeposit is a decimal integer in smallest units.
type MintShipRequest struct {
	SeriesID        uint32 `json:"seriesId"`
	AttachedDeposit string `json:"attachedDeposit"`
}

// Validate validates the mint request
func (r *MintShipRequest) Validate() error {
	if r.SeriesID == 0 {
		return errors.New("seriesId is required")
	}
	if r.AttachedDeposit == "" {
		return errors.New("attachedDeposit is required")
	}
	return nil
}

// AddScoreRequest is the request body for adding to an account's score
type AddScoreRequest struct {
	Amount string `json:"amount"`
}

// Validate validates the add score request
func (r *AddScoreRequest) Validate() error {
	if r.Amount == "" {
		return errors.New("amount is required")
	}
	return nil
}

// ValidateAccountParam validates an account name taken from the request path
func ValidateAccountParam(account string) error {
	if !domain.Account(account).Valid() {
		return errors.New("invalid account name")
	}
	return nil
}

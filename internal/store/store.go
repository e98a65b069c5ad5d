package store

import (
	"context"
	"math/big"

	"github.com/space-ranger/ship-registry/internal/store/schema"
)

// Counter keys used in the key_value_store table
const (
	CounterTotalSeries = "total_series"
	CounterTotalShips  = "total_ships"
)

// CreateSeriesInput carries the caller-supplied fields of a new series.
// The id is assigned from the total_series counter inside the store.
type CreateSeriesInput struct {
	Title     string
	MediaPath string
	MaxSupply uint32
}

// MintShipInput carries everything the store needs to decide a mint.
// AttachedDeposit and MinDeposit are amounts in smallest units.
type MintShipInput struct {
	SeriesID        uint32
	Account         string
	AttachedDeposit *big.Int
	MinDeposit      *big.Int
}

// MintIssueFunc registers the newly minted ship with the external token
// module. It runs inside the mint transaction as the final step, so an
// error rolls back the whole mint.
type MintIssueFunc func(ctx context.Context, ship *schema.Ship, series *schema.Series) error

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateSeries creates a new series with the next sequential id
	CreateSeries(ctx context.Context, input CreateSeriesInput) (*schema.Series, error)
	// GetSeriesByID retrieves a series by id, or nil if it does not exist
	GetSeriesByID(ctx context.Context, id uint32) (*schema.Series, error)
	// ListSeries retrieves all series ordered by id
	ListSeries(ctx context.Context) ([]schema.Series, error)

	// MintShip atomically checks supply, ownership and payment, assigns the
	// next ship id, records the ship and its ownership, and invokes issue
	// before committing
	MintShip(ctx context.Context, input MintShipInput, issue MintIssueFunc) (*schema.Ship, error)
	// GetShipByID retrieves a ship by id, or nil if it does not exist
	GetShipByID(ctx context.Context, id uint64) (*schema.Ship, error)
	// GetShipsByAccount retrieves the ships held by an account, oldest first
	GetShipsByAccount(ctx context.Context, account string) ([]schema.Ship, error)

	// GetScore retrieves an account's accumulated score as a decimal string,
	// "0" for accounts that never scored
	GetScore(ctx context.Context, account string) (string, error)
	// AddScore adds a non-negative decimal amount to an account's score
	AddScore(ctx context.Context, account string, amount string) error

	// GetCounter retrieves a registry counter value, 0 if never incremented
	GetCounter(ctx context.Context, key string) (uint64, error)
}

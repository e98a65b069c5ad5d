package executor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/space-ranger/ship-registry/internal/api/shared/dto"
	apierrors "github.com/space-ranger/ship-registry/internal/api/shared/errors"
	"github.com/space-ranger/ship-registry/internal/domain"
	"github.com/space-ranger/ship-registry/internal/store"
	"github.com/space-ranger/ship-registry/internal/store/schema"
	"github.com/space-ranger/ship-registry/internal/tokenmodule"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateSeries creates a new series. Only the registry owner may call it.
	CreateSeries(ctx context.Context, caller string, req dto.CreateSeriesRequest) (*dto.SeriesResponse, error)

	// GetSeries retrieves a single series, nil if it does not exist
	GetSeries(ctx context.Context, id uint32) (*dto.SeriesResponse, error)

	// ListSeries retrieves the whole series catalog
	ListSeries(ctx context.Context) (*dto.SeriesListResponse, error)

	// MintShip mints a ship from a series for the calling account
	MintShip(ctx context.Context, caller string, req dto.MintShipRequest) (*dto.ShipResponse, error)

	// GetShip retrieves a single ship, nil if it does not exist
	GetShip(ctx context.Context, id uint64) (*dto.ShipResponse, error)

	// GetShipOwner resolves a ship's current owner via the token module
	GetShipOwner(ctx context.Context, id uint64) (*dto.OwnerResponse, error)

	// GetAccountShips retrieves the ships held by an account
	GetAccountShips(ctx context.Context, account string) (*dto.ShipListResponse, error)

	// GetScore retrieves an account's accumulated score
	GetScore(ctx context.Context, account string) (*dto.ScoreResponse, error)

	// AddScore adds a non-negative amount to an account's score
	AddScore(ctx context.Context, account string, amount string) error

	// GetStats reports the registry-wide counters
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type executor struct {
	store        store.Store
	tokenClient  tokenmodule.Client
	ownerAccount string
	minDeposit   *big.Int
	mediaPrefix  string
}

// NewExecutor creates the API executor. mintPrice is the minimum attached
// deposit per mint in whole units, converted once at construction.
func NewExecutor(store store.Store, tokenClient tokenmodule.Client, ownerAccount string, mintPrice string, mediaPrefix string) (Executor, error) {
	minDeposit, err := domain.ToSmallestUnit(mintPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid mint price %q: %w", mintPrice, err)
	}

	return &executor{
		store:        store,
		tokenClient:  tokenClient,
		ownerAccount: ownerAccount,
		minDeposit:   minDeposit,
		mediaPrefix:  mediaPrefix,
	}, nil
}

func (e *executor) CreateSeries(ctx context.Context, caller string, req dto.CreateSeriesRequest) (*dto.SeriesResponse, error) {
	// The owner check runs before input validation
	if caller != e.ownerAccount {
		return nil, domain.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	series, err := e.store.CreateSeries(ctx, store.CreateSeriesInput{
		Title:     req.Title,
		MediaPath: req.MediaPath,
		MaxSupply: req.MaxSupply,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create series: %v", err))
	}

	return dto.MapSeriesToDTO(series), nil
}

func (e *executor) GetSeries(ctx context.Context, id uint32) (*dto.SeriesResponse, error) {
	series, err := e.store.GetSeriesByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get series: %v", err))
	}
	if series == nil {
		return nil, nil
	}
	return dto.MapSeriesToDTO(series), nil
}

func (e *executor) ListSeries(ctx context.Context) (*dto.SeriesListResponse, error) {
	series, err := e.store.ListSeries(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list series: %v", err))
	}

	seriesDTOs := make([]dto.SeriesResponse, len(series))
	for i := range series {
		seriesDTOs[i] = *dto.MapSeriesToDTO(&series[i])
	}

	return &dto.SeriesListResponse{
		Series: seriesDTOs,
		Total:  len(seriesDTOs),
	}, nil
}

func (e *executor) MintShip(ctx context.Context, caller string, req dto.MintShipRequest) (*dto.ShipResponse, error) {
	deposit, err := domain.ParseSmallestUnit(req.AttachedDeposit)
	if err != nil {
		return nil, err
	}

	issue := func(ctx context.Context, ship *schema.Ship, series *schema.Series) error {
		// Each mint issues a distinct token, so copies is always 1
		metadata := tokenmodule.TokenMetadata{
			Title:  series.Title,
			Media:  e.mediaPrefix + "/" + series.MediaPath,
			Copies: 1,
		}
		return e.tokenClient.Issue(ctx, ship.TokenID, caller, metadata)
	}

	ship, err := e.store.MintShip(ctx, store.MintShipInput{
		SeriesID:        req.SeriesID,
		Account:         caller,
		AttachedDeposit: deposit,
		MinDeposit:      e.minDeposit,
	}, issue)
	if err != nil {
		return nil, err
	}

	return dto.MapShipToDTO(ship), nil
}

func (e *executor) GetShip(ctx context.Context, id uint64) (*dto.ShipResponse, error) {
	ship, err := e.store.GetShipByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get ship: %v", err))
	}
	if ship == nil {
		return nil, nil
	}
	return dto.MapShipToDTO(ship), nil
}

func (e *executor) GetShipOwner(ctx context.Context, id uint64) (*dto.OwnerResponse, error) {
	ship, err := e.store.GetShipByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get ship: %v", err))
	}
	if ship == nil {
		return nil, nil
	}

	owner, err := e.tokenClient.ResolveOwner(ctx, ship.TokenID)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to resolve owner: %v", err))
	}

	return &dto.OwnerResponse{
		ShipID:  ship.ID,
		TokenID: ship.TokenID,
		Owner:   owner,
	}, nil
}

func (e *executor) GetAccountShips(ctx context.Context, account string) (*dto.ShipListResponse, error) {
	ships, err := e.store.GetShipsByAccount(ctx, account)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get ships: %v", err))
	}

	shipDTOs := make([]dto.ShipResponse, len(ships))
	for i := range ships {
		shipDTOs[i] = *dto.MapShipToDTO(&ships[i])
	}

	return &dto.ShipListResponse{
		Ships: shipDTOs,
		Total: len(shipDTOs),
	}, nil
}

func (e *executor) GetScore(ctx context.Context, account string) (*dto.ScoreResponse, error) {
	score, err := e.store.GetScore(ctx, account)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get score: %v", err))
	}

	return &dto.ScoreResponse{
		Account: account,
		Score:   score,
	}, nil
}

func (e *executor) AddScore(ctx context.Context, account string, amount string) error {
	// Amounts must be plain non-negative decimal integers
	if _, err := domain.ParseSmallestUnit(amount); err != nil {
		return err
	}

	if err := e.store.AddScore(ctx, account, amount); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to add score: %v", err))
	}
	return nil
}

func (e *executor) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	totalSeries, err := e.store.GetCounter(ctx, store.CounterTotalSeries)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get series counter: %v", err))
	}
	totalShips, err := e.store.GetCounter(ctx, store.CounterTotalShips)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get ships counter: %v", err))
	}

	return &dto.StatsResponse{
		TotalSeries: totalSeries,
		TotalShips:  totalShips,
	}, nil
}

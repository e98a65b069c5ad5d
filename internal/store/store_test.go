package store

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/space-ranger/ship-registry/internal/domain"
	"github.com/space-ranger/ship-registry/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestSeries creates a test series input
func buildTestSeries(title string, maxSupply uint32) CreateSeriesInput {
	return CreateSeriesInput{
		Title:     title,
		MediaPath: "ships/" + title + ".png",
		MaxSupply: maxSupply,
	}
}

// buildTestMint creates a mint input with a deposit exactly covering the
// default mint price of 0.1 whole units
func buildTestMint(seriesID uint32, account string) MintShipInput {
	deposit, _ := domain.ToSmallestUnit("0.1")
	return MintShipInput{
		SeriesID:        seriesID,
		Account:         account,
		AttachedDeposit: deposit,
		MinDeposit:      new(big.Int).Set(deposit),
	}
}

// =============================================================================
// Test: CreateSeries / GetSeriesByID / ListSeries
// =============================================================================

func testCreateSeries(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("assigns sequential ids starting at 1", func(t *testing.T) {
		first, err := s.CreateSeries(ctx, buildTestSeries("falcon", 10))
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, uint32(1), first.ID)
		assert.Equal(t, "falcon", first.Title)
		assert.Equal(t, uint32(10), first.MaxSupply)
		assert.Equal(t, uint32(0), first.MintedTotal)

		second, err := s.CreateSeries(ctx, buildTestSeries("raven", 5))
		require.NoError(t, err)
		assert.Equal(t, uint32(2), second.ID)

		total, err := s.GetCounter(ctx, CounterTotalSeries)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
	})
}

func testGetSeriesByID(t *testing.T, s Store) {
	ctx := context.Background()

	created, err := s.CreateSeries(ctx, buildTestSeries("falcon", 10))
	require.NoError(t, err)

	t.Run("returns the series when it exists", func(t *testing.T) {
		got, err := s.GetSeriesByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "falcon", got.Title)
		assert.Equal(t, "ships/falcon.png", got.MediaPath)
	})

	t.Run("returns nil for a missing series", func(t *testing.T) {
		got, err := s.GetSeriesByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testListSeries(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("empty catalog lists nothing", func(t *testing.T) {
		series, err := s.ListSeries(ctx)
		require.NoError(t, err)
		assert.Empty(t, series)
	})

	t.Run("lists all series ordered by id", func(t *testing.T) {
		_, err := s.CreateSeries(ctx, buildTestSeries("falcon", 10))
		require.NoError(t, err)
		_, err = s.CreateSeries(ctx, buildTestSeries("raven", 5))
		require.NoError(t, err)

		series, err := s.ListSeries(ctx)
		require.NoError(t, err)
		require.Len(t, series, 2)
		assert.Equal(t, uint32(1), series[0].ID)
		assert.Equal(t, uint32(2), series[1].ID)
	})
}

// =============================================================================
// Test: MintShip
// =============================================================================

func testMintShip(t *testing.T, s Store) {
	ctx := context.Background()

	series, err := s.CreateSeries(ctx, buildTestSeries("falcon", 2))
	require.NoError(t, err)

	t.Run("successful mint creates ship, ownership and bumps supply", func(t *testing.T) {
		var issuedShip *schema.Ship
		var issuedSeries *schema.Series
		ship, err := s.MintShip(ctx, buildTestMint(series.ID, "alice.near"),
			func(_ context.Context, ship *schema.Ship, series *schema.Series) error {
				issuedShip = ship
				issuedSeries = series
				return nil
			})
		require.NoError(t, err)
		require.NotNil(t, ship)

		assert.Equal(t, uint64(1), ship.ID)
		assert.Equal(t, "1", ship.TokenID)
		assert.Equal(t, series.ID, ship.SeriesID)
		assert.Equal(t, int16(domain.BaselineHealth), ship.Health)
		assert.Equal(t, int16(domain.BaselineAttack), ship.Attack)
		assert.Equal(t, int16(domain.BaselineWeapons), ship.Weapons)
		assert.Equal(t, int16(domain.BaselineSpeed), ship.Speed)
		assert.Equal(t, int16(domain.BaselineLevel), ship.Level)
		assert.Equal(t, int32(domain.BaselineMaxEnergy), ship.MaxEnergy)
		assert.Equal(t, int32(domain.BaselineEnergy), ship.CurrentEnergy)
		assert.Equal(t, int64(0), ship.LastFlight)

		// The issue callback saw the committed state
		require.NotNil(t, issuedShip)
		assert.Equal(t, ship.ID, issuedShip.ID)
		require.NotNil(t, issuedSeries)
		assert.Equal(t, uint32(1), issuedSeries.MintedTotal)

		updated, err := s.GetSeriesByID(ctx, series.ID)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), updated.MintedTotal)

		ships, err := s.GetShipsByAccount(ctx, "alice.near")
		require.NoError(t, err)
		require.Len(t, ships, 1)
		assert.Equal(t, ship.ID, ships[0].ID)
	})

	t.Run("unknown series", func(t *testing.T) {
		_, err := s.MintShip(ctx, buildTestMint(999, "bob.near"), nil)
		assert.ErrorIs(t, err, domain.ErrSeriesNotFound)
	})

	t.Run("second mint by the same account is rejected", func(t *testing.T) {
		_, err := s.MintShip(ctx, buildTestMint(series.ID, "alice.near"), nil)
		assert.ErrorIs(t, err, domain.ErrAlreadyOwnsShip)
	})

	t.Run("insufficient deposit leaves no trace", func(t *testing.T) {
		input := buildTestMint(series.ID, "carol.near")
		input.AttachedDeposit = big.NewInt(1)

		_, err := s.MintShip(ctx, input, nil)
		assert.ErrorIs(t, err, domain.ErrInsufficientDeposit)

		ships, err := s.GetShipsByAccount(ctx, "carol.near")
		require.NoError(t, err)
		assert.Empty(t, ships)

		updated, err := s.GetSeriesByID(ctx, series.ID)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), updated.MintedTotal)
	})

	t.Run("exhausted supply is rejected", func(t *testing.T) {
		_, err := s.MintShip(ctx, buildTestMint(series.ID, "dave.near"), nil)
		require.NoError(t, err)

		_, err = s.MintShip(ctx, buildTestMint(series.ID, "erin.near"), nil)
		assert.ErrorIs(t, err, domain.ErrSupplyExhausted)
	})
}

func testMintShipIDSequence(t *testing.T, s Store) {
	ctx := context.Background()

	first, err := s.CreateSeries(ctx, buildTestSeries("falcon", 10))
	require.NoError(t, err)
	second, err := s.CreateSeries(ctx, buildTestSeries("raven", 10))
	require.NoError(t, err)

	t.Run("ship ids are global across series", func(t *testing.T) {
		shipA, err := s.MintShip(ctx, buildTestMint(first.ID, "alice.near"), nil)
		require.NoError(t, err)
		shipB, err := s.MintShip(ctx, buildTestMint(second.ID, "bob.near"), nil)
		require.NoError(t, err)

		assert.Equal(t, uint64(1), shipA.ID)
		assert.Equal(t, uint64(2), shipB.ID)

		total, err := s.GetCounter(ctx, CounterTotalShips)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
	})
}

func testMintShipIssueFailure(t *testing.T, s Store) {
	ctx := context.Background()

	series, err := s.CreateSeries(ctx, buildTestSeries("falcon", 10))
	require.NoError(t, err)

	t.Run("issue failure rolls back the whole mint", func(t *testing.T) {
		issueErr := errors.New("token module unavailable")
		_, err := s.MintShip(ctx, buildTestMint(series.ID, "alice.near"),
			func(_ context.Context, _ *schema.Ship, _ *schema.Series) error {
				return issueErr
			})
		require.Error(t, err)
		assert.ErrorIs(t, err, issueErr)

		ships, err := s.GetShipsByAccount(ctx, "alice.near")
		require.NoError(t, err)
		assert.Empty(t, ships)

		updated, err := s.GetSeriesByID(ctx, series.ID)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), updated.MintedTotal)

		total, err := s.GetCounter(ctx, CounterTotalShips)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)

		// The account can mint again once the token module recovers
		ship, err := s.MintShip(ctx, buildTestMint(series.ID, "alice.near"), nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), ship.ID)
	})
}

// =============================================================================
// Test: GetShipByID / GetShipsByAccount
// =============================================================================

func testGetShipByID(t *testing.T, s Store) {
	ctx := context.Background()

	series, err := s.CreateSeries(ctx, buildTestSeries("falcon", 10))
	require.NoError(t, err)
	minted, err := s.MintShip(ctx, buildTestMint(series.ID, "alice.near"), nil)
	require.NoError(t, err)

	t.Run("returns the ship with its series", func(t *testing.T) {
		ship, err := s.GetShipByID(ctx, minted.ID)
		require.NoError(t, err)
		require.NotNil(t, ship)
		assert.Equal(t, minted.ID, ship.ID)
		require.NotNil(t, ship.Series)
		assert.Equal(t, "falcon", ship.Series.Title)
	})

	t.Run("returns nil for a missing ship", func(t *testing.T) {
		ship, err := s.GetShipByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, ship)
	})
}

func testGetShipsByAccount(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("account with no ships gets an empty list", func(t *testing.T) {
		ships, err := s.GetShipsByAccount(ctx, "nobody.near")
		require.NoError(t, err)
		assert.NotNil(t, ships)
		assert.Empty(t, ships)
	})
}

// =============================================================================
// Test: Scores
// =============================================================================

func testScores(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("unknown account scores zero", func(t *testing.T) {
		score, err := s.GetScore(ctx, "alice.near")
		require.NoError(t, err)
		assert.Equal(t, "0", score)
	})

	t.Run("additions accumulate", func(t *testing.T) {
		require.NoError(t, s.AddScore(ctx, "alice.near", "10"))
		require.NoError(t, s.AddScore(ctx, "alice.near", "5"))

		score, err := s.GetScore(ctx, "alice.near")
		require.NoError(t, err)
		assert.Equal(t, "15", score)
	})

	t.Run("accounts are independent", func(t *testing.T) {
		require.NoError(t, s.AddScore(ctx, "bob.near", "7"))

		score, err := s.GetScore(ctx, "bob.near")
		require.NoError(t, err)
		assert.Equal(t, "7", score)

		score, err = s.GetScore(ctx, "alice.near")
		require.NoError(t, err)
		assert.Equal(t, "15", score)
	})

	t.Run("amounts beyond int64 survive", func(t *testing.T) {
		huge := "100000000000000000000000000000000000000"
		require.NoError(t, s.AddScore(ctx, "whale.near", huge))
		require.NoError(t, s.AddScore(ctx, "whale.near", "1"))

		score, err := s.GetScore(ctx, "whale.near")
		require.NoError(t, err)
		assert.Equal(t, "100000000000000000000000000000000000001", score)
	})
}

// =============================================================================
// Suite runner
// =============================================================================

// RunStoreTests runs all store tests against a Store implementation.
// initDB is called before each test for a clean state, cleanupDB after.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s Store)
	}{
		{"CreateSeries", testCreateSeries},
		{"GetSeriesByID", testGetSeriesByID},
		{"ListSeries", testListSeries},
		{"MintShip", testMintShip},
		{"MintShipIDSequence", testMintShipIDSequence},
		{"MintShipIssueFailure", testMintShipIssueFailure},
		{"GetShipByID", testGetShipByID},
		{"GetShipsByAccount", testGetShipsByAccount},
		{"Scores", testScores},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := initDB(t)
			defer cleanupDB(t)
			tc.fn(t, s)
		})
	}
}

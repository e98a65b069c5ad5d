package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/space-ranger/ship-registry/internal/domain"
	"github.com/space-ranger/ship-registry/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// nextCounterValue increments a counter row under a row-level lock and
// returns the new value. The row is created on first use.
func nextCounterValue(tx *gorm.DB, key string) (uint64, error) {
	// Make sure the row exists so the lock below has something to grab
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&schema.KeyValueStore{Key: key, Value: "0"}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to ensure counter row: %w", err)
	}

	var kv schema.KeyValueStore
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("key = ?", key).
		First(&kv).Error
	if err != nil {
		return 0, fmt.Errorf("failed to lock counter: %w", err)
	}

	current, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse counter value %q: %w", kv.Value, err)
	}

	next := current + 1
	err = tx.Model(&schema.KeyValueStore{}).
		Where("key = ?", key).
		Update("value", strconv.FormatUint(next, 10)).Error
	if err != nil {
		return 0, fmt.Errorf("failed to update counter: %w", err)
	}

	return next, nil
}

// CreateSeries creates a new series with the next id from the total_series counter
func (s *pgStore) CreateSeries(ctx context.Context, input CreateSeriesInput) (*schema.Series, error) {
	var series *schema.Series
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextCounterValue(tx, CounterTotalSeries)
		if err != nil {
			return err
		}

		series = &schema.Series{
			ID:        uint32(id),
			Title:     input.Title,
			MediaPath: input.MediaPath,
			MaxSupply: input.MaxSupply,
		}
		if err := tx.Create(series).Error; err != nil {
			return fmt.Errorf("failed to create series: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}

// GetSeriesByID retrieves a series by id
func (s *pgStore) GetSeriesByID(ctx context.Context, id uint32) (*schema.Series, error) {
	var series schema.Series
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&series).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get series: %w", err)
	}
	return &series, nil
}

// ListSeries retrieves all series ordered by id
func (s *pgStore) ListSeries(ctx context.Context) ([]schema.Series, error) {
	var series []schema.Series
	err := s.db.WithContext(ctx).Order("id ASC").Find(&series).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list series: %w", err)
	}
	return series, nil
}

// MintShip performs the whole mint in a single transaction:
//
//  1. Lock the series row and verify remaining supply.
//  2. Verify the account holds no ship yet.
//  3. Verify the attached deposit covers the mint price.
//  4. Take the next id from the total_ships counter.
//  5. Insert the ship with baseline stats and record its ownership.
//  6. Bump the series minted total.
//  7. Invoke the issue callback so the token module registration shares
//     the commit decision.
//
// Any failure, including the callback, rolls everything back.
func (s *pgStore) MintShip(ctx context.Context, input MintShipInput, issue MintIssueFunc) (*schema.Ship, error) {
	var ship *schema.Ship
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var series schema.Series
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.SeriesID).
			First(&series).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSeriesNotFound
			}
			return fmt.Errorf("failed to lock series: %w", err)
		}

		if series.MintedTotal >= series.MaxSupply {
			return domain.ErrSupplyExhausted
		}

		var held int64
		err = tx.Model(&schema.Ownership{}).
			Where("account = ?", input.Account).
			Count(&held).Error
		if err != nil {
			return fmt.Errorf("failed to count ownerships: %w", err)
		}
		if held > 0 {
			return domain.ErrAlreadyOwnsShip
		}

		if input.AttachedDeposit == nil || input.AttachedDeposit.Cmp(input.MinDeposit) < 0 {
			return domain.ErrInsufficientDeposit
		}

		id, err := nextCounterValue(tx, CounterTotalShips)
		if err != nil {
			return err
		}

		ship = &schema.Ship{
			ID:            id,
			TokenID:       strconv.FormatUint(id, 10),
			SeriesID:      series.ID,
			Health:        domain.BaselineHealth,
			Attack:        domain.BaselineAttack,
			Weapons:       domain.BaselineWeapons,
			Speed:         domain.BaselineSpeed,
			Level:         domain.BaselineLevel,
			MaxEnergy:     domain.BaselineMaxEnergy,
			CurrentEnergy: domain.BaselineEnergy,
		}
		if err := tx.Create(ship).Error; err != nil {
			return fmt.Errorf("failed to create ship: %w", err)
		}

		// Overwrite rather than append: the ownership index holds at most
		// one ship per account
		err = tx.Where("account = ?", input.Account).
			Delete(&schema.Ownership{}).Error
		if err != nil {
			return fmt.Errorf("failed to clear ownership: %w", err)
		}
		ownership := schema.Ownership{
			Account: input.Account,
			ShipID:  id,
		}
		if err := tx.Create(&ownership).Error; err != nil {
			return fmt.Errorf("failed to create ownership: %w", err)
		}

		err = tx.Model(&schema.Series{}).
			Where("id = ?", series.ID).
			Update("minted_total", gorm.Expr("minted_total + 1")).Error
		if err != nil {
			return fmt.Errorf("failed to update series supply: %w", err)
		}
		series.MintedTotal++

		if issue != nil {
			if err := issue(ctx, ship, &series); err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return ship, nil
}

// GetShipByID retrieves a ship by id with its series preloaded
func (s *pgStore) GetShipByID(ctx context.Context, id uint64) (*schema.Ship, error) {
	var ship schema.Ship
	err := s.db.WithContext(ctx).
		Preload("Series").
		Where("id = ?", id).
		First(&ship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}
	return &ship, nil
}

// GetShipsByAccount retrieves the ships held by an account. Ownership entries
// whose ship record is missing are skipped rather than reported as errors.
func (s *pgStore) GetShipsByAccount(ctx context.Context, account string) ([]schema.Ship, error) {
	var ownerships []schema.Ownership
	err := s.db.WithContext(ctx).
		Where("account = ?", account).
		Order("id ASC").
		Find(&ownerships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ownerships: %w", err)
	}
	if len(ownerships) == 0 {
		return []schema.Ship{}, nil
	}

	shipIDs := make([]uint64, 0, len(ownerships))
	for _, o := range ownerships {
		shipIDs = append(shipIDs, o.ShipID)
	}

	var ships []schema.Ship
	err = s.db.WithContext(ctx).
		Preload("Series").
		Where("id IN ?", shipIDs).
		Find(&ships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ships: %w", err)
	}

	shipsByID := make(map[uint64]schema.Ship, len(ships))
	for _, ship := range ships {
		shipsByID[ship.ID] = ship
	}

	result := make([]schema.Ship, 0, len(ownerships))
	for _, o := range ownerships {
		if ship, ok := shipsByID[o.ShipID]; ok {
			result = append(result, ship)
		}
	}
	return result, nil
}

// GetScore retrieves an account's accumulated score
func (s *pgStore) GetScore(ctx context.Context, account string) (string, error) {
	var score schema.Score
	err := s.db.WithContext(ctx).Where("account = ?", account).First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "0", nil
		}
		return "", fmt.Errorf("failed to get score: %w", err)
	}
	return score.Amount, nil
}

// AddScore adds amount to an account's score, creating the row on first use
func (s *pgStore) AddScore(ctx context.Context, account string, amount string) error {
	score := schema.Score{
		Account: account,
		Amount:  amount,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("scores.amount + excluded.amount"),
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(&score).Error
	if err != nil {
		return fmt.Errorf("failed to add score: %w", err)
	}
	return nil
}

// GetCounter retrieves a registry counter value
func (s *pgStore) GetCounter(ctx context.Context, key string) (uint64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get counter: %w", err)
	}

	value, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse counter value %q: %w", kv.Value, err)
	}
	return value, nil
}

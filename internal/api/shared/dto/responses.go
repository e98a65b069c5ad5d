package dto

import (
	"time"

	"github.com/space-ranger/ship-registry/internal/store/schema"
)

// SeriesResponse is the API representation of a series
type SeriesResponse struct {
	ID          uint32    `json:"id"`
	Title       string    `json:"title"`
	MediaPath   string    `json:"mediaPath"`
	MaxSupply   uint32    `json:"maxSupply"`
	MintedTotal uint32    `json:"mintedTotal"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SeriesListResponse is the API representation of the series catalog
type SeriesListResponse struct {
	Series []SeriesResponse `json:"series"`
	Total  int              `json:"total"`
}

// ShipResponse is the API representation of a ship
type ShipResponse struct {
	ID            uint64          `json:"id"`
	TokenID       string          `json:"tokenId"`
	SeriesID      uint32          `json:"seriesId"`
	Health        int16           `json:"health"`
	Attack        int16           `json:"attack"`
	Weapons       int16           `json:"weapons"`
	Speed         int16           `json:"speed"`
	Level         int16           `json:"level"`
	MaxEnergy     int32           `json:"maxEnergy"`
	CurrentEnergy int32           `json:"currentEnergy"`
	LastFlight    int64           `json:"lastFlight"`
	CreatedAt     time.Time       `json:"createdAt"`
	Series        *SeriesResponse `json:"series,omitempty"`
}

// ShipListResponse is the API representation of an account's hangar
type ShipListResponse struct {
	Ships []ShipResponse `json:"ships"`
	Total int            `json:"total"`
}

// ScoreResponse is the API representation of an account's score
type ScoreResponse struct {
	Account string `json:"account"`
	Score   string `json:"score"`
}

// OwnerResponse is the token module's view of who holds a ship.
// Owner is null when the token module does not know the token.
type OwnerResponse struct {
	ShipID  uint64  `json:"shipId"`
	TokenID string  `json:"tokenId"`
	Owner   *string `json:"owner"`
}

// StatsResponse reports the registry-wide counters
type StatsResponse struct {
	TotalSeries uint64 `json:"totalSeries"`
	TotalShips  uint64 `json:"totalShips"`
}

// MapSeriesToDTO maps a series row to its API representation
func MapSeriesToDTO(series *schema.Series) *SeriesResponse {
	if series == nil {
		return nil
	}
	return &SeriesResponse{
		ID:          series.ID,
		Title:       series.Title,
		MediaPath:   series.MediaPath,
		MaxSupply:   series.MaxSupply,
		MintedTotal: series.MintedTotal,
		CreatedAt:   series.CreatedAt,
	}
}

// MapShipToDTO maps a ship row to its API representation
func MapShipToDTO(ship *schema.Ship) *ShipResponse {
	if ship == nil {
		return nil
	}
	return &ShipResponse{
		ID:            ship.ID,
		TokenID:       ship.TokenID,
		SeriesID:      ship.SeriesID,
		Health:        ship.Health,
		Attack:        ship.Attack,
		Weapons:       ship.Weapons,
		Speed:         ship.Speed,
		Level:         ship.Level,
		MaxEnergy:     ship.MaxEnergy,
		CurrentEnergy: ship.CurrentEnergy,
		LastFlight:    ship.LastFlight,
		CreatedAt:     ship.CreatedAt,
		Series:        MapSeriesToDTO(ship.Series),
	}
}

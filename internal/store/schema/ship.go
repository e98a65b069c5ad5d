package schema

import (
	"time"
)

// Ship is a single minted collectible. Its ID doubles as the token id
// registered with the token module, and its stats start from the same
// baseline for every mint.
type Ship struct {
	// ID is assigned from the total_ships counter, starting at 1
	ID       uint64 `gorm:"column:id;primaryKey" json:"id"`
	TokenID  string `gorm:"column:token_id;type:text;uniqueIndex;not null" json:"tokenID"`
	SeriesID uint32 `gorm:"column:series_id;index;not null" json:"seriesID"`

	Health    int16 `gorm:"column:health;not null" json:"health"`
	Attack    int16 `gorm:"column:attack;not null" json:"attack"`
	Weapons   int16 `gorm:"column:weapons;not null" json:"weapons"`
	Speed     int16 `gorm:"column:speed;not null" json:"speed"`
	Level     int16 `gorm:"column:level;not null" json:"level"`
	MaxEnergy int32 `gorm:"column:max_energy;not null" json:"maxEnergy"`

	CurrentEnergy int32 `gorm:"column:current_energy;not null" json:"currentEnergy"`
	// LastFlight is a unix nanosecond timestamp, zero until the first flight
	LastFlight int64 `gorm:"column:last_flight;not null;default:0" json:"lastFlight"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"createdAt"`

	Series *Series `gorm:"foreignKey:SeriesID;references:ID" json:"series,omitempty"`
}

func (Ship) TableName() string {
	return "ships"
}

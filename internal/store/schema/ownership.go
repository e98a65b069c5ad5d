package schema

import (
	"time"
)

// Ownership maps an account to a ship it holds. The unique index on account
// enforces the one-ship-per-account rule at the schema level even under
// concurrent mints.
type Ownership struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Account   string    `gorm:"column:account;type:text;uniqueIndex;not null" json:"account"`
	ShipID    uint64    `gorm:"column:ship_id;uniqueIndex;not null" json:"shipID"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"createdAt"`

	Ship *Ship `gorm:"foreignKey:ShipID;references:ID" json:"ship,omitempty"`
}

func (Ownership) TableName() string {
	return "ownerships"
}

package schema

import (
	"time"
)

// KeyValueStore holds small operational values keyed by name. The registry
// keeps its id counters here (total_series, total_ships).
type KeyValueStore struct {
	Key       string    `gorm:"column:key;type:text;primaryKey" json:"key"`
	Value     string    `gorm:"column:value;type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"updatedAt"`
}

func (KeyValueStore) TableName() string {
	return "key_value_store"
}

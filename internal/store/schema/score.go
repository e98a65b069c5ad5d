package schema

import (
	"time"
)

// Score is the accumulated score of an account. Amounts are stored as
// numeric(78,0) strings so they survive values beyond the int64 range.
type Score struct {
	Account   string    `gorm:"column:account;type:text;primaryKey" json:"account"`
	Amount    string    `gorm:"column:amount;type:numeric(78,0);not null;default:0" json:"amount"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"updatedAt"`
}

func (Score) TableName() string {
	return "scores"
}

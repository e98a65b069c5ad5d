package schema

import (
	"time"
)

// Series is a limited-edition template for ships. All ships minted from a
// series share its metadata; the supply cap is fixed at creation time.
type Series struct {
	// ID is assigned from the total_series counter, starting at 1. It is
	// never generated by the database.
	ID          uint32    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;type:text;not null" json:"title"`
	MediaPath   string    `gorm:"column:media_path;type:text;not null" json:"mediaPath"`
	MaxSupply   uint32    `gorm:"column:max_supply;not null" json:"maxSupply"`
	MintedTotal uint32    `gorm:"column:minted_total;not null;default:0" json:"mintedTotal"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"createdAt"`
}

func (Series) TableName() string {
	return "series"
}

package catalog

import "time"

type Stock struct {
	ID        int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	VariantID int64    `gorm:"column:variant_id;not null;index" json:"variant_id"`
	Variant   *Variant `gorm:"constraint:OnDelete:CASCADE;foreignKey:VariantID;references:ID" json:"variant,omitempty"`

	Description *string `gorm:"column:description;size:255" json:"description"`
	// Quantity is nullable on purpose: null means "not recorded", which is
	// distinct from zero.
	Quantity     *float64 `gorm:"column:quantity;type:numeric(10,2)" json:"quantity"`
	PerfectMatch bool     `gorm:"column:perfect_match;default:false;index" json:"perfect_match"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Stock) TableName() string { return "stock_info" }

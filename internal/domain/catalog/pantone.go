package catalog

import "github.com/lib/pq"

// PantoneColor is a reference color with the IDs of the dataset variants
// nearest to it, precomputed upstream and ordered by proximity.
type PantoneColor struct {
	Name string `gorm:"primaryKey;size:100" json:"name"`
	Hex  string `gorm:"column:hex;size:7;not null" json:"hex"`

	Nearests pq.Int64Array `gorm:"column:nearests;type:integer[];not null;default:'{}'" json:"nearests"`
}

func (PantoneColor) TableName() string { return "pantone_colors" }

package catalog

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// SimilarityEntry is one element of a variant's precomputed similarity list.
// The list is ordered by rank and may reference variants that no longer exist.
type SimilarityEntry struct {
	ID           int64   `json:"id"`
	ScorePercent float64 `json:"score_percent"`
}

type Variant struct {
	ID      int64  `gorm:"primaryKey" json:"id"`
	WovenID int64  `gorm:"column:woven_id;not null;index;uniqueIndex:idx_variant_woven_ref" json:"woven_id"`
	Woven   *Woven `gorm:"constraint:OnDelete:CASCADE;foreignKey:WovenID;references:ID" json:"woven,omitempty"`

	VariantRef string  `gorm:"column:variant_ref;size:50;not null;uniqueIndex:idx_variant_woven_ref" json:"variant_ref"`
	Filename   *string `gorm:"column:filename;size:255" json:"filename"`
	Thumbnail  *string `gorm:"column:thumbnail;size:255" json:"thumbnail"`
	Category   *string `gorm:"column:category;size:100;index" json:"category"`

	ColorNames pq.StringArray                       `gorm:"column:color_name;type:text[];not null;default:'{}'" json:"color_name"`
	ColorHexes pq.StringArray                       `gorm:"column:color_hex;type:text[];not null;default:'{}'" json:"color_hex"`
	Similarity datatypes.JSONSlice[SimilarityEntry] `gorm:"column:similarity;type:jsonb;not null;default:'[]'" json:"similarity"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`

	StockEntries []*Stock `gorm:"constraint:OnDelete:CASCADE;foreignKey:VariantID;references:ID" json:"stock_entries,omitempty"`
}

func (Variant) TableName() string { return "variant_info" }

package catalog

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Yarn is one yarn specification embedded on a woven. An entry with an empty
// VariantRef applies to every variant of the woven.
type Yarn struct {
	Name        string `json:"name"`
	Ne          string `json:"ne"`
	Composition string `json:"composition"`
	Colors      string `json:"colors"`
	VariantRef  string `json:"variant_ref,omitempty"`
}

type Woven struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	Draw        *string    `gorm:"column:draw;size:100;index" json:"draw"`
	Finishing   *string    `gorm:"column:finishing;size:255" json:"finishing"`
	Reference   *string    `gorm:"column:reference;size:100;index" json:"reference"`
	Date        *time.Time `gorm:"column:date;type:date" json:"date"`
	Composition *string    `gorm:"column:composition;size:255" json:"composition"`

	// Variant reference codes as listed in the source dataset.
	VariantRefs pq.StringArray            `gorm:"column:variants;type:text[];not null;default:'{}'" json:"variants"`
	Yarns       datatypes.JSONSlice[Yarn] `gorm:"column:yarns;type:jsonb;not null;default:'[]'" json:"yarns"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`

	Variants []*Variant `gorm:"constraint:OnDelete:CASCADE;foreignKey:WovenID;references:ID" json:"variants_rel,omitempty"`
}

func (Woven) TableName() string { return "woven_info" }

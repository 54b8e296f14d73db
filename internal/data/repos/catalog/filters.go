package catalog

import (
	"gorm.io/gorm"
)

// Filter structs carry the optional, independently-omittable list criteria.
// Every set field is AND-combined; a zero filter matches all rows. Values are
// validated at the handler layer, so everything arriving here is well-formed.

type WovenFilter struct {
	Reference *string
	Draw      *string
}

type VariantFilter struct {
	ColorNames []string
	Category   *string
	Reference  *string
	Draw       *string
	InStock    *bool
}

type StockFilter struct {
	VariantID    *int64
	PerfectMatch *bool
	MinQuantity  *float64
	Description  *string
}

func applyWovenFilters(q *gorm.DB, f WovenFilter) *gorm.DB {
	if f.Reference != nil && *f.Reference != "" {
		q = q.Where("woven_info.reference ILIKE ?", "%"+*f.Reference+"%")
	}
	if f.Draw != nil && *f.Draw != "" {
		q = q.Where("woven_info.draw ILIKE ?", "%"+*f.Draw+"%")
	}
	return q
}

func applyVariantFilters(q *gorm.DB, f VariantFilter) *gorm.DB {
	// Filters on woven attributes need the parent relation in scope.
	if (f.Reference != nil && *f.Reference != "") || (f.Draw != nil && *f.Draw != "") {
		q = q.Joins("JOIN woven_info ON woven_info.id = variant_info.woven_id")
		if f.Reference != nil && *f.Reference != "" {
			q = q.Where("woven_info.reference ILIKE ?", "%"+*f.Reference+"%")
		}
		if f.Draw != nil && *f.Draw != "" {
			q = q.Where("woven_info.draw ILIKE ?", "%"+*f.Draw+"%")
		}
	}

	// Conjunctive: every requested color must be present in the list.
	for _, color := range f.ColorNames {
		q = q.Where(
			"EXISTS (SELECT 1 FROM unnest(variant_info.color_name) AS cn WHERE lower(cn) = lower(?))",
			color,
		)
	}

	if f.Category != nil && *f.Category != "" {
		q = q.Where("variant_info.category ILIKE ?", "%"+*f.Category+"%")
	}

	if f.InStock != nil {
		const stockExists = "EXISTS (SELECT 1 FROM stock_info WHERE stock_info.variant_id = variant_info.id)"
		if *f.InStock {
			q = q.Where(stockExists)
		} else {
			q = q.Where("NOT " + stockExists)
		}
	}

	return q
}

func applyStockFilters(q *gorm.DB, f StockFilter) *gorm.DB {
	if f.VariantID != nil {
		q = q.Where("stock_info.variant_id = ?", *f.VariantID)
	}
	if f.PerfectMatch != nil {
		q = q.Where("stock_info.perfect_match = ?", *f.PerfectMatch)
	}
	if f.MinQuantity != nil {
		// Inclusive lower bound; null quantities never match.
		q = q.Where("stock_info.quantity >= ?", *f.MinQuantity)
	}
	if f.Description != nil && *f.Description != "" {
		q = q.Where("stock_info.description ILIKE ?", "%"+*f.Description+"%")
	}
	return q
}

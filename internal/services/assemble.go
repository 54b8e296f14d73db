package services

import (
	"sort"

	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
)

// unknownRef is the sentinel emitted for references whose target row no
// longer exists.
const unknownRef = "Unknown"

// variantSummaries projects child variants sorted by variant reference code.
// excludeID drops the named variant, for sibling lists; pass 0 to keep all.
func variantSummaries(variants []*domain.Variant, excludeID int64) []VariantSummary {
	sorted := make([]*domain.Variant, 0, len(variants))
	for _, v := range variants {
		if excludeID != 0 && v.ID == excludeID {
			continue
		}
		sorted = append(sorted, v)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].VariantRef < sorted[j].VariantRef
	})

	out := make([]VariantSummary, 0, len(sorted))
	for _, v := range sorted {
		out = append(out, VariantSummary{
			VariantID:  v.ID,
			VariantRef: v.VariantRef,
			Thumbnail:  v.Thumbnail,
		})
	}
	return out
}

// yarnItems keeps yarns with no variant scope or matching the given reference
// code. An empty variantRef selects only unscoped yarns.
func yarnItems(yarns []domain.Yarn, variantRef string) []YarnItem {
	out := make([]YarnItem, 0, len(yarns))
	for _, y := range yarns {
		if y.VariantRef != "" && y.VariantRef != variantRef {
			continue
		}
		out = append(out, YarnItem{
			Name:        y.Name,
			Ne:          y.Ne,
			Composition: y.Composition,
			Colors:      y.Colors,
		})
	}
	return out
}

func allYarnItems(yarns []domain.Yarn) []YarnItem {
	out := make([]YarnItem, 0, len(yarns))
	for _, y := range yarns {
		out = append(out, YarnItem{
			Name:        y.Name,
			Ne:          y.Ne,
			Composition: y.Composition,
			Colors:      y.Colors,
		})
	}
	return out
}

func stockItems(entries []*domain.Stock) []StockItem {
	out := make([]StockItem, 0, len(entries))
	for _, s := range entries {
		out = append(out, StockItem{
			ID:           s.ID,
			Description:  s.Description,
			Quantity:     s.Quantity,
			PerfectMatch: s.PerfectMatch,
		})
	}
	return out
}

func wovenSummary(w *domain.Woven) *WovenSummary {
	if w == nil {
		return nil
	}
	return &WovenSummary{
		ID:          w.ID,
		Reference:   w.Reference,
		Draw:        w.Draw,
		Composition: w.Composition,
		Date:        w.Date,
		Finishing:   w.Finishing,
	}
}

func stringSlice(arr []string) []string {
	if arr == nil {
		return []string{}
	}
	return arr
}

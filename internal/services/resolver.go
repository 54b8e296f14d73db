package services

import (
	"context"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
)

// referenceResolver hydrates embedded reference lists (similarity, nearest)
// with one batched variant lookup per list. Output always has the same length
// and order as the input; dangling IDs become placeholder entries, never
// errors.
type referenceResolver struct {
	variants repos.VariantRepo
	stock    repos.StockRepo
}

func distinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (r *referenceResolver) variantsByID(ctx context.Context, ids []int64) (map[int64]*domain.Variant, error) {
	rows, err := r.variants.GetByIDs(ctx, nil, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.Variant, len(rows))
	for _, v := range rows {
		byID[v.ID] = v
	}
	return byID, nil
}

func (r *referenceResolver) resolveSimilar(ctx context.Context, entries []domain.SimilarityEntry) ([]SimilarVariantItem, error) {
	out := make([]SimilarVariantItem, 0, len(entries))
	if len(entries) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	byID, err := r.variantsByID(ctx, distinctIDs(ids))
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		item := SimilarVariantItem{
			ID:           e.ID,
			ScorePercent: e.ScorePercent,
			VariantRef:   unknownRef,
		}
		if v, ok := byID[e.ID]; ok {
			item.VariantRef = v.VariantRef
			item.Thumbnail = v.Thumbnail
			if v.Woven != nil {
				item.Reference = v.Woven.Reference
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *referenceResolver) resolveNearest(ctx context.Context, ids []int64) ([]NearestVariantItem, error) {
	out := make([]NearestVariantItem, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	distinct := distinctIDs(ids)
	byID, err := r.variantsByID(ctx, distinct)
	if err != nil {
		return nil, err
	}
	stocked, err := r.stock.VariantIDsWithStock(ctx, nil, distinct)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		item := NearestVariantItem{
			ID:         id,
			VariantRef: unknownRef,
		}
		if v, ok := byID[id]; ok {
			item.VariantRef = v.VariantRef
			item.Thumbnail = v.Thumbnail
			item.HasStock = stocked[id]
			if v.Woven != nil {
				item.Reference = v.Woven.Reference
			}
		}
		out = append(out, item)
	}
	return out, nil
}

package catalog

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type VariantRepo interface {
	Count(ctx context.Context, tx *gorm.DB, f VariantFilter) (int64, error)
	ListPage(ctx context.Context, tx *gorm.DB, f VariantFilter, offset, limit int) ([]*domain.Variant, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Variant, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*domain.Variant, error)
}

type variantRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVariantRepo(db *gorm.DB, baseLog *logger.Logger) VariantRepo {
	return &variantRepo{db: db, log: baseLog.With("repo", "VariantRepo")}
}

func (r *variantRepo) Count(ctx context.Context, tx *gorm.DB, f VariantFilter) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var total int64
	q := applyVariantFilters(transaction.WithContext(ctx).Model(&domain.Variant{}), f)
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *variantRepo) ListPage(ctx context.Context, tx *gorm.DB, f VariantFilter, offset, limit int) ([]*domain.Variant, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Variant
	q := applyVariantFilters(transaction.WithContext(ctx).Model(&domain.Variant{}), f)
	if err := q.
		Preload("Woven").
		Order("variant_info.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID loads a variant with its woven, the woven's other variants, and its
// stock entries, all in one eager fetch for the detail view.
func (r *variantRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Variant, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var variant domain.Variant
	if err := transaction.WithContext(ctx).
		Preload("Woven").
		Preload("Woven.Variants").
		Preload("StockEntries").
		First(&variant, "variant_info.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// GetByIDs is the batched lookup behind embedded-reference resolution. Absent
// IDs are simply missing from the result; callers handle dangling references.
func (r *variantRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*domain.Variant, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Variant
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Woven").
		Where("variant_info.id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

package catalog

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type StockRepo interface {
	Count(ctx context.Context, tx *gorm.DB, f StockFilter) (int64, error)
	ListPage(ctx context.Context, tx *gorm.DB, f StockFilter, offset, limit int) ([]*domain.Stock, error)
	VariantIDsWithStock(ctx context.Context, tx *gorm.DB, variantIDs []int64) (map[int64]bool, error)
}

type stockRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStockRepo(db *gorm.DB, baseLog *logger.Logger) StockRepo {
	return &stockRepo{db: db, log: baseLog.With("repo", "StockRepo")}
}

func (r *stockRepo) Count(ctx context.Context, tx *gorm.DB, f StockFilter) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var total int64
	q := applyStockFilters(transaction.WithContext(ctx).Model(&domain.Stock{}), f)
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *stockRepo) ListPage(ctx context.Context, tx *gorm.DB, f StockFilter, offset, limit int) ([]*domain.Stock, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Stock
	q := applyStockFilters(transaction.WithContext(ctx).Model(&domain.Stock{}), f)
	if err := q.
		Preload("Variant").
		Preload("Variant.Woven").
		Order("stock_info.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// VariantIDsWithStock reports which of the given variants have at least one
// stock row, in a single round trip.
func (r *stockRepo) VariantIDsWithStock(ctx context.Context, tx *gorm.DB, variantIDs []int64) (map[int64]bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	result := make(map[int64]bool, len(variantIDs))
	if len(variantIDs) == 0 {
		return result, nil
	}

	var stocked []int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Stock{}).
		Distinct("variant_id").
		Where("variant_id IN ?", variantIDs).
		Pluck("variant_id", &stocked).Error; err != nil {
		return nil, err
	}
	for _, id := range stocked {
		result[id] = true
	}
	return result, nil
}

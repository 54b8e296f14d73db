package catalog

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type WovenRepo interface {
	Count(ctx context.Context, tx *gorm.DB, f WovenFilter) (int64, error)
	ListPage(ctx context.Context, tx *gorm.DB, f WovenFilter, offset, limit int) ([]*domain.Woven, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Woven, error)
	DistinctReferences(ctx context.Context, tx *gorm.DB) ([]string, error)
	DistinctDraws(ctx context.Context, tx *gorm.DB) ([]string, error)
}

type wovenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWovenRepo(db *gorm.DB, baseLog *logger.Logger) WovenRepo {
	return &wovenRepo{db: db, log: baseLog.With("repo", "WovenRepo")}
}

func (r *wovenRepo) Count(ctx context.Context, tx *gorm.DB, f WovenFilter) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var total int64
	q := applyWovenFilters(transaction.WithContext(ctx).Model(&domain.Woven{}), f)
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *wovenRepo) ListPage(ctx context.Context, tx *gorm.DB, f WovenFilter, offset, limit int) ([]*domain.Woven, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.Woven
	q := applyWovenFilters(transaction.WithContext(ctx).Model(&domain.Woven{}), f)
	if err := q.
		Preload("Variants").
		Order("woven_info.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *wovenRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Woven, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var woven domain.Woven
	if err := transaction.WithContext(ctx).
		Preload("Variants").
		First(&woven, "woven_info.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &woven, nil
}

func (r *wovenRepo) DistinctReferences(ctx context.Context, tx *gorm.DB) ([]string, error) {
	return r.distinctColumn(ctx, tx, "reference")
}

func (r *wovenRepo) DistinctDraws(ctx context.Context, tx *gorm.DB) ([]string, error) {
	return r.distinctColumn(ctx, tx, "draw")
}

func (r *wovenRepo) distinctColumn(ctx context.Context, tx *gorm.DB, column string) ([]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var values []string
	if err := transaction.WithContext(ctx).
		Model(&domain.Woven{}).
		Distinct(column).
		Where(column + " IS NOT NULL").
		Order(column + " ASC").
		Pluck(column, &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

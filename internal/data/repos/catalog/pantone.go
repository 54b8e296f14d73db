package catalog

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type PantoneRepo interface {
	ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.PantoneColor, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.PantoneColor, error)
}

type pantoneRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPantoneRepo(db *gorm.DB, baseLog *logger.Logger) PantoneRepo {
	return &pantoneRepo{db: db, log: baseLog.With("repo", "PantoneRepo")}
}

func (r *pantoneRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*domain.PantoneColor, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*domain.PantoneColor
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *pantoneRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.PantoneColor, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var color domain.PantoneColor
	if err := transaction.WithContext(ctx).
		First(&color, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

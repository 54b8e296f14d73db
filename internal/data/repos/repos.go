package repos

import (
	"gorm.io/gorm"

	"github.com/penelope-tex/penelope-backend/internal/data/repos/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type WovenRepo = catalog.WovenRepo
type VariantRepo = catalog.VariantRepo
type StockRepo = catalog.StockRepo
type PantoneRepo = catalog.PantoneRepo

type WovenFilter = catalog.WovenFilter
type VariantFilter = catalog.VariantFilter
type StockFilter = catalog.StockFilter

func NewWovenRepo(db *gorm.DB, baseLog *logger.Logger) WovenRepo {
	return catalog.NewWovenRepo(db, baseLog)
}

func NewVariantRepo(db *gorm.DB, baseLog *logger.Logger) VariantRepo {
	return catalog.NewVariantRepo(db, baseLog)
}

func NewStockRepo(db *gorm.DB, baseLog *logger.Logger) StockRepo {
	return catalog.NewStockRepo(db, baseLog)
}

func NewPantoneRepo(db *gorm.DB, baseLog *logger.Logger) PantoneRepo {
	return catalog.NewPantoneRepo(db, baseLog)
}

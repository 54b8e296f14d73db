package app

import (
	"gorm.io/gorm"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type Repos struct {
	Wovens   repos.WovenRepo
	Variants repos.VariantRepo
	Stock    repos.StockRepo
	Pantone  repos.PantoneRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Wovens:   repos.NewWovenRepo(db, log),
		Variants: repos.NewVariantRepo(db, log),
		Stock:    repos.NewStockRepo(db, log),
		Pantone:  repos.NewPantoneRepo(db, log),
	}
}

package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	"github.com/penelope-tex/penelope-backend/internal/platform/apierr"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type PantoneService interface {
	ListPantoneColors(ctx context.Context) (*PantoneColorList, error)
	GetPantoneColor(ctx context.Context, name string) (*PantoneColorDetail, error)
}

type pantoneService struct {
	log      *logger.Logger
	pantone  repos.PantoneRepo
	resolver *referenceResolver
}

func NewPantoneService(log *logger.Logger, pantone repos.PantoneRepo, variants repos.VariantRepo, stock repos.StockRepo) PantoneService {
	return &pantoneService{
		log:      log.With("service", "PantoneService"),
		pantone:  pantone,
		resolver: &referenceResolver{variants: variants, stock: stock},
	}
}

func (s *pantoneService) ListPantoneColors(ctx context.Context) (*PantoneColorList, error) {
	colors, err := s.pantone.ListAll(ctx, nil)
	if err != nil {
		s.log.Error("list pantone colors failed", "error", err)
		return nil, apierr.Unavailable(err)
	}

	items := make([]PantoneColorListItem, 0, len(colors))
	for _, c := range colors {
		items = append(items, PantoneColorListItem{Name: c.Name, Hex: c.Hex})
	}
	return &PantoneColorList{Items: items, Total: len(items)}, nil
}

func (s *pantoneService) GetPantoneColor(ctx context.Context, name string) (*PantoneColorDetail, error) {
	color, err := s.pantone.GetByName(ctx, nil, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Pantone color '%s' not found", name)
		}
		s.log.Error("get pantone color failed", "name", name, "error", err)
		return nil, apierr.Unavailable(err)
	}

	nearest, err := s.resolver.resolveNearest(ctx, color.Nearests)
	if err != nil {
		s.log.Error("resolve nearest failed", "name", name, "error", err)
		return nil, apierr.Unavailable(err)
	}

	return &PantoneColorDetail{
		Name:    color.Name,
		Hex:     color.Hex,
		Nearest: nearest,
	}, nil
}

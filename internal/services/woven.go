package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/apierr"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type WovenService interface {
	ListWovens(ctx context.Context, f repos.WovenFilter, page, pageSize int) (*Page[WovenListItem], error)
	GetWoven(ctx context.Context, id int64) (*WovenDetail, error)
}

type wovenService struct {
	log    *logger.Logger
	wovens repos.WovenRepo
	pag    Pagination
}

func NewWovenService(log *logger.Logger, wovens repos.WovenRepo, pag Pagination) WovenService {
	return &wovenService{
		log:    log.With("service", "WovenService"),
		wovens: wovens,
		pag:    pag,
	}
}

func (s *wovenService) ListWovens(ctx context.Context, f repos.WovenFilter, page, pageSize int) (*Page[WovenListItem], error) {
	pageSize = s.pag.ClampPageSize(pageSize)

	var (
		total int64
		rows  []*domain.Woven
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.wovens.Count(gctx, nil, f)
		total = t
		return err
	})
	g.Go(func() error {
		r, err := s.wovens.ListPage(gctx, nil, f, pageOffset(page, pageSize), pageSize)
		rows = r
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("list wovens failed", "error", err)
		return nil, apierr.Unavailable(err)
	}

	items := make([]WovenListItem, 0, len(rows))
	for _, w := range rows {
		variants := variantSummaries(w.Variants, 0)
		items = append(items, WovenListItem{
			ID:           w.ID,
			Reference:    w.Reference,
			Draw:         w.Draw,
			Finishing:    w.Finishing,
			VariantCount: len(variants),
			Variants:     variants,
		})
	}
	return newPage(items, total, page, pageSize), nil
}

func (s *wovenService) GetWoven(ctx context.Context, id int64) (*WovenDetail, error) {
	w, err := s.wovens.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Woven with ID %d not found", id)
		}
		s.log.Error("get woven failed", "woven_id", id, "error", err)
		return nil, apierr.Unavailable(err)
	}

	variants := variantSummaries(w.Variants, 0)
	return &WovenDetail{
		ID:           w.ID,
		Reference:    w.Reference,
		Draw:         w.Draw,
		Finishing:    w.Finishing,
		Composition:  w.Composition,
		Date:         w.Date,
		VariantCount: len(variants),
		Variants:     variants,
		Yarns:        allYarnItems(w.Yarns),
	}, nil
}

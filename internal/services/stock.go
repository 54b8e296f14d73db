package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/apierr"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

type StockService interface {
	ListStock(ctx context.Context, f repos.StockFilter, page, pageSize int) (*Page[StockListItem], error)
}

type stockService struct {
	log   *logger.Logger
	stock repos.StockRepo
	pag   Pagination
}

func NewStockService(log *logger.Logger, stock repos.StockRepo, pag Pagination) StockService {
	return &stockService{
		log:   log.With("service", "StockService"),
		stock: stock,
		pag:   pag,
	}
}

func (s *stockService) ListStock(ctx context.Context, f repos.StockFilter, page, pageSize int) (*Page[StockListItem], error) {
	pageSize = s.pag.ClampPageSize(pageSize)

	var (
		total int64
		rows  []*domain.Stock
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.stock.Count(gctx, nil, f)
		total = t
		return err
	})
	g.Go(func() error {
		r, err := s.stock.ListPage(gctx, nil, f, pageOffset(page, pageSize), pageSize)
		rows = r
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("list stock failed", "error", err)
		return nil, apierr.Unavailable(err)
	}

	items := make([]StockListItem, 0, len(rows))
	for _, entry := range rows {
		item := StockListItem{
			ID:           entry.ID,
			VariantID:    entry.VariantID,
			Description:  entry.Description,
			Quantity:     entry.Quantity,
			PerfectMatch: entry.PerfectMatch,
		}
		if v := entry.Variant; v != nil {
			vi := &VariantInStock{
				ID:         v.ID,
				VariantRef: v.VariantRef,
				Category:   v.Category,
				Thumbnail:  v.Thumbnail,
			}
			if v.Woven != nil {
				vi.Reference = v.Woven.Reference
			}
			item.Variant = vi
		}
		items = append(items, item)
	}
	return newPage(items, total, page, pageSize), nil
}

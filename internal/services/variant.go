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

type VariantService interface {
	ListVariants(ctx context.Context, f repos.VariantFilter, page, pageSize int) (*Page[VariantListItem], error)
	GetVariant(ctx context.Context, id int64) (*VariantDetail, error)
}

type variantService struct {
	log      *logger.Logger
	variants repos.VariantRepo
	resolver *referenceResolver
	pag      Pagination
}

func NewVariantService(log *logger.Logger, variants repos.VariantRepo, stock repos.StockRepo, pag Pagination) VariantService {
	return &variantService{
		log:      log.With("service", "VariantService"),
		variants: variants,
		resolver: &referenceResolver{variants: variants, stock: stock},
		pag:      pag,
	}
}

func (s *variantService) ListVariants(ctx context.Context, f repos.VariantFilter, page, pageSize int) (*Page[VariantListItem], error) {
	pageSize = s.pag.ClampPageSize(pageSize)

	var (
		total int64
		rows  []*domain.Variant
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.variants.Count(gctx, nil, f)
		total = t
		return err
	})
	g.Go(func() error {
		r, err := s.variants.ListPage(gctx, nil, f, pageOffset(page, pageSize), pageSize)
		rows = r
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("list variants failed", "error", err)
		return nil, apierr.Unavailable(err)
	}

	items := make([]VariantListItem, 0, len(rows))
	for _, v := range rows {
		item := VariantListItem{
			ID:         v.ID,
			VariantRef: v.VariantRef,
			Thumbnail:  v.Thumbnail,
			ColorHex:   stringSlice(v.ColorHexes),
		}
		if v.Woven != nil {
			item.Reference = v.Woven.Reference
			item.Draw = v.Woven.Draw
		}
		items = append(items, item)
	}
	return newPage(items, total, page, pageSize), nil
}

func (s *variantService) GetVariant(ctx context.Context, id int64) (*VariantDetail, error) {
	v, err := s.variants.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Variant with ID %d not found", id)
		}
		s.log.Error("get variant failed", "variant_id", id, "error", err)
		return nil, apierr.Unavailable(err)
	}

	similar, err := s.resolver.resolveSimilar(ctx, v.Similarity)
	if err != nil {
		s.log.Error("resolve similarity failed", "variant_id", id, "error", err)
		return nil, apierr.Unavailable(err)
	}

	detail := &VariantDetail{
		ID:         v.ID,
		VariantRef: v.VariantRef,
		Filename:   v.Filename,
		Thumbnail:  v.Thumbnail,
		Category:   v.Category,
		ColorName:  stringSlice(v.ColorNames),
		ColorHex:   stringSlice(v.ColorHexes),
		Similarity: similar,
		Woven:      wovenSummary(v.Woven),
		Others:     []VariantSummary{},
		Yarns:      []YarnItem{},
		Stock:      stockItems(v.StockEntries),
	}
	if v.Woven != nil {
		detail.Others = variantSummaries(v.Woven.Variants, v.ID)
		detail.Yarns = yarnItems(v.Woven.Yarns, v.VariantRef)
	}
	return detail, nil
}

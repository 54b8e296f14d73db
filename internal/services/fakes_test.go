package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/penelope-tex/penelope-backend/internal/data/repos"
	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() {
		log.Sync()
	})
	return log
}

func strptr(s string) *string { return &s }

type fakeWovenRepo struct {
	countTotal int64
	countErr   error
	pageRows   []*domain.Woven
	pageErr    error
	byID       map[int64]*domain.Woven
	getErr     error
	references []string
	draws      []string

	lastOffset int
	lastLimit  int
}

func (f *fakeWovenRepo) Count(_ context.Context, _ *gorm.DB, _ repos.WovenFilter) (int64, error) {
	return f.countTotal, f.countErr
}

func (f *fakeWovenRepo) ListPage(_ context.Context, _ *gorm.DB, _ repos.WovenFilter, offset, limit int) ([]*domain.Woven, error) {
	f.lastOffset = offset
	f.lastLimit = limit
	return f.pageRows, f.pageErr
}

func (f *fakeWovenRepo) GetByID(_ context.Context, _ *gorm.DB, id int64) (*domain.Woven, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if w, ok := f.byID[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWovenRepo) DistinctReferences(_ context.Context, _ *gorm.DB) ([]string, error) {
	return f.references, nil
}

func (f *fakeWovenRepo) DistinctDraws(_ context.Context, _ *gorm.DB) ([]string, error) {
	return f.draws, nil
}

type fakeVariantRepo struct {
	countTotal int64
	countErr   error
	pageRows   []*domain.Variant
	pageErr    error
	byID       map[int64]*domain.Variant
	getErr     error

	getByIDsCalls int
	lastBatchIDs  []int64
}

func (f *fakeVariantRepo) Count(_ context.Context, _ *gorm.DB, _ repos.VariantFilter) (int64, error) {
	return f.countTotal, f.countErr
}

func (f *fakeVariantRepo) ListPage(_ context.Context, _ *gorm.DB, _ repos.VariantFilter, offset, limit int) ([]*domain.Variant, error) {
	return f.pageRows, f.pageErr
}

func (f *fakeVariantRepo) GetByID(_ context.Context, _ *gorm.DB, id int64) (*domain.Variant, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if v, ok := f.byID[id]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVariantRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []int64) ([]*domain.Variant, error) {
	f.getByIDsCalls++
	f.lastBatchIDs = append([]int64(nil), ids...)
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := make([]*domain.Variant, 0, len(ids))
	for _, id := range ids {
		if v, ok := f.byID[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeStockRepo struct {
	countTotal int64
	countErr   error
	pageRows   []*domain.Stock
	pageErr    error
	stocked    map[int64]bool
	stockedErr error
}

func (f *fakeStockRepo) Count(_ context.Context, _ *gorm.DB, _ repos.StockFilter) (int64, error) {
	return f.countTotal, f.countErr
}

func (f *fakeStockRepo) ListPage(_ context.Context, _ *gorm.DB, _ repos.StockFilter, offset, limit int) ([]*domain.Stock, error) {
	return f.pageRows, f.pageErr
}

func (f *fakeStockRepo) VariantIDsWithStock(_ context.Context, _ *gorm.DB, variantIDs []int64) (map[int64]bool, error) {
	if f.stockedErr != nil {
		return nil, f.stockedErr
	}
	out := make(map[int64]bool, len(variantIDs))
	for _, id := range variantIDs {
		if f.stocked[id] {
			out[id] = true
		}
	}
	return out, nil
}

type fakePantoneRepo struct {
	colors []*domain.PantoneColor
	err    error
}

func (f *fakePantoneRepo) ListAll(_ context.Context, _ *gorm.DB) ([]*domain.PantoneColor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.colors, nil
}

func (f *fakePantoneRepo) GetByName(_ context.Context, _ *gorm.DB, name string) (*domain.PantoneColor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.colors {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

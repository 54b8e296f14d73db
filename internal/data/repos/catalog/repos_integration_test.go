package catalog

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/penelope-tex/penelope-backend/internal/data/repos/testutil"
	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
)

// seedCatalog inserts a small known dataset:
//
//	woven 1 "SATIN-200"  draw "Jacquard"  variants 10 (Blue/White, Shirting, stocked)
//	                                       and 11 (Red, Shirting, no stock)
//	woven 2 "TWILL-430"  draw "Dobby"     variant 20 (Blue, Suiting, stocked twice)
//	woven 3 "PLAIN-001"  draw NULL        no variants
func seedCatalog(t *testing.T, tx *gorm.DB) {
	t.Helper()

	wovens := []*domain.Woven{
		{
			ID:        1,
			Reference: testutil.StrPtr("SATIN-200"),
			Draw:      testutil.StrPtr("Jacquard"),
			Yarns: []domain.Yarn{
				{Name: "warp", Ne: "30/1"},
				{Name: "weft", Ne: "20/1", VariantRef: "001"},
			},
		},
		{ID: 2, Reference: testutil.StrPtr("TWILL-430"), Draw: testutil.StrPtr("Dobby")},
		{ID: 3, Reference: testutil.StrPtr("PLAIN-001")},
	}
	if err := tx.Create(&wovens).Error; err != nil {
		t.Fatalf("seed wovens: %v", err)
	}

	variants := []*domain.Variant{
		{
			ID:         10,
			WovenID:    1,
			VariantRef: "001",
			Category:   testutil.StrPtr("Shirting"),
			ColorNames: []string{"Blue", "White"},
			ColorHexes: []string{"#0000ff", "#ffffff"},
			Similarity: []domain.SimilarityEntry{{ID: 20, ScorePercent: 90.5}},
		},
		{
			ID:         11,
			WovenID:    1,
			VariantRef: "002",
			Category:   testutil.StrPtr("Shirting"),
			ColorNames: []string{"Red"},
		},
		{
			ID:         20,
			WovenID:    2,
			VariantRef: "001",
			Category:   testutil.StrPtr("Suiting"),
			ColorNames: []string{"Blue"},
		},
	}
	if err := tx.Create(&variants).Error; err != nil {
		t.Fatalf("seed variants: %v", err)
	}

	stock := []*domain.Stock{
		{VariantID: 10, Description: testutil.StrPtr("Warehouse A"), Quantity: testutil.FloatPtr(5)},
		{VariantID: 20, Description: testutil.StrPtr("Warehouse A"), Quantity: testutil.FloatPtr(10), PerfectMatch: true},
		{VariantID: 20, Description: testutil.StrPtr("Warehouse B"), Quantity: testutil.FloatPtr(15)},
		{VariantID: 20, Description: testutil.StrPtr("Returns"), Quantity: nil},
	}
	if err := tx.Create(&stock).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}

	pantones := []*domain.PantoneColor{
		{Name: "PANTONE Blue C", Hex: "#0018a8", Nearests: []int64{10, 20}},
		{Name: "PANTONE Yellow C", Hex: "#fedd00", Nearests: []int64{11, 999}},
	}
	if err := tx.Create(&pantones).Error; err != nil {
		t.Fatalf("seed pantone colors: %v", err)
	}
}

func variantIDs(rows []*domain.Variant) []int64 {
	out := make([]int64, 0, len(rows))
	for _, v := range rows {
		out = append(out, v.ID)
	}
	return out
}

func TestVariantRepoFilters(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	seedCatalog(t, tx)

	repo := NewVariantRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	t.Run("no filter returns all ordered by id", func(t *testing.T) {
		rows, err := repo.ListPage(ctx, tx, VariantFilter{}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		got := variantIDs(rows)
		if len(got) != 3 || got[0] != 10 || got[1] != 11 || got[2] != 20 {
			t.Fatalf("ids: want [10 11 20], got %v", got)
		}
	})

	t.Run("single color matches case-insensitively", func(t *testing.T) {
		rows, err := repo.ListPage(ctx, tx, VariantFilter{ColorNames: []string{"blue"}}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if got := variantIDs(rows); len(got) != 2 || got[0] != 10 || got[1] != 20 {
			t.Fatalf("ids: want [10 20], got %v", got)
		}
	})

	t.Run("multiple colors are conjunctive", func(t *testing.T) {
		rows, err := repo.ListPage(ctx, tx, VariantFilter{ColorNames: []string{"Blue", "White"}}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if got := variantIDs(rows); len(got) != 1 || got[0] != 10 {
			t.Fatalf("ids: want [10], got %v", got)
		}
	})

	t.Run("reference substring via woven join", func(t *testing.T) {
		rows, err := repo.ListPage(ctx, tx, VariantFilter{Reference: testutil.StrPtr("satin")}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if got := variantIDs(rows); len(got) != 2 || got[0] != 10 || got[1] != 11 {
			t.Fatalf("ids: want [10 11], got %v", got)
		}
	})

	t.Run("draw filter", func(t *testing.T) {
		rows, err := repo.ListPage(ctx, tx, VariantFilter{Draw: testutil.StrPtr("Dobby")}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if got := variantIDs(rows); len(got) != 1 || got[0] != 20 {
			t.Fatalf("ids: want [20], got %v", got)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		total, err := repo.Count(ctx, tx, VariantFilter{Category: testutil.StrPtr("Suiting")})
		if err != nil {
			t.Fatalf("Count: %v", err)
		}
		if total != 1 {
			t.Fatalf("count: want=1 got=%d", total)
		}
	})

	t.Run("in_stock true and false partition the set", func(t *testing.T) {
		inStock := true
		rows, err := repo.ListPage(ctx, tx, VariantFilter{InStock: &inStock}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if got := variantIDs(rows); len(got) != 2 || got[0] != 10 || got[1] != 20 {
			t.Fatalf("in stock ids: want [10 20], got %v", got)
		}

		inStock = false
		rows, err = repo.ListPage(ctx, tx, VariantFilter{InStock: &inStock}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if got := variantIDs(rows); len(got) != 1 || got[0] != 11 {
			t.Fatalf("out of stock ids: want [11], got %v", got)
		}
	})

	t.Run("combined filters AND together", func(t *testing.T) {
		inStock := true
		total, err := repo.Count(ctx, tx, VariantFilter{
			ColorNames: []string{"Blue"},
			Reference:  testutil.StrPtr("SATIN"),
			InStock:    &inStock,
		})
		if err != nil {
			t.Fatalf("Count: %v", err)
		}
		if total != 1 {
			t.Fatalf("count: want=1 got=%d", total)
		}
	})
}

func TestVariantRepoGetByID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	seedCatalog(t, tx)

	repo := NewVariantRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	v, err := repo.GetByID(ctx, tx, 10)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if v.Woven == nil || v.Woven.ID != 1 {
		t.Fatalf("woven preload: got %+v", v.Woven)
	}
	if len(v.Woven.Variants) != 2 {
		t.Fatalf("sibling preload: want=2 got=%d", len(v.Woven.Variants))
	}
	if len(v.StockEntries) != 1 {
		t.Fatalf("stock preload: want=1 got=%d", len(v.StockEntries))
	}

	if _, err := repo.GetByID(ctx, tx, 999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing id: want ErrRecordNotFound, got %v", err)
	}
}

func TestVariantRepoGetByIDs(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	seedCatalog(t, tx)

	repo := NewVariantRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	rows, err := repo.GetByIDs(ctx, tx, []int64{10, 999, 20})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	// Absent IDs are simply missing from the result.
	if len(rows) != 2 {
		t.Fatalf("length: want=2 got=%d", len(rows))
	}

	empty, err := repo.GetByIDs(ctx, tx, nil)
	if err != nil {
		t.Fatalf("GetByIDs(nil): %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("empty input: want no rows, got %d", len(empty))
	}
}

func TestWovenRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	seedCatalog(t, tx)

	repo := NewWovenRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	t.Run("reference substring filter", func(t *testing.T) {
		rows, err := repo.ListPage(ctx, tx, WovenFilter{Reference: testutil.StrPtr("twill")}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if len(rows) != 1 || rows[0].ID != 2 {
			t.Fatalf("rows: want woven 2, got %+v", rows)
		}
	})

	t.Run("get by id preloads variants and yarns round-trip", func(t *testing.T) {
		w, err := repo.GetByID(ctx, tx, 1)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if len(w.Variants) != 2 {
			t.Fatalf("variants: want=2 got=%d", len(w.Variants))
		}
		if len(w.Yarns) != 2 || w.Yarns[1].VariantRef != "001" {
			t.Fatalf("yarns: got %+v", w.Yarns)
		}
	})

	t.Run("distinct references sorted and null draws dropped", func(t *testing.T) {
		refs, err := repo.DistinctReferences(ctx, tx)
		if err != nil {
			t.Fatalf("DistinctReferences: %v", err)
		}
		if len(refs) != 3 || refs[0] != "PLAIN-001" {
			t.Fatalf("references: got %v", refs)
		}

		draws, err := repo.DistinctDraws(ctx, tx)
		if err != nil {
			t.Fatalf("DistinctDraws: %v", err)
		}
		// Woven 3 has no draw; NULL must not appear.
		if len(draws) != 2 || draws[0] != "Dobby" || draws[1] != "Jacquard" {
			t.Fatalf("draws: got %v", draws)
		}
	})

	t.Run("pagination offset and limit", func(t *testing.T) {
		rows, err := repo.ListPage(ctx, tx, WovenFilter{}, 1, 1)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if len(rows) != 1 || rows[0].ID != 2 {
			t.Fatalf("page 2 of size 1: want woven 2, got %+v", rows)
		}
	})
}

func TestStockRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	seedCatalog(t, tx)

	repo := NewStockRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	t.Run("variant_id filter", func(t *testing.T) {
		total, err := repo.Count(ctx, tx, StockFilter{VariantID: ptrInt64(20)})
		if err != nil {
			t.Fatalf("Count: %v", err)
		}
		if total != 3 {
			t.Fatalf("count: want=3 got=%d", total)
		}
	})

	t.Run("min_quantity excludes null quantities", func(t *testing.T) {
		rows, err := repo.ListPage(ctx, tx, StockFilter{MinQuantity: testutil.FloatPtr(10)}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("rows: want=2 got=%d", len(rows))
		}
		for _, s := range rows {
			if s.Quantity == nil || *s.Quantity < 10 {
				t.Fatalf("row %d quantity: got %v", s.ID, s.Quantity)
			}
		}
	})

	t.Run("perfect_match and description filters", func(t *testing.T) {
		pm := true
		total, err := repo.Count(ctx, tx, StockFilter{PerfectMatch: &pm})
		if err != nil {
			t.Fatalf("Count: %v", err)
		}
		if total != 1 {
			t.Fatalf("perfect_match count: want=1 got=%d", total)
		}

		total, err = repo.Count(ctx, tx, StockFilter{Description: testutil.StrPtr("warehouse")})
		if err != nil {
			t.Fatalf("Count: %v", err)
		}
		if total != 3 {
			t.Fatalf("description count: want=3 got=%d", total)
		}
	})

	t.Run("list preloads variant and woven", func(t *testing.T) {
		rows, err := repo.ListPage(ctx, tx, StockFilter{VariantID: ptrInt64(10)}, 0, 50)
		if err != nil {
			t.Fatalf("ListPage: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("rows: want=1 got=%d", len(rows))
		}
		v := rows[0].Variant
		if v == nil || v.Woven == nil || *v.Woven.Reference != "SATIN-200" {
			t.Fatalf("preload chain: got %+v", v)
		}
	})

	t.Run("variant ids with stock", func(t *testing.T) {
		stocked, err := repo.VariantIDsWithStock(ctx, tx, []int64{10, 11, 20, 999})
		if err != nil {
			t.Fatalf("VariantIDsWithStock: %v", err)
		}
		if !stocked[10] || !stocked[20] {
			t.Fatalf("stocked map: got %v", stocked)
		}
		if stocked[11] || stocked[999] {
			t.Fatalf("unstocked ids flagged: got %v", stocked)
		}
	})
}

func TestPantoneRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	seedCatalog(t, tx)

	repo := NewPantoneRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	colors, err := repo.ListAll(ctx, tx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(colors) != 2 || colors[0].Name != "PANTONE Blue C" {
		t.Fatalf("colors: got %+v", colors)
	}

	c, err := repo.GetByName(ctx, tx, "PANTONE Yellow C")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	// The nearest list survives storage verbatim, dangling IDs included.
	if len(c.Nearests) != 2 || c.Nearests[0] != 11 || c.Nearests[1] != 999 {
		t.Fatalf("nearests: got %v", c.Nearests)
	}

	if _, err := repo.GetByName(ctx, tx, "PANTONE Nope C"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing name: want ErrRecordNotFound, got %v", err)
	}
}

func ptrInt64(v int64) *int64 { return &v }

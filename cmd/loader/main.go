package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/penelope-tex/penelope-backend/internal/app"
	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
)

const insertBatchSize = 1000

// flexQuantity tolerates the source data's mix of numbers, numeric strings
// and empty strings for stock quantities.
type flexQuantity struct {
	Value *float64
}

func (q *flexQuantity) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		q.Value = nil
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			q.Value = nil
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("quantity %q: %w", raw, err)
		}
		q.Value = &v
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	q.Value = &v
	return nil
}

type wovenRecord struct {
	ID          int64         `json:"id"`
	Draw        *string       `json:"draw"`
	Finishing   *string       `json:"finishing"`
	Reference   *string       `json:"reference"`
	Date        *string       `json:"date"`
	Composition *string       `json:"composition"`
	Variants    []string      `json:"variants"`
	Yarns       []domain.Yarn `json:"yarns"`
}

type variantRecord struct {
	ID         int64                    `json:"id"`
	WovenID    int64                    `json:"woven_id"`
	VariantRef string                   `json:"variant_ref"`
	Filename   *string                  `json:"filename"`
	Thumbnail  *string                  `json:"thumbnail"`
	Category   *string                  `json:"category"`
	ColorNames []string                 `json:"color_name"`
	ColorHexes []string                 `json:"color_hex"`
	Similarity []domain.SimilarityEntry `json:"similarity"`
}

type pantoneRecord struct {
	Name     string  `json:"name"`
	Hex      string  `json:"hex"`
	Nearests []int64 `json:"nearests"`
}

type stockRecord struct {
	VariantID    int64        `json:"variant_id"`
	Description  *string      `json:"description"`
	Quantity     flexQuantity `json:"quantity"`
	PerfectMatch bool         `json:"perfect_match"`
}

func readJSON(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(out)
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("date %q: %w", *s, err)
	}
	return &t, nil
}

func loadWovens(tx *gorm.DB, records []wovenRecord) (int, error) {
	rows := make([]domain.Woven, 0, len(records))
	for _, r := range records {
		date, err := parseDate(r.Date)
		if err != nil {
			return 0, fmt.Errorf("woven %d: %w", r.ID, err)
		}
		rows = append(rows, domain.Woven{
			ID:          r.ID,
			Draw:        r.Draw,
			Finishing:   r.Finishing,
			Reference:   r.Reference,
			Date:        date,
			Composition: r.Composition,
			VariantRefs: pq.StringArray(r.Variants),
			Yarns:       datatypes.NewJSONSlice(r.Yarns),
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"draw", "finishing", "reference", "date", "composition", "variants", "yarns",
		}),
	}).CreateInBatches(rows, insertBatchSize).Error
	return len(rows), err
}

func loadVariants(tx *gorm.DB, records []variantRecord, validWovens map[int64]bool) (int, int, error) {
	rows := make([]domain.Variant, 0, len(records))
	skipped := 0
	for _, r := range records {
		if !validWovens[r.WovenID] {
			skipped++
			continue
		}
		ref := r.VariantRef
		if ref == "" {
			ref = "000"
		}
		rows = append(rows, domain.Variant{
			ID:         r.ID,
			WovenID:    r.WovenID,
			VariantRef: ref,
			Filename:   r.Filename,
			Thumbnail:  r.Thumbnail,
			Category:   r.Category,
			ColorNames: pq.StringArray(r.ColorNames),
			ColorHexes: pq.StringArray(r.ColorHexes),
			Similarity: datatypes.NewJSONSlice(r.Similarity),
		})
	}
	if len(rows) == 0 {
		return 0, skipped, nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "woven_id"}, {Name: "variant_ref"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"filename", "thumbnail", "category", "color_name", "color_hex", "similarity",
		}),
	}).CreateInBatches(rows, insertBatchSize).Error
	return len(rows), skipped, err
}

func loadPantones(tx *gorm.DB, records []pantoneRecord) (int, error) {
	rows := make([]domain.PantoneColor, 0, len(records))
	for _, r := range records {
		rows = append(rows, domain.PantoneColor{
			Name:     r.Name,
			Hex:      r.Hex,
			Nearests: pq.Int64Array(r.Nearests),
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"hex", "nearests"}),
	}).CreateInBatches(rows, insertBatchSize).Error
	return len(rows), err
}

// loadStock is append-only: stock rows have a generated primary key and the
// source file carries no natural identity to upsert on.
func loadStock(tx *gorm.DB, records []stockRecord, validVariants map[int64]bool) (int, int, error) {
	rows := make([]domain.Stock, 0, len(records))
	skipped := 0
	for _, r := range records {
		if !validVariants[r.VariantID] {
			skipped++
			continue
		}
		rows = append(rows, domain.Stock{
			VariantID:    r.VariantID,
			Description:  r.Description,
			Quantity:     r.Quantity.Value,
			PerfectMatch: r.PerfectMatch,
		})
	}
	if len(rows) == 0 {
		return 0, skipped, nil
	}
	err := tx.CreateInBatches(rows, insertBatchSize).Error
	return len(rows), skipped, err
}

func pluckIDs(tx *gorm.DB, table string) (map[int64]bool, error) {
	var ids []int64
	if err := tx.Table(table).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func main() {
	var datasetDir string
	flag.StringVar(&datasetDir, "dataset", "dataset", "directory holding the dataset JSON files")
	flag.Parse()

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()
	log := application.Log

	var (
		wovens   []wovenRecord
		variants []variantRecord
		pantones []pantoneRecord
		stock    []stockRecord
	)
	files := []struct {
		name string
		out  any
	}{
		{"final_wovens_data.json", &wovens},
		{"final_variants_data.json", &variants},
		{"knn_pantone.json", &pantones},
		{"final_stock_mapping.json", &stock},
	}
	for _, f := range files {
		path := filepath.Join(datasetDir, f.name)
		log.Info("Loading dataset file", "path", path)
		if err := readJSON(path, f.out); err != nil {
			log.Error("Read dataset file failed", "path", path, "error", err)
			os.Exit(1)
		}
	}

	err = application.DB.Transaction(func(tx *gorm.DB) error {
		n, err := loadWovens(tx, wovens)
		if err != nil {
			return fmt.Errorf("load wovens: %w", err)
		}
		log.Info("Loaded wovens", "count", n)

		validWovens, err := pluckIDs(tx, "woven_info")
		if err != nil {
			return fmt.Errorf("collect woven ids: %w", err)
		}
		n, skipped, err := loadVariants(tx, variants, validWovens)
		if err != nil {
			return fmt.Errorf("load variants: %w", err)
		}
		log.Info("Loaded variants", "count", n, "skipped", skipped)

		n, err = loadPantones(tx, pantones)
		if err != nil {
			return fmt.Errorf("load pantone colors: %w", err)
		}
		log.Info("Loaded pantone colors", "count", n)

		validVariants, err := pluckIDs(tx, "variant_info")
		if err != nil {
			return fmt.Errorf("collect variant ids: %w", err)
		}
		n, skipped, err = loadStock(tx, stock, validVariants)
		if err != nil {
			return fmt.Errorf("load stock: %w", err)
		}
		log.Info("Loaded stock", "count", n, "skipped", skipped)
		return nil
	})
	if err != nil {
		log.Error("Data load failed", "error", err)
		os.Exit(1)
	}
	log.Info("All data loaded successfully")
}

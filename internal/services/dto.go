package services

import "time"

// Response shapes for the catalog endpoints. List items are minimal
// projections; detail items carry resolved embedded lists and owned
// collections.

type VariantSummary struct {
	VariantID  int64   `json:"variant_id"`
	VariantRef string  `json:"variant_ref"`
	Thumbnail  *string `json:"thumbnail"`
}

type WovenListItem struct {
	ID           int64            `json:"id"`
	Reference    *string          `json:"reference"`
	Draw         *string          `json:"draw"`
	Finishing    *string          `json:"finishing"`
	VariantCount int              `json:"variant_count"`
	Variants     []VariantSummary `json:"variants"`
}

type YarnItem struct {
	Name        string `json:"name"`
	Ne          string `json:"ne"`
	Composition string `json:"composition"`
	Colors      string `json:"colors"`
}

type WovenDetail struct {
	ID           int64            `json:"id"`
	Reference    *string          `json:"reference"`
	Draw         *string          `json:"draw"`
	Finishing    *string          `json:"finishing"`
	Composition  *string          `json:"composition"`
	Date         *time.Time       `json:"date"`
	VariantCount int              `json:"variant_count"`
	Variants     []VariantSummary `json:"variants"`
	Yarns        []YarnItem       `json:"yarns"`
}

type WovenSummary struct {
	ID          int64      `json:"id"`
	Reference   *string    `json:"reference"`
	Draw        *string    `json:"draw"`
	Composition *string    `json:"composition"`
	Date        *time.Time `json:"date"`
	Finishing   *string    `json:"finishing"`
}

type VariantListItem struct {
	ID         int64    `json:"id"`
	VariantRef string   `json:"variant_ref"`
	Reference  *string  `json:"reference"`
	Draw       *string  `json:"draw"`
	Thumbnail  *string  `json:"thumbnail"`
	ColorHex   []string `json:"color_hex"`
}

type SimilarVariantItem struct {
	ID           int64   `json:"id"`
	ScorePercent float64 `json:"score_percent"`
	VariantRef   string  `json:"variant_ref"`
	Reference    *string `json:"reference"`
	Thumbnail    *string `json:"thumbnail"`
}

type StockItem struct {
	ID           int64    `json:"id"`
	Description  *string  `json:"description"`
	Quantity     *float64 `json:"quantity"`
	PerfectMatch bool     `json:"perfect_match"`
}

type VariantDetail struct {
	ID         int64                `json:"id"`
	VariantRef string               `json:"variant_ref"`
	Filename   *string              `json:"filename"`
	Thumbnail  *string              `json:"thumbnail"`
	Category   *string              `json:"category"`
	ColorName  []string             `json:"color_name"`
	ColorHex   []string             `json:"color_hex"`
	Similarity []SimilarVariantItem `json:"similarity"`
	Woven      *WovenSummary        `json:"woven"`
	Others     []VariantSummary     `json:"other_variants"`
	Yarns      []YarnItem           `json:"yarns"`
	Stock      []StockItem          `json:"stock"`
}

type VariantInStock struct {
	ID         int64   `json:"id"`
	VariantRef string  `json:"variant_ref"`
	Reference  *string `json:"reference"`
	Category   *string `json:"category"`
	Thumbnail  *string `json:"thumbnail"`
}

type StockListItem struct {
	ID           int64           `json:"id"`
	VariantID    int64           `json:"variant_id"`
	Description  *string         `json:"description"`
	Quantity     *float64        `json:"quantity"`
	PerfectMatch bool            `json:"perfect_match"`
	Variant      *VariantInStock `json:"variant"`
}

type PantoneColorListItem struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type PantoneColorList struct {
	Items []PantoneColorListItem `json:"items"`
	Total int                    `json:"total"`
}

type NearestVariantItem struct {
	ID         int64   `json:"id"`
	VariantRef string  `json:"variant_ref"`
	Reference  *string `json:"reference"`
	Thumbnail  *string `json:"thumbnail"`
	HasStock   bool    `json:"has_stock"`
}

type PantoneColorDetail struct {
	Name    string               `json:"name"`
	Hex     string               `json:"hex"`
	Nearest []NearestVariantItem `json:"nearest"`
}

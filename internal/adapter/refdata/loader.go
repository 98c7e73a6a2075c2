// Package refdata loads the immutable shop catalog and ranking snapshot.
// Files named in config override the copies embedded in the binary.
package refdata

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"ppocha-economy/config"
	"ppocha-economy/internal/core/domain"

	"github.com/rs/zerolog"
)

//go:embed data/catalog.json data/ranking.json
var embedded embed.FS

const (
	embeddedCatalog = "data/catalog.json"
	embeddedRanking = "data/ranking.json"
)

// Data is the reference data handed to the services at startup.
type Data struct {
	Catalog  *domain.Catalog
	Rankings domain.RankingSnapshot
}

// Load reads both documents and validates them.
func Load(cfg config.RefDataConfig, log zerolog.Logger) (*Data, error) {
	catalogRaw, catalogSrc, err := read(cfg.CatalogPath, embeddedCatalog)
	if err != nil {
		return nil, err
	}
	catalog, err := ParseCatalog(catalogRaw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", catalogSrc, err)
	}

	rankingRaw, rankingSrc, err := read(cfg.RankingPath, embeddedRanking)
	if err != nil {
		return nil, err
	}
	rankings, err := ParseRankings(rankingRaw)
	if err != nil {
		return nil, fmt.Errorf("ranking %s: %w", rankingSrc, err)
	}

	log.Info().
		Str("catalog", catalogSrc).
		Int("skus", catalog.Len()).
		Str("ranking", rankingSrc).
		Int("ranking_types", len(rankings)).
		Msg("reference data loaded")

	return &Data{Catalog: catalog, Rankings: rankings}, nil
}

// ParseCatalog decodes a tab -> SKU list document. Every SKU needs an id and
// the catalog must not be empty.
func ParseCatalog(raw []byte) (*domain.Catalog, error) {
	var tabs map[string][]domain.SKU
	if err := decodeStrict(raw, &tabs); err != nil {
		return nil, err
	}
	for tab, skus := range tabs {
		for i, s := range skus {
			if s.ID == "" {
				return nil, fmt.Errorf("tab %q entry %d has no id", tab, i)
			}
		}
	}
	catalog := domain.NewCatalog(tabs)
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("no SKUs")
	}
	return catalog, nil
}

// ParseRankings decodes a type -> scope -> rows document. The skill board
// must be present because unknown types fall back to it.
func ParseRankings(raw []byte) (domain.RankingSnapshot, error) {
	var snap domain.RankingSnapshot
	if err := decodeStrict(raw, &snap); err != nil {
		return nil, err
	}
	if _, ok := snap[domain.DefaultRankingType]; !ok {
		return nil, fmt.Errorf("missing %q ranking type", domain.DefaultRankingType)
	}
	return snap, nil
}

func read(path, fallback string) ([]byte, string, error) {
	if path == "" {
		raw, err := embedded.ReadFile(fallback)
		if err != nil {
			return nil, "", fmt.Errorf("reading embedded %s: %w", fallback, err)
		}
		return raw, "embedded:" + fallback, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	return raw, path, nil
}

func decodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	return nil
}

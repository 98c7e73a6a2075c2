package domain

import "sort"

// SKU is a purchasable shop entry.
type SKU struct {
	ID            string `json:"id"`
	Title         string `json:"title,omitempty"`
	Price         int64  `json:"price,omitempty"`
	PriceCurrency string `json:"priceCurrency,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
	Tag           string `json:"tag,omitempty"`
}

// Catalog is the SKU list grouped by shop tab. Immutable after NewCatalog.
type Catalog struct {
	tabs  map[string][]SKU
	index map[string]SKU
}

// NewCatalog indexes tabs by SKU id. A later duplicate id keeps the first entry.
func NewCatalog(tabs map[string][]SKU) *Catalog {
	c := &Catalog{
		tabs:  make(map[string][]SKU, len(tabs)),
		index: make(map[string]SKU),
	}
	for _, tab := range sortedKeys(tabs) {
		skus := make([]SKU, len(tabs[tab]))
		copy(skus, tabs[tab])
		c.tabs[tab] = skus
		for _, s := range skus {
			if _, dup := c.index[s.ID]; !dup && s.ID != "" {
				c.index[s.ID] = s
			}
		}
	}
	return c
}

// Find looks a SKU up in the flattened catalog.
func (c *Catalog) Find(id string) (SKU, bool) {
	s, ok := c.index[id]
	return s, ok
}

// Tabs returns a copy of the tab grouping.
func (c *Catalog) Tabs() map[string][]SKU {
	out := make(map[string][]SKU, len(c.tabs))
	for tab, skus := range c.tabs {
		cp := make([]SKU, len(skus))
		copy(cp, skus)
		out[tab] = cp
	}
	return out
}

// Len is the number of distinct SKU ids.
func (c *Catalog) Len() int {
	return len(c.index)
}

// ---- Rankings ----

// Ranking scopes.
const (
	ScopeCountry      = "country"
	ScopeCity         = "city"
	ScopeNeighborhood = "neighborhood"
	ScopeFriends      = "friends"

	DefaultRankingType = "skill"
)

// RankingRow is one leaderboard line.
type RankingRow struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Score  int64  `json:"score"`
	Region string `json:"region"`
}

// RankingSnapshot maps ranking type -> scope -> rows.
type RankingSnapshot map[string]map[string][]RankingRow

var placeholderRows = map[string][]RankingRow{
	ScopeCity: {
		{Rank: 1, Name: "HwaniMaster", Score: 90210, Region: "Seoul"},
		{Rank: 2, Name: "MapoChef", Score: 88910, Region: "Seoul"},
		{Rank: 3, Name: "YeonnamKing", Score: 87300, Region: "Seoul"},
	},
	ScopeNeighborhood: {
		{Rank: 1, Name: "HwaniMaster", Score: 55420, Region: "Yeonnam-dong"},
		{Rank: 2, Name: "ManduBoss", Score: 54790, Region: "Yeonnam-dong"},
		{Rank: 3, Name: "BungeoAce", Score: 52510, Region: "Yeonnam-dong"},
	},
	ScopeFriends: {
		{Rank: 1, Name: "HwaniMaster", Score: 110220, Region: "KR"},
		{Rank: 2, Name: "Antigravity", Score: 106200, Region: "KR"},
		{Rank: 3, Name: "OpenClawFan", Score: 99500, Region: "KR"},
	},
}

// Rows resolves scope/type with layered fallbacks: unknown type reads the
// skill board; a scope missing from the snapshot uses the built-in
// placeholder rows; anything else falls back to country rows.
// The result is never nil.
func (s RankingSnapshot) Rows(scope, rankingType string) []RankingRow {
	src, ok := s[rankingType]
	if !ok {
		src = s[DefaultRankingType]
	}

	if rows, ok := src[scope]; ok {
		return cloneRows(rows)
	}
	if rows, ok := placeholderRows[scope]; ok {
		return cloneRows(rows)
	}
	return cloneRows(src[ScopeCountry])
}

func cloneRows(rows []RankingRow) []RankingRow {
	out := make([]RankingRow, len(rows))
	copy(out, rows)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package catalog derives the auction item set from the category configuration.
package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"live-auction/internal/biddingerrors"
	model "live-auction/internal/models"
)

// Count bounds for a single category
const (
	MinCount = 1
	MaxCount = 100
)

// DefaultCategories is the category set the auction starts with
const DefaultCategories = "Core:5,Character:5,Shard:5,Orange:5,Purple:10,Blue:20,Ember:8,Envelope:8,Other:30"

// DefaultConfig returns the built-in category configuration
func DefaultConfig() model.CategoryConfig {
	cfg, err := ParseConfig(DefaultCategories)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid default categories: %v", err))
	}
	return cfg
}

// ParseConfig parses "name:count,name:count" into an ordered config.
// A repeated name overwrites the earlier count in place.
func ParseConfig(s string) (model.CategoryConfig, error) {
	cfg := model.CategoryConfig{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, rawCount, ok := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("parse category %q: %w", part, biddingerrors.ErrInvalidCategory)
		}
		count, err := strconv.Atoi(strings.TrimSpace(rawCount))
		if err != nil || !ValidCount(float64(count)) {
			return nil, fmt.Errorf("parse category %q: %w", part, biddingerrors.ErrInvalidCount)
		}
		cfg = cfg.Set(name, count)
	}
	if len(cfg) == 0 {
		return nil, fmt.Errorf("parse categories: %w - no categories configured", biddingerrors.ErrInvalidCategory)
	}
	return cfg, nil
}

// ValidCount reports whether count is an integer in [MinCount, MaxCount]
func ValidCount(count float64) bool {
	return count == math.Trunc(count) && count >= MinCount && count <= MaxCount
}

// Generate builds a fresh item set from the config.
// Ids run 1..N in configuration order, so the item with id n sits at index n-1.
func Generate(cfg model.CategoryConfig) []model.Item {
	items := make([]model.Item, 0, cfg.Total())
	id := 1
	for _, cat := range cfg {
		for i := 1; i <= cat.Count; i++ {
			items = append(items, model.Item{
				ID:       id,
				Name:     fmt.Sprintf("%s%d", cat.Name, i),
				Category: cat.Name,
				Bids:     []model.Bid{},
			})
			id++
		}
	}
	return items
}

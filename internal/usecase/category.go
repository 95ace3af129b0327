package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/model"
)

var labelCaser = cases.Title(language.English, cases.NoLower)

// ResolveCategory classifies raw against the configured categories. An
// empty value resolves to defaultID.
func ResolveCategory(raw string, configured []entity.CategoryDescriptor, defaultID string) entity.CategoryRef {
	key := strings.TrimSpace(raw)
	if key == "" {
		key = defaultID
	}
	for _, c := range configured {
		if c.ID == key {
			return entity.KnownCategory{Descriptor: c}
		}
	}
	return entity.UnknownCategory{Raw: key}
}

// SyntheticLabel builds a display label for an unconfigured category:
// "cyber-security" -> "Cyber Security".
func SyntheticLabel(raw string) string {
	return labelCaser.String(strings.ReplaceAll(raw, "-", " "))
}

// GroupByCategory buckets items by category. Configured categories come
// first in configured order, then unconfigured ones in the order they were
// first seen. Empty groups are dropped.
func GroupByCategory[T model.Categorized](items []T, configured []entity.CategoryDescriptor, defaultID string) []entity.CategoryGroup[T] {
	groups := make([]*entity.CategoryGroup[T], 0, len(configured))
	index := make(map[string]*entity.CategoryGroup[T], len(configured))

	for _, c := range configured {
		if _, dup := index[c.ID]; dup {
			continue
		}
		g := &entity.CategoryGroup[T]{CategoryDescriptor: c, Items: []T{}}
		groups = append(groups, g)
		index[c.ID] = g
	}

	for _, item := range items {
		ref := ResolveCategory(item.GetCategory(), configured, defaultID)

		g, ok := index[ref.Key()]
		if !ok {
			g = &entity.CategoryGroup[T]{
				CategoryDescriptor: entity.CategoryDescriptor{
					ID:          ref.Key(),
					Label:       SyntheticLabel(ref.Key()),
					Tag:         entity.SyntheticCategoryTag,
					Description: entity.SyntheticCategoryDescription,
				},
				Synthetic: true,
				Items:     []T{},
			}
			groups = append(groups, g)
			index[ref.Key()] = g
		}
		g.Items = append(g.Items, item)
	}

	out := make([]entity.CategoryGroup[T], 0, len(groups))
	for _, g := range groups {
		if len(g.Items) > 0 {
			out = append(out, *g)
		}
	}
	return out
}

// internal/domain/catalog/sort.go
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/go-faster/errors"
)

// ErrUnknownSortKey is returned when a sort key name cannot be parsed
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects the display order of a catalog view
type SortKey int

const (
	Relevance SortKey = iota
	PriceAscending
	PriceDescending
	RatingDescending
	Newest
)

var sortKeyNames = map[SortKey]string{
	Relevance:        "relevance",
	PriceAscending:   "price-asc",
	PriceDescending:  "price-desc",
	RatingDescending: "rating",
	Newest:           "newest",
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseSortKey maps user input to a SortKey
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Relevance, nil
	}
	for key, name := range sortKeyNames {
		if name == s {
			return key, nil
		}
	}
	return Relevance, errors.Wrapf(ErrUnknownSortKey, "%q", s)
}

// Sort returns a newly ordered copy of items. Ordering is stable: items
// comparing equal keep their input order. Relevance and Newest keep the
// input order unchanged since no scoring or recency model exists.
func Sort(items []Item, key SortKey) []Item {
	out := slices.Clone(items)

	switch key {
	case PriceAscending:
		slices.SortStableFunc(out, func(a, b Item) int {
			return a.Price.Cmp(b.Price)
		})
	case PriceDescending:
		slices.SortStableFunc(out, func(a, b Item) int {
			return b.Price.Cmp(a.Price)
		})
	case RatingDescending:
		slices.SortStableFunc(out, func(a, b Item) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}

	return out
}

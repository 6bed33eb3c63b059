// internal/interfaces/console/requests.go
package console

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/your-org/petshop-catalog/internal/domain/catalog"
)

// SearchRequest represents search command options
type SearchRequest struct {
	Text         string
	Category     string
	MaxPrice     string `validate:"omitempty,numeric"`
	FreeShipping bool
	Sort         string `validate:"omitempty,oneof=relevance price-asc price-desc rating newest"`
}

// AddToCartRequest represents add command data
type AddToCartRequest struct {
	Ref      string `validate:"required"`
	Quantity int    `validate:"required,min=1"`
}

// UpdateCartItemRequest represents set command data
type UpdateCartItemRequest struct {
	Ref      string `validate:"required"`
	Quantity int    `validate:"min=0"`
}

func parseSearchRequest(args []string) SearchRequest {
	var req SearchRequest
	var text []string

	for _, token := range args {
		key, value, hasValue := strings.Cut(token, "=")
		switch {
		case hasValue && strings.EqualFold(key, "category"):
			req.Category = value
		case hasValue && strings.EqualFold(key, "max"):
			req.MaxPrice = value
		case hasValue && strings.EqualFold(key, "sort"):
			req.Sort = strings.ToLower(value)
		case strings.EqualFold(token, "free"):
			req.FreeShipping = true
		default:
			text = append(text, token)
		}
	}
	req.Text = strings.Join(text, " ")

	return req
}

// criteria converts a validated request into catalog criteria and sort key
func (r SearchRequest) criteria() (catalog.Criteria, catalog.SortKey, error) {
	category, err := catalog.ParseCategory(r.Category)
	if err != nil {
		return catalog.Criteria{}, catalog.Relevance, err
	}

	c := catalog.Criteria{
		SearchText:       r.Text,
		Category:         category,
		FreeShippingOnly: r.FreeShipping,
	}

	if r.MaxPrice != "" {
		limit, err := decimal.NewFromString(r.MaxPrice)
		if err != nil {
			return catalog.Criteria{}, catalog.Relevance, errors.Wrap(err, "max price")
		}
		if limit.IsNegative() {
			return catalog.Criteria{}, catalog.Relevance, errors.New("max price cannot be negative")
		}
		c.MaxPrice = catalog.PriceAtMost(limit)
	}

	key, err := catalog.ParseSortKey(r.Sort)
	if err != nil {
		return catalog.Criteria{}, catalog.Relevance, err
	}

	return c, key, nil
}

// parseQuantity parses an optional quantity argument
func parseQuantity(args []string, index, fallback int) (int, error) {
	if len(args) <= index {
		return fallback, nil
	}
	qty, err := strconv.Atoi(args[index])
	if err != nil {
		return 0, errors.Errorf("invalid quantity %q", args[index])
	}
	return qty, nil
}

func arg(args []string, index int) string {
	if len(args) <= index {
		return ""
	}
	return args[index]
}

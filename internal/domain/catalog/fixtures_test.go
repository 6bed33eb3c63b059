package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func fixtureItem(name string, category Category, price string, stock int) Item {
	return Item{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Brand:    "Acme Pets",
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		Rating:   4.0,
	}
}

package postgres

import (
	"fmt"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Numerics are selected as ::text and parsed here so no value passes through float64.

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

func scanItem(row pgx.Row) (shop.Item, error) {
	var (
		it    shop.Item
		price string
	)
	if err := row.Scan(&it.ID, &it.Name, &price, &it.Description); err != nil {
		return shop.Item{}, err
	}
	d, err := parseAmount(price)
	if err != nil {
		return shop.Item{}, err
	}
	it.Price = d
	return it, nil
}

func collectItems(rows pgx.Rows) ([]shop.Item, error) {
	defer rows.Close()
	out := []shop.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

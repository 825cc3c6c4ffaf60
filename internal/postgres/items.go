package postgres

import (
	"context"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepo struct{ DB *pgxpool.Pool }

const itemColumns = `id, name, price::text, description`

func (r *ItemRepo) List(ctx context.Context) ([]shop.Item, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

func (r *ItemRepo) FindByID(ctx context.Context, id int64) (shop.Item, error) {
	it, err := scanItem(r.DB.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id=$1`, id))
	if err != nil {
		return shop.Item{}, notFound(err)
	}
	return it, nil
}

func (r *ItemRepo) FindByName(ctx context.Context, name string) ([]shop.Item, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+itemColumns+` FROM items WHERE name=$1 ORDER BY id`, name)
	if err != nil {
		return nil, err
	}
	return collectItems(rows)
}

package postgres

import (
	"context"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type CartRepo struct{ DB *pgxpool.Pool }

func (r *CartRepo) Create(ctx context.Context) (shop.Cart, error) {
	c := shop.Cart{Items: []shop.Item{}, Total: decimal.Zero}
	if err := r.DB.QueryRow(ctx, `INSERT INTO carts DEFAULT VALUES RETURNING id`).Scan(&c.ID); err != nil {
		return shop.Cart{}, err
	}
	return c, nil
}

// Get loads the cart, its owner (if linked yet) and its items in insertion order.
// The total is recomputed from the members' current prices; carts.total is only
// the value written by the last Save.
func (r *CartRepo) Get(ctx context.Context, id int64) (shop.Cart, error) {
	var c shop.Cart
	err := r.DB.QueryRow(ctx, `
		SELECT c.id, COALESCE(u.id, 0), COALESCE(u.username, '')
		FROM carts c LEFT JOIN users u ON u.cart_id = c.id
		WHERE c.id=$1`, id).Scan(&c.ID, &c.UserID, &c.Username)
	if err != nil {
		return shop.Cart{}, notFound(err)
	}

	rows, err := r.DB.Query(ctx, `
		SELECT i.id, i.name, i.price::text, i.description
		FROM cart_items ci JOIN items i ON i.id = ci.item_id
		WHERE ci.cart_id=$1
		ORDER BY ci.id`, id)
	if err != nil {
		return shop.Cart{}, err
	}
	if c.Items, err = collectItems(rows); err != nil {
		return shop.Cart{}, err
	}
	c.Recalculate()
	return c, nil
}

// Save replaces membership and total in one transaction. The cart row is locked
// for the duration, but the caller's earlier read is not, so writers race last-write-wins.
func (r *CartRepo) Save(ctx context.Context, c shop.Cart) (shop.Cart, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return shop.Cart{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var locked int64
	if err := tx.QueryRow(ctx, `SELECT id FROM carts WHERE id=$1 FOR UPDATE`, c.ID).Scan(&locked); err != nil {
		return shop.Cart{}, notFound(err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id=$1`, c.ID); err != nil {
		return shop.Cart{}, err
	}

	b := &pgx.Batch{}
	for _, it := range c.Items {
		b.Queue(`INSERT INTO cart_items(cart_id, item_id) VALUES ($1, $2)`, c.ID, it.ID)
	}
	c.Recalculate()
	b.Queue(`UPDATE carts SET total=$2::numeric WHERE id=$1`, c.ID, c.Total.String())
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return shop.Cart{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return shop.Cart{}, err
	}
	if c.Items == nil {
		c.Items = []shop.Item{}
	}
	return c, nil
}

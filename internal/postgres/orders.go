package postgres

import (
	"context"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepo struct{ DB *pgxpool.Pool }

// Create writes the order header and its lines atomically. Line prices are
// stored as submitted so later catalog changes do not alter the order.
func (r *OrderRepo) Create(ctx context.Context, o shop.UserOrder) (shop.UserOrder, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return shop.UserOrder{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	o.Total = shop.SumPrices(o.Items)
	err = tx.QueryRow(ctx, `
		INSERT INTO user_orders(user_id, total)
		VALUES ($1, $2::numeric)
		RETURNING id, created_at`, o.UserID, o.Total.String()).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return shop.UserOrder{}, err
	}

	if len(o.Items) > 0 {
		b := &pgx.Batch{}
		for i, it := range o.Items {
			b.Queue(`INSERT INTO user_order_items(order_id, position, item_id, price)
			         VALUES ($1, $2, $3, $4::numeric)`, o.ID, i, it.ID, it.Price.String())
		}
		if err := tx.SendBatch(ctx, b).Close(); err != nil {
			return shop.UserOrder{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return shop.UserOrder{}, err
	}
	if o.Items == nil {
		o.Items = []shop.Item{}
	}
	return o, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]shop.UserOrder, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT o.id, o.user_id, u.username, o.total::text, o.created_at
		FROM user_orders o JOIN users u ON u.id = o.user_id
		WHERE o.user_id=$1
		ORDER BY o.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []shop.UserOrder{}
	byID := map[int64]int{}
	for rows.Next() {
		var (
			o     shop.UserOrder
			total string
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.Username, &total, &o.CreatedAt); err != nil {
			return nil, err
		}
		if o.Total, err = parseAmount(total); err != nil {
			return nil, err
		}
		o.Items = []shop.Item{}
		byID[o.ID] = len(out)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	lines, err := r.DB.Query(ctx, `
		SELECT l.order_id, i.id, i.name, l.price::text, i.description
		FROM user_order_items l
		JOIN user_orders o ON o.id = l.order_id
		JOIN items i ON i.id = l.item_id
		WHERE o.user_id=$1
		ORDER BY l.order_id, l.position`, userID)
	if err != nil {
		return nil, err
	}
	defer lines.Close()

	for lines.Next() {
		var (
			orderID int64
			it      shop.Item
			price   string
		)
		if err := lines.Scan(&orderID, &it.ID, &it.Name, &price, &it.Description); err != nil {
			return nil, err
		}
		if it.Price, err = parseAmount(price); err != nil {
			return nil, err
		}
		if idx, ok := byID[orderID]; ok {
			out[idx].Items = append(out[idx].Items, it)
		}
	}
	return out, lines.Err()
}

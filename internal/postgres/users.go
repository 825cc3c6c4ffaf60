package postgres

import (
	"context"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct{ DB *pgxpool.Pool }

func (r *UserRepo) FindByID(ctx context.Context, id int64) (shop.User, error) {
	var u shop.User
	err := r.DB.QueryRow(ctx, `SELECT id, username, password, cart_id FROM users WHERE id=$1`, id).
		Scan(&u.ID, &u.Username, &u.Password, &u.CartID)
	if err != nil {
		return shop.User{}, notFound(err)
	}
	return u, nil
}

// FindByUsername matches exactly; usernames are case sensitive.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (shop.User, error) {
	var u shop.User
	err := r.DB.QueryRow(ctx, `SELECT id, username, password, cart_id FROM users WHERE username=$1`, username).
		Scan(&u.ID, &u.Username, &u.Password, &u.CartID)
	if err != nil {
		return shop.User{}, notFound(err)
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, u shop.User) (shop.User, error) {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO users(username, password, cart_id)
		VALUES ($1, $2, $3)
		RETURNING id`, u.Username, u.Password, u.CartID).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return shop.User{}, shop.ErrUsernameTaken
		}
		return shop.User{}, err
	}
	return u, nil
}

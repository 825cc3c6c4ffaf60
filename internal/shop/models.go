package shop

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// Cart holds one entry per unit: quantity is repeated membership of the same item.
type Cart struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"user_id,omitempty"`
	Username string          `json:"username,omitempty"`
	Items    []Item          `json:"items"`
	Total    decimal.Decimal `json:"total"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash
	CartID   int64  `json:"-"`
	Cart     *Cart  `json:"cart,omitempty"`
}

type UserOrder struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Username  string          `json:"username"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateUserRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type ModifyCartRequest struct {
	Username string `json:"username"`
	ItemID   int64  `json:"itemId"`
	Quantity int    `json:"quantity"`
}

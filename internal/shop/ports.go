package shop

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// Repositories return ErrNotFound when a lookup by key misses.

type UserRepo interface {
	FindByID(ctx context.Context, id int64) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, u User) (User, error)
}

type ItemRepo interface {
	List(ctx context.Context) ([]Item, error)
	FindByID(ctx context.Context, id int64) (Item, error)
	FindByName(ctx context.Context, name string) ([]Item, error)
}

type CartRepo interface {
	Create(ctx context.Context) (Cart, error)
	Get(ctx context.Context, id int64) (Cart, error)
	// Save replaces membership and total of an existing cart.
	Save(ctx context.Context, c Cart) (Cart, error)
}

type OrderRepo interface {
	Create(ctx context.Context, o UserOrder) (UserOrder, error)
	ListByUser(ctx context.Context, userID int64) ([]UserOrder, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) error
}

// Publisher is satisfied by the kafka producer.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

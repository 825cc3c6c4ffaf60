package shop

import (
	"context"
	"errors"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type fakeStore struct {
	mu       sync.Mutex
	users    map[int64]User
	items    []Item
	carts    map[int64]Cart
	orders   []UserOrder
	nextID   int64
	failSave error
}

func newFakeStore(items ...Item) *fakeStore {
	return &fakeStore{
		users: map[int64]User{},
		items: items,
		carts: map[int64]Cart{},
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

type fakeUsers struct{ *fakeStore }

func (f fakeUsers) FindByID(_ context.Context, id int64) (User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (f fakeUsers) FindByUsername(_ context.Context, username string) (User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (f fakeUsers) Create(_ context.Context, u User) (User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = f.id()
	f.users[u.ID] = u
	c := f.carts[u.CartID]
	c.UserID, c.Username = u.ID, u.Username
	f.carts[u.CartID] = c
	return u, nil
}

type fakeItems struct{ *fakeStore }

func (f fakeItems) List(context.Context) ([]Item, error) {
	return append([]Item(nil), f.items...), nil
}

func (f fakeItems) FindByID(_ context.Context, id int64) (Item, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

func (f fakeItems) FindByName(_ context.Context, name string) ([]Item, error) {
	var out []Item
	for _, it := range f.items {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeCarts struct{ *fakeStore }

func (f fakeCarts) Create(context.Context) (Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := Cart{ID: f.id(), Items: []Item{}, Total: decimal.Zero}
	f.carts[c.ID] = c
	return c, nil
}

func (f fakeCarts) Get(_ context.Context, id int64) (Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.carts[id]
	if !ok {
		return Cart{}, ErrNotFound
	}
	c.Items = append([]Item{}, c.Items...)
	return c, nil
}

func (f fakeCarts) Save(_ context.Context, c Cart) (Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave != nil {
		return Cart{}, f.failSave
	}
	if _, ok := f.carts[c.ID]; !ok {
		return Cart{}, ErrNotFound
	}
	c.Items = append([]Item{}, c.Items...)
	f.carts[c.ID] = c
	return c, nil
}

type fakeOrders struct{ *fakeStore }

func (f fakeOrders) Create(_ context.Context, o UserOrder) (UserOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = f.id()
	o.CreatedAt = time.Now().UTC()
	f.orders = append(f.orders, o)
	return o, nil
}

func (f fakeOrders) ListByUser(_ context.Context, userID int64) ([]UserOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []UserOrder
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// fakeHasher prefixes instead of hashing so tests can assert on the stored value.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Verify(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []kafkago.Message
}

func (p *fakePublisher) Publish(key, value []byte, headers ...kafkago.Header) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, kafkago.Message{Key: key, Value: value, Headers: headers})
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedUser stores a user with an empty cart directly, bypassing validation.
func seedUser(f *fakeStore, username string) User {
	cart, _ := fakeCarts{f}.Create(context.Background())
	u, _ := fakeUsers{f}.Create(context.Background(), User{Username: username, Password: "hashed:secret1", CartID: cart.ID})
	return u
}

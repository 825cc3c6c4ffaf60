package httpx

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/shopspring/decimal"
)

// memStore backs every shop repository port in memory.
type memStore struct {
	mu      sync.Mutex
	nextID  int64
	users   []shop.User
	items   []shop.Item
	carts   map[int64]shop.Cart
	orders  []shop.UserOrder
	listErr error
}

func newMemStore() *memStore {
	return &memStore{
		nextID: 100,
		items: []shop.Item{
			{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("2.99"), Description: "A widget that is round"},
			{ID: 2, Name: "Square Widget", Price: decimal.RequireFromString("1.99"), Description: "A widget that is square"},
			{ID: 3, Name: "Test Item 1", Price: decimal.RequireFromString("2.50")},
			{ID: 4, Name: "Test Item 2", Price: decimal.RequireFromString("3.99")},
		},
		carts: map[int64]shop.Cart{},
	}
}

type memUsers struct{ *memStore }

func (m memUsers) FindByID(_ context.Context, id int64) (shop.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return shop.User{}, shop.ErrNotFound
}

func (m memUsers) FindByUsername(_ context.Context, name string) (shop.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == name {
			return u, nil
		}
	}
	return shop.User{}, shop.ErrNotFound
}

func (m memUsers) Create(_ context.Context, u shop.User) (shop.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u.ID = m.nextID
	m.users = append(m.users, u)
	c := m.carts[u.CartID]
	c.UserID, c.Username = u.ID, u.Username
	m.carts[u.CartID] = c
	return u, nil
}

type memItems struct{ *memStore }

func (m memItems) List(context.Context) ([]shop.Item, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]shop.Item(nil), m.items...), nil
}

func (m memItems) FindByID(_ context.Context, id int64) (shop.Item, error) {
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return shop.Item{}, shop.ErrNotFound
}

func (m memItems) FindByName(_ context.Context, name string) ([]shop.Item, error) {
	var out []shop.Item
	for _, it := range m.items {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out, nil
}

type memCarts struct{ *memStore }

func (m memCarts) Create(context.Context) (shop.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c := shop.Cart{ID: m.nextID, Items: []shop.Item{}, Total: decimal.Zero}
	m.carts[c.ID] = c
	return c, nil
}

func (m memCarts) Get(_ context.Context, id int64) (shop.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[id]
	if !ok {
		return shop.Cart{}, shop.ErrNotFound
	}
	c.Items = append([]shop.Item{}, c.Items...)
	return c, nil
}

func (m memCarts) Save(_ context.Context, c shop.Cart) (shop.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.carts[c.ID]; !ok {
		return shop.Cart{}, shop.ErrNotFound
	}
	c.Items = append([]shop.Item{}, c.Items...)
	m.carts[c.ID] = c
	return c, nil
}

type memOrders struct{ *memStore }

func (m memOrders) Create(_ context.Context, o shop.UserOrder) (shop.UserOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	o.ID = m.nextID
	o.CreatedAt = time.Now().UTC()
	m.orders = append(m.orders, o)
	return o, nil
}

func (m memOrders) ListByUser(_ context.Context, userID int64) ([]shop.UserOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []shop.UserOrder
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h(" + p + ")", nil }

func (plainHasher) Verify(hash, p string) error {
	if hash != "h("+p+")" {
		return errors.New("mismatch")
	}
	return nil
}

package shop

import (
	"context"

	"go.uber.org/zap"
)

type CartService struct {
	Users UserRepo
	Items ItemRepo
	Carts CartRepo
	Log   *zap.Logger
}

func (s *CartService) AddToCart(ctx context.Context, req ModifyCartRequest) (Cart, error) {
	return s.modify(ctx, req, "add", func(c *Cart, it Item) { c.AddItem(it, req.Quantity) })
}

func (s *CartService) RemoveFromCart(ctx context.Context, req ModifyCartRequest) (Cart, error) {
	return s.modify(ctx, req, "remove", func(c *Cart, it Item) { c.RemoveItem(it.ID, req.Quantity) })
}

// modify runs load -> mutate -> persist. Concurrent writers to one cart are last-write-wins.
func (s *CartService) modify(ctx context.Context, req ModifyCartRequest, op string, mutate func(*Cart, Item)) (Cart, error) {
	u, err := s.Users.FindByUsername(ctx, req.Username)
	if err != nil {
		s.Log.Warn("cart "+op+": user lookup failed", zap.String("username", req.Username), zap.Error(err))
		return Cart{}, err
	}
	it, err := s.Items.FindByID(ctx, req.ItemID)
	if err != nil {
		s.Log.Warn("cart "+op+": item lookup failed", zap.Int64("item_id", req.ItemID), zap.Error(err))
		return Cart{}, err
	}
	cart, err := s.Carts.Get(ctx, u.CartID)
	if err != nil {
		return Cart{}, err
	}

	mutate(&cart, it)

	saved, err := s.Carts.Save(ctx, cart)
	if err != nil {
		return Cart{}, err
	}
	saved.UserID, saved.Username = u.ID, u.Username

	s.Log.Info("cart "+op,
		zap.String("username", u.Username),
		zap.Int64("item_id", it.ID),
		zap.Int("quantity", req.Quantity),
		zap.Int("size", len(saved.Items)),
		zap.String("total", saved.Total.StringFixed(2)))
	return saved, nil
}

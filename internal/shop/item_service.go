package shop

import (
	"context"

	"go.uber.org/zap"
)

// ItemService is the read-only catalog.
type ItemService struct {
	Items ItemRepo
	Log   *zap.Logger
}

func (s *ItemService) GetItems(ctx context.Context) ([]Item, error) {
	items, err := s.Items.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *ItemService) GetItemByID(ctx context.Context, id int64) (Item, error) {
	return s.Items.FindByID(ctx, id)
}

// GetItemsByName reports ErrNotFound instead of an empty slice when nothing matches.
func (s *ItemService) GetItemsByName(ctx context.Context, name string) ([]Item, error) {
	items, err := s.Items.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		s.Log.Debug("no items with name", zap.String("name", name))
		return nil, ErrNotFound
	}
	return items, nil
}

package shop

import "github.com/shopspring/decimal"

// AddItem appends qty references to it. A non-positive qty leaves the cart untouched.
func (c *Cart) AddItem(it Item, qty int) {
	for i := 0; i < qty; i++ {
		c.Items = append(c.Items, it)
	}
	c.Recalculate()
}

// RemoveItem drops up to qty occurrences of the item with the given id, earliest first.
// Removing more than the cart holds, or an item it does not hold, is not an error.
func (c *Cart) RemoveItem(itemID int64, qty int) {
	if qty <= 0 {
		c.Recalculate()
		return
	}
	kept := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if qty > 0 && it.ID == itemID {
			qty--
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	c.Recalculate()
}

// Count reports how many units of itemID the cart holds.
func (c *Cart) Count(itemID int64) int {
	n := 0
	for _, it := range c.Items {
		if it.ID == itemID {
			n++
		}
	}
	return n
}

func (c *Cart) Recalculate() {
	c.Total = SumPrices(c.Items)
}

// SumPrices adds item prices exactly; no rounding is applied.
func SumPrices(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}

// Snapshot copies the cart membership into a new order for u.
func (c *Cart) Snapshot(u User) UserOrder {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return UserOrder{
		UserID:   u.ID,
		Username: u.Username,
		Items:    items,
		Total:    SumPrices(items),
	}
}

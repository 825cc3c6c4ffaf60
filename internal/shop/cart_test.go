package shop

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartAddItem(t *testing.T) {
	widget := Item{ID: 1, Name: "Product 1", Price: price("3.99")}

	t.Run("quantity two on empty cart", func(t *testing.T) {
		var c Cart
		c.AddItem(widget, 2)
		if len(c.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(c.Items))
		}
		if !c.Total.Equal(price("7.98")) {
			t.Fatalf("expected total 7.98, got %s", c.Total)
		}
	})

	t.Run("non-positive quantity is a no-op", func(t *testing.T) {
		var c Cart
		c.AddItem(widget, 1)
		c.AddItem(widget, 0)
		c.AddItem(widget, -3)
		if len(c.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(c.Items))
		}
		if !c.Total.Equal(price("3.99")) {
			t.Fatalf("expected total 3.99, got %s", c.Total)
		}
	})
}

func TestCartRemoveItem(t *testing.T) {
	a := Item{ID: 1, Price: price("3.99")}
	b := Item{ID: 2, Price: price("1.49")}

	tests := []struct {
		name      string
		remove    int64
		qty       int
		wantCount int
		wantTotal string
	}{
		{"remove one of two", 1, 1, 2, "5.48"},
		{"remove exactly held", 1, 2, 1, "1.49"},
		{"remove more than held", 1, 10, 1, "1.49"},
		{"remove absent item", 99, 3, 3, "9.47"},
		{"zero quantity", 1, 0, 3, "9.47"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.AddItem(a, 2)
			c.AddItem(b, 1)

			c.RemoveItem(tt.remove, tt.qty)

			if len(c.Items) != tt.wantCount {
				t.Fatalf("expected %d items, got %d", tt.wantCount, len(c.Items))
			}
			if !c.Total.Equal(price(tt.wantTotal)) {
				t.Fatalf("expected total %s, got %s", tt.wantTotal, c.Total)
			}
			if c.Count(tt.remove) < 0 {
				t.Fatal("negative count")
			}
		})
	}
}

func TestCartRemoveKeepsOrder(t *testing.T) {
	a := Item{ID: 1, Price: price("1")}
	b := Item{ID: 2, Price: price("2")}
	c := Cart{Items: []Item{a, b, a, b}}

	c.RemoveItem(1, 1)

	got := []int64{}
	for _, it := range c.Items {
		got = append(got, it.ID)
	}
	want := []int64{2, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSumPricesIsExact(t *testing.T) {
	items := []Item{{Price: price("2.50")}, {Price: price("3.99")}}
	if got := SumPrices(items); !got.Equal(price("6.49")) {
		t.Fatalf("expected 6.49, got %s", got)
	}

	// 0.1 added ten times drifts in binary floating point.
	tenths := make([]Item, 10)
	for i := range tenths {
		tenths[i].Price = price("0.1")
	}
	if got := SumPrices(tenths); !got.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected 1, got %s", got)
	}

	if got := SumPrices(nil); !got.IsZero() {
		t.Fatalf("expected zero total for empty cart, got %s", got)
	}
}

func TestSnapshotCopiesMembership(t *testing.T) {
	u := User{ID: 7, Username: "test"}
	c := Cart{Items: []Item{{ID: 1, Price: price("2.50")}, {ID: 2, Price: price("3.99")}}}

	o := c.Snapshot(u)
	c.RemoveItem(1, 1)

	if len(o.Items) != 2 {
		t.Fatalf("order must keep 2 items after cart changes, got %d", len(o.Items))
	}
	if o.UserID != 7 || o.Username != "test" {
		t.Fatalf("unexpected owner %d/%s", o.UserID, o.Username)
	}
	if !o.Total.Equal(price("6.49")) {
		t.Fatalf("expected total 6.49, got %s", o.Total)
	}
}

package shop

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderSubmitted = "OrderSubmitted"

	TopicOrderSubmitted = "order.submitted"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

type ItemPrice struct {
	ItemID int64           `json:"item_id"`
	Price  decimal.Decimal `json:"price"`
}

type OrderSubmittedPayload struct {
	OrderID  int64           `json:"order_id"`
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	Items    []ItemPrice     `json:"items"`
	Total    decimal.Decimal `json:"total"`
}

// PartitionKey keeps every order of one user on the same partition.
func PartitionKey(username string) []byte { return []byte(username) }

func orderSubmittedPayload(o UserOrder) OrderSubmittedPayload {
	items := make([]ItemPrice, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemPrice{ItemID: it.ID, Price: it.Price})
	}
	return OrderSubmittedPayload{
		OrderID:  o.ID,
		UserID:   o.UserID,
		Username: o.Username,
		Items:    items,
		Total:    o.Total,
	}
}

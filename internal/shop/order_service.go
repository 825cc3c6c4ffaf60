package shop

import (
	"context"
	"strconv"
	"time"

	kafkax "github.com/ariefcatur/go-shop-api/internal/kafka"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type OrderService struct {
	Users     UserRepo
	Carts     CartRepo
	Orders    OrderRepo
	Publisher Publisher // optional
	Service   string
	Log       *zap.Logger
}

// Submit snapshots the user's cart into a new order. The cart is left as is,
// so submitting twice yields two orders with the same lines.
func (s *OrderService) Submit(ctx context.Context, username string) (UserOrder, error) {
	u, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		s.Log.Warn("order submit: user lookup failed", zap.String("username", username), zap.Error(err))
		return UserOrder{}, err
	}
	cart, err := s.Carts.Get(ctx, u.CartID)
	if err != nil {
		return UserOrder{}, err
	}

	o, err := s.Orders.Create(ctx, cart.Snapshot(u))
	if err != nil {
		return UserOrder{}, err
	}
	s.Log.Info("order submitted",
		zap.Int64("order_id", o.ID),
		zap.String("username", u.Username),
		zap.Int("items", len(o.Items)),
		zap.String("total", o.Total.StringFixed(2)))

	s.publishSubmitted(ctx, o)
	return o, nil
}

func (s *OrderService) GetOrdersForUser(ctx context.Context, username string) ([]UserOrder, error) {
	u, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	orders, err := s.Orders.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []UserOrder{}
	}
	return orders, nil
}

func (s *OrderService) publishSubmitted(ctx context.Context, o UserOrder) {
	if s.Publisher == nil {
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderSubmitted,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.Service,
		TraceID:       TraceID(ctx),
		CorrelationID: strconv.FormatInt(o.ID, 10),
		Payload:       kafkax.MustMarshal(orderSubmittedPayload(o)),
	}
	s.Publisher.Publish(PartitionKey(o.Username), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderSubmitted)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

package orderlog

import (
	"context"
	"encoding/json"
	"fmt"

	kafkax "github.com/ariefcatur/go-shop-api/internal/kafka"
	"github.com/ariefcatur/go-shop-api/internal/redisx"
	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Service projects OrderSubmitted events into the structured log.
type Service struct {
	Redis       redis.Cmdable
	Log         *zap.Logger
	ServiceName string
}

// HandleOrderSubmitted is installed as the consumer handler.
func (s *Service) HandleOrderSubmitted(ctx context.Context, m kafkago.Message) error {
	var env shop.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != shop.EventOrderSubmitted {
		return nil
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	first, err := redisx.MarkOnce(ctx, s.Redis, dkey, redisx.TTLDedup)
	if err != nil {
		// Redis unavailable: log anyway, a duplicate line is better than a lost one.
		s.Log.Warn("dedup check failed", zap.String("event_id", env.EventID), zap.Error(err))
	} else if !first {
		return nil
	}

	p, err := kafkax.UnwrapPayload[shop.OrderSubmittedPayload](env.Payload)
	if err != nil {
		return err
	}

	s.Log.Info("order submitted",
		zap.String("event_id", env.EventID),
		zap.String("trace_id", env.TraceID),
		zap.Time("occurred_at", env.OccurredAt),
		zap.Int64("order_id", p.OrderID),
		zap.Int64("user_id", p.UserID),
		zap.String("username", p.Username),
		zap.Int("items", len(p.Items)),
		zap.String("total", p.Total.StringFixed(2)),
		zap.Int("partition", m.Partition),
		zap.Int64("offset", m.Offset))
	return nil
}

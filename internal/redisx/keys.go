package redisx

import "time"

const (
	// Item cache: item:{id} -> Item JSON
	KeyItem = "item:%d"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLItemCache = 10 * time.Minute
	TTLDedup     = 48 * time.Hour
)

package cache

import "time"

// DataWithLogicalExpire wraps cached data with a logical expiry. The key
// itself never expires, so stale data can be served while a rebuild runs.
type DataWithLogicalExpire[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`  // logical expiry
	CreatedAt time.Time `json:"created_at"` // for debugging
}

// IsLogicalExpired reports whether the data is past its logical expiry
func (d *DataWithLogicalExpire[T]) IsLogicalExpired() bool {
	return time.Now().After(d.ExpireAt)
}

// NewDataWithLogicalExpire wraps data with a logical expiry of ttl from now
func NewDataWithLogicalExpire[T any](data T, ttl time.Duration) *DataWithLogicalExpire[T] {
	now := time.Now()
	return &DataWithLogicalExpire[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}

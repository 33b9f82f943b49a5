package store

import "github.com/squatwatch/squatwatch/pkg/domain"

// DefaultRingCap is the per-feed recency cache size
const DefaultRingCap = 100

// Ring is a fixed-capacity recency buffer of feed records, newest first on
// read, oldest evicted first once full. It is a display cache, not an audit
// trail.
type Ring struct {
	cap     int
	records []domain.FeedRecord
}

// NewRing creates a ring with the given capacity, falling back to
// DefaultRingCap for non-positive values.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultRingCap
	}
	return &Ring{cap: capacity}
}

// Add prepends a record, evicting the oldest when over capacity
func (r *Ring) Add(rec domain.FeedRecord) {
	r.records = append([]domain.FeedRecord{rec}, r.records...)
	if len(r.records) > r.cap {
		r.records = r.records[:r.cap]
	}
}

// Records returns a copy, newest first
func (r *Ring) Records() []domain.FeedRecord {
	res := make([]domain.FeedRecord, len(r.records))
	copy(res, r.records)
	return res
}

// Len returns the number of buffered records
func (r *Ring) Len() int { return len(r.records) }

// Clear empties the buffer
func (r *Ring) Clear() { r.records = nil }

// Replace swaps in a previously persisted buffer, trimming to capacity
func (r *Ring) Replace(records []domain.FeedRecord) {
	r.records = append([]domain.FeedRecord(nil), records...)
	if len(r.records) > r.cap {
		r.records = r.records[:r.cap]
	}
}

package alertService

import "sync"

// RecentEvents is a bounded insertion-ordered set of processed event ids.
// Once capacity is exceeded the oldest id falls off, capping memory under
// sustained traffic.
type RecentEvents struct {
	mu       sync.Mutex
	capacity int
	order    []string
	seen     map[string]struct{}
}

func NewRecentEvents(capacity int) *RecentEvents {
	if capacity <= 0 {
		capacity = 100
	}
	return &RecentEvents{
		capacity: capacity,
		seen:     make(map[string]struct{}, capacity),
	}
}

// Seen records an event id and reports whether it was already present.
func (r *RecentEvents) Seen(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[id]; ok {
		return true
	}

	r.seen[id] = struct{}{}
	r.order = append(r.order, id)
	if len(r.order) > r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.seen, oldest)
	}
	return false
}

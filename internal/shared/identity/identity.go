// Package identity provides key allocation for in-memory collections.
package identity

// NextID returns the next identifier for an id-keyed collection: one more
// than the current maximum key, or 1 for an empty collection. The value is
// recomputed from the live collection on every call, so deleting the
// highest-id entry makes that id available again.
func NextID[V any](collection map[int64]V) int64 {
	var max int64
	for id := range collection {
		if id > max {
			max = id
		}
	}
	return max + 1
}

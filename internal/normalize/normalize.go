// Package normalize deduplicates and deterministically orders search
// results so identical aggregations always produce identical responses.
package normalize

import (
	"sort"

	"ticket-search-service/internal/domain"
)

// Dedupe removes duplicate events by event id, keeping the first
// occurrence. Listings of later duplicates are dropped, not merged.
func Dedupe(events []domain.Event) []domain.Event {
	seen := make(map[string]struct{}, len(events))
	result := make([]domain.Event, 0, len(events))
	for _, evt := range events {
		if _, ok := seen[evt.EventID]; ok {
			continue
		}
		seen[evt.EventID] = struct{}{}
		result = append(result, evt)
	}
	return result
}

// Sort orders events by start time, then title, for deterministic
// responses. The sort is stable.
func Sort(events []domain.Event) []domain.Event {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].StartAt.Equal(events[j].StartAt) {
			return events[i].StartAt.Before(events[j].StartAt)
		}
		return events[i].Title < events[j].Title
	})
	return events
}

// Events returns the deduplicated, sorted result set.
func Events(events []domain.Event) []domain.Event {
	return Sort(Dedupe(events))
}

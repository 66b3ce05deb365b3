// Package bucket groups timestamps into minute buckets and detects the
// indices that collide. Two candidate slots in the same minute cannot both
// be scheduled, whatever their second or millisecond offsets.
package bucket

import (
	"slotcheck/internal/scheduling/models"
)

// MinuteMillis is the bucket width.
const MinuteMillis = 60_000

// Truncate aligns a timestamp to the minute boundary at or before it.
// Floor division, not truncation toward zero: -1 ms belongs to the minute
// starting at -60000, not the one starting at 0.
func Truncate(ts models.Timestamp) models.Timestamp {
	q := ts / MinuteMillis
	if ts%MinuteMillis != 0 && ts < 0 {
		q--
	}
	return q * MinuteMillis
}

// DuplicateIndices returns the set of indices whose timestamp shares a
// minute bucket with at least one other element. Every member of a
// colliding group is reported, not just the later occurrences.
func DuplicateIndices(timestamps []models.Timestamp) map[int]struct{} {
	groups := make(map[models.Timestamp][]int, len(timestamps))
	for i, ts := range timestamps {
		key := Truncate(ts)
		groups[key] = append(groups[key], i)
	}

	dups := make(map[int]struct{})
	for _, indices := range groups {
		if len(indices) < 2 {
			continue
		}
		for _, i := range indices {
			dups[i] = struct{}{}
		}
	}
	return dups
}

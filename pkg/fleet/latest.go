package fleet

import (
	"bytes"
	"sort"
)

// ResolveLatest groups position records by vehicle and selects the most
// recent record per vehicle. When two records for one vehicle share the same
// RecordedAt the one with the higher store-assigned Sequence wins, so the
// result is deterministic across repeated calls on the same input.
func ResolveLatest(records []PositionRecord) map[int]PositionRecord {
	latest := map[int]PositionRecord{}

	for _, record := range records {
		current, ok := latest[record.VehicleID]
		if !ok || supersedes(record, current) {
			latest[record.VehicleID] = record
		}
	}

	return latest
}

// ResolveLatestOrdered returns the latest-per-vehicle view sorted by
// VehicleID ascending, suitable for stable response serialization.
func ResolveLatestOrdered(records []PositionRecord) []PositionRecord {
	latest := ResolveLatest(records)

	entries := make([]PositionRecord, 0, len(latest))
	for _, record := range latest {
		entries = append(entries, record)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].VehicleID < entries[j].VehicleID
	})

	return entries
}

func supersedes(candidate PositionRecord, current PositionRecord) bool {
	if !candidate.RecordedAt.Equal(current.RecordedAt) {
		return candidate.RecordedAt.After(current.RecordedAt)
	}

	// ObjectIDs increase with insertion order
	return bytes.Compare(candidate.Sequence[:], current.Sequence[:]) > 0
}

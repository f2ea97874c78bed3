package locationstore

import (
	"context"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
)

// Store is append-only persistence for position records. Records are never
// mutated or overwritten; the latest-per-vehicle view is derived at read
// time by fleet.ResolveLatest.
type Store interface {
	// Append persists a new record alongside any prior records for the
	// same vehicle. The stored record's Sequence is assigned here.
	Append(ctx context.Context, record *fleet.PositionRecord) error

	// QueryByVehicle returns all records for one vehicle sorted by
	// RecordedAt descending, Sequence descending.
	QueryByVehicle(ctx context.Context, vehicleID int) ([]fleet.PositionRecord, error)

	// QueryAll returns a bounded scan of records across all vehicles.
	QueryAll(ctx context.Context) ([]fleet.PositionRecord, error)
}

// Package locations orchestrates position reads and writes: the store and
// the latest-view derivation for reads, the authorization gate for writes.
package locations

import (
	"context"
	"time"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/authorize"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/locationstore"
)

type Service struct {
	store locationstore.Store
	gate  *authorize.Gate

	// now is swappable for tests
	now func() time.Time
}

func NewService(store locationstore.Store, gate *authorize.Gate) *Service {
	return &Service{
		store: store,
		gate:  gate,
		now:   time.Now,
	}
}

// GetLatest returns the most recent position record for one vehicle, or
// fleet.ErrRecordNotFound when the vehicle has no records. A storage
// failure is surfaced as such, never as "no data".
func (s *Service) GetLatest(ctx context.Context, vehicleID int) (*fleet.PositionRecord, error) {
	records, err := s.store.QueryByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fleet.ErrRecordNotFound
	}

	// records are sorted newest first
	return &records[0], nil
}

// GetFleetLatest returns the latest record per vehicle sorted by vehicle id
// ascending so repeated calls over unchanged data serialize identically.
func (s *Service) GetFleetLatest(ctx context.Context) ([]fleet.PositionRecord, error) {
	records, err := s.store.QueryAll(ctx)
	if err != nil {
		return nil, err
	}

	return fleet.ResolveLatestOrdered(records), nil
}

// RecordPosition authorizes and appends a new position record. Prior
// records for the vehicle are kept; ordering between concurrent writes is
// resolved at read time by (RecordedAt, Sequence).
func (s *Service) RecordPosition(ctx context.Context, principal fleet.Principal, vehicleID int, latitude float64, longitude float64) (*fleet.PositionRecord, error) {
	if err := s.gate.AuthorizePositionWrite(ctx, principal, vehicleID, latitude, longitude); err != nil {
		return nil, err
	}

	record := &fleet.PositionRecord{
		VehicleID:  vehicleID,
		Latitude:   latitude,
		Longitude:  longitude,
		RecordedAt: s.now().UTC(),
	}

	if err := s.store.Append(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

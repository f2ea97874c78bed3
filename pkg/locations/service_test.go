package locations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/authorize"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/locationstore"
)

type mockRegistry struct {
	vehicleFn func(ctx context.Context, vehicleID int) (*fleet.Vehicle, error)
}

func (m *mockRegistry) Vehicle(ctx context.Context, vehicleID int) (*fleet.Vehicle, error) {
	return m.vehicleFn(ctx, vehicleID)
}

func (m *mockRegistry) Vehicles(_ context.Context) ([]fleet.Vehicle, error) {
	return nil, nil
}

type failingStore struct{}

func (failingStore) Append(_ context.Context, _ *fleet.PositionRecord) error {
	return fleet.ErrStorageFailure
}

func (failingStore) QueryByVehicle(_ context.Context, _ int) ([]fleet.PositionRecord, error) {
	return nil, fleet.ErrStorageFailure
}

func (failingStore) QueryAll(_ context.Context) ([]fleet.PositionRecord, error) {
	return nil, fleet.ErrStorageFailure
}

func newTestService(ownerID int) (*Service, *locationstore.MemoryStore) {
	store := locationstore.NewMemoryStore()

	gate := authorize.NewGate(&mockRegistry{
		vehicleFn: func(_ context.Context, vehicleID int) (*fleet.Vehicle, error) {
			return &fleet.Vehicle{VehicleID: vehicleID, OwnerID: ownerID}, nil
		},
	})

	return NewService(store, gate), store
}

func TestGetLatestNoRecords(t *testing.T) {
	service, _ := newTestService(2)

	_, err := service.GetLatest(context.Background(), 42)

	if !errors.Is(err, fleet.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRecordPositionThenGetLatest(t *testing.T) {
	service, _ := newTestService(2)
	operator := fleet.Principal{Identity: 2, Role: fleet.RoleOperator}

	created, err := service.RecordPosition(context.Background(), operator, 42, 6.9271, 79.8612)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	latest, err := service.GetLatest(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.Latitude != 6.9271 || latest.Longitude != 79.8612 {
		t.Errorf("expected the created record, got %+v", latest)
	}
	if !latest.RecordedAt.Equal(created.RecordedAt) {
		t.Errorf("expected RecordedAt %v, got %v", created.RecordedAt, latest.RecordedAt)
	}
}

func TestRecordPositionRejectsNonOwner(t *testing.T) {
	service, store := newTestService(2)
	stranger := fleet.Principal{Identity: 7, Role: fleet.RoleOperator}

	_, err := service.RecordPosition(context.Background(), stranger, 42, 6.9271, 79.8612)

	var forbidden *fleet.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}

	records, _ := store.QueryByVehicle(context.Background(), 42)
	if len(records) != 0 {
		t.Errorf("expected no record appended, got %d", len(records))
	}
}

func TestRecordPositionRejectsInvalidCoordinates(t *testing.T) {
	service, store := newTestService(2)
	operator := fleet.Principal{Identity: 2, Role: fleet.RoleOperator}

	_, err := service.RecordPosition(context.Background(), operator, 42, 91, 0)

	if !errors.Is(err, fleet.ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}

	records, _ := store.QueryByVehicle(context.Background(), 42)
	if len(records) != 0 {
		t.Errorf("expected no record appended, got %d", len(records))
	}
}

func TestGetLatestReturnsNewestOfTwo(t *testing.T) {
	service, _ := newTestService(2)
	operator := fleet.Principal{Identity: 2, Role: fleet.RoleOperator}

	base := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Second)}
	index := 0
	service.now = func() time.Time {
		current := times[index]
		index++
		return current
	}

	if _, err := service.RecordPosition(context.Background(), operator, 7, 6.0, 79.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.RecordPosition(context.Background(), operator, 7, 6.5, 79.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	latest, err := service.GetLatest(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !latest.RecordedAt.Equal(base.Add(time.Second)) {
		t.Errorf("expected record at T+1s, got %v", latest.RecordedAt)
	}
	if latest.Latitude != 6.5 {
		t.Errorf("expected latest coordinates, got %+v", latest)
	}
}

func TestGetFleetLatestGroupsAndOrders(t *testing.T) {
	service, _ := newTestService(2)
	operator := fleet.Principal{Identity: 2, Role: fleet.RoleOperator}

	positions := []struct {
		vehicleID int
		latitude  float64
	}{
		{1003, 8.3114},
		{1001, 6.9271},
		{1001, 6.9300},
		{1002, 6.0535},
	}

	for _, position := range positions {
		if _, err := service.RecordPosition(context.Background(), operator, position.vehicleID, position.latitude, 79.8612); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := service.GetFleetLatest(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, expected := range []int{1001, 1002, 1003} {
		if entries[i].VehicleID != expected {
			t.Errorf("position %d: expected vehicle %d, got %d", i, expected, entries[i].VehicleID)
		}
	}
	if entries[0].Latitude != 6.9300 {
		t.Errorf("expected vehicle 1001's later record, got %+v", entries[0])
	}
}

func TestStorageFailureIsNotConflatedWithNoData(t *testing.T) {
	gate := authorize.NewGate(&mockRegistry{
		vehicleFn: func(_ context.Context, vehicleID int) (*fleet.Vehicle, error) {
			return &fleet.Vehicle{VehicleID: vehicleID, OwnerID: 2}, nil
		},
	})
	service := NewService(failingStore{}, gate)

	_, err := service.GetLatest(context.Background(), 42)

	if !errors.Is(err, fleet.ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}
	if errors.Is(err, fleet.ErrRecordNotFound) {
		t.Error("storage failure must not surface as missing data")
	}
}

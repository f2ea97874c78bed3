package locationstore

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
)

func TestMemoryStoreAppendAssignsIncreasingSequences(t *testing.T) {
	store := NewMemoryStore()
	recordedAt := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

	first := &fleet.PositionRecord{VehicleID: 7, RecordedAt: recordedAt}
	second := &fleet.PositionRecord{VehicleID: 7, RecordedAt: recordedAt}

	if err := store.Append(context.Background(), first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Append(context.Background(), second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bytes.Compare(second.Sequence[:], first.Sequence[:]) <= 0 {
		t.Error("expected the later append to get the higher sequence")
	}
}

func TestMemoryStoreQueryByVehicleSortsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	base := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

	for _, offset := range []time.Duration{0, 2 * time.Minute, time.Minute} {
		record := &fleet.PositionRecord{VehicleID: 7, RecordedAt: base.Add(offset)}
		if err := store.Append(context.Background(), record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	other := &fleet.PositionRecord{VehicleID: 8, RecordedAt: base.Add(time.Hour)}
	if err := store.Append(context.Background(), other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := store.QueryByVehicle(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].RecordedAt.After(records[i-1].RecordedAt) {
			t.Errorf("records out of order at index %d", i)
		}
	}
	if !records[0].RecordedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("expected newest record first, got %v", records[0].RecordedAt)
	}
}

func TestMemoryStoreAppendKeepsHistory(t *testing.T) {
	store := NewMemoryStore()
	base := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		record := &fleet.PositionRecord{VehicleID: 7, RecordedAt: base.Add(time.Duration(i) * time.Second)}
		if err := store.Append(context.Background(), record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := store.QueryAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 5 {
		t.Errorf("expected all 5 records kept, got %d", len(records))
	}
}

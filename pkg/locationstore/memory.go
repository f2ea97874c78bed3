package locationstore

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps records in memory with the same ordering and sequence
// semantics as the MongoDB store. Used by tests and local development.
type MemoryStore struct {
	mutex   sync.RWMutex
	records []fleet.PositionRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, record *fleet.PositionRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record.Sequence = primitive.NewObjectID()
	s.records = append(s.records, *record)

	return nil
}

func (s *MemoryStore) QueryByVehicle(_ context.Context, vehicleID int) ([]fleet.PositionRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := []fleet.PositionRecord{}
	for _, record := range s.records {
		if record.VehicleID == vehicleID {
			records = append(records, record)
		}
	}

	sortDescending(records)

	return records, nil
}

func (s *MemoryStore) QueryAll(_ context.Context) ([]fleet.PositionRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := make([]fleet.PositionRecord, len(s.records))
	copy(records, s.records)

	sortDescending(records)

	return records, nil
}

func sortDescending(records []fleet.PositionRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].RecordedAt.Equal(records[j].RecordedAt) {
			return records[i].RecordedAt.After(records[j].RecordedAt)
		}

		return bytes.Compare(records[i].Sequence[:], records[j].Sequence[:]) > 0
	})
}

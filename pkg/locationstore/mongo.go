package locationstore

import (
	"context"
	"fmt"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// queryAllLimit bounds the fleet-wide scan that feeds the latest-view
// derivation. Records are scanned newest first so the cap only drops the
// oldest history, never a vehicle's latest record within the window.
const queryAllLimit = 5000

var _ Store = (*MongoStore)(nil)

type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection("locations"),
	}
}

func (s *MongoStore) Append(ctx context.Context, record *fleet.PositionRecord) error {
	record.Sequence = primitive.NewObjectID()

	_, err := s.collection.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("append location: %v: %w", err, fleet.ErrStorageFailure)
	}

	return nil
}

func (s *MongoStore) QueryByVehicle(ctx context.Context, vehicleID int) ([]fleet.PositionRecord, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "recordedat", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := s.collection.Find(ctx, bson.M{"vehicleid": vehicleID}, opts)
	if err != nil {
		return nil, fmt.Errorf("query locations for vehicle %d: %v: %w", vehicleID, err, fleet.ErrStorageFailure)
	}

	return decodeRecords(ctx, cursor)
}

func (s *MongoStore) QueryAll(ctx context.Context) ([]fleet.PositionRecord, error) {
	opts := options.Find().
		SetSort(bson.D{
			{Key: "recordedat", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetLimit(queryAllLimit)

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("query all locations: %v: %w", err, fleet.ErrStorageFailure)
	}

	return decodeRecords(ctx, cursor)
}

func decodeRecords(ctx context.Context, cursor *mongo.Cursor) ([]fleet.PositionRecord, error) {
	records := []fleet.PositionRecord{}

	for cursor.Next(ctx) {
		var record fleet.PositionRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, fmt.Errorf("decode location: %v: %w", err, fleet.ErrStorageFailure)
		}

		records = append(records, record)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("location cursor: %v: %w", err, fleet.ErrStorageFailure)
	}

	return records, nil
}

package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Registry resolves vehicles and their ownership. The registry owns the
// Vehicle entity; the location subsystem only reads it.
type Registry interface {
	Vehicle(ctx context.Context, vehicleID int) (*fleet.Vehicle, error)
	Vehicles(ctx context.Context) ([]fleet.Vehicle, error)
}

var _ Registry = (*MongoRegistry)(nil)

type MongoRegistry struct {
	collection *mongo.Collection
}

func NewMongoRegistry(db *mongo.Database) *MongoRegistry {
	return &MongoRegistry{
		collection: db.Collection("vehicles"),
	}
}

func (r *MongoRegistry) Vehicle(ctx context.Context, vehicleID int) (*fleet.Vehicle, error) {
	var vehicle fleet.Vehicle

	err := r.collection.FindOne(ctx, bson.M{"vehicleid": vehicleID}).Decode(&vehicle)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fleet.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve vehicle %d: %v: %w", vehicleID, err, fleet.ErrStorageFailure)
	}

	return &vehicle, nil
}

func (r *MongoRegistry) Vehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %v: %w", err, fleet.ErrStorageFailure)
	}

	vehicles := []fleet.Vehicle{}
	for cursor.Next(ctx) {
		var vehicle fleet.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("decode vehicle: %v: %w", err, fleet.ErrStorageFailure)
		}

		vehicles = append(vehicles, vehicle)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("vehicle cursor: %v: %w", err, fleet.ErrStorageFailure)
	}

	return vehicles, nil
}

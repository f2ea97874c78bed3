// Package seeder loads a small demo fleet for local development. Reseeding
// is destructive: existing users, vehicles and locations are dropped first.
package seeder

import (
	"context"
	"time"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/database"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/locationstore"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

type seedUser struct {
	UserID   int    `bson:"userid"`
	Username string `bson:"username"`
	Password string `bson:"password"`
	Role     string `bson:"role"`
}

func Seed(ctx context.Context) error {
	db := database.GetDatabase()

	for _, collectionName := range []string{"users", "vehicles", "locations"} {
		if _, err := db.Collection(collectionName).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}

	users := []interface{}{
		seedUser{UserID: 1, Username: "admin", Password: "admin@1234", Role: fleet.RoleAdmin},
		seedUser{UserID: 2, Username: "operator", Password: "operator@1234", Role: fleet.RoleOperator},
		seedUser{UserID: 3, Username: "commuter", Password: "commuter@1234", Role: fleet.RoleCommuter},
	}
	if _, err := db.Collection("users").InsertMany(ctx, users); err != nil {
		return err
	}

	vehicles := []interface{}{
		fleet.Vehicle{VehicleID: 1001, RouteID: 1, OwnerID: 2, Capacity: 54, LicensePlate: "NB-1001"},
		fleet.Vehicle{VehicleID: 1002, RouteID: 2, OwnerID: 2, Capacity: 49, LicensePlate: "NB-1002"},
		fleet.Vehicle{VehicleID: 1003, RouteID: 3, OwnerID: 2, Capacity: 54, LicensePlate: "NB-1003"},
		fleet.Vehicle{VehicleID: 1004, RouteID: 4, OwnerID: 2, Capacity: 60, LicensePlate: "NB-1004"},
		fleet.Vehicle{VehicleID: 1005, RouteID: 5, OwnerID: 2, Capacity: 49, LicensePlate: "NB-1005"},
	}
	if _, err := db.Collection("vehicles").InsertMany(ctx, vehicles); err != nil {
		return err
	}

	store := locationstore.NewMongoStore(db)
	now := time.Now().UTC()

	positions := []fleet.PositionRecord{
		{VehicleID: 1001, Latitude: 6.9271, Longitude: 79.8612, RecordedAt: now.Add(-2 * time.Minute)},
		{VehicleID: 1002, Latitude: 6.0535, Longitude: 80.2210, RecordedAt: now.Add(-5 * time.Minute)},
		{VehicleID: 1003, Latitude: 8.3114, Longitude: 80.4037, RecordedAt: now.Add(-1 * time.Minute)},
		{VehicleID: 1004, Latitude: 9.6615, Longitude: 80.0255, RecordedAt: now.Add(-8 * time.Minute)},
		{VehicleID: 1005, Latitude: 7.2906, Longitude: 80.6337, RecordedAt: now.Add(-3 * time.Minute)},
	}

	for _, position := range positions {
		record := position
		if err := store.Append(ctx, &record); err != nil {
			return err
		}
	}

	log.Info().
		Int("users", len(users)).
		Int("vehicles", len(vehicles)).
		Int("locations", len(positions)).
		Msg("Seeded demo fleet")

	return nil
}

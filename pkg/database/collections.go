package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createLocationsIndexes()
	createVehiclesIndexes()
	createUsersIndexes()
}

func createLocationsIndexes() {
	locationsCollection := GetCollection("locations")
	locationsIndex := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "vehicleid", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "vehicleid", Value: 1},
				{Key: "recordedat", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "recordedat", Value: -1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := locationsCollection.Indexes().CreateMany(context.Background(), locationsIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createVehiclesIndexes() {
	vehiclesCollection := GetCollection("vehicles")
	vehiclesIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "vehicleid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "ownerid", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "routeid", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := vehiclesCollection.Indexes().CreateMany(context.Background(), vehiclesIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createUsersIndexes() {
	usersCollection := GetCollection("users")
	usersIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	opts := options.CreateIndexes()
	_, err := usersCollection.Indexes().CreateMany(context.Background(), usersIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

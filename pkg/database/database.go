package database

import (
	"context"
	"time"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/util"
	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInstance struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var MongoGlobalInstance *MongoInstance

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "ntc-bus-tracking"

func Connect() error {
	connectionString := defaultMongoConnectionString
	dbName := defaultMongoDatabase

	env := util.GetEnvironmentVariables()

	if env["NTC_MONGODB_CONNECTION"] != "" {
		connectionString = env["NTC_MONGODB_CONNECTION"]
	}

	if env["NTC_MONGODB_DATABASE"] != "" {
		dbName = env["NTC_MONGODB_DATABASE"]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		return err
	}

	MongoGlobalInstance = &MongoInstance{
		Client:   client,
		Database: client.Database(dbName),
	}

	// The database may still be coming up on first boot so retry the ping
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = 30 * time.Second

	err = backoff.Retry(func() error {
		return client.Ping(context.Background(), nil)
	}, retryBackoff)
	if err != nil {
		return err
	}

	createIndexes()

	return nil
}

func Disconnect() error {
	if MongoGlobalInstance == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return MongoGlobalInstance.Client.Disconnect(ctx)
}

func GetCollection(collectionName string) *mongo.Collection {
	return MongoGlobalInstance.Database.Collection(collectionName)
}

func GetDatabase() *mongo.Database {
	return MongoGlobalInstance.Database
}

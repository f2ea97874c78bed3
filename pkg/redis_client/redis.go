package redis_client

import (
	"context"
	"strconv"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

// Connect sets up the shared redis client. Redis is optional; when
// NTC_REDIS_ADDRESS is unset callers should skip Connect entirely and run
// without the ownership lookup cache.
func Connect() error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["NTC_REDIS_ADDRESS"] != "" {
		address = env["NTC_REDIS_ADDRESS"]
	}

	if env["NTC_REDIS_PASSWORD"] != "" {
		password = env["NTC_REDIS_PASSWORD"]
	}

	if env["NTC_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["NTC_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())

	return statusCmd.Err()
}

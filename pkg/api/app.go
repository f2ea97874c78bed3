package api

import (
	"errors"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/api/routes"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/authorize"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/database"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/locations"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/locationstore"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/redis_client"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/registry"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/util"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string) error {
	env := util.GetEnvironmentVariables()

	signingSecret := env["NTC_JWT_SECRET"]
	if signingSecret == "" {
		return errors.New("NTC_JWT_SECRET must be set")
	}

	db := database.GetDatabase()

	store := locationstore.NewMongoStore(db)

	var vehicleRegistry registry.Registry = registry.NewMongoRegistry(db)
	if redis_client.Client != nil {
		vehicleRegistry = registry.NewCachedRegistry(vehicleRegistry, redis_client.Client)
	}

	service := locations.NewService(store, authorize.NewGate(vehicleRegistry))

	webApp := NewApp(service, vehicleRegistry, []byte(signingSecret))

	return webApp.Listen(listen)
}

// NewApp wires the HTTP surface from explicitly constructed dependencies.
func NewApp(service *locations.Service, vehicleRegistry registry.Registry, signingSecret []byte) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get("version", routes.APIVersion)

	authenticated := EnsureValidToken(signingSecret)

	routes.LocationsRouter(webApp.Group("/locations", authenticated), service)
	routes.VehiclesRouter(webApp.Group("/vehicles", authenticated), vehicleRegistry)

	return webApp
}

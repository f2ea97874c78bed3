package fleet

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PositionRecord is a single immutable observation of a vehicle's location.
// Identity is (VehicleID, RecordedAt); Sequence is assigned by the store on
// append and breaks RecordedAt ties.
type PositionRecord struct {
	Sequence primitive.ObjectID `json:"-" bson:"_id,omitempty"`

	VehicleID  int       `json:"vehicleId" groups:"basic"`
	Latitude   float64   `json:"latitude" groups:"basic"`
	Longitude  float64   `json:"longitude" groups:"basic"`
	RecordedAt time.Time `json:"recordedAt" groups:"basic"`
}

// Vehicle is a tracked fleet unit from the vehicle registry.
type Vehicle struct {
	VehicleID    int    `json:"vehicleId" groups:"basic"`
	RouteID      int    `json:"routeId" groups:"basic"`
	OwnerID      int    `json:"ownerId" groups:"internal"`
	Capacity     int    `json:"capacity" groups:"basic"`
	LicensePlate string `json:"licensePlate" groups:"basic"`
}

// Principal is an authenticated caller as resolved from a request.
type Principal struct {
	Identity int
	Role     string
}

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleCommuter = "commuter"
)

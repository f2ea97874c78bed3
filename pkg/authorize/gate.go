// Package authorize decides whether a principal may write a position update
// for a vehicle. The gate is a pure decision over the principal's role, the
// vehicle's ownership and the proposed coordinates; its only side effect is
// the registry read.
package authorize

import (
	"context"

	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/fleet"
	"github.com/Kavinsha-Chamod/ntc-bus-tracking-api/pkg/registry"
)

type Gate struct {
	registry registry.Registry
}

func NewGate(reg registry.Registry) *Gate {
	return &Gate{registry: reg}
}

// AuthorizePositionWrite returns nil when the write is permitted.
// Operators may only write positions for vehicles they own; admins may
// write for any vehicle.
func (g *Gate) AuthorizePositionWrite(ctx context.Context, principal fleet.Principal, vehicleID int, latitude float64, longitude float64) error {
	if principal.Role != fleet.RoleOperator && principal.Role != fleet.RoleAdmin {
		return &fleet.ForbiddenError{Reason: fleet.ForbiddenRole}
	}

	vehicle, err := g.registry.Vehicle(ctx, vehicleID)
	if err != nil {
		return err
	}

	if principal.Role != fleet.RoleAdmin && vehicle.OwnerID != principal.Identity {
		return &fleet.ForbiddenError{Reason: fleet.ForbiddenOwnership}
	}

	return fleet.ValidateCoordinates(latitude, longitude)
}

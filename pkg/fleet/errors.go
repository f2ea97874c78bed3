package fleet

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinates")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrRecordNotFound    = errors.New("location not found")
	ErrStorageFailure    = errors.New("storage failure")
)

type ForbiddenReason string

const (
	ForbiddenRole      ForbiddenReason = "role"
	ForbiddenOwnership ForbiddenReason = "ownership"
)

// ForbiddenError is returned when a principal is authenticated but not
// permitted to perform a write.
type ForbiddenError struct {
	Reason ForbiddenReason
}

func (e *ForbiddenError) Error() string {
	switch e.Reason {
	case ForbiddenRole:
		return "Operator only for location updates"
	case ForbiddenOwnership:
		return "Not authorized for this vehicle"
	default:
		return fmt.Sprintf("forbidden: %s", string(e.Reason))
	}
}

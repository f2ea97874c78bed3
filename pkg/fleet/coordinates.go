package fleet

import "fmt"

// ValidateCoordinates checks a latitude/longitude pair against the WGS84
// ranges. Boundary values are valid.
func ValidateCoordinates(latitude float64, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]: %w", latitude, ErrInvalidCoordinate)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]: %w", longitude, ErrInvalidCoordinate)
	}

	return nil
}

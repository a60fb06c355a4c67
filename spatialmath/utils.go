package spatialmath

import (
	"math"

	"github.com/pkg/errors"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// WrapToPi wraps an angle into the half-open interval (-pi, pi].
func WrapToPi(theta float64) float64 {
	wrapped := math.Mod(theta, 2*math.Pi)
	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	} else if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	}
	return wrapped
}

// AngleDist returns the magnitude of the minimal equivalent difference between
// two angles, i.e. |WrapToPi(a - b)|.
func AngleDist(a, b float64) float64 {
	return math.Abs(WrapToPi(a - b))
}

// Float64AlmostEqual reports whether two floats are within epsilon of each other.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func newNonRigidError(reason string) error {
	return errors.Errorf("matrix is not a rigid transform: %s", reason)
}

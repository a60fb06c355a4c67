// Package tool models end-of-arm tooling: the fixed frame each tool tip has
// relative to the robot flange, and the active-tool selection used when
// converting between tip poses and flange poses.
package tool

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/motionworks/paintarm/spatialmath"
)

// Geometry describes where a tool tip sits relative to the flange. The tip
// frame is reached by yawing about the flange z axis, stepping radially out
// along the rotated x axis, pitching about the new y axis, and extending along
// the resulting z axis.
type Geometry struct {
	// Yaw is the rotation about the flange z axis, in radians.
	Yaw float64
	// Pitch is the rotation about the intermediate y axis, in radians.
	Pitch float64
	// RadialOffset is the signed offset along the rotated x axis, in mm.
	RadialOffset float64
	// AxialLength is the extension along the final z axis, in mm.
	AxialLength float64
}

// Frame returns the flange-to-tip transform for the geometry.
func (g Geometry) Frame() *spatialmath.Transform {
	return spatialmath.NewTransformFromEuler(r3.Vector{Z: g.Yaw}, r3.Vector{}).
		Mul(spatialmath.NewTransformFromPoint(r3.Vector{X: g.RadialOffset})).
		Mul(spatialmath.NewTransformFromEuler(r3.Vector{Y: g.Pitch}, r3.Vector{})).
		Mul(spatialmath.NewTransformFromPoint(r3.Vector{Z: g.AxialLength}))
}

// NewInvalidToolError is returned when a tool id falls outside the mounted set.
func NewInvalidToolError(id, count int) error {
	return errors.Errorf("tool %d does not exist, tools are numbered 1 to %d", id, count)
}

// DefaultGeometries returns the four-nozzle turret layout: nozzles spaced 90
// degrees apart around the flange, each angled 45 degrees back toward the
// flange axis.
func DefaultGeometries() []Geometry {
	geometries := make([]Geometry, 0, 4)
	for _, yawDeg := range []float64{225, 315, 45, 135} {
		geometries = append(geometries, Geometry{
			Yaw:          spatialmath.DegToRad(yawDeg),
			Pitch:        -math.Pi / 4,
			RadialOffset: -50,
			AxialLength:  300,
		})
	}
	return geometries
}

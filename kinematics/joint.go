// Package kinematics models a 6-DOF serial manipulator and solves its forward
// and inverse kinematics.
package kinematics

import (
	"github.com/motionworks/paintarm/spatialmath"
)

// NumJoints is the number of revolute joints in the serial chain.
const NumJoints = 6

// Limit represents the allowed range of motion for a joint, in radians.
type Limit struct {
	Min float64
	Max float64
}

// Contains reports whether the angle is within the limit, inclusive.
func (l Limit) Contains(angle float64) bool {
	return angle >= l.Min && angle <= l.Max
}

// Joint is one immutable row of the Denavit-Hartenberg table: the twist angle,
// link length, link offset, the angle-offset convention for the joint variable,
// and the joint's angular limits. Lengths are in millimeters, angles in radians.
type Joint struct {
	Alpha       float64
	A           float64
	D           float64
	ThetaOffset float64
	Limit       Limit
}

// Transform returns the joint's DH transform for the given joint angle.
func (j Joint) Transform(angle float64) *spatialmath.Transform {
	return spatialmath.NewDHTransform(j.Alpha, j.A, j.D, angle+j.ThetaOffset)
}

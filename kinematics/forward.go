package kinematics

import (
	"github.com/motionworks/paintarm/spatialmath"
)

// Transforms computes the running product of the mount offset and each joint's DH
// transform. The returned slice has length NumJoints+1: index 0 is the mount frame
// and index i is the world frame of joint i. Out-of-limit angles are computed as
// given; limit enforcement belongs to ValidatePositions and to the IK solver.
func (m *Model) Transforms(positions []float64) ([]*spatialmath.Transform, error) {
	if len(positions) != len(m.joints) {
		return nil, NewIncorrectDoFError(len(positions), len(m.joints))
	}
	frames := make([]*spatialmath.Transform, 0, len(m.joints)+1)
	current := m.mount
	frames = append(frames, current)
	for i, joint := range m.joints {
		current = current.Mul(joint.Transform(positions[i]))
		frames = append(frames, current)
	}
	return frames, nil
}

// EndEffector computes the end-effector frame for the given joint angles.
func (m *Model) EndEffector(positions []float64) (*spatialmath.Transform, error) {
	frames, err := m.Transforms(positions)
	if err != nil {
		return nil, err
	}
	return frames[len(frames)-1], nil
}

package kinematics

import (
	"go.uber.org/multierr"

	"github.com/motionworks/paintarm/spatialmath"
)

// Model is the static geometry of a 6-DOF serial arm: the base mount offset and
// the ordered DH joint table. Read-only after construction.
type Model struct {
	name   string
	mount  *spatialmath.Transform
	joints []Joint
}

// NewModel builds a model from a mount transform and exactly NumJoints joints.
func NewModel(name string, mount *spatialmath.Transform, joints []Joint) (*Model, error) {
	if len(joints) != NumJoints {
		return nil, NewIncorrectDoFError(len(joints), NumJoints)
	}
	if mount == nil {
		mount = spatialmath.NewTransform()
	}
	m := &Model{name: name, mount: mount, joints: make([]Joint, NumJoints)}
	copy(m.joints, joints)
	return m, nil
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Mount returns the fixed transform from the world frame to the base of joint 1.
func (m *Model) Mount() *spatialmath.Transform {
	return m.mount
}

// Joint returns the i-th joint of the chain, 0-indexed.
func (m *Model) Joint(i int) Joint {
	return m.joints[i]
}

// DoF returns the per-joint limits; its length is the number of joints.
func (m *Model) DoF() []Limit {
	limits := make([]Limit, len(m.joints))
	for i, joint := range m.joints {
		limits[i] = joint.Limit
	}
	return limits
}

// ValidatePositions checks every joint angle against its limits and returns an
// aggregate error naming each violating joint, or nil. It never alters angles.
func (m *Model) ValidatePositions(positions []float64) error {
	if len(positions) != len(m.joints) {
		return NewIncorrectDoFError(len(positions), len(m.joints))
	}
	var errAll error
	for i, joint := range m.joints {
		if !joint.Limit.Contains(positions[i]) {
			multierr.AppendInto(&errAll, NewJointLimitError(i, positions[i], joint.Limit))
		}
	}
	return errAll
}

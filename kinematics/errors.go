package kinematics

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnreachable is returned when the wrist center lies outside the reach
	// envelope of the two arm links for every base branch.
	ErrUnreachable = errors.New("target position is outside the arm's reach envelope")

	// ErrNoSolution is returned when the target is reachable but every candidate
	// configuration violates a joint limit.
	ErrNoSolution = errors.New("no joint configuration within limits reaches the target")

	// ErrUnsupportedChain is returned by the closed-form solver for models that do
	// not have the expected spherical-wrist geometry.
	ErrUnsupportedChain = errors.New("closed-form solver requires a spherical-wrist chain")
)

// NewIncorrectDoFError returns an error for a joint-position slice whose length
// does not match the model's degrees of freedom.
func NewIncorrectDoFError(got, want int) error {
	return fmt.Errorf("number of joint positions %d does not match model DoF %d", got, want)
}

// NewJointLimitError returns an error for an angle outside a joint's limits.
// Joints are numbered from 1.
func NewJointLimitError(joint int, angle float64, limit Limit) error {
	return fmt.Errorf("joint %d angle %.5f outside limit [%.5f, %.5f]", joint+1, angle, limit.Min, limit.Max)
}

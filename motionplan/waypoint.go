// Package motionplan turns tool-tip paths into joint-space trajectories. Each
// waypoint is solved against the previous configuration so the arm moves
// continuously, and the run aborts at the first waypoint that cannot be
// reached within joint limits.
package motionplan

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/motionworks/paintarm/spatialmath"
)

// Waypoint is one stop on a path: a tool-tip position and the tool to use
// there. Tool 0 keeps whichever tool the previous waypoint selected.
type Waypoint struct {
	Tool     int
	Position r3.Vector
}

// Path is an ordered list of waypoints.
type Path []Waypoint

// ArmView is a snapshot of the arm handed to a Renderer: the configuration,
// the frame of every link, the active tool and its tip frame.
type ArmView struct {
	Positions []float64
	Frames    []*spatialmath.Transform
	Tool      int
	TipFrame  *spatialmath.Transform
}

// Renderer consumes arm snapshots as a path executes. Implementations draw
// them, record them, or ignore them.
type Renderer interface {
	Draw(view *ArmView)
}

// PathError reports the waypoint at which path execution stopped.
type PathError struct {
	Index    int
	Waypoint Waypoint
	Err      error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path aborted at waypoint %d (%.1f, %.1f, %.1f): %v",
		e.Index, e.Waypoint.Position.X, e.Waypoint.Position.Y, e.Waypoint.Position.Z, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

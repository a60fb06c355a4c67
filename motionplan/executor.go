package motionplan

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/motionworks/paintarm/kinematics"
	"github.com/motionworks/paintarm/spatialmath"
	"github.com/motionworks/paintarm/tool"
)

// Executor runs paths on one arm model with one tool set.
type Executor struct {
	model    *kinematics.Model
	tools    *tool.Resolver
	renderer Renderer
	logger   golog.Logger
}

// NewExecutor wires a model, a tool resolver and an optional renderer
// together. A nil renderer disables drawing.
func NewExecutor(model *kinematics.Model, tools *tool.Resolver, renderer Renderer, logger golog.Logger) (*Executor, error) {
	if model == nil {
		return nil, errors.New("executor needs a model")
	}
	if tools == nil {
		return nil, errors.New("executor needs a tool resolver")
	}
	if logger == nil {
		logger = golog.NewDevelopmentLogger("executor")
	}
	return &Executor{model: model, tools: tools, renderer: renderer, logger: logger}, nil
}

// tipOrientation is the fixed orientation of every waypoint tip frame: tool
// axis pointing straight down at the work surface.
func tipOrientation(position r3.Vector) *spatialmath.Transform {
	return spatialmath.NewTransformFromEuler(r3.Vector{X: math.Pi}, position)
}

// Execute moves the arm through the path starting from the given
// configuration. It returns one configuration per waypoint reached. When a
// waypoint cannot be solved, the trajectory so far is returned together with a
// *PathError wrapping the solver failure. A non-zero tool id becomes the
// retained selection when the waypoint's frame is resolved, before the solve,
// so a failing waypoint still commits its tool.
func (e *Executor) Execute(path Path, start []float64) ([][]float64, error) {
	if err := e.model.ValidatePositions(start); err != nil {
		return nil, errors.Wrap(err, "invalid start configuration")
	}
	if err := e.draw(start, e.tools.Selection()); err != nil {
		return nil, err
	}

	current := start
	trajectory := make([][]float64, 0, len(path))
	for i, wp := range path {
		tip := tipOrientation(wp.Position)
		ee, err := e.tools.EndEffectorFrame(tip, wp.Tool)
		if err == nil {
			current, err = e.model.Solve(ee, current)
		}
		if err != nil {
			e.logger.Warnw("aborting path", "waypoint", i, "error", err)
			return trajectory, &PathError{Index: i, Waypoint: wp, Err: err}
		}
		trajectory = append(trajectory, current)
		e.logger.Debugw("reached waypoint", "waypoint", i, "tool", e.tools.Selection())
		if err := e.draw(current, e.tools.Selection()); err != nil {
			return trajectory, err
		}
	}
	return trajectory, nil
}

func (e *Executor) draw(positions []float64, toolID int) error {
	if e.renderer == nil {
		return nil
	}
	frames, err := e.model.Transforms(positions)
	if err != nil {
		return err
	}
	tipFrame, err := e.tools.TipFrame(frames[len(frames)-1], toolID)
	if err != nil {
		return err
	}
	e.renderer.Draw(&ArmView{
		Positions: positions,
		Frames:    frames,
		Tool:      toolID,
		TipFrame:  tipFrame,
	})
	return nil
}

package tool

import (
	"github.com/pkg/errors"

	"github.com/motionworks/paintarm/spatialmath"
)

// Resolver converts between tool-tip poses and flange poses for a set of
// mounted tools. Tools are numbered from 1; id 0 means "whichever tool was
// selected last", so a stream of waypoints can switch tools sparsely and the
// selection sticks between switches.
//
// A Resolver is not safe for concurrent use.
type Resolver struct {
	frames   []*spatialmath.Transform
	inverses []*spatialmath.Transform
	selected int
}

// NewResolver builds a resolver over the given tool geometries. Tool i+1 uses
// geometries[i]. Tool 1 starts out selected.
func NewResolver(geometries []Geometry) (*Resolver, error) {
	if len(geometries) == 0 {
		return nil, errors.New("at least one tool geometry is required")
	}
	frames := make([]*spatialmath.Transform, 0, len(geometries))
	inverses := make([]*spatialmath.Transform, 0, len(geometries))
	for _, g := range geometries {
		frame := g.Frame()
		frames = append(frames, frame)
		inverses = append(inverses, frame.Invert())
	}
	return &Resolver{frames: frames, inverses: inverses, selected: 1}, nil
}

// DefaultResolver returns a resolver over the four-nozzle turret layout.
func DefaultResolver() (*Resolver, error) {
	return NewResolver(DefaultGeometries())
}

// NumTools returns the number of mounted tools.
func (r *Resolver) NumTools() int {
	return len(r.frames)
}

// Selection returns the id of the currently selected tool.
func (r *Resolver) Selection() int {
	return r.selected
}

// SetSelection makes the given tool current. Zero is not a tool and is
// rejected here; it is only meaningful as a per-call "keep current" id.
func (r *Resolver) SetSelection(id int) error {
	if id < 1 || id > len(r.frames) {
		return NewInvalidToolError(id, len(r.frames))
	}
	r.selected = id
	return nil
}

// resolve maps a per-call tool id to a frame index, updating the retained
// selection when the id is non-zero.
func (r *Resolver) resolve(id int) (int, error) {
	if id == 0 {
		return r.selected - 1, nil
	}
	if id < 0 || id > len(r.frames) {
		return 0, NewInvalidToolError(id, len(r.frames))
	}
	r.selected = id
	return id - 1, nil
}

// EndEffectorFrame returns the flange pose that places the given tool's tip at
// the tip pose. A non-zero id becomes the retained selection.
func (r *Resolver) EndEffectorFrame(tip *spatialmath.Transform, id int) (*spatialmath.Transform, error) {
	idx, err := r.resolve(id)
	if err != nil {
		return nil, err
	}
	return tip.Mul(r.inverses[idx]), nil
}

// TipFrame returns the tool-tip pose for a flange pose. Id 0 reads the current
// selection; unlike EndEffectorFrame this never changes it.
func (r *Resolver) TipFrame(ee *spatialmath.Transform, id int) (*spatialmath.Transform, error) {
	idx := r.selected - 1
	if id != 0 {
		if id < 0 || id > len(r.frames) {
			return nil, NewInvalidToolError(id, len(r.frames))
		}
		idx = id - 1
	}
	return ee.Mul(r.frames[idx]), nil
}

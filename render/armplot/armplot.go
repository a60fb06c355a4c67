// Package armplot plots the trace of the tool tip over a run, one scatter
// series per tool, viewed from above.
package armplot

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/motionworks/paintarm/motionplan"
)

// Trace accumulates tool tip positions per tool. It implements
// motionplan.Renderer.
type Trace struct {
	points map[int]plotter.XYs
}

// NewTrace returns an empty trace.
func NewTrace() *Trace {
	return &Trace{points: map[int]plotter.XYs{}}
}

// Draw records the tip position of the view under its tool id.
func (tr *Trace) Draw(view *motionplan.ArmView) {
	if view.TipFrame == nil {
		return
	}
	pt := view.TipFrame.Translation()
	tr.points[view.Tool] = append(tr.points[view.Tool], plotter.XY{X: pt.X, Y: pt.Y})
}

// Len returns the total number of recorded points.
func (tr *Trace) Len() int {
	n := 0
	for _, pts := range tr.points {
		n += len(pts)
	}
	return n
}

// WritePlot renders the trace to an image file. The format follows the file
// extension, as supported by the plot package.
func (tr *Trace) WritePlot(filename string) error {
	p := plot.New()
	p.Title.Text = "tool tip trace"
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	tools := make([]int, 0, len(tr.points))
	for id := range tr.points {
		tools = append(tools, id)
	}
	sort.Ints(tools)

	for i, id := range tools {
		scatter, err := plotter.NewScatter(tr.points[id])
		if err != nil {
			return errors.Wrap(err, "failed to build scatter")
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("tool %d", id), scatter)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, filename); err != nil {
		return errors.Wrap(err, "failed to save plot")
	}
	return nil
}

package armplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/motionworks/paintarm/kinematics"
	"github.com/motionworks/paintarm/motionplan"
	"github.com/motionworks/paintarm/tool"
)

func TestTraceRecordsAndPlots(t *testing.T) {
	model, err := kinematics.DefaultModel()
	test.That(t, err, test.ShouldBeNil)
	tools, err := tool.DefaultResolver()
	test.That(t, err, test.ShouldBeNil)

	trace := NewTrace()
	e, err := motionplan.NewExecutor(model, tools, trace, golog.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)

	path := motionplan.Path{
		{Tool: 1, Position: r3.Vector{X: 400, Y: 0, Z: 300}},
		{Tool: 0, Position: r3.Vector{X: 420, Y: 50, Z: 320}},
		{Tool: 2, Position: r3.Vector{X: 380, Y: -40, Z: 350}},
	}
	_, err = e.Execute(path, []float64{0, 0, 0, 0, 0, 0})
	test.That(t, err, test.ShouldBeNil)

	// the start pose plus every waypoint leaves a point
	test.That(t, trace.Len(), test.ShouldEqual, len(path)+1)

	filename := filepath.Join(t.TempDir(), "trace.png")
	test.That(t, trace.WritePlot(filename), test.ShouldBeNil)
	info, err := os.Stat(filename)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)
}

func TestEmptyTracePlots(t *testing.T) {
	trace := NewTrace()
	test.That(t, trace.Len(), test.ShouldEqual, 0)

	filename := filepath.Join(t.TempDir(), "empty.png")
	test.That(t, trace.WritePlot(filename), test.ShouldBeNil)
}

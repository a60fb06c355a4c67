// Package ggview renders arm poses as a 2D side elevation. Every pose drawn
// into the same view is overlaid, so executing a path produces a strobe
// picture of the motion.
package ggview

import (
	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/motionworks/paintarm/motionplan"
)

// tool color palette, 1-indexed by tool id, wrapping around
var palette = [][3]float64{
	{0.85, 0.2, 0.2},
	{0.2, 0.6, 0.2},
	{0.2, 0.3, 0.85},
	{0.8, 0.6, 0.1},
}

// View draws arm skeletons into an image, projecting world x/z onto the
// canvas. It implements motionplan.Renderer.
type View struct {
	dc      *gg.Context
	scale   float64
	originX float64
	originY float64
}

// NewView creates a white canvas of the given pixel size covering worldWidth
// millimeters of x either side of the base and the same span of z above the
// floor.
func NewView(width, height int, worldWidth float64) *View {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &View{
		dc:      dc,
		scale:   float64(width) / (2 * worldWidth),
		originX: float64(width) / 2,
		originY: float64(height) * 0.9,
	}
}

func (v *View) toCanvas(x, z float64) (float64, float64) {
	return v.originX + x*v.scale, v.originY - z*v.scale
}

// Draw overlays one arm pose: link segments joint to joint, then the tool
// segment from the flange to the tip in the tool's color.
func (v *View) Draw(view *motionplan.ArmView) {
	v.dc.SetLineWidth(2)
	v.dc.SetRGB(0.45, 0.45, 0.45)
	for i := 1; i < len(view.Frames); i++ {
		prev := view.Frames[i-1].Translation()
		cur := view.Frames[i].Translation()
		x0, y0 := v.toCanvas(prev.X, prev.Z)
		x1, y1 := v.toCanvas(cur.X, cur.Z)
		v.dc.DrawLine(x0, y0, x1, y1)
		v.dc.Stroke()
	}
	for _, frame := range view.Frames {
		pt := frame.Translation()
		x, y := v.toCanvas(pt.X, pt.Z)
		v.dc.DrawCircle(x, y, 3)
		v.dc.Fill()
	}

	if view.TipFrame == nil || len(view.Frames) == 0 {
		return
	}
	c := palette[(view.Tool-1+len(palette)*2)%len(palette)]
	v.dc.SetRGB(c[0], c[1], c[2])
	flange := view.Frames[len(view.Frames)-1].Translation()
	tip := view.TipFrame.Translation()
	x0, y0 := v.toCanvas(flange.X, flange.Z)
	x1, y1 := v.toCanvas(tip.X, tip.Z)
	v.dc.DrawLine(x0, y0, x1, y1)
	v.dc.Stroke()
	v.dc.DrawCircle(x1, y1, 4)
	v.dc.Fill()
}

// SavePNG writes the accumulated view to a PNG file.
func (v *View) SavePNG(filename string) error {
	if err := v.dc.SavePNG(filename); err != nil {
		return errors.Wrap(err, "failed to save view")
	}
	return nil
}

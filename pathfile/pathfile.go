// Package pathfile loads tool-tip paths from YAML files. A path file is a
// list of waypoints:
//
//	- color: 1
//	  x: 400
//	  y: 0
//	  z: 300
//
// color selects the tool for the waypoint, with 0 keeping the previous
// selection.
package pathfile

import (
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/motionworks/paintarm/motionplan"
)

type waypointYAML struct {
	Color int     `yaml:"color"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
}

// Parse decodes YAML path data.
func Parse(data []byte) (motionplan.Path, error) {
	var raw []waypointYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse path yaml")
	}
	path := make(motionplan.Path, 0, len(raw))
	for i, wp := range raw {
		if wp.Color < 0 {
			return nil, errors.Errorf("waypoint %d has negative color %d", i, wp.Color)
		}
		path = append(path, motionplan.Waypoint{
			Tool:     wp.Color,
			Position: r3.Vector{X: wp.X, Y: wp.Y, Z: wp.Z},
		})
	}
	return path, nil
}

// Load reads and parses a path file.
func Load(filename string) (motionplan.Path, error) {
	//nolint:gosec
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read path file")
	}
	return Parse(data)
}

package kinematics

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/motionworks/paintarm/spatialmath"
)

//go:embed lrmate200id.json
var lrMate200idJSON []byte

// ErrNoModelInformation is used when there is no model information.
var ErrNoModelInformation = errors.New("no model information")

// ModelConfigJSON represents all supported fields in a kinematics JSON file.
// Angles are in degrees and lengths in millimeters.
type ModelConfigJSON struct {
	Name     string          `json:"name"`
	MountZ   float64         `json:"mountZ"`
	DHParams []DHParamConfig `json:"dhParams"`
}

// DHParamConfig is one row of the DH table in a kinematics JSON file.
type DHParamConfig struct {
	ID          string  `json:"id"`
	A           float64 `json:"a"`
	D           float64 `json:"d"`
	Alpha       float64 `json:"alpha"`
	ThetaOffset float64 `json:"thetaOffset,omitempty"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
}

// UnmarshalModelJSON parses the given JSON data into a kinematics model. modelName
// sets the name of the model, and the name from the JSON is used when it is empty.
func UnmarshalModelJSON(jsonData []byte, modelName string) (*Model, error) {
	if len(jsonData) == 0 {
		return nil, ErrNoModelInformation
	}
	cfg := &ModelConfigJSON{}
	if err := json.Unmarshal(jsonData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json file")
	}
	return cfg.ParseConfig(modelName)
}

// ParseConfig converts the config into a full Model with the name modelName.
func (cfg *ModelConfigJSON) ParseConfig(modelName string) (*Model, error) {
	if modelName == "" {
		modelName = cfg.Name
	}
	if len(cfg.DHParams) != NumJoints {
		return nil, errors.Errorf("model %q has %d dhParams, need %d", modelName, len(cfg.DHParams), NumJoints)
	}
	joints := make([]Joint, 0, NumJoints)
	for _, dh := range cfg.DHParams {
		if dh.Min > dh.Max {
			return nil, errors.Errorf("dh param %q has min %f greater than max %f", dh.ID, dh.Min, dh.Max)
		}
		joints = append(joints, Joint{
			Alpha:       spatialmath.DegToRad(dh.Alpha),
			A:           dh.A,
			D:           dh.D,
			ThetaOffset: spatialmath.DegToRad(dh.ThetaOffset),
			Limit: Limit{
				Min: spatialmath.DegToRad(dh.Min),
				Max: spatialmath.DegToRad(dh.Max),
			},
		})
	}
	mount := spatialmath.NewTransformFromPoint(r3.Vector{Z: cfg.MountZ})
	return NewModel(modelName, mount, joints)
}

// ParseModelJSONFile reads a given file and then parses the contained JSON data.
func ParseModelJSONFile(filename, modelName string) (*Model, error) {
	//nolint:gosec
	jsonData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read json file")
	}
	return UnmarshalModelJSON(jsonData, modelName)
}

// DefaultModel returns the embedded LR-Mate-200iD-class model.
func DefaultModel() (*Model, error) {
	return UnmarshalModelJSON(lrMate200idJSON, "")
}

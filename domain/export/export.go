package export

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/soocke/camparams-go/domain/camera"
)

// DefaultIndent is the number of spaces used per JSON nesting level.
const DefaultIndent = 4

// ErrIOFailure wraps any failure to read or write a parameter file.
var ErrIOFailure = errors.New("camera parameter file i/o failed")

// WriteJSON writes params to path. The document is staged in a temporary file and
// renamed into place, so a failed export never leaves a partial file behind.
func WriteJSON(params camera.CameraParameters, path string, indent int) error {
	if indent < 0 {
		indent = DefaultIndent
	}
	data, err := json.MarshalIndent(params, "", strings.Repeat(" ", indent))
	if err != nil {
		return errors.Wrapf(ErrIOFailure, "encode: %v", err)
	}
	data = append(data, '\n')

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(ErrIOFailure, "write %s: %v", path, err)
	}
	return nil
}

// ReadJSON loads and validates a parameter file.
func ReadJSON(path string) (camera.CameraParameters, error) {
	var p camera.CameraParameters
	f, err := os.Open(path)
	if err != nil {
		return p, errors.Wrapf(ErrIOFailure, "open %s: %v", path, err)
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, errors.Wrapf(ErrIOFailure, "decode %s: %v", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, errors.Wrapf(err, "%s", path)
	}
	return p, nil
}

// Describe returns the user-facing message for an export failure.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, camera.ErrUnsupportedProjection):
		return "Only perspective cameras are supported: " + err.Error()
	case errors.Is(err, ErrIOFailure):
		return "Could not write camera parameters: " + err.Error()
	default:
		return err.Error()
	}
}

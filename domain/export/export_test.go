package export

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/camparams-go/config"
	"github.com/soocke/camparams-go/domain/camera"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func testCamera() camera.SceneCamera {
	return camera.SceneCamera{
		Name:       "Camera",
		Projection: camera.ProjectionPerspective,
		World:      mgl64.Translate3D(1, 2, 3),
		Angle:      mgl64.DegToRad(50),
		DOF:        camera.DepthOfField{Enabled: true, FocusDistance: 8, ApertureFStop: 2},
	}
}

func TestWriteJSON_KeysAndIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.json")
	params, err := camera.Extract(testCamera(), 1920, 1080, camera.Options{})
	require.NoError(t, err)
	require.NoError(t, WriteJSON(params, path, DefaultIndent))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n    \"aspect_ratio\": "), text)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	keys := []string{
		"aspect_ratio", "image_width", "vertical_fov_in_degrees", "look_from",
		"look_at", "vec_up", "defocus_angle_in_degrees", "focus_distance",
	}
	assert.Len(t, raw, len(keys))
	for _, k := range keys {
		assert.Contains(t, raw, k)
	}
	assert.Equal(t, float64(1920), raw["image_width"])
	assert.Len(t, raw["look_from"], 3)

	// Key order follows the struct declaration.
	last := -1
	for _, k := range keys {
		i := strings.Index(text, `"`+k+`"`)
		assert.Greater(t, i, last, k)
		last = i
	}
}

func TestWriteJSON_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.json")
	params, err := camera.Extract(testCamera(), 64, 64, camera.Options{})
	require.NoError(t, err)
	require.NoError(t, WriteJSON(params, path, 2))
	require.NoError(t, WriteJSON(params, path, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "camera.json", entries[0].Name())
}

func TestWriteJSON_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "camera.json")
	params, err := camera.Extract(testCamera(), 64, 64, camera.Options{})
	require.NoError(t, err)

	err = WriteJSON(params, path, DefaultIndent)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIOFailure))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReadJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.json")
	params, err := camera.Extract(testCamera(), 800, 600, camera.Options{})
	require.NoError(t, err)
	require.NoError(t, WriteJSON(params, path, DefaultIndent))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, params, got)
}

func TestReadJSON_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadJSON(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, ErrIOFailure))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"aspect_ratio": 1, "image_width": 10, "vec_up": [0, 3, 0]}`), 0o644))
	_, err = ReadJSON(bad)
	assert.True(t, errors.Is(err, camera.ErrInvalidParameters))
}

func TestExporter_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.json")
	cfg := config.DefaultConfig()
	cfg.LegacyHalfFOV = true
	e := NewExporter(discardLogger, cfg)

	params, err := e.Export(testCamera(), 640, 480, path)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, params.VerticalFOVInDegrees, 1e-9)

	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, params, got)
}

func TestExporter_UnsupportedProjectionWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.json")
	cam := testCamera()
	cam.Projection = camera.ProjectionOrthographic

	_, err := NewExporter(discardLogger, nil).Export(cam, 640, 480, path)
	assert.True(t, errors.Is(err, camera.ErrUnsupportedProjection))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExporter_ExportSnapshot(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(snap, []byte(`
render: {resolution_x: 1000, resolution_y: 500}
camera:
  name: Camera
  type: PERSP
  angle: 0.5
  location: [0, 0, 0]
  rotation_euler: [0, 0, 0]
`), 0o644))
	out := filepath.Join(dir, "camera.json")

	params, err := NewExporter(nil, nil).ExportSnapshot(snap, out)
	require.NoError(t, err)
	assert.Equal(t, 2.0, params.AspectRatio)
	assert.Equal(t, [3]float64{0, -1, 0}, params.LookAt)

	_, err = NewExporter(nil, nil).ExportFrom(nil, out)
	assert.Error(t, err)
}

func TestExporter_ExportSnapshotOrthographic(t *testing.T) {
	cases := map[string]string{
		"no angle or lens": "render: {resolution_x: 100, resolution_y: 100}\ncamera: {name: Top, type: ORTHO}\n",
		"zero resolution":  "render: {resolution_x: 0, resolution_y: 0}\ncamera: {name: Top, type: ORTHO, angle: 1}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			snap := filepath.Join(dir, "ortho.yaml")
			require.NoError(t, os.WriteFile(snap, []byte(doc), 0o644))
			out := filepath.Join(dir, "camera.json")

			_, err := NewExporter(discardLogger, nil).ExportSnapshot(snap, out)
			assert.True(t, errors.Is(err, camera.ErrUnsupportedProjection), "got %v", err)
			assert.True(t, strings.HasPrefix(Describe(err), "Only perspective cameras are supported"))
			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestWriteJSON_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "camera.json")
	require.NoError(t, os.Mkdir(target, 0o755))
	params, err := camera.Extract(testCamera(), 64, 64, camera.Options{})
	require.NoError(t, err)

	err = WriteJSON(params, target, DefaultIndent)
	assert.True(t, errors.Is(err, ErrIOFailure))
	info, statErr := os.Stat(target)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

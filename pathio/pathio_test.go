package pathio

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/sketchpath"
	"honnef.co/go/sketchpath/motion"
	"honnef.co/go/sketchpath/session"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"ref.json", JSON},
		{"dir/ref.JSON", JSON},
		{"ref.yaml", YAML},
		{"ref.yml", YAML},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
	for _, path := range []string{"ref.toml", "ref", "json"} {
		_, err := FormatOf(path)
		assert.ErrorIs(t, err, ErrUnknownFormat, path)
	}
}

func TestPathRoundTrip(t *testing.T) {
	mp := motion.MotionPath{
		Start: 12,
		Points: sketchpath.Polyline{
			sketchpath.Pt3(0, 0, 0),
			sketchpath.Pt3(1.5, -2, 3),
			sketchpath.Pt3(1e-9, 4, 1e9),
		},
	}
	dir := t.TempDir()
	for _, name := range []string{"path.json", "path.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WritePath(path, mp))
		got, err := ReadPath(path)
		require.NoError(t, err, name)
		assert.Equal(t, mp, got, name)

		pl, err := ReadPolyline(path)
		require.NoError(t, err, name)
		assert.Equal(t, mp.Points, pl, name)
	}
}

func TestWritePolylineOmitsStart(t *testing.T) {
	var buf bytes.Buffer
	pf, err := newPathFile(motion.MotionPath{Points: sketchpath.Polyline{sketchpath.Pt3(1, 2, 3)}})
	require.NoError(t, err)
	require.NoError(t, encode(&buf, YAML, pf))
	assert.NotContains(t, buf.String(), "start")

	path := filepath.Join(t.TempDir(), "stroke.json")
	require.NoError(t, WritePolyline(path, sketchpath.Polyline{sketchpath.Pt3(1, 2, 3)}))
	mp, err := ReadPath(path)
	require.NoError(t, err)
	assert.Equal(t, 0, mp.Start)
}

func TestDecodePath(t *testing.T) {
	mp, err := DecodePath(strings.NewReader(`{"start": 3, "points": [[1, 2, 3], [4, 5, 6]]}`), JSON)
	require.NoError(t, err)
	assert.Equal(t, motion.FrameRange{Start: 3, End: 4}, mp.Range())
	assert.Equal(t, sketchpath.Pt3(4, 5, 6), mp.Points[1])

	mp, err = DecodePath(strings.NewReader("points:\n  - [1, 2, 3]\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, sketchpath.Polyline{sketchpath.Pt3(1, 2, 3)}, mp.Points)
}

func TestDecodePathErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		f     Format
	}{
		{"unknown JSON field", `{"points": [], "frames": 3}`, JSON},
		{"unknown YAML field", "points: []\nframes: 3\n", YAML},
		{"not a path", `[1, 2, 3]`, JSON},
		{"short point", "points: [[1, 2]]\n", YAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePath(strings.NewReader(tt.input), tt.f)
			assert.Error(t, err)
		})
	}
}

func TestNonFinite(t *testing.T) {
	_, err := DecodePath(strings.NewReader("points: [[0, 0, 0], [.nan, 0, 0]]\n"), YAML)
	assert.ErrorIs(t, err, sketchpath.ErrNonFinite)

	_, err = DecodePath(strings.NewReader("points: [[0, .inf, 0]]\n"), YAML)
	assert.ErrorIs(t, err, sketchpath.ErrNonFinite)

	path := filepath.Join(t.TempDir(), "bad.json")
	inf := sketchpath.Polyline{sketchpath.Pt3(0, 0, 0), sketchpath.Pt3(math.Inf(1), 0, 0)}
	assert.ErrorIs(t, WritePolyline(path, inf), sketchpath.ErrNonFinite)
	assert.NoFileExists(t, path)
}

const armatureYAML = `
world:
  location: [0, 0, 1]
  rotation: [0, 0, 0]
bones:
  - name: hand
    parent: root
    head: [2, 0, 0]
  - name: root
    head: [0, 0, 0]
    keys:
      - frame: 11
        location: [0, 0, 0]
        rotation: [0, 0, 90]
      - frame: 1
        location: [0, 0, 0]
        rotation: [0, 0, 0]
`

func TestDecodeArmature(t *testing.T) {
	arm, err := DecodeArmature(strings.NewReader(armatureYAML), YAML)
	require.NoError(t, err)
	require.Len(t, arm.Bones, 2)

	root, ok := arm.Bone("root")
	require.True(t, ok)
	require.Len(t, root.Track.Keys, 2)
	assert.Equal(t, 1, root.Track.Keys[0].Frame, "keys are sorted")

	for _, tt := range []struct {
		frame float64
		want  sketchpath.Vec3
	}{
		{1, sketchpath.Vec(2, 0, 1)},
		{11, sketchpath.Vec(0, 2, 1)},
		{20, sketchpath.Vec(0, 2, 1)},
	} {
		m, err := arm.PoseMatrix("hand", tt.frame)
		require.NoError(t, err)
		got := m.Translation()
		assert.InDelta(t, 0, got.Sub(tt.want).Hypot(), 1e-12, "frame %g: got %v, want %v", tt.frame, got, tt.want)
	}
}

func TestDecodeArmatureScale(t *testing.T) {
	arm, err := DecodeArmature(strings.NewReader(`{
		"world": {"location": [1, 0, 0], "rotation": [0, 0, 0], "scale": [2, 2, 2]},
		"bones": [{"name": "root", "head": [1, 1, 1]}]
	}`), JSON)
	require.NoError(t, err)
	m, err := arm.PoseMatrix("root", 1)
	require.NoError(t, err)
	assert.Equal(t, sketchpath.Vec(3, 2, 2), m.Translation())
}

func TestDecodeArmatureErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"cycle", `
world: {location: [0, 0, 0], rotation: [0, 0, 0]}
bones:
  - {name: a, parent: b, head: [0, 0, 0]}
  - {name: b, parent: a, head: [0, 0, 0]}
`, motion.ErrCycle},
		{"missing parent", `
world: {location: [0, 0, 0], rotation: [0, 0, 0]}
bones:
  - {name: a, parent: b, head: [0, 0, 0]}
`, motion.ErrUnknownBone},
		{"non-finite key", `
world: {location: [0, 0, 0], rotation: [0, 0, 0]}
bones:
  - name: a
    head: [0, 0, 0]
    keys: [{frame: 1, location: [0, 0, 0], rotation: [.nan, 0, 0]}]
`, sketchpath.ErrNonFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeArmature(strings.NewReader(tt.input), YAML)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := DecodeArmature(strings.NewReader(`
world: {location: [0, 0, 0], rotation: [0, 0, 0], scale: [1, 0, 1]}
bones: []
`), YAML)
	assert.Error(t, err, "singular scale")

	_, err = DecodeArmature(strings.NewReader(`
world: {location: [0, 0, 0], rotation: [0, 0, 0]}
bones: [{head: [0, 0, 0]}]
`), YAML)
	assert.Error(t, err, "unnamed bone")
}

func TestDecodeEvents(t *testing.T) {
	evs, err := DecodeEvents(strings.NewReader(`[
		{"type": "frame", "frame": 40},
		{"type": "wheel", "delta": -2},
		{"type": "begin"},
		{"type": "move", "x": 10, "y": 20.5},
		{"type": "finalize"}
	]`), JSON)
	require.NoError(t, err)
	assert.Equal(t, []session.Event{
		{Kind: session.Frame, Frame: 40},
		{Kind: session.Wheel, Delta: -2},
		{Kind: session.Begin},
		{Kind: session.Move, X: 10, Y: 20.5},
		{Kind: session.Finalize},
	}, evs)

	_, err = DecodeEvents(strings.NewReader("- type: click\n"), YAML)
	assert.ErrorContains(t, err, "event 0")
}

func TestReadEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, writeFile(path, []eventFile{{Type: "begin"}, {Type: "cancel"}}))
	evs, err := ReadEvents(path)
	require.NoError(t, err)
	assert.Equal(t, []session.Event{{Kind: session.Begin}, {Kind: session.Cancel}}, evs)

	_, err = ReadEvents(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

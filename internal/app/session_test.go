package app

//go:generate mockgen -destination mock_renderer_test.go -package $GOPACKAGE -write_package_comment=false lattice-ca/internal/app Renderer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"
	"lattice-ca/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logging.SetLogger(nil)
}

func blinker(t *testing.T) *lattice.Lattice {
	t.Helper()
	l, err := lattice.FromRows(5, 5, []string{
		"-----",
		"-----",
		"-XXX-",
		"-----",
		"-----",
	})
	require.NoError(t, err)
	return l
}

func TestRunRendersAfterEachGeneration(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := blinker(t)
	r := NewMockRenderer(ctrl)
	// Initial grid, one for n and five for l.
	r.EXPECT().Render(gomock.Any(), l).Return(nil).Times(7)

	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("n c l q"), &out, WithRenderer(r))
	require.NoError(t, s.Run())

	assert.Equal(t, 6, l.Generation())
	assert.True(t, l.PopulationMode())
	assert.Contains(t, out.String(), "Showing population only.")
}

func TestRunStopsOnRenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := blinker(t)
	r := NewMockRenderer(ctrl)
	broken := errors.New("broken pipe")
	gomock.InOrder(
		r.EXPECT().Render(gomock.Any(), l).Return(nil),
		r.EXPECT().Render(gomock.Any(), l).Return(broken),
	)

	s := NewSession(l, strings.NewReader("n n q"), &bytes.Buffer{}, WithRenderer(r))
	err := s.Run()
	assert.ErrorIs(t, err, broken)
	assert.Equal(t, 1, l.Generation())
}

func TestRunEndsAtEndOfInput(t *testing.T) {
	l := blinker(t)
	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("n"), &out)
	require.NoError(t, s.Run())

	assert.Contains(t, out.String(), "Generation 1 (5x5, cold)\n-----\n--X--\n--X--\n--X--\n-----\n")
}

func TestUnknownCommandKeepsRunning(t *testing.T) {
	l := blinker(t)
	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("zz h n q"), &out)
	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), `Unknown command "zz"`)
	assert.Contains(t, out.String(), "Commands:")
	assert.Equal(t, 1, l.Generation())
}

func TestPlayAdvancesPaced(t *testing.T) {
	l := blinker(t)
	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("p 4 p nope q"), &out, WithPace(core.NewFixedStep(1000)))
	require.NoError(t, s.Run())
	assert.Equal(t, 4, l.Generation())
	assert.Contains(t, out.String(), `Invalid generation count "nope"`)
}

func TestSaveCommand(t *testing.T) {
	dir := t.TempDir()
	l := blinker(t)
	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("s - s "+filepath.Join(dir, "named.txt")+" q"), &out,
		WithSaveDir(dir),
		WithNamer(func() string { return "auto.txt" }),
	)
	require.NoError(t, s.Run())

	for _, name := range []string{"auto.txt", "named.txt"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, "5 5\n-----\n-----\n-XXX-\n-----\n-----\n", string(data))
	}
	assert.Contains(t, out.String(), "Saved to "+filepath.Join(dir, "auto.txt"))
}

func TestSaveFailureIsReported(t *testing.T) {
	l := blinker(t)
	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("s - n q"), &out, WithSaveDir(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Save failed:")
	assert.Equal(t, 1, l.Generation(), "the loop continues after a failed save")
}

func TestSnapshotNameIsUnique(t *testing.T) {
	a, b := SnapshotName(), SnapshotName()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "lattice-"))
	assert.True(t, strings.HasSuffix(a, ".txt"))
}

func TestPromptLiveCells(t *testing.T) {
	l, err := lattice.New(3, 3)
	require.NoError(t, err)
	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("0 0\n5 1\nx\n2 2\n1 y\nn\nq"), &out)
	require.NoError(t, s.PromptLiveCells())

	assert.Equal(t, 2, l.Population())
	assert.Contains(t, out.String(), "Invalid position (5,1)")
	assert.Contains(t, out.String(), `Invalid row "x"`)
	assert.Contains(t, out.String(), `Invalid column "y"`)

	// Entry stopped at "n"; the remaining input belongs to the command loop.
	require.NoError(t, s.Run())
}

func TestSavePromptsForName(t *testing.T) {
	dir := t.TempDir()
	l := blinker(t)
	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("s\n\nq\nn\n"), &out,
		WithSaveDir(dir),
		WithNamer(func() string { return "auto.txt" }),
	)
	require.NoError(t, s.Run())

	assert.Contains(t, out.String(), "File name: ")
	assert.Contains(t, out.String(), "Saved to "+filepath.Join(dir, "auto.txt"))
	assert.FileExists(t, filepath.Join(dir, "auto.txt"))
	assert.NoFileExists(t, "q")
	assert.Equal(t, 0, l.Generation(), "q after the prompt quits before n")
}

func TestSavePromptTakesWholeLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my grid.txt")
	l := blinker(t)
	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("s\n  "+path+"  \nq\n"), &out)
	require.NoError(t, s.Run())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5 5\n-----\n-----\n-XXX-\n-----\n-----\n", string(data))
}

func TestBoundaryCommand(t *testing.T) {
	l := blinker(t)
	var out bytes.Buffer
	s := NewSession(l, strings.NewReader("b periodic\nb mirror\nq\n"), &out)
	require.NoError(t, s.Run())

	assert.Equal(t, lattice.Periodic, l.Boundary())
	assert.Contains(t, out.String(), "Boundary: periodic\n")
	assert.Contains(t, out.String(), `Invalid boundary "mirror"`)
}

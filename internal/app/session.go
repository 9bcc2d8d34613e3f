package app

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"
	"lattice-ca/internal/logging"
	"lattice-ca/internal/render"

	"github.com/rs/xid"
)

// Renderer draws a lattice to a terminal stream after each generation.
type Renderer interface {
	Render(w io.Writer, l *lattice.Lattice) error
}

// burst is the number of generations the "l" command advances.
const burst = 5

const help = `Commands:
  n          next generation
  l          advance five generations
  p <k>      play k generations at the configured rate
  c          toggle population-only display
  b <border> switch boundary (none, cold, hot, periodic)
  s [file]   save the grid; without a file name, prompts (empty picks a fresh name)
  h          this help
  q, x       quit`

// Session is the interactive driver: it reads commands from in, advances the
// lattice and renders it to out. Input is read a line at a time; several
// commands may share a line.
type Session struct {
	lat      *lattice.Lattice
	in       *bufio.Scanner
	pending  []string
	out      io.Writer
	renderer Renderer
	saveDir  string
	pace     *core.FixedStep
	newName  func() string
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithRenderer replaces the default text renderer.
func WithRenderer(r Renderer) SessionOption {
	return func(s *Session) { s.renderer = r }
}

// WithSaveDir sets where unnamed snapshots are written.
func WithSaveDir(dir string) SessionOption {
	return func(s *Session) { s.saveDir = dir }
}

// WithPace sets the clock used by play mode.
func WithPace(fs *core.FixedStep) SessionOption {
	return func(s *Session) { s.pace = fs }
}

// WithNamer sets how unnamed snapshots are named.
func WithNamer(fn func() string) SessionOption {
	return func(s *Session) { s.newName = fn }
}

// NewSession wires a lattice to an input and an output stream.
func NewSession(l *lattice.Lattice, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		lat:      l,
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: render.Text{Header: true},
		saveDir:  ".",
		pace:     core.NewFixedStep(10),
		newName:  SnapshotName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SnapshotName returns a fresh file name for an unnamed save.
func SnapshotName() string {
	return "lattice-" + xid.New().String() + ".txt"
}

// Lattice returns the lattice the session drives.
func (s *Session) Lattice() *lattice.Lattice { return s.lat }

// PromptLiveCells asks for "row col" pairs until "n" or end of input.
// Positions outside the grid are reported and skipped.
func (s *Session) PromptLiveCells() error {
	fmt.Fprintf(s.out, "Enter live cells as \"row col\" (0-based, %dx%d grid), n when done.\n", s.lat.Rows(), s.lat.Cols())
	for {
		fmt.Fprint(s.out, "cell> ")
		tok, ok := s.token()
		if !ok {
			return s.in.Err()
		}
		if tok == "n" || tok == "done" {
			return nil
		}
		row, err := strconv.Atoi(tok)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid row %q.\n", tok)
			continue
		}
		tok, ok = s.token()
		if !ok {
			return s.in.Err()
		}
		col, err := strconv.Atoi(tok)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid column %q.\n", tok)
			continue
		}
		if err := s.lat.SetAlive(lattice.Position{Row: row, Col: col}); err != nil {
			fmt.Fprintf(s.out, "Invalid position (%d,%d): outside the %dx%d grid.\n", row, col, s.lat.Rows(), s.lat.Cols())
		}
	}
}

// Run shows the current grid and then executes commands until quit or end of
// input. Only output failures end it with an error.
func (s *Session) Run() error {
	if err := s.render(); err != nil {
		return err
	}
	for {
		fmt.Fprint(s.out, "> ")
		tok, ok := s.token()
		if !ok {
			return s.in.Err()
		}
		quit, err := s.Execute(tok)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command and reports whether the session should end.
func (s *Session) Execute(cmd string) (bool, error) {
	switch strings.ToLower(cmd) {
	case "n":
		return false, s.advance(1, false)
	case "l":
		return false, s.advance(burst, false)
	case "p":
		tok, _ := s.token()
		k, err := strconv.Atoi(tok)
		if err != nil || k < 0 {
			fmt.Fprintf(s.out, "Invalid generation count %q.\n", tok)
			return false, nil
		}
		return false, s.advance(k, true)
	case "c":
		if s.lat.TogglePopulationMode() {
			fmt.Fprintln(s.out, "Showing population only.")
		} else {
			fmt.Fprintln(s.out, "Showing the full grid.")
		}
		return false, nil
	case "b":
		tok, _ := s.token()
		b, err := lattice.ParseBoundary(tok)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid boundary %q.\n", tok)
			return false, nil
		}
		s.lat.SetBoundary(b)
		fmt.Fprintf(s.out, "Boundary: %s\n", b)
		return false, nil
	case "s":
		path, err := s.Save(s.fileName())
		if err != nil {
			fmt.Fprintf(s.out, "Save failed: %v\n", err)
			return false, nil
		}
		fmt.Fprintf(s.out, "Saved to %s\n", path)
		return false, nil
	case "h", "?", "help":
		fmt.Fprintln(s.out, help)
		return false, nil
	case "q", "x":
		return true, nil
	}
	fmt.Fprintf(s.out, "Unknown command %q, h for help.\n", cmd)
	return false, nil
}

// Save writes the lattice to name, or to a fresh file in the save directory
// when name is empty or "-". It returns the path written.
func (s *Session) Save(name string) (string, error) {
	path := name
	if path == "" || path == "-" {
		path = filepath.Join(s.saveDir, s.newName())
	}
	if err := s.lat.SaveFile(path); err != nil {
		return "", err
	}
	logging.Logf("saved generation %d to %s", s.lat.Generation(), path)
	return path, nil
}

func (s *Session) advance(k int, paced bool) error {
	for i := 0; i < k; i++ {
		if paced {
			s.pace.Wait()
		}
		s.lat.Advance()
		if err := s.render(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) render() error {
	if err := s.renderer.Render(s.out, s.lat); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// token returns the next word, reading further lines as needed.
func (s *Session) token() (string, bool) {
	for len(s.pending) == 0 {
		if !s.in.Scan() {
			return "", false
		}
		s.pending = strings.Fields(s.in.Text())
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, true
}

// fileName takes the next word on the current line as the save name, or
// prompts for a whole line when nothing follows the command.
func (s *Session) fileName() string {
	if len(s.pending) > 0 {
		name := s.pending[0]
		s.pending = s.pending[1:]
		return name
	}
	fmt.Fprint(s.out, "File name: ")
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

package lattice

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// AliveGlyph marks a live cell in text form.
	AliveGlyph = 'X'
	// DeadGlyph marks a dead cell in saved files.
	DeadGlyph = '-'
)

// FromRows builds a lattice from row strings. Every line must be exactly cols
// glyphs long; AliveGlyph is alive and anything else dead.
func FromRows(rows, cols int, lines []string, opts ...Option) (*Lattice, error) {
	if len(lines) != rows {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrFormat, rows, len(lines))
	}
	l, err := New(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrFormat, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			l.cells[r*cols+c].state = line[c] == AliveGlyph
		}
	}
	return l, nil
}

// Load reads the format written by Save: "rows cols" followed by rows
// whitespace-separated row strings.
func Load(r io.Reader, opts ...Option) (*Lattice, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", what, err)
		}
		return "", fmt.Errorf("%w: missing %s", ErrFormat, what)
	}
	dim := func(what string) (int, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not a number", ErrFormat, what, tok)
		}
		return n, nil
	}

	rows, err := dim("row count")
	if err != nil {
		return nil, err
	}
	cols, err := dim("column count")
	if err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	lines := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		line, err := next(fmt.Sprintf("row %d", i))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return FromRows(rows, cols, lines, opts...)
}

// LoadFile opens path and reads it with Load.
func LoadFile(path string, opts ...Option) (*Lattice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	l, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return l, nil
}

// LoadBits reads a one-dimensional configuration from the first line of r:
// '1' is alive, '0' is dead, other characters are skipped. The lattice is
// a single row configured as an elementary line unless opts say otherwise.
func LoadBits(r io.Reader, opts ...Option) (*Lattice, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read bits: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, fmt.Errorf("%w: empty initialization line", ErrFormat)
	}
	var bits []bool
	for _, ch := range line {
		switch ch {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		}
	}
	if len(bits) == 0 {
		return nil, fmt.Errorf("%w: no 0/1 cells in %q", ErrFormat, line)
	}
	l, err := New(1, len(bits), append([]Option{Elementary()}, opts...)...)
	if err != nil {
		return nil, err
	}
	for c, alive := range bits {
		l.cells[c].state = alive
	}
	return l, nil
}

// Save writes "rows cols" and then one line of glyphs per row.
func (l *Lattice) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", l.rows, l.cols); err != nil {
		return err
	}
	row := make([]byte, l.cols+1)
	row[l.cols] = '\n'
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			row[c] = DeadGlyph
			if l.cells[r*l.cols+c].state {
				row[c] = AliveGlyph
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveFile writes the lattice to path, replacing any existing file.
func (l *Lattice) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := l.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

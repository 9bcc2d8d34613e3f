package render

import (
	"bytes"
	"image/color"
	"testing"

	"lattice-ca/internal/lattice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteFill(t *testing.T) {
	p := NewPalette(color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	buf := make([]byte, 8)
	p.Fill(buf, []uint8{1, 0})
	assert.Equal(t, []byte{255, 255, 255, 255, 10, 20, 30, 255}, buf)
}

func TestPaletteFillLattice(t *testing.T) {
	l, err := lattice.FromRows(2, 2, []string{"X-", "-X"})
	require.NoError(t, err)
	p := NewPalette(color.RGBA{R: 1, A: 255}, color.RGBA{B: 2, A: 255})
	buf := make([]byte, 16)
	p.FillLattice(buf, l)
	assert.Equal(t, []byte{
		1, 0, 0, 255, 0, 0, 2, 255,
		0, 0, 2, 255, 1, 0, 0, 255,
	}, buf)
}

func TestTextRender(t *testing.T) {
	l, err := lattice.FromRows(2, 3, []string{"X--", "-XX"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Text{}.Render(&buf, l))
	assert.Equal(t, "X--\n-XX\n", buf.String())

	buf.Reset()
	l.SetPopulationMode(true)
	require.NoError(t, Text{Header: true}.Render(&buf, l))
	assert.Equal(t, "Generation 0 (2x3, cold)\nPopulation: 3\n", buf.String())
}

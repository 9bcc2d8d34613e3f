package lattice

import (
	"fmt"
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func seeded(rows, cols int, seed uint64, opts ...Option) *Lattice {
	l, err := New(rows, cols, opts...)
	Expect(err).NotTo(HaveOccurred())
	rng := rand.New(rand.NewPCG(seed, 0))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			Expect(l.SetState(r, c, rng.IntN(3) == 0)).To(Succeed())
		}
	}
	return l
}

var _ = Describe("Boundary", func() {
	sizes := [][2]int{{1, 1}, {1, 6}, {6, 1}, {2, 2}, {3, 3}, {5, 8}, {9, 4}}

	for _, b := range []Boundary{OpenCold, OpenHot, Periodic} {
		b := b
		Context(b.String(), func() {
			for _, size := range sizes {
				rows, cols := size[0], size[1]
				It(fmt.Sprintf("keeps a %dx%d grid at its logical size", rows, cols), func() {
					l := seeded(rows, cols, uint64(rows*31+cols), WithBoundary(b))
					for i := 0; i < 4; i++ {
						l.Advance()
						Expect(l.Rows()).To(Equal(rows))
						Expect(l.Cols()).To(Equal(cols))
					}
				})
			}

			It("keeps a one-dimensional line at its logical size", func() {
				l := seeded(1, 7, 5, WithBoundary(b), Elementary())
				for i := 0; i < 4; i++ {
					l.Advance()
					Expect(l.Rows()).To(Equal(1))
					Expect(l.Cols()).To(Equal(7))
				}
			})
		})
	}

	It("keeps the population within the grid size", func() {
		for _, b := range []Boundary{None, OpenCold, OpenHot, Periodic} {
			l := seeded(7, 7, 99, WithBoundary(b))
			for i := 0; i < 10; i++ {
				l.Advance()
				Expect(l.Population()).To(BeNumerically(">=", 0))
				Expect(l.Population()).To(BeNumerically("<=", l.Rows()*l.Cols()))
			}
		}
	})

	It("only lets the open ring temperature reach edge cells", func() {
		cold := seeded(8, 10, 7, WithBoundary(OpenCold))
		hot := seeded(8, 10, 7, WithBoundary(OpenHot))
		cold.Advance()
		hot.Advance()

		for r := 1; r < 7; r++ {
			for c := 1; c < 9; c++ {
				coldAlive, err := cold.State(r, c)
				Expect(err).NotTo(HaveOccurred())
				hotAlive, err := hot.State(r, c)
				Expect(err).NotTo(HaveOccurred())
				Expect(coldAlive).To(Equal(hotAlive), "interior cell (%d,%d)", r, c)
			}
		}
	})

	It("fills an empty hot grid from the edges", func() {
		l, err := New(5, 5, WithBoundary(OpenHot))
		Expect(err).NotTo(HaveOccurred())
		l.Advance()
		// Edge midpoints see exactly three hot ring cells and are born.
		Expect(l.State(0, 2)).To(BeTrue())
		Expect(l.State(2, 0)).To(BeTrue())
		// Corners see five and stay dead.
		Expect(l.State(0, 0)).To(BeFalse())
		Expect(l.State(2, 2)).To(BeFalse())
	})

	It("never shrinks a grid that grew under None", func() {
		l, err := FromRows(3, 3, []string{"XXX", "XXX", "XXX"}, WithBoundary(None))
		Expect(err).NotTo(HaveOccurred())
		rows, cols := l.Rows(), l.Cols()
		for i := 0; i < 6; i++ {
			l.Advance()
			Expect(l.Rows()).To(BeNumerically(">=", rows))
			Expect(l.Cols()).To(BeNumerically(">=", cols))
			rows, cols = l.Rows(), l.Cols()
		}
	})
})

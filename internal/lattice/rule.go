package lattice

// Rule maps a cell's state and its neighbors' states, in neighborhood order,
// to the cell's next state.
type Rule func(alive bool, neighbors []bool) bool

// Conway is the Game of Life rule B3/S23 for a Moore neighborhood.
func Conway(alive bool, neighbors []bool) bool {
	n := 0
	for _, v := range neighbors {
		if v {
			n++
		}
	}
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

const wolfram110 uint8 = 110

// Rule110 is the elementary automaton with Wolfram code 110. neighbors holds
// the left and right cells of a Pair neighborhood.
func Rule110(alive bool, neighbors []bool) bool {
	idx := bit(neighbors[0])<<2 | bit(alive)<<1 | bit(neighbors[1])
	return (wolfram110>>idx)&1 == 1
}

func bit(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

package rules

// toggleOffsets is the neighbor set of a press: the cell itself plus its four
// orthogonal neighbors, as (row, col) deltas.
var toggleOffsets = [5][2]int{
	{0, 0},
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

/*
ApplyToggleRule applies the Lights Out press rule to the cell at (row, col) on a rows x cols board.

flip is called once for every member of the neighbor set (self, up, down, left, right) that lies
inside the board. Members outside the board are skipped without affecting the others.
*/
func ApplyToggleRule(row, col, rows, cols int, flip func(row, col int)) {
	for _, off := range toggleOffsets {
		r, c := row+off[0], col+off[1]
		if r >= 0 && r < rows && c >= 0 && c < cols {
			flip(r, c)
		}
	}
}

// NeighborSetSize returns how many cells a press at (row, col) affects
func NeighborSetSize(row, col, rows, cols int) (n int) {
	ApplyToggleRule(row, col, rows, cols, func(int, int) { n++ })
	return
}

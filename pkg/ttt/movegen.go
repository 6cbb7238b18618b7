package ttt

import "math/bits"

// Indices of the empty cells in ascending order. Search generates moves in
// this order, so it decides which of the equally scored moves gets picked.
func (b *Board) EmptyPositions() []int {
	free := uint(_fullBitboard ^ (b.bitboards[_bitboardCrossIdx] | b.bitboards[_bitboardCircleIdx]))
	positions := make([]int, 0, bits.OnesCount(free))
	for free != 0 {
		positions = append(positions, bits.TrailingZeros(free))
		free &= free - 1
	}
	return positions
}

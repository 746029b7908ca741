package hamming

import (
	"fmt"

	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
)

// New creates the hamming code with paritySymbols number of parity symbols.
// Hamming codes can detect up to two-bit errors or correct one-bit errors without
// detection of uncorrected errors.
func New(paritySymbols int, opts ...linearblock.Option) (*linearblock.Code, error) {
	if paritySymbols < 2 {
		return nil, fmt.Errorf("hamming codes require >=2 parity symbols but found %v: %w", paritySymbols, linearblock.ErrInvalidLength)
	}
	n := 1<<uint(paritySymbols) - 1

	//To make Hamming codes we make the columns the bit versions
	// of every number from 1 to and including n -> [1,n] (note they're nonzero)
	// with the most significant bit in the first row
	rows := make([][]int, paritySymbols)
	for i := 1; i <= n; i++ {
		for j := 0; j < paritySymbols; j++ {
			if i&(1<<uint(paritySymbols-1-j)) > 0 {
				rows[j] = append(rows[j], i-1)
			}
		}
	}

	H, err := gf2.NewMatrix(n, rows)
	if err != nil {
		return nil, err
	}
	return linearblock.FromParityCheck(H, append([]linearblock.Option{linearblock.WithTag(fmt.Sprintf("hamming(%v)", paritySymbols))}, opts...)...)
}

//Code returns the [7,4] hamming code
func Code() *linearblock.Code {
	code, err := New(3)
	if err != nil {
		panic(err)
	}
	return code
}

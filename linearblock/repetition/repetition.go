package repetition

import (
	"fmt"

	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
)

// New creates the repetition code of length n, its only nonzero codeword is all ones.
// Check i compares bit i with bit i+1.
func New(n int, opts ...linearblock.Option) (*linearblock.Code, error) {
	if n < 1 {
		return nil, fmt.Errorf("repetition code of length %v: %w", n, linearblock.ErrInvalidLength)
	}

	rows := make([][]int, n-1)
	for i := range rows {
		rows[i] = []int{i, i + 1}
	}

	H, err := gf2.NewMatrix(n, rows)
	if err != nil {
		return nil, err
	}
	return linearblock.FromParityCheck(H, append([]linearblock.Option{linearblock.WithTag(fmt.Sprintf("repetition(%v)", n))}, opts...)...)
}

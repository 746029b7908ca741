package repetition

import (
	"strconv"
	"testing"

	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		n int
	}{
		{1}, {2}, {5}, {16},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			code, err := New(test.n)
			require.NoError(t, err)

			if code.Len() != test.n {
				t.Fatalf("expected %v but found %v", test.n, code.Len())
			}
			if code.Dimension() != 1 {
				t.Fatalf("expected %v but found %v", 1, code.Dimension())
			}
			if code.NumChecks() != test.n-1 {
				t.Fatalf("expected %v but found %v", test.n-1, code.NumChecks())
			}

			ones := make([]int, test.n)
			for j := range ones {
				ones[j] = j
			}
			has, err := code.HasCodeword(gf2.MustVector(test.n, ones...))
			require.NoError(t, err)
			require.True(t, has)

			distance, err := code.MinimalDistance()
			require.NoError(t, err)
			if distance != test.n {
				t.Fatalf("expected %v but found %v", test.n, distance)
			}
		})
	}
}

func TestNew_Syndrome(t *testing.T) {
	code, err := New(5)
	require.NoError(t, err)

	syndrome, err := code.SyndromeOf(gf2.MustVector(5, 0, 2))
	require.NoError(t, err)
	if !syndrome.Equal(gf2.MustVector(4, 0, 1, 2)) {
		t.Fatalf("expected %v but found %v", gf2.MustVector(4, 0, 1, 2), syndrome)
	}

	star, err := linearblock.FromParityCheck(gf2.MustMatrix(5, [][]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}))
	require.NoError(t, err)
	require.True(t, code.HasSameCodespace(star))
	require.False(t, code.Equal(star))
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, linearblock.ErrInvalidLength)
}

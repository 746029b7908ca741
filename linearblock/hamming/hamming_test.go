package hamming

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		paritySymbols int
		length        int
		dimension     int
	}{
		{2, 3, 1},
		{3, 7, 4},
		{4, 15, 11},
		{5, 31, 26},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := New(test.paritySymbols)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}

			if !actual.Validate() {
				t.Fatalf("expected valid linearblock code")
			}
			if actual.Len() != test.length {
				t.Fatalf("expected %v but found %v", test.length, actual.Len())
			}
			if actual.Dimension() != test.dimension {
				t.Fatalf("expected %v but found %v", test.dimension, actual.Dimension())
			}
			if actual.NumChecks() != test.paritySymbols {
				t.Fatalf("expected %v but found %v", test.paritySymbols, actual.NumChecks())
			}

			distance, err := actual.MinimalDistance()
			require.NoError(t, err)
			if distance != 3 {
				t.Fatalf("expected %v but found %v", 3, distance)
			}
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(1)
	require.ErrorIs(t, err, linearblock.ErrInvalidLength)
}

func TestCode(t *testing.T) {
	code := Code()
	expected := [][]int{{3, 4, 5, 6}, {1, 2, 5, 6}, {0, 2, 4, 6}}
	if !reflect.DeepEqual(code.ParityCheckMatrix().RowPositions(), expected) {
		t.Fatalf("expected %v but found %v", expected, code.ParityCheckMatrix().RowPositions())
	}

	syndrome, err := code.SyndromeOf(gf2.MustVector(7, 3))
	require.NoError(t, err)
	if !syndrome.Equal(gf2.MustVector(3, 0)) {
		t.Fatalf("expected %v but found %v", gf2.MustVector(3, 0), syndrome)
	}

	has, err := code.HasCodeword(gf2.MustVector(7, 0, 1, 2))
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, "hamming(3)", code.Tag())
}

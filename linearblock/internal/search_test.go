package internal

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinWeightSpan(t *testing.T) {
	tests := []struct {
		rows     [][]int
		cols     int
		expected int
	}{
		//hamming 7,4
		{[][]int{{0, 5, 6}, {1, 4, 6}, {2, 4, 5}, {3, 4, 5, 6}}, 7, 3},
		//repetition 5
		{[][]int{{0, 1, 2, 3, 4}}, 5, 5},
		//every word of length 3
		{[][]int{{0}, {1}, {2}}, 3, 1},
		//sum of the rows is lighter than any row
		{[][]int{{0, 1, 2, 3}, {0, 1, 2, 4}}, 5, 2},
	}

	for i, test := range tests {
		for _, threads := range []int{1, 4} {
			t.Run(strconv.Itoa(i)+"_"+strconv.Itoa(threads), func(t *testing.T) {
				actual, err := MinWeightSpan(context.Background(), rowsOf(test.cols, test.rows...), test.cols, threads, nil)
				require.NoError(t, err)
				if actual != test.expected {
					t.Fatalf("expected %v but found %v", test.expected, actual)
				}
			})
		}
	}
}

func TestMinWeightSpan_ManyRows(t *testing.T) {
	//identity of 10 rows plus a dense row, more rows than prefix bits
	rows := make([][]int, 0)
	for i := 0; i < 10; i++ {
		rows = append(rows, []int{i, 10, 11})
	}
	actual, err := MinWeightSpan(context.Background(), rowsOf(12, rows...), 12, 3, nil)
	require.NoError(t, err)
	if actual != 2 {
		t.Fatalf("expected %v but found %v", 2, actual)
	}
}

func TestMinWeightKernel(t *testing.T) {
	//columns of the hamming parity check matrix
	hamming := [][]int{{2}, {1}, {1, 2}, {0}, {0, 2}, {0, 1}, {0, 1, 2}}

	tests := []struct {
		columns  [][]int
		length   int
		upper    int
		expected int
	}{
		{hamming, 3, 7, 3},
		{hamming, 3, 3, 3},
		//repetition 4, chained checks
		{[][]int{{0}, {0, 1}, {1, 2}, {2}}, 3, 4, 4},
		//zero column
		{[][]int{{0}, {}, {1}}, 2, 3, 1},
		//repeated column
		{[][]int{{0}, {1}, {0}}, 2, 3, 2},
	}

	for i, test := range tests {
		for _, threads := range []int{1, 4} {
			t.Run(strconv.Itoa(i)+"_"+strconv.Itoa(threads), func(t *testing.T) {
				actual, err := MinWeightKernel(context.Background(), rowsOf(test.length, test.columns...), test.upper, threads, nil)
				require.NoError(t, err)
				if actual != test.expected {
					t.Fatalf("expected %v but found %v", test.expected, actual)
				}
			})
		}
	}

	_, err := MinWeightKernel(context.Background(), rowsOf(3, hamming...), 2, 1, nil)
	require.Error(t, err)
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := MinWeightSpan(ctx, rowsOf(3, []int{0}), 3, 1, nil)
	require.ErrorIs(t, err, context.Canceled)

	_, err = MinWeightKernel(ctx, rowsOf(1, []int{0}, []int{0}), 2, 1, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestKernelSearchCost(t *testing.T) {
	//7 + 21 + 35
	require.InDelta(t, 63.0, KernelSearchCost(7, 3), 1e-6)
	require.InDelta(t, 7.0, KernelSearchCost(7, 1), 1e-6)
}

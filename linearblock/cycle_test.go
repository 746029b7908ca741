package linearblock

import (
	"context"
	"strconv"
	"testing"

	"github.com/nathanhack/lincode/linearblock/gf2"
	"github.com/stretchr/testify/require"
)

func TestSmallestCycle(t *testing.T) {
	tests := []struct {
		h        *gf2.Matrix
		expected Cycle
	}{
		{gf2.MustMatrix(2, [][]int{{0, 1}, {0, 1}}), Cycle{
			{Index: 0, Check: true},
			{Index: 0, Check: false},
			{Index: 1, Check: true},
			{Index: 1, Check: false},
		}},
		{gf2.MustMatrix(3, [][]int{{0, 1}, {1, 2}, {0, 2}}), Cycle{
			{Index: 0, Check: true},
			{Index: 0, Check: false},
			{Index: 2, Check: true},
			{Index: 2, Check: false},
			{Index: 1, Check: true},
			{Index: 1, Check: false},
		}},
		{gf2.Identity(5), nil},
	}
	for i, test := range tests {
		for _, threads := range []int{1, 3} {
			t.Run(strconv.Itoa(i)+"_"+strconv.Itoa(threads), func(t *testing.T) {
				actual, err := SmallestCycle(context.Background(), test.h, threads)
				require.NoError(t, err)
				if !actual.Equal(test.expected) {
					t.Fatalf("expected %v but found %v", test.expected, actual)
				}
			})
		}
	}
}

func TestSmallestCycle_Hamming(t *testing.T) {
	H := gf2.MustMatrix(7, [][]int{{3, 4, 5, 6}, {1, 2, 5, 6}, {0, 2, 4, 6}})
	cycle, err := SmallestCycle(context.Background(), H, 2)
	require.NoError(t, err)
	if len(cycle) != 4 {
		t.Fatalf("expected %v but found %v", 4, len(cycle))
	}

	//consecutive nodes alternate kinds and are connected in H
	for i, n := range cycle {
		next := cycle[(i+1)%len(cycle)]
		if n.Check == next.Check {
			t.Fatalf("expected alternating nodes but found %v", cycle)
		}
		check, bit := n, next
		if !n.Check {
			check, bit = next, n
		}
		row, err := H.Row(check.Index)
		require.NoError(t, err)
		one, err := row.IsOneAt(bit.Index)
		require.NoError(t, err)
		if !one {
			t.Fatalf("expected an edge between %v and %v", check, bit)
		}
	}
}

func TestCycle_Equal(t *testing.T) {
	c1 := Cycle{
		{Index: 0, Check: true},
		{Index: 0, Check: false},
		{Index: 1, Check: true},
		{Index: 1, Check: false},
	}
	c2 := Cycle{
		{Index: 0, Check: true},
		{Index: 0, Check: false},
		{Index: 1, Check: true},
		{Index: 1, Check: false},
	}
	c3 := Cycle{
		{Index: 0, Check: true},
		{Index: 1, Check: false},
		{Index: 1, Check: true},
		{Index: 0, Check: false},
	}
	c4 := Cycle{
		{Index: 1, Check: true},
		{Index: 1, Check: false},
		{Index: 0, Check: true},
		{Index: 0, Check: false},
	}

	if !c1.Equal(c2) {
		t.Fatalf("expected equal")
	}
	if !c1.Equal(c3) {
		t.Fatalf("expected equal")
	}
	if c1.Equal(c4) {
		t.Fatalf("expected not equal")
	}
	if c1.String() != "[c:0 v:0 c:1 v:1]" {
		t.Fatalf("unexpected string %v", c1.String())
	}
}

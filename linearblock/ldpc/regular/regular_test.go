package regular

import (
	"context"
	"strconv"
	"testing"

	"github.com/nathanhack/lincode/linearblock"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []Params{
		{NumBits: 12, NumChecks: 9, BitDegree: 3, CheckDegree: 4},
		{NumBits: 10, NumChecks: 6, BitDegree: 3, CheckDegree: 5},
		{NumBits: 5, NumChecks: 4, BitDegree: 4, CheckDegree: 5},
	}
	for i, test := range tests {
		for seed := int64(0); seed < 5; seed++ {
			t.Run(strconv.Itoa(i)+"_"+strconv.Itoa(int(seed)), func(t *testing.T) {
				code, err := New(context.Background(), test, seed)
				require.NoError(t, err)

				if code.Len() != test.NumBits {
					t.Fatalf("expected %v but found %v", test.NumBits, code.Len())
				}
				if code.NumChecks() > test.NumChecks {
					t.Fatalf("expected at most %v checks but found %v", test.NumChecks, code.NumChecks())
				}
				if code.Dimension() < test.NumBits-test.NumChecks {
					t.Fatalf("expected dimension >= %v but found %v", test.NumBits-test.NumChecks, code.Dimension())
				}
				if code.Dimension()+code.NumChecks() != code.Len() {
					t.Fatalf("expected dimension + checks == %v", code.Len())
				}

				H := code.ParityCheckMatrix()
				require.Equal(t, test.NumChecks, H.RowCount())
				for _, row := range H.RowPositions() {
					if len(row) > test.CheckDegree {
						t.Fatalf("expected check degree <= %v but found %v", test.CheckDegree, len(row))
					}
				}
				for _, column := range H.ColumnPositions() {
					if len(column) > test.BitDegree {
						t.Fatalf("expected bit degree <= %v but found %v", test.BitDegree, len(column))
					}
				}
				if H.NumOnes() > test.NumBits*test.BitDegree {
					t.Fatalf("expected at most %v edges but found %v", test.NumBits*test.BitDegree, H.NumOnes())
				}

				again, err := New(context.Background(), test, seed)
				require.NoError(t, err)
				if !again.Equal(code) {
					t.Fatalf("expected the same code for seed %v", seed)
				}
			})
		}
	}
}

func TestNew_Retries(t *testing.T) {
	p := Params{NumBits: 12, NumChecks: 9, BitDegree: 3, CheckDegree: 4, Retries: 1000}
	code, err := New(context.Background(), p, 3)
	require.NoError(t, err)

	bits, checks := linearblock.DegreeStats(code.ParityCheckMatrix())
	require.InDelta(t, 3.0, bits.Mean, 1e-9)
	require.InDelta(t, 4.0, checks.Mean, 1e-9)
	require.Equal(t, 12*3, code.ParityCheckMatrix().NumOnes())
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		p        Params
		expected error
	}{
		{Params{NumBits: 12, NumChecks: 8, BitDegree: 3, CheckDegree: 3}, ErrDegreeMismatch},
		{Params{NumBits: 12, NumChecks: -1, BitDegree: 3, CheckDegree: 4}, ErrDegreeMismatch},
		{Params{NumBits: 0, NumChecks: 0, BitDegree: 3, CheckDegree: 4}, linearblock.ErrInvalidLength},
		//the products wrap around to the same value
		{Params{NumBits: 1 << 62, NumChecks: 1 << 61, BitDegree: 2, CheckDegree: 4}, linearblock.ErrInvalidLength},
		{Params{NumBits: 1, NumChecks: 1 << 40, BitDegree: 0, CheckDegree: 1 << 30}, linearblock.ErrInvalidLength},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := New(context.Background(), test.p, 0)
			require.ErrorIs(t, err, test.expected)
		})
	}
}

func TestSample_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(ctx, Params{NumBits: 12, NumChecks: 9, BitDegree: 3, CheckDegree: 4}, 0)
	require.ErrorIs(t, err, context.Canceled)
}

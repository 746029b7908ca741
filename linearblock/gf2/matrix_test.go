package gf2

import (
	"context"
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func hammingH() *Matrix {
	return MustMatrix(7, [][]int{{3, 4, 5, 6}, {1, 2, 5, 6}, {0, 2, 4, 6}})
}

func TestNewMatrix_InvalidIndex(t *testing.T) {
	_, err := NewMatrix(3, [][]int{{0, 1}, {3}})
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestMatrix_MultiplyVector(t *testing.T) {
	tests := []struct {
		m        *Matrix
		v        Vector
		expected Vector
	}{
		{hammingH(), MustVector(7, 3), MustVector(3, 0)},
		{hammingH(), MustVector(7, 0, 1, 2), Zeros(3)},
		{hammingH(), MustVector(7, 6), MustVector(3, 0, 1, 2)},
		{MustMatrix(5, [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}), MustVector(5, 0, 2), MustVector(4, 0, 1, 2)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := test.m.MultiplyVector(test.v)
			require.NoError(t, err)
			if !actual.Equal(test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}

	_, err := hammingH().MultiplyVector(Zeros(6))
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestMatrix_Rank(t *testing.T) {
	tests := []struct {
		m        *Matrix
		expected int
	}{
		{hammingH(), 3},
		{MustMatrix(5, [][]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}}), 3},
		{MustMatrix(4, [][]int{{0, 3}, {0, 3}}), 1},
		{ZeroMatrix(3, 4), 0},
		{Identity(6), 6},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := test.m.Rank()
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
			actual, err := test.m.RankContext(context.Background(), 2)
			require.NoError(t, err)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestMatrix_RankContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := hammingH().RankContext(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMatrix_RowReduce(t *testing.T) {
	m := MustMatrix(5, [][]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}})
	reduced := m.RowReduce()

	expected := [][]int{{0, 2}, {1, 2}, {3, 4}}
	if !reflect.DeepEqual(reduced.RowPositions(), expected) {
		t.Fatalf("expected %v but found %v", expected, reduced.RowPositions())
	}

	//source is untouched
	original := [][]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}}
	if !reflect.DeepEqual(m.RowPositions(), original) {
		t.Fatalf("expected %v but found %v", original, m.RowPositions())
	}
}

func TestMatrix_NullSpaceBasis(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		t.Run(strconv.Itoa(trial), func(t *testing.T) {
			cols := 3 + r.Intn(12)
			rows := make([][]int, r.Intn(10))
			for i := range rows {
				for c := 0; c < cols; c++ {
					if r.Intn(3) == 0 {
						rows[i] = append(rows[i], c)
					}
				}
			}
			h := MustMatrix(cols, rows)
			g := h.NullSpaceBasis()

			if g.RowCount() != cols-h.Rank() {
				t.Fatalf("expected %v basis vectors but found %v", cols-h.Rank(), g.RowCount())
			}
			if g.Rank()+h.Rank() != cols {
				t.Fatalf("expected rank(G)+rank(H) == %v but found %v+%v", cols, g.Rank(), h.Rank())
			}
			product, err := g.MultiplyMatrix(h.Transposed())
			require.NoError(t, err)
			if !product.IsZero() {
				t.Fatalf("expected G*H.T == 0 but found\n%v", product)
			}
			for _, row := range g.Rows() {
				if row.IsZero() {
					t.Fatalf("expected no zero rows")
				}
			}
		})
	}
}

func TestMatrix_Transposed(t *testing.T) {
	m := MustMatrix(3, [][]int{{0, 1}, {2}})
	expected := MustMatrix(2, [][]int{{0}, {0}, {1}})
	if !m.Transposed().Equal(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, m.Transposed())
	}
}

func TestMatrix_Concat(t *testing.T) {
	a := MustMatrix(2, [][]int{{0}, {1}})
	b := MustMatrix(1, [][]int{{0}, {}})

	h, err := a.HorizontalConcat(b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2}, {1}}, h.RowPositions())

	_, err = a.VerticalConcat(b)
	require.ErrorIs(t, err, ErrLengthMismatch)

	v, err := a.VerticalConcat(Identity(2))
	require.NoError(t, err)
	require.Equal(t, 4, v.RowCount())
	require.Equal(t, 2, v.Rank())

	_, err = a.HorizontalConcat(Identity(3))
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestMatrix_MultiplyMatrix(t *testing.T) {
	_, err := hammingH().MultiplyMatrix(hammingH())
	require.ErrorIs(t, err, ErrLengthMismatch)

	actual, err := hammingH().MultiplyMatrix(Identity(7))
	require.NoError(t, err)
	if !actual.Equal(hammingH()) {
		t.Fatalf("expected H*I == H but found \n%v\n", actual)
	}
}

func TestMatrix_Equal(t *testing.T) {
	a := MustMatrix(3, [][]int{{0}, {1}})
	b := MustMatrix(3, [][]int{{1}, {0}})
	if a.Equal(b) {
		t.Fatalf("expected row order to matter")
	}
	if !a.Equal(MustMatrix(3, [][]int{{0}, {1}})) {
		t.Fatalf("expected equal")
	}
	if a.String() != "[100]\n[010]\n" {
		t.Fatalf("unexpected string %q", a.String())
	}
}

package gf2

import (
	"context"
	"fmt"
	"strings"

	"github.com/nathanhack/lincode/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

//Matrix is an ordered list of rows of a common length. Row order is kept as given,
// zero and duplicate rows are allowed.
type Matrix struct {
	columns int
	rows    []mat.SparseVector
}

//NewMatrix creates a matrix with the given number of columns, each row is the list of its set positions
func NewMatrix(columns int, rows [][]int) (*Matrix, error) {
	if columns < 0 {
		return nil, fmt.Errorf("negative number of columns %v: %w", columns, ErrInvalidIndex)
	}
	m := &Matrix{columns: columns, rows: make([]mat.SparseVector, len(rows))}
	for i, positions := range rows {
		v, err := NewVector(columns, positions...)
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", i, err)
		}
		m.rows[i] = v.sparse()
	}
	return m, nil
}

//MustMatrix is like NewMatrix but panics on an invalid position. Intended for fixed tables.
func MustMatrix(columns int, rows [][]int) *Matrix {
	m, err := NewMatrix(columns, rows)
	if err != nil {
		panic(err)
	}
	return m
}

//FromVectors creates a matrix whose rows are the given vectors
func FromVectors(columns int, rows []Vector) (*Matrix, error) {
	m := &Matrix{columns: columns, rows: make([]mat.SparseVector, len(rows))}
	for i, r := range rows {
		if r.Len() != columns {
			return nil, fmt.Errorf("row %v has length %v but %v columns are required: %w", i, r.Len(), columns, ErrLengthMismatch)
		}
		m.rows[i] = mat.CSRVecCopy(r.sparse())
	}
	return m, nil
}

//Identity returns the n by n identity matrix
func Identity(n int) *Matrix {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = []int{i}
	}
	return MustMatrix(n, rows)
}

//ZeroMatrix returns the all zero matrix with the given shape
func ZeroMatrix(rows, columns int) *Matrix {
	return MustMatrix(columns, make([][]int, rows))
}

func fromEchelon(e *internal.Echelon) *Matrix {
	return &Matrix{columns: e.Columns, rows: e.Rows}
}

//RowCount is the number of stored rows
func (m *Matrix) RowCount() int {
	return len(m.rows)
}

//ColumnCount is the length of every row
func (m *Matrix) ColumnCount() int {
	return m.columns
}

//Row returns a copy of row i
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= len(m.rows) {
		return Vector{}, fmt.Errorf("row %v of matrix with %v rows: %w", i, len(m.rows), ErrInvalidIndex)
	}
	return fromSparse(mat.CSRVecCopy(m.rows[i])), nil
}

//Rows returns a copy of every row in order
func (m *Matrix) Rows() []Vector {
	result := make([]Vector, len(m.rows))
	for i, r := range m.rows {
		result[i] = fromSparse(mat.CSRVecCopy(r))
	}
	return result
}

//RowPositions returns the set positions of every row
func (m *Matrix) RowPositions() [][]int {
	result := make([][]int, len(m.rows))
	for i, r := range m.rows {
		result[i] = fromSparse(r).Positions()
	}
	return result
}

//ColumnPositions returns, for every column, the rows with a one in it
func (m *Matrix) ColumnPositions() [][]int {
	result := make([][]int, m.columns)
	for c := range result {
		result[c] = make([]int, 0)
	}
	for r, row := range m.RowPositions() {
		for _, c := range row {
			result[c] = append(result[c], r)
		}
	}
	return result
}

//NumOnes counts the ones over all rows
func (m *Matrix) NumOnes() int {
	count := 0
	for _, r := range m.rows {
		count += r.HammingWeight()
	}
	return count
}

//IsZero is true when no entry is one
func (m *Matrix) IsZero() bool {
	return m.NumOnes() == 0
}

//MultiplyVector returns the vector whose bit i is the dot product of row i with v
func (m *Matrix) MultiplyVector(v Vector) (Vector, error) {
	if v.Len() != m.columns {
		return Vector{}, fmt.Errorf("vector of length %v times matrix with %v columns: %w", v.Len(), m.columns, ErrLengthMismatch)
	}
	return fromSparse(internal.MultiplyVector(m.rows, v.sparse())), nil
}

//MultiplyMatrix returns the product m*other
func (m *Matrix) MultiplyMatrix(other *Matrix) (*Matrix, error) {
	if m.columns != len(other.rows) {
		return nil, fmt.Errorf("matrix with %v columns times matrix with %v rows: %w", m.columns, len(other.rows), ErrLengthMismatch)
	}
	result := &Matrix{columns: other.columns, rows: make([]mat.SparseVector, len(m.rows))}
	for i, row := range m.RowPositions() {
		acc := mat.CSRVec(other.columns)
		for _, j := range row {
			acc.Add(acc, other.rows[j])
		}
		result.rows[i] = acc
	}
	return result, nil
}

//Orthogonal reports whether every row of m has an even overlap with every row of other, i.e. m*other.T == 0
func (m *Matrix) Orthogonal(other *Matrix) (bool, error) {
	if m.columns != other.columns {
		return false, fmt.Errorf("matrices with %v and %v columns: %w", m.columns, other.columns, ErrLengthMismatch)
	}
	return internal.Orthogonal(m.rows, other.rows), nil
}

//Transposed returns the transpose of m
func (m *Matrix) Transposed() *Matrix {
	return MustMatrix(len(m.rows), m.ColumnPositions())
}

//HorizontalConcat returns [m other], both must have the same number of rows
func (m *Matrix) HorizontalConcat(other *Matrix) (*Matrix, error) {
	if len(m.rows) != len(other.rows) {
		return nil, fmt.Errorf("concatenating matrices with %v and %v rows: %w", len(m.rows), len(other.rows), ErrLengthMismatch)
	}
	result := &Matrix{columns: m.columns + other.columns, rows: make([]mat.SparseVector, len(m.rows))}
	for i := range m.rows {
		result.rows[i] = fromSparse(m.rows[i]).Concat(fromSparse(other.rows[i])).sparse()
	}
	return result, nil
}

//VerticalConcat returns the rows of m followed by the rows of other
func (m *Matrix) VerticalConcat(other *Matrix) (*Matrix, error) {
	if m.columns != other.columns {
		return nil, fmt.Errorf("stacking matrices with %v and %v columns: %w", m.columns, other.columns, ErrLengthMismatch)
	}
	result := &Matrix{columns: m.columns, rows: make([]mat.SparseVector, 0, len(m.rows)+len(other.rows))}
	for _, r := range m.rows {
		result.rows = append(result.rows, mat.CSRVecCopy(r))
	}
	for _, r := range other.rows {
		result.rows = append(result.rows, mat.CSRVecCopy(r))
	}
	return result, nil
}

func (m *Matrix) echelon() *internal.Echelon {
	// a background context never ends so the error is always nil
	e, _ := internal.GaussianJordanEliminationGF2(context.Background(), m.rows, m.columns, 1)
	return e
}

//Rank is the number of linearly independent rows
func (m *Matrix) Rank() int {
	return m.echelon().Rank()
}

//RankContext is Rank using threads workers and honouring ctx
func (m *Matrix) RankContext(ctx context.Context, threads int) (int, error) {
	e, err := internal.GaussianJordanEliminationGF2(ctx, m.rows, m.columns, threads)
	if err != nil {
		return 0, err
	}
	return e.Rank(), nil
}

//RowReduce returns the reduced row echelon form of m with the zero rows removed
func (m *Matrix) RowReduce() *Matrix {
	return fromEchelon(m.echelon())
}

//EchelonForm is RowReduce
func (m *Matrix) EchelonForm() *Matrix {
	return m.RowReduce()
}

//NullSpaceBasis returns a row reduced basis of { x : m*x = 0 } with ColumnCount()-Rank() rows
func (m *Matrix) NullSpaceBasis() *Matrix {
	kernel, _ := internal.NullSpace(context.Background(), m.echelon(), 1)
	return fromEchelon(kernel)
}

//NullSpaceBasisContext is NullSpaceBasis using threads workers and honouring ctx
func (m *Matrix) NullSpaceBasisContext(ctx context.Context, threads int) (*Matrix, error) {
	e, err := internal.GaussianJordanEliminationGF2(ctx, m.rows, m.columns, threads)
	if err != nil {
		return nil, err
	}
	kernel, err := internal.NullSpace(ctx, e, threads)
	if err != nil {
		return nil, err
	}
	return fromEchelon(kernel), nil
}

//Equal compares the shapes and the rows in order
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.columns != other.columns || len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if !fromSparse(m.rows[i]).Equal(fromSparse(other.rows[i])) {
			return false
		}
	}
	return true
}

//String prints one row per line as 0s and 1s
func (m *Matrix) String() string {
	sb := strings.Builder{}
	for _, r := range m.rows {
		sb.WriteString("[")
		for c := 0; c < m.columns; c++ {
			if r.At(c) == 1 {
				sb.WriteString("1")
			} else {
				sb.WriteString("0")
			}
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

package internal

import (
	"context"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//NullSpace returns a basis of { x : rows*x = 0 } where rows are given with their echelon form.
// There is one basis vector per free column f, it is 1 at f and at every pivot column
// whose row has a 1 in column f. The basis is returned in reduced row echelon form.
func NullSpace(ctx context.Context, e *Echelon, threads int) (*Echelon, error) {
	free := e.FreeColumns()
	isFree := make([]bool, e.Columns)
	basis := make(map[int]mat.SparseVector, len(free))
	for _, f := range free {
		isFree[f] = true
		vec := mat.CSRVec(e.Columns)
		vec.Set(f, 1)
		basis[f] = vec
	}

	//back substitution: pivot variable p_i = sum of the free variables in row i
	for i, row := range e.Rows {
		for _, c := range row.NonzeroArray() {
			if isFree[c] {
				basis[c].Set(e.Pivots[i], 1)
			}
		}
	}

	kernel := make([]mat.SparseVector, len(free))
	for i, f := range free {
		kernel[i] = basis[f]
	}
	logrus.Debugf("Null space has %v basis vectors", len(kernel))

	return GaussianJordanEliminationGF2(ctx, kernel, e.Columns, threads)
}

//MultiplyVector returns the vector whose ith entry is rows[i]·v over GF(2)
func MultiplyVector(rows []mat.SparseVector, v mat.SparseVector) mat.SparseVector {
	result := mat.CSRVec(len(rows))
	for i, row := range rows {
		if row.Dot(v)%2 == 1 {
			result.Set(i, 1)
		}
	}
	return result
}

//Orthogonal tests if G*H.T == 0 where H.T is the transpose of H, both given as rows
func Orthogonal(G, H []mat.SparseVector) bool {
	for _, g := range G {
		for _, h := range H {
			//equiv to G*H.T
			if g.Dot(h)%2 != 0 {
				return false
			}
		}
	}
	return true
}

package internal

import (
	"context"
	"os"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

//Echelon is the reduced row echelon form of a GF(2) matrix with the all zero rows removed.
// Rows[i] has its leading one in column Pivots[i] and that column is zero in every other row.
type Echelon struct {
	Rows    []mat.SparseVector
	Pivots  []int
	Columns int
}

//Rank is the number of pivots found during elimination
func (e *Echelon) Rank() int {
	return len(e.Pivots)
}

//FreeColumns returns the columns without a pivot, in increasing order
func (e *Echelon) FreeColumns() []int {
	isPivot := make([]bool, e.Columns)
	for _, p := range e.Pivots {
		isPivot[p] = true
	}

	free := make([]int, 0, e.Columns-len(e.Pivots))
	for c := 0; c < e.Columns; c++ {
		if !isPivot[c] {
			free = append(free, c)
		}
	}
	return free
}

func copyRows(rows []mat.SparseVector) []mat.SparseVector {
	result := make([]mat.SparseVector, len(rows))
	for i, r := range rows {
		result[i] = mat.CSRVecCopy(r)
	}
	return result
}

func findPivotRowGF2(rows []mat.SparseVector, fromRow, col int) int {
	for r := fromRow; r < len(rows); r++ {
		if rows[r].At(col) == 1 {
			return r
		}
	}
	return -1
}

//GaussianJordanEliminationGF2 reduces the rows (each of length cols) to reduced row echelon form.
// Columns are processed left to right, the input rows are never modified.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func GaussianJordanEliminationGF2(ctx context.Context, rows []mat.SparseVector, cols int, threads int) (*Echelon, error) {
	result := copyRows(rows)
	pivots := make([]int, 0)

	showProgressBar := logrus.GetLevel() == logrus.DebugLevel
	bar := pb.Full.New(cols)
	bar.Set("prefix", "Processing Column ")
	bar.SetWriter(os.Stdout)
	if showProgressBar {
		bar.Start()
	}

	pivotRow := 0
	for c := 0; c < cols && pivotRow < len(result); c++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		bar.Increment()

		r := findPivotRowGF2(result, pivotRow, c)
		if r == -1 {
			//free column
			continue
		}
		result[r], result[pivotRow] = result[pivotRow], result[r]

		// now the pivotRow has a one in column c so we
		// add it to every other row with a 1 in column c
		if err := eliminateOtherRows(ctx, pivotRow, c, result, threads); err != nil {
			return nil, err
		}
		pivots = append(pivots, c)
		pivotRow++
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()

	// rows at or below pivotRow are all zero at this point
	logrus.Debugf("Gaussian-Jordan Elimination complete: rank %v of %vx%v", pivotRow, len(rows), cols)
	return &Echelon{
		Rows:    result[:pivotRow],
		Pivots:  pivots,
		Columns: cols,
	}, nil
}

func eliminateOtherRows(ctx context.Context, pivotRow, col int, result []mat.SparseVector, threads int) error {
	targets := make([]int, 0)
	for r := range result {
		if r != pivotRow && result[r].At(col) == 1 {
			targets = append(targets, r)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	prow := result[pivotRow]
	pool := threadpool.New(ctx, threads)

	//each task owns a distinct row so no locking is needed
	for _, index := range targets {
		r := index
		pool.Add(func() {
			result[r].Add(result[r], prow)
		})
	}
	pool.Wait()

	//a canceled pool skips rows, leaving col partially eliminated
	return ctx.Err()
}

//CalculateRank returns the GF(2) rank of the rows or -1 if the context ended first
func CalculateRank(ctx context.Context, rows []mat.SparseVector, cols int, threads int) int {
	e, err := GaussianJordanEliminationGF2(ctx, rows, cols, threads)
	if err != nil {
		return -1
	}
	return e.Rank()
}

package linearblock

import (
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/lincode/linearblock/gf2"
)

//DegreeStats returns the mean and variance of the realized degrees of the variables (columns of H)
// and of the checks (rows of H)
func DegreeStats(H *gf2.Matrix) (bits, checks avgstd.AvgStd) {
	for _, column := range H.ColumnPositions() {
		bits.Update(float64(len(column)))
	}
	for _, row := range H.RowPositions() {
		checks.Update(float64(len(row)))
	}
	return
}

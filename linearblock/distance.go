package linearblock

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/lincode/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// spanLimit is the largest number of generators the span enumeration accepts
const spanLimit = 62 + 6

func toSparse(columns int, rows [][]int) []mat.SparseVector {
	result := make([]mat.SparseVector, len(rows))
	for i, positions := range rows {
		v := mat.CSRVec(columns)
		for _, p := range positions {
			v.Set(p, 1)
		}
		result[i] = v
	}
	return result
}

//MinimalDistance returns the smallest weight of a nonzero codeword. The search is exact and
// may take very long for large codes, see MinimalDistanceContext to bound it.
func (c *Code) MinimalDistance() (int, error) {
	return c.MinimalDistanceContext(context.Background())
}

//MinimalDistanceContext is MinimalDistance stopped by ctx. When ctx ends first the error wraps both
// ErrTimeout and ctx.Err() and nothing is cached, a later call starts over.
func (c *Code) MinimalDistanceContext(ctx context.Context) (int, error) {
	c.distanceMux.Lock()
	defer c.distanceMux.Unlock()

	if c.distance > 0 {
		return c.distance, nil
	}

	k := c.Dimension()
	if k == 0 {
		return 0, fmt.Errorf("code of length %v: %w", c.length, ErrEmptyCode)
	}
	if c.NumChecks() == 0 {
		//every word is a codeword
		c.distance = 1
		return c.distance, nil
	}

	threads := c.threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	G := c.GeneratorMatrix().RowReduce()
	generators := toSparse(c.length, G.RowPositions())
	upper := c.length
	for _, g := range generators {
		if w := g.HammingWeight(); w > 0 && w < upper {
			upper = w
		}
	}

	H := c.ParityCheckMatrix().RowReduce()
	columns := toSparse(H.RowCount(), H.ColumnPositions())

	spanCost := math.Exp2(float64(k))
	kernelCost := internal.KernelSearchCost(c.length, upper)
	useSpan := k < spanLimit && spanCost <= kernelCost
	logrus.Debugf("Minimal distance of [%v,%v] code: span cost %v, kernel cost %v, upper bound %v", c.length, k, spanCost, kernelCost, upper)

	var bar *pb.ProgressBar
	var distance int
	var err error
	if useSpan {
		if c.progress {
			bar = pb.StartNew(1 << uint(minInt(k, 6)))
		}
		distance, err = internal.MinWeightSpan(ctx, generators, c.length, threads, bar)
	} else {
		if c.progress {
			bar = pb.StartNew(upper)
		}
		distance, err = internal.MinWeightKernel(ctx, columns, upper, threads, bar)
	}
	if bar != nil {
		bar.Finish()
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrTimeout, ctxErr)
		}
		return 0, err
	}

	logrus.Debugf("Minimal distance of [%v,%v] code is %v", c.length, k, distance)
	c.distance = distance
	return c.distance, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

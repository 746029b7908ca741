package internal

import (
	"context"
	"fmt"
	"math/bits"
	"sync"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"gonum.org/v1/gonum/stat/combin"
)

// prefixBits is log2 of the number of tasks the span enumeration is split into
const prefixBits = 6

// checkEvery is how many candidates are tested between context checks
const checkEvery = 1 << 10

func done(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

//MinWeightSpan returns the smallest weight over the 2^k-1 nonzero combinations of the k linearly independent rows.
// The combinations are enumerated in Gray code order so each step costs one row addition. The top
// rows are fixed per task and the tasks are split over threads, the result does not depend on threads.
func MinWeightSpan(ctx context.Context, rows []mat.SparseVector, cols, threads int, bar *pb.ProgressBar) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	k := len(rows)
	p := prefixBits
	if k < p {
		p = k
	}
	low := k - p
	if low >= 63 {
		return 0, fmt.Errorf("%v generators cannot be enumerated", k)
	}

	best := cols + 1
	mux := sync.Mutex{}
	tasks := 1 << uint(p)
	pool := threadpool.New(ctx, threads)

	for prefix := 0; prefix < tasks; prefix++ {
		pre := prefix
		pool.Add(func() {
			acc := mat.CSRVec(cols)
			for j := 0; j < p; j++ {
				if pre&(1<<uint(j)) != 0 {
					acc.Add(acc, rows[low+j])
				}
			}

			local := cols + 1
			if w := acc.HammingWeight(); w > 0 {
				local = w
			}

			end := uint64(1) << uint(low)
			for i := uint64(1); i < end; i++ {
				if i%checkEvery == 0 && done(ctx) {
					return
				}
				acc.Add(acc, rows[bits.TrailingZeros64(i)])
				if w := acc.HammingWeight(); w > 0 && w < local {
					local = w
				}
			}

			mux.Lock()
			if local < best {
				best = local
			}
			mux.Unlock()
			if bar != nil {
				bar.Increment()
			}
		})
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if best > cols {
		return 0, fmt.Errorf("no nonzero combination of %v rows", k)
	}
	return best, nil
}

//MinWeightKernel returns the smallest w such that some w of the columns add up to zero.
// Weights are tried in increasing order up to upper, all subsets of one weight are tested before the next.
// Subsets are split by their smallest column over threads, the result does not depend on threads.
func MinWeightKernel(ctx context.Context, columns []mat.SparseVector, upper, threads int, bar *pb.ProgressBar) (int, error) {
	n := len(columns)
	if upper > n {
		upper = n
	}

	for w := 1; w <= upper; w++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		found := false
		mux := sync.RWMutex{}
		pool := threadpool.New(ctx, threads)

		for first := 0; first <= n-w; first++ {
			f := first
			weight := w
			pool.Add(func() {
				if weight == 1 {
					if columns[f].IsZero() {
						mux.Lock()
						found = true
						mux.Unlock()
					}
					return
				}

				gen := combin.NewCombinationGenerator(n-f-1, weight-1)
				comb := make([]int, weight-1)
				count := 0
				for gen.Next() {
					count++
					if count%checkEvery == 0 {
						mux.RLock()
						stop := found
						mux.RUnlock()
						if stop || done(ctx) {
							return
						}
					}

					gen.Combination(comb)
					acc := mat.CSRVecCopy(columns[f])
					for _, c := range comb {
						acc.Add(acc, columns[f+1+c])
					}
					if acc.IsZero() {
						mux.Lock()
						found = true
						mux.Unlock()
						return
					}
				}
			})
		}
		pool.Wait()

		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if bar != nil {
			bar.Increment()
		}
		if found {
			return w, nil
		}
	}
	return 0, fmt.Errorf("no %v or fewer columns add up to zero", upper)
}

//KernelSearchCost estimates the number of subsets MinWeightKernel tests for n columns and the given upper bound
func KernelSearchCost(n, upper int) float64 {
	cost := 0.0
	for w := 1; w <= upper && w <= n; w++ {
		cost += combin.GeneralizedBinomial(float64(n), float64(w))
	}
	return cost
}

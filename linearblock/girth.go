package linearblock

import (
	"context"
	"math"
	"sync"

	"github.com/nathanhack/lincode/linearblock/gf2"
	"github.com/nathanhack/threadpool"
)

// GirthBoundByEdges returns a bool if true it is possible for H to be
// free of all cycles C_i  where i \in 3<=i<=minGirth. If false, it is impossible to
// be free of all cycles C_i.
func GirthBoundByEdges(H *gf2.Matrix, minGirth int) bool {
	// from the paper Fast Distributed Algorithms for Girth, Cycles and Small Subgraphs by K. Censor-Hillel, et al
	// that if m is free of all C_i cycles 3<=i<=2k then m contains at most n^(1+1/k)+n edges.
	n := float64(H.RowCount() + H.ColumnCount())
	n = math.Pow(n, 1+1/(float64(minGirth)/2)) + n
	return int(n) >= H.NumOnes()
}

//search runs a BFS from every check and keeps the shortest cycle, ties go to the lowest check.
// root is -1 when there is no cycle of length <= limit.
func (t tanner) search(ctx context.Context, limit, threads int) (root int, cycle []int, err error) {
	if err := ctx.Err(); err != nil {
		return -1, nil, err
	}
	if t.checks == 0 {
		return -1, nil, nil
	}

	root = -1
	mux := sync.RWMutex{}
	pool := threadpool.New(ctx, threads)
	for i := 0; i < t.checks; i++ {
		index := i
		pool.Add(func() {
			mux.RLock()
			bound := limit
			if root != -1 {
				bound = len(cycle)
			}
			mux.RUnlock()

			c := t.shortestCycleFrom(ctx, index, bound)
			if c == nil {
				return
			}

			mux.Lock()
			if root == -1 || len(c) < len(cycle) || (len(c) == len(cycle) && index < root) {
				root = index
				cycle = c
			}
			mux.Unlock()
		})
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return -1, nil, err
	}
	return root, cycle, nil
}

// Girth calculates the girth of the tanner graph induced by H, -1 when it has no cycle.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func Girth(ctx context.Context, H *gf2.Matrix, threads int) (int, error) {
	return GirthLowerBound(ctx, H, -1, threads)
}

// GirthLowerBound returns the length of the smallest cycle.
// It searches for cycles with a length <= smallestGirth. If no cycles are found
// that are smaller or equal to smallestGirth then it returns -1, smallestGirth <= 0 searches all lengths.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func GirthLowerBound(ctx context.Context, H *gf2.Matrix, smallestGirth, threads int) (int, error) {
	root, cycle, err := newTanner(H).search(ctx, smallestGirth, threads)
	if err != nil {
		return -1, err
	}
	if root == -1 {
		return -1, nil
	}
	return len(cycle), nil
}

// HasGirthSmallerThan will search for cycle smaller than the given cycleLen.
// threads specifies the number of threads to use if <=0 will use runtime.NumCPU()
func HasGirthSmallerThan(ctx context.Context, H *gf2.Matrix, cycleLen, threads int) (bool, error) {
	if cycleLen <= 4 {
		//every cycle has at least 4 nodes
		return false, ctx.Err()
	}
	g, err := GirthLowerBound(ctx, H, cycleLen-1, threads)
	if err != nil {
		return false, err
	}
	return g != -1, nil
}

// CycleLowerBound runs a BFS starting at the checkIndex check node looking for cycles of length <= maxGirth,
// maxGirth <= 0 searches until it finds a cycle. It returns the length of the first cycle found or -1.
func CycleLowerBound(ctx context.Context, H *gf2.Matrix, checkIndex, maxGirth int) int {
	if checkIndex < 0 || checkIndex >= H.RowCount() {
		return -1
	}
	c := newTanner(H).shortestCycleFrom(ctx, checkIndex, maxGirth)
	if c == nil {
		return -1
	}
	return len(c)
}

package regular

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// ErrDegreeMismatch is returned when the bit and check degrees do not give the same number of edges.
var ErrDegreeMismatch = errors.New("regular: degree mismatch")

//maxEdges bounds the number of stubs on either side of the graph
const maxEdges = math.MaxInt32

//Params describes the bipartite graph of a random regular code
type Params struct {
	NumBits     int
	NumChecks   int
	BitDegree   int
	CheckDegree int
	//Retries is the number of reshuffles tried to find a pairing without parallel edges,
	// with 0 the first pairing is used and parallel edges are collapsed
	Retries int
}

//Validate checks the counts and that NumBits*BitDegree == NumChecks*CheckDegree
func (p Params) Validate() error {
	if p.NumBits < 1 {
		return fmt.Errorf("%v bits: %w", p.NumBits, linearblock.ErrInvalidLength)
	}
	if p.NumChecks < 0 || p.BitDegree < 0 || p.CheckDegree < 0 {
		return fmt.Errorf("negative count in %+v: %w", p, ErrDegreeMismatch)
	}
	if (p.BitDegree > 0 && p.NumBits > maxEdges/p.BitDegree) || (p.CheckDegree > 0 && p.NumChecks > maxEdges/p.CheckDegree) {
		return fmt.Errorf("more than %v edges in %+v: %w", maxEdges, p, linearblock.ErrInvalidLength)
	}
	if p.NumBits*p.BitDegree != p.NumChecks*p.CheckDegree {
		return fmt.Errorf("%v bits of degree %v and %v checks of degree %v: %w", p.NumBits, p.BitDegree, p.NumChecks, p.CheckDegree, ErrDegreeMismatch)
	}
	return nil
}

// New samples a random regular code using a source seeded with seed, the same seed always gives the same code.
func New(ctx context.Context, p Params, seed int64, opts ...linearblock.Option) (*linearblock.Code, error) {
	return Sample(ctx, p, rand.New(rand.NewSource(seed)), opts...)
}

// Sample pairs the bit stubs with a random permutation of the check stubs (the configuration model).
// A check and a bit paired more than once share a single entry in H so realized degrees may be
// lower than requested.
func Sample(ctx context.Context, p Params, rng *rand.Rand, opts ...linearblock.Option) (*linearblock.Code, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	edges := p.NumBits * p.BitDegree
	stubs := make([]int, 0, edges)
	for c := 0; c < p.NumChecks; c++ {
		for d := 0; d < p.CheckDegree; d++ {
			stubs = append(stubs, c)
		}
	}

	var rows [][]int
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		var collisions int
		rows, collisions = pair(p, stubs)
		if collisions == 0 {
			break
		}
		if attempt >= p.Retries {
			logrus.Debugf("Collapsed %v parallel edges after %v reshuffles", collisions, attempt)
			break
		}
		logrus.Debugf("Pairing %v has %v parallel edges, reshuffling", attempt, collisions)
	}

	H, err := gf2.NewMatrix(p.NumBits, rows)
	if err != nil {
		return nil, err
	}
	tag := fmt.Sprintf("regular(%v,%v,%v,%v)", p.NumBits, p.NumChecks, p.BitDegree, p.CheckDegree)
	return linearblock.FromParityCheck(H, append([]linearblock.Option{linearblock.WithTag(tag)}, opts...)...)
}

//pair gives stub i to bit i/BitDegree and returns the rows of H with the parallel edges removed
func pair(p Params, checkStubs []int) ([][]int, int) {
	rows := make([][]int, p.NumChecks)
	for i, c := range checkStubs {
		rows[c] = append(rows[c], i/p.BitDegree)
	}

	collisions := 0
	for c := range rows {
		slices.Sort(rows[c])
		before := len(rows[c])
		rows[c] = slices.Compact(rows[c])
		collisions += before - len(rows[c])
	}
	return rows, collisions
}

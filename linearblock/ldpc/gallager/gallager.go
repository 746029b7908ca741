package gallager

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
	"github.com/nathanhack/lincode/linearblock/ldpc/regular"
	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when no permutation meeting the cycle requirement was found within MaxIterations.
var ErrNotFound = errors.New("gallager: no matrix found")

//Params describes a Gallager code with NumChecks checks, every bit in BitDegree checks and
// every check on CheckDegree bits
type Params struct {
	NumChecks   int
	BitDegree   int
	CheckDegree int
	//SmallestCycle is the shortest cycle allowed in the tanner graph, <= 4 allows all
	SmallestCycle int
	//MaxIterations bounds the number of permutations tried
	MaxIterations int
	Threads       int
}

//New stacks BitDegree bands of NumChecks/BitDegree checks. The first band gives each check
// CheckDegree consecutive bits, the others are random column permutations of it.
// A band creating a cycle shorter than SmallestCycle is drawn again.
func New(ctx context.Context, p Params, rng *rand.Rand, opts ...linearblock.Option) (*linearblock.Code, error) {
	if p.BitDegree < 1 || p.CheckDegree < 1 {
		return nil, fmt.Errorf("degrees must be >=1 but found %v and %v: %w", p.BitDegree, p.CheckDegree, regular.ErrDegreeMismatch)
	}
	if p.NumChecks < p.BitDegree || p.NumChecks%p.BitDegree != 0 {
		return nil, fmt.Errorf("bit degree (%v) must divide the number of checks (%v): %w", p.BitDegree, p.NumChecks, regular.ErrDegreeMismatch)
	}

	K := p.NumChecks / p.BitDegree
	N := K * p.CheckDegree

	// the band every other band permutes
	band := make([][]int, K)
	for i := range band {
		for col := 0; col < p.CheckDegree; col++ {
			band[i] = append(band[i], i*p.CheckDegree+col)
		}
	}

	rows := append(make([][]int, 0, p.NumChecks), band...)
	iter := p.MaxIterations
	for s := 1; s < p.BitDegree; {
		if iter <= 0 {
			return nil, fmt.Errorf("%v of %v bands placed after %v iterations: %w", s, p.BitDegree, p.MaxIterations, ErrNotFound)
		}
		iter--
		logrus.Debugf("Iterations remaining %v", iter)

		candidate := append(append(make([][]int, 0, len(rows)+K), rows...), permuteColumns(band, N, rng)...)
		if p.SmallestCycle > 4 {
			H, err := gf2.NewMatrix(N, candidate)
			if err != nil {
				return nil, err
			}
			smaller, err := linearblock.HasGirthSmallerThan(ctx, H, p.SmallestCycle, p.Threads)
			if err != nil {
				return nil, err
			}
			if smaller {
				continue
			}
		}
		rows = candidate
		s++
	}
	logrus.Debugf("Gallager H Matrix found")

	H, err := gf2.NewMatrix(N, rows)
	if err != nil {
		return nil, err
	}
	tag := fmt.Sprintf("gallager(%v,%v,%v)", p.NumChecks, p.BitDegree, p.CheckDegree)
	return linearblock.FromParityCheck(H, append([]linearblock.Option{linearblock.WithTag(tag)}, opts...)...)
}

//permuteColumns moves column c of band to column perm[c]
func permuteColumns(band [][]int, cols int, rng *rand.Rand) [][]int {
	perm := rng.Perm(cols)
	result := make([][]int, len(band))
	for i, row := range band {
		result[i] = make([]int, len(row))
		for j, c := range row {
			result[i][j] = perm[c]
		}
	}
	return result
}

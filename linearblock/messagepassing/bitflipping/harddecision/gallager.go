package harddecision

import (
	"github.com/nathanhack/lincode/linearblock/gf2"
)

func argMaxInt(values []int) int {
	result := 0
	max := values[0]
	for i := 1; i < len(values); i++ {
		v := values[i]
		if max < v {
			result = i
			max = v
		}
	}
	return result
}

//Gallager flips the bit in the most unsatisfied checks. It keeps no state between words
// and is safe for concurrent use.
type Gallager struct {
	columnCache [][]int
}

//NewGallager caches the checks of every bit of H
func NewGallager(H *gf2.Matrix) *Gallager {
	return &Gallager{columnCache: H.ColumnPositions()}
}

func (g *Gallager) Flip(currentSyndrome gf2.Vector, currentCodeword gf2.Vector) (nextCodeword gf2.Vector, done bool) {
	//first we check if the syndrome was zero
	if currentSyndrome.IsZero() || len(g.columnCache) == 0 {
		return currentCodeword, true
	}

	e_n := g.flippingFunction(currentSyndrome)
	n := argMaxInt(e_n)

	//a bit in as many satisfied as unsatisfied checks stays
	if e_n[n] <= 0 {
		return currentCodeword, true
	}

	nextCodeword, err := currentCodeword.Add(gf2.MustVector(currentCodeword.Len(), n))
	if err != nil {
		return currentCodeword, true
	}
	return nextCodeword, false
}

//flippingFunction is E_n = -sum((1-2*s_m), m ∈ M(n)), unsatisfied minus satisfied checks of bit n
func (g *Gallager) flippingFunction(syndrome gf2.Vector) []int {
	synIndices := syndrome.Positions()
	synIndicesLen := len(synIndices)

	e_n := make([]int, len(g.columnCache))
	for n, indices := range g.columnCache {
		sum := 0
		indicesLen := len(indices)
		for i, j := 0, 0; i < indicesLen && j < synIndicesLen; {
			if indices[i] == synIndices[j] {
				sum++
				i++
				j++
			} else if indices[i] < synIndices[j] {
				i++
			} else {
				j++
			}
		}
		e_n[n] = -indicesLen + 2*sum
	}
	return e_n
}

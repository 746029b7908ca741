package harddecision

import (
	"fmt"

	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
)

//BitFlippingAlg picks the next word from the current syndrome and word, done stops the decoding
type BitFlippingAlg interface {
	Flip(currentSyndrome gf2.Vector, currentCodeword gf2.Vector) (nextCodeword gf2.Vector, done bool)
}

//BitFlipping runs bitFlippingAlg until it is done, the syndrome is zero or maxIter flips were made
func BitFlipping(bitFlippingAlg BitFlippingAlg, H *gf2.Matrix, codeword gf2.Vector, maxIter int) (gf2.Vector, error) {
	if codeword.Len() != H.ColumnCount() {
		return gf2.Vector{}, fmt.Errorf("word of length %v for %v bits: %w", codeword.Len(), H.ColumnCount(), gf2.ErrLengthMismatch)
	}

	result := codeword
	for i := 0; i < maxIter; i++ {
		syndrome, err := H.MultiplyVector(result)
		if err != nil {
			return gf2.Vector{}, err
		}
		if syndrome.IsZero() {
			break
		}

		var done bool
		result, done = bitFlippingAlg.Flip(syndrome, result)
		if done {
			break
		}
	}
	return result, nil
}

//FlipDecoder corrects words of a code with the Gallager flipping rule
type FlipDecoder struct {
	H             *gf2.Matrix
	MaxIterations int
	alg           *Gallager
}

//NewFlipDecoder decodes code making at most maxIter flips per word, maxIter <= 0 allows one flip per bit
func NewFlipDecoder(code *linearblock.Code, maxIter int) *FlipDecoder {
	if maxIter <= 0 {
		maxIter = code.Len()
	}
	H := code.ParityCheckMatrix()
	return &FlipDecoder{
		H:             H,
		MaxIterations: maxIter,
		alg:           NewGallager(H),
	}
}

//Decode returns the corrected word, a word it could not correct is returned with a nonzero syndrome
func (f *FlipDecoder) Decode(word gf2.Vector) (gf2.Vector, error) {
	return BitFlipping(f.alg, f.H, word, f.MaxIterations)
}

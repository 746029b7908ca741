package benchmarking

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
)

// ErrInvalidProbability is returned for a flip probability outside [0,1].
var ErrInvalidProbability = errors.New("benchmarking: probability must be in [0,1]")

//BinarySymmetricChannel flips every bit independently with a fixed probability
type BinarySymmetricChannel struct {
	probability float64
}

//NewBinarySymmetricChannel creates a channel flipping bits with the given probability
func NewBinarySymmetricChannel(probability float64) (BinarySymmetricChannel, error) {
	if !(0 <= probability && probability <= 1) {
		return BinarySymmetricChannel{}, fmt.Errorf("found %v: %w", probability, ErrInvalidProbability)
	}
	return BinarySymmetricChannel{probability: probability}, nil
}

func (c BinarySymmetricChannel) Probability() float64 {
	return c.probability
}

//Sample returns an error pattern of the given length, each bit is one with the channel's probability
func (c BinarySymmetricChannel) Sample(length int, rng *rand.Rand) gf2.Vector {
	positions := make([]int, 0)
	for i := 0; i < length; i++ {
		if rng.Float64() < c.probability {
			positions = append(positions, i)
		}
	}
	return gf2.MustVector(length, positions...)
}

//Send returns the codeword with an error pattern sampled from the channel
func (c BinarySymmetricChannel) Send(codeword gf2.Vector, rng *rand.Rand) gf2.Vector {
	// both have the same length
	received, _ := codeword.Add(c.Sample(codeword.Len(), rng))
	return received
}

// RandomMessage creates a random message of length len.
func RandomMessage(len int, rng *rand.Rand) gf2.Vector {
	positions := make([]int, 0)
	for i := 0; i < len; i++ {
		if rng.Intn(2) == 1 {
			positions = append(positions, i)
		}
	}
	return gf2.MustVector(len, positions...)
}

// RandomCodeword encodes a random message, every codeword of the code is equally likely.
func RandomCodeword(code *linearblock.Code, rng *rand.Rand) (gf2.Vector, error) {
	return code.Encode(RandomMessage(code.NumGenerators(), rng))
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip,len(input)) number of bits,
// a negative count flips nothing.
func RandomFlipBitCount(input gf2.Vector, numberOfBitsToFlip int, rng *rand.Rand) gf2.Vector {
	if numberOfBitsToFlip < 0 {
		numberOfBitsToFlip = 0
	}
	if numberOfBitsToFlip > input.Len() {
		numberOfBitsToFlip = input.Len()
	}
	flip := rng.Perm(input.Len())[:numberOfBitsToFlip]
	output, _ := input.Add(gf2.MustVector(input.Len(), flip...))
	return output
}

// Package gf2 provides immutable vectors and matrices over the two element field.
// Addition is XOR and multiplication is AND. Every operation returns a new value.
package gf2

import (
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"golang.org/x/exp/slices"
)

//Vector is a fixed length bit vector. The zero value is the empty vector of length 0.
type Vector struct {
	length int
	bits   mat.SparseVector
}

//NewVector creates a vector of the given length with the given positions set to one.
// Repeated positions are set once.
func NewVector(length int, positions ...int) (Vector, error) {
	if length < 0 {
		return Vector{}, fmt.Errorf("negative length %v: %w", length, ErrInvalidIndex)
	}
	for _, p := range positions {
		if p < 0 || p >= length {
			return Vector{}, fmt.Errorf("position %v for vector of length %v: %w", p, length, ErrInvalidIndex)
		}
	}

	bits := mat.CSRVec(length)
	for _, p := range positions {
		bits.Set(p, 1)
	}
	return Vector{length: length, bits: bits}, nil
}

//MustVector is like NewVector but panics on an invalid position. Intended for fixed tables.
func MustVector(length int, positions ...int) Vector {
	v, err := NewVector(length, positions...)
	if err != nil {
		panic(err)
	}
	return v
}

//Zeros returns the all zero vector of the given length
func Zeros(length int) Vector {
	return MustVector(length)
}

func fromSparse(bits mat.SparseVector) Vector {
	return Vector{length: bits.Len(), bits: bits}
}

func (v Vector) sparse() mat.SparseVector {
	if v.bits == nil {
		return mat.CSRVec(v.length)
	}
	return v.bits
}

//Len returns the number of bits
func (v Vector) Len() int {
	return v.length
}

//Weight returns the number of bits set to one
func (v Vector) Weight() int {
	if v.bits == nil {
		return 0
	}
	return v.bits.HammingWeight()
}

//IsZero is true when no bit is set
func (v Vector) IsZero() bool {
	return v.Weight() == 0
}

//IsOneAt reports whether position is set
func (v Vector) IsOneAt(position int) (bool, error) {
	if position < 0 || position >= v.length {
		return false, fmt.Errorf("position %v for vector of length %v: %w", position, v.length, ErrInvalidIndex)
	}
	return v.sparse().At(position) == 1, nil
}

//Positions returns the sorted positions of the bits set to one
func (v Vector) Positions() []int {
	if v.bits == nil {
		return []int{}
	}
	positions := append([]int{}, v.bits.NonzeroArray()...)
	slices.Sort(positions)
	return positions
}

//Add returns the bitwise XOR of v and other
func (v Vector) Add(other Vector) (Vector, error) {
	if v.length != other.length {
		return Vector{}, fmt.Errorf("adding vectors of length %v and %v: %w", v.length, other.length, ErrLengthMismatch)
	}
	result := mat.CSRVecCopy(v.sparse())
	result.Add(result, other.sparse())
	return fromSparse(result), nil
}

//Dot returns the parity of the number of positions set in both v and other
func (v Vector) Dot(other Vector) (int, error) {
	if v.length != other.length {
		return 0, fmt.Errorf("dot product of vectors of length %v and %v: %w", v.length, other.length, ErrLengthMismatch)
	}
	return v.sparse().Dot(other.sparse()) % 2, nil
}

//Concat returns v followed by other
func (v Vector) Concat(other Vector) Vector {
	positions := v.Positions()
	for _, p := range other.Positions() {
		positions = append(positions, p+v.length)
	}
	return MustVector(v.length+other.length, positions...)
}

//Equal compares the length and the set positions
func (v Vector) Equal(other Vector) bool {
	return v.length == other.length && slices.Equal(v.Positions(), other.Positions())
}

//String prints the vector as its length and set positions, e.g. [7: 0 1 2]
func (v Vector) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("[%v:", v.length))
	for _, p := range v.Positions() {
		sb.WriteString(fmt.Sprintf(" %v", p))
	}
	sb.WriteString("]")
	return sb.String()
}

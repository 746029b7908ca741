package linearblock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nathanhack/lincode/linearblock/gf2"
	"github.com/sirupsen/logrus"
)

//Code is a binary linear code given by a parity check matrix H, a generator matrix G or both.
// The missing matrix is derived on first use from the null space of the other one and cached.
// The stored matrices are never modified, a Code is safe for concurrent use.
type Code struct {
	tag      string
	threads  int
	progress bool
	length   int

	//deriveMux guards the derived matrices and ranks
	deriveMux   sync.Mutex
	parityCheck *gf2.Matrix
	generator   *gf2.Matrix
	dimension   int // -1 until computed
	checks      int // -1 until computed

	distanceMux sync.Mutex
	distance    int // 0 until computed
}

//New creates a code from a parity check matrix H and/or a generator matrix G, either may be nil but not both.
// When both are given neither is recomputed, use WithConsistencyCheck to verify G*H.T == 0.
func New(H, G *gf2.Matrix, opts ...Option) (*Code, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if H == nil && G == nil {
		return nil, ErrMissingMatrix
	}

	var length int
	switch {
	case H != nil && G != nil:
		if H.ColumnCount() != G.ColumnCount() {
			return nil, fmt.Errorf("parity check matrix has %v columns and generator matrix has %v: %w", H.ColumnCount(), G.ColumnCount(), ErrDimensionMismatch)
		}
		if cfg.check {
			orthogonal, err := G.Orthogonal(H)
			if err != nil {
				return nil, err
			}
			if !orthogonal {
				return nil, fmt.Errorf("G*H.T != 0: %w", ErrInconsistentCode)
			}
		}
		length = H.ColumnCount()
	case H != nil:
		length = H.ColumnCount()
	default:
		length = G.ColumnCount()
	}

	return &Code{
		tag:         cfg.tag,
		threads:     cfg.threads,
		progress:    cfg.progress,
		length:      length,
		parityCheck: H,
		generator:   G,
		dimension:   -1,
		checks:      -1,
	}, nil
}

//FromParityCheck creates a code from its parity check matrix
func FromParityCheck(H *gf2.Matrix, opts ...Option) (*Code, error) {
	if H == nil {
		return nil, ErrMissingMatrix
	}
	return New(H, nil, opts...)
}

//FromGenerator creates a code from its generator matrix
func FromGenerator(G *gf2.Matrix, opts ...Option) (*Code, error) {
	if G == nil {
		return nil, ErrMissingMatrix
	}
	return New(nil, G, opts...)
}

//Derive computes the missing matrix and the ranks of H and G honouring ctx.
// Nothing is cached when ctx ends first, the accessors below derive with a background context.
func (c *Code) Derive(ctx context.Context) error {
	c.deriveMux.Lock()
	defer c.deriveMux.Unlock()

	if _, err := c.dimensionContext(ctx); err != nil {
		return err
	}
	_, err := c.checksContext(ctx)
	return err
}

func (c *Code) parityCheckContext(ctx context.Context) (*gf2.Matrix, error) {
	if c.parityCheck == nil {
		logrus.Debugf("Deriving parity check matrix from %vx%v generator matrix", c.generator.RowCount(), c.length)
		H, err := c.generator.NullSpaceBasisContext(ctx, c.threads)
		if err != nil {
			return nil, err
		}
		c.parityCheck = H
	}
	return c.parityCheck, nil
}

func (c *Code) generatorContext(ctx context.Context) (*gf2.Matrix, error) {
	if c.generator == nil {
		logrus.Debugf("Deriving generator matrix from %vx%v parity check matrix", c.parityCheck.RowCount(), c.length)
		G, err := c.parityCheck.NullSpaceBasisContext(ctx, c.threads)
		if err != nil {
			return nil, err
		}
		c.generator = G
	}
	return c.generator, nil
}

func (c *Code) dimensionContext(ctx context.Context) (int, error) {
	if c.dimension < 0 {
		G, err := c.generatorContext(ctx)
		if err != nil {
			return 0, err
		}
		rank, err := G.RankContext(ctx, c.threads)
		if err != nil {
			return 0, err
		}
		c.dimension = rank
	}
	return c.dimension, nil
}

func (c *Code) checksContext(ctx context.Context) (int, error) {
	if c.checks < 0 {
		H, err := c.parityCheckContext(ctx)
		if err != nil {
			return 0, err
		}
		rank, err := H.RankContext(ctx, c.threads)
		if err != nil {
			return 0, err
		}
		c.checks = rank
	}
	return c.checks, nil
}

//ParityCheckMatrix returns H, deriving it from G when the code was created without it
func (c *Code) ParityCheckMatrix() *gf2.Matrix {
	c.deriveMux.Lock()
	defer c.deriveMux.Unlock()
	// a background context never ends so there is no error to handle
	H, _ := c.parityCheckContext(context.Background())
	return H
}

//GeneratorMatrix returns G, deriving it from H when the code was created without it
func (c *Code) GeneratorMatrix() *gf2.Matrix {
	c.deriveMux.Lock()
	defer c.deriveMux.Unlock()
	G, _ := c.generatorContext(context.Background())
	return G
}

//Tag returns the label given with WithTag
func (c *Code) Tag() string {
	return c.tag
}

//Len is the block length, the number of bits in a codeword
func (c *Code) Len() int {
	return c.length
}

//Dimension is the rank of G
func (c *Code) Dimension() int {
	c.deriveMux.Lock()
	defer c.deriveMux.Unlock()
	d, _ := c.dimensionContext(context.Background())
	return d
}

//NumChecks is the number of linearly independent rows of H
func (c *Code) NumChecks() int {
	c.deriveMux.Lock()
	defer c.deriveMux.Unlock()
	n, _ := c.checksContext(context.Background())
	return n
}

//NumGenerators is the number of stored rows of G, it may exceed Dimension when G has dependent rows
func (c *Code) NumGenerators() int {
	return c.GeneratorMatrix().RowCount()
}

//CodeRate is Dimension/Len
func (c *Code) CodeRate() float64 {
	if c.length == 0 {
		return 0
	}
	return float64(c.Dimension()) / float64(c.length)
}

//SyndromeOf returns H*v
func (c *Code) SyndromeOf(v gf2.Vector) (gf2.Vector, error) {
	if v.Len() != c.length {
		return gf2.Vector{}, fmt.Errorf("vector of length %v for code of length %v: %w", v.Len(), c.length, gf2.ErrLengthMismatch)
	}
	return c.ParityCheckMatrix().MultiplyVector(v)
}

//HasCodeword reports whether v satisfies every parity check
func (c *Code) HasCodeword(v gf2.Vector) (bool, error) {
	syndrome, err := c.SyndromeOf(v)
	if err != nil {
		return false, err
	}
	return syndrome.IsZero(), nil
}

func (c *Code) hasAllCodewords(G *gf2.Matrix) bool {
	orthogonal, err := G.Orthogonal(c.ParityCheckMatrix())
	return err == nil && orthogonal
}

//HasSameCodespace reports whether both codes contain exactly the same codewords, regardless of their matrices
func (c *Code) HasSameCodespace(other *Code) bool {
	if c.length != other.length {
		return false
	}
	return c.hasAllCodewords(other.GeneratorMatrix()) &&
		other.hasAllCodewords(c.GeneratorMatrix()) &&
		c.Dimension() == other.Dimension()
}

//Equal compares the tags and the stored matrices row by row, see HasSameCodespace to compare codewords
func (c *Code) Equal(other *Code) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil || c.length != other.length || c.tag != other.tag {
		return false
	}
	return c.ParityCheckMatrix().Equal(other.ParityCheckMatrix()) &&
		c.GeneratorMatrix().Equal(other.GeneratorMatrix())
}

//Validate tests if G*H.T == 0
func (c *Code) Validate() bool {
	return c.hasAllCodewords(c.GeneratorMatrix())
}

//Encode returns message*G, the message has one bit per generator
func (c *Code) Encode(message gf2.Vector) (gf2.Vector, error) {
	G := c.GeneratorMatrix()
	if message.Len() != G.RowCount() {
		return gf2.Vector{}, fmt.Errorf("message length == %v is required but found %v: %w", G.RowCount(), message.Len(), gf2.ErrLengthMismatch)
	}

	codeword := gf2.Zeros(c.length)
	for _, i := range message.Positions() {
		row, err := G.Row(i)
		if err != nil {
			return gf2.Vector{}, err
		}
		codeword, err = codeword.Add(row)
		if err != nil {
			return gf2.Vector{}, err
		}
	}
	return codeword, nil
}

func (c *Code) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\n")
	if c.tag != "" {
		buf.WriteString(fmt.Sprintf("Tag: %v\n", c.tag))
	}
	buf.WriteString("H:\n")
	buf.WriteString(c.ParityCheckMatrix().String())
	buf.WriteString("G:\n")
	buf.WriteString(c.GeneratorMatrix().String())
	buf.WriteString("}\n")
	return buf.String()
}

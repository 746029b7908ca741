package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nathanhack/lincode/benchmarking"
	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
	"github.com/sirupsen/logrus"
)

// flags shared by the create commands
var (
	Distance bool
	Timeout  time.Duration
	Threads  uint
	Matrix   bool
)

//Summary is what the create commands print about a code
type Summary struct {
	Tag             string
	Length          int
	Dimension       int
	Checks          int
	Generators      int
	Rate            float64
	Girth           int
	MinimalDistance int     `json:",omitempty"`
	DistanceError   string  `json:",omitempty"`
	ParityCheck     [][]int `json:",omitempty"`
}

//SignalContext returns a context canceled on SIGINT or SIGTERM
func SignalContext() (context.Context, context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case sig := <-sigs:
			fmt.Println()
			fmt.Println(sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()
	return ctx, cancel
}

//Summarize computes the summary of code, the minimal distance only when distance is set.
// A timeout <= 0 lets the distance search run until ctx ends.
func Summarize(ctx context.Context, code *linearblock.Code, distance bool, timeout time.Duration, threads int, matrix bool) (Summary, error) {
	if err := code.Derive(ctx); err != nil {
		return Summary{}, err
	}
	H := code.ParityCheckMatrix()
	girth, err := linearblock.Girth(ctx, H, threads)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Tag:        code.Tag(),
		Length:     code.Len(),
		Dimension:  code.Dimension(),
		Checks:     code.NumChecks(),
		Generators: code.NumGenerators(),
		Rate:       code.CodeRate(),
		Girth:      girth,
	}
	if matrix {
		s.ParityCheck = H.RowPositions()
	}

	if distance {
		dctx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			dctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		d, err := code.MinimalDistanceContext(dctx)
		switch {
		case err == nil:
			s.MinimalDistance = d
		case errors.Is(err, linearblock.ErrTimeout), errors.Is(err, linearblock.ErrEmptyCode):
			logrus.Infof("Minimal distance not found: %v", err)
			s.DistanceError = err.Error()
		default:
			return Summary{}, err
		}
	}
	return s, nil
}

//Print writes v as indented JSON to stdout
func Print(v interface{}) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bs))
	return nil
}

//Report prints the summary of code according to the shared create flags
func Report(ctx context.Context, code *linearblock.Code) {
	s, err := Summarize(ctx, code, Distance, Timeout, int(Threads), Matrix)
	if err != nil {
		fmt.Println("Unable to summarize the code: ", err)
		return
	}
	if err := Print(s); err != nil {
		fmt.Println("Unable to serialize the summary: ", err)
	}
}

//SimulationStats are the channel simulation results of one code keyed by error probability
type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Seed     int64
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Seed     int64
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Seed:     s.Seed,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func Md5Sum(H *gf2.Matrix) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(H.String())))
}

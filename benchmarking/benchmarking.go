package benchmarking

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/gf2"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

type Stats struct {
	CodewordError   avgstd.AvgStd // fraction of wrong bits after decoding
	DecodingFailure avgstd.AvgStd // 1 when the decoded word is not the sent codeword
}

func (s Stats) String() string {
	return fmt.Sprintf("{Codeword:%0.02f(+/-%0.02f), Failure:%0.02f(+/-%0.02f)}",
		s.CodewordError.Mean, math.Sqrt(s.CodewordError.SampledVariance()),
		s.DecodingFailure.Mean, math.Sqrt(s.DecodingFailure.SampledVariance()),
	)
}

type Checkpoints func(updatedStats Stats)

//Decoder returns its best guess of the codeword sent given the received word
type Decoder interface {
	Decode(received gf2.Vector) (gf2.Vector, error)
}

type trialResult struct {
	codewordError float64
	failure       float64
}

//BenchmarkBSC sends trials random codewords of code through channel and decodes them.
// Trial i draws from its own source seeded with seed+i so the stats do not depend on threads.
func BenchmarkBSC(ctx context.Context,
	code *linearblock.Code,
	decoder Decoder,
	channel BinarySymmetricChannel,
	trials, threads int,
	seed int64,
	checkpoints Checkpoints,
	showProgress bool) (Stats, error) {
	return BenchmarkBSCContinueStats(ctx, code, decoder, channel, trials, threads, seed, checkpoints, Stats{}, showProgress)
}

//BenchmarkBSCContinueStats is BenchmarkBSC resuming after the trials already counted in previousStats
func BenchmarkBSCContinueStats(ctx context.Context,
	code *linearblock.Code,
	decoder Decoder,
	channel BinarySymmetricChannel,
	trials, threads int,
	seed int64,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) (Stats, error) {
	first := previousStats.CodewordError.Count
	trialsToRun := trials - first
	if trialsToRun <= 0 {
		return previousStats, nil
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	results := make([]trialResult, trialsToRun)
	var trialErr error
	errMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		rng := rand.New(rand.NewSource(seed + int64(i)))

		codeword, err := RandomCodeword(code, rng)
		if err == nil {
			var decoded gf2.Vector
			decoded, err = decoder.Decode(channel.Send(codeword, rng))
			if err == nil {
				var diff gf2.Vector
				diff, err = decoded.Add(codeword)
				if err == nil {
					results[i-first].codewordError = float64(diff.Weight()) / float64(code.Len())
					if !diff.IsZero() {
						results[i-first].failure = 1
					}
					return
				}
			}
		}

		errMux.Lock()
		if trialErr == nil {
			trialErr = fmt.Errorf("trial %v: %w", i, err)
		}
		errMux.Unlock()
	}

	pool := threadpool.New(ctx, threads)
	for i := first; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}

	if err := ctx.Err(); err != nil {
		return previousStats, err
	}
	if trialErr != nil {
		return previousStats, trialErr
	}

	for _, r := range results {
		previousStats.CodewordError.Update(r.codewordError)
		previousStats.DecodingFailure.Update(r.failure)
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
	}
	logrus.Debugf("BSC(%v) after %v trials: %v", channel.Probability(), trials, previousStats)
	return previousStats, nil
}

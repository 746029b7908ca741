package bsc

import (
	"fmt"
	"reflect"
	"time"

	"github.com/nathanhack/lincode/benchmarking"
	"github.com/nathanhack/lincode/cmd/internal/tools"
	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/ldpc/regular"
	"github.com/nathanhack/lincode/linearblock/messagepassing/bitflipping/harddecision"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Bits             uint
	Checks           uint
	BitDegree        uint
	CheckDegree      uint
	Seed             int64
	Trials           uint
	ErrorProbability []float64
	MaxIter          uint
	Progress         bool
)

func typeInfo() string {
	t := reflect.TypeOf(harddecision.Gallager{})
	return fmt.Sprintf("BSC:%v/%v", t.PkgPath(), t.Name())
}

var BscRun = func(cmd *cobra.Command, args []string) {
	ctx, cancel := tools.SignalContext()
	defer cancel()

	seed := Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := regular.Params{
		NumBits:     int(Bits),
		NumChecks:   int(Checks),
		BitDegree:   int(BitDegree),
		CheckDegree: int(CheckDegree),
	}
	code, err := regular.New(ctx, p, seed, linearblock.WithThreads(int(tools.Threads)))
	if err != nil {
		fmt.Println("Unable to create regular LDPC: ", err)
		return
	}
	decoder := harddecision.NewFlipDecoder(code, int(MaxIter))

	data := &tools.SimulationStats{
		TypeInfo: typeInfo(),
		ECCInfo:  tools.Md5Sum(code.ParityCheckMatrix()),
		Seed:     seed,
		Stats:    make(map[float64]benchmarking.Stats),
	}

	for _, probability := range ErrorProbability {
		channel, err := benchmarking.NewBinarySymmetricChannel(probability)
		if err != nil {
			fmt.Println(err)
			return
		}

		stats, err := benchmarking.BenchmarkBSC(ctx, code, decoder, channel, int(Trials), int(tools.Threads), seed, nil, Progress)
		if err != nil {
			fmt.Println("Simulation stopped: ", err)
			break
		}
		logrus.Infof("p=%v %v", probability, stats)
		data.Stats[probability] = stats
	}

	if err := tools.Print(data); err != nil {
		fmt.Println("Unable to serialize the results: ", err)
	}
}

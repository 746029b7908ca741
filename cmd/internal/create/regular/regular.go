package regular

import (
	"fmt"
	"time"

	"github.com/nathanhack/lincode/cmd/internal/tools"
	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/ldpc/regular"
	"github.com/spf13/cobra"
)

var (
	Bits        uint
	Checks      uint
	BitDegree   uint
	CheckDegree uint
	Retries     uint
	Seed        int64
)

//Params returns the flags as generator parameters
func Params() regular.Params {
	return regular.Params{
		NumBits:     int(Bits),
		NumChecks:   int(Checks),
		BitDegree:   int(BitDegree),
		CheckDegree: int(CheckDegree),
		Retries:     int(Retries),
	}
}

//ResolveSeed returns Seed, or the current time when it is 0 so every run differs
func ResolveSeed() int64 {
	if Seed == 0 {
		return time.Now().UnixNano()
	}
	return Seed
}

var RegularRun = func(cmd *cobra.Command, args []string) {
	ctx, cancel := tools.SignalContext()
	defer cancel()

	code, err := regular.New(ctx, Params(), ResolveSeed(), linearblock.WithThreads(int(tools.Threads)))
	if err != nil {
		fmt.Println("Unable to create regular LDPC: ", err)
		return
	}
	tools.Report(ctx, code)
}

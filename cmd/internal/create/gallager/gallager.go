package gallager

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nathanhack/lincode/cmd/internal/tools"
	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/ldpc/gallager"
	"github.com/spf13/cobra"
)

var (
	Checks   uint
	Wc       uint
	Wr       uint
	Smallest uint
	Iter     uint
	Seed     int64
)

var GallagerRun = func(cmd *cobra.Command, args []string) {
	ctx, cancel := tools.SignalContext()
	defer cancel()

	seed := Seed
	if seed == 0 {
		//we seed the randomizer so we get something different every time
		seed = time.Now().UnixNano()
	}

	p := gallager.Params{
		NumChecks:     int(Checks),
		BitDegree:     int(Wc),
		CheckDegree:   int(Wr),
		SmallestCycle: int(Smallest),
		MaxIterations: int(Iter),
		Threads:       int(tools.Threads),
	}
	code, err := gallager.New(ctx, p, rand.New(rand.NewSource(seed)), linearblock.WithThreads(int(tools.Threads)))
	if err != nil {
		fmt.Println("Unable to create gallager LDPC: ", err)
		return
	}
	tools.Report(ctx, code)
}

package hamming

import (
	"fmt"

	"github.com/nathanhack/lincode/cmd/internal/tools"
	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/hamming"
	"github.com/spf13/cobra"
)

var (
	ParityBits uint
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	ctx, cancel := tools.SignalContext()
	defer cancel()

	code, err := hamming.New(int(ParityBits), linearblock.WithThreads(int(tools.Threads)))
	if err != nil {
		fmt.Println("Unable to create hamming code: ", err)
		return
	}
	tools.Report(ctx, code)
}

package repetition

import (
	"fmt"

	"github.com/nathanhack/lincode/cmd/internal/tools"
	"github.com/nathanhack/lincode/linearblock"
	"github.com/nathanhack/lincode/linearblock/repetition"
	"github.com/spf13/cobra"
)

var (
	Length uint
)

var RepetitionRun = func(cmd *cobra.Command, args []string) {
	ctx, cancel := tools.SignalContext()
	defer cancel()

	code, err := repetition.New(int(Length), linearblock.WithThreads(int(tools.Threads)))
	if err != nil {
		fmt.Println("Unable to create repetition code: ", err)
		return
	}
	tools.Report(ctx, code)
}

package options

import (
	"github.com/spf13/cobra"
)

// BoardOptions selects which board a command targets.
type BoardOptions struct {
	Board string
	All   bool
}

// AddBoardArgs registers the board selection flags.
func AddBoardArgs(cmd *cobra.Command, bo *BoardOptions) {
	cmd.Flags().StringVarP(&bo.Board, "board", "b", "batch",
		"Board to target.")
	cmd.Flags().BoolVarP(&bo.All, "all", "a", false,
		"Target every board.")
}

// IDOptions toggles raw id output.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs registers the show-id flag.
func AddShowIDArgs(cmd *cobra.Command, io *IDOptions) {
	cmd.Flags().BoolVarP(&io.ShowID, "id", "i", false,
		"Show post ids.")
}

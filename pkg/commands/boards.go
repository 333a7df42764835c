package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/unihub/pkg/runner/boards"
)

func addBoards(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "list the community boards",
		Example: `
unihub boards
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := boards.Boards{}
			return b.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

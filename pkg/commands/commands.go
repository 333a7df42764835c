package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

// New builds the unihub root command.
func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "unihub",
		Short: base.Wrap80("One campus, one terminal: community boards, marketplace, counselling, matching, messages and profile stitched into a single UI."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands attaches every subcommand to the root.
func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addBoards(topLevel)
	addPosts(topLevel)
	addVersion(topLevel)
}

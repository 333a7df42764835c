package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/commands/options"
	"tableflip.dev/unihub/pkg/config"
	"tableflip.dev/unihub/pkg/mockfeed"
	"tableflip.dev/unihub/pkg/runner/posts"
	"tableflip.dev/unihub/pkg/store"
)

func addPosts(topLevel *cobra.Command) {
	bo := &options.BoardOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "print the seeded posts for a board",
		Example: `
unihub posts
unihub posts --board music
unihub posts --all --id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			mf := mockfeed.New()
			mf.PerBoard = cfg.SeedPerBoard

			p := posts.Posts{
				ShowID: io.ShowID,
				Board:  board.ID(bo.Board),
				All:    bo.All,
				Store:  store.New(mf),
			}
			return p.Do(context.Background())
		},
	}

	options.AddBoardArgs(cmd, bo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

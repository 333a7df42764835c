package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/unihub/pkg/config"
	"tableflip.dev/unihub/pkg/logging"
	"tableflip.dev/unihub/pkg/mockfeed"
	"tableflip.dev/unihub/pkg/runner/ui"
	"tableflip.dev/unihub/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the composed terminal user interface",
		Example: `
unihub ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogPath, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			feed := mockfeed.New()
			feed.PerBoard = cfg.SeedPerBoard
			s := store.New(feed, store.WithLogger(log))

			i := ui.UI{Store: s, Log: log, Mouse: cfg.Mouse}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

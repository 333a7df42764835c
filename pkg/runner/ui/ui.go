package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/unihub/pkg/store"
	"tableflip.dev/unihub/pkg/tui/host"
)

// UI runs the composed terminal application.
type UI struct {
	Store *store.Store
	Log   *zap.Logger
	Mouse bool
}

// Do launches the Bubble Tea program and blocks until exit.
func (u *UI) Do(ctx context.Context) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if u.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(host.New(u.Store, u.Log), opts...)
	_, err := p.Run()
	return err
}

package boards

import (
	"context"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/printers"
)

// Boards lists the community board catalogue.
type Boards struct{}

// Do prints every board.
func (b *Boards) Do(_ context.Context) error {
	pp := &printers.PrettyPrint{}
	pp.Boards(board.All())
	return nil
}

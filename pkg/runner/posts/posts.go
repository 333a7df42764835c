package posts

import (
	"context"
	"fmt"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/printers"
	"tableflip.dev/unihub/pkg/store"
)

// Posts prints the seeded posts for one board, or for all boards.
type Posts struct {
	ShowID bool
	Board  board.ID
	All    bool
	Store  *store.Store
}

// Do prints the requested boards' posts.
func (p *Posts) Do(_ context.Context) error {
	pp := &printers.PrettyPrint{ShowID: p.ShowID}
	if p.All {
		for _, info := range board.All() {
			pp.Posts(info, p.Store.Posts(info.ID))
		}
		return nil
	}
	info, ok := board.Lookup(p.Board)
	if !ok {
		return fmt.Errorf("posts: unknown board %q", p.Board)
	}
	pp.Posts(info, p.Store.Posts(info.ID))
	return nil
}

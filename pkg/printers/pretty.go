package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/post"
)

// PrettyPrint renders boards and posts for the non-TUI commands.
type PrettyPrint struct {
	ShowID bool
}

// Boards prints the board catalogue as a table.
func (pp *PrettyPrint) Boards(infos []board.Info) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println("COMMUNITY BOARDS")

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, info := range infos {
		gate := ""
		if info.Gate != "" {
			gate = fmt.Sprintf("(%s only)", info.Gate)
		}
		tbl.AddRow(string(info.ID), info.Title, info.Subtitle, gate)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Posts prints a board's feed, newest first.
func (pp *PrettyPrint) Posts(info board.Info, posts []*post.Post) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(info.Title)
	_, _ = c.Printf(" - %d", len(posts))
	switch len(posts) {
	case 1:
		_, _ = c.Println(" post")
	default:
		_, _ = c.Println(" posts")
	}

	if len(posts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	body := color.New()
	for _, p := range posts {
		if pp.ShowID {
			_, _ = y.Printf("%-24s", p.ID)
		}
		mark := " "
		if p.IsBookmarked {
			mark = "★"
		}
		_, _ = body.Printf("%s %s — %s %s\n", mark, p.Title, p.Author, p.Timestamp)
		if counts := reactionSummary(p); counts != "" {
			_, _ = c.Printf("   %s\n", counts)
		}
	}
	_, _ = body.Println("")
}

func reactionSummary(p *post.Post) string {
	parts := make([]string, 0, 5)
	for _, r := range post.Reactions() {
		if n := p.Reactions[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", r.Symbol(), n))
		}
	}
	return strings.Join(parts, "  ")
}

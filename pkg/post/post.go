package post

import (
	"fmt"
	"time"

	"tableflip.dev/unihub/pkg/board"
)

const (
	// DefaultBatch tags posts created without a batch classification.
	DefaultBatch = "N/A"

	adminAuthor     = "Admin"
	adminAvatar     = "📢"
	anonymousAuthor = "Anonymous"
	anonymousAvatar = "🌟"
)

// Post is a single board item.
type Post struct {
	ID           string
	Author       string
	Avatar       string
	Title        string
	Content      string
	Images       []string
	Timestamp    string
	Batch        string
	Reactions    map[Reaction]int
	Comments     int
	IsBookmarked bool

	// UserReaction is the reaction currently selected by the viewer,
	// nil when none is selected.
	UserReaction *Reaction
}

// Draft is the user-submitted part of a new post.
type Draft struct {
	Title   string
	Content string
	Batch   string
	Images  []string
}

// New constructs a post for the given board at the given time. Posts
// on the announcements board carry the Admin author sentinel, all
// others are anonymous.
func New(boardID board.ID, d Draft, now time.Time) *Post {
	author, avatar := anonymousAuthor, anonymousAvatar
	if boardID == board.Announcements {
		author, avatar = adminAuthor, adminAvatar
	}
	batch := d.Batch
	if batch == "" {
		batch = DefaultBatch
	}
	return &Post{
		ID:        fmt.Sprintf("%s-%d", boardID, now.UnixMilli()),
		Author:    author,
		Avatar:    avatar,
		Title:     d.Title,
		Content:   d.Content,
		Images:    d.Images,
		Timestamp: FormatTimestamp(now),
		Batch:     batch,
		Reactions: EmptyReactions(),
	}
}

// EmptyReactions returns a zeroed count for every reaction kind.
func EmptyReactions() map[Reaction]int {
	m := make(map[Reaction]int, len(reactionGlyphs))
	for _, r := range Reactions() {
		m[r] = 0
	}
	return m
}

// FormatTimestamp renders the display timestamp, e.g. "2026.09.01 14:05".
func FormatTimestamp(t time.Time) string {
	return t.Format("2006.01.02 15:04")
}

// ShareText is the line placed on the clipboard when a post is shared.
func (p *Post) ShareText() string {
	return fmt.Sprintf("Check out this post: %q by %s", p.Title, p.Author)
}

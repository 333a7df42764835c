// Package store owns the canonical board→posts mapping and the
// bookmark view over it. All state is in-memory and single-session;
// mutations are serialized by the UI's single-threaded dispatch.
package store

import (
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/post"
)

// Provider supplies the initial ordered post sequence for each board
// at startup.
type Provider interface {
	Posts(id board.ID) []*post.Post
}

// Store is the single source of truth for all boards' posts and the
// bookmark set. Lookups by unknown post id are silent no-ops: a stale
// reference from a lingering overlay must never crash the session.
type Store struct {
	boards    map[board.ID][]*post.Post
	bookmarks []*post.Post

	log *zap.Logger
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a store seeded from the provider. A nil provider yields
// empty boards.
func New(p Provider, opts ...Option) *Store {
	s := &Store{
		boards: make(map[board.ID][]*post.Post, len(board.All())),
		log:    zap.NewNop(),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	for _, info := range board.All() {
		var seeded []*post.Post
		if p != nil {
			seeded = p.Posts(info.ID)
		}
		s.boards[info.ID] = seeded
		for _, pp := range seeded {
			if pp.IsBookmarked {
				s.bookmarks = append(s.bookmarks, pp)
			}
		}
	}
	return s
}

// Posts returns the board's posts, newest first.
func (s *Store) Posts(id board.ID) []*post.Post {
	return s.boards[id]
}

// Bookmarks returns the cross-board bookmark set in bookmark order.
func (s *Store) Bookmarks() []*post.Post {
	return s.bookmarks
}

// Find locates a post by id across all boards, nil when absent.
func (s *Store) Find(postID string) *post.Post {
	for _, posts := range s.boards {
		for _, p := range posts {
			if p.ID == postID {
				return p
			}
		}
	}
	return nil
}

// CreatePost prepends a new post to the named board and returns it.
// Unknown board ids are rejected with a nil result; empty titles and
// content are accepted, form validation lives in the UI.
func (s *Store) CreatePost(id board.ID, d post.Draft) *post.Post {
	if !board.Valid(id) {
		return nil
	}
	p := post.New(id, d, s.now())
	s.boards[id] = append([]*post.Post{p}, s.boards[id]...)
	s.log.Info("post created",
		zap.String("post", p.ID),
		zap.String("board", string(id)))
	return p
}

// SetReaction applies toggle semantics for the viewer's reaction on a
// post: selecting the current reaction clears it, selecting another
// moves the single slot, keeping every count non-negative. Board and
// bookmark entries share identity, so both views observe the change.
func (s *Store) SetReaction(postID string, r post.Reaction) {
	p := s.Find(postID)
	if p == nil {
		return
	}
	if p.UserReaction != nil && *p.UserReaction == r {
		p.Reactions[r]--
		p.UserReaction = nil
		return
	}
	if p.UserReaction != nil {
		p.Reactions[*p.UserReaction]--
	}
	p.Reactions[r]++
	selected := r
	p.UserReaction = &selected
}

// ToggleBookmark flips the post's bookmark flag and keeps the bookmark
// set in sync: false→true appends, true→false removes by identity.
func (s *Store) ToggleBookmark(postID string) {
	p := s.Find(postID)
	if p == nil {
		return
	}
	p.IsBookmarked = !p.IsBookmarked
	if p.IsBookmarked {
		s.bookmarks = append(s.bookmarks, p)
		return
	}
	s.removeBookmark(postID)
}

// DeletePost removes the post from its owning board and from the
// bookmark set unconditionally.
func (s *Store) DeletePost(postID string) {
	for id, posts := range s.boards {
		kept := posts[:0]
		for _, p := range posts {
			if p.ID != postID {
				kept = append(kept, p)
			}
		}
		s.boards[id] = kept
	}
	s.removeBookmark(postID)
}

// Report acknowledges a moderation report. It mutates nothing; the
// log line is the contract point for a future moderation pipeline.
func (s *Store) Report(postID, reason string) {
	s.log.Info("post reported",
		zap.String("post", postID),
		zap.String("reason", reason))
}

// CopyShareText places the post's share line on the system clipboard.
func (s *Store) CopyShareText(p *post.Post) error {
	if p == nil {
		return nil
	}
	return clipboard.WriteAll(p.ShareText())
}

func (s *Store) removeBookmark(postID string) {
	kept := s.bookmarks[:0]
	for _, p := range s.bookmarks {
		if p.ID != postID {
			kept = append(kept, p)
		}
	}
	s.bookmarks = kept
}

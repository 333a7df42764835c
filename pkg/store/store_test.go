package store

import (
	"testing"
	"time"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/post"
)

type fakeProvider struct {
	posts map[board.ID][]*post.Post
}

func (f *fakeProvider) Posts(id board.ID) []*post.Post {
	return f.posts[id]
}

func seededStore(t *testing.T) *Store {
	t.Helper()
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	mk := func(id board.ID, title string, offset int) *post.Post {
		p := post.New(id, post.Draft{Title: title, Content: "seed"}, now.Add(time.Duration(offset)*time.Minute))
		return p
	}
	fp := &fakeProvider{posts: map[board.ID][]*post.Post{
		board.Batch: {
			mk(board.Batch, "SECOND", 2),
			mk(board.Batch, "FIRST", 1),
		},
		board.Music: {
			mk(board.Music, "SONG", 3),
		},
	}}
	return New(fp, WithClock(func() time.Time { return now.Add(time.Hour) }))
}

func TestCreatePostPrependsWithDefaults(t *testing.T) {
	s := seededStore(t)

	before := len(s.Posts(board.Batch))
	p := s.CreatePost(board.Batch, post.Draft{Title: "Hi", Content: "Test"})
	if p == nil {
		t.Fatalf("expected created post")
	}

	posts := s.Posts(board.Batch)
	if len(posts) != before+1 {
		t.Fatalf("expected board to grow by one, got %d -> %d", before, len(posts))
	}
	if posts[0] != p {
		t.Fatalf("expected new post first")
	}
	if p.Author != "Anonymous" {
		t.Fatalf("expected anonymous author, got %q", p.Author)
	}
	if p.Batch != post.DefaultBatch {
		t.Fatalf("expected %q batch default, got %q", post.DefaultBatch, p.Batch)
	}
	if p.UserReaction != nil {
		t.Fatalf("expected no user reaction on new post")
	}
	for _, r := range post.Reactions() {
		if p.Reactions[r] != 0 {
			t.Fatalf("expected zero %s count, got %d", r, p.Reactions[r])
		}
	}
}

func TestCreatePostAnnouncementsUsesAdminSentinel(t *testing.T) {
	s := seededStore(t)
	p := s.CreatePost(board.Announcements, post.Draft{Title: "NOTICE"})
	if p.Author != "Admin" {
		t.Fatalf("expected Admin author on announcements, got %q", p.Author)
	}
}

func TestCreatePostRejectsUnknownBoard(t *testing.T) {
	s := seededStore(t)
	if p := s.CreatePost(board.ID("nope"), post.Draft{Title: "x"}); p != nil {
		t.Fatalf("expected nil for unknown board, got %v", p)
	}
}

func TestSetReactionTogglesAndStaysNonNegative(t *testing.T) {
	s := seededStore(t)
	p := s.Posts(board.Batch)[0]

	s.SetReaction(p.ID, post.Heart)
	if p.Reactions[post.Heart] != 1 {
		t.Fatalf("expected heart count 1, got %d", p.Reactions[post.Heart])
	}
	if p.UserReaction == nil || *p.UserReaction != post.Heart {
		t.Fatalf("expected heart selected")
	}

	// Selecting the same kind again restores the pre-reaction state.
	s.SetReaction(p.ID, post.Heart)
	if p.Reactions[post.Heart] != 0 {
		t.Fatalf("expected heart count back to 0, got %d", p.Reactions[post.Heart])
	}
	if p.UserReaction != nil {
		t.Fatalf("expected no selection after round trip")
	}

	for _, r := range post.Reactions() {
		if p.Reactions[r] < 0 {
			t.Fatalf("negative count for %s", r)
		}
	}
}

func TestSetReactionMovesTheSingleSlot(t *testing.T) {
	s := seededStore(t)
	p := s.Posts(board.Batch)[0]

	s.SetReaction(p.ID, post.ThumbsUp)
	s.SetReaction(p.ID, post.Cheer)

	if p.Reactions[post.ThumbsUp] != 0 {
		t.Fatalf("expected thumbs up released, got %d", p.Reactions[post.ThumbsUp])
	}
	if p.Reactions[post.Cheer] != 1 {
		t.Fatalf("expected cheer count 1, got %d", p.Reactions[post.Cheer])
	}
	if p.UserReaction == nil || *p.UserReaction != post.Cheer {
		t.Fatalf("expected cheer selected")
	}
}

func TestSetReactionUnknownIDIsNoOp(t *testing.T) {
	s := seededStore(t)
	s.SetReaction("missing-1", post.Heart) // must not panic
}

func TestBookmarkSetMirrorsFlag(t *testing.T) {
	s := seededStore(t)
	p := s.Posts(board.Music)[0]

	s.ToggleBookmark(p.ID)
	if !p.IsBookmarked {
		t.Fatalf("expected bookmark flag set")
	}
	if got := len(s.Bookmarks()); got != 1 {
		t.Fatalf("expected one bookmark, got %d", got)
	}
	if s.Bookmarks()[0].ID != p.ID {
		t.Fatalf("expected bookmark identity to match post")
	}

	s.ToggleBookmark(p.ID)
	if p.IsBookmarked {
		t.Fatalf("expected bookmark flag cleared")
	}
	if got := len(s.Bookmarks()); got != 0 {
		t.Fatalf("expected empty bookmark set, got %d", got)
	}
}

func TestReactionVisibleThroughBookmarkView(t *testing.T) {
	s := seededStore(t)
	p := s.Posts(board.Batch)[0]

	s.ToggleBookmark(p.ID)
	s.SetReaction(p.ID, post.Confused)

	marked := s.Bookmarks()[0]
	if marked.Reactions[post.Confused] != 1 {
		t.Fatalf("expected bookmark copy to reflect reaction, got %d", marked.Reactions[post.Confused])
	}

	s.SetReaction(p.ID, post.Confused)
	if marked.Reactions[post.Confused] != 0 {
		t.Fatalf("expected bookmark copy back to 0, got %d", marked.Reactions[post.Confused])
	}
}

func TestDeletePostRemovesEverywhere(t *testing.T) {
	s := seededStore(t)
	p := s.Posts(board.Batch)[0]
	s.ToggleBookmark(p.ID)

	s.DeletePost(p.ID)

	for _, q := range s.Posts(board.Batch) {
		if q.ID == p.ID {
			t.Fatalf("post still on board after delete")
		}
	}
	if len(s.Bookmarks()) != 0 {
		t.Fatalf("post still bookmarked after delete")
	}

	// Subsequent mutations on the dead id are no-ops.
	s.SetReaction(p.ID, post.Heart)
	s.ToggleBookmark(p.ID)
	if len(s.Bookmarks()) != 0 {
		t.Fatalf("dead id resurrected a bookmark")
	}
}

// Full lifecycle: create, react, bookmark, unreact.
func TestCreateReactBookmarkRoundTrip(t *testing.T) {
	s := seededStore(t)

	p := s.CreatePost(board.Batch, post.Draft{Title: "Hi", Content: "Test"})
	if s.Posts(board.Batch)[0] != p {
		t.Fatalf("expected new post first on board")
	}

	s.SetReaction(p.ID, post.Heart)
	if p.Reactions[post.Heart] != 1 || p.UserReaction == nil || *p.UserReaction != post.Heart {
		t.Fatalf("expected heart=1 selected, got %d", p.Reactions[post.Heart])
	}

	before := len(s.Bookmarks())
	s.ToggleBookmark(p.ID)
	if len(s.Bookmarks()) != before+1 {
		t.Fatalf("expected bookmark set to grow by one")
	}

	s.SetReaction(p.ID, post.Heart)
	if p.Reactions[post.Heart] != 0 || p.UserReaction != nil {
		t.Fatalf("expected heart cleared")
	}
	for _, marked := range s.Bookmarks() {
		if marked.ID == p.ID && marked.Reactions[post.Heart] != 0 {
			t.Fatalf("bookmark entry diverged: heart=%d", marked.Reactions[post.Heart])
		}
	}
}

func TestSeededBookmarksEnterTheSet(t *testing.T) {
	now := time.Now()
	p := post.New(board.Music, post.Draft{Title: "KEPT"}, now)
	p.IsBookmarked = true
	fp := &fakeProvider{posts: map[board.ID][]*post.Post{board.Music: {p}}}

	s := New(fp)
	if len(s.Bookmarks()) != 1 {
		t.Fatalf("expected pre-bookmarked seed in the set, got %d", len(s.Bookmarks()))
	}
}

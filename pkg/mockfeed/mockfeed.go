// Package mockfeed seeds the store with deterministic session content.
package mockfeed

import (
	"fmt"
	"time"

	"tableflip.dev/unihub/pkg/board"
	"tableflip.dev/unihub/pkg/post"
)

// Feed produces a fixed number of mock posts per board.
type Feed struct {
	PerBoard int
	Base     time.Time
}

// New returns a feed anchored at now, five posts per board.
func New() *Feed {
	return &Feed{PerBoard: 5, Base: time.Now()}
}

var topics = map[board.ID][]struct{ title, content string }{
	board.Batch: {
		{"STUDY GROUP TONIGHT", "ANYONE JOINING THE LIBRARY SESSION AT 8PM?"},
		{"ASSIGNMENT 3 HELP", "STUCK ON QUESTION 2, TIPS APPRECIATED"},
		{"EXAM SCHEDULE OUT", "CHECK THE PORTAL, FINALS START NEXT MONTH"},
		{"CLASS PHOTO DAY", "WEAR THE BATCH SHIRT ON FRIDAY"},
		{"NOTES EXCHANGE", "TRADING WEEK 5 NOTES FOR WEEK 7"},
	},
	board.Announcements: {
		{"LIBRARY EXTENDED HOURS", "OPEN UNTIL MIDNIGHT DURING EXAM SEASON"},
		{"SPRING FESTIVAL MEETING", "VOLUNTEERS GATHER AT THE MAIN HALL"},
		{"CAFETERIA MENU UPDATE", "NEW HALAL AND VEGETARIAN OPTIONS"},
		{"PARKING LOT CLOSURE", "LOT B CLOSED FOR RESURFACING THIS WEEK"},
		{"SCHOLARSHIP DEADLINE", "APPLICATIONS CLOSE END OF MONTH"},
	},
}

var fallback = []struct{ title, content string }{
	{"WELCOME TO THE BOARD", "INTRODUCE YOURSELF BELOW"},
	{"WEEKLY DISCUSSION", "WHAT IS EVERYONE INTO THIS WEEK?"},
	{"RECOMMENDATIONS WANTED", "DROP YOUR FAVOURITES IN THE COMMENTS"},
	{"MEETUP INTEREST CHECK", "WOULD ANYONE JOIN AN ON-CAMPUS MEETUP?"},
	{"UNPOPULAR OPINIONS", "SHARE YOURS, KEEP IT FRIENDLY"},
}

// Posts implements store.Provider. Posts are newest first, spaced an
// hour apart so ids stay unique and ordering is stable.
func (f *Feed) Posts(id board.ID) []*post.Post {
	entries, ok := topics[id]
	if !ok {
		entries = fallback
	}
	n := f.PerBoard
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]*post.Post, 0, n)
	for i := 0; i < n; i++ {
		created := f.Base.Add(-time.Duration(i+1) * time.Hour)
		p := post.New(id, post.Draft{
			Title:   entries[i].title,
			Content: entries[i].content,
		}, created)
		// Keep seeded ids stable per board regardless of clock skew.
		p.ID = fmt.Sprintf("%s-%d", id, i+1)
		p.Comments = (i * 3) % 7
		out = append(out, p)
	}
	return out
}

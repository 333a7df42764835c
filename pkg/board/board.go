package board

import (
	"tableflip.dev/unihub/pkg/identity"
)

// ID names one of the fixed community boards.
type ID string

const (
	Batch         ID = "batch"
	Major         ID = "major"
	Fashion       ID = "fashion"
	Religion      ID = "religion"
	Music         ID = "music"
	Movie         ID = "movie"
	Sports        ID = "sports"
	Mens          ID = "mens"
	Womens        ID = "womens"
	Announcements ID = "announcements"
)

// Info carries the display metadata for a board.
type Info struct {
	ID         ID
	Title      string
	Subtitle   string
	Categories []string

	// Gate is the gender required to enter the board, or Unspecified
	// when the board is open to everyone.
	Gate identity.Gender
}

var catalog = []Info{
	{ID: Batch, Title: "BATCH", Subtitle: "CLASS DISCUSSIONS",
		Categories: []string{"ACADEMIC", "SOCIAL", "STUDY GROUP", "ASSIGNMENTS", "EXAMS"}},
	{ID: Major, Title: "MAJOR", Subtitle: "ACADEMIC TOPICS",
		Categories: []string{"COMPUTER SCIENCE", "BUSINESS", "ENGINEERING", "ARTS", "SCIENCE"}},
	{ID: Fashion, Title: "FASHION", Subtitle: "STYLE & TRENDS",
		Categories: []string{"STREETWEAR", "FORMAL", "ACCESSORIES", "BRANDS", "TRENDS"}},
	{ID: Religion, Title: "RELIGION", Subtitle: "FAITH & VALUES",
		Categories: []string{"ISLAM", "CHRISTIANITY", "BUDDHISM", "HINDUISM", "INTERFAITH"}},
	{ID: Music, Title: "MUSIC", Subtitle: "BEATS & LYRICS",
		Categories: []string{"POP", "ROCK", "JAZZ", "CLASSICAL", "LOCAL"}},
	{ID: Movie, Title: "MOVIE", Subtitle: "FILMS & SERIES",
		Categories: []string{"ACTION", "COMEDY", "DRAMA", "HORROR", "DOCUMENTARY"}},
	{ID: Sports, Title: "SPORTS", Subtitle: "GAMES & FITNESS",
		Categories: []string{"FOOTBALL", "BASKETBALL", "TENNIS", "SWIMMING", "FITNESS"}},
	{ID: Mens, Title: "MENS", Subtitle: "GUYS ONLY", Gate: identity.Male,
		Categories: []string{"LIFESTYLE", "SPORTS", "CAREER", "RELATIONSHIPS", "HEALTH"}},
	{ID: Womens, Title: "WOMENS", Subtitle: "GIRLS ONLY", Gate: identity.Female,
		Categories: []string{"LIFESTYLE", "BEAUTY", "CAREER", "RELATIONSHIPS", "HEALTH"}},
	{ID: Announcements, Title: "ANNOUNCEMENTS", Subtitle: "OFFICIAL UPDATES",
		Categories: []string{"ACADEMIC", "EVENTS", "FACILITIES", "GENERAL", "URGENT"}},
}

// All returns every board in home-screen order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the Info for id.
func Lookup(id ID) (Info, bool) {
	for _, info := range catalog {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// Valid reports whether id is one of the fixed boards.
func Valid(id ID) bool {
	_, ok := Lookup(id)
	return ok
}

// Accessible reports whether a viewer with the given gender may enter
// the board. Unknown boards are not accessible.
func Accessible(id ID, g identity.Gender) bool {
	info, ok := Lookup(id)
	if !ok {
		return false
	}
	return info.Gate == identity.Unspecified || info.Gate == g
}

// RestrictedNotice is the blocking notice shown when the gender gate
// rejects a board navigation.
func RestrictedNotice(id ID) string {
	switch id {
	case Mens:
		return "ACCESS RESTRICTED TO MALE STUDENTS ONLY"
	case Womens:
		return "ACCESS RESTRICTED TO FEMALE STUDENTS ONLY"
	}
	return ""
}

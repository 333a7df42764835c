package post

// Reaction is one of the fixed emotive responses a viewer may attach
// to a post. A viewer holds at most one reaction per post.
type Reaction int

const (
	ThumbsUp Reaction = iota
	ThumbsDown
	Heart
	Confused
	Cheer
)

type reactionGlyph struct {
	Key    string
	Symbol string
	Label  string
}

var reactionGlyphs = []reactionGlyph{
	{Key: "thumbsUp", Symbol: "👍", Label: "thumbs up"},
	{Key: "thumbsDown", Symbol: "👎", Label: "thumbs down"},
	{Key: "heart", Symbol: "❤️", Label: "heart"},
	{Key: "confused", Symbol: "😕", Label: "confused"},
	{Key: "cheer", Symbol: "🎉", Label: "cheer"},
}

// Reactions returns every reaction kind in display order.
func Reactions() []Reaction {
	return []Reaction{ThumbsUp, ThumbsDown, Heart, Confused, Cheer}
}

// Key returns the reaction's wire-ish identifier.
func (r Reaction) Key() string {
	return r.glyph().Key
}

// Symbol returns the reaction's display glyph.
func (r Reaction) Symbol() string {
	return r.glyph().Symbol
}

func (r Reaction) String() string {
	return r.glyph().Label
}

func (r Reaction) glyph() reactionGlyph {
	if r < 0 || int(r) >= len(reactionGlyphs) {
		return reactionGlyph{Key: "unknown", Symbol: "?", Label: "unknown"}
	}
	return reactionGlyphs[r]
}

// ReactionForKey resolves a reaction from its identifier.
func ReactionForKey(key string) (Reaction, bool) {
	for i, g := range reactionGlyphs {
		if g.Key == key {
			return Reaction(i), true
		}
	}
	return 0, false
}

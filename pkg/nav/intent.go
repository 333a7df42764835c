package nav

import "strings"

// Element describes the interactive element a raw activation event
// resolved to. The mounted sub-application renders its own surface, so
// intent has to be inferred from what the element shows, not from what
// it is.
type Element struct {
	// Text is the element's visible text content.
	Text string

	// Markup is a serialization of the element's internal markup,
	// which catches icon-only buttons that carry no text.
	Markup string

	// BottomNav marks elements inside a recognized bottom navigation
	// container; Index is the element's ordinal among its interactive
	// siblings there.
	BottomNav bool
	Index     int
}

// Classifier maps an element to a navigation destination. The second
// result is false when the element carries no recognizable intent.
type Classifier func(Element) (Destination, bool)

// ClassifyKeywords applies the ordered, first-match-wins keyword and
// markup signatures. Text matching is case-insensitive; markup
// matching is against a lowered serialization.
func ClassifyKeywords(el Element) (Destination, bool) {
	text := strings.ToUpper(el.Text)
	markup := strings.ToLower(el.Markup)

	switch {
	case strings.Contains(text, "ADD2CART"),
		strings.Contains(text, "CART"),
		strings.Contains(markup, "shoppingcart"),
		strings.Contains(markup, "shopping-cart"):
		return Cart, true
	case strings.Contains(text, "COUNSELLING"),
		strings.Contains(text, "COUNSEL"),
		strings.Contains(markup, "messagecircle"):
		return Counselling, true
	case strings.Contains(text, "HOME"),
		strings.Contains(markup, "home"):
		return Community, true
	case strings.Contains(text, "MATCH"),
		strings.Contains(markup, "users"):
		return Matching, true
	case strings.Contains(text, "PROFILE"),
		strings.Contains(markup, "user"):
		return Profile, true
	case strings.Contains(markup, "mail"),
		strings.Contains(markup, "envelope"):
		return Messages, true
	}
	return 0, false
}

// ClassifyOrdinal maps an element inside a recognized bottom
// navigation container to a destination purely by its position among
// sibling interactive elements, regardless of text or icon.
func ClassifyOrdinal(el Element) (Destination, bool) {
	if !el.BottomNav {
		return 0, false
	}
	switch el.Index {
	case 0:
		return Cart, true
	case 1:
		return Counselling, true
	case 2:
		return Community, true
	case 3:
		return Matching, true
	case 4:
		return Profile, true
	}
	return 0, false
}

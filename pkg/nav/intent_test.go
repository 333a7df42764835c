package nav

import "testing"

func TestClassifyKeywordsText(t *testing.T) {
	cases := []struct {
		text string
		want Destination
		ok   bool
	}{
		{"ADD2CART", Cart, true},
		{"View Cart", Cart, true},
		{"COUNSELLING", Counselling, true},
		{"counsel desk", Counselling, true},
		{"HOME", Community, true},
		{"go home", Community, true},
		{"MATCHING", Matching, true},
		{"MATCH", Matching, true},
		{"MY PROFILE", Profile, true},
		{"ORDINARY BUTTON", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ClassifyKeywords(Element{Text: c.text})
		if ok != c.ok || (ok && got != c.want) {
			t.Fatalf("ClassifyKeywords(%q) = %v %v, want %v %v", c.text, got, ok, c.want, c.ok)
		}
	}
}

func TestClassifyKeywordsMarkup(t *testing.T) {
	cases := []struct {
		markup string
		want   Destination
	}{
		{"<ShoppingCart/>", Cart},
		{"icon shopping-cart", Cart},
		{"<MessageCircle/>", Counselling},
		{"<Home/>", Community},
		{"<Users/>", Matching},
		{"<User/>", Profile},
		{"<Mail/>", Messages},
		{"envelope-glyph", Messages},
	}
	for _, c := range cases {
		got, ok := ClassifyKeywords(Element{Markup: c.markup})
		if !ok || got != c.want {
			t.Fatalf("ClassifyKeywords(markup %q) = %v %v, want %v", c.markup, got, ok, c.want)
		}
	}
}

// The rule order is first-match-wins: "users" would also match "user",
// so matching must outrank profile, and cart text outranks everything.
func TestClassifyKeywordsPrecedence(t *testing.T) {
	if got, _ := ClassifyKeywords(Element{Markup: "<Users/>"}); got != Matching {
		t.Fatalf("users markup classified as %v, want matching", got)
	}
	if got, _ := ClassifyKeywords(Element{Text: "CART", Markup: "<User/>"}); got != Cart {
		t.Fatalf("cart text lost precedence, got %v", got)
	}
}

func TestClassifyOrdinal(t *testing.T) {
	wants := []Destination{Cart, Counselling, Community, Matching, Profile}
	for i, want := range wants {
		got, ok := ClassifyOrdinal(Element{BottomNav: true, Index: i})
		if !ok || got != want {
			t.Fatalf("ordinal %d = %v %v, want %v", i, got, ok, want)
		}
	}
	if _, ok := ClassifyOrdinal(Element{BottomNav: true, Index: 5}); ok {
		t.Fatalf("expected index 5 unmatched")
	}
	if _, ok := ClassifyOrdinal(Element{BottomNav: false, Index: 0}); ok {
		t.Fatalf("ordinal rule must only fire inside a bottom nav")
	}
}

// The ordinal rule ignores the element's content entirely: position 0
// in the bottom nav is the cart even if the label says otherwise.
func TestClassifyOrdinalIgnoresContent(t *testing.T) {
	got, ok := ClassifyOrdinal(Element{Text: "PROFILE", BottomNav: true, Index: 0})
	if !ok || got != Cart {
		t.Fatalf("got %v %v, want cart", got, ok)
	}
}

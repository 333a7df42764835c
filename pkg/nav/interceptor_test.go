package nav

import "testing"

type countingHandler struct {
	calls map[Destination]int
}

func newCountingHandler() *countingHandler {
	return &countingHandler{calls: map[Destination]int{}}
}

func (h *countingHandler) GoToAdd2Cart()    { h.calls[Cart]++ }
func (h *countingHandler) GoToCounselling() { h.calls[Counselling]++ }
func (h *countingHandler) GoToHome()        { h.calls[Community]++ }
func (h *countingHandler) GoToMatching()    { h.calls[Matching]++ }
func (h *countingHandler) GoToProfile()     { h.calls[Profile]++ }
func (h *countingHandler) GoToMessages()    { h.calls[Messages]++ }

func (h *countingHandler) total() int {
	n := 0
	for _, c := range h.calls {
		n += c
	}
	return n
}

func TestInterceptClaimsKeywordMatch(t *testing.T) {
	h := newCountingHandler()
	i := NewInterceptor(h, nil)
	i.Install()

	claimed := i.Intercept(Element{Text: "MATCHING"})
	if !claimed {
		t.Fatalf("expected keyword match claimed")
	}
	if h.calls[Matching] != 1 || h.total() != 1 {
		t.Fatalf("expected exactly one matching call, got %v", h.calls)
	}
}

// A bottom-nav element matches both classifiers; the handler sees two
// invocations of the same command, which idempotence makes harmless.
func TestInterceptBothClassifiersFire(t *testing.T) {
	h := newCountingHandler()
	i := NewInterceptor(h, nil)
	i.Install()

	claimed := i.Intercept(Element{Text: "HOME", BottomNav: true, Index: 2})
	if !claimed {
		t.Fatalf("expected claim")
	}
	if h.calls[Community] != 2 {
		t.Fatalf("expected both classifiers to invoke home, got %d", h.calls[Community])
	}
}

// Classifiers may also disagree: a mislabeled bottom-nav slot routes to
// both destinations, keyword first, last ordinal wins the final state.
func TestInterceptDisagreeingClassifiers(t *testing.T) {
	h := newCountingHandler()
	i := NewInterceptor(h, nil)
	i.Install()

	i.Intercept(Element{Text: "PROFILE", BottomNav: true, Index: 0})
	if h.calls[Profile] != 1 || h.calls[Cart] != 1 {
		t.Fatalf("expected one call each, got %v", h.calls)
	}
}

func TestInterceptPassThrough(t *testing.T) {
	h := newCountingHandler()
	i := NewInterceptor(h, nil)
	i.Install()

	if i.Intercept(Element{Text: "LIKE"}) {
		t.Fatalf("unrecognized element must pass through unclaimed")
	}
	if h.total() != 0 {
		t.Fatalf("expected no handler calls, got %v", h.calls)
	}
}

func TestInstallTeardownLifecycle(t *testing.T) {
	h := newCountingHandler()
	i := NewInterceptor(h, nil)

	if i.Installed() {
		t.Fatalf("expected no classifiers before install")
	}
	if i.Intercept(Element{Text: "HOME"}) {
		t.Fatalf("uninstalled interceptor must not claim")
	}

	i.Install()
	i.Install() // second install must not double-register
	if !i.Installed() {
		t.Fatalf("expected installed")
	}
	i.Intercept(Element{Text: "HOME"})
	if h.calls[Community] != 1 {
		t.Fatalf("expected single registration, got %d calls", h.calls[Community])
	}

	i.Teardown()
	if i.Installed() {
		t.Fatalf("expected teardown to clear classifiers")
	}
	if i.Intercept(Element{Text: "HOME"}) {
		t.Fatalf("torn-down interceptor must not claim")
	}
}

func TestInstallWithoutHandlerIsInert(t *testing.T) {
	i := NewInterceptor(nil, nil)
	i.Install()
	if i.Installed() {
		t.Fatalf("expected install to refuse without a handler")
	}
}

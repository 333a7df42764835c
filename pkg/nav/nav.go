// Package nav defines the shared navigation contract between the host,
// the intent classifiers, and every mounted sub-application.
package nav

// Destination names a top-level sub-application.
type Destination int

const (
	Community Destination = iota
	Matching
	Messages
	Profile
	Cart
	Counselling
)

func (d Destination) String() string {
	switch d {
	case Community:
		return "community"
	case Matching:
		return "matching"
	case Messages:
		return "messages"
	case Profile:
		return "profile"
	case Cart:
		return "cart"
	case Counselling:
		return "counselling"
	}
	return "unknown"
}

// Handler is the fixed command set passed by reference into every
// mounted sub-application and into the interceptor. Every command must
// be idempotent: invoking it twice for one activation is equivalent to
// invoking it once.
type Handler interface {
	GoToAdd2Cart()
	GoToCounselling()
	GoToHome()
	GoToMatching()
	GoToProfile()
	GoToMessages()
}

// Invoke dispatches a destination onto the handler.
func Invoke(h Handler, d Destination) {
	if h == nil {
		return
	}
	switch d {
	case Cart:
		h.GoToAdd2Cart()
	case Counselling:
		h.GoToCounselling()
	case Community:
		h.GoToHome()
	case Matching:
		h.GoToMatching()
	case Profile:
		h.GoToProfile()
	case Messages:
		h.GoToMessages()
	}
}

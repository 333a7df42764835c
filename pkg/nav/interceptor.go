package nav

import "go.uber.org/zap"

// Interceptor observes activation events ahead of the mounted
// sub-application's own handling and redirects recognized navigation
// intent onto the shared handler. Two overlapping classifiers evaluate
// every event independently; handler idempotence makes that safe.
//
// Listeners follow a scoped-acquisition pattern: Install registers
// both classifiers when a handler becomes available, Teardown removes
// them on every exit path.
type Interceptor struct {
	handler     Handler
	classifiers []Classifier
	log         *zap.Logger
}

// NewInterceptor returns an interceptor bound to the handler. A nil
// handler yields an inert interceptor.
func NewInterceptor(h Handler, log *zap.Logger) *Interceptor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interceptor{handler: h, log: log}
}

// Install registers the keyword/markup classifier and the ordinal
// bottom-nav classifier on the event stream. No-op without a handler.
func (i *Interceptor) Install() {
	if i.handler == nil || len(i.classifiers) > 0 {
		return
	}
	i.classifiers = []Classifier{ClassifyKeywords, ClassifyOrdinal}
}

// Teardown removes all registered classifiers.
func (i *Interceptor) Teardown() {
	i.classifiers = nil
}

// Installed reports whether classifiers are currently registered.
func (i *Interceptor) Installed() bool {
	return len(i.classifiers) > 0
}

// Intercept evaluates one activation event against every registered
// classifier, invoking the handler for each match. It reports whether
// the event was claimed, in which case the element's default action
// must be suppressed; unmatched events pass through untouched.
func (i *Interceptor) Intercept(el Element) bool {
	claimed := false
	for _, classify := range i.classifiers {
		dest, ok := classify(el)
		if !ok {
			continue
		}
		i.log.Debug("navigation intent",
			zap.String("destination", dest.String()),
			zap.String("text", el.Text),
			zap.Bool("bottom_nav", el.BottomNav))
		Invoke(i.handler, dest)
		claimed = true
	}
	return claimed
}

package internal

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// Subscription is the composite teardown node. It owns an ordered list of
// child subscriptions and an ordered list of finalizers; unsubscribing
// closes the children first, then runs the finalizers, exactly once.
type Subscription struct {
	closed bool

	// parent is only a lookup key for detachment, never a second owner.
	parent   *Subscription
	children []*Subscription

	finalizers []func() error

	// teardown errors aggregated during the cascade
	err error
}

func NewSubscription() *Subscription {
	return &Subscription{}
}

func (s *Subscription) Closed() bool {
	return s.closed
}

// Err returns the aggregated teardown error once the subscription has been
// closed, nil before that and nil when every finalizer succeeded.
func (s *Subscription) Err() error {
	return s.err
}

// Add records child so it is closed when s is. A child has exactly one
// parent; adding it to a second subscription detaches it from the first.
// Adding to an already-closed subscription closes the child immediately.
func (s *Subscription) Add(child *Subscription) {
	if child == nil || child == s {
		return
	}

	if s.closed {
		s.err = multierr.Append(s.err, child.Unsubscribe())
		return
	}

	if child.parent == s {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}

	child.parent = s
	s.children = append(s.children, child)
}

// Remove detaches child without closing it. Used when the child's own
// lifecycle ended independently and s should stop tracking it.
func (s *Subscription) Remove(child *Subscription) {
	i := slices.Index(s.children, child)
	if i >= 0 {
		s.children = slices.Delete(s.children, i, i+1)
	}
	if child.parent == s {
		child.parent = nil
	}
}

// AddFinalizer registers fn to run when s is unsubscribed. If s is already
// closed, fn runs immediately.
func (s *Subscription) AddFinalizer(fn func() error) {
	if fn == nil {
		return
	}

	if s.closed {
		s.err = multierr.Append(s.err, runFinalizer(fn))
		return
	}

	s.finalizers = append(s.finalizers, fn)
}

// Unsubscribe closes the node: children first, then finalizers, each in
// registration order. Idempotent; the closed flag is set before cascading
// so reentrant calls return immediately. Every finalizer error and
// recovered finalizer panic across the cascade is collected into the
// returned error; a failure never stops the rest of the teardown.
func (s *Subscription) Unsubscribe() error {
	if s.closed {
		// already surfaced; Err keeps the aggregate
		return nil
	}
	s.closed = true

	var errs error

	children := s.children
	s.children = nil
	for _, child := range children {
		child.parent = nil
		errs = multierr.Append(errs, child.Unsubscribe())
	}

	finalizers := s.finalizers
	s.finalizers = nil
	for _, fn := range finalizers {
		errs = multierr.Append(errs, runFinalizer(fn))
	}

	if s.parent != nil {
		s.parent.Remove(s)
	}

	s.err = errs
	return errs
}

func runFinalizer(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("finalizer panicked: %v", r)
		}
	}()

	return fn()
}

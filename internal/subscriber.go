package internal

import "fmt"

// Hooks are the optional per-kind handler slots an operator attaches to a
// subscriber. A nil slot means "forward verbatim".
type Hooks struct {
	OnNext     func(any)
	OnError    func(error)
	OnComplete func()
}

// Subscriber binds a destination to a subscription node and enforces the
// closed-after-terminal invariant: at most one terminal notification is
// ever processed, and nothing is delivered after it.
type Subscriber struct {
	dest  Destination
	sub   *Subscription
	hooks Hooks

	closed bool

	// goroutine the subscriber was created on; delivery is single-threaded
	gid int64
}

func NewSubscriber(dest Destination, sub *Subscription, hooks Hooks) *Subscriber {
	if dest == nil {
		dest = func(Notification) {}
	}
	if sub == nil {
		sub = NewSubscription()
	}

	return &Subscriber{
		dest:  dest,
		sub:   sub,
		hooks: hooks,
		gid:   getGID(),
	}
}

// NewOperatorSubscriber returns the lifted subscriber an operator uses to
// consume a source. Its subscription is a fresh node attached as a child of
// outer's node, so outer cancellation tears the operator's state down.
// Unset hooks default to forwarding into outer. A terminal notification
// closes the operator subscriber's own node only; outer ends when (and if)
// a hook forwards the terminal to it.
func NewOperatorSubscriber(outer *Subscriber, hooks Hooks) *Subscriber {
	sub := NewSubscription()
	outer.Subscription().Add(sub)

	if hooks.OnNext == nil {
		hooks.OnNext = outer.Next
	}
	if hooks.OnError == nil {
		hooks.OnError = outer.Error
	}
	if hooks.OnComplete == nil {
		hooks.OnComplete = outer.Complete
	}

	return NewSubscriber(nil, sub, hooks)
}

// Subscription returns the node whose closure cancels this subscriber.
func (s *Subscriber) Subscription() *Subscription {
	return s.sub
}

// Closed reports whether a terminal notification has been processed or the
// bound subscription was closed externally.
func (s *Subscriber) Closed() bool {
	return s.closed || s.sub.Closed()
}

// Next delivers a value. No-op once closed.
func (s *Subscriber) Next(v any) {
	s.checkGoroutine()

	if s.Closed() {
		return
	}

	if s.hooks.OnNext != nil {
		s.hooks.OnNext(v)
		return
	}
	s.dest(NextNotification(v))
}

// Error delivers the terminal error, then closes the bound subscription.
// The notification reaches the destination before teardown begins.
func (s *Subscriber) Error(err error) {
	s.checkGoroutine()

	if s.Closed() {
		return
	}
	s.closed = true

	if s.hooks.OnError != nil {
		s.hooks.OnError(err)
	} else {
		s.dest(ErrorNotification(err))
	}

	s.sub.Unsubscribe()
}

// Complete delivers the terminal completion, then closes the bound
// subscription.
func (s *Subscriber) Complete() {
	s.checkGoroutine()

	if s.Closed() {
		return
	}
	s.closed = true

	if s.hooks.OnComplete != nil {
		s.hooks.OnComplete()
	} else {
		s.dest(CompleteNotification())
	}

	s.sub.Unsubscribe()
}

func (s *Subscriber) checkGoroutine() {
	if gid := getGID(); gid != s.gid {
		panic(fmt.Sprintf("obs: subscriber created on goroutine %d driven from goroutine %d; delivery is single-threaded", s.gid, gid))
	}
}

// Package obs is a small synchronous push-stream core. Producers emit
// next/error/complete notifications into subscribers, operators are built
// from a single lifting mechanism, and a subscription tree guarantees that
// teardown runs exactly once no matter how a sequence ends.
package obs

import "github.com/AnatoleLucet/obs/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type Kind int

const (
	KindNext     = Kind(internal.KindNext)
	KindError    = Kind(internal.KindError)
	KindComplete = Kind(internal.KindComplete)
)

func (k Kind) String() string {
	return internal.Kind(k).String()
}

// Notification is one of the three events a producer may raise: a value, a
// terminal error, or a terminal completion.
type Notification[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

// IsTerminal reports whether the notification ends the sequence.
func (n Notification[T]) IsTerminal() bool {
	return n.Kind != KindNext
}

type Subscription struct {
	sub *internal.Subscription
}

// NewSubscription creates an empty teardown node.
func NewSubscription() *Subscription {
	return &Subscription{internal.NewSubscription()}
}

// Add records child so it is closed when this subscription is. Adding to an
// already-closed subscription closes the child immediately.
func (s *Subscription) Add(child *Subscription) {
	s.sub.Add(child.sub)
}

// Remove detaches child without closing it.
func (s *Subscription) Remove(child *Subscription) {
	s.sub.Remove(child.sub)
}

// AddFinalizer registers fn to run once on unsubscription. If the
// subscription is already closed, fn runs immediately.
func (s *Subscription) AddFinalizer(fn func() error) {
	s.sub.AddFinalizer(fn)
}

// Unsubscribe closes the node and everything under it: children in
// registration order, then finalizers in registration order. Idempotent.
// All finalizer failures across the cascade come back as one combined error.
func (s *Subscription) Unsubscribe() error {
	return s.sub.Unsubscribe()
}

func (s *Subscription) Closed() bool {
	return s.sub.Closed()
}

// Err returns the aggregated teardown error recorded when the subscription
// was closed, nil before that.
func (s *Subscription) Err() error {
	return s.sub.Err()
}

type Subscriber[T any] struct {
	s *internal.Subscriber
}

// NewSubscriber binds a destination to a teardown node. A nil sub gets a
// fresh node.
func NewSubscriber[T any](dest func(Notification[T]), sub *Subscription) *Subscriber[T] {
	var node *internal.Subscription
	if sub != nil {
		node = sub.sub
	}

	return &Subscriber[T]{internal.NewSubscriber(wrapDest(dest), node, internal.Hooks{})}
}

func wrapDest[T any](dest func(Notification[T])) internal.Destination {
	if dest == nil {
		return nil
	}

	return func(n internal.Notification) {
		dest(Notification[T]{Kind: Kind(n.Kind), Value: as[T](n.Value), Err: n.Err})
	}
}

// Next delivers a value. No-op once the subscriber is closed.
func (s *Subscriber[T]) Next(v T) {
	s.s.Next(v)
}

// Error delivers the terminal error and closes the bound subscription. The
// destination sees the notification before teardown begins.
func (s *Subscriber[T]) Error(err error) {
	s.s.Error(err)
}

// Complete delivers the terminal completion and closes the bound
// subscription.
func (s *Subscriber[T]) Complete() {
	s.s.Complete()
}

// Closed reports whether a terminal notification has been processed or the
// subscription was closed from outside.
func (s *Subscriber[T]) Closed() bool {
	return s.s.Closed()
}

func (s *Subscriber[T]) Subscription() *Subscription {
	return &Subscription{s.s.Subscription()}
}

type Observable[T any] struct {
	src *internal.Observable
}

// NewObservable creates a producer from a subscribe function. A returned
// error or a panic while wiring is delivered to the subscriber as a
// terminal error notification.
func NewObservable[T any](onSubscribe func(*Subscriber[T]) error) *Observable[T] {
	return &Observable[T]{internal.NewObservable(func(sbr *internal.Subscriber) error {
		return onSubscribe(&Subscriber[T]{sbr})
	})}
}

// Subscribe starts the producer, pushing each notification into dest.
func (o *Observable[T]) Subscribe(dest func(Notification[T])) *Subscription {
	return o.SubscribeWith(NewSubscriber(dest, nil))
}

// SubscribeWith starts the producer against an existing subscriber.
func (o *Observable[T]) SubscribeWith(sbr *Subscriber[T]) *Subscription {
	return &Subscription{o.src.Subscribe(sbr.s)}
}

// SubscribeFunc starts the producer with per-kind callbacks; nil callbacks
// are skipped.
func (o *Observable[T]) SubscribeFunc(next func(T), errFn func(error), complete func()) *Subscription {
	return o.Subscribe(func(n Notification[T]) {
		if !n.IsTerminal() {
			if next != nil {
				next(n.Value)
			}
			return
		}

		if n.Kind == KindError {
			if errFn != nil {
				errFn(n.Err)
			}
			return
		}
		if complete != nil {
			complete()
		}
	})
}

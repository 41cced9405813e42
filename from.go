package obs

import (
	"fmt"
	"iter"

	"github.com/AnatoleLucet/obs/internal"
)

// Of emits the given values in order, then completes. Delivery is
// synchronous and checks for cancellation between values.
func Of[T any](values ...T) *Observable[T] {
	return NewObservable(func(s *Subscriber[T]) error {
		for _, v := range values {
			if s.Closed() {
				return nil
			}
			s.Next(v)
		}
		s.Complete()

		return nil
	})
}

// FromSeq emits every value of seq, then completes.
func FromSeq[T any](seq iter.Seq[T]) *Observable[T] {
	return NewObservable(func(s *Subscriber[T]) error {
		for v := range seq {
			if s.Closed() {
				return nil
			}
			s.Next(v)
		}
		s.Complete()

		return nil
	})
}

// Empty completes immediately with no values.
func Empty[T any]() *Observable[T] {
	return NewObservable(func(s *Subscriber[T]) error {
		s.Complete()
		return nil
	})
}

// Throw errors immediately with err.
func Throw[T any](err error) *Observable[T] {
	return NewObservable(func(s *Subscriber[T]) error {
		s.Error(err)
		return nil
	})
}

// Never emits nothing and never terminates.
func Never[T any]() *Observable[T] {
	return NewObservable(func(*Subscriber[T]) error {
		return nil
	})
}

// toObservable normalizes an observable-like value into a producer: an
// *Observable[T] as-is, a []T or iter.Seq[T] as a synchronous emission of
// its values. Anything else is an error.
func toObservable[T any](v any) (*internal.Observable, error) {
	switch x := v.(type) {
	case *Observable[T]:
		return x.src, nil
	case []T:
		return Of(x...).src, nil
	case iter.Seq[T]:
		return FromSeq(x).src, nil
	}

	return nil, fmt.Errorf("obs: %T is not observable-like", v)
}

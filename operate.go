package obs

import "github.com/AnatoleLucet/obs/internal"

// Operate is the operator authoring contract: transform subscribes to
// source with a derived subscriber (see NewOperatorSubscriber) whose hooks
// call into outer as appropriate. A transform error or panic while wiring
// becomes a terminal error on outer instead of escaping.
func Operate[T, R any](transform func(source *Observable[T], outer *Subscriber[R]) error) func(*Observable[T]) *Observable[R] {
	return func(source *Observable[T]) *Observable[R] {
		lifted := internal.Operate(func(src *internal.Observable, outer *internal.Subscriber) error {
			return transform(&Observable[T]{src}, &Subscriber[R]{outer})
		})(source.src)

		return &Observable[R]{lifted}
	}
}

// OperatorHooks override what a lifted subscriber does with each
// notification kind of the source. A nil hook forwards verbatim into the
// outer subscriber, so OnNext must be set whenever T and R differ.
type OperatorHooks[T any] struct {
	OnNext     func(T)
	OnError    func(error)
	OnComplete func()
}

// NewOperatorSubscriber creates the lifted subscriber an operator feeds a
// source into. Its fresh teardown node is attached as a child of outer's,
// so cancelling downstream tears the operator's state down; a terminal on
// the lifted subscriber closes and detaches its own node only.
func NewOperatorSubscriber[T, R any](outer *Subscriber[R], hooks OperatorHooks[T]) *Subscriber[T] {
	h := internal.Hooks{
		OnError:    hooks.OnError,
		OnComplete: hooks.OnComplete,
	}
	if hooks.OnNext != nil {
		h.OnNext = func(v any) { hooks.OnNext(as[T](v)) }
	}

	return &Subscriber[T]{internal.NewOperatorSubscriber(outer.s, h)}
}

// Map transforms every value with project.
func Map[T, R any](project func(T) R) func(*Observable[T]) *Observable[R] {
	return Operate(func(source *Observable[T], outer *Subscriber[R]) error {
		source.SubscribeWith(NewOperatorSubscriber(outer, OperatorHooks[T]{
			OnNext: func(v T) { outer.Next(project(v)) },
		}))

		return nil
	})
}

// Filter passes through the values matching predicate.
func Filter[T any](predicate func(T) bool) func(*Observable[T]) *Observable[T] {
	return Operate(func(source *Observable[T], outer *Subscriber[T]) error {
		source.SubscribeWith(NewOperatorSubscriber(outer, OperatorHooks[T]{
			OnNext: func(v T) {
				if predicate(v) {
					outer.Next(v)
				}
			},
		}))

		return nil
	})
}

// Take passes the first n values through, then completes the output and
// cancels the source from inside the delivery of the nth value.
func Take[T any](n int) func(*Observable[T]) *Observable[T] {
	return Operate(func(source *Observable[T], outer *Subscriber[T]) error {
		if n <= 0 {
			outer.Complete()
			return nil
		}

		seen := 0
		source.SubscribeWith(NewOperatorSubscriber(outer, OperatorHooks[T]{
			OnNext: func(v T) {
				seen++
				outer.Next(v)
				if seen >= n {
					outer.Complete()
				}
			},
		}))

		return nil
	})
}

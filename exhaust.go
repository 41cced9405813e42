package obs

import "github.com/AnatoleLucet/obs/internal"

// ExhaustAll flattens a higher-order stream with the exhaust policy: while
// one inner sequence is active, later inner producers are dropped without
// being subscribed. The output completes once the source has completed and
// no inner sequence is running; an inner error ends the whole chain.
func ExhaustAll[T any](source *Observable[*Observable[T]]) *Observable[T] {
	return &Observable[T]{internal.ExhaustAll(toObservable[T])(source.src)}
}

// Exhaust is ExhaustAll over a stream of arbitrary observable-like values
// (*Observable[T], []T, or iter.Seq[T]). A value that cannot be normalized
// errors the output.
func Exhaust[T any](source *Observable[any]) *Observable[T] {
	return &Observable[T]{internal.ExhaustAll(toObservable[T])(source.src)}
}

// ExhaustMap projects each source value to an inner sequence and flattens
// with the exhaust policy.
func ExhaustMap[T, R any](project func(T) *Observable[R]) func(*Observable[T]) *Observable[R] {
	return func(source *Observable[T]) *Observable[R] {
		return ExhaustAll(Map(project)(source))
	}
}

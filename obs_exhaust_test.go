package obs

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExhaust(t *testing.T) {
	t.Run("drops inner producers while one is active", func(t *testing.T) {
		log := []string{}

		source := NewSubject[*Observable[int]]()
		innerA := NewSubject[int]()

		subscribedB := false
		innerB := NewObservable(func(s *Subscriber[int]) error {
			subscribedB = true
			s.Complete()
			return nil
		})

		ExhaustAll(source.Observable()).Subscribe(logNotifications[int](&log))

		source.Next(innerA.Observable())
		innerA.Next(1)
		source.Next(innerB) // innerA still open: dropped
		source.Complete()
		innerA.Next(2)
		innerA.Complete()

		assert.Equal(t, []string{"next 1", "next 2", "complete"}, log)
		assert.False(t, subscribedB)
	})

	t.Run("completion waits for the active inner", func(t *testing.T) {
		log := []string{}

		source := NewSubject[*Observable[int]]()
		inner := NewSubject[int]()

		ExhaustAll(source.Observable()).Subscribe(logNotifications[int](&log))

		source.Next(inner.Observable())
		source.Complete()
		assert.Equal(t, []string{}, log)

		inner.Complete()
		assert.Equal(t, []string{"complete"}, log)
	})

	t.Run("synchronously completing inner completes in the same call", func(t *testing.T) {
		log := []string{}

		ExhaustAll(Of(Empty[int]())).Subscribe(logNotifications[int](&log))

		assert.Equal(t, []string{"complete"}, log)
	})

	t.Run("empty source completes with zero values", func(t *testing.T) {
		log := []string{}

		ExhaustAll(Empty[*Observable[int]]()).Subscribe(logNotifications[int](&log))

		assert.Equal(t, []string{"complete"}, log)
	})

	t.Run("a finished inner makes room for the next one", func(t *testing.T) {
		log := []string{}

		source := NewSubject[*Observable[int]]()

		ExhaustAll(source.Observable()).Subscribe(logNotifications[int](&log))

		source.Next(Of(1, 2))
		source.Next(Of(3))
		source.Complete()

		assert.Equal(t, []string{"next 1", "next 2", "next 3", "complete"}, log)
	})

	t.Run("inner error ends the whole chain", func(t *testing.T) {
		log := []string{}

		source := NewSubject[*Observable[int]]()

		ExhaustAll(source.Observable()).Subscribe(logNotifications[int](&log))

		source.Next(Throw[int](errors.New("oops")))
		source.Next(Of(1))

		assert.Equal(t, []string{"error oops"}, log)
	})

	t.Run("source error ends the whole chain and the inner", func(t *testing.T) {
		log := []string{}
		released := false

		source := NewSubject[*Observable[int]]()
		inner := NewObservable(func(s *Subscriber[int]) error {
			s.Subscription().AddFinalizer(func() error {
				released = true
				return nil
			})
			s.Next(1)
			return nil
		})

		ExhaustAll(source.Observable()).Subscribe(logNotifications[int](&log))

		source.Next(inner)
		source.Error(errors.New("oops"))

		assert.Equal(t, []string{"next 1", "error oops"}, log)
		assert.True(t, released)
	})

	t.Run("downstream cancellation cascades to the active inner", func(t *testing.T) {
		log := []string{}
		released := false

		source := NewSubject[*Observable[int]]()
		innerSubject := NewSubject[int]()
		inner := NewObservable(func(s *Subscriber[int]) error {
			s.Subscription().AddFinalizer(func() error {
				released = true
				return nil
			})
			innerSubject.Observable().SubscribeWith(s)
			return nil
		})

		sub := ExhaustAll(source.Observable()).Subscribe(logNotifications[int](&log))

		source.Next(inner)
		innerSubject.Next(1)
		assert.NoError(t, sub.Unsubscribe())
		innerSubject.Next(2)

		assert.Equal(t, []string{"next 1"}, log)
		assert.True(t, released)
	})

	t.Run("exhaust map projects then flattens", func(t *testing.T) {
		log := []string{}

		repeat := ExhaustMap(func(v int) *Observable[int] { return Of(v, v) })
		repeat(Of(1, 2)).Subscribe(logNotifications[int](&log))

		assert.Equal(t, []string{"next 1", "next 1", "next 2", "next 2", "complete"}, log)
	})

	t.Run("normalizes slices and sequences", func(t *testing.T) {
		log := []string{}

		source := NewSubject[any]()
		Exhaust[int](source.Observable()).Subscribe(logNotifications[int](&log))

		source.Next([]int{1, 2})
		source.Next(slices.Values([]int{3}))
		source.Complete()

		assert.Equal(t, []string{"next 1", "next 2", "next 3", "complete"}, log)
	})

	t.Run("unnormalizable value errors the output", func(t *testing.T) {
		log := []string{}

		source := NewSubject[any]()
		Exhaust[int](source.Observable()).Subscribe(logNotifications[int](&log))

		source.Next(42)

		assert.Len(t, log, 1)
		assert.Contains(t, log[0], "error")
		assert.Contains(t, log[0], "not observable-like")
	})
}

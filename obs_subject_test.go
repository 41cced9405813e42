package obs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	t.Run("multicasts to every subscriber", func(t *testing.T) {
		first := []string{}
		second := []string{}

		subject := NewSubject[int]()
		subject.Subscribe(logNotifications[int](&first))
		subject.Next(1)
		subject.Subscribe(logNotifications[int](&second))
		subject.Next(2)
		subject.Complete()

		assert.Equal(t, []string{"next 1", "next 2", "complete"}, first)
		assert.Equal(t, []string{"next 2", "complete"}, second)
	})

	t.Run("unsubscribed destinations stop receiving", func(t *testing.T) {
		log := []string{}

		subject := NewSubject[int]()
		sub := subject.Subscribe(logNotifications[int](&log))

		subject.Next(1)
		assert.NoError(t, sub.Unsubscribe())
		subject.Next(2)

		assert.Equal(t, []string{"next 1"}, log)
	})

	t.Run("replays completion to late subscribers", func(t *testing.T) {
		log := []string{}

		subject := NewSubject[int]()
		subject.Next(1)
		subject.Complete()
		subject.Next(2)

		subject.Subscribe(logNotifications[int](&log))

		assert.Equal(t, []string{"complete"}, log)
	})

	t.Run("replays the error to late subscribers", func(t *testing.T) {
		log := []string{}

		subject := NewSubject[int]()
		subject.Error(errors.New("oops"))
		subject.Complete()

		subject.Subscribe(logNotifications[int](&log))

		assert.Equal(t, []string{"error oops"}, log)
	})

	t.Run("sources emit synchronously", func(t *testing.T) {
		log := []string{}

		Of(1, 2).Subscribe(logNotifications[int](&log))
		assert.Equal(t, []string{"next 1", "next 2", "complete"}, log)

		log = log[:0]
		Throw[int](errors.New("oops")).Subscribe(logNotifications[int](&log))
		assert.Equal(t, []string{"error oops"}, log)

		log = log[:0]
		Never[int]().Subscribe(logNotifications[int](&log))
		assert.Equal(t, []string{}, log)
	})
}
